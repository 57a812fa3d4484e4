package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/l3montree-dev/appcatalog/dashboard"
	"github.com/l3montree-dev/appcatalog/dtos"
	"github.com/l3montree-dev/appcatalog/pkg/appcatalog"
	"github.com/l3montree-dev/appcatalog/utils"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

const histogramWidth = 40

var printer = message.NewPrinter(language.English)

func formatCount(n int64) string {
	return printer.Sprintf("%d", n)
}

func formatPrice(app dtos.AppDTO) string {
	if app.Price.IsZero() {
		return "Free"
	}
	return strings.TrimSpace(app.Price.StringFixed(2) + " " + app.Currency)
}

func printStructured(w io.Writer, v any) error {
	if runtimeConfig.Output == outputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(v)
}

// withSpinner shows a spinner on stderr while f runs. The spinner stays silent when stderr is no terminal.
func withSpinner[T any](suffix string, f func() (T, error)) (T, error) {
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + suffix
	s.Start()
	defer s.Stop()
	return f()
}

func appsTable(apps []dtos.AppDTO) table.Writer {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"App ID", "Name", "Rating", "Installs", "Price", "Content rating", "Developer", "Categories"})
	tw.AppendRows(utils.Map(apps, func(app dtos.AppDTO) table.Row {
		return table.Row{
			app.AppID,
			text.Trim(app.AppName, 40),
			strconv.FormatFloat(app.Rating, 'f', 2, 64),
			formatCount(app.Installs),
			formatPrice(app),
			app.ContentRating,
			utils.SafeDereference(app.DeveloperName),
			strings.Join(app.Categories, ", "),
		}
	}))
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	return tw
}

// pageFooter renders the pagination window, the current page in brackets
func pageFooter(page int, total int64, pageSize int) string {
	parts := make([]string, 0)
	last := 0
	for _, n := range appcatalog.PageWindow(page, total, pageSize) {
		if last != 0 && n > last+1 {
			parts = append(parts, "…")
		}
		if n == page {
			parts = append(parts, fmt.Sprintf("[%d]", n))
		} else {
			parts = append(parts, strconv.Itoa(n))
		}
		last = n
	}
	return fmt.Sprintf("page %d of %d: %s (%s apps)", page, appcatalog.TotalPages(total, pageSize), strings.Join(parts, " "), formatCount(total))
}

// ratingHistogram draws the rating distribution of the apps with one bar per non empty bin
func ratingHistogram(apps []dtos.AppDTO) string {
	labels, counts := dashboard.RatingHistogram(apps)
	maxCount := 0
	for _, c := range counts {
		maxCount = max(maxCount, c)
	}
	if maxCount == 0 {
		return ""
	}

	var b strings.Builder
	for i, c := range counts {
		if c == 0 {
			continue
		}
		bar := strings.Repeat("█", max(1, c*histogramWidth/maxCount))
		fmt.Fprintf(&b, "%-9s %s %d\n", labels[i], bar, c)
	}
	return b.String()
}

func appDetails(app dtos.AppDTO) table.Writer {
	tw := table.NewWriter()
	optional := func(s *string) string { return utils.SafeDereference(s) }
	scraped := ""
	if app.ScrapedTime != nil {
		scraped = app.ScrapedTime.Format(time.RFC3339)
	}
	developer := optional(app.DeveloperName)
	if app.DeveloperID != nil {
		developer = fmt.Sprintf("%s (#%d)", developer, *app.DeveloperID)
	}
	tw.AppendRows([]table.Row{
		{"App ID", app.AppID},
		{"Name", app.AppName},
		{"Rating", fmt.Sprintf("%.2f (%s ratings)", app.Rating, formatCount(app.RatingCount))},
		{"Installs", fmt.Sprintf("%s (%s - %s)", formatCount(app.Installs), formatCount(app.MinInstalls), formatCount(app.MaxInstalls))},
		{"Price", formatPrice(app)},
		{"Size", app.Size},
		{"Minimum Android", app.MinAndroid},
		{"Content rating", app.ContentRating},
		{"Developer", developer},
		{"Categories", strings.Join(app.Categories, ", ")},
		{"Released", optional(app.Released)},
		{"Last updated", optional(app.LastUpdated)},
		{"Ad supported", app.AdSupported},
		{"In app purchases", app.InAppPurchases},
		{"Editors choice", app.EditorsChoice},
		{"Privacy policy", text.WrapText(app.PrivacyPolicy, 80)},
		{"Scraped", scraped},
	})
	return tw
}
