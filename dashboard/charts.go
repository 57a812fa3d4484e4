package dashboard

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/gosimple/slug"
	"github.com/l3montree-dev/appcatalog/dtos"
)

const (
	histogramBins = 20
	maxRating     = 5.0
	uncategorized = "Uncategorized"
)

// RatingHistogram counts the ratings of the apps in 20 equally wide bins over 0..5
func RatingHistogram(apps []dtos.AppDTO) ([]string, []int) {
	width := maxRating / histogramBins
	labels := make([]string, histogramBins)
	counts := make([]int, histogramBins)
	for i := range labels {
		labels[i] = fmt.Sprintf("%.2f-%.2f", float64(i)*width, float64(i+1)*width)
	}
	for _, app := range apps {
		bin := int(app.Rating / width)
		// a rating of exactly 5 belongs to the last bin
		bin = min(max(bin, 0), histogramBins-1)
		counts[bin]++
	}
	return labels, counts
}

func firstCategory(app dtos.AppDTO) string {
	if len(app.Categories) == 0 {
		return uncategorized
	}
	return app.Categories[0]
}

// InstallsVsPrice groups the (price, installs) points by the first category of each app
func InstallsVsPrice(apps []dtos.AppDTO) map[string][][2]float64 {
	points := make(map[string][][2]float64)
	for _, app := range apps {
		category := firstCategory(app)
		points[category] = append(points[category], [2]float64{app.Price.InexactFloat64(), float64(app.Installs)})
	}
	return points
}

// ReleaseYearCounts counts the apps per release year, sorted by year. Apps without a release date are ignored.
func ReleaseYearCounts(apps []dtos.AppDTO) ([]string, []int) {
	perYear := make(map[int]int)
	for _, app := range apps {
		if app.Released == nil || len(*app.Released) < 4 {
			continue
		}
		year, err := strconv.Atoi((*app.Released)[:4])
		if err != nil {
			continue
		}
		perYear[year]++
	}

	years := slices.Sorted(maps.Keys(perYear))
	labels := make([]string, len(years))
	counts := make([]int, len(years))
	for i, year := range years {
		labels[i] = strconv.Itoa(year)
		counts[i] = perYear[year]
	}
	return labels, counts
}

// CategoryCounts counts the apps per category, sorted by name
func CategoryCounts(apps []dtos.AppDTO) ([]string, []int) {
	perCategory := make(map[string]int)
	for _, app := range apps {
		if len(app.Categories) == 0 {
			perCategory[uncategorized]++
		}
		for _, c := range app.Categories {
			perCategory[c]++
		}
	}
	names := slices.Sorted(maps.Keys(perCategory))
	counts := make([]int, len(names))
	for i, name := range names {
		counts[i] = perCategory[name]
	}
	return names, counts
}

// chartID derives a dom id from the title. go-echarts uses it as part of a js variable name.
func chartID(title string) string {
	return strings.ReplaceAll(slug.Make(title), "-", "_")
}

func initOpts(title string) charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{
		PageTitle: title,
		ChartID:   chartID(title),
		Width:     "900px",
		Height:    "400px",
	})
}

func barData(counts []int) []opts.BarData {
	data := make([]opts.BarData, len(counts))
	for i, c := range counts {
		data[i] = opts.BarData{Value: c}
	}
	return data
}

func ratingHistogramChart(apps []dtos.AppDTO) *charts.Bar {
	const title = "Rating distribution"
	labels, counts := RatingHistogram(apps)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		initOpts(title),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "rating"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "apps"}),
	)
	bar.SetXAxis(labels).AddSeries("apps", barData(counts))
	return bar
}

func installsVsPriceChart(apps []dtos.AppDTO) *charts.Scatter {
	const title = "Installs vs price"
	points := InstallsVsPrice(apps)

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		initOpts(title),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "price", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "installs", Type: "value"}),
	)
	for _, category := range slices.Sorted(maps.Keys(points)) {
		data := make([]opts.ScatterData, 0, len(points[category]))
		for _, p := range points[category] {
			data = append(data, opts.ScatterData{Value: []any{p[0], p[1]}})
		}
		scatter.AddSeries(category, data)
	}
	return scatter
}

func releaseYearChart(apps []dtos.AppDTO) *charts.Line {
	const title = "Releases per year"
	labels, counts := ReleaseYearCounts(apps)

	data := make([]opts.LineData, len(counts))
	for i, c := range counts {
		data[i] = opts.LineData{Value: c}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		initOpts(title),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "year"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "apps"}),
	)
	line.SetXAxis(labels).AddSeries("apps", data)
	return line
}

func categoryChart(apps []dtos.AppDTO) *charts.Bar {
	const title = "Apps per category"
	names, counts := CategoryCounts(apps)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		initOpts(title),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithYAxisOpts(opts.YAxis{Name: "apps"}),
	)
	bar.SetXAxis(names).AddSeries("apps", barData(counts))
	return bar
}

// RenderCharts writes a standalone html page with all charts for the given apps
func RenderCharts(w io.Writer, apps []dtos.AppDTO) error {
	page := components.NewPage()
	page.SetPageTitle("App catalog charts")
	page.AddCharts(
		ratingHistogramChart(apps),
		installsVsPriceChart(apps),
		releaseYearChart(apps),
		categoryChart(apps),
	)
	return page.Render(w)
}
