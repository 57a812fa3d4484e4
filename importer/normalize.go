package importer

import (
	"crypto/sha256"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/l3montree-dev/appcatalog/database/models"
	"github.com/l3montree-dev/appcatalog/utils"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// playStoreDateLayout is the format of Released and Last Updated, e.g. "Feb 26, 2020"
const playStoreDateLayout = "Jan 2, 2006"

var scrapedTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// the largest value NUMERIC(10,2) can hold
var maxPrice = decimal.RequireFromString("99999999.99")

var requiredColumns = []string{ColAppName, ColAppID, ColCategory, ColDeveloperID}

// Row is a cleaned csv record ready to be loaded
type Row struct {
	Line int
	// App carries every app column except the developer reference, which is resolved on load
	App              models.App
	DeveloperName    string
	DeveloperWebsite string
	DeveloperEmail   string
	Categories       []string
}

// Rejection describes a record that was dropped
type Rejection struct {
	Line   int
	Reason string
	Record []string
}

type Normalized struct {
	Total      int
	Duplicates int
	Rows       []Row
	Rejected   []Rejection
}

// Normalize drops exact duplicate records and records missing a required column and cleans the rest
func Normalize(raw []RawRow) Normalized {
	result := Normalized{
		Total: len(raw),
		Rows:  make([]Row, 0, len(raw)),
	}

	seen := make(map[[sha256.Size]byte]struct{}, len(raw))
	for _, r := range raw {
		key := recordKey(r.Record)
		if _, ok := seen[key]; ok {
			result.Duplicates++
			continue
		}
		seen[key] = struct{}{}

		row, err := NormalizeRow(r)
		if err != nil {
			result.Rejected = append(result.Rejected, Rejection{Line: r.Line, Reason: err.Error(), Record: r.Record})
			continue
		}
		result.Rows = append(result.Rows, row)
	}
	return result
}

// recordKey is the dedupe key of a record, a digest instead of a copy of its fields
func recordKey(record []string) [sha256.Size]byte {
	h := sha256.New()
	for _, field := range record {
		h.Write([]byte(field))
		h.Write([]byte{0x1f})
	}
	var key [sha256.Size]byte
	h.Sum(key[:0])
	return key
}

// NormalizeRow coerces a single record. Malformed values fall back to their defaults, only a
// missing required column is an error.
func NormalizeRow(r RawRow) (Row, error) {
	for _, column := range requiredColumns {
		if strings.TrimSpace(r.Get(column)) == "" {
			return Row{}, fmt.Errorf("missing %s", column)
		}
	}

	categories := SplitCategories(r.Get(ColCategory))
	if len(categories) == 0 {
		return Row{}, fmt.Errorf("missing %s", ColCategory)
	}

	app := models.App{
		AppID:   strings.TrimSpace(r.Get(ColAppID)),
		AppName: strings.TrimSpace(r.Get(ColAppName)),

		Rating:      ParseRating(r.Get(ColRating)),
		RatingCount: ParseCount(r.Get(ColRatingCount)),
		Installs:    ParseCount(r.Get(ColInstalls)),
		MinInstalls: ParseCount(r.Get(ColMinInstalls)),
		MaxInstalls: ParseCount(r.Get(ColMaxInstalls)),

		Price:    ParsePrice(r.Get(ColPrice)),
		Currency: r.Get(ColCurrency),

		Size:          r.Get(ColSize),
		MinAndroid:    r.Get(ColMinAndroid),
		ContentRating: r.Get(ColContentRating),
		PrivacyPolicy: r.Get(ColPrivacyPolicy),

		Released:    ParseDate(r.Get(ColReleased)),
		LastUpdated: ParseDate(r.Get(ColLastUpdated)),
		ScrapedTime: ParseTimestamp(r.Get(ColScrapedTime)),

		Free:           ParseBool(r.Get(ColFree)),
		AdSupported:    ParseBool(r.Get(ColAdSupported)),
		InAppPurchases: ParseBool(r.Get(ColInAppPurchases)),
		EditorsChoice:  ParseBool(r.Get(ColEditorsChoice)),
	}

	return Row{
		Line:             r.Line,
		App:              app,
		DeveloperName:    strings.TrimSpace(r.Get(ColDeveloperID)),
		DeveloperWebsite: strings.TrimSpace(r.Get(ColDeveloperWebsite)),
		DeveloperEmail:   strings.TrimSpace(r.Get(ColDeveloperEmail)),
		Categories:       categories,
	}, nil
}

// SplitCategories splits "Music & Audio" style values into their parts
func SplitCategories(s string) []string {
	parts := utils.Map(strings.Split(strings.TrimSpace(s), " & "), strings.TrimSpace)
	parts = utils.Filter(parts, func(p string) bool { return p != "" })
	return utils.UniqBy(parts, func(p string) string { return p })
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ParseRating rounds to two decimals, values outside 0..5 become 0
func ParseRating(s string) float64 {
	r := utils.RoundTo(parseFloat(s), 2)
	if r < 0 || r > 5 {
		return 0
	}
	return r
}

// ParsePrice rounds to two decimals, negative or unparsable values become 0
func ParsePrice(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	d = d.Round(2)
	if d.GreaterThan(maxPrice) {
		return decimal.Zero
	}
	return d
}

// ParseCount strips "+" and "," and parses the rest. "1,234+" becomes 1234.
func ParseCount(s string) int64 {
	s = strings.NewReplacer("+", "", ",", "").Replace(strings.TrimSpace(s))
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return max(n, 0)
	}
	// pandas writes integer columns with missing values as floats, e.g. "100.0"
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || f < 0 || f >= math.MaxInt64 {
		return 0
	}
	return int64(f)
}

func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "t", "y":
		return true
	}
	return false
}

// ParseDate parses the play store date format. Unparsable values yield nil.
func ParseDate(s string) *datatypes.Date {
	t, err := time.Parse(playStoreDateLayout, strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	d := datatypes.Date(t)
	return &d
}

func ParseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range scrapedTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
