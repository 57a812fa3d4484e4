package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHeader = "App Name,App Id,Category,Rating,Rating Count,Installs,Minimum Installs,Maximum Installs,Free,Price,Currency,Size,Minimum Android,Developer Id,Developer Website,Developer Email,Released,Last Updated,Content Rating,Privacy Policy,Ad Supported,In App Purchases,Editors Choice,Scraped Time\n"

func readSample(t *testing.T, body string) ([]string, []RawRow) {
	t.Helper()
	header, rows, err := ReadCSV(strings.NewReader(sampleHeader + body))
	require.NoError(t, err)
	return header, rows
}

func TestParseCount(t *testing.T) {
	t.Run("should strip plus signs and thousands separators", func(t *testing.T) {
		assert.Equal(t, int64(1234), ParseCount("1,234+"))
		assert.Equal(t, int64(10000000), ParseCount("10,000,000+"))
	})
	t.Run("should truncate the float form written for columns with missing values", func(t *testing.T) {
		assert.Equal(t, int64(100), ParseCount("100.0"))
	})
	t.Run("should fall back to zero", func(t *testing.T) {
		assert.Equal(t, int64(0), ParseCount(""))
		assert.Equal(t, int64(0), ParseCount("many"))
		assert.Equal(t, int64(0), ParseCount("-5"))
	})
}

func TestParseRatingAndPrice(t *testing.T) {
	assert.Equal(t, 4.57, ParseRating("4.5678"))
	assert.Equal(t, 0.0, ParseRating("7"))
	assert.Equal(t, 0.0, ParseRating("n/a"))

	assert.True(t, decimal.RequireFromString("1.99").Equal(ParsePrice("1.989")))
	assert.True(t, decimal.RequireFromString("2.5").Equal(ParsePrice("$2.50")))
	assert.True(t, decimal.Zero.Equal(ParsePrice("-1")))
	assert.True(t, decimal.Zero.Equal(ParsePrice("")))
}

func TestParseDate(t *testing.T) {
	t.Run("should parse the play store format", func(t *testing.T) {
		d := ParseDate("Feb 26, 2020")
		require.NotNil(t, d)
		assert.Equal(t, "2020-02-26", time.Time(*d).Format("2006-01-02"))
	})
	t.Run("should return nil for unparsable values", func(t *testing.T) {
		assert.Nil(t, ParseDate("sometime last year"))
		assert.Nil(t, ParseDate(""))
	})
	t.Run("should parse scraped timestamps", func(t *testing.T) {
		ts := ParseTimestamp("2021-06-15 20:19:35")
		require.NotNil(t, ts)
		assert.Equal(t, 2021, ts.Year())
		assert.Nil(t, ParseTimestamp("yesterday"))
	})
}

func TestParseBool(t *testing.T) {
	for _, v := range []string{"True", "true", "1", "yes", "T"} {
		assert.True(t, ParseBool(v), v)
	}
	for _, v := range []string{"False", "0", "", "nope"} {
		assert.False(t, ParseBool(v), v)
	}
}

func TestSplitCategories(t *testing.T) {
	assert.Equal(t, []string{"Music", "Audio"}, SplitCategories(" Music & Audio "))
	assert.Equal(t, []string{"Tools"}, SplitCategories("Tools & Tools"))
	assert.Empty(t, SplitCategories("  "))
}

func TestNormalize(t *testing.T) {
	t.Run("should clean a complete record", func(t *testing.T) {
		_, rows := readSample(t, " Notes ,com.example.notes ,Productivity & Tools,4.456,\"1,234+\",\"10,000+\",10000,15464,True,0,USD,10M,7.0 and up, Example Inc ,https://example.com,dev@example.com,\"Feb 26, 2020\",\"Jun 1, 2021\",Everyone,https://example.com/privacy,False,True,False,2021-06-15 20:19:35\n")

		result := Normalize(rows)
		require.Len(t, result.Rows, 1)
		row := result.Rows[0]

		assert.Equal(t, "Notes", row.App.AppName)
		assert.Equal(t, "com.example.notes", row.App.AppID)
		assert.Equal(t, "Example Inc", row.DeveloperName)
		assert.Equal(t, []string{"Productivity", "Tools"}, row.Categories)
		assert.Equal(t, 4.46, row.App.Rating)
		assert.Equal(t, int64(1234), row.App.RatingCount)
		assert.Equal(t, int64(10000), row.App.Installs)
		assert.True(t, row.App.Free)
		assert.True(t, row.App.InAppPurchases)
		assert.False(t, row.App.AdSupported)
		require.NotNil(t, row.App.Released)
		assert.Equal(t, "2020-02-26", time.Time(*row.App.Released).Format("2006-01-02"))
		assert.Equal(t, 2, row.Line)
	})

	t.Run("should drop exact duplicates and records without required columns", func(t *testing.T) {
		record := "Notes,com.example.notes,Tools,4,1,1,1,1,True,0,USD,1M,4.0,Dev,,,,,Everyone,,False,False,False,\n"
		_, rows := readSample(t, record+record+
			",com.example.nameless,Tools,4,1,1,1,1,True,0,USD,1M,4.0,Dev,,,,,Everyone,,False,False,False,\n"+
			"Orphan,com.example.orphan,Tools,4,1,1,1,1,True,0,USD,1M,4.0,,,,,,Everyone,,False,False,False,\n")

		result := Normalize(rows)
		assert.Equal(t, 4, result.Total)
		assert.Equal(t, 1, result.Duplicates)
		assert.Len(t, result.Rows, 1)
		require.Len(t, result.Rejected, 2)
		assert.Equal(t, "missing App Name", result.Rejected[0].Reason)
		assert.Equal(t, "missing Developer Id", result.Rejected[1].Reason)
	})

	t.Run("should coerce malformed values instead of rejecting", func(t *testing.T) {
		_, rows := readSample(t, "Broken,com.example.broken,Tools,abc,lots,??,,,maybe,-3,,,,Dev,,,not a date,,,,,,,\n")

		result := Normalize(rows)
		require.Len(t, result.Rows, 1)
		app := result.Rows[0].App
		assert.Equal(t, 0.0, app.Rating)
		assert.Equal(t, int64(0), app.RatingCount)
		assert.True(t, app.Price.IsZero())
		assert.False(t, app.Free)
		assert.Nil(t, app.Released)
		assert.Nil(t, app.LastUpdated)
		assert.Equal(t, "", app.Currency)
	})
}

func TestRecordKey(t *testing.T) {
	assert.Equal(t, recordKey([]string{"Notes", "com.example.notes"}), recordKey([]string{"Notes", "com.example.notes"}))
	assert.NotEqual(t, recordKey([]string{"Notes", ""}), recordKey([]string{"Notes"}))
	assert.NotEqual(t, recordKey([]string{"a b", "c"}), recordKey([]string{"a", "b c"}))
}
