package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/l3montree-dev/appcatalog/dtos"
	"github.com/l3montree-dev/appcatalog/utils"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootExamplesUseRegisteredFlags(t *testing.T) {
	root := NewRootCommand()
	examples := 0
	for _, line := range strings.Split(root.Example, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] != root.Name() {
			continue
		}
		examples++

		cmd, _, err := root.Find(fields[1:])
		require.NoError(t, err, line)
		for _, field := range fields[1:] {
			if !strings.HasPrefix(field, "--") {
				continue
			}
			name, _, _ := strings.Cut(strings.TrimPrefix(field, "--"), "=")
			flag := cmd.Flags().Lookup(name)
			if flag == nil {
				flag = cmd.InheritedFlags().Lookup(name)
			}
			assert.NotNil(t, flag, "unknown flag --%s in example %q", name, strings.TrimSpace(line))
		}
	}
	assert.Equal(t, 3, examples)
}

func TestParseConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		v := viper.New()
		require.NoError(t, parseConfig(v))
		assert.Equal(t, outputTable, runtimeConfig.Output)
		assert.Equal(t, 15*time.Second, runtimeConfig.Timeout)
	})

	t.Run("decodes durations and output formats", func(t *testing.T) {
		v := viper.New()
		v.Set("apiUrl", "http://localhost:8080/")
		v.Set("timeout", "3s")
		v.Set("output", "YAML")
		require.NoError(t, parseConfig(v))
		assert.Equal(t, "http://localhost:8080", runtimeConfig.APIURL)
		assert.Equal(t, 3*time.Second, runtimeConfig.Timeout)
		assert.Equal(t, outputYAML, runtimeConfig.Output)
	})

	t.Run("rejects unknown output formats", func(t *testing.T) {
		v := viper.New()
		v.Set("output", "xml")
		assert.Error(t, parseConfig(v))
	})

	t.Run("rejects relative api urls", func(t *testing.T) {
		v := viper.New()
		v.Set("apiUrl", "localhost:8080")
		assert.Error(t, parseConfig(v))
	})
}

func TestAppQueryFromFlags(t *testing.T) {
	flags := pflag.NewFlagSet("list", pflag.ContinueOnError)
	newAppsListCommand().Flags().VisitAll(func(f *pflag.Flag) { flags.AddFlag(f) })
	require.NoError(t, flags.Parse([]string{"--category", "Tools", "--minRating", "0", "--maxPrice", "1.99", "-p", "3"}))

	q, err := appQueryFromFlags(flags)
	require.NoError(t, err)
	assert.Equal(t, "Tools", q.Category)
	// an explicit zero is still a filter
	require.NotNil(t, q.MinRating)
	assert.Equal(t, 0.0, *q.MinRating)
	assert.Equal(t, "1.99", q.MaxPrice.String())
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 10, q.PageSize)
}

func TestApplyAppFlags(t *testing.T) {
	flags := pflag.NewFlagSet("update", pflag.ContinueOnError)
	addAppFlags(flags)
	require.NoError(t, flags.Parse([]string{"--name", "Notes Pro", "--price", "2.49", "--categories", "Tools,Productivity", "--developerId", "0"}))

	req := dtos.AppUpdateRequest{AppName: "Notes", Size: "12M", Rating: 4.1, DeveloperID: utils.Ptr(int64(3))}
	require.NoError(t, applyAppFlags(flags, &req))

	assert.Equal(t, "Notes Pro", req.AppName)
	assert.True(t, req.Price.Equal(decimal.RequireFromString("2.49")))
	assert.Equal(t, []string{"Tools", "Productivity"}, req.Categories)
	assert.Nil(t, req.DeveloperID)
	assert.Equal(t, "12M", req.Size)
	assert.Equal(t, 4.1, req.Rating)
}

func TestAppsListCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/apps/", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "Everyone", r.URL.Query().Get("content_rating"))
		_ = json.NewEncoder(w).Encode(dtos.AppListResponse{
			Total: 25, Page: 2, PageSize: 10,
			Apps: []dtos.AppDTO{
				{AppID: "com.example.notes", AppName: "Notes", Rating: 4.6, Installs: 12000, Price: decimal.Zero, Categories: []string{"Productivity"}},
			},
		})
	}))
	defer server.Close()

	out, err := execute(t, "--apiUrl", server.URL, "apps", "list", "--page", "2", "--contentRating", "Everyone")

	require.NoError(t, err)
	assert.Contains(t, out, "com.example.notes")
	assert.Contains(t, out, "12,000")
	assert.Contains(t, out, "page 2 of 3: 1 [2] 3 (25 apps)")
	assert.Contains(t, out, "4.50-4.75")
}

func TestAppsGetCommandYAML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/apps/com.example.notes/", r.URL.Path)
		_ = json.NewEncoder(w).Encode(dtos.AppDTO{AppID: "com.example.notes", AppName: "Notes", Price: decimal.RequireFromString("0.99")})
	}))
	defer server.Close()

	out, err := execute(t, "--apiUrl", server.URL, "-o", "yaml", "apps", "get", "com.example.notes")

	require.NoError(t, err)
	assert.Contains(t, out, "app_id: com.example.notes")
	assert.Contains(t, out, "app_name: Notes")
	assert.Contains(t, out, `price: "0.99"`)
}

func TestAppsDeleteCommandNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"app not found"}`))
	}))
	defer server.Close()

	_, err := execute(t, "--apiUrl", server.URL, "apps", "delete", "missing")

	assert.EqualError(t, err, "api returned 404: app not found")
}

func TestStatsRatingsCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/apps/ratings/", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]dtos.CategoryRatingDTO{
			{Category: "Games", AverageRating: 4.125, AppCount: 1500},
			{Category: "Tools", AverageRating: 3.5, AppCount: 2},
		})
	}))
	defer server.Close()
	t.Setenv("APPCATALOG_API_URL", server.URL)
	t.Setenv("APPCATALOG_API_TIMEOUT", "7s")

	out, err := execute(t, "stats", "ratings")

	require.NoError(t, err)
	assert.Equal(t, 7*time.Second, runtimeConfig.Timeout)
	assert.Contains(t, out, "Games")
	assert.Contains(t, out, "1,500")
	assert.Contains(t, out, "1,502")
}

func TestImportDryRun(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "apps.csv")
	rejectedPath := filepath.Join(dir, "rejected.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(`App Name,App Id,Category,Rating,Developer Id
Notes,com.example.notes,Productivity & Tools,4.5,Example Inc
Notes,com.example.notes,Productivity & Tools,4.5,Example Inc
,com.example.broken,Tools,3,Example Inc
`), 0o600))

	out, err := execute(t, "-o", "json", "import", csvPath, "--dryRun", "--noProgress", "--rejected", rejectedPath)

	require.NoError(t, err)
	var summary map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, true, summary["dry_run"])
	assert.Equal(t, 3.0, summary["rows_read"])
	assert.Equal(t, 1.0, summary["duplicates"])
	assert.Equal(t, 1.0, summary["rejected"])
	assert.Equal(t, 2.0, summary["category_links"])

	rejected, err := os.ReadFile(rejectedPath)
	require.NoError(t, err)
	assert.Contains(t, string(rejected), "missing App Name")
}

func TestImportRejectsBatchSize(t *testing.T) {
	_, err := execute(t, "import", "whatever.csv", "--batchSize", "5000")
	assert.EqualError(t, err, "batch size must be between 1 and 2500")
}
