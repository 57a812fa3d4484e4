package importer_test

import (
	"context"
	"strings"
	"testing"

	"github.com/l3montree-dev/appcatalog/database/models"
	"github.com/l3montree-dev/appcatalog/database/repositories"
	"github.com/l3montree-dev/appcatalog/importer"
	"github.com/l3montree-dev/appcatalog/integrationtestutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvFixture = `App Name,App Id,Category,Rating,Rating Count,Installs,Minimum Installs,Maximum Installs,Free,Price,Currency,Size,Minimum Android,Developer Id,Developer Website,Developer Email,Released,Last Updated,Content Rating,Privacy Policy,Ad Supported,In App Purchases,Editors Choice,Scraped Time
Notes,com.example.notes,Productivity & Tools,4.5,"1,234+","10,000+",10000,15464,True,0,USD,10M,7.0 and up,Example Inc,https://example.com,dev@example.com,"Feb 26, 2020","Jun 1, 2021",Everyone,,False,True,False,2021-06-15 20:19:35
Timer,com.example.timer,Tools,3.9,10,100+,100,150,False,1.99,USD,2M,5.0 and up,Example Inc,,,,"not a date",Teen,,True,False,False,
Paint,com.other.paint,Art & Design,4.1,55,"1,000+",1000,2000,True,0,USD,5M,6.0 and up,Other Studio,,,"Jan 3, 2019","Mar 4, 2021",Everyone,,False,False,False,
Nameless,,Tools,4.1,55,"1,000+",1000,2000,True,0,USD,5M,6.0 and up,Other Studio,,,,,Everyone,,False,False,False,
`

func countRows(t *testing.T, repoCount func() (int64, error)) int64 {
	t.Helper()
	n, err := repoCount()
	require.NoError(t, err)
	return n
}

func TestImportTwiceIsIdempotent(t *testing.T) {
	db := integrationtestutil.SetupDatabase(t)
	integrationtestutil.TruncateAll(t, db)
	ctx := context.Background()

	appRepository := repositories.NewAppRepository(db)
	imp := importer.NewImporter(appRepository, repositories.NewDeveloperRepository(db), repositories.NewCategoryRepository(db))

	_, rows, err := importer.ReadCSV(strings.NewReader(csvFixture))
	require.NoError(t, err)
	normalized := importer.Normalize(rows)
	require.Len(t, normalized.Rejected, 1)

	first, err := imp.Load(ctx, normalized, importer.Options{Mode: importer.ModeSkip})
	require.NoError(t, err)
	assert.Equal(t, int64(3), first.AppsInserted)

	second, err := imp.Load(ctx, normalized, importer.Options{Mode: importer.ModeSkip})
	require.NoError(t, err)
	assert.Equal(t, int64(0), second.AppsInserted)
	assert.Equal(t, int64(3), second.AppsSkipped)

	count := func(model any) func() (int64, error) {
		return func() (int64, error) {
			var n int64
			return n, db.Model(model).Count(&n).Error
		}
	}
	assert.Equal(t, int64(3), countRows(t, count(&models.App{})))
	assert.Equal(t, int64(2), countRows(t, count(&models.Developer{})))
	assert.Equal(t, int64(4), countRows(t, count(&models.Category{})))
	assert.Equal(t, int64(5), countRows(t, count(&models.AppCategory{})))

	notes, err := appRepository.ReadWithRelations(ctx, nil, "com.example.notes")
	require.NoError(t, err)
	assert.Equal(t, int64(1234), notes.RatingCount)
	require.NotNil(t, notes.Developer)
	assert.Equal(t, "Example Inc", notes.Developer.DeveloperName)
	assert.ElementsMatch(t, []string{"Productivity", "Tools"}, notes.CategoryNames())

	timer, err := appRepository.ReadWithRelations(ctx, nil, "com.example.timer")
	require.NoError(t, err)
	assert.Nil(t, timer.LastUpdated)

	t.Run("should fail on existing apps in always mode", func(t *testing.T) {
		_, err := imp.Load(ctx, normalized, importer.Options{Mode: importer.ModeAlways})
		assert.Error(t, err)
	})
}
