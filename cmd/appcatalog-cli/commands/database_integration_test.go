package commands

import (
	"context"
	"testing"
	"time"

	"github.com/l3montree-dev/appcatalog/integrationtestutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithDatabase(t *testing.T) {
	integrationtestutil.SetupDatabaseEnv(t)

	t.Run("should migrate the schema", func(t *testing.T) {
		out, err := execute(t, "migrate")
		require.NoError(t, err)
		assert.Equal(t, "schema at version 1 (dirty: false)\n", out)
	})

	t.Run("should provide the repositories", func(t *testing.T) {
		err := runWithDatabase(context.Background(), time.Minute, func(ctx context.Context, deps databaseDeps) error {
			assert.NotNil(t, deps.DB)
			assert.NotNil(t, deps.AppRepository)
			assert.NotNil(t, deps.DeveloperRepository)
			assert.NotNil(t, deps.CategoryRepository)
			_, err := deps.AppRepository.All(ctx)
			return err
		})
		assert.NoError(t, err)
	})

	t.Run("should cancel the work after the timeout", func(t *testing.T) {
		err := runWithDatabase(context.Background(), 50*time.Millisecond, func(ctx context.Context, deps databaseDeps) error {
			return deps.DB.WithContext(ctx).Exec("SELECT pg_sleep(5)").Error
		})
		assert.Error(t, err)
	})
}
