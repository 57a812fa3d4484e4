package database

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// newPool closes the pool when the application stops
func newPool(lc fx.Lifecycle, cfg PoolConfig) (*pgxpool.Pool, error) {
	pool, err := NewPgxConnPool(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(pool.Close))
	return pool, nil
}

// newGormDB releases the connections it holds before the pool is closed
func newGormDB(lc fx.Lifecycle, pool *pgxpool.Pool) (*gorm.DB, error) {
	db, err := NewGormDB(pool)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(sqlDB.Close))
	return db, nil
}

// Module provides the pgx pool and the gorm database on top of it
var Module = fx.Options(
	fx.Provide(GetPoolConfigFromEnv),
	fx.Provide(newPool),
	fx.Provide(newGormDB),
)
