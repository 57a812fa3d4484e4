// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package router

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/appcatalog/database"
	"github.com/l3montree-dev/appcatalog/shared"
	"github.com/labstack/echo/v4"
)

// Filled at build time
var (
	Version   string
	Commit    string
	BuildDate string
)

var StartedAt = time.Now()

// InfoResponse is returned by the /info/ endpoint.
type InfoResponse struct {
	Build    BuildInfo    `json:"build"`
	Process  ProcessInfo  `json:"process"`
	Runtime  RuntimeInfo  `json:"runtime"`
	Database DatabaseInfo `json:"database"`
}

type BuildInfo struct {
	Version   string `json:"version,omitempty"`
	Commit    string `json:"commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

type ProcessInfo struct {
	PID           int    `json:"pid"`
	Hostname      string `json:"hostname,omitempty"`
	UptimeSeconds int    `json:"uptime_seconds"`
}

type RuntimeInfo struct {
	GoVersion     string `json:"go_version"`
	NumGoroutines int    `json:"num_goroutines"`
	HeapAlloc     uint64 `json:"heap_alloc"`
}

// PoolInfo holds the non sensitive pool configuration and live statistics
type PoolInfo struct {
	DBName        string `json:"db_name,omitempty"`
	MaxConns      int32  `json:"max_conns"`
	TotalConns    int32  `json:"total_conns"`
	IdleConns     int32  `json:"idle_conns"`
	AcquiredConns int32  `json:"acquired_conns"`
}

type DatabaseInfo struct {
	Status           string    `json:"status"`
	Error            *string   `json:"error,omitempty"`
	MigrationVersion *uint     `json:"migration_version,omitempty"`
	MigrationDirty   *bool     `json:"migration_dirty,omitempty"`
	Pool             *PoolInfo `json:"pool,omitempty"`
}

func pingDB(db shared.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func healthHandler(db shared.DB) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if err := pingDB(db); err != nil {
			return ctx.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  "database ping failed",
			})
		}
		return ctx.JSON(http.StatusOK, map[string]string{
			"status": "ok",
		})
	}
}

func infoHandler(db shared.DB, pool *pgxpool.Pool) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)

		resp := InfoResponse{
			Build: BuildInfo{
				Version:   Version,
				Commit:    Commit,
				BuildDate: BuildDate,
			},
			Runtime: RuntimeInfo{
				GoVersion:     runtime.Version(),
				NumGoroutines: runtime.NumGoroutine(),
				HeapAlloc:     mem.HeapAlloc,
			},
			Process: ProcessInfo{
				PID:           os.Getpid(),
				UptimeSeconds: int(time.Since(StartedAt).Seconds()),
			},
		}
		resp.Process.Hostname, _ = os.Hostname()

		dbInfo := DatabaseInfo{Status: "healthy"}
		if err := pingDB(db); err != nil {
			errMsg := "database ping failed"
			dbInfo.Status = "unhealthy"
			dbInfo.Error = &errMsg
			resp.Database = dbInfo
			return ctx.JSON(http.StatusOK, resp)
		}

		if ver, dirty, err := database.GetMigrationVersionWithDB(db); err == nil {
			dbInfo.MigrationVersion = &ver
			dbInfo.MigrationDirty = &dirty
		}

		if pool != nil {
			stats := pool.Stat()
			dbInfo.Pool = &PoolInfo{
				DBName:        pool.Config().ConnConfig.Database,
				MaxConns:      stats.MaxConns(),
				TotalConns:    stats.TotalConns(),
				IdleConns:     stats.IdleConns(),
				AcquiredConns: stats.AcquiredConns(),
			}
		}
		resp.Database = dbInfo

		return ctx.JSON(http.StatusOK, resp)
	}
}
