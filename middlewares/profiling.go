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

package middlewares

import (
	"log/slog"
	"net/http/pprof"

	"github.com/labstack/echo/v4"
)

// AddProfileEndpoints exposes the net/http/pprof handlers below /debug/pprof/
func AddProfileEndpoints(e *echo.Echo) {
	slog.Warn("adding profile debug endpoints")
	g := e.Group("/debug/pprof")

	g.GET("/", echo.WrapHandler(pprofIndex()))
	g.GET("/cmdline/", echo.WrapHandler(pprofFunc(pprof.Cmdline)))
	g.GET("/profile/", echo.WrapHandler(pprofFunc(pprof.Profile)))
	g.GET("/symbol/", echo.WrapHandler(pprofFunc(pprof.Symbol)))
	g.POST("/symbol/", echo.WrapHandler(pprofFunc(pprof.Symbol)))
	g.GET("/trace/", echo.WrapHandler(pprofFunc(pprof.Trace)))

	for _, name := range []string{"heap", "goroutine", "block", "threadcreate", "mutex", "allocs"} {
		g.GET("/"+name+"/", echo.WrapHandler(pprof.Handler(name)))
	}
}
