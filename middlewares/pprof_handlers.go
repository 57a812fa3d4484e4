package middlewares

import (
	"net/http"
	"net/http/pprof"
)

func pprofIndex() http.Handler {
	return http.HandlerFunc(pprof.Index)
}

func pprofFunc(f func(http.ResponseWriter, *http.Request)) http.Handler {
	return http.HandlerFunc(f)
}
