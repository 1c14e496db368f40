package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPath is the path prefix the profiling handlers are served under.
const PprofPath = "/debug/pprof"

// PprofMux returns an http.ServeMux with net/http/pprof handlers registered
// under PprofPath. It can be mounted at PprofPath in the main HTTP server.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc(PprofPath+"/", pprof.Index)
	mux.HandleFunc(PprofPath+"/cmdline", pprof.Cmdline)
	mux.HandleFunc(PprofPath+"/profile", pprof.Profile)
	mux.HandleFunc(PprofPath+"/symbol", pprof.Symbol)
	mux.HandleFunc(PprofPath+"/trace", pprof.Trace)

	return mux
}
