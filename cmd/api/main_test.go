package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootRedirectsToStaticIndex(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	rootRedirect(rr, req)

	require.Equal(t, http.StatusTemporaryRedirect, rr.Code)
	require.Equal(t, "/static/index.html", rr.Header().Get("Location"))
}

func TestRootRejectsUnknownPaths(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rr := httptest.NewRecorder()

	rootRedirect(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestStaticAssetsEmbedded(t *testing.T) {
	fileServer := http.FileServer(http.FS(staticFiles))

	for _, path := range []string{"/static/index.html", "/static/app.js", "/static/styles.css"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		fileServer.ServeHTTP(rr, req)
		require.Equalf(t, http.StatusOK, rr.Code, "expected %s to be served", path)
		require.NotZero(t, rr.Body.Len())
	}
}
