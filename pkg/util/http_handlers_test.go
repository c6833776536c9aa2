package util_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/buildbarn/bb-paged-buffer/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestNewDiagnosticsHTTPRouter(t *testing.T) {
	router := util.NewDiagnosticsHTTPRouter()

	for _, path := range []string{"/-/healthy", "/metrics"} {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, recorder.Code, path)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/nonexistent", nil))
	require.Equal(t, http.StatusNotFound, recorder.Code)
}
