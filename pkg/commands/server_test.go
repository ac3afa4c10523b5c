package commands

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mulled-tools/mulled/pkg/registry"
)

const testServerImage = "mulled-v2-1f09f39f20b1c4ee36581dc81cc323c70e661633:bd74d08a359024829a7aec1638a28607bbcd8a58-0"

func newTestRouter(t *testing.T, handler http.Handler) (http.Handler, *registry.Client) {
	t.Helper()
	backend := httptest.NewServer(handler)
	t.Cleanup(backend.Close)
	client, err := registry.NewClient(backend.URL)
	require.NoError(t, err)
	return NewServerCommand().newRouter(client), client
}

func TestServerPing(t *testing.T) {
	router, _ := newTestRouter(t, http.NotFoundHandler())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestServerIndexPage(t *testing.T) {
	router, _ := newTestRouter(t, http.NotFoundHandler())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "biocontainers")
	assert.Contains(t, rec.Body.String(), "Generate Name")
}

func TestServerGenerate(t *testing.T) {
	router, client := newTestRouter(t, http.NotFoundHandler())

	body := `{"targets":[
		{"tool":"chromap","version":"0.2.1"},
		{"tool":"samtools","version":"1.15"},
		{"tool":"","version":""}
	]}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, testServerImage, resp.Image)
	assert.Equal(t, client.ImageURL(testServerImage), resp.RegistryURL)
	assert.Nil(t, resp.Exists)
}

func TestServerGenerateWithCheck(t *testing.T) {
	var requestedPath string
	router, _ := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))

	body := `{"targets":[
		{"tool":"chromap","version":"0.2.1"},
		{"tool":"samtools","version":"1.15"}
	],"check":true}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Exists)
	assert.True(t, *resp.Exists)
	assert.Equal(t, "/biocontainers/"+testServerImage+"/", requestedPath)
}

func TestServerGenerateEmptyTargets(t *testing.T) {
	router, _ := newTestRouter(t, http.NotFoundHandler())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{"targets":[]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestServerGenerateMalformedBody(t *testing.T) {
	router, _ := newTestRouter(t, http.NotFoundHandler())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{"targets":`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
