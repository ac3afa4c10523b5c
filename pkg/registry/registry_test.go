package registry_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mulled-tools/mulled/pkg/errdefs"
	"github.com/mulled-tools/mulled/pkg/registry"
)

const testImage = "mulled-v2-1f09f39f20b1c4ee36581dc81cc323c70e661633:bd74d08a359024829a7aec1638a28607bbcd8a58-0"

func newTestClient(t *testing.T, handler http.Handler) (*registry.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := registry.NewClient(srv.URL)
	require.NoError(t, err)
	return client, srv
}

func TestImageExists(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))

	exists, err := client.ImageExists(t.Context(), testImage)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "/biocontainers/"+testImage+"/", gotPath)
}

func TestImageExistsNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	exists, err := client.ImageExists(t.Context(), testImage)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestImageExistsFollowsRedirect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/biocontainers/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/repository"+r.URL.Path, http.StatusMovedPermanently)
	})
	mux.HandleFunc("/repository/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	client, _ := newTestClient(t, mux)

	exists, err := client.ImageExists(t.Context(), testImage)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestImageExistsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	client, err := registry.NewClient(srv.URL)
	require.NoError(t, err)
	srv.Close()

	exists, err := client.ImageExists(t.Context(), testImage)
	require.Error(t, err)
	assert.ErrorIs(t, err, errdefs.ErrUnavailable)
	assert.False(t, exists)
}

func TestNewClientDefaults(t *testing.T) {
	client, err := registry.NewClient("")
	require.NoError(t, err)
	assert.Equal(t, registry.DefaultHost, client.Host)
	assert.Equal(t, "https", client.Scheme)
	assert.Equal(t,
		"https://quay.io/biocontainers/"+testImage+"/",
		client.ImageURL(testImage))
}
