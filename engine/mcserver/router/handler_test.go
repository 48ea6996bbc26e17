package router

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftchat/craftchat/engine/mcserver"
	"github.com/craftchat/craftchat/web"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mcserver.Registry) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	registry := mcserver.NewRegistry()
	router := gin.New()
	router.SetHTMLTemplate(web.Templates())
	RegisterRoutes(router, registry)
	return router, registry
}

func getPage(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAdminPage(t *testing.T) {
	t.Run("Should render the empty state", func(t *testing.T) {
		router, _ := newTestRouter(t)
		rec := getPage(router, "/admin")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "No servers configured yet.")
	})

	t.Run("Should show the key hint but never the full key", func(t *testing.T) {
		router, registry := newTestRouter(t)
		registry.SetAPIKey("sk-secret-abcdef")

		rec := getPage(router, "/admin")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "sk-sec...")
		assert.NotContains(t, rec.Body.String(), "sk-secret-abcdef")
	})
}

func TestAddServer(t *testing.T) {
	t.Run("Should add a server and redirect", func(t *testing.T) {
		router, registry := newTestRouter(t)

		rec := postForm(router, "/admin", url.Values{
			"name": {"TestServer"},
			"host": {"localhost"},
			"port": {"1234"},
		})
		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, 1, registry.Len())

		cfg := registry.List()[0]
		assert.Equal(t, "TestServer", cfg.Name)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 1234, cfg.Port)
		assert.Equal(t, mcserver.DefaultType, cfg.Type)

		listed := getPage(router, "/admin")
		assert.Contains(t, listed.Body.String(), "TestServer")
		assert.NotContains(t, listed.Body.String(), "No servers configured yet.")
	})

	t.Run("Should redisplay with an error when fields are missing", func(t *testing.T) {
		router, registry := newTestRouter(t)

		rec := postForm(router, "/admin", url.Values{
			"name": {"Incomplete"},
			"port": {"5678"},
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "All fields are required.")
		assert.Equal(t, 0, registry.Len())
	})

	t.Run("Should redisplay with an error for an invalid port", func(t *testing.T) {
		router, registry := newTestRouter(t)

		for _, port := range []string{"abc", "0", "70000"} {
			rec := postForm(router, "/admin", url.Values{
				"name": {"BadPort"},
				"host": {"testhost"},
				"port": {port},
			})
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), "Invalid port number.")
		}
		assert.Equal(t, 0, registry.Len())
	})
}

func TestSaveAPIKey(t *testing.T) {
	t.Run("Should save a non-blank key", func(t *testing.T) {
		router, registry := newTestRouter(t)

		rec := postForm(router, "/admin/save_api_key", url.Values{"api_key": {"sk-new-key"}})
		require.Equal(t, http.StatusFound, rec.Code)
		assert.Contains(t, rec.Header().Get("Location"), "message=")
		assert.Equal(t, "sk-new-key", registry.APIKey())
	})

	t.Run("Should warn and keep the old key on blank input", func(t *testing.T) {
		router, registry := newTestRouter(t)
		registry.SetAPIKey("sk-old-key")

		rec := postForm(router, "/admin/save_api_key", url.Values{"api_key": {"  "}})
		require.Equal(t, http.StatusFound, rec.Code)
		assert.Contains(t, rec.Header().Get("Location"), "warning=")
		assert.Equal(t, "sk-old-key", registry.APIKey())
	})
}

func TestDeleteServer(t *testing.T) {
	t.Run("Should remove the server at the index", func(t *testing.T) {
		router, registry := newTestRouter(t)
		require.NoError(t, registry.Add(mcserver.ServerConfig{Name: "A", Host: "h", Port: 1}))
		require.NoError(t, registry.Add(mcserver.ServerConfig{Name: "B", Host: "h", Port: 2}))

		rec := postForm(router, "/admin/delete_server/0", nil)
		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, 1, registry.Len())
		assert.Equal(t, "B", registry.List()[0].Name)
	})

	t.Run("Should report an error and change nothing for a bad index", func(t *testing.T) {
		router, registry := newTestRouter(t)
		require.NoError(t, registry.Add(mcserver.ServerConfig{Name: "A", Host: "h", Port: 1}))

		for _, path := range []string{"/admin/delete_server/9", "/admin/delete_server/nope"} {
			rec := postForm(router, path, nil)
			require.Equal(t, http.StatusFound, rec.Code)
			assert.Contains(t, rec.Header().Get("Location"), "error=")
		}
		assert.Equal(t, 1, registry.Len())
	})
}

func TestEditServer(t *testing.T) {
	t.Run("Should show the current values", func(t *testing.T) {
		router, registry := newTestRouter(t)
		require.NoError(t, registry.Add(mcserver.ServerConfig{Name: "EditMe", Host: "mc.edit.example", Port: 25565}))

		rec := getPage(router, "/admin/edit_server/0")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "EditMe")
		assert.Contains(t, rec.Body.String(), "mc.edit.example")
		assert.Contains(t, rec.Body.String(), "25565")
	})

	t.Run("Should redirect to admin for an unknown index", func(t *testing.T) {
		router, _ := newTestRouter(t)
		rec := getPage(router, "/admin/edit_server/3")
		require.Equal(t, http.StatusFound, rec.Code)
		assert.Contains(t, rec.Header().Get("Location"), "error=")
	})

	t.Run("Should replace the record on a valid submission", func(t *testing.T) {
		router, registry := newTestRouter(t)
		require.NoError(t, registry.Add(mcserver.ServerConfig{Name: "Old", Host: "h", Port: 1}))

		rec := postForm(router, "/admin/edit_server/0", url.Values{
			"name": {"New"},
			"host": {"h2"},
			"port": {"2"},
			"type": {"Minecraft Java"},
		})
		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, 1, registry.Len())
		assert.Equal(t, "New", registry.List()[0].Name)
	})

	t.Run("Should redisplay the form with an error on bad input", func(t *testing.T) {
		router, registry := newTestRouter(t)
		require.NoError(t, registry.Add(mcserver.ServerConfig{Name: "Keep", Host: "h", Port: 1}))

		rec := postForm(router, "/admin/edit_server/0", url.Values{
			"name": {"New"},
			"host": {"h2"},
			"port": {"not-a-port"},
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid port number.")
		assert.Equal(t, "Keep", registry.List()[0].Name)
	})
}

func TestAdminLifecycle(t *testing.T) {
	t.Run("Should add, edit and delete a server end to end", func(t *testing.T) {
		router, registry := newTestRouter(t)
		baseline := registry.Len()

		rec := postForm(router, "/admin", url.Values{
			"name": {"T"}, "host": {"h"}, "port": {"1234"},
		})
		require.Equal(t, http.StatusFound, rec.Code)
		index := registry.Len() - 1

		rec = postForm(router, "/admin/edit_server/0", url.Values{
			"name": {"T2"}, "host": {"h"}, "port": {"1234"},
		})
		require.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "T2", registry.List()[index].Name)

		rec = postForm(router, "/admin/delete_server/0", nil)
		require.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, baseline, registry.Len())
	})
}
