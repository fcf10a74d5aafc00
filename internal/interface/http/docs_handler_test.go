package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-records/internal/domain/entity"
	handlers "github.com/oksasatya/go-ddd-records/internal/interface/http"
)

func newDocsHandler() *handlers.DocsHandler {
	return handlers.NewDocsHandler("records <api>", "1.2.3",
		entity.UserSchema.Describe(),
		entity.RoleSchema.Describe(),
		entity.PermissionSchema.Describe(),
	)
}

func TestDocsRootRedirects(t *testing.T) {
	r := gin.New()
	h := newDocsHandler()
	r.GET("/", h.Root)

	res := do(t, r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusTemporaryRedirect, res.Code)
	assert.Equal(t, "/docs", res.Header().Get("Location"))
}

func TestDocsPageEscapesTitle(t *testing.T) {
	r := gin.New()
	r.GET("/docs", newDocsHandler().Page)

	res := do(t, r, http.MethodGet, "/docs", "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, res.Body.String(), "<title>records &lt;api&gt; - docs</title>")
	assert.Contains(t, res.Body.String(), `src="/static/docs.js"`)
}

func TestDocumentDescribesEveryRecordRoute(t *testing.T) {
	doc := newDocsHandler().Document()

	assert.Equal(t, "3.0.3", doc["openapi"])
	assert.Equal(t, map[string]any{"title": "records <api>", "version": "1.2.3"}, doc["info"])

	paths := doc["paths"].(map[string]any)
	assert.Len(t, paths, 6)
	for _, p := range []string{"user", "role", "permission"} {
		coll, ok := paths["/"+p+"/"].(map[string]any)
		require.True(t, ok, p)
		assert.Contains(t, coll, "post")
		assert.Contains(t, coll, "get")

		item, ok := paths["/"+p+"/{id}"].(map[string]any)
		require.True(t, ok, p)
		assert.Contains(t, item, "get")
		assert.Contains(t, item, "put")
		assert.Contains(t, item, "delete")
	}

	schemas := doc["components"].(map[string]any)["schemas"].(map[string]any)
	for _, name := range []string{"User", "UserCreate", "Role", "RoleCreate", "Permission", "PermissionCreate", "HTTPError", "ValidationError", "Ack"} {
		assert.Contains(t, schemas, name)
	}
	user := schemas["User"].(map[string]any)
	assert.Equal(t, []string{"id", "username", "email"}, user["required"])
}

func TestOpenAPIServesJSON(t *testing.T) {
	r := gin.New()
	r.GET("/openapi.json", newDocsHandler().OpenAPI)

	res := do(t, r, http.MethodGet, "/openapi.json", "")
	require.Equal(t, http.StatusOK, res.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &doc))
	assert.Contains(t, doc["paths"], "/role/{id}")
}

func TestStaticFSHasDocsAssets(t *testing.T) {
	fsys := handlers.StaticFS()
	for _, name := range []string{"/docs.js", "/docs.css"} {
		f, err := fsys.Open(name)
		require.NoError(t, err, name)
		b, err := io.ReadAll(f)
		_ = f.Close()
		require.NoError(t, err)
		assert.NotEmpty(t, b, name)
	}
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

func TestHealthCheck(t *testing.T) {
	cases := []struct {
		name string
		db   handlers.Pinger
		code int
		body string
	}{
		{"ok", stubPinger{}, http.StatusOK, `{"status":"ok"}`},
		{"ping fails", stubPinger{err: errors.New("dial tcp: refused")}, http.StatusServiceUnavailable, `{"detail":"database unavailable"}`},
		{"no database", nil, http.StatusServiceUnavailable, `{"detail":"database not configured"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/healthz", handlers.NewHealthHandler(tc.db, nil).Check)

			res := do(t, r, http.MethodGet, "/healthz", "")
			assert.Equal(t, tc.code, res.Code)
			assert.JSONEq(t, tc.body, res.Body.String())
		})
	}
}
