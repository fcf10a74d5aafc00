package modules

import (
	"net/http"

	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-ddd-records/internal/interface/http"
)

// DocsModule serves GET / (redirect), /docs, /openapi.json and /static.
type DocsModule struct {
	Handler   *handlers.DocsHandler
	StaticDir string // empty serves the embedded assets
}

func NewDocsModule(h *handlers.DocsHandler, staticDir string) *DocsModule {
	return &DocsModule{Handler: h, StaticDir: staticDir}
}

func (m *DocsModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.Root)
	rg.GET("/docs", m.Handler.Page)
	rg.GET("/openapi.json", m.Handler.OpenAPI)

	var fs http.FileSystem = handlers.StaticFS()
	if m.StaticDir != "" {
		fs = gin.Dir(m.StaticDir, false)
	}
	rg.StaticFS("/static", fs)
}
