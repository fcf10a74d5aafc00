package modules

import (
	"github.com/gin-gonic/gin"
)

// RecordRoutes is implemented by handlers.RecordHandler for every record type.
type RecordRoutes interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// RecordModule mounts the five record routes under /<path>/:
// POST and GET on the collection, GET, PUT and DELETE on /<path>/:id.
type RecordModule struct {
	Path       string
	Handler    RecordRoutes
	Middleware []gin.HandlerFunc
}

func NewRecordModule(path string, h RecordRoutes, mw ...gin.HandlerFunc) *RecordModule {
	return &RecordModule{Path: path, Handler: h, Middleware: mw}
}

func (m *RecordModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/"+m.Path, m.Middleware...)
	{
		g.POST("/", m.Handler.Create)
		g.GET("/", m.Handler.List)
		g.GET("/:id", m.Handler.Get)
		g.PUT("/:id", m.Handler.Update)
		g.DELETE("/:id", m.Handler.Delete)
	}
}
