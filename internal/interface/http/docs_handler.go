package handlers

import (
	"embed"
	"html"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-records/internal/domain/entity"
)

//go:embed static
var staticFiles embed.FS

// StaticFS returns the embedded assets rooted at the static directory.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

const docsPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{TITLE}} - docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
  <link rel="stylesheet" href="/static/docs.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script src="/static/docs.js"></script>
</body>
</html>
`

// DocsHandler serves the interactive API documentation and the OpenAPI
// document it renders.
type DocsHandler struct {
	Title   string
	Version string
	Records []entity.Descriptor
}

func NewDocsHandler(title, version string, records ...entity.Descriptor) *DocsHandler {
	return &DocsHandler{Title: title, Version: version, Records: records}
}

func (h *DocsHandler) Root(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, "/docs")
}

func (h *DocsHandler) Page(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(renderDocsPage(h.Title)))
}

func (h *DocsHandler) OpenAPI(c *gin.Context) {
	c.JSON(http.StatusOK, h.Document())
}

// Document builds an OpenAPI 3 description of the record routes.
func (h *DocsHandler) Document() map[string]any {
	paths := map[string]any{}
	schemas := map[string]any{
		"HTTPError": object(map[string]any{"detail": map[string]any{"type": "string"}}, "detail"),
		"ValidationError": object(map[string]any{
			"detail": map[string]any{
				"type": "array",
				"items": object(map[string]any{
					"loc":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"msg":  map[string]any{"type": "string"},
					"type": map[string]any{"type": "string"},
				}, "loc", "msg", "type"),
			},
		}, "detail"),
		"Ack": object(map[string]any{"ok": map[string]any{"type": "boolean"}}, "ok"),
	}

	for _, rec := range h.Records {
		inputProps := map[string]any{}
		for _, col := range rec.Columns {
			inputProps[col] = map[string]any{"type": "string", "minLength": 1}
		}
		outputProps := map[string]any{"id": map[string]any{"type": "integer", "format": "int64"}}
		for k, v := range inputProps {
			outputProps[k] = v
		}
		schemas[rec.Name+"Create"] = object(inputProps, rec.Columns...)
		schemas[rec.Name] = object(outputProps, append([]string{"id"}, rec.Columns...)...)

		one := ref(rec.Name)
		body := map[string]any{
			"required": true,
			"content":  jsonContent(ref(rec.Name + "Create")),
		}
		idParam := []any{map[string]any{
			"name": "id", "in": "path", "required": true,
			"schema": map[string]any{"type": "integer", "format": "int64"},
		}}
		tags := []string{rec.Path}

		paths["/"+rec.Path+"/"] = map[string]any{
			"post": map[string]any{
				"tags": tags, "summary": "Create " + rec.Name, "operationId": "create_" + rec.Path,
				"requestBody": body,
				"responses":   responses(one, false, true),
			},
			"get": map[string]any{
				"tags": tags, "summary": "List " + rec.Name + " records", "operationId": "list_" + rec.Path,
				"responses": responses(map[string]any{"type": "array", "items": one}, false, false),
			},
		}
		paths["/"+rec.Path+"/{id}"] = map[string]any{
			"get": map[string]any{
				"tags": tags, "summary": "Get " + rec.Name, "operationId": "get_" + rec.Path,
				"parameters": idParam,
				"responses":  responses(one, true, true),
			},
			"put": map[string]any{
				"tags": tags, "summary": "Replace " + rec.Name, "operationId": "update_" + rec.Path,
				"parameters": idParam, "requestBody": body,
				"responses": responses(one, true, true),
			},
			"delete": map[string]any{
				"tags": tags, "summary": "Delete " + rec.Name, "operationId": "delete_" + rec.Path,
				"parameters": idParam,
				"responses":  responses(ref("Ack"), true, true),
			},
		}
	}

	return map[string]any{
		"openapi": "3.0.3",
		"info":    map[string]any{"title": h.Title, "version": h.Version},
		"paths":   paths,
		"components": map[string]any{
			"schemas": schemas,
		},
	}
}

func renderDocsPage(title string) string {
	return strings.ReplaceAll(docsPage, "{{TITLE}}", html.EscapeString(title))
}

func object(props map[string]any, required ...string) map[string]any {
	return map[string]any{"type": "object", "properties": props, "required": required}
}

func ref(name string) map[string]any {
	return map[string]any{"$ref": "#/components/schemas/" + name}
}

func jsonContent(schema any) map[string]any {
	return map[string]any{"application/json": map[string]any{"schema": schema}}
}

func responses(ok any, notFound, unprocessable bool) map[string]any {
	out := map[string]any{
		"200": map[string]any{"description": "Successful Response", "content": jsonContent(ok)},
	}
	if notFound {
		out["404"] = map[string]any{"description": "Not Found", "content": jsonContent(ref("HTTPError"))}
	}
	if unprocessable {
		out["422"] = map[string]any{"description": "Validation Error", "content": jsonContent(ref("ValidationError"))}
	}
	return out
}
