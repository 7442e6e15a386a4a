package handlers

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed web
var webFS embed.FS

var indexTemplate = template.Must(template.ParseFS(webFS, "web/index.html"))

var staticFS = func() fs.FS {
	sub, err := fs.Sub(webFS, "web")
	if err != nil {
		panic(err)
	}
	return sub
}()

// StaticHandler serves the embedded landing page and static assets.
type StaticHandler struct {
	network string
}

func NewStaticHandler(network string) *StaticHandler {
	return &StaticHandler{network: network}
}

// Index renders the landing page with the configured network name
//
// Method: GET /
func (h *StaticHandler) Index(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return indexTemplate.Execute(c.Response(), map[string]string{
		"Network": h.network,
	})
}

// Static serves embedded assets under /static
func (h *StaticHandler) Static() http.Handler {
	return http.StripPrefix("/static/", http.FileServer(http.FS(staticFS)))
}
