package controller

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"forecast-api/pkg/log"
	"forecast-api/pkg/msg"
)

const indexFile = "index.html"

// FrontendController serves the bundled single page app. Unknown paths fall
// back to index.html so client side routes survive a reload.
type FrontendController struct {
	e   *echo.Echo
	dir string
}

func NewFrontendController(e *echo.Echo, dir string) *FrontendController {
	return &FrontendController{e: e, dir: dir}
}

// InitFrontendRoutes registers the index route and the catch-all fallback
func (controller *FrontendController) InitFrontendRoutes() {
	controller.e.GET("/", controller.ServeIndex)
	controller.e.RouteNotFound("/*", controller.ServeFallback)
}

func (controller *FrontendController) ServeIndex(c echo.Context) error {
	index := filepath.Join(controller.dir, indexFile)
	if !isRegularFile(index) {
		log.Warn(msg.GetMessage("frontend.not-found", index))
		return c.String(http.StatusNotFound, http.StatusText(http.StatusNotFound))
	}
	return c.File(index)
}

// ServeFallback serves a static asset when the path names one, else the index.
func (controller *FrontendController) ServeFallback(c echo.Context) error {
	method := c.Request().Method
	if method == http.MethodGet || method == http.MethodHead {
		if asset, ok := controller.resolveAsset(c.Request().URL.Path); ok {
			return c.File(asset)
		}
	}
	return controller.ServeIndex(c)
}

// resolveAsset maps a URL path to a file under the frontend dir, refusing anything outside it.
func (controller *FrontendController) resolveAsset(urlPath string) (string, bool) {
	cleaned := path.Clean("/" + urlPath)
	if cleaned == "/" {
		return "", false
	}

	root, err := filepath.Abs(controller.dir)
	if err != nil {
		return "", false
	}
	candidate := filepath.Join(root, filepath.FromSlash(cleaned))

	rel, err := filepath.Rel(root, candidate)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	if !isRegularFile(candidate) {
		return "", false
	}
	return candidate, true
}

func isRegularFile(name string) bool {
	info, err := os.Stat(name)
	return err == nil && info.Mode().IsRegular()
}
