package router

import (
	"net/http"

	"github.com/Mohsinsiddi/tokenapi/internal/api"
	"github.com/Mohsinsiddi/tokenapi/internal/api/handlers"
	"github.com/Mohsinsiddi/tokenapi/internal/api/httperrors"
	"github.com/Mohsinsiddi/tokenapi/internal/api/middleware"
	"github.com/Mohsinsiddi/tokenapi/internal/util"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Init builds the echo instance, installs middleware and attaches every
// route to s.
func Init(s *api.Server) {
	s.Echo = echo.New()
	s.Echo.HideBanner = true
	s.Echo.HidePort = true
	s.Echo.HTTPErrorHandler = HTTPErrorHandler

	s.Echo.Pre(echomw.RemoveTrailingSlash())
	s.Echo.Use(middleware.RequestID())
	s.Echo.Use(middleware.Logger())
	s.Echo.Use(echomw.Recover())

	s.Router = &api.Router{
		Routes: nil,
		Root:   s.Echo.Group(""),
		API:    s.Echo.Group("/api"),
	}

	handlers.AttachAllRoutes(s)
}

// HTTPErrorHandler writes err as an httperrors.HTTPError body.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	he := httperrors.FromError(err)
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(he.StatusCode())
	} else {
		err = c.JSON(he.StatusCode(), he)
	}
	if err != nil {
		util.LogFromContext(c.Request().Context()).Warn().Err(err).Msg("Failed to write error response")
	}
}
