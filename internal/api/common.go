package api

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// CreateWebserver creates a bare echo server, used to serve metrics and profiling endpoints
func CreateWebserver() *echo.Echo {
	webserver := echo.New()
	webserver.HideBanner = true

	// Root level middleware
	webserver.Pre(middleware.AddTrailingSlash())

	webserver.Use(middleware.Secure())
	webserver.Use(middleware.Recover())

	return webserver
}
