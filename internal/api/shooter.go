package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/notebot/internal/shooter"
)

func registerShooterEndpoints(rest *echo.Echo, s *shooter.Shooter) {
	group := rest.Group("/shooter")

	group.GET("/", func(c echo.Context) error {
		return c.JSONPretty(http.StatusOK, s.GetState(), indentationChar)
	})
	group.POST("/spinup/", func(c echo.Context) error {
		return stateOrError(c, s.SpinUp(), s.GetState)
	})
	group.POST("/stop/", func(c echo.Context) error {
		return stateOrError(c, s.Stop(), s.GetState)
	})
}
