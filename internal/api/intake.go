package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/notebot/internal/intake"
)

func registerIntakeEndpoints(rest *echo.Echo, i *intake.Intake) {
	group := rest.Group("/intake")

	group.GET("/", func(c echo.Context) error {
		return c.JSONPretty(http.StatusOK, i.GetState(), indentationChar)
	})
	group.POST("/start/", func(c echo.Context) error {
		return stateOrError(c, i.Start(), i.GetState)
	})
	group.POST("/stop/", func(c echo.Context) error {
		return stateOrError(c, i.Stop(), i.GetState)
	})
	group.POST("/pickup/", func(c echo.Context) error {
		return stateOrError(c, i.PickupNote(), i.GetState)
	})
}
