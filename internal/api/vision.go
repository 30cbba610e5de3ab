package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/notebot/internal/vision"
)

func registerVisionEndpoints(rest *echo.Echo, v *vision.Vision) {
	group := rest.Group("/vision")

	group.GET("/target/:"+urlParamId+"/", func(c echo.Context) error {
		idParam := c.Param(urlParamId)
		id, err := strconv.Atoi(idParam)
		if err != nil {
			return returnBadRequest(c, "invalid fiducial id: "+idParam)
		}
		target, found, err := v.GetTargetForTag(id)
		if err != nil {
			return returnError(c, err)
		}
		if !found {
			return returnNotFound(c, idParam)
		}
		return c.JSONPretty(http.StatusOK, target, indentationChar)
	})
}
