package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/notebot/internal/arm"
)

type GoalRequest struct {
	// Position in radians
	Position *float64 `json:"position,omitempty"`
	// Degrees is an alternative to Position
	Degrees *float64 `json:"degrees,omitempty"`
}

func registerArmEndpoints(rest *echo.Echo, a *arm.Arm) {
	group := rest.Group("/arm")

	group.GET("/", func(c echo.Context) error {
		return c.JSONPretty(http.StatusOK, a.GetState(), indentationChar)
	})
	group.POST("/goal/", func(c echo.Context) error {
		var request GoalRequest
		if err := c.Bind(&request); err != nil {
			return returnBadRequest(c, err.Error())
		}
		switch {
		case request.Position != nil:
			a.SetGoal(*request.Position)
		case request.Degrees != nil:
			a.SetGoalDegrees(*request.Degrees)
		default:
			return returnBadRequest(c, "either 'position' or 'degrees' is required")
		}
		return c.JSONPretty(http.StatusOK, a.GetGoal(), indentationChar)
	})
	group.POST("/bump/up/", func(c echo.Context) error {
		a.BumpUp()
		return c.JSONPretty(http.StatusOK, a.GetGoal(), indentationChar)
	})
	group.POST("/bump/down/", func(c echo.Context) error {
		a.BumpDown()
		return c.JSONPretty(http.StatusOK, a.GetGoal(), indentationChar)
	})
	group.POST("/enable/", func(c echo.Context) error {
		a.Enable()
		return c.JSONPretty(http.StatusOK, a.GetState(), indentationChar)
	})
	group.POST("/disable/", func(c echo.Context) error {
		return stateOrError(c, a.Disable(), a.GetState)
	})
	group.POST("/handler/forward/", func(c echo.Context) error {
		return stateOrError(c, a.HandlerMotorDriveForward(), a.GetState)
	})
	group.POST("/handler/backward/", func(c echo.Context) error {
		return stateOrError(c, a.HandlerMotorDriveBackward(), a.GetState)
	})
	group.POST("/handler/stop/", func(c echo.Context) error {
		return stateOrError(c, a.HandlerMotorStop(), a.GetState)
	})
}

// stateOrError returns the error of an operation, or the state after it
func stateOrError[T any](c echo.Context, err error, state func() T) error {
	if err != nil {
		return returnError(c, err)
	}
	return c.JSONPretty(http.StatusOK, state(), indentationChar)
}
