package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/markusressel/notebot/internal/arm"
	"github.com/markusressel/notebot/internal/intake"
	"github.com/markusressel/notebot/internal/shooter"
	"github.com/markusressel/notebot/internal/tuning"
	"github.com/markusressel/notebot/internal/vision"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	urlParamId      = "id"
	urlParamTab     = "tab"
	urlParamName    = "name"
	indentationChar = "  "
)

type (
	Result struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	}
)

// Robot holds the subsystems exposed by the REST API.
// Optional subsystems may be nil, their endpoints are not registered then.
type Robot struct {
	Arm       *arm.Arm
	Intake    *intake.Intake
	Shooter   *shooter.Shooter
	Vision    *vision.Vision
	Dashboard *tuning.Dashboard
}

// CreateRestService creates the REST API, request metrics are registered with registerer
func CreateRestService(robot Robot, registerer prometheus.Registerer) *echo.Echo {
	echoRest := echo.New()
	echoRest.HideBanner = true

	// Root level middleware
	echoRest.Pre(middleware.AddTrailingSlash())

	echoRest.Use(middleware.Secure())
	echoRest.Use(middleware.Recover())
	echoRest.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "notebot",
		Registerer: registerer,
	}))

	echoRest.GET("/alive/", isAlive)

	if robot.Arm != nil {
		registerArmEndpoints(echoRest, robot.Arm)
	}
	if robot.Intake != nil {
		registerIntakeEndpoints(echoRest, robot.Intake)
	}
	if robot.Shooter != nil {
		registerShooterEndpoints(echoRest, robot.Shooter)
	}
	if robot.Vision != nil {
		registerVisionEndpoints(echoRest, robot.Vision)
	}
	if robot.Dashboard != nil {
		registerTuningEndpoints(echoRest, robot.Dashboard)
	}
	registerMotorEndpoints(echoRest)

	return echoRest
}

// returns an empty "ok" answer
func isAlive(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

// return a "not found" message
func returnNotFound(c echo.Context, id string) (err error) {
	return c.JSONPretty(http.StatusNotFound, &Result{
		Name:    "Not found",
		Message: "No item with id '" + id + "' found",
	}, indentationChar)
}

// return a "bad request" message
func returnBadRequest(c echo.Context, message string) (err error) {
	return c.JSONPretty(http.StatusBadRequest, &Result{
		Name:    "Bad request",
		Message: message,
	}, indentationChar)
}

// return the error message of an error
func returnError(c echo.Context, e error) (err error) {
	return c.JSONPretty(http.StatusInternalServerError, &Result{
		Name:    "Unknown Error",
		Message: e.Error(),
	}, indentationChar)
}
