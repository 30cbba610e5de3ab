package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/notebot/internal/configuration"
	"github.com/markusressel/notebot/internal/motors"
	"github.com/qdm12/reprint"
)

type MotorInfo struct {
	Id       string                    `json:"id"`
	Speed    float64                   `json:"speed"`
	Inverted bool                      `json:"inverted"`
	Config   configuration.MotorConfig `json:"config"`
}

func registerMotorEndpoints(rest *echo.Echo) {
	group := rest.Group("/motor")

	group.GET("/", getMotors)
	group.GET("/:"+urlParamId+"/", getMotor)
}

func newMotorInfo(motor motors.Motor) MotorInfo {
	return MotorInfo{
		Id:       motor.GetId(),
		Speed:    motor.Get(),
		Inverted: motor.IsInverted(),
		Config:   reprint.This(motor.GetConfig()).(configuration.MotorConfig),
	}
}

// returns a list of all currently configured motors
func getMotors(c echo.Context) error {
	data := map[string]MotorInfo{}
	for id, motor := range motors.MotorMap.Items() {
		data[id] = newMotorInfo(motor)
	}
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func getMotor(c echo.Context) error {
	id := c.Param(urlParamId)
	motor, exists := motors.MotorMap.Get(id)
	if !exists {
		return returnNotFound(c, id)
	}
	return c.JSONPretty(http.StatusOK, newMotorInfo(motor), indentationChar)
}
