package control

import (
	"time"

	"github.com/markusressel/notebot/internal/util"
)

// PidController is a discrete PID controller with a fixed period per call.
type PidController struct {
	// Proportional Constant
	p float64
	// Integral Constant
	i float64
	// Derivative Constant
	d float64

	// bounds of the integral term, limits windup
	integratorMin float64
	integratorMax float64

	positionTolerance float64

	// integral from previous loop + error, i.e. integral error
	integral  float64
	lastError float64
	// whether lastError has been set, avoids a derivative kick on the first call
	initialized bool
}

func NewPidController(p, i, d float64) *PidController {
	return &PidController{
		p:                 p,
		i:                 i,
		d:                 d,
		integratorMin:     -1,
		integratorMax:     1,
		positionTolerance: 0.05,
	}
}

func (c *PidController) SetPID(p, i, d float64) {
	c.p = p
	c.i = i
	c.d = d
}

func (c *PidController) SetP(p float64) { c.p = p }
func (c *PidController) SetI(i float64) { c.i = i }
func (c *PidController) SetD(d float64) { c.d = d }

func (c *PidController) GetP() float64 { return c.p }
func (c *PidController) GetI() float64 { return c.i }
func (c *PidController) GetD() float64 { return c.d }

// SetIntegratorRange limits the accumulated integral term (after multiplying with i).
func (c *PidController) SetIntegratorRange(min, max float64) {
	c.integratorMin = min
	c.integratorMax = max
}

func (c *PidController) SetTolerance(positionTolerance float64) {
	c.positionTolerance = positionTolerance
}

func (c *PidController) GetTolerance() float64 {
	return c.positionTolerance
}

// GetError returns the error of the last call to Calculate
func (c *PidController) GetError() float64 {
	return c.lastError
}

// AtSetpoint returns true when the last error is within the position tolerance
func (c *PidController) AtSetpoint() bool {
	if !c.initialized {
		return false
	}
	return util.NearlyEqual(c.lastError, 0, c.positionTolerance)
}

// Calculate returns the controller output for the given measurement and setpoint,
// dt is the time since the last call.
func (c *PidController) Calculate(measured float64, setpoint float64, dt time.Duration) float64 {
	err := setpoint - measured

	period := dt.Seconds()
	if period <= 0 {
		// no time passed, only the proportional term is meaningful
		c.lastError = err
		c.initialized = true
		return c.p*err + c.i*c.integral
	}

	derivative := 0.0
	if c.initialized {
		derivative = (err - c.lastError) / period
	}

	if c.i > 0 {
		c.integral = util.Coerce(
			c.integral+err*period,
			c.integratorMin/c.i,
			c.integratorMax/c.i,
		)
	}

	c.lastError = err
	c.initialized = true

	return c.p*err + c.i*c.integral + c.d*derivative
}

// Reset clears the accumulated state of the controller
func (c *PidController) Reset() {
	c.integral = 0
	c.lastError = 0
	c.initialized = false
}
