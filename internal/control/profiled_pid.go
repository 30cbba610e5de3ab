package control

import (
	"time"
)

// ProfiledPidController is a PidController whose setpoint follows a
// TrapezoidProfile towards the goal, instead of jumping to it directly.
type ProfiledPidController struct {
	controller *PidController
	profile    *TrapezoidProfile

	goal     State
	setpoint State
}

func NewProfiledPidController(p, i, d float64, constraints Constraints) *ProfiledPidController {
	return &ProfiledPidController{
		controller: NewPidController(p, i, d),
		profile:    NewTrapezoidProfile(constraints),
	}
}

// SetGoal sets the position to move to, the goal velocity is always 0.
// The profile restarts from the current setpoint on the next call to Calculate.
func (c *ProfiledPidController) SetGoal(position float64) {
	c.goal = State{Position: position}
}

func (c *ProfiledPidController) GetGoal() State {
	return c.goal
}

func (c *ProfiledPidController) GetSetpoint() State {
	return c.setpoint
}

func (c *ProfiledPidController) GetConstraints() Constraints {
	return c.profile.Constraints()
}

func (c *ProfiledPidController) SetP(p float64) {
	c.controller.SetP(p)
}

func (c *ProfiledPidController) GetP() float64 {
	return c.controller.GetP()
}

func (c *ProfiledPidController) GetI() float64 {
	return c.controller.GetI()
}

func (c *ProfiledPidController) GetD() float64 {
	return c.controller.GetD()
}

func (c *ProfiledPidController) SetPID(p, i, d float64) {
	c.controller.SetPID(p, i, d)
}

func (c *ProfiledPidController) SetTolerance(positionTolerance float64) {
	c.controller.SetTolerance(positionTolerance)
}

// GetPositionError returns the difference between setpoint and measurement of the last Calculate call
func (c *ProfiledPidController) GetPositionError() float64 {
	return c.controller.GetError()
}

// AtSetpoint returns true when the measurement tracked the current setpoint within tolerance
func (c *ProfiledPidController) AtSetpoint() bool {
	return c.controller.AtSetpoint()
}

// AtGoal returns true when the setpoint has reached the goal and the measurement is at the setpoint
func (c *ProfiledPidController) AtGoal() bool {
	return c.AtSetpoint() && c.setpoint == c.goal
}

// Reset moves the setpoint to the given measurement at rest and clears the PID state.
func (c *ProfiledPidController) Reset(measured float64) {
	c.controller.Reset()
	c.setpoint = State{Position: measured}
}

// Calculate advances the setpoint by dt and returns the PID output for the given measurement.
// It has to be called exactly once per control period.
func (c *ProfiledPidController) Calculate(measured float64, dt time.Duration) float64 {
	c.setpoint = c.profile.Calculate(dt, c.setpoint, c.goal)
	return c.controller.Calculate(measured, c.setpoint.Position, dt)
}
