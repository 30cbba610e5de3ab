package control

import (
	"math"
	"time"
)

// State is a position and velocity pair, used for goals and setpoints.
type State struct {
	Position float64 `json:"position"`
	Velocity float64 `json:"velocity"`
}

// Constraints limit the motion of a TrapezoidProfile.
type Constraints struct {
	MaxVelocity     float64 `json:"maxVelocity"`
	MaxAcceleration float64 `json:"maxAcceleration"`
}

// TrapezoidProfile computes setpoints along a trapezoidal velocity curve:
// accelerate to MaxVelocity, cruise, then decelerate to reach the goal at rest.
// When the distance is too short to reach MaxVelocity the curve degrades to a triangle.
type TrapezoidProfile struct {
	constraints Constraints

	// durations of the last calculated profile, relative to its start
	endAccel     float64
	endFullSpeed float64
	endDecel     float64
}

func NewTrapezoidProfile(constraints Constraints) *TrapezoidProfile {
	return &TrapezoidProfile{
		constraints: constraints,
	}
}

func (p *TrapezoidProfile) Constraints() Constraints {
	return p.constraints
}

// Calculate returns the state that is reached after dt, starting at current and moving towards goal.
func (p *TrapezoidProfile) Calculate(dt time.Duration, current State, goal State) State {
	if dt <= 0 {
		return current
	}
	t := dt.Seconds()

	direction := 1.0
	if current.Position > goal.Position {
		direction = -1.0
	}
	current = directed(direction, current)
	goal = directed(direction, goal)

	maxVelocity := p.constraints.MaxVelocity
	maxAcceleration := p.constraints.MaxAcceleration

	if current.Velocity > maxVelocity {
		current.Velocity = maxVelocity
	}

	// time and distance needed to accelerate from 0 to the given
	// velocities, these parts of the full trapezoid are cut off
	cutoffBegin := current.Velocity / maxAcceleration
	cutoffDistBegin := cutoffBegin * cutoffBegin * maxAcceleration / 2.0

	cutoffEnd := goal.Velocity / maxAcceleration
	cutoffDistEnd := cutoffEnd * cutoffEnd * maxAcceleration / 2.0

	fullTrapezoidDist := cutoffDistBegin + (goal.Position - current.Position) + cutoffDistEnd
	accelerationTime := maxVelocity / maxAcceleration

	fullSpeedDist := fullTrapezoidDist - accelerationTime*accelerationTime*maxAcceleration
	if fullSpeedDist < 0 {
		// triangle
		accelerationTime = math.Sqrt(fullTrapezoidDist / maxAcceleration)
		fullSpeedDist = 0
	}

	p.endAccel = accelerationTime - cutoffBegin
	p.endFullSpeed = p.endAccel + fullSpeedDist/maxVelocity
	p.endDecel = p.endFullSpeed + accelerationTime - cutoffEnd

	result := current
	switch {
	case t < p.endAccel:
		result.Velocity += t * maxAcceleration
		result.Position += (current.Velocity + t*maxAcceleration/2.0) * t
	case t < p.endFullSpeed:
		result.Velocity = maxVelocity
		result.Position += (current.Velocity+p.endAccel*maxAcceleration/2.0)*p.endAccel +
			maxVelocity*(t-p.endAccel)
	case t <= p.endDecel:
		result.Velocity = goal.Velocity + (p.endDecel-t)*maxAcceleration
		timeLeft := p.endDecel - t
		result.Position = goal.Position - (goal.Velocity+timeLeft*maxAcceleration/2.0)*timeLeft
	default:
		result = goal
	}

	return directed(direction, result)
}

// TotalTime returns the duration of the last calculated profile.
func (p *TrapezoidProfile) TotalTime() time.Duration {
	return time.Duration(p.endDecel * float64(time.Second))
}

// IsFinished returns true when the last calculated profile has completed after t.
func (p *TrapezoidProfile) IsFinished(t time.Duration) bool {
	return t.Seconds() >= p.endDecel
}

func directed(direction float64, state State) State {
	return State{
		Position: state.Position * direction,
		Velocity: state.Velocity * direction,
	}
}
