package control

import (
	"math"

	"github.com/markusressel/notebot/internal/util"
)

// ArmFeedforward computes the voltage needed to hold and move an arm
// against gravity, static friction and its own inertia.
type ArmFeedforward struct {
	// KS is the static friction gain in V
	KS float64 `json:"kS"`
	// KG is the gravity gain in V, applied at a horizontal arm position
	KG float64 `json:"kG"`
	// KV is the velocity gain in V/(rad/s)
	KV float64 `json:"kV"`
	// KA is the acceleration gain in V/(rad/s²)
	KA float64 `json:"kA"`
}

func NewArmFeedforward(ks, kg, kv, ka float64) ArmFeedforward {
	return ArmFeedforward{KS: ks, KG: kg, KV: kv, KA: ka}
}

// Calculate returns the feedforward voltage for the given position (rad, 0 = horizontal),
// velocity (rad/s) and acceleration (rad/s²).
func (f ArmFeedforward) Calculate(position, velocity, acceleration float64) float64 {
	return util.Sign(velocity)*f.KS +
		f.KG*math.Cos(position) +
		f.KV*velocity +
		f.KA*acceleration
}
