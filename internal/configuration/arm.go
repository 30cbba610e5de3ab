package configuration

type ArmConfig struct {
	// PID gains of the position controller
	KP float64 `json:"kP"`
	KI float64 `json:"kI"`
	KD float64 `json:"kD"`

	// feedforward gains: static friction (V), gravity (V),
	// velocity (V per rad/s) and acceleration (V per rad/s²)
	KS float64 `json:"kS"`
	KG float64 `json:"kG"`
	KV float64 `json:"kV"`
	KA float64 `json:"kA"`

	// MaxVelocity of the motion profile in rad/s
	MaxVelocity float64 `json:"maxVelocity"`
	// MaxAcceleration of the motion profile in rad/s²
	MaxAcceleration float64 `json:"maxAcceleration"`

	MinAngle Angle `json:"minAngle"`
	MaxAngle Angle `json:"maxAngle"`

	// BumpIncrement in rad
	BumpIncrement float64 `json:"bumpIncrement"`
	// Offset in rad, added to the encoder distance
	Offset float64 `json:"offset"`
	// PositionTolerance in rad, used to decide whether the goal is reached
	PositionTolerance float64 `json:"positionTolerance"`

	HandlerDefaultSpeed float64 `json:"handlerDefaultSpeed"`

	EnableOnStart DefaultTrueBool `json:"enableOnStart"`

	// TrackingWindowSize is the number of ticks used to average the tracking error
	TrackingWindowSize int `json:"trackingWindowSize"`

	Motor        MotorConfig   `json:"motor"`
	HandlerMotor *MotorConfig  `json:"handlerMotor,omitempty"`
	Encoder      EncoderConfig `json:"encoder"`
}
