package configuration

type ShooterConfig struct {
	// Speed is used when no persisted preference exists yet
	Speed float64 `json:"speed"`
	// PreferenceKey is the key under which tuned speed values are persisted
	PreferenceKey string `json:"preferenceKey"`

	Motor MotorConfig `json:"motor"`
}
