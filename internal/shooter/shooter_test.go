package shooter

import (
	"testing"
	"time"

	"github.com/markusressel/notebot/internal/configuration"
	"github.com/markusressel/notebot/internal/motors"
	"github.com/markusressel/notebot/internal/persistence"
	"github.com/markusressel/notebot/internal/tuning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	tick          = 20 * time.Millisecond
	preferenceKey = "Shooter speed"
)

// countingPreferences records writes, to verify values are only persisted on change
type countingPreferences struct {
	persistence.Preferences
	writes int
}

func (p *countingPreferences) SetFloat(key string, value float64) error {
	p.writes++
	return p.Preferences.SetFloat(key, value)
}

func createShooter(t *testing.T, preferences persistence.Preferences) (*Shooter, motors.Motor) {
	motor, err := motors.NewMotor(configuration.MotorConfig{
		ID:       "shooter",
		Inverted: true,
		Virtual:  &configuration.VirtualMotorConfig{},
	})
	require.NoError(t, err)
	shooter, err := NewShooter(configuration.ShooterConfig{
		Speed:         0.75,
		PreferenceKey: preferenceKey,
	}, motor, preferences)
	require.NoError(t, err)
	return shooter, motor
}

func TestNewShooter_MissingPreferenceKey(t *testing.T) {
	// WHEN
	_, err := NewShooter(configuration.ShooterConfig{}, motors.NewVirtualMotor("shooter"), persistence.NewMemoryPreferences())

	// THEN
	assert.EqualError(t, err, "shooter: missing preference key")
}

func TestShooter_DefaultSpeed(t *testing.T) {
	// WHEN
	shooter, _ := createShooter(t, persistence.NewMemoryPreferences())

	// THEN
	assert.Equal(t, 0.75, shooter.GetSpeed())
}

func TestShooter_SpeedIsLoadedFromPreferences(t *testing.T) {
	// GIVEN
	preferences := persistence.NewMemoryPreferences()
	_ = preferences.SetFloat(preferenceKey, 0.4)

	// WHEN
	shooter, _ := createShooter(t, preferences)

	// THEN
	assert.Equal(t, 0.4, shooter.GetSpeed())
}

func TestShooter_SpinUpAndStop(t *testing.T) {
	// GIVEN
	shooter, motor := createShooter(t, persistence.NewMemoryPreferences())

	// WHEN
	err := shooter.SpinUp()

	// THEN
	assert.NoError(t, err)
	assert.True(t, shooter.IsSpinning())
	assert.Equal(t, 0.75, motor.Get())
	assert.Equal(t, -0.75, motor.(*motors.VirtualMotor).Output)

	// WHEN
	err = shooter.Stop()

	// THEN
	assert.NoError(t, err)
	assert.False(t, shooter.IsSpinning())
	assert.Equal(t, 0.0, motor.Get())
}

func TestShooter_PersistsOnlyOnChange(t *testing.T) {
	// GIVEN
	preferences := &countingPreferences{Preferences: persistence.NewMemoryPreferences()}
	shooter, _ := createShooter(t, preferences)
	dashboard := tuning.NewDashboard()

	// WHEN
	shooter.PullTuning(dashboard)
	shooter.PullTuning(dashboard)

	// THEN
	assert.Equal(t, 0, preferences.writes)

	// WHEN
	_, err := dashboard.Set(TuningTab, TuningSpeed, 0.9)
	require.NoError(t, err)
	shooter.PullTuning(dashboard)
	shooter.PullTuning(dashboard)

	// THEN
	assert.Equal(t, 1, preferences.writes)
	assert.Equal(t, 0.9, shooter.GetSpeed())
	value, err := preferences.GetFloat(preferenceKey, 0)
	assert.NoError(t, err)
	assert.Equal(t, 0.9, value)
}

func TestShooter_PeriodicAppliesTunedSpeed(t *testing.T) {
	// GIVEN
	shooter, motor := createShooter(t, persistence.NewMemoryPreferences())
	dashboard := tuning.NewDashboard()
	shooter.PullTuning(dashboard)
	_ = shooter.SpinUp()

	// WHEN
	_, _ = dashboard.Set(TuningTab, TuningSpeed, 0.5)
	shooter.PullTuning(dashboard)
	err := shooter.Periodic(tick)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 0.5, motor.Get())
}

func TestShooter_PeriodicWhileStopped(t *testing.T) {
	// GIVEN
	shooter, motor := createShooter(t, persistence.NewMemoryPreferences())

	// WHEN
	err := shooter.Periodic(tick)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 0.0, motor.Get())
}
