package control

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPidController(t *testing.T) {
	// GIVEN
	p, i, d := 1.0, 2.0, 3.0

	// WHEN
	controller := NewPidController(p, i, d)

	// THEN
	assert.Equal(t, p, controller.GetP())
	assert.Equal(t, i, controller.GetI())
	assert.Equal(t, d, controller.GetD())
}

func TestPidController_P(t *testing.T) {
	// GIVEN
	controller := NewPidController(0.5, 0, 0)

	// WHEN
	output := controller.Calculate(5, 10, tick)

	// THEN
	assert.Equal(t, 2.5, output)
	assert.Equal(t, 5.0, controller.GetError())
}

func TestPidController_I(t *testing.T) {
	// GIVEN
	controller := NewPidController(0, 1, 0)
	controller.SetIntegratorRange(-10, 10)

	// WHEN
	controller.Calculate(0, 1, time.Second)
	output := controller.Calculate(0, 1, time.Second)

	// THEN
	assert.InDelta(t, 2.0, output, 1e-9)
}

func TestPidController_IntegratorRange(t *testing.T) {
	// GIVEN
	controller := NewPidController(0, 1, 0)
	controller.SetIntegratorRange(-0.5, 0.5)

	// WHEN
	var output float64
	for i := 0; i < 10; i++ {
		output = controller.Calculate(0, 1, time.Second)
	}

	// THEN
	assert.InDelta(t, 0.5, output, 1e-9)
}

func TestPidController_D(t *testing.T) {
	// GIVEN
	controller := NewPidController(0, 0, 1)

	// WHEN
	first := controller.Calculate(0, 1, time.Second)
	second := controller.Calculate(0, 3, time.Second)

	// THEN
	// no derivative kick on the first call
	assert.Equal(t, 0.0, first)
	assert.InDelta(t, 2.0, second, 1e-9)
}

func TestPidController_AtSetpoint(t *testing.T) {
	// GIVEN
	controller := NewPidController(1, 0, 0)
	controller.SetTolerance(0.1)

	// THEN
	assert.False(t, controller.AtSetpoint())

	// WHEN
	controller.Calculate(0.95, 1, tick)

	// THEN
	assert.True(t, controller.AtSetpoint())

	// WHEN
	controller.Calculate(0.5, 1, tick)

	// THEN
	assert.False(t, controller.AtSetpoint())
}

func TestPidController_Reset(t *testing.T) {
	// GIVEN
	controller := NewPidController(0, 1, 0)
	controller.Calculate(0, 1, time.Second)

	// WHEN
	controller.Reset()
	output := controller.Calculate(0, 0, time.Second)

	// THEN
	assert.Equal(t, 0.0, output)
}
