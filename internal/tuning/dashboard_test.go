package tuning

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDashboard_TabIsCreatedOnce(t *testing.T) {
	// GIVEN
	dashboard := NewDashboard()

	// WHEN
	first := dashboard.Tab("Arm")
	second := dashboard.Tab("Arm")

	// THEN
	assert.Same(t, first, second)
	assert.True(t, dashboard.HasTab("Arm"))
	assert.Equal(t, []string{"Arm"}, dashboard.TabNames())
}

func TestTab_AddIsIdempotent(t *testing.T) {
	// GIVEN
	tab := NewDashboard().Tab("Arm")
	entry := tab.Add("kP", 1, EntryOptions{})
	entry.Set(3)

	// WHEN
	again := tab.Add("kP", 5, EntryOptions{})

	// THEN
	assert.Same(t, entry, again)
	assert.Equal(t, 3.0, again.Get())
	assert.Equal(t, 1.0, again.Default)
}

func TestEntry_SetClampsToRange(t *testing.T) {
	// GIVEN
	entry := NewDashboard().Tab("Shooter").Add("Shooter speed", 0.5, EntryOptions{Min: 0, Max: 1, Persistent: true})

	// WHEN
	high := entry.Set(1.5)
	low := entry.Set(-1)

	// THEN
	assert.Equal(t, 1.0, high)
	assert.Equal(t, 0.0, low)
	assert.Equal(t, 0.0, entry.Get())
	assert.True(t, entry.Persistent)
}

func TestEntry_DefaultIsClamped(t *testing.T) {
	// WHEN
	entry := NewDashboard().Tab("Intake").Add("Intake speed", 2, EntryOptions{Min: -1, Max: 1})

	// THEN
	assert.Equal(t, 1.0, entry.Get())
}

func TestEntry_ZeroRangeIsUnbounded(t *testing.T) {
	// GIVEN
	entry := NewDashboard().Tab("Arm").Add("kP", 1, EntryOptions{})

	// WHEN
	value := entry.Set(1000)

	// THEN
	assert.Equal(t, 1000.0, value)
	assert.True(t, math.IsInf(entry.Max, 1))
}

func TestDashboard_Set(t *testing.T) {
	// GIVEN
	dashboard := NewDashboard()
	dashboard.Tab("Arm").Add("Handler speed", 0.5, EntryOptions{Min: -1, Max: 1})

	// WHEN
	value, err := dashboard.Set("Arm", "Handler speed", 0.8)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 0.8, value)
	entry, ok := dashboard.Get("Arm", "Handler speed")
	assert.True(t, ok)
	assert.Equal(t, 0.8, entry.Get())
}

func TestDashboard_SetUnknownEntry(t *testing.T) {
	// GIVEN
	dashboard := NewDashboard()

	// WHEN
	_, err := dashboard.Set("Arm", "kX", 1)

	// THEN
	assert.EqualError(t, err, "no tuning entry Arm/kX")
}

func TestDashboard_EntriesAreSorted(t *testing.T) {
	// GIVEN
	dashboard := NewDashboard()
	dashboard.Tab("Shooter").Add("Shooter speed", 0.5, EntryOptions{})
	dashboard.Tab("Arm").Add("kP", 1, EntryOptions{})
	dashboard.Tab("Arm").Add("Handler speed", 0.5, EntryOptions{})

	// WHEN
	entries := dashboard.Entries()

	// THEN
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Tab+"/"+entry.Name)
	}
	assert.Equal(t, []string{"Arm/Handler speed", "Arm/kP", "Shooter/Shooter speed"}, names)
}
