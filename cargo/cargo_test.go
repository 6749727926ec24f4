package cargo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Accessors(t *testing.T) {
	c := New("propane", 4000)

	assert.Equal(t, "propane", c.Name())
	assert.Equal(t, 4000, c.Weight())
}

func TestNew_NegativeWeightAllowed(t *testing.T) {
	c := New("ballast", -10)

	assert.Equal(t, -10, c.Weight())
}

func TestNewLiquid(t *testing.T) {
	var c Cargo = NewLiquid("fuel", 500, true)

	l, ok := c.(*Liquid)
	require.True(t, ok)
	assert.Equal(t, "fuel", l.Name())
	assert.Equal(t, 500, l.Weight())
	assert.True(t, l.IsDangerous())
	assert.False(t, NewLiquid("milk", 8000, false).IsDangerous())
}

func TestNewCold(t *testing.T) {
	var c Cargo = NewCold("fish", 1200, -18.5)

	cold, ok := c.(*Cold)
	require.True(t, ok)
	assert.Equal(t, -18.5, cold.TempNeeded())

	_, isLiquid := c.(*Liquid)
	assert.False(t, isLiquid)
}

func TestHandlingHistory_MostRecentlyCompletedEvent(t *testing.T) {
	_, err := HandlingHistory{}.MostRecentlyCompletedEvent()
	assert.ErrorIs(t, err, ErrNoHistory)

	now := time.Now()
	h := HandlingHistory{HandlingEvents: []HandlingEvent{
		{Container: "KON-L-0001", Type: Load, Completed: now},
		{Container: "KON-L-0001", Type: Unload, Completed: now.Add(time.Minute)},
	}}

	e, err := h.MostRecentlyCompletedEvent()
	require.NoError(t, err)
	assert.Equal(t, Unload, e.Type)
}

func TestHandlingEventType_String(t *testing.T) {
	assert.Equal(t, "Not Handled", NotHandled.String())
	assert.Equal(t, "Load", Load.String())
	assert.Equal(t, "Unload", Unload.String())
	assert.Equal(t, "Stow", Stow.String())
	assert.Equal(t, "Discharge", Discharge.String())
	assert.Equal(t, "", HandlingEventType(42).String())
}
