package harbor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Qalifah/harbor/location"
	"github.com/Qalifah/harbor/ship"
)

func TestDockUndock(t *testing.T) {
	h := New(location.Rotterdam)
	uno := ship.New("UNO", ship.Spec{Name: "uno"})
	dos := ship.New("DOS", ship.Spec{Name: "dos"})

	h.Dock(uno)
	h.Dock(dos)
	assert.Equal(t, []*ship.Ship{uno, dos}, h.Ships())
	assert.True(t, h.IsDocked(uno))

	require.NoError(t, h.Undock(uno))
	assert.False(t, h.IsDocked(uno))
	assert.Equal(t, []*ship.Ship{dos}, h.Ships())
}

func TestUndock_NotDocked(t *testing.T) {
	h := New(location.Rotterdam)
	h.Dock(ship.New("UNO", ship.Spec{Name: "uno"}))

	err := h.Undock(ship.New("UNO", ship.Spec{Name: "uno"}))

	assert.ErrorIs(t, err, ErrNotDocked)
	assert.Contains(t, err.Error(), "uno")
	assert.Len(t, h.Ships(), 1, "a ship with the same ID is still a different ship")
}

func TestDock_AllowsDuplicates(t *testing.T) {
	h := New(location.Gdansk)
	s := ship.New("UNO", ship.Spec{})

	h.Dock(s)
	h.Dock(s)
	require.NoError(t, h.Undock(s))

	assert.True(t, h.IsDocked(s))
	assert.Len(t, h.Ships(), 1)
}
