package inmem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Qalifah/harbor/cargo"
	"github.com/Qalifah/harbor/container"
	"github.com/Qalifah/harbor/location"
	"github.com/Qalifah/harbor/ship"
)

func TestContainerRepository(t *testing.T) {
	reg := container.NewRegistry()
	r := NewContainerRepository()
	a := container.NewGas(reg, 10, container.Dimensions{})
	b := container.NewLiquid(reg, 10, container.Dimensions{})

	require.NoError(t, r.Store(b))
	require.NoError(t, r.Store(a))
	require.NoError(t, r.Store(b))

	got, err := r.Find(a.SerialNumber())
	require.NoError(t, err)
	assert.Same(t, a, got)

	_, err = r.Find("KON-G-0042")
	assert.ErrorIs(t, err, container.ErrUnknown)

	assert.Equal(t, []container.Container{b, a}, r.FindAll())
}

func TestShipRepository(t *testing.T) {
	r := NewShipRepository()
	s := ship.New(ship.NextID(), ship.Spec{Name: "uno"})
	require.NoError(t, r.Store(s))

	got, err := r.Find(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = r.Find("NOPE")
	assert.ErrorIs(t, err, ship.ErrUnknown)
	assert.Len(t, r.FindAll(), 1)
}

func TestLocationRepository(t *testing.T) {
	r := NewLocationRepository()

	l, err := r.Find(location.NLRTM)
	require.NoError(t, err)
	assert.Equal(t, "Rotterdam", l.Name)

	_, err = r.Find("XXXXX")
	assert.ErrorIs(t, err, location.ErrUnknown)
	assert.Len(t, r.FindAll(), len(location.Samples()))
}

func TestHandlingEventRepository(t *testing.T) {
	r := NewHandlingEventRepository()
	now := time.Now()
	r.Store(cargo.HandlingEvent{Container: "KON-L-0001", Type: cargo.Load, Completed: now})
	r.Store(cargo.HandlingEvent{Container: "KON-G-0001", Type: cargo.Load, Completed: now})
	r.Store(cargo.HandlingEvent{Container: "KON-L-0001", Type: cargo.Unload, Completed: now})

	h := r.QueryHandlingHistory("KON-L-0001")
	require.Len(t, h.HandlingEvents, 2)
	assert.Equal(t, cargo.Unload, h.HandlingEvents[1].Type)
	assert.Empty(t, r.QueryHandlingHistory("KON-C-0001").HandlingEvents)
}
