package docking

import (
	"bytes"
	"testing"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/metrics/generic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Qalifah/harbor/endpoints"
	"github.com/Qalifah/harbor/harbor"
	"github.com/Qalifah/harbor/inmem"
	"github.com/Qalifah/harbor/location"
	"github.com/Qalifah/harbor/report"
	"github.com/Qalifah/harbor/ship"
)

func newTestService(sink report.Sink) (Service, *harbor.Harbor) {
	h := harbor.New(location.Rotterdam)
	return NewService(h, inmem.NewShipRepository(), sink), h
}

func TestRegisterShip(t *testing.T) {
	s, h := newTestService(report.Discard)

	id, err := s.RegisterShip(ship.Spec{Name: "uno", MaxSpeed: 50, MaxContainers: 100, MaxWeight: 100000})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Empty(t, h.Ships(), "registering does not dock")

	_, err = s.RegisterShip(ship.Spec{MaxContainers: -1})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDockAndUndock(t *testing.T) {
	var sink report.Recorder
	s, h := newTestService(&sink)
	uno, err := s.RegisterShip(ship.Spec{Name: "uno"})
	require.NoError(t, err)
	dos, err := s.RegisterShip(ship.Spec{Name: "dos"})
	require.NoError(t, err)

	require.NoError(t, s.DockShip(uno))
	require.NoError(t, s.DockShip(dos))
	assert.Len(t, h.Ships(), 2)

	require.NoError(t, s.UndockShip(uno))
	err = s.UndockShip(uno)
	assert.ErrorIs(t, err, harbor.ErrNotDocked)

	assert.Equal(t, []string{
		"Ship uno docked successfully.",
		"Ship dos docked successfully.",
		"Ship uno undocked successfully.",
		"Ship uno is not docked in this harbor.",
	}, sink.Messages())
}

func TestDock_UnknownShip(t *testing.T) {
	s, _ := newTestService(report.Discard)

	assert.ErrorIs(t, s.DockShip("NOPE"), ship.ErrUnknown)
	assert.ErrorIs(t, s.UndockShip("NOPE"), ship.ErrUnknown)
	assert.ErrorIs(t, s.DockShip(""), ErrInvalidArgument)
}

func TestShips_ReadModel(t *testing.T) {
	s, _ := newTestService(report.Discard)
	uno, err := s.RegisterShip(ship.Spec{Name: "uno", MaxContainers: 100, MaxWeight: 100000})
	require.NoError(t, err)
	_, err = s.RegisterShip(ship.Spec{Name: "dos"})
	require.NoError(t, err)
	require.NoError(t, s.DockShip(uno))

	ships := s.Ships()

	require.Len(t, ships, 2)
	assert.Equal(t, uno, ships[0].ID)
	assert.True(t, ships[0].Docked)
	assert.Equal(t, 100, ships[0].MaxContainers)
	assert.False(t, ships[1].Docked)
}

func TestLoggingService(t *testing.T) {
	var buf bytes.Buffer
	inner, _ := newTestService(report.Discard)
	s := NewLoggingService(log.NewLogfmtLogger(&buf), inner)

	id, err := s.RegisterShip(ship.Spec{Name: "uno"})
	require.NoError(t, err)
	_ = s.UndockShip(id)

	assert.Contains(t, buf.String(), "method=register_ship name=uno")
	assert.Contains(t, buf.String(), "method=undock ship="+string(id))
	assert.Contains(t, buf.String(), "not docked")
}

func TestInstrumentingService(t *testing.T) {
	docked := generic.NewGauge("docked")
	inner, _ := newTestService(report.Discard)
	s := NewInstrumentingService(generic.NewCounter("requests"), generic.NewHistogram("latency", 10), docked, inner)
	uno, err := s.RegisterShip(ship.Spec{Name: "uno"})
	require.NoError(t, err)
	dos, err := s.RegisterShip(ship.Spec{Name: "dos"})
	require.NoError(t, err)

	require.NoError(t, s.DockShip(uno))
	require.NoError(t, s.DockShip(dos))
	require.NoError(t, s.UndockShip(dos))
	assert.Error(t, s.UndockShip(dos))

	assert.Equal(t, float64(1), docked.Value())
}

func TestSet(t *testing.T) {
	var sink report.Recorder
	inner, h := newTestService(&sink)
	var s Service = NewSet(inner, endpoints.Options{})

	id, err := s.RegisterShip(ship.Spec{Name: "uno"})
	require.NoError(t, err)
	require.NoError(t, s.DockShip(id))
	assert.Len(t, h.Ships(), 1)
	assert.Len(t, s.Ships(), 1)

	require.NoError(t, s.UndockShip(id))
	assert.ErrorIs(t, s.UndockShip(id), harbor.ErrNotDocked)
	assert.Len(t, sink.Messages(), 3)
}
