package ship

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Qalifah/harbor/cargo"
	"github.com/Qalifah/harbor/container"
)

func loadedGas(t *testing.T, reg *container.Registry, weight int) *container.GasContainer {
	t.Helper()
	g := container.NewGas(reg, 100000, container.Dimensions{})
	require.NoError(t, g.Load(cargo.New("propane", weight)))
	return g
}

func TestAddContainer(t *testing.T) {
	reg := container.NewRegistry()
	s := New(NextID(), Spec{MaxSpeed: 20, MaxContainers: 10, MaxWeight: 10000})

	require.NoError(t, s.AddContainer(loadedGas(t, reg, 6000)))
	require.NoError(t, s.AddContainer(loadedGas(t, reg, 4000)))

	assert.Len(t, s.Containers(), 2)
	assert.Equal(t, float64(10000), s.TotalContainersWeight())
}

func TestAddContainer_WeightLimit(t *testing.T) {
	reg := container.NewRegistry()
	s := New(NextID(), Spec{MaxContainers: 10, MaxWeight: 10000})
	require.NoError(t, s.AddContainer(loadedGas(t, reg, 8000)))

	err := s.AddContainer(loadedGas(t, reg, 2001))

	assert.ErrorIs(t, err, container.ErrCapacityExceeded)
	assert.Contains(t, err.Error(), "weight")
	assert.Len(t, s.Containers(), 1)
}

func TestAddContainer_CountLimitWithWeightHeadroom(t *testing.T) {
	reg := container.NewRegistry()
	s := New(NextID(), Spec{MaxContainers: 2, MaxWeight: 1e9})
	require.NoError(t, s.AddContainer(container.NewGas(reg, 10, container.Dimensions{})))
	require.NoError(t, s.AddContainer(container.NewGas(reg, 10, container.Dimensions{})))

	err := s.AddContainer(container.NewGas(reg, 10, container.Dimensions{}))

	assert.ErrorIs(t, err, container.ErrCapacityExceeded)
	assert.Contains(t, err.Error(), "number")
	assert.Len(t, s.Containers(), 2)
}

func TestAddContainers_RejectsWholeBatchOnWeight(t *testing.T) {
	reg := container.NewRegistry()
	s := New(NextID(), Spec{MaxContainers: 100, MaxWeight: 10000})

	err := s.AddContainers([]container.Container{loadedGas(t, reg, 8000), loadedGas(t, reg, 4000)})

	assert.ErrorIs(t, err, container.ErrCapacityExceeded)
	assert.Empty(t, s.Containers())
	assert.Equal(t, float64(0), s.TotalContainersWeight())
}

func TestAddContainers_RejectsWholeBatchOnCount(t *testing.T) {
	reg := container.NewRegistry()
	s := New(NextID(), Spec{MaxContainers: 2, MaxWeight: 1e9})
	require.NoError(t, s.AddContainer(loadedGas(t, reg, 1)))

	err := s.AddContainers([]container.Container{loadedGas(t, reg, 1), loadedGas(t, reg, 1)})

	assert.ErrorIs(t, err, container.ErrCapacityExceeded)
	assert.Len(t, s.Containers(), 1)
}

func TestAddContainers_PreservesOrder(t *testing.T) {
	reg := container.NewRegistry()
	s := New(NextID(), Spec{MaxContainers: 5, MaxWeight: 10000})
	a, b := loadedGas(t, reg, 1000), loadedGas(t, reg, 2000)

	require.NoError(t, s.AddContainers([]container.Container{a, b}))

	cs := s.Containers()
	require.Len(t, cs, 2)
	assert.Equal(t, a.SerialNumber(), cs[0].SerialNumber())
	assert.Equal(t, b.SerialNumber(), cs[1].SerialNumber())
}

func TestRemoveContainer(t *testing.T) {
	reg := container.NewRegistry()
	s := New(NextID(), Spec{MaxContainers: 5, MaxWeight: 10000})
	a, b := loadedGas(t, reg, 1000), loadedGas(t, reg, 2000)
	require.NoError(t, s.AddContainers([]container.Container{a, b, a}))

	require.NoError(t, s.RemoveContainer(a.SerialNumber()))

	cs := s.Containers()
	require.Len(t, cs, 2)
	assert.Equal(t, b.SerialNumber(), cs[0].SerialNumber(), "only the first match is removed")
	assert.Equal(t, a.SerialNumber(), cs[1].SerialNumber())
}

func TestRemoveContainer_NotFound(t *testing.T) {
	reg := container.NewRegistry()
	s := New(NextID(), Spec{MaxContainers: 5, MaxWeight: 10000})
	require.NoError(t, s.AddContainer(loadedGas(t, reg, 1000)))

	err := s.RemoveContainer("KON-L-9999")

	assert.ErrorIs(t, err, ErrContainerNotFound)
	assert.Len(t, s.Containers(), 1)
}

func TestTotalContainersWeight_RecomputedOnDemand(t *testing.T) {
	reg := container.NewRegistry()
	s := New(NextID(), Spec{MaxContainers: 5, MaxWeight: 10000})
	g := loadedGas(t, reg, 4000)
	require.NoError(t, s.AddContainer(g))

	g.Unload()

	assert.InDelta(t, 200, s.TotalContainersWeight(), 1e-9)
}

// Mirrors the sample voyage: a liquid container stowed individually and
// again as part of a batch with a gas container.
func TestScenario_DuplicateStowage(t *testing.T) {
	reg := container.NewRegistry()
	s := New(NextID(), Spec{Name: "uno", MaxSpeed: 50, MaxContainers: 100, MaxWeight: 100000})

	liquid := container.NewLiquid(reg, 10000, container.Dimensions{})
	require.NoError(t, liquid.Load(cargo.NewLiquid("milk", 8000, false)))
	gas := container.NewGas(reg, 5000, container.Dimensions{})
	require.NoError(t, gas.Load(cargo.New("propane", 4000)))

	require.NoError(t, s.AddContainer(liquid))
	require.NoError(t, s.AddContainers([]container.Container{liquid, gas}))

	assert.Equal(t, float64(20000), s.TotalContainersWeight())
	assert.Len(t, s.Containers(), 3)

	liquid.Unload()
	assert.Equal(t, float64(4000), s.TotalContainersWeight())

	require.NoError(t, s.RemoveContainer(liquid.SerialNumber()))
	assert.Len(t, s.Containers(), 2)
	assert.Equal(t, float64(4000), s.TotalContainersWeight())
}

func TestDescribe(t *testing.T) {
	reg := container.NewRegistry()
	s := New(NextID(), Spec{MaxSpeed: 50, MaxContainers: 100, MaxWeight: 100000})
	require.NoError(t, s.AddContainer(loadedGas(t, reg, 4000)))

	out := s.Describe()

	assert.Contains(t, out, "Max Speed: 50\nMax Containers Number: 100\nMax Containers Weight: 100000\nContainers:\n")
	assert.Contains(t, out, "Serial Number: KON-G-0001\n")
	assert.Contains(t, out, "Cargo Name: propane\n")
}

func TestString(t *testing.T) {
	assert.Equal(t, "uno", New("ABC", Spec{Name: "uno"}).String())
	assert.Equal(t, "ABC", New("ABC", Spec{}).String())
}

func TestNextID(t *testing.T) {
	a, b := NextID(), NextID()

	assert.Len(t, string(a), 8)
	assert.NotEqual(t, a, b)
}
