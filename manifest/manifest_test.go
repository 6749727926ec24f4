package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Qalifah/harbor/cargo"
	"github.com/Qalifah/harbor/container"
	"github.com/Qalifah/harbor/docking"
	"github.com/Qalifah/harbor/harbor"
	"github.com/Qalifah/harbor/inmem"
	"github.com/Qalifah/harbor/loading"
	"github.com/Qalifah/harbor/location"
	"github.com/Qalifah/harbor/report"
	"github.com/Qalifah/harbor/stowage"
)

func newServices(sink report.Sink) (Services, *harbor.Harbor) {
	h := harbor.New(location.Rotterdam)
	ships := inmem.NewShipRepository()
	containers := inmem.NewContainerRepository()
	events := inmem.NewHandlingEventRepository()

	return Services{
		Docking: docking.NewService(h, ships, sink),
		Loading: loading.NewService(container.NewRegistry(), containers, events, sink),
		Stowage: stowage.NewService(ships, containers, events),
	}, h
}

func TestLoad(t *testing.T) {
	plan, err := Load(filepath.Join("testdata", "rotterdam.yaml"))
	require.NoError(t, err)

	require.Len(t, plan.Ships, 2)
	assert.True(t, plan.Ships[0].Dock)
	assert.False(t, plan.Ships[1].Dock)
	assert.Equal(t, 100, plan.Ships[0].Spec.MaxContainers)

	require.Len(t, plan.Containers, 3)
	assert.Equal(t, container.Liquid, plan.Containers[0].Spec.Type)
	assert.Equal(t, 2.6, plan.Containers[0].Spec.Dimensions.Height)
	assert.Equal(t, container.Gas, plan.Containers[1].Spec.Type)
	assert.Equal(t, 8.5, plan.Containers[1].Spec.Pressure)

	reefer := plan.Containers[2]
	require.NotNil(t, reefer.Spec.Product)
	assert.Same(t, reefer.Spec.Product, reefer.Cargo, "product and loaded cargo are the same instance")

	_, isLiquid := plan.Cargo["milk"].(*cargo.Liquid)
	assert.True(t, isLiquid)
	assert.True(t, plan.Stow[1].Batch)
	assert.Equal(t, []string{"propane-tank"}, plan.Hazards)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{"missing ship name", "ships: [{max_containers: 1}]", "ships[0].name"},
		{"duplicate ship", "ships: [{name: a}, {name: a}]", "ships[1].name"},
		{"negative limits", "ships: [{name: a, max_weight: -1}]", "ships[0]"},
		{"unknown cargo kind", "cargo: [{name: x, kind: plasma}]", "cargo[0].kind"},
		{"unknown container type", "containers: [{ref: a, type: X, max_capacity: 1}]", "containers[0].type"},
		{"zero capacity", "containers: [{ref: a, type: G}]", "containers[0].max_capacity"},
		{"product not cold", "cargo: [{name: x}]\ncontainers: [{ref: a, type: C, max_capacity: 1, product: x}]", "containers[0].product"},
		{"unknown loaded cargo", "containers: [{ref: a, type: G, max_capacity: 1, cargo: x}]", "containers[0].cargo"},
		{"unknown stow ship", "stow: [{ship: a, containers: [b]}]", "stow[0].ship"},
		{"unknown stow container", "ships: [{name: a}]\nstow: [{ship: a, containers: [b]}]", "stow[0].containers[0]"},
		{"unknown hazard", "hazards: [x]", "hazards[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("test.yaml", []byte(tt.yaml))

			require.ErrorIs(t, err, ErrInvalidManifest)
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)
			assert.Equal(t, "test.yaml", fe.Source)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse("bad.yaml", []byte("ships: {"))

	assert.ErrorIs(t, err, ErrInvalidManifest)
}

func TestApply(t *testing.T) {
	plan, err := Load(filepath.Join("testdata", "rotterdam.yaml"))
	require.NoError(t, err)
	var sink report.Recorder
	svc, h := newServices(&sink)

	res, err := Apply(plan, svc)
	require.NoError(t, err)

	assert.Equal(t, []string{"uno", "secundo"}, res.ShipOrder)
	assert.Len(t, h.Ships(), 1)

	w, err := svc.Stowage.ShipWeight(res.Ships["uno"])
	require.NoError(t, err)
	assert.Equal(t, float64(20000), w)

	w, err = svc.Stowage.ShipWeight(res.Ships["secundo"])
	require.NoError(t, err)
	assert.Equal(t, float64(1500), w)

	assert.Equal(t, "KON-L-0001", res.Containers["milk-tank"])
	assert.Equal(t, "KON-C-0001", res.Containers["reefer"])

	msgs := sink.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "Ship uno docked successfully.", msgs[0])
	assert.Contains(t, msgs[1], "gas container KON-G-0001")
}

func TestApply_StopsAtFailingStep(t *testing.T) {
	plan, err := Parse("inline.yaml", []byte(`
ships:
  - {name: small, max_containers: 10, max_weight: 10000}
cargo:
  - {name: milk, kind: liquid, weight: 8000}
  - {name: propane, weight: 4000}
containers:
  - {ref: tank, type: L, max_capacity: 10000, cargo: milk}
  - {ref: gas, type: G, max_capacity: 5000, cargo: propane}
stow:
  - {ship: small, batch: true, containers: [tank, gas]}
hazards: [gas]
`))
	require.NoError(t, err)
	svc, _ := newServices(report.Discard)

	res, err := Apply(plan, svc)

	require.ErrorIs(t, err, container.ErrCapacityExceeded)
	assert.Contains(t, err.Error(), `ship "small"`)
	w, err := svc.Stowage.ShipWeight(res.Ships["small"])
	require.NoError(t, err)
	assert.Equal(t, float64(0), w)
}

func TestApply_LoadRejected(t *testing.T) {
	plan, err := Parse("inline.yaml", []byte(`
cargo:
  - {name: acid, kind: liquid, weight: 600, dangerous: true}
containers:
  - {ref: tank, type: L, max_capacity: 1000, cargo: acid}
`))
	require.NoError(t, err)
	svc, _ := newServices(report.Discard)

	_, err = Apply(plan, svc)

	assert.ErrorIs(t, err, container.ErrCapacityExceeded)
	assert.Contains(t, err.Error(), `container "tank"`)
}
