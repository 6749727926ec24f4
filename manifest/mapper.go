package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Qalifah/harbor/cargo"
	"github.com/Qalifah/harbor/container"
	"github.com/Qalifah/harbor/ship"
)

// ErrInvalidManifest is wrapped by every validation error of a manifest
var ErrInvalidManifest = errors.New("invalid manifest")

// FieldError points at the manifest field that failed validation
type FieldError struct {
	Source string
	Field  string
	Msg    string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Source, e.Field, e.Msg)
}

func (e *FieldError) Unwrap() error { return ErrInvalidManifest }

func invalidField(source, field, msg string) error {
	return &FieldError{Source: source, Field: field, Msg: msg}
}

// Plan is a validated manifest
type Plan struct {
	Ships      []ShipPlan
	Cargo      map[string]cargo.Cargo
	Containers []ContainerPlan
	Stow       []StowPlan
	Hazards    []string
}

// ShipPlan is a ship to register, and dock unless Dock is false
type ShipPlan struct {
	Spec ship.Spec
	Dock bool
}

// ContainerPlan is a container to build and, when Cargo is set, to fill
type ContainerPlan struct {
	Ref   string
	Spec  container.Spec
	Cargo cargo.Cargo
}

// StowPlan puts containers on a ship one at a time, or all at once when
// Batch is set
type StowPlan struct {
	Ship       string
	Containers []string
	Batch      bool
}

// Map validates m and resolves every name it refers to
func Map(source string, m YAMLManifest) (Plan, error) {
	plan := Plan{Cargo: make(map[string]cargo.Cargo)}

	ships := make(map[string]bool)
	for i, s := range m.Ships {
		field := fmt.Sprintf("ships[%d]", i)
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return Plan{}, invalidField(source, field+".name", "ship name is required")
		}
		if ships[name] {
			return Plan{}, invalidField(source, field+".name", fmt.Sprintf("duplicate ship %q", name))
		}
		if s.MaxContainers < 0 || s.MaxWeight < 0 || s.MaxSpeed < 0 {
			return Plan{}, invalidField(source, field, "limits must not be negative")
		}
		ships[name] = true

		dock := true
		if s.Dock != nil {
			dock = *s.Dock
		}
		plan.Ships = append(plan.Ships, ShipPlan{
			Spec: ship.Spec{
				Name:          name,
				MaxSpeed:      s.MaxSpeed,
				MaxContainers: s.MaxContainers,
				MaxWeight:     s.MaxWeight,
			},
			Dock: dock,
		})
	}

	for i, c := range m.Cargo {
		field := fmt.Sprintf("cargo[%d]", i)
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return Plan{}, invalidField(source, field+".name", "cargo name is required")
		}
		if _, ok := plan.Cargo[name]; ok {
			return Plan{}, invalidField(source, field+".name", fmt.Sprintf("duplicate cargo %q", name))
		}

		switch strings.ToLower(strings.TrimSpace(c.Kind)) {
		case "", "general":
			plan.Cargo[name] = cargo.New(name, c.Weight)
		case "liquid":
			plan.Cargo[name] = cargo.NewLiquid(name, c.Weight, c.Dangerous)
		case "cold":
			plan.Cargo[name] = cargo.NewCold(name, c.Weight, c.TempNeeded)
		default:
			return Plan{}, invalidField(source, field+".kind", fmt.Sprintf("unknown cargo kind %q", c.Kind))
		}
	}

	refs := make(map[string]bool)
	for i, c := range m.Containers {
		field := fmt.Sprintf("containers[%d]", i)
		ref := strings.TrimSpace(c.Ref)
		if ref == "" {
			return Plan{}, invalidField(source, field+".ref", "container ref is required")
		}
		if refs[ref] {
			return Plan{}, invalidField(source, field+".ref", fmt.Sprintf("duplicate container %q", ref))
		}
		refs[ref] = true

		t, err := container.ParseType(c.Type)
		if err != nil {
			return Plan{}, invalidField(source, field+".type", err.Error())
		}
		if c.MaxCapacity <= 0 {
			return Plan{}, invalidField(source, field+".max_capacity", "max capacity must be positive")
		}

		cp := ContainerPlan{
			Ref: ref,
			Spec: container.Spec{
				Type:        t,
				MaxCapacity: c.MaxCapacity,
				Dimensions:  container.Dimensions{Height: c.Height, Tare: c.Tare, Depth: c.Depth},
				Pressure:    c.Pressure,
				Temperature: c.Temperature,
			},
		}

		if t == container.Refrigerated {
			product, ok := plan.Cargo[c.Product].(*cargo.Cold)
			if !ok {
				return Plan{}, invalidField(source, field+".product", fmt.Sprintf("%q is not a cold cargo", c.Product))
			}
			cp.Spec.Product = product
		}

		if c.Cargo != "" {
			loaded, ok := plan.Cargo[c.Cargo]
			if !ok {
				return Plan{}, invalidField(source, field+".cargo", fmt.Sprintf("unknown cargo %q", c.Cargo))
			}
			cp.Cargo = loaded
		}

		plan.Containers = append(plan.Containers, cp)
	}

	for i, s := range m.Stow {
		field := fmt.Sprintf("stow[%d]", i)
		if !ships[s.Ship] {
			return Plan{}, invalidField(source, field+".ship", fmt.Sprintf("unknown ship %q", s.Ship))
		}
		if len(s.Containers) == 0 {
			return Plan{}, invalidField(source, field+".containers", "at least one container is required")
		}
		for j, ref := range s.Containers {
			if !refs[ref] {
				return Plan{}, invalidField(source, fmt.Sprintf("%s.containers[%d]", field, j), fmt.Sprintf("unknown container %q", ref))
			}
		}
		plan.Stow = append(plan.Stow, StowPlan{Ship: s.Ship, Containers: s.Containers, Batch: s.Batch})
	}

	for i, ref := range m.Hazards {
		if !refs[ref] {
			return Plan{}, invalidField(source, fmt.Sprintf("hazards[%d]", i), fmt.Sprintf("unknown container %q", ref))
		}
		plan.Hazards = append(plan.Hazards, ref)
	}

	return plan, nil
}
