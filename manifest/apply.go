package manifest

import (
	"fmt"

	"github.com/Qalifah/harbor/docking"
	"github.com/Qalifah/harbor/loading"
	"github.com/Qalifah/harbor/ship"
	"github.com/Qalifah/harbor/stowage"
)

// Services are what a plan is carried out against
type Services struct {
	Docking docking.Service
	Loading loading.Service
	Stowage stowage.Service
}

// Result maps the names used in a plan to what they became
type Result struct {
	Ships      map[string]ship.ID
	Containers map[string]string
	ShipOrder  []string
}

// Apply carries out the plan step by step: ships, containers and cargo,
// stowage, then hazard reports. It stops at the first failing step; whatever
// succeeded before it stays in place.
func Apply(p Plan, svc Services) (Result, error) {
	res := Result{
		Ships:      make(map[string]ship.ID),
		Containers: make(map[string]string),
	}

	for _, sp := range p.Ships {
		id, err := svc.Docking.RegisterShip(sp.Spec)
		if err != nil {
			return res, fmt.Errorf("register ship %q: %w", sp.Spec.Name, err)
		}
		res.Ships[sp.Spec.Name] = id
		res.ShipOrder = append(res.ShipOrder, sp.Spec.Name)

		if sp.Dock {
			if err := svc.Docking.DockShip(id); err != nil {
				return res, fmt.Errorf("dock ship %q: %w", sp.Spec.Name, err)
			}
		}
	}

	for _, cp := range p.Containers {
		serial, err := svc.Loading.NewContainer(cp.Spec)
		if err != nil {
			return res, fmt.Errorf("container %q: %w", cp.Ref, err)
		}
		res.Containers[cp.Ref] = serial

		if cp.Cargo != nil {
			if err := svc.Loading.LoadCargo(serial, cp.Cargo); err != nil {
				return res, fmt.Errorf("container %q: %w", cp.Ref, err)
			}
		}
	}

	for _, sp := range p.Stow {
		id := res.Ships[sp.Ship]
		serials := make([]string, 0, len(sp.Containers))
		for _, ref := range sp.Containers {
			serials = append(serials, res.Containers[ref])
		}

		if sp.Batch {
			if err := svc.Stowage.StowContainers(id, serials); err != nil {
				return res, fmt.Errorf("ship %q: %w", sp.Ship, err)
			}
			continue
		}
		for _, serial := range serials {
			if err := svc.Stowage.StowContainer(id, serial); err != nil {
				return res, fmt.Errorf("ship %q: %w", sp.Ship, err)
			}
		}
	}

	for _, ref := range p.Hazards {
		if _, err := svc.Loading.ReportHazard(res.Containers[ref]); err != nil {
			return res, fmt.Errorf("hazard %q: %w", ref, err)
		}
	}

	return res, nil
}
