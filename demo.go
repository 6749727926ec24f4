package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Qalifah/harbor/cargo"
	"github.com/Qalifah/harbor/container"
	"github.com/Qalifah/harbor/ship"
)

func demoCmd(rt *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the sample voyage: two ships, a liquid and a gas container",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := rt.start(cmd)
			if err != nil {
				return err
			}
			defer a.close()
			return runDemo(a)
		},
	}
}

// runDemo stows a liquid container on its own and again in a batch with a gas
// container, then unloads and removes the liquid one.
func runDemo(a *app) error {
	uno, err := a.docking.RegisterShip(ship.Spec{Name: "uno", MaxSpeed: 50, MaxContainers: 100, MaxWeight: 100000})
	if err != nil {
		return err
	}
	secundo, err := a.docking.RegisterShip(ship.Spec{Name: "secundo", MaxSpeed: 20, MaxContainers: 120, MaxWeight: 200000})
	if err != nil {
		return err
	}
	for _, id := range []ship.ID{uno, secundo} {
		if err := a.docking.DockShip(id); err != nil {
			return err
		}
	}

	liquid, err := a.loading.NewContainer(container.Spec{Type: container.Liquid, MaxCapacity: 10000})
	if err != nil {
		return err
	}
	gas, err := a.loading.NewContainer(container.Spec{Type: container.Gas, MaxCapacity: 5000})
	if err != nil {
		return err
	}
	if err := a.loading.LoadCargo(gas, cargo.New("propane", 4000)); err != nil {
		return err
	}
	if err := a.loading.LoadCargo(liquid, cargo.NewLiquid("milk", 8000, false)); err != nil {
		return err
	}

	if err := a.stowage.StowContainer(uno, liquid); err != nil {
		return err
	}
	if err := a.stowage.StowContainers(uno, []string{liquid, gas}); err != nil {
		return err
	}
	if err := a.printShipWeight(uno); err != nil {
		return err
	}

	if err := a.loading.UnloadCargo(liquid); err != nil {
		return err
	}
	w, err := a.loading.ContainerWeight(liquid)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, formatWeight(w))

	if err := a.stowage.RemoveContainer(uno, liquid); err != nil {
		return err
	}
	if err := a.printShipWeight(uno); err != nil {
		return err
	}

	info, err := a.stowage.ShipInfo(uno)
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, info)
	return nil
}

func (a *app) printShipWeight(id ship.ID) error {
	w, err := a.stowage.ShipWeight(id)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, formatWeight(w))
	return nil
}
