package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Qalifah/harbor/manifest"
)

func planCmd(rt *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "plan <manifest.yaml>",
		Short: "Carry out a stowage manifest and print every ship",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := manifest.Load(args[0])
			if err != nil {
				return err
			}

			a, err := rt.start(cmd)
			if err != nil {
				return err
			}
			defer a.close()
			return runPlan(a, p)
		},
	}
}

// runPlan applies p and prints the ships it created, in manifest order. The
// ships are printed even when a step fails part way.
func runPlan(a *app, p manifest.Plan) error {
	res, applyErr := manifest.Apply(p, a.services())

	for _, name := range res.ShipOrder {
		id := res.Ships[name]
		w, err := a.stowage.ShipWeight(id)
		if err != nil {
			return err
		}
		info, err := a.stowage.ShipInfo(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Ship %s (%s), total weight %s\n", name, id, formatWeight(w))
		fmt.Fprint(a.out, info)
	}
	return applyErr
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
