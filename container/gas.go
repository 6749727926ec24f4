package container

import (
	"fmt"

	"github.com/Qalifah/harbor/cargo"
)

// residualGasRatio is the share of the load that stays in a gas container
// after unloading
const residualGasRatio = 0.05

// GasContainer carries any cargo under pressure
type GasContainer struct {
	base
	pressure float64
}

// NewGas creates a gas container with the next "G" serial number
func NewGas(reg *Registry, maxCapacity float64, dims Dimensions) *GasContainer {
	return &GasContainer{base: newBase(reg, Gas, maxCapacity, dims)}
}

// SetPressure sets the container pressure. It is not validated.
func (g *GasContainer) SetPressure(pressure float64) {
	g.pressure = pressure
}

// Pressure returns the container pressure
func (g *GasContainer) Pressure() float64 {
	return g.pressure
}

// Load implements Container
func (g *GasContainer) Load(c cargo.Cargo) error {
	return g.load(c)
}

// Unload clears the cargo. The tracked weight keeps the residual gas.
func (g *GasContainer) Unload() {
	residual := g.weight * residualGasRatio
	g.unload()
	g.weight = residual
}

// NotifyHazard implements HazardNotifier
func (g *GasContainer) NotifyHazard(containerNumber string) string {
	return fmt.Sprintf("Dangerous situation detected in gas container %s. Please take necessary precautions.", containerNumber)
}
