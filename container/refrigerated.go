package container

import (
	"fmt"

	"github.com/Qalifah/harbor/cargo"
)

// RefrigeratedContainer is dedicated to a single product kept at a set
// temperature
type RefrigeratedContainer struct {
	base
	product     *cargo.Cold
	temperature float64
}

// NewRefrigerated creates a refrigerated container with the next "C" serial
// number. Only product itself may be loaded into it.
func NewRefrigerated(reg *Registry, maxCapacity float64, product *cargo.Cold, temperature float64, dims Dimensions) *RefrigeratedContainer {
	return &RefrigeratedContainer{
		base:        newBase(reg, Refrigerated, maxCapacity, dims),
		product:     product,
		temperature: temperature,
	}
}

// Product returns the cargo this container is dedicated to
func (r *RefrigeratedContainer) Product() *cargo.Cold {
	return r.product
}

// Temperature returns the container temperature
func (r *RefrigeratedContainer) Temperature() float64 {
	return r.temperature
}

// Load implements Container
func (r *RefrigeratedContainer) Load(c cargo.Cargo) error {
	cold, ok := c.(*cargo.Cold)
	if !ok || cold == nil {
		return fmt.Errorf("%w: cannot load this cargo type into refrigerated container", ErrTypeMismatch)
	}
	if cold != r.product {
		return fmt.Errorf("%w %q to container %s", ErrIdentityMismatch, cold.Name(), r.serial)
	}
	if r.temperature < cold.TempNeeded() {
		return fmt.Errorf("%w: container is set to %s, %q needs %s", ErrConfigurationInvalid,
			formatFloat(r.temperature), cold.Name(), formatFloat(cold.TempNeeded()))
	}
	if err := r.checkCapacity(cold); err != nil {
		return err
	}
	return r.load(c)
}

// Unload implements Container
func (r *RefrigeratedContainer) Unload() {
	r.unload()
}

// NotifyHazard implements HazardNotifier
func (r *RefrigeratedContainer) NotifyHazard(containerNumber string) string {
	return fmt.Sprintf("Dangerous situation detected in refrigerated container %s. Please take necessary precautions.", containerNumber)
}
