package container

import (
	"fmt"

	"github.com/Qalifah/harbor/cargo"
)

const (
	dangerousFillRatio = 0.5
	safeFillRatio      = 0.9
)

// LiquidContainer carries liquid cargo. Dangerous liquids may use at most half
// of the capacity, anything else at most 90%.
type LiquidContainer struct {
	base
}

// NewLiquid creates a liquid container with the next "L" serial number
func NewLiquid(reg *Registry, maxCapacity float64, dims Dimensions) *LiquidContainer {
	return &LiquidContainer{base: newBase(reg, Liquid, maxCapacity, dims)}
}

// Load implements Container
func (l *LiquidContainer) Load(c cargo.Cargo) error {
	liquid, ok := c.(*cargo.Liquid)
	if !ok || liquid == nil {
		return fmt.Errorf("%w: cannot load non-liquid cargo into liquid container", ErrTypeMismatch)
	}

	weight := float64(liquid.Weight())
	if liquid.IsDangerous() {
		if weight > l.maxCapacity*dangerousFillRatio {
			return fmt.Errorf("%w: hazardous cargo cannot exceed 50%% of container capacity", ErrCapacityExceeded)
		}
	} else if weight > l.maxCapacity*safeFillRatio {
		return fmt.Errorf("%w: cargo weight cannot exceed 90%% of container capacity", ErrCapacityExceeded)
	}

	return l.load(c)
}

// Unload implements Container
func (l *LiquidContainer) Unload() {
	l.unload()
}

// NotifyHazard implements HazardNotifier
func (l *LiquidContainer) NotifyHazard(containerNumber string) string {
	return fmt.Sprintf("Hazardous situation detected in container %s. Please take necessary precautions.", containerNumber)
}
