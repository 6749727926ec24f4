package container

import (
	"errors"
	"fmt"

	"github.com/Qalifah/harbor/cargo"
)

// ErrUnknownType is used when a container type code is not recognised
var ErrUnknownType = errors.New("unknown container type")

// ErrInvalidSpec is used when a container can't be built from a Spec
var ErrInvalidSpec = errors.New("invalid container spec")

// Spec describes a container to be built by New
type Spec struct {
	Type        Type
	MaxCapacity float64
	Dimensions  Dimensions

	// Pressure applies to gas containers
	Pressure float64

	// Product and Temperature apply to refrigerated containers
	Product     *cargo.Cold
	Temperature float64
}

// New builds the container described by s, drawing its serial number from reg
func New(reg *Registry, s Spec) (Container, error) {
	if s.MaxCapacity <= 0 {
		return nil, fmt.Errorf("%w: max capacity must be positive, got %s", ErrInvalidSpec, formatFloat(s.MaxCapacity))
	}

	switch s.Type {
	case Liquid:
		return NewLiquid(reg, s.MaxCapacity, s.Dimensions), nil
	case Gas:
		g := NewGas(reg, s.MaxCapacity, s.Dimensions)
		g.SetPressure(s.Pressure)
		return g, nil
	case Refrigerated:
		if s.Product == nil {
			return nil, fmt.Errorf("%w: refrigerated container needs a product", ErrInvalidSpec)
		}
		return NewRefrigerated(reg, s.MaxCapacity, s.Product, s.Temperature, s.Dimensions), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownType, string(s.Type))
}
