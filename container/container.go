// Package container models the shipping containers cargo travels in. Each
// container type enforces its own loading rules on top of the shared
// capacity check.
package container

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Qalifah/harbor/cargo"
)

// Type is the single letter code of a container type, used in serial numbers
type Type string

// Container types
const (
	Liquid       Type = "L"
	Gas          Type = "G"
	Refrigerated Type = "C"
)

func (t Type) String() string {
	switch t {
	case Liquid:
		return "Liquid"
	case Gas:
		return "Gas"
	case Refrigerated:
		return "Refrigerated"
	}
	return string(t)
}

// ParseType parses either a type code ("L") or its name ("liquid")
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "liquid":
		return Liquid, nil
	case "g", "gas":
		return Gas, nil
	case "c", "refrigerated", "cold":
		return Refrigerated, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Errors returned when loading cargo
var (
	ErrCapacityExceeded     = errors.New("capacity exceeded")
	ErrTypeMismatch         = errors.New("cargo type mismatch")
	ErrIdentityMismatch     = errors.New("cannot load this product type")
	ErrConfigurationInvalid = errors.New("invalid required temperature")
)

// HazardNotifier produces a warning for a container in a hazardous situation
type HazardNotifier interface {
	NotifyHazard(containerNumber string) string
}

// Container holds at most one cargo at a time
type Container interface {
	HazardNotifier

	// Load validates the cargo against the container rules and stores it.
	// A failed load leaves the container unchanged.
	Load(c cargo.Cargo) error
	Unload()

	Cargo() cargo.Cargo
	CurrentCargoWeight() float64
	MaxCapacity() float64
	SerialNumber() string
	Type() Type
	Dimensions() Dimensions
	Describe() string
}

// Dimensions are the physical attributes of a container. They are
// informational only.
type Dimensions struct {
	Height float64
	Tare   float64
	Depth  float64
}

// Repository provides access to a container store
type Repository interface {
	Store(c Container) error
	Find(serial string) (Container, error)
	FindAll() []Container
}

// ErrUnknown is used when a container can't be found
var ErrUnknown = errors.New("unknown container")

// base carries what every container type shares
type base struct {
	serial      string
	typ         Type
	maxCapacity float64
	dims        Dimensions

	cargo  cargo.Cargo
	weight float64
}

func newBase(reg *Registry, t Type, maxCapacity float64, dims Dimensions) base {
	return base{
		serial:      reg.Next(t),
		typ:         t,
		maxCapacity: maxCapacity,
		dims:        dims,
	}
}

func (b *base) checkCapacity(c cargo.Cargo) error {
	if float64(c.Weight()) > b.maxCapacity {
		return fmt.Errorf("%w: cargo weight %d exceeds container capacity %s",
			ErrCapacityExceeded, c.Weight(), formatFloat(b.maxCapacity))
	}
	return nil
}

func (b *base) load(c cargo.Cargo) error {
	if c == nil {
		return fmt.Errorf("%w: no cargo given", ErrTypeMismatch)
	}
	if err := b.checkCapacity(c); err != nil {
		return err
	}
	b.cargo = c
	b.weight = float64(c.Weight())
	return nil
}

func (b *base) unload() {
	b.cargo = nil
	b.weight = 0
}

func (b *base) Cargo() cargo.Cargo { return b.cargo }
func (b *base) CurrentCargoWeight() float64 { return b.weight }
func (b *base) MaxCapacity() float64 { return b.maxCapacity }
func (b *base) SerialNumber() string { return b.serial }
func (b *base) Type() Type { return b.typ }
func (b *base) Dimensions() Dimensions { return b.dims }

// Describe renders the container as a multi-line block
func (b *base) Describe() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Serial Number: %s\n", b.serial)
	fmt.Fprintf(&sb, "Container Type: %s\n", string(b.typ))
	fmt.Fprintf(&sb, "Current Cargo Weight: %s\n", formatFloat(b.weight))
	fmt.Fprintf(&sb, "Height: %s\n", formatFloat(b.dims.Height))
	fmt.Fprintf(&sb, "Weight: %s\n", formatFloat(b.dims.Tare))
	fmt.Fprintf(&sb, "Depth: %s\n", formatFloat(b.dims.Depth))
	fmt.Fprintf(&sb, "Max Capacity: %s\n", formatFloat(b.maxCapacity))
	if b.cargo != nil {
		fmt.Fprintf(&sb, "Cargo Name: %s\n", b.cargo.Name())
		fmt.Fprintf(&sb, "Cargo Weight: %d\n", b.cargo.Weight())
	} else {
		sb.WriteString("No cargo loaded\n")
	}
	return sb.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
