package ship

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pborman/uuid"

	"github.com/Qalifah/harbor/container"
)

// ID uniquely identifies a ship
type ID string

// Spec holds the fixed capacity parameters of a ship
type Spec struct {
	Name          string
	MaxSpeed      float64
	MaxContainers int
	MaxWeight     float64
}

// Ship carries containers up to a maximum count and aggregate cargo weight.
// The same container may be stowed more than once.
type Ship struct {
	ID   ID
	Spec Spec

	containers []container.Container
}

// ErrContainerNotFound is used when a serial number is not on board
var ErrContainerNotFound = errors.New("container not found on ship")

// New creates a ship with no containers on board
func New(id ID, spec Spec) *Ship {
	return &Ship{ID: id, Spec: spec}
}

// String returns the ship name, or its ID when it has none
func (s *Ship) String() string {
	if s.Spec.Name != "" {
		return s.Spec.Name
	}
	return string(s.ID)
}

// AddContainer stows c if the ship has room for it
func (s *Ship) AddContainer(c container.Container) error {
	if len(s.containers) >= s.Spec.MaxContainers {
		return fmt.Errorf("%w: adding container would exceed maximum containers number on the ship (%d)",
			container.ErrCapacityExceeded, s.Spec.MaxContainers)
	}
	if s.TotalContainersWeight()+c.CurrentCargoWeight() > s.Spec.MaxWeight {
		return fmt.Errorf("%w: adding container would exceed maximum containers weight on the ship (%s)",
			container.ErrCapacityExceeded, formatFloat(s.Spec.MaxWeight))
	}
	s.containers = append(s.containers, c)
	return nil
}

// AddContainers stows all of cs or none of them
func (s *Ship) AddContainers(cs []container.Container) error {
	if len(s.containers)+len(cs) > s.Spec.MaxContainers {
		return fmt.Errorf("%w: adding %d containers would exceed maximum containers number on the ship (%d)",
			container.ErrCapacityExceeded, len(cs), s.Spec.MaxContainers)
	}

	total := s.TotalContainersWeight()
	for _, c := range cs {
		total += c.CurrentCargoWeight()
		if total > s.Spec.MaxWeight {
			return fmt.Errorf("%w: adding containers would exceed maximum containers weight on the ship (%s)",
				container.ErrCapacityExceeded, formatFloat(s.Spec.MaxWeight))
		}
	}

	s.containers = append(s.containers, cs...)
	return nil
}

// RemoveContainer removes the first container with the given serial number
func (s *Ship) RemoveContainer(serial string) error {
	for i, c := range s.containers {
		if c.SerialNumber() == serial {
			s.containers = append(s.containers[:i:i], s.containers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrContainerNotFound, serial)
}

// TotalContainersWeight sums the current cargo weight of every container on
// board
func (s *Ship) TotalContainersWeight() float64 {
	var total float64
	for _, c := range s.containers {
		total += c.CurrentCargoWeight()
	}
	return total
}

// Containers returns the containers on board in stowage order
func (s *Ship) Containers() []container.Container {
	cs := make([]container.Container, len(s.containers))
	copy(cs, s.containers)
	return cs
}

// Describe renders the ship configuration followed by every container on board
func (s *Ship) Describe() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Max Speed: %s\n", formatFloat(s.Spec.MaxSpeed))
	fmt.Fprintf(&sb, "Max Containers Number: %d\n", s.Spec.MaxContainers)
	fmt.Fprintf(&sb, "Max Containers Weight: %s\n", formatFloat(s.Spec.MaxWeight))
	sb.WriteString("Containers:\n")
	for _, c := range s.containers {
		sb.WriteString(c.Describe())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Repository provides access to a ship store
type Repository interface {
	Store(s *Ship) error
	Find(id ID) (*Ship, error)
	FindAll() []*Ship
}

// ErrUnknown is used when a ship can't be found
var ErrUnknown = errors.New("unknown ship")

// NextID generates a new ship ID.
func NextID() ID {
	return ID(strings.Split(strings.ToUpper(uuid.New()), "-")[0])
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
