// Package docking provides the use-cases for registering ships and moving
// them in and out of the harbor.
package docking

import (
	"errors"
	"fmt"

	"github.com/Qalifah/harbor/harbor"
	"github.com/Qalifah/harbor/report"
	"github.com/Qalifah/harbor/ship"
)

// ErrInvalidArgument is returned when one or more arguments are invalid.
var ErrInvalidArgument = errors.New("invalid argument")

// Service is the interface that provides docking methods.
type Service interface {
	// RegisterShip creates a ship and returns its ID. The ship is not docked.
	RegisterShip(spec ship.Spec) (ship.ID, error)

	// DockShip docks a registered ship in the harbor.
	DockShip(id ship.ID) error

	// UndockShip sends a ship away from the harbor. It fails with
	// harbor.ErrNotDocked if the ship is not there.
	UndockShip(id ship.ID) error

	// Ships returns a read model of all registered ships.
	Ships() []Ship
}

type service struct {
	harbor *harbor.Harbor
	ships  ship.Repository
	sink   report.Sink
}

func (s *service) RegisterShip(spec ship.Spec) (ship.ID, error) {
	if spec.MaxContainers < 0 || spec.MaxWeight < 0 || spec.MaxSpeed < 0 {
		return "", fmt.Errorf("%w: ship limits must not be negative", ErrInvalidArgument)
	}

	sh := ship.New(ship.NextID(), spec)
	if err := s.ships.Store(sh); err != nil {
		return "", err
	}
	return sh.ID, nil
}

func (s *service) DockShip(id ship.ID) error {
	if id == "" {
		return ErrInvalidArgument
	}

	sh, err := s.ships.Find(id)
	if err != nil {
		return err
	}

	s.harbor.Dock(sh)
	s.sink.Report(fmt.Sprintf("Ship %s docked successfully.", sh))
	return nil
}

func (s *service) UndockShip(id ship.ID) error {
	if id == "" {
		return ErrInvalidArgument
	}

	sh, err := s.ships.Find(id)
	if err != nil {
		return err
	}

	if err := s.harbor.Undock(sh); err != nil {
		s.sink.Report(fmt.Sprintf("Ship %s is not docked in this harbor.", sh))
		return err
	}
	s.sink.Report(fmt.Sprintf("Ship %s undocked successfully.", sh))
	return nil
}

func (s *service) Ships() []Ship {
	var result []Ship
	for _, sh := range s.ships.FindAll() {
		result = append(result, Ship{
			ID:            sh.ID,
			Name:          sh.Spec.Name,
			Docked:        s.harbor.IsDocked(sh),
			Containers:    len(sh.Containers()),
			TotalWeight:   sh.TotalContainersWeight(),
			MaxContainers: sh.Spec.MaxContainers,
			MaxWeight:     sh.Spec.MaxWeight,
		})
	}
	return result
}

// NewService creates a docking service for h with necessary dependencies.
func NewService(h *harbor.Harbor, ships ship.Repository, sink report.Sink) Service {
	return &service{
		harbor: h,
		ships:  ships,
		sink:   sink,
	}
}

// Ship is a read model for ship views.
type Ship struct {
	ID            ship.ID
	Name          string
	Docked        bool
	Containers    int
	TotalWeight   float64
	MaxContainers int
	MaxWeight     float64
}
