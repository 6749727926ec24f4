// Package stowage provides the use-cases for putting containers on ships and
// taking them off again.
package stowage

import (
	"errors"
	"fmt"
	"time"

	"github.com/Qalifah/harbor/cargo"
	"github.com/Qalifah/harbor/container"
	"github.com/Qalifah/harbor/ship"
)

// ErrInvalidArgument is returned when one or more arguments are invalid.
var ErrInvalidArgument = errors.New("invalid argument")

// Service provides stowage operations.
type Service interface {
	// StowContainer puts a registered container on a ship.
	StowContainer(id ship.ID, serial string) error

	// StowContainers puts all the given containers on a ship, or none of
	// them if the ship can't take the whole batch.
	StowContainers(id ship.ID, serials []string) error

	// RemoveContainer takes the first container with serial off a ship.
	RemoveContainer(id ship.ID, serial string) error

	// ShipWeight returns the total cargo weight on board a ship.
	ShipWeight(id ship.ID) (float64, error)

	// ShipInfo describes a ship and everything on board.
	ShipInfo(id ship.ID) (string, error)
}

type service struct {
	ships      ship.Repository
	containers container.Repository
	events     cargo.HandlingEventRepository
}

func (s *service) StowContainer(id ship.ID, serial string) error {
	if id == "" || serial == "" {
		return ErrInvalidArgument
	}

	sh, err := s.ships.Find(id)
	if err != nil {
		return err
	}
	c, err := s.containers.Find(serial)
	if err != nil {
		return err
	}

	if err := sh.AddContainer(c); err != nil {
		return fmt.Errorf("stow %s on %s: %w", serial, sh, err)
	}
	s.record(c, cargo.Stow)
	return nil
}

func (s *service) StowContainers(id ship.ID, serials []string) error {
	if id == "" {
		return ErrInvalidArgument
	}

	sh, err := s.ships.Find(id)
	if err != nil {
		return err
	}

	batch := make([]container.Container, 0, len(serials))
	for _, serial := range serials {
		c, err := s.containers.Find(serial)
		if err != nil {
			return fmt.Errorf("%s: %w", serial, err)
		}
		batch = append(batch, c)
	}

	if err := sh.AddContainers(batch); err != nil {
		return fmt.Errorf("stow %d containers on %s: %w", len(batch), sh, err)
	}
	for _, c := range batch {
		s.record(c, cargo.Stow)
	}
	return nil
}

func (s *service) RemoveContainer(id ship.ID, serial string) error {
	if id == "" || serial == "" {
		return ErrInvalidArgument
	}

	sh, err := s.ships.Find(id)
	if err != nil {
		return err
	}

	var removed container.Container
	for _, c := range sh.Containers() {
		if c.SerialNumber() == serial {
			removed = c
			break
		}
	}

	if err := sh.RemoveContainer(serial); err != nil {
		return err
	}
	s.record(removed, cargo.Discharge)
	return nil
}

func (s *service) ShipWeight(id ship.ID) (float64, error) {
	if id == "" {
		return 0, ErrInvalidArgument
	}

	sh, err := s.ships.Find(id)
	if err != nil {
		return 0, err
	}
	return sh.TotalContainersWeight(), nil
}

func (s *service) ShipInfo(id ship.ID) (string, error) {
	if id == "" {
		return "", ErrInvalidArgument
	}

	sh, err := s.ships.Find(id)
	if err != nil {
		return "", err
	}
	return sh.Describe(), nil
}

func (s *service) record(c container.Container, t cargo.HandlingEventType) {
	var name string
	if loaded := c.Cargo(); loaded != nil {
		name = loaded.Name()
	}
	s.events.Store(cargo.HandlingEvent{
		Container: c.SerialNumber(),
		Cargo:     name,
		Weight:    c.CurrentCargoWeight(),
		Type:      t,
		Completed: time.Now(),
	})
}

// NewService creates a stowage service with necessary dependencies.
func NewService(ships ship.Repository, containers container.Repository, events cargo.HandlingEventRepository) Service {
	return &service{
		ships:      ships,
		containers: containers,
		events:     events,
	}
}
