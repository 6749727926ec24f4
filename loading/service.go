// Package loading provides the use-cases for filling and emptying containers.
package loading

import (
	"errors"
	"fmt"
	"time"

	"github.com/Qalifah/harbor/cargo"
	"github.com/Qalifah/harbor/container"
	"github.com/Qalifah/harbor/report"
)

// ErrInvalidArgument is returned when one or more arguments are invalid.
var ErrInvalidArgument = errors.New("invalid argument")

// Service is the interface that provides loading methods.
type Service interface {
	// NewContainer builds a container from spec, registers it and returns
	// its serial number.
	NewContainer(spec container.Spec) (string, error)

	// LoadCargo loads c into the container with the given serial number.
	LoadCargo(serial string, c cargo.Cargo) error

	// UnloadCargo empties the container with the given serial number.
	UnloadCargo(serial string) error

	// ContainerWeight returns the weight currently tracked for a container.
	ContainerWeight(serial string) (float64, error)

	// ReportHazard raises the hazard warning of a container and returns it.
	ReportHazard(serial string) (string, error)

	// Containers returns a read model of all registered containers.
	Containers() []Container

	// History returns the handling history of a container.
	History(serial string) cargo.HandlingHistory
}

type service struct {
	registry   *container.Registry
	containers container.Repository
	events     cargo.HandlingEventRepository
	sink       report.Sink
}

func (s *service) NewContainer(spec container.Spec) (string, error) {
	c, err := container.New(s.registry, spec)
	if err != nil {
		return "", err
	}
	if err := s.containers.Store(c); err != nil {
		return "", err
	}
	return c.SerialNumber(), nil
}

func (s *service) LoadCargo(serial string, c cargo.Cargo) error {
	if serial == "" || c == nil {
		return ErrInvalidArgument
	}

	cont, err := s.containers.Find(serial)
	if err != nil {
		return err
	}

	if err := cont.Load(c); err != nil {
		return fmt.Errorf("load %q into %s: %w", c.Name(), serial, err)
	}

	s.events.Store(cargo.HandlingEvent{
		Container: serial,
		Cargo:     c.Name(),
		Weight:    cont.CurrentCargoWeight(),
		Type:      cargo.Load,
		Completed: time.Now(),
	})
	return nil
}

func (s *service) UnloadCargo(serial string) error {
	if serial == "" {
		return ErrInvalidArgument
	}

	cont, err := s.containers.Find(serial)
	if err != nil {
		return err
	}

	var name string
	if c := cont.Cargo(); c != nil {
		name = c.Name()
	}
	cont.Unload()

	s.events.Store(cargo.HandlingEvent{
		Container: serial,
		Cargo:     name,
		Weight:    cont.CurrentCargoWeight(),
		Type:      cargo.Unload,
		Completed: time.Now(),
	})
	return nil
}

func (s *service) ContainerWeight(serial string) (float64, error) {
	if serial == "" {
		return 0, ErrInvalidArgument
	}

	cont, err := s.containers.Find(serial)
	if err != nil {
		return 0, err
	}
	return cont.CurrentCargoWeight(), nil
}

func (s *service) ReportHazard(serial string) (string, error) {
	if serial == "" {
		return "", ErrInvalidArgument
	}

	cont, err := s.containers.Find(serial)
	if err != nil {
		return "", err
	}

	msg := cont.NotifyHazard(serial)
	s.sink.Report(msg)
	return msg, nil
}

func (s *service) Containers() []Container {
	var result []Container
	for _, c := range s.containers.FindAll() {
		result = append(result, assemble(c))
	}
	return result
}

func (s *service) History(serial string) cargo.HandlingHistory {
	return s.events.QueryHandlingHistory(serial)
}

// NewService creates a loading service with necessary dependencies.
func NewService(registry *container.Registry, containers container.Repository, events cargo.HandlingEventRepository, sink report.Sink) Service {
	return &service{
		registry:   registry,
		containers: containers,
		events:     events,
		sink:       sink,
	}
}

// Container is a read model for container views.
type Container struct {
	SerialNumber       string
	Type               string
	MaxCapacity        float64
	CurrentCargoWeight float64
	Cargo              string
	Description        string
}

func assemble(c container.Container) Container {
	var name string
	if loaded := c.Cargo(); loaded != nil {
		name = loaded.Name()
	}
	return Container{
		SerialNumber:       c.SerialNumber(),
		Type:               c.Type().String(),
		MaxCapacity:        c.MaxCapacity(),
		CurrentCargoWeight: c.CurrentCargoWeight(),
		Cargo:              name,
		Description:        c.Describe(),
	}
}
