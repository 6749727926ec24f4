// Package inmem provides in-memory implementations of all the domain
// repositories. Nothing outlives the process.
package inmem

import (
	"sync"

	"github.com/Qalifah/harbor/cargo"
	"github.com/Qalifah/harbor/container"
	"github.com/Qalifah/harbor/location"
	"github.com/Qalifah/harbor/ship"
)

type containerRepository struct {
	mtx        sync.RWMutex
	containers map[string]container.Container
	order      []string
}

func (r *containerRepository) Store(c container.Container) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	if _, ok := r.containers[c.SerialNumber()]; !ok {
		r.order = append(r.order, c.SerialNumber())
	}
	r.containers[c.SerialNumber()] = c
	return nil
}

func (r *containerRepository) Find(serial string) (container.Container, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	if c, ok := r.containers[serial]; ok {
		return c, nil
	}
	return nil, container.ErrUnknown
}

func (r *containerRepository) FindAll() []container.Container {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	cs := make([]container.Container, 0, len(r.order))
	for _, serial := range r.order {
		cs = append(cs, r.containers[serial])
	}
	return cs
}

// NewContainerRepository returns a new instance of a in-memory container repository.
func NewContainerRepository() container.Repository {
	return &containerRepository{
		containers: make(map[string]container.Container),
	}
}

type shipRepository struct {
	mtx   sync.RWMutex
	ships map[ship.ID]*ship.Ship
	order []ship.ID
}

func (r *shipRepository) Store(s *ship.Ship) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	if _, ok := r.ships[s.ID]; !ok {
		r.order = append(r.order, s.ID)
	}
	r.ships[s.ID] = s
	return nil
}

func (r *shipRepository) Find(id ship.ID) (*ship.Ship, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	if s, ok := r.ships[id]; ok {
		return s, nil
	}
	return nil, ship.ErrUnknown
}

func (r *shipRepository) FindAll() []*ship.Ship {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	ships := make([]*ship.Ship, 0, len(r.order))
	for _, id := range r.order {
		ships = append(ships, r.ships[id])
	}
	return ships
}

// NewShipRepository returns a new instance of a in-memory ship repository.
func NewShipRepository() ship.Repository {
	return &shipRepository{
		ships: make(map[ship.ID]*ship.Ship),
	}
}

type locationRepository struct {
	locations map[location.UNLcode]*location.Location
}

func (r *locationRepository) Find(code location.UNLcode) (*location.Location, error) {
	if l, ok := r.locations[code]; ok {
		return l, nil
	}
	return nil, location.ErrUnknown
}

func (r *locationRepository) FindAll() []*location.Location {
	return location.Samples()
}

// NewLocationRepository returns a new instance of a in-memory location repository
// holding the sample ports.
func NewLocationRepository() location.Repository {
	r := &locationRepository{
		locations: make(map[location.UNLcode]*location.Location),
	}
	for _, l := range location.Samples() {
		r.locations[l.UNLcode] = l
	}
	return r
}

type handlingEventRepository struct {
	mtx    sync.RWMutex
	events map[string][]cargo.HandlingEvent
}

func (r *handlingEventRepository) Store(e cargo.HandlingEvent) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.events[e.Container] = append(r.events[e.Container], e)
}

func (r *handlingEventRepository) QueryHandlingHistory(serial string) cargo.HandlingHistory {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return cargo.HandlingHistory{HandlingEvents: append([]cargo.HandlingEvent(nil), r.events[serial]...)}
}

// NewHandlingEventRepository returns a new instance of a in-memory handling event repository.
func NewHandlingEventRepository() cargo.HandlingEventRepository {
	return &handlingEventRepository{
		events: make(map[string][]cargo.HandlingEvent),
	}
}
