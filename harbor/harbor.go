package harbor

import (
	"errors"
	"fmt"

	"github.com/Qalifah/harbor/location"
	"github.com/Qalifah/harbor/ship"
)

// ErrNotDocked is used when undocking a ship that is not in the harbor
var ErrNotDocked = errors.New("ship is not docked in this harbor")

// Harbor keeps track of the ships docked at a port. Docking does not check
// for duplicates.
type Harbor struct {
	Location *location.Location

	ships []*ship.Ship
}

// New creates an empty harbor at loc
func New(loc *location.Location) *Harbor {
	return &Harbor{Location: loc}
}

// Dock adds s to the harbor
func (h *Harbor) Dock(s *ship.Ship) {
	h.ships = append(h.ships, s)
}

// Undock removes s from the harbor
func (h *Harbor) Undock(s *ship.Ship) error {
	for i, docked := range h.ships {
		if docked == s {
			h.ships = append(h.ships[:i:i], h.ships[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotDocked, s)
}

// IsDocked reports whether s is in the harbor
func (h *Harbor) IsDocked(s *ship.Ship) bool {
	for _, docked := range h.ships {
		if docked == s {
			return true
		}
	}
	return false
}

// Ships returns the docked ships in docking order
func (h *Harbor) Ships() []*ship.Ship {
	ships := make([]*ship.Ship, len(h.ships))
	copy(ships, h.ships)
	return ships
}
