package cargo

import (
	"errors"
	"time"
)

// HandlingEventType describes the type of a handling event
type HandlingEventType int

// valid handling event types
const (
	NotHandled HandlingEventType = iota
	Load
	Unload
	Stow
	Discharge
)

func (t HandlingEventType) String() string {
	switch t {
	case NotHandled:
		return "Not Handled"
	case Load:
		return "Load"
	case Unload:
		return "Unload"
	case Stow:
		return "Stow"
	case Discharge:
		return "Discharge"
	}
	return ""
}

// HandlingEvent is used to register the event when, for instance, cargo is
// loaded into a container or a container is stowed on a ship.
type HandlingEvent struct {
	Container string
	Cargo     string
	Weight    float64
	Type      HandlingEventType
	Completed time.Time
}

// HandlingHistory is the handling history of a container
type HandlingHistory struct {
	HandlingEvents []HandlingEvent
}

// ErrNoHistory is used when a container was never handled
var ErrNoHistory = errors.New("handling history is empty")

// MostRecentlyCompletedEvent returns the most recently completed handling event
func (h HandlingHistory) MostRecentlyCompletedEvent() (HandlingEvent, error) {
	if len(h.HandlingEvents) == 0 {
		return HandlingEvent{}, ErrNoHistory
	}
	return h.HandlingEvents[len(h.HandlingEvents)-1], nil
}

// HandlingEventRepository provides access to the handling event store
type HandlingEventRepository interface {
	Store(e HandlingEvent)
	QueryHandlingHistory(container string) HandlingHistory
}
