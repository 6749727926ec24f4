package location

import (
	"errors"
	"fmt"
	"strings"
)

// UNLcode uniquely identifies a location
type UNLcode string

// Location is a port a harbor can operate at
type Location struct {
	UNLcode UNLcode
	Name    string
}

func (l Location) String() string {
	return fmt.Sprintf("%s (%s)", l.Name, l.UNLcode)
}

// ErrUnknown is used when a location can't be found
var ErrUnknown = errors.New("unknown location")

// ErrInvalidCode is used when a string is not shaped like a UN/LOCODE
var ErrInvalidCode = errors.New("invalid UN/LOCODE")

// ParseUNLcode normalises s into a UN/LOCODE: a two letter country code
// followed by three alphanumeric characters, e.g. "nl rtm" -> "NLRTM".
func ParseUNLcode(s string) (UNLcode, error) {
	code := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	if len(code) != 5 {
		return "", fmt.Errorf("%w: %q", ErrInvalidCode, s)
	}
	for i, r := range code {
		letter := r >= 'A' && r <= 'Z'
		digit := r >= '2' && r <= '9'
		if !letter && (i < 2 || !digit) {
			return "", fmt.Errorf("%w: %q", ErrInvalidCode, s)
		}
	}
	return UNLcode(code), nil
}

// Repository represents a location store
type Repository interface {
	Find(UNLcode) (*Location, error)
	FindAll() []*Location
}
