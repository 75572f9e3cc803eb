package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Status is a book's rental state. The stored (canonical) values keep the
// legacy capitalization; the wire format is lowercase. This type owns the
// normalization in both directions so nothing else has to care.
type Status string

const (
	StatusAvailable    Status = "Available"
	StatusNotAvailable Status = "NOTAvailable"
	StatusRented       Status = "Rented"
)

// ParseStatus converts a wire value (lowercase) into a Status. The stored
// capitalization is accepted too so values read back from the database
// round-trip.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(s) {
	case "available":
		return StatusAvailable, nil
	case "notavailable":
		return StatusNotAvailable, nil
	case "rented":
		return StatusRented, nil
	default:
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidStatus, s)
	}
}

// Wire returns the lowercase representation used on the HTTP surface.
func (s Status) Wire() string {
	return strings.ToLower(string(s))
}

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusNotAvailable, StatusRented:
		return true
	}
	return false
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Wire())
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}

	*s = parsed
	return nil
}
