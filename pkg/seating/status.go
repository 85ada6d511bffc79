package seating

import "fmt"

// SeatStatus is the confidence with which a seat belongs to its group.
type SeatStatus uint8

const (
	StatusCertain SeatStatus = iota
	StatusLikely
	StatusUnlikely
)

var statusNames = [...]string{"certain", "likely", "unlikely"}

// String returns "certain", "likely" or "unlikely".
func (s SeatStatus) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("SeatStatus(%d)", uint8(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s SeatStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SeatStatus) UnmarshalText(text []byte) error {
	for i, name := range statusNames {
		if string(text) == name {
			*s = SeatStatus(i)
			return nil
		}
	}
	return fmt.Errorf("unknown seat status %q", text)
}
