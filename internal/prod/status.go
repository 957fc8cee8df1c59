package prod

import "fmt"

// Status is the defect state of a batch. A batch is either fine, has a
// defect, or is spoiled; never both.
type Status int

const (
	StatusNone Status = iota
	StatusDefect
	StatusSpoiled
)

// ParseStatus maps the toggle names "hasDefect" and "isSpoiled".
func ParseStatus(s string) (Status, error) {
	switch s {
	case "hasDefect":
		return StatusDefect, nil
	case "isSpoiled":
		return StatusSpoiled, nil
	default:
		return StatusNone, fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
}

// StatusFromFlags builds a Status from the two server booleans.
// A record carrying both flags is treated as spoiled.
func StatusFromFlags(hasDefect, isSpoiled bool) Status {
	switch {
	case isSpoiled:
		return StatusSpoiled
	case hasDefect:
		return StatusDefect
	default:
		return StatusNone
	}
}

// Toggle returns the status after the user clicks target: clicking the active
// status clears it, clicking the other one switches to it.
func (s Status) Toggle(target Status) Status {
	if s == target {
		return StatusNone
	}
	return target
}

func (s Status) HasDefect() bool { return s == StatusDefect }
func (s Status) IsSpoiled() bool { return s == StatusSpoiled }

func (s Status) String() string {
	switch s {
	case StatusDefect:
		return "hasDefect"
	case StatusSpoiled:
		return "isSpoiled"
	default:
		return "none"
	}
}
