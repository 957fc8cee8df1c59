package prod

import (
	"strconv"
	"strings"
)

// IntValue is the display value of a numeric field. The zero value is the
// empty sentinel, distinct from Int(0).
type IntValue struct {
	n   int
	set bool
}

// EmptyInt is the empty sentinel.
var EmptyInt = IntValue{}

func Int(n int) IntValue {
	return IntValue{n: n, set: true}
}

// Get returns the integer and whether the value is set.
func (v IntValue) Get() (int, bool) {
	return v.n, v.set
}

func (v IntValue) IsEmpty() bool {
	return !v.set
}

// String renders the value the way an input box shows it.
func (v IntValue) String() string {
	if !v.set {
		return ""
	}
	return strconv.Itoa(v.n)
}

// ParseInt turns raw input into an IntValue. Surrounding whitespace and a
// leading sign are accepted; anything else that is not a base-10 integer
// yields the empty sentinel. "0" parses to Int(0). There is no prefix
// parsing: "12abc" and "1.5" are empty, not 12 and 1.
func ParseInt(raw string) IntValue {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return EmptyInt
	}
	return Int(n)
}
