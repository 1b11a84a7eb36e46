// SPDX-License-Identifier: MIT

package session

import (
	"fmt"
	"strconv"
	"strings"
)

// Slot names one of the two operand positions. The zero value is invalid.
type Slot int

// Operand slots; Slot1 is the left operand of Apply.
const (
	Slot1 Slot = 1
	Slot2 Slot = 2
)

// Valid reports whether s is Slot1 or Slot2.
func (s Slot) Valid() bool { return s == Slot1 || s == Slot2 }

func (s Slot) String() string { return "slot " + strconv.Itoa(int(s)) }

// ParseSlot accepts "1" or "2" (surrounding blanks ignored).
func ParseSlot(s string) (Slot, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !Slot(n).Valid() {
		return 0, fmt.Errorf("%w: got %q", ErrBadSlot, s)
	}

	return Slot(n), nil
}

func (s Slot) index() int { return int(s) - 1 }
