// SPDX-License-Identifier: MIT

package session

import (
	"errors"
	"fmt"
)

var (
	// ErrSlotEmpty is returned when an operation needs a slot nothing was loaded into.
	ErrSlotEmpty = errors.New("session: must load matrices")

	// ErrBadSlot is returned for a slot number other than 1 or 2.
	ErrBadSlot = errors.New("session: slot must be 1 or 2")

	// ErrNoResult is returned by Result and SaveResult before any operation succeeded.
	ErrNoResult = errors.New("session: no result computed yet")
)

// sessionErrorf tags err with the failing action, preserving it for errors.Is.
func sessionErrorf(action string, err error) error {
	return fmt.Errorf("session: %s: %w", action, err)
}
