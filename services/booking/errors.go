package booking

import (
	"errors"
	"fmt"
)

// ValidationError reports a missing or malformed field on the candidate
// booking.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// AlreadyBookedError rejects a candidate when the patient already holds a
// booking for the same treatment on the same date. The message text is part
// of the API response.
type AlreadyBookedError struct {
	Date string
}

func (e *AlreadyBookedError) Error() string {
	return fmt.Sprintf("You already have a booking on %s", e.Date)
}

// SlotTakenError rejects a candidate whose slot was claimed by another
// patient for the same treatment and date.
type SlotTakenError struct {
	Slot string
	Date string
}

func (e *SlotTakenError) Error() string {
	return fmt.Sprintf("Slot %s on %s is no longer available", e.Slot, e.Date)
}

var (
	// ErrUnknownTreatment: the candidate names a treatment that is not in
	// the catalog.
	ErrUnknownTreatment = errors.New("treatment not found in catalog")
	// ErrSlotNotOffered: the candidate slot is not part of the treatment's
	// slot list.
	ErrSlotNotOffered = errors.New("slot is not offered for this treatment")
)
