package availability_test

import (
	"testing"

	"docportal/models"
	"docportal/services/availability"

	"github.com/stretchr/testify/assert"
)

func TestComputeOpenSlots_RemovesBookedSlots(t *testing.T) {
	catalog := []models.AppointmentOption{
		{Name: "Braces", Price: 300, Slots: []string{"09:00", "10:00"}},
	}
	bookings := []models.Booking{
		{AppointmentDate: "Jan 1, 2024", Treatment: "Braces", Slot: "09:00"},
	}

	got := availability.ComputeOpenSlots("Jan 1, 2024", catalog, bookings)

	assert.Len(t, got, 1)
	assert.Equal(t, "Braces", got[0].Name)
	assert.Equal(t, []string{"10:00"}, got[0].Slots)
	assert.Equal(t, 300.0, got[0].Price)
}

func TestComputeOpenSlots_NoBookingsLeavesCatalogUnchanged(t *testing.T) {
	catalog := []models.AppointmentOption{
		{Name: "Teeth Cleaning", Slots: []string{"08:00-09:00", "09:00-10:00", "10:00-11:00"}},
		{Name: "Cavity Protection", Slots: []string{"08:00-09:00"}},
	}

	got := availability.ComputeOpenSlots("Feb 2, 2024", catalog, nil)

	assert.Len(t, got, 2)
	assert.Equal(t, catalog[0].Slots, got[0].Slots)
	assert.Equal(t, catalog[1].Slots, got[1].Slots)
	assert.Equal(t, "Teeth Cleaning", got[0].Name)
	assert.Equal(t, "Cavity Protection", got[1].Name)
}

func TestComputeOpenSlots_EmptyCatalog(t *testing.T) {
	bookings := []models.Booking{
		{AppointmentDate: "Jan 1, 2024", Treatment: "Braces", Slot: "09:00"},
	}

	got := availability.ComputeOpenSlots("Jan 1, 2024", nil, bookings)

	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestComputeOpenSlots_SetDifferencePerTreatment(t *testing.T) {
	catalog := []models.AppointmentOption{
		{Name: "Braces", Slots: []string{"09:00", "10:00", "11:00"}},
		{Name: "Whitening", Slots: []string{"09:00", "10:00"}},
	}
	bookings := []models.Booking{
		{AppointmentDate: "Mar 5, 2024", Treatment: "Braces", Slot: "09:00", Email: "a@x.test"},
		{AppointmentDate: "Mar 5, 2024", Treatment: "Braces", Slot: "11:00", Email: "b@x.test"},
		{AppointmentDate: "Mar 5, 2024", Treatment: "Whitening", Slot: "10:00", Email: "a@x.test"},
	}

	got := availability.ComputeOpenSlots("Mar 5, 2024", catalog, bookings)

	assert.Equal(t, []string{"10:00"}, got[0].Slots)
	assert.Equal(t, []string{"09:00"}, got[1].Slots)
}

func TestComputeOpenSlots_MismatchedDateReadsFullyAvailable(t *testing.T) {
	catalog := []models.AppointmentOption{
		{Name: "Braces", Slots: []string{"09:00"}},
	}
	// "2024-01-01" never equals the stored "Jan 1, 2024": no normalization
	// happens, so the booking is invisible to this query.
	bookings := []models.Booking{
		{AppointmentDate: "Jan 1, 2024", Treatment: "Braces", Slot: "09:00"},
	}

	got := availability.ComputeOpenSlots("2024-01-01", catalog, bookings)

	assert.Equal(t, []string{"09:00"}, got[0].Slots)
}

func TestComputeOpenSlots_Idempotent(t *testing.T) {
	catalog := []models.AppointmentOption{
		{Name: "Braces", Slots: []string{"09:00", "10:00"}},
	}
	bookings := []models.Booking{
		{AppointmentDate: "Jan 1, 2024", Treatment: "Braces", Slot: "10:00"},
	}

	first := availability.ComputeOpenSlots("Jan 1, 2024", catalog, bookings)
	second := availability.ComputeOpenSlots("Jan 1, 2024", catalog, bookings)

	assert.Equal(t, first, second)
	// Inputs stay untouched.
	assert.Equal(t, []string{"09:00", "10:00"}, catalog[0].Slots)
}
