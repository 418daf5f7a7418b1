package availability

import "docportal/models"

// ComputeOpenSlots merges the appointment-option catalog with the bookings of
// one date and returns the catalog with each option's slots reduced to the
// ones still open. Pure: the inputs are not modified and the output depends on
// nothing else.
//
// Dates and slots are compared by exact string equality. A date string in a
// format different from the stored appointmentDate matches nothing, so the
// result reads as fully available; callers own format consistency.
func ComputeOpenSlots(date string, catalog []models.AppointmentOption, bookingsOnDate []models.Booking) []models.AppointmentOption {
	booked := make(map[string]map[string]bool, len(bookingsOnDate))
	for _, b := range bookingsOnDate {
		if b.AppointmentDate != date {
			continue
		}
		if booked[b.Treatment] == nil {
			booked[b.Treatment] = make(map[string]bool)
		}
		booked[b.Treatment][b.Slot] = true
	}

	out := make([]models.AppointmentOption, 0, len(catalog))
	for _, opt := range catalog {
		taken := booked[opt.Name]

		remaining := make([]string, 0, len(opt.Slots))
		for _, slot := range opt.Slots {
			if !taken[slot] {
				remaining = append(remaining, slot)
			}
		}

		opt.Slots = remaining
		out = append(out, opt)
	}
	return out
}
