package handlers

import (
	userRepo "docportal/database/repository/user"
)

// HandlerBundle groups every handler the route registry wires up, plus the
// repositories the middleware needs for policy checks.
type HandlerBundle struct {
	// UserRepo feeds the admin-only middleware.
	UserRepo userRepo.UserRepository

	Availability *AvailabilityHandler
	Booking      *BookingHandler
	Payment      *PaymentHandler
	User         *UserHandler
	Doctor       *DoctorHandler
}
