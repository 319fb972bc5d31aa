package handlers

import (
	userRepoPkg "github.com/chrisdemonxxx/godrive/database/repository/user"
)

// HandlerBundle groups the endpoint handlers and the repositories the
// middleware needs, so route registration takes a single argument.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	User          *UserHandler
	Car           *CarHandler
	Availability  *AvailabilityHandler
	Booking       *BookingHandler
	Admin         *AdminHandler
	Review        *ReviewHandler
	Payout        *PayoutHandler
	Notifications *NotificationHandler
}
