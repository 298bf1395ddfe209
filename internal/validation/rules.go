package validation

import (
	"ticketbooking/internal/domain/models"

	"github.com/go-playground/validator/v10"
)

const (
	MsgNameRequired    = "Name is required"
	MsgInvalidEmail    = "Invalid email address"
	MsgInvalidPhone    = "Phone number must be 10 digits"
	MsgTicketsRequired = "At least one ticket is required"
	MsgDateRequired    = "Booking date is required"
	MsgTimeRequired    = "Show/travel time is required"
	MsgPaymentRequired = "Please select a payment option"
	MsgSeatRequired    = "Please select a seat preference"
)

// validator.Validate caches parsed tags and is safe for concurrent use.
var validate = validator.New()

// Each rule returns "" when the value is acceptable, otherwise the message to show.

func ValidateName(name string) string {
	if name == "" {
		return MsgNameRequired
	}
	return ""
}

func ValidateEmail(email string) string {
	if validate.Var(email, "required,email") != nil {
		return MsgInvalidEmail
	}
	return ""
}

func ValidatePhone(phone string) string {
	if validate.Var(phone, "required,len=10,number") != nil {
		return MsgInvalidPhone
	}
	return ""
}

func ValidateTickets(tickets int) string {
	if validate.Var(tickets, "gte=1") != nil {
		return MsgTicketsRequired
	}
	return ""
}

func ValidateDate(date *models.CalendarDate) string {
	if date == nil || !date.Valid() {
		return MsgDateRequired
	}
	return ""
}

func ValidateTime(t *models.TimeOfDay) string {
	if t == nil || !t.Valid() {
		return MsgTimeRequired
	}
	return ""
}

func ValidatePayment(p models.PaymentMethod) string {
	if !p.Valid() {
		return MsgPaymentRequired
	}
	return ""
}

func ValidateSeat(s models.SeatPreference) string {
	if !s.Valid() {
		return MsgSeatRequired
	}
	return ""
}
