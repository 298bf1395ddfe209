package models

// TicketOptions is the preset list of ticket counts offered by the booking form.
var TicketOptions = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

// BookingInput carries raw form values at submission time; any field may be missing or malformed.
// A nil Date or Time means the value was absent or could not be parsed.
type BookingInput struct {
	Name            string
	Email           string
	Phone           string
	Tickets         int
	Date            *CalendarDate
	Time            *TimeOfDay
	Payment         PaymentMethod
	Seat            SeatPreference
	SpecialRequests *string
}

// BookingRecord is a booking whose fields all passed validation.
type BookingRecord struct {
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	Tickets         int            `json:"tickets"`
	Date            CalendarDate   `json:"date"`
	Time            TimeOfDay      `json:"time"`
	Payment         PaymentMethod  `json:"payment"`
	Seat            SeatPreference `json:"seat"`
	SpecialRequests string         `json:"specialRequests"`
}
