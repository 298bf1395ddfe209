// Package validation checks booking form input field by field and turns it into a BookingRecord.
package validation

import (
	"ticketbooking/internal/domain"
	"ticketbooking/internal/domain/models"
)

// Validate checks every field of in independently. On success it returns the record and a nil map;
// otherwise the returned map holds one message per failing field and the record is the zero value.
func Validate(in models.BookingInput) (models.BookingRecord, domain.FieldErrors) {
	errs := domain.FieldErrors{}
	check := func(field, msg string) {
		if msg != "" {
			errs.Add(field, msg)
		}
	}

	check(domain.FieldName, ValidateName(in.Name))
	check(domain.FieldEmail, ValidateEmail(in.Email))
	check(domain.FieldPhone, ValidatePhone(in.Phone))
	check(domain.FieldTickets, ValidateTickets(in.Tickets))
	check(domain.FieldDate, ValidateDate(in.Date))
	check(domain.FieldTime, ValidateTime(in.Time))
	check(domain.FieldPayment, ValidatePayment(in.Payment))
	check(domain.FieldSeat, ValidateSeat(in.Seat))

	if len(errs) > 0 {
		return models.BookingRecord{}, errs
	}

	rec := models.BookingRecord{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Tickets: in.Tickets,
		Date:    *in.Date,
		Time:    *in.Time,
		Payment: in.Payment,
		Seat:    in.Seat,
	}
	if in.SpecialRequests != nil {
		rec.SpecialRequests = *in.SpecialRequests
	}
	return rec, nil
}
