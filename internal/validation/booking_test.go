package validation

import (
	"testing"
	"time"

	"ticketbooking/internal/domain"
	"ticketbooking/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() models.BookingInput {
	notes := "Wheelchair access please"
	return models.BookingInput{
		Name:            "Priya Sharma",
		Email:           "priya@example.com",
		Phone:           "9876543210",
		Tickets:         3,
		Date:            &models.CalendarDate{Year: 2026, Month: time.December, Day: 24},
		Time:            &models.TimeOfDay{Hour: 18, Minute: 30},
		Payment:         models.PaymentUPI,
		Seat:            models.SeatWindow,
		SpecialRequests: &notes,
	}
}

func TestValidateAcceptsValidInput(t *testing.T) {
	in := validInput()

	rec, errs := Validate(in)

	assert.Empty(t, errs)
	assert.Equal(t, models.BookingRecord{
		Name:            "Priya Sharma",
		Email:           "priya@example.com",
		Phone:           "9876543210",
		Tickets:         3,
		Date:            models.CalendarDate{Year: 2026, Month: time.December, Day: 24},
		Time:            models.TimeOfDay{Hour: 18, Minute: 30},
		Payment:         models.PaymentUPI,
		Seat:            models.SeatWindow,
		SpecialRequests: "Wheelchair access please",
	}, rec)
}

func TestValidateDefaultsSpecialRequests(t *testing.T) {
	in := validInput()
	in.SpecialRequests = nil

	rec, errs := Validate(in)

	require.Empty(t, errs)
	assert.Equal(t, "", rec.SpecialRequests)
}

func TestValidateSingleViolation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.BookingInput)
		field  string
		msg    string
	}{
		{"empty name", func(in *models.BookingInput) { in.Name = "" }, domain.FieldName, MsgNameRequired},
		{"malformed email", func(in *models.BookingInput) { in.Email = "not-an-email" }, domain.FieldEmail, MsgInvalidEmail},
		{"empty email", func(in *models.BookingInput) { in.Email = "" }, domain.FieldEmail, MsgInvalidEmail},
		{"short phone", func(in *models.BookingInput) { in.Phone = "12345" }, domain.FieldPhone, MsgInvalidPhone},
		{"phone with separators", func(in *models.BookingInput) { in.Phone = "98765-4321" }, domain.FieldPhone, MsgInvalidPhone},
		{"phone with country code", func(in *models.BookingInput) { in.Phone = "+919876543210" }, domain.FieldPhone, MsgInvalidPhone},
		{"phone with letters", func(in *models.BookingInput) { in.Phone = "98765abcde" }, domain.FieldPhone, MsgInvalidPhone},
		{"zero tickets", func(in *models.BookingInput) { in.Tickets = 0 }, domain.FieldTickets, MsgTicketsRequired},
		{"negative tickets", func(in *models.BookingInput) { in.Tickets = -2 }, domain.FieldTickets, MsgTicketsRequired},
		{"missing date", func(in *models.BookingInput) { in.Date = nil }, domain.FieldDate, MsgDateRequired},
		{"impossible date", func(in *models.BookingInput) {
			in.Date = &models.CalendarDate{Year: 2026, Month: time.February, Day: 30}
		}, domain.FieldDate, MsgDateRequired},
		{"missing time", func(in *models.BookingInput) { in.Time = nil }, domain.FieldTime, MsgTimeRequired},
		{"out of range time", func(in *models.BookingInput) { in.Time = &models.TimeOfDay{Hour: 25} }, domain.FieldTime, MsgTimeRequired},
		{"unknown payment", func(in *models.BookingInput) { in.Payment = "Crypto" }, domain.FieldPayment, MsgPaymentRequired},
		{"empty payment", func(in *models.BookingInput) { in.Payment = "" }, domain.FieldPayment, MsgPaymentRequired},
		{"unknown seat", func(in *models.BookingInput) { in.Seat = "Balcony" }, domain.FieldSeat, MsgSeatRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			rec, errs := Validate(in)

			assert.Equal(t, domain.FieldErrors{tc.field: tc.msg}, errs)
			assert.Equal(t, models.BookingRecord{}, rec)
		})
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	rec, errs := Validate(models.BookingInput{Payment: "Crypto"})

	assert.Equal(t, models.BookingRecord{}, rec)
	assert.Equal(t, domain.FieldErrors{
		domain.FieldName:    MsgNameRequired,
		domain.FieldEmail:   MsgInvalidEmail,
		domain.FieldPhone:   MsgInvalidPhone,
		domain.FieldTickets: MsgTicketsRequired,
		domain.FieldDate:    MsgDateRequired,
		domain.FieldTime:    MsgTimeRequired,
		domain.FieldPayment: MsgPaymentRequired,
		domain.FieldSeat:    MsgSeatRequired,
	}, errs)
	assert.NotContains(t, errs, domain.FieldSpecialRequests)
}

func TestValidateIsIdempotent(t *testing.T) {
	inputs := []models.BookingInput{validInput(), {Name: "x", Phone: "12"}}
	for _, in := range inputs {
		rec1, errs1 := Validate(in)
		rec2, errs2 := Validate(in)
		assert.Equal(t, rec1, rec2)
		assert.Equal(t, errs1, errs2)
	}
}

func TestValidateDoesNotAliasInput(t *testing.T) {
	in := validInput()
	rec, errs := Validate(in)
	require.Empty(t, errs)

	in.Date.Day = 1
	in.Time.Hour = 1
	assert.Equal(t, 24, rec.Date.Day)
	assert.Equal(t, 18, rec.Time.Hour)
}

func TestFieldRules(t *testing.T) {
	assert.Empty(t, ValidateEmail("first.last+tag@sub.example.org"))
	assert.Equal(t, MsgInvalidEmail, ValidateEmail("a@"))
	assert.Equal(t, MsgInvalidEmail, ValidateEmail("@example.com"))
	assert.Empty(t, ValidatePhone("0000000000"))
	assert.Equal(t, MsgInvalidPhone, ValidatePhone("98765432100"))
	assert.Equal(t, MsgInvalidPhone, ValidatePhone("٠١٢٣٤٥٦٧٨٩"))
	assert.Empty(t, ValidateTickets(1))
	assert.Empty(t, ValidateTickets(10))
	assert.Empty(t, ValidateName(" "))
}
