package handlers

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"ticketbooking/internal/domain/models"
	"ticketbooking/internal/utils"
)

// Stringish accepts JSON strings and numbers and keeps them as a string. Any other value decodes to "".
type Stringish string

func (s *Stringish) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case string(b) == "null" || len(b) == 0:
		*s = ""
		return nil
	case len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"':
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = Stringish(str)
		return nil
	case json.Valid(b) && (b[0] == '-' || (b[0] >= '0' && b[0] <= '9')):
		*s = Stringish(b)
		return nil
	default:
		// objects, arrays and booleans are not text; leave empty so validation reports the field
		*s = ""
		return nil
	}
}

func (s Stringish) String() string { return string(s) }

// BookingForm is the booking form as posted by the frontend. Both camelCase and snake_case keys
// are accepted for the multi-word fields.
type BookingForm struct {
	Name    Stringish `json:"name"`
	Email   Stringish `json:"email"`
	Phone   Stringish `json:"phone"`
	Tickets Stringish `json:"tickets"`

	Date Stringish `json:"date"` // YYYY-MM-DD
	Time Stringish `json:"time"` // HH:mm

	Payment       Stringish `json:"payment"`
	PaymentMethod Stringish `json:"paymentMethod"`
	Seat          Stringish `json:"seat"`
	SeatPref      Stringish `json:"seatPreference"`

	SpecialRequests      *Stringish `json:"specialRequests"`
	SpecialRequestsSnake *Stringish `json:"special_requests"`
}

// ToInput converts raw form values into a BookingInput. Text is trimmed; values that cannot be
// parsed are left empty so the validator reports them.
func (f BookingForm) ToInput() models.BookingInput {
	in := models.BookingInput{
		Name:    utils.TrimOrEmpty(f.Name.String()),
		Email:   utils.TrimOrEmpty(f.Email.String()),
		Phone:   utils.TrimOrEmpty(f.Phone.String()),
		Tickets: parseTickets(f.Tickets.String()),
		Date:    parseFormDate(f.Date.String()),
		Time:    parseFormTime(f.Time.String()),
		Payment: models.PaymentMethod(firstNonEmpty(f.Payment, f.PaymentMethod)),
		Seat:    models.SeatPreference(firstNonEmpty(f.Seat, f.SeatPref)),
	}

	notes := f.SpecialRequests
	if notes == nil {
		notes = f.SpecialRequestsSnake
	}
	if notes != nil {
		s := utils.TrimOrEmpty(notes.String())
		in.SpecialRequests = &s
	}
	return in
}

func firstNonEmpty(vals ...Stringish) string {
	for _, v := range vals {
		s := strings.TrimSpace(v.String())
		if s != "" {
			return s
		}
	}
	return ""
}

// parseTickets returns 0 for anything that is not an int32-sized integer, including 2.5, "two" and
// 99999999999999999999.
func parseTickets(raw string) int {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(raw, 10, 32); err == nil {
		return int(n)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0
	}
	return int(f)
}

func parseFormDate(raw string) *models.CalendarDate {
	t, err := utils.ParseDate(raw)
	if err != nil {
		return nil
	}
	d := models.DateOf(t)
	return &d
}

func parseFormTime(raw string) *models.TimeOfDay {
	t, err := utils.ParseClock(raw)
	if err != nil {
		return nil
	}
	tod := models.ClockOf(t)
	return &tod
}
