package models

// SeatPreference is the seating option chosen on the form.
type SeatPreference string

const (
	SeatWindow SeatPreference = "Window"
	SeatAisle  SeatPreference = "Aisle"
	SeatCenter SeatPreference = "Center"
)

var SeatPreferences = []SeatPreference{SeatWindow, SeatAisle, SeatCenter}

func (s SeatPreference) Valid() bool {
	for _, p := range SeatPreferences {
		if s == p {
			return true
		}
	}
	return false
}
