package services

import (
	"context"
	"time"

	"ticketbooking/internal/domain/models"
	"ticketbooking/internal/utils"

	"github.com/sirupsen/logrus"
)

// Submission is an accepted booking handed to a Submitter.
type Submission struct {
	Reference   string               `json:"reference"`
	Booking     models.BookingRecord `json:"booking"`
	SubmittedAt time.Time            `json:"submitted_at"`
	RequestID   string               `json:"-"`
	UserID      string               `json:"-"`
}

// Submitter receives validated bookings. What it does with them (forwarding, storing) is its own concern.
type Submitter interface {
	SubmitBooking(ctx context.Context, sub Submission) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, sub Submission) error

func (f SubmitterFunc) SubmitBooking(ctx context.Context, sub Submission) error {
	return f(ctx, sub)
}

// LogSubmitter only logs the booking. Contact details are masked.
type LogSubmitter struct {
	Logger *logrus.Logger
}

func (s LogSubmitter) SubmitBooking(ctx context.Context, sub Submission) error {
	logger := s.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	b := sub.Booking
	logger.WithContext(ctx).WithFields(logrus.Fields{
		"module":           "BOOKING",
		"action":           "submit",
		"request_id":       sub.RequestID,
		"user_id":          sub.UserID,
		"reference":        sub.Reference,
		"email":            utils.MaskEmail(b.Email),
		"phone":            utils.MaskTail(b.Phone, 4),
		"tickets":          b.Tickets,
		"date":             b.Date.String(),
		"time":             b.Time.String(),
		"payment":          b.Payment,
		"seat":             b.Seat,
		"special_requests": b.SpecialRequests != "",
	}).Info("booking submitted")
	return nil
}
