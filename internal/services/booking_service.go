package services

import (
	"context"
	"fmt"

	"ticketbooking/internal/domain"
	"ticketbooking/internal/domain/models"
	"ticketbooking/internal/utils"
	"ticketbooking/internal/validation"

	"github.com/google/uuid"
)

// SubmitMeta carries request details that travel with a submission but are not part of the form.
type SubmitMeta struct {
	RequestID string
	UserID    string
}

type BookingService struct {
	Submitter Submitter
	// NewReference overrides reference generation; tests use it for stable values.
	NewReference func() string
}

func (s BookingService) submitter() Submitter {
	if s.Submitter != nil {
		return s.Submitter
	}
	return LogSubmitter{}
}

func (s BookingService) reference() string {
	if s.NewReference != nil {
		return s.NewReference()
	}
	return uuid.NewString()
}

// Check validates in without submitting it. A non-nil error is always domain.FieldErrors.
func (s BookingService) Check(in models.BookingInput) (models.BookingRecord, error) {
	rec, errs := validation.Validate(in)
	if len(errs) > 0 {
		return models.BookingRecord{}, errs
	}
	return rec, nil
}

// Submit validates in and hands the resulting record to the submitter. Invalid input yields
// domain.FieldErrors and the submitter is never called.
func (s BookingService) Submit(ctx context.Context, in models.BookingInput, meta SubmitMeta) (Submission, error) {
	rec, errs := validation.Validate(in)
	if len(errs) > 0 {
		utils.LogEvent(meta.RequestID, "booking", "submit_rejected", fmt.Sprintf("fields=%v", errs.Fields()))
		return Submission{}, errs
	}

	sub := Submission{
		Reference:   s.reference(),
		Booking:     rec,
		SubmittedAt: utils.NowUTC(),
		RequestID:   meta.RequestID,
		UserID:      meta.UserID,
	}
	if err := s.submitter().SubmitBooking(ctx, sub); err != nil {
		return Submission{}, domain.InternalError{Msg: "booking could not be submitted", Err: err}
	}
	return sub, nil
}
