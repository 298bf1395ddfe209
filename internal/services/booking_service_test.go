package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"ticketbooking/internal/domain"
	"ticketbooking/internal/domain/models"
	"ticketbooking/internal/validation"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInput() models.BookingInput {
	return models.BookingInput{
		Name:    "Rahul Verma",
		Email:   "rahul@example.com",
		Phone:   "9123456780",
		Tickets: 2,
		Date:    &models.CalendarDate{Year: 2026, Month: time.November, Day: 14},
		Time:    &models.TimeOfDay{Hour: 20, Minute: 0},
		Payment: models.PaymentCard,
		Seat:    models.SeatAisle,
	}
}

type recordingSubmitter struct {
	got []Submission
	err error
}

func (r *recordingSubmitter) SubmitBooking(_ context.Context, sub Submission) error {
	r.got = append(r.got, sub)
	return r.err
}

func TestSubmitHandsRecordToSubmitter(t *testing.T) {
	rec := &recordingSubmitter{}
	svc := BookingService{Submitter: rec, NewReference: func() string { return "ref-1" }}

	sub, err := svc.Submit(context.Background(), sampleInput(), SubmitMeta{RequestID: "req-1", UserID: "42"})

	require.NoError(t, err)
	require.Len(t, rec.got, 1)
	assert.Equal(t, sub, rec.got[0])
	assert.Equal(t, "ref-1", sub.Reference)
	assert.Equal(t, "req-1", sub.RequestID)
	assert.Equal(t, "42", sub.UserID)
	assert.Equal(t, "", sub.Booking.SpecialRequests)
	assert.False(t, sub.SubmittedAt.IsZero())
}

func TestSubmitRejectsInvalidInputWithoutCallingSubmitter(t *testing.T) {
	rec := &recordingSubmitter{}
	svc := BookingService{Submitter: rec}
	in := sampleInput()
	in.Phone = "12345"
	in.Payment = "Crypto"

	_, err := svc.Submit(context.Background(), in, SubmitMeta{})

	require.Error(t, err)
	assert.Empty(t, rec.got)
	fe, ok := domain.AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, domain.FieldErrors{
		domain.FieldPhone:   validation.MsgInvalidPhone,
		domain.FieldPayment: validation.MsgPaymentRequired,
	}, fe)
}

func TestSubmitWrapsSubmitterFailure(t *testing.T) {
	cause := errors.New("gateway down")
	svc := BookingService{Submitter: &recordingSubmitter{err: cause}}

	_, err := svc.Submit(context.Background(), sampleInput(), SubmitMeta{})

	assert.True(t, domain.IsInternal(err))
	assert.ErrorIs(t, err, cause)
	assert.False(t, domain.IsValidation(err))
}

func TestSubmitGeneratesDistinctReferences(t *testing.T) {
	svc := BookingService{Submitter: SubmitterFunc(func(context.Context, Submission) error { return nil })}

	a, err := svc.Submit(context.Background(), sampleInput(), SubmitMeta{})
	require.NoError(t, err)
	b, err := svc.Submit(context.Background(), sampleInput(), SubmitMeta{})
	require.NoError(t, err)

	assert.NotEmpty(t, a.Reference)
	assert.NotEqual(t, a.Reference, b.Reference)
}

func TestCheckDoesNotSubmit(t *testing.T) {
	rec := &recordingSubmitter{}
	svc := BookingService{Submitter: rec}

	record, err := svc.Check(sampleInput())

	require.NoError(t, err)
	assert.Equal(t, "Rahul Verma", record.Name)
	assert.Empty(t, rec.got)
}

func TestLogSubmitterMasksContactDetails(t *testing.T) {
	logger, hook := test.NewNullLogger()
	in := sampleInput()
	record, err := BookingService{}.Check(in)
	require.NoError(t, err)

	err = LogSubmitter{Logger: logger}.SubmitBooking(context.Background(), Submission{Reference: "ref-9", Booking: record})

	require.NoError(t, err)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "ref-9", entry.Data["reference"])
	assert.Equal(t, "r***@example.com", entry.Data["email"])
	assert.Equal(t, "******6780", entry.Data["phone"])
	assert.NotContains(t, entry.Data, "name")
}
