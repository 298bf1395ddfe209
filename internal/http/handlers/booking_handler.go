package handlers

import (
	"net/http"

	"ticketbooking/internal/domain/models"
	"ticketbooking/internal/http/middleware"
	"ticketbooking/internal/services"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	Service services.BookingService
}

type bookingOptionsResponse struct {
	Tickets  []int                   `json:"tickets"`
	Payments []models.PaymentMethod  `json:"payments"`
	Seats    []models.SeatPreference `json:"seats"`
}

// GET /api/bookings/options
func (h BookingHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, bookingOptionsResponse{
		Tickets:  models.TicketOptions,
		Payments: models.PaymentMethods,
		Seats:    models.SeatPreferences,
	})
}

// POST /api/bookings/validate
func (h BookingHandler) Validate(c *gin.Context) {
	var form BookingForm
	if !BindJSONOrError(c, &form) {
		return
	}

	rec, err := h.Service.Check(form.ToInput())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "booking": rec})
}

// POST /api/bookings
func (h BookingHandler) Create(c *gin.Context) {
	var form BookingForm
	if !BindJSONOrError(c, &form) {
		return
	}

	meta := services.SubmitMeta{
		RequestID: middleware.GetRequestID(c),
		UserID:    middleware.GetUserID(c),
	}
	sub, err := h.Service.Submit(c.Request.Context(), form.ToInput(), meta)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

// POST /api/bookings/summary?reference=...
// Returns the booking summary PDF (inline).
func (h BookingHandler) Summary(c *gin.Context) {
	var form BookingForm
	if !BindJSONOrError(c, &form) {
		return
	}

	rec, err := h.Service.Check(form.ToInput())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdfBytes, filename, err := svc.GenerateBookingSummary(rec, c.Query("reference"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "pdf_failed", "could not render booking summary", nil)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
