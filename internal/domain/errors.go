package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Field identifiers used as ErrorMap keys, in form order.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldTickets         = "tickets"
	FieldDate            = "date"
	FieldTime            = "time"
	FieldPayment         = "payment"
	FieldSeat            = "seat"
	FieldSpecialRequests = "specialRequests"
)

var fieldOrder = []string{
	FieldName, FieldEmail, FieldPhone, FieldTickets, FieldDate, FieldTime, FieldPayment, FieldSeat, FieldSpecialRequests,
}

// ValidationError is a single field failure with its display message.
type ValidationError struct {
	Field string
	Msg   string
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

// FieldErrors maps a field name to the first rule it violated.
type FieldErrors map[string]string

// Add records msg for field unless the field already has a message.
func (fe FieldErrors) Add(field, msg string) {
	if _, ok := fe[field]; ok {
		return
	}
	fe[field] = msg
}

// Fields returns the failing field names in form order, unknown fields last and sorted.
func (fe FieldErrors) Fields() []string {
	out := make([]string, 0, len(fe))
	seen := make(map[string]bool, len(fe))
	for _, f := range fieldOrder {
		if _, ok := fe[f]; ok {
			out = append(out, f)
			seen[f] = true
		}
	}
	var rest []string
	for f := range fe {
		if !seen[f] {
			rest = append(rest, f)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func (fe FieldErrors) List() []ValidationError {
	out := make([]ValidationError, 0, len(fe))
	for _, f := range fe.Fields() {
		out = append(out, ValidationError{Field: f, Msg: fe[f]})
	}
	return out
}

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation error"
	}
	parts := make([]string, 0, len(fe))
	for _, ve := range fe.List() {
		parts = append(parts, ve.Error())
	}
	return strings.Join(parts, "; ")
}

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

// IsValidation reports whether err carries a single ValidationError or a FieldErrors map.
func IsValidation(err error) bool {
	var target ValidationError
	if errors.As(err, &target) {
		return true
	}
	_, ok := AsFieldErrors(err)
	return ok
}

// AsFieldErrors extracts the per-field messages from err, if any.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	var ve ValidationError
	if errors.As(err, &ve) && ve.Field != "" {
		return FieldErrors{ve.Field: ve.Msg}, true
	}
	return nil, false
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
