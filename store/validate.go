package store

import (
	"math"
	"strings"
	"time"

	"github.com/yad-anakin/diva/models"
)

// DefaultCurrency is applied when a booking does not name one.
const DefaultCurrency = "IQD"

// whenLayouts are the accepted timestamp formats, most specific first. The
// booking form submits RFC3339; the shorter layouts cover seedings from
// datetime-local style inputs, read in server local time.
var whenLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseWhen parses a booking instant.
func ParseWhen(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ValidationError("when is required")
	}
	for _, layout := range whenLayouts {
		if layout == time.RFC3339 {
			if t, err := time.Parse(layout, raw); err == nil {
				return t, nil
			}
			continue
		}
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ValidationError("when must be an ISO-8601 timestamp")
}

// BookingInput is the common payload for appointments and history records.
type BookingInput struct {
	Buyer       string             `json:"buyer"`
	EmployeeIDs []string           `json:"employeeIds"`
	ServiceIDs  []string           `json:"serviceIds"`
	When        string             `json:"when"`
	Currency    string             `json:"currency"`
	Overrides   map[string]float64 `json:"overrides"`
}

// NewAppointment validates a booking input and builds the record to persist.
// Nothing is persisted when validation fails.
func NewAppointment(in BookingInput) (models.Appointment, error) {
	if strings.TrimSpace(in.Buyer) == "" {
		return models.Appointment{}, ValidationError("buyer is required")
	}
	if len(in.ServiceIDs) == 0 {
		return models.Appointment{}, ValidationError("serviceIds must not be empty")
	}
	when, err := ParseWhen(in.When)
	if err != nil {
		return models.Appointment{}, err
	}
	currency := strings.TrimSpace(in.Currency)
	if currency == "" {
		currency = DefaultCurrency
	}
	return models.Appointment{
		Buyer:       in.Buyer,
		EmployeeIDs: toStringList(in.EmployeeIDs),
		ServiceIDs:  toStringList(in.ServiceIDs),
		When:        when,
		Currency:    currency,
		Overrides:   toPriceMap(in.Overrides),
		CreatedAt:   time.Now(),
	}, nil
}

// NewHistoryRecord validates a direct history entry (walk-in sale). The
// source appointment id is optional and never verified against the
// appointment store.
func NewHistoryRecord(in BookingInput, sourceAppointmentID string) (models.HistoryRecord, error) {
	appt, err := NewAppointment(in)
	if err != nil {
		return models.HistoryRecord{}, err
	}
	return models.HistoryRecord{
		Buyer:               appt.Buyer,
		EmployeeIDs:         appt.EmployeeIDs,
		ServiceIDs:          appt.ServiceIDs,
		When:                appt.When,
		Currency:            appt.Currency,
		Overrides:           appt.Overrides,
		CreatedAt:           appt.CreatedAt,
		SourceAppointmentID: strings.TrimSpace(sourceAppointmentID),
	}, nil
}

// NewService validates catalog service fields.
func NewService(name string, price float64) (models.Service, error) {
	if strings.TrimSpace(name) == "" {
		return models.Service{}, ValidationError("name is required")
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return models.Service{}, ValidationError("price must be a non-negative number")
	}
	return models.Service{Name: name, Price: price}, nil
}

// NewEmployee validates catalog employee fields.
func NewEmployee(name string) (models.Employee, error) {
	if strings.TrimSpace(name) == "" {
		return models.Employee{}, ValidationError("name is required")
	}
	return models.Employee{Name: name}, nil
}

func toStringList(in []string) models.StringList {
	out := make(models.StringList, 0, len(in))
	return append(out, in...)
}

func toPriceMap(in map[string]float64) models.PriceMap {
	out := make(models.PriceMap, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
