package order

import (
	"fmt"
	"math"
	"strings"
	"time"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"
)

// Payload field names.
const (
	FieldDriverID           = "driver_id"
	FieldOriginAddress      = "origin_address"
	FieldDestinationAddress = "destination_address"
	FieldCargoDescription   = "cargo_description"
	FieldWeightKg           = "weight_kg"
	FieldScheduledDate      = "scheduled_date"
	FieldNotes              = "notes"
)

const (
	MaxAddressLength = 255

	// MaxWeightKg is the largest value a numeric(10,2) column holds.
	MaxWeightKg = 99999999.99
)

// Draft carries the unvalidated attributes of an order being created. There is
// no status: every order starts pending.
type Draft struct {
	DriverID           string
	OriginAddress      string
	DestinationAddress string
	CargoDescription   string
	WeightKg           *float64
	ScheduledDate      string
	Notes              *string
}

// Patch carries a partial update. Nil pointers and absent nullables leave the
// attribute untouched. Status is deliberately absent: only Advance moves it.
type Patch struct {
	DriverID           *string
	OriginAddress      *string
	DestinationAddress *string
	CargoDescription   *string
	WeightKg           kernel.Nullable[float64]
	ScheduledDate      *string
	Notes              kernel.Nullable[string]
}

// attributes is the normalized form shared by Draft and Patch.
type attributes struct {
	driverID           kernel.UUID
	originAddress      string
	destinationAddress string
	cargoDescription   string
	weightKg           *float64
	scheduledDate      time.Time
	notes              *string
}

// ValidateDraft reports the field errors NewOrder would return. A driver id
// that is well formed passes here; whether the driver exists is for the caller
// to check.
func ValidateDraft(d Draft) *errs.ValidationError {
	_, verr := resolveDraft(d)
	return verr
}

// ValidatePatch reports the field errors Apply would return.
func ValidatePatch(p Patch) *errs.ValidationError {
	_, verr := resolvePatch(p)
	return verr
}

func resolveDraft(d Draft) (attributes, *errs.ValidationError) {
	var a attributes
	verr := errs.NewValidationError()
	a.driverID, _ = checkDriverID(verr, d.DriverID)
	a.originAddress, _ = kernel.CheckRequiredString(verr, FieldOriginAddress, d.OriginAddress, MaxAddressLength)
	a.destinationAddress, _ = kernel.CheckRequiredString(verr, FieldDestinationAddress, d.DestinationAddress, MaxAddressLength)
	a.cargoDescription, _ = kernel.CheckRequiredString(verr, FieldCargoDescription, d.CargoDescription, 0)
	a.weightKg, _ = checkWeight(verr, d.WeightKg)
	a.scheduledDate, _ = checkScheduledDate(verr, d.ScheduledDate)
	a.notes, _ = kernel.CheckOptionalString(verr, FieldNotes, d.Notes, 0)
	return a, verr
}

func resolvePatch(p Patch) (attributes, *errs.ValidationError) {
	var a attributes
	verr := errs.NewValidationError()
	if p.DriverID != nil {
		a.driverID, _ = checkDriverID(verr, *p.DriverID)
	}
	if p.OriginAddress != nil {
		a.originAddress, _ = kernel.CheckRequiredString(verr, FieldOriginAddress, *p.OriginAddress, MaxAddressLength)
	}
	if p.DestinationAddress != nil {
		a.destinationAddress, _ = kernel.CheckRequiredString(verr, FieldDestinationAddress, *p.DestinationAddress, MaxAddressLength)
	}
	if p.CargoDescription != nil {
		a.cargoDescription, _ = kernel.CheckRequiredString(verr, FieldCargoDescription, *p.CargoDescription, 0)
	}
	if p.WeightKg.IsPresent() {
		a.weightKg, _ = checkWeight(verr, p.WeightKg.Value())
	}
	if p.ScheduledDate != nil {
		a.scheduledDate, _ = checkScheduledDate(verr, *p.ScheduledDate)
	}
	if p.Notes.IsPresent() {
		a.notes, _ = kernel.CheckOptionalString(verr, FieldNotes, p.Notes.Value(), 0)
	}
	return a, verr
}

// checkDriverID only checks the form. A malformed id cannot reference a
// driver, so it gets the same message as a missing one.
func checkDriverID(verr *errs.ValidationError, raw string) (kernel.UUID, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		verr.Add(FieldDriverID, kernel.RequiredMessage(FieldDriverID))
		return kernel.UUID{}, false
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		verr.Add(FieldDriverID, kernel.SelectedInvalidMessage(FieldDriverID))
		return kernel.UUID{}, false
	}
	return id, true
}

func checkWeight(verr *errs.ValidationError, w *float64) (*float64, bool) {
	if w == nil {
		return nil, true
	}
	v := *w
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		verr.Add(FieldWeightKg, fmt.Sprintf("The %s field must be a number.", kernel.Attribute(FieldWeightKg)))
		return nil, false
	case v < 0:
		verr.Add(FieldWeightKg, fmt.Sprintf("The %s field must be at least 0.", kernel.Attribute(FieldWeightKg)))
		return nil, false
	case v > MaxWeightKg:
		verr.Add(FieldWeightKg, fmt.Sprintf("The %s field must not be greater than %.2f.", kernel.Attribute(FieldWeightKg), MaxWeightKg))
		return nil, false
	}
	rounded := math.Round(v*100) / 100
	return &rounded, true
}

// ParseScheduledDate accepts a calendar date (2006-01-02) or an RFC 3339
// timestamp. Only the date part is kept, as UTC midnight.
func ParseScheduledDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(FieldScheduledDate, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func checkScheduledDate(verr *errs.ValidationError, raw string) (time.Time, bool) {
	if strings.TrimSpace(raw) == "" {
		verr.Add(FieldScheduledDate, kernel.RequiredMessage(FieldScheduledDate))
		return time.Time{}, false
	}
	t, err := ParseScheduledDate(raw)
	if err != nil {
		verr.Add(FieldScheduledDate, fmt.Sprintf("The %s field must be a valid date.", kernel.Attribute(FieldScheduledDate)))
		return time.Time{}, false
	}
	return t, true
}
