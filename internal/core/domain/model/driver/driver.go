package driver

import (
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"
	"tms/internal/pkg/guard"
)

// Payload field names. Handlers reuse them when reporting uniqueness
// violations so every message for a field lands under the same key.
const (
	FieldName        = "name"
	FieldCPF         = "cpf"
	FieldCNHNumber   = "cnh_number"
	FieldCNHCategory = "cnh_category"
	FieldPhone       = "phone"
)

// Field length limits, matching the column sizes of the drivers table.
const (
	MaxNameLength      = 150
	MaxCPFLength       = 14
	MaxCNHNumberLength = 20
	MaxPhoneLength     = 20
)

var (
	// ErrDriverIsNotConstructed is returned when a Driver bypassed NewDriver/RestoreDriver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Draft carries the unvalidated attributes of a driver being registered.
type Draft struct {
	Name        string
	CPF         string
	CNHNumber   string
	CNHCategory string
	Phone       *string
}

// Patch carries a partial update. Nil pointers leave the attribute untouched;
// a present pointer must satisfy the same rule as on registration. Phone is
// nullable and can be cleared with kernel.Null.
type Patch struct {
	Name        *string
	CPF         *string
	CNHNumber   *string
	CNHCategory *string
	Phone       kernel.Nullable[string]
}

// Driver is the identity record of a person allowed to carry transport
// orders. Drivers are never deleted: deactivation flips a flag so historical
// orders keep resolving their driver.
//
// Invariants:
//   - name is non-empty and at most 150 characters
//   - cpf (national id) at most 14 characters, cnh number at most 20
//   - cnh category is one of A-E
//   - cpf and cnh number uniqueness is enforced by the registry, not here
type Driver struct {
	id          kernel.UUID
	name        string
	cpf         string
	cnhNumber   string
	cnhCategory CNHCategory
	phone       *string
	active      bool

	guard guard.ConstructorGuard
}

// NewDriver validates a draft and returns an active driver.
// The error, when not nil, is an *errs.ValidationError listing every failed field.
func NewDriver(id kernel.UUID, draft Draft) (*Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	d := &Driver{
		id:     id,
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	verr := errs.NewValidationError()
	d.name, _ = kernel.CheckRequiredString(verr, FieldName, draft.Name, MaxNameLength)
	d.cpf, _ = kernel.CheckRequiredString(verr, FieldCPF, draft.CPF, MaxCPFLength)
	d.cnhNumber, _ = kernel.CheckRequiredString(verr, FieldCNHNumber, draft.CNHNumber, MaxCNHNumberLength)
	d.cnhCategory, _ = checkCategory(verr, draft.CNHCategory)
	d.phone, _ = kernel.CheckOptionalString(verr, FieldPhone, draft.Phone, MaxPhoneLength)

	if err := verr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return d, nil
}

// RestoreDriver rebuilds a driver loaded from storage.
func RestoreDriver(
	id kernel.UUID,
	name, cpf, cnhNumber string,
	cnhCategory CNHCategory,
	phone *string,
	active bool,
) (*Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := cnhCategory.Validate(); err != nil {
		return nil, err
	}

	return &Driver{
		id:          id,
		name:        name,
		cpf:         cpf,
		cnhNumber:   cnhNumber,
		cnhCategory: cnhCategory,
		phone:       phone,
		active:      active,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// ValidateDraft reports the field errors NewDriver would return, without
// building a driver. Registries call it before their uniqueness checks so a
// single response names every failing field.
func ValidateDraft(draft Draft) *errs.ValidationError {
	_, err := NewDriver(kernel.NewUUID(), draft)
	verr := errs.NewValidationError()
	_ = verr.Merge(err)
	return verr
}

// ValidatePatch reports the field errors Apply would return for p.
func ValidatePatch(p Patch) *errs.ValidationError {
	_, verr := resolvePatch(p)
	return verr
}

// Validate ensures the driver was built by a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

func (d *Driver) ID() kernel.UUID {
	return d.id
}

func (d *Driver) Name() string {
	return d.name
}

// CPF returns the national id as registered (punctuation preserved).
func (d *Driver) CPF() string {
	return d.cpf
}

func (d *Driver) CNHNumber() string {
	return d.cnhNumber
}

func (d *Driver) CNHCategory() CNHCategory {
	return d.cnhCategory
}

// Phone returns nil when no phone is on file.
func (d *Driver) Phone() *string {
	if d.phone == nil {
		return nil
	}
	p := *d.phone
	return &p
}

func (d *Driver) IsActive() bool {
	return d.active
}

// Apply updates the supplied attributes. Either every field passes and all
// of them are applied, or the driver is left unchanged.
func (d *Driver) Apply(p Patch) error {
	next, verr := resolvePatch(p)
	if err := verr.ErrorOrNil(); err != nil {
		return err
	}

	if p.Name != nil {
		d.name = next.name
	}
	if p.CPF != nil {
		d.cpf = next.cpf
	}
	if p.CNHNumber != nil {
		d.cnhNumber = next.cnhNumber
	}
	if p.CNHCategory != nil {
		d.cnhCategory = next.cnhCategory
	}
	if p.Phone.IsPresent() {
		d.phone = next.phone
	}
	return nil
}

// ToggleActive flips the activation flag. Existing orders are not affected.
func (d *Driver) ToggleActive() {
	d.active = !d.active
}

// resolvePatch normalizes the supplied attributes into a scratch Driver.
func resolvePatch(p Patch) (Driver, *errs.ValidationError) {
	var next Driver
	verr := errs.NewValidationError()
	if p.Name != nil {
		next.name, _ = kernel.CheckRequiredString(verr, FieldName, *p.Name, MaxNameLength)
	}
	if p.CPF != nil {
		next.cpf, _ = kernel.CheckRequiredString(verr, FieldCPF, *p.CPF, MaxCPFLength)
	}
	if p.CNHNumber != nil {
		next.cnhNumber, _ = kernel.CheckRequiredString(verr, FieldCNHNumber, *p.CNHNumber, MaxCNHNumberLength)
	}
	if p.CNHCategory != nil {
		next.cnhCategory, _ = checkCategory(verr, *p.CNHCategory)
	}
	if p.Phone.IsPresent() {
		next.phone, _ = kernel.CheckOptionalString(verr, FieldPhone, p.Phone.Value(), MaxPhoneLength)
	}
	return next, verr
}

func checkCategory(verr *errs.ValidationError, raw string) (CNHCategory, bool) {
	if raw == "" {
		verr.Add(FieldCNHCategory, kernel.RequiredMessage(FieldCNHCategory))
		return "", false
	}
	c, err := ParseCNHCategory(raw)
	if err != nil {
		verr.Add(FieldCNHCategory, kernel.SelectedInvalidMessage(FieldCNHCategory))
		return "", false
	}
	return c, true
}
