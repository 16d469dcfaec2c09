package inspection

import (
	"errors"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/pkg/errs"
)

// ErrStandardIsNotConstructed is returned when a Standard instance was not
// created through the NewStandard factory method.
var ErrStandardIsNotConstructed = errors.New("Standard must be created via NewStandard constructor")

// Standard is a named measurable limit used to judge a measured value:
// a nominal value with upper/lower bounds and a unit, applicable to one
// inspection type. Standards are shared reference data; inspection items
// reference them but copy the nominal value at creation time.
type Standard struct {
	id             kernel.UUID
	code           string
	name           string
	category       string
	standardValue  string
	upperLimit     string
	lowerLimit     string
	unit           string
	applicableType Type
	description    string
	active         bool

	isConstructed bool
}

// NewStandard creates an inspection standard. Limit values are kept as
// strings; judging a measurement against them is the inspector's concern.
func NewStandard(
	id kernel.UUID,
	code, name, category string,
	standardValue, upperLimit, lowerLimit, unit string,
	applicableType Type,
	description string,
	active bool,
) (*Standard, error) {
	s := &Standard{
		category:      category,
		standardValue: standardValue,
		upperLimit:    upperLimit,
		lowerLimit:    lowerLimit,
		unit:          unit,
		description:   description,
		active:        active,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setCode(code),
		s.setName(name),
		s.setApplicableType(applicableType),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStandard reconstructs a Standard from persistence.
func RestoreStandard(
	id kernel.UUID,
	code, name, category string,
	standardValue, upperLimit, lowerLimit, unit string,
	applicableType Type,
	description string,
	active bool,
) (*Standard, error) {
	return NewStandard(id, code, name, category, standardValue, upperLimit, lowerLimit, unit,
		applicableType, description, active)
}

// Validate ensures the Standard instance was properly constructed through NewStandard.
func (s *Standard) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStandardIsNotConstructed
	}
	return nil
}

// ID returns the standard's unique identifier.
func (s *Standard) ID() kernel.UUID {
	return s.id
}

// Code returns the standard's business code.
func (s *Standard) Code() string {
	return s.code
}

// Name returns the standard's display name.
func (s *Standard) Name() string {
	return s.name
}

// Category returns the standard's category, e.g. dimension or appearance.
func (s *Standard) Category() string {
	return s.category
}

// StandardValue returns the nominal value.
func (s *Standard) StandardValue() string {
	return s.standardValue
}

// UpperLimit returns the upper tolerance bound.
func (s *Standard) UpperLimit() string {
	return s.upperLimit
}

// LowerLimit returns the lower tolerance bound.
func (s *Standard) LowerLimit() string {
	return s.lowerLimit
}

// Unit returns the measurement unit.
func (s *Standard) Unit() string {
	return s.unit
}

// ApplicableType returns the inspection type the standard applies to.
func (s *Standard) ApplicableType() Type {
	return s.applicableType
}

// Description returns the standard's free-text description.
func (s *Standard) Description() string {
	return s.description
}

// Active reports whether the standard is currently in use.
func (s *Standard) Active() bool {
	return s.active
}

// Tolerance renders the tolerance band as "upper~lower", the form copied
// onto inspection items.
func (s *Standard) Tolerance() string {
	return s.upperLimit + "~" + s.lowerLimit
}

func (s *Standard) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Standard) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	s.code = code
	return nil
}

func (s *Standard) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Standard) setApplicableType(applicableType Type) error {
	if err := applicableType.Validate(); err != nil {
		return err
	}
	s.applicableType = applicableType
	return nil
}
