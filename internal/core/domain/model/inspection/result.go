package inspection

import (
	"fmt"

	"mestrack/internal/pkg/errs"
)

// Result is the outcome of an inspection or of a single inspection item.
type Result int

const (
	// ResultUnknown represents an invalid or undefined result.
	ResultUnknown Result = iota

	// Pass indicates the measured values met the standard.
	Pass

	// Fail indicates the measured values violated the standard.
	Fail

	// ConditionalPass indicates acceptance with a deviation waiver.
	// Conditional passes count toward neither the passed nor failed totals.
	ConditionalPass
)

func getResultStrings() map[Result]string {
	return map[Result]string{
		ResultUnknown:   "Unknown",
		Pass:            "PASS",
		Fail:            "FAIL",
		ConditionalPass: "CONDITIONAL_PASS",
	}
}

// ResultFromString parses a wire result name, e.g. "CONDITIONAL_PASS".
func ResultFromString(s string) (Result, error) {
	switch s {
	case "PASS":
		return Pass, nil
	case "FAIL":
		return Fail, nil
	case "CONDITIONAL_PASS":
		return ConditionalPass, nil
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("result", fmt.Errorf("%q is not a valid inspection result", s))
}

// Validate checks if the Result value is valid.
func (r Result) Validate() error {
	if _, ok := getResultStrings()[r]; !ok || r == ResultUnknown {
		return errs.NewValueIsInvalidErrorWithCause("result", fmt.Errorf("%d is not a valid inspection result", r))
	}
	return nil
}

// String returns the wire name of the result, "Unknown" for invalid values.
func (r Result) String() string {
	if str, ok := getResultStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// Type classifies when in the production flow an inspection happens.
type Type int

const (
	// TypeUnknown represents an invalid or undefined type.
	TypeUnknown Type = iota

	// Incoming inspects received material before production.
	Incoming

	// InProcess inspects units between routing steps.
	InProcess

	// Final inspects finished units.
	Final

	// Outgoing inspects units before shipment.
	Outgoing
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown: "Unknown",
		Incoming:    "INCOMING",
		InProcess:   "IN_PROCESS",
		Final:       "FINAL",
		Outgoing:    "OUTGOING",
	}
}

// TypeFromString parses a wire type name, e.g. "FINAL".
func TypeFromString(s string) (Type, error) {
	switch s {
	case "INCOMING":
		return Incoming, nil
	case "IN_PROCESS":
		return InProcess, nil
	case "FINAL":
		return Final, nil
	case "OUTGOING":
		return Outgoing, nil
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a valid inspection type", s))
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok || t == TypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%d is not a valid inspection type", t))
	}
	return nil
}

// String returns the wire name of the type, "Unknown" for invalid values.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
