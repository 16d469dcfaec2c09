package queries

import (
	"errors"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/pkg/guard"
)

var ErrGetStandardsQueryIsNotConstructed = errors.New(
	"GetStandardsQuery must be created via NewGetStandardsQuery constructor",
)

// GetStandardsQuery retrieves all inspection standards.
type GetStandardsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStandardsQuery creates a parameterless standards query.
func NewGetStandardsQuery() GetStandardsQuery {
	return GetStandardsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStandardsQuery) Validate() error {
	return q.guard.Validate(ErrGetStandardsQueryIsNotConstructed)
}

// StandardResponse represents one inspection standard row.
type StandardResponse struct {
	ID             kernel.UUID `json:"id"`
	Code           string      `json:"code"`
	Name           string      `json:"name"`
	Category       string      `json:"category,omitempty"`
	StandardValue  string      `json:"standardValue,omitempty"`
	UpperLimit     string      `json:"upperLimit,omitempty"`
	LowerLimit     string      `json:"lowerLimit,omitempty"`
	Unit           string      `json:"unit,omitempty"`
	ApplicableType string      `json:"applicableType"`
	Description    string      `json:"description,omitempty"`
	Active         bool        `json:"active"`
}
