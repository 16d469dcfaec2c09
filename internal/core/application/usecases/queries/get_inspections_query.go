package queries

import (
	"errors"
	"time"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/pkg/guard"
)

var ErrGetInspectionsQueryIsNotConstructed = errors.New(
	"GetInspectionsQuery must be created via NewGetInspectionsQuery constructor",
)

// GetInspectionsQuery retrieves quality inspections, optionally filtered by
// lot.
type GetInspectionsQuery struct {
	lotID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetInspectionsQuery creates a query for inspections. A nil lotID means
// no filter.
func NewGetInspectionsQuery(lotID *kernel.UUID) (GetInspectionsQuery, error) {
	if lotID != nil {
		if err := lotID.Validate(); err != nil {
			return GetInspectionsQuery{}, err
		}
	}
	return GetInspectionsQuery{lotID: lotID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInspectionsQuery) Validate() error {
	return q.guard.Validate(ErrGetInspectionsQueryIsNotConstructed)
}

// LotID returns the optional lot filter.
func (q GetInspectionsQuery) LotID() *kernel.UUID {
	return q.lotID
}

// InspectionResponse represents one inspection row with the inspected lot's
// number resolved.
type InspectionResponse struct {
	ID               kernel.UUID `json:"id"`
	InspectionNumber string      `json:"inspectionNumber"`
	LotID            kernel.UUID `json:"lotId"`
	LotNumber        string      `json:"lotNumber"`
	Type             string      `json:"type"`
	Status           string      `json:"status"`
	Result           *string     `json:"result,omitempty"`
	SampleSize       int         `json:"sampleSize"`
	PassedCount      int         `json:"passedCount"`
	FailedCount      int         `json:"failedCount"`
	Inspector        string      `json:"inspector,omitempty"`
	InspectionDate   *time.Time  `json:"inspectionDate,omitempty"`
	CreatedAt        time.Time   `json:"createdAt"`
}
