package queries

import (
	"errors"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/pkg/guard"
)

var ErrGetLotQueryIsNotConstructed = errors.New(
	"GetLotQuery must be created via NewGetLotQuery constructor",
)

// GetLotQuery retrieves a single lot by its identifier.
type GetLotQuery struct {
	lotID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLotQuery creates a query for one lot.
func NewGetLotQuery(lotID kernel.UUID) (GetLotQuery, error) {
	if err := lotID.Validate(); err != nil {
		return GetLotQuery{}, err
	}
	return GetLotQuery{lotID: lotID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLotQuery) Validate() error {
	return q.guard.Validate(ErrGetLotQueryIsNotConstructed)
}

// LotID returns the identifier of the requested lot.
func (q GetLotQuery) LotID() kernel.UUID {
	return q.lotID
}
