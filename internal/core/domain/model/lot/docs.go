// Package lot provides domain entities and business logic for batch tracking.
// It implements the Lot aggregate root with its append-only process history.
//
// The package includes:
//   - Lot: The aggregate root holding identity, lot number, quantity, and lifecycle status
//   - History: The immutable record of one process applied to a lot
//   - Status: The externally driven lot lifecycle states
//   - NextNumber: The LOT-YYYYMMDD-NNNN daily-sequential numbering scheme
//
// Key business rules:
//   - Lots are created in CREATED status with a unique daily-sequential number
//   - Appending the first history entry moves a CREATED lot to IN_PROGRESS
//   - All other transitions are explicit status updates; moving to IN_PROGRESS
//     or COMPLETED stamps the corresponding timestamp once
//   - History entries enforce no process ordering; lot tracking is free-form
package lot
