// Package inspection provides domain entities and business logic for
// sampling-based quality inspections. It implements the Inspection aggregate
// root with its items and the shared inspection standards reference data.
//
// The package includes:
//   - Inspection: The aggregate root with the PENDING -> COMPLETED lifecycle
//   - Item: One measured check judged against a standard, immutable
//   - Standard: A named measurable limit (nominal, upper/lower bound, unit)
//   - Result / Type / Status: The inspection enumerations
//   - NextNumber: The INS-YYYYMMDD-NNNN daily-sequential numbering scheme
//
// Key business rules:
//   - Inspections are created PENDING with a unique daily-sequential number
//   - Completion happens exactly once; it stamps the inspection date and
//     recomputes passed/failed counts from the item results
//   - CONDITIONAL_PASS items count toward neither passed nor failed
//   - Items copy the standard's nominal value and tolerance at creation
package inspection
