// Package workorder provides domain entities and business logic for production
// run tracking. It implements the WorkOrder aggregate root with lifecycle
// management driven by routing step completions.
//
// The package includes:
//   - WorkOrder: The aggregate root holding identity, quantity, and lifecycle status
//   - WorkResult: The immutable, append-only record of one completed routing step
//   - Status: A state machine deriving status from the completed step count
//
// Key business rules:
//   - Work orders must reference a valid product and have a positive quantity
//   - Status follows PLANNED -> STARTED -> IN_PROGRESS -> COMPLETED, derived
//     purely from how many routing steps have been completed
//   - The quality gate may move any non-terminal work order to REJECTED
//   - COMPLETED and REJECTED are terminal; further completions are refused
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package workorder
