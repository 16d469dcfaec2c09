// Package services provides domain services that implement business rules
// spanning multiple entities in the production tracking system.
//
// The package includes:
//   - RoutingSequence: Validates that process completions follow routing order
//   - QualityGate: Computes defect rates and decides accept/reject against a threshold
//   - OEEEstimator: Supplies the synthetic availability/performance OEE factors
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
// All services in this package are pure: they hold no mutable state and are
// safe for concurrent use.
package services
