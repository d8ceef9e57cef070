// Package services provides domain services that implement business rules
// spanning more than one aggregate in the courier billing system.
//
// The package includes:
//   - PricingCalculator: computes the shipping cost of an item from its
//     weight, declared value and destination
//   - AccessGuard: decides whether an actor may read or act on a resource
//     owned by some user
//
// Domain services hold no state and touch no infrastructure; handlers call
// them inside their units of work.
package services
