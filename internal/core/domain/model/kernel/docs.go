// Package kernel contains shared value objects used across all aggregates:
// monetary amounts with a fixed rounding policy, caller identity (Actor) and
// authorization roles. These types carry no behavior specific to any single
// aggregate and may be imported from every layer.
package kernel
