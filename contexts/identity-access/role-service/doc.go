// Package roleservice implements the Madison role store inside identity-access.
//
// Layering:
// - domain: core entities, invariants, errors
// - application: commands/queries/workers using explicit ports
// - ports: stable boundaries for persistence/events
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - The administrator is fixed once at bootstrap and never mutated here.
// - Keep this module self-contained under identity-access context.
// - Do not import other context adapters into domain/application.
package roleservice
