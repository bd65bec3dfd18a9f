// Package preferenceservice implements the Madison preference store inside
// identity-access: per-user global opt-out and per-advertiser block flags.
//
// Layering:
// - domain: core entities, invariants, errors
// - application: commands/queries/workers using explicit ports
// - ports: stable boundaries for persistence/events
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Preferences are self-service only; no other actor mutates them.
// - Eligibility checks are pure reads consumed by the distribution engine.
package preferenceservice
