// Package distributionservice implements the Madison distribution engine
// inside ad-delivery: batch delivery of one active campaign's token to many
// recipients, filtered by each recipient's preferences.
//
// Layering:
// - domain: core entities, invariants, errors
// - application: commands/queries/workers using explicit ports
// - ports: stable boundaries for roles, campaigns, eligibility, issuance
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
//   - Ineligible and null recipients are skipped silently; the batch result
//     never names who was skipped or why, only the counts. Callers cannot use
//     the engine to probe individual preferences.
//   - Recipients are processed in request order, so token ids within a batch
//     follow the recipient order.
//   - Cross-module access goes through ports; do not import other services'
//     adapters.
package distributionservice
