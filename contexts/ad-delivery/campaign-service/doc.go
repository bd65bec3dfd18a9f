// Package campaignservice implements the Madison campaign registry inside
// ad-delivery: advertiser-owned campaigns with monotonic ids and an
// active/inactive flag.
//
// Layering:
// - domain: core entities, invariants, errors
// - application: commands/queries/workers using explicit ports
// - ports: stable boundaries for persistence/roles/events
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Campaign ids start at 1, strictly increase, and are never reused; id 0
//   always means "not found".
// - Campaigns are never deleted; deactivation is the only retirement path.
// - Role checks go through a port; do not import identity-access adapters.
package campaignservice
