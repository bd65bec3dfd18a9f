// Package tokenservice implements the Madison ad-token ledger inside
// ad-delivery: non-transferable receipt tokens recording which user received
// which campaign's content.
//
// Layering:
// - domain: core entities, invariants, errors
// - application: commands/queries using explicit ports
// - ports: stable boundaries for persistence and campaign lookups
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Token ids start at 1, strictly increase, and are never reused; id 0
//   always means "not found".
// - Tokens are soulbound: transfer of an existing token always fails, and
//   ownership never changes after issuance.
// - Issuance happens only through IssueTokens, called by the distribution
//   module; there is no public mint surface.
package tokenservice
