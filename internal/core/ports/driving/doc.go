// Package driving defines the interfaces through which the outside world
// calls INTO core services.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI adapter depends on these interfaces; core services implement them.
//
//   - Normalizer: Applies a translator chain to text and streams
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driving
