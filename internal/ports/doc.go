// Package ports defines the interfaces that connect the application layer to
// infrastructure adapters.
//
// # Port Interfaces
//
//   - [InputSource]: loads the raw dig plan text
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them.
package ports
