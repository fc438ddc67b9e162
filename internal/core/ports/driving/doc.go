// Package driving holds the interfaces the CLI and TUI use to drive the
// core services. Implementations live in internal/core/services.
//
// Narrow single-purpose interfaces (Notifier, DocumentGate,
// RegistryRefresher) exist so that consumers depend on exactly the
// collaborator surface they need and nothing more.
package driving
