// Package driven holds the interfaces core calls OUT to infrastructure.
// Core services depend on these secondary ports; the adapter packages
// implement them.
//
// Both ports must be wired for the client to function:
//
//   - RemoteStore: the question-answering service (uploads, listing,
//     deletion, questions). The HTTP adapter talks to the real service;
//     the in-memory adapter backs tests and demo mode.
//   - ConfigStore: settings persistence.
//
// # Import Rules
//
//   - Can import: the domain package only
//   - Cannot import: any adapter package
package driven
