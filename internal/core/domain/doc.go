// Package domain holds the core entities for AskPDF.
//
// It sits at the centre of the hexagon and imports only the standard
// library; every other package depends on domain, never the reverse.
//
// The fundamental types:
//
//   - DocumentRecord: a file currently held by the remote service
//   - Notification: a transient user-facing message
//   - ChatMessage: one entry in the question/answer transcript
//   - Citation: a source reference attached to an answer
//
// # Import Rules
//
//   - Can import: standard library only
//   - Cannot import: any internal/ package, any external dependency
package domain
