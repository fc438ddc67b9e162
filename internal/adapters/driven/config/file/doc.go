// Package file persists client state to the local filesystem.
//
// Adapters:
//   - ConfigStore: settings in a TOML file under ~/.askpdf
package file
