// Package file provides file-based implementations of driven port interfaces.
// These adapters read and write the local filesystem.
//
// Adapters:
//   - ConfigStore: Read-only TOML configuration
//   - DocumentWriter: Writes the rendered repository document
package file
