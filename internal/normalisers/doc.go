// Package normalisers turns raw file bytes into exportable text.
//
// The plaintext normaliser is the only implementation: every regular file is
// read as UTF-8, whatever its type.
package normalisers
