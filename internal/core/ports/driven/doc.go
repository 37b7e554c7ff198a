// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - TreeWalker: Enumerates and reads the files of the export root
//   - IgnoreMatcherFactory / IgnoreMatcher: Decide which paths are excluded
//   - PathMatcher: Single-pattern glob matching
//   - TextNormaliser: Decodes file bytes to text
//   - Escaper: Escapes text for XML embedding
//   - DocumentBuilder: Renders entries into the XML document
//   - DocumentWriter: Persists the rendered document
//   - Logger: Receives diagnostic events
//
// # Optional Interfaces
//
//   - ConfigStore: Application configuration. Without it, built-in defaults apply.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
