// Package ignore decides which paths are excluded from an export.
//
// Patterns are shell globs evaluated with doublestar: "*" matches within one
// path segment, "?" matches one character, and "**", "[...]" and "{a,b}" are
// also understood. A pattern without a slash is tried against the base name
// as well as the full relative path (match-base mode), so "*.png" excludes
// "images/x/y.png" and "node_modules" excludes that directory at any depth.
//
// Wildcards never match a leading dot: "*.env" keeps ".env", while ".env"
// or ".*" excludes it.
//
// When requested, rules from the export root's .gitignore are honoured after
// the glob patterns.
package ignore
