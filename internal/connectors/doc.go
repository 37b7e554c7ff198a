// Package connectors provides the sources repoxml reads files from.
// The filesystem connector walks a local directory tree; it is the only
// source, as exports never span multiple roots.
package connectors
