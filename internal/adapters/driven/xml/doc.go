// Package xml renders exported files into the repository XML document.
//
// The output is assembled by hand rather than with encoding/xml: file content
// is entity-escaped and then additionally wrapped in a CDATA section, and the
// path attribute is written verbatim. encoding/xml can produce neither.
//
// Known fragility: content containing "]]>" is escaped to "]]&gt;" before
// wrapping, so it cannot terminate the CDATA section early, but a path
// containing a double quote will break the attribute.
package xml
