package domain

// FileEntry is one exported file.
// Entries are created once per regular file visited and never modified.
type FileEntry struct {
	// Path is the location relative to the scan root, always slash-separated.
	Path string

	// Content is the file's text after XML escaping.
	Content string
}
