package textutil

import "bytes"

// NormalizeUTF8LF converts CRLF to LF and ensures the output is valid
// UTF-8 by replacing invalid byte sequences with the Unicode replacement
// character. Snapshot renderings pass through here before diffing so CSV
// files written on Windows compare equal to their LF twins.
func NormalizeUTF8LF(b []byte) []byte {
	b = bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n"))
	b = bytes.ReplaceAll(b, []byte("\r"), []byte("\n"))
	return bytes.ToValidUTF8(b, []byte("�"))
}

// EnsureTrailingLF appends a single \n if not already present.
func EnsureTrailingLF(b []byte) []byte {
	if len(b) == 0 || b[len(b)-1] == '\n' {
		return b
	}
	return append(b, '\n')
}
