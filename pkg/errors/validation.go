package errors

import (
	"strings"
	"unicode"
)

// maxAttributeNameLength bounds attribute names read from graph documents.
const maxAttributeNameLength = 256

// ValidateAttributeName validates a graph, vertex, or edge attribute name.
// It rejects names that would corrupt the textual summary output.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters (including newlines and null bytes)
//   - Maximum length of 256 characters
func ValidateAttributeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidAttribute, "attribute name cannot be empty")
	}

	if len(name) > maxAttributeNameLength {
		return New(ErrCodeInvalidAttribute, "attribute name too long (max %d characters)", maxAttributeNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidAttribute, "attribute name contains control characters")
		}
	}

	return nil
}

// ValidateVertexName validates a vertex name read from a graph document.
// Empty names are allowed (the graph is simply unnamed at that vertex);
// control characters and embedded newlines are not, since vertex names are
// emitted verbatim into summary lines.
func ValidateVertexName(name string) error {
	if len(name) > maxAttributeNameLength {
		return New(ErrCodeInvalidGraph, "vertex name too long (max %d characters)", maxAttributeNameLength)
	}

	if strings.ContainsAny(name, "\n\r\x00") {
		return New(ErrCodeInvalidGraph, "vertex name contains line breaks or null bytes")
	}

	for _, r := range name {
		if r != '\t' && unicode.IsControl(r) {
			return New(ErrCodeInvalidGraph, "vertex name contains control characters")
		}
	}

	return nil
}
