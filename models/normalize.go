package models

import "strings"

/*
NormalizeText normalize free text for storage.

Leading and trailing whitespace is trimmed. A result that is empty after
trimming is stored as absence, never as "".

	@param text *string - raw input text, may be nil
	@return the trimmed text, or nil if the input was nil or blank
*/
func NormalizeText(text *string) *string {
	if text == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*text)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// TextPtrEqual compare two normalized text fields for equality
func TextPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
