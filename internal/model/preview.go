package model

import (
	"bytes"
	"strings"
)

// Preview renders text on one line, cut to limit runes.
func Preview(text []byte, limit int) string {
	s := strings.ReplaceAll(string(bytes.ToValidUTF8(text, []byte("�"))), "\n", `\n`)

	runes := []rune(s)
	if limit > 3 && len(runes) > limit {
		return string(runes[:limit-3]) + "..."
	}

	return s
}
