package tesa

import (
	"regexp"
	"unicode"
)

// emojiRanges lists the pictographic blocks treated as emoji.
const emojiRanges = `\x{1F000}-\x{1FAFF}\x{2300}-\x{23FF}\x{2600}-\x{27BF}\x{2B00}-\x{2BFF}`

// emojiJoiners may appear inside a glyph: zero-width joiner, variation
// selector 16 and the keycap combiner.
const emojiJoiners = `\x{200D}\x{FE0F}\x{20E3}`

var (
	emojiModifiers = `[\x{FE0F}\x{1F3FB}-\x{1F3FF}]*`
	emojiBase      = `[` + emojiRanges + `]` + emojiModifiers

	// emojiGlyphRE matches one glyph: a flag pair, or a base pictograph with
	// its modifiers and any ZWJ-joined continuation.
	emojiGlyphRE = regexp.MustCompile(`[\x{1F1E6}-\x{1F1FF}]{2}|` + emojiBase + `(?:\x{200D}` + emojiBase + `)*`)

	// emojiRunRE matches either one glyph or a maximal run of other text.
	emojiRunRE = regexp.MustCompile(emojiGlyphRE.String() + `|[^` + emojiRanges + emojiJoiners + `]+`)
)

// isEmojiRune reports whether r can be part of an emoji glyph.
func isEmojiRune(r rune) bool {
	switch {
	case r >= 0x1F000 && r <= 0x1FAFF:
		return true
	case r >= 0x2300 && r <= 0x23FF:
		return true
	case r >= 0x2600 && r <= 0x27BF:
		return true
	case r >= 0x2B00 && r <= 0x2BFF:
		return true
	case r == 0x200D || r == 0xFE0F || r == 0x20E3:
		return true
	}
	return false
}

// hasEmoji reports whether s contains any emoji rune.
func hasEmoji(s string) bool {
	for _, r := range s {
		if isEmojiRune(r) {
			return true
		}
	}
	return false
}

// isLetterOrEmoji reports whether r is accepted by the token filter.
func isLetterOrEmoji(r rune) bool {
	return unicode.IsLetter(r) || isEmojiRune(r)
}

// CountEmoji returns the number of emoji glyphs in s.
func CountEmoji(s string) int {
	return len(emojiGlyphRE.FindAllStringIndex(s, -1))
}

// SplitEmoji breaks every token holding more than one emoji glyph into its
// word runs and single-glyph runs, spliced in place. Other tokens pass
// through unchanged.
func SplitEmoji(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if CountEmoji(tok) <= 1 {
			out = append(out, tok)
			continue
		}
		out = append(out, emojiRunRE.FindAllString(tok, -1)...)
	}
	return out
}
