package moderation

// script-ratio share above which the text is classified as that language
const scriptShareThreshold = 0.3

// DetectLanguage is a lightweight script-ratio detector.
//
// It counts characters in the Chinese, Japanese and Korean Unicode ranges; if
// any script's share of the string exceeds 30% the text is classified as that
// language, otherwise it defaults to English. Good enough for gating tools
// that only handle one language; not a general-purpose detector.
func DetectLanguage(text string) string {
	var total, chinese, japanese, korean int

	for _, r := range text {
		total++

		switch {
		case r >= 0x3040 && r <= 0x30FF: // hiragana and katakana
			japanese++
		case r >= 0xAC00 && r <= 0xD7AF: // hangul syllables
			korean++
		case r >= 0x1100 && r <= 0x11FF: // hangul jamo
			korean++
		case r >= 0x4E00 && r <= 0x9FFF: // CJK unified ideographs
			chinese++
		}
	}

	if total == 0 {
		return "en"
	}

	// kanji counts toward Chinese; when kana is present the text is Japanese
	if float64(japanese)/float64(total) > scriptShareThreshold {
		return "ja"
	}

	if float64(korean)/float64(total) > scriptShareThreshold {
		return "ko"
	}

	if float64(chinese)/float64(total) > scriptShareThreshold {
		return "zh"
	}

	return "en"
}
