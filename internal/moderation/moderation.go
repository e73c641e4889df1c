// Package moderation is a pure, in-process content filter for tool input.
//
// It runs inline on every request, so it never does I/O and has no external
// failure modes. Checks run in a fixed order and the first failure wins.
package moderation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	defaultMinLength = 3
	defaultMaxLength = 5000
)

// Sensitivity selects which built-in profanity tier is merged into the blacklist.
type Sensitivity string

const (
	SensitivityLow    Sensitivity = "low"    // no built-in profanity list
	SensitivityMedium Sensitivity = "medium" // mild profanity
	SensitivityHigh   Sensitivity = "high"   // mild plus additional profanity
)

// per-tool filter configuration; zero value gets sensible defaults
type Config struct {
	Blacklist             []string
	Whitelist             []string
	IgnoreGlobalBlacklist bool
	Sensitivity           Sensitivity
	MinLength             int
	MaxLength             int
	AllowedLanguages      []string

	// runs last and can override the outcome
	CustomValidator func(text string) Result
}

// the filter outcome; Reason is generic and never echoes the input
type Result struct {
	Allowed bool
	Reason  string
}

func allow() Result {
	return Result{Allowed: true}
}

func reject(reason string) Result {
	return Result{Allowed: false, Reason: reason}
}

// runs all checks in order: length, whitelist, blacklist, language, custom
func Check(text string, cfg Config) Result {
	minLen := cfg.MinLength
	if minLen == 0 {
		minLen = defaultMinLength
	}

	maxLen := cfg.MaxLength
	if maxLen == 0 {
		maxLen = defaultMaxLength
	}

	// 1. length bounds
	length := utf8.RuneCountInString(text)

	if length < minLen {
		return reject(fmt.Sprintf("input must be at least %d characters", minLen))
	}

	if length > maxLen {
		return reject(fmt.Sprintf("input must be at most %d characters", maxLen))
	}

	lower := strings.ToLower(text)

	// 2. whitelist: when set, at least one term must appear
	if len(cfg.Whitelist) > 0 {
		found := false

		for _, term := range cfg.Whitelist {
			if term != "" && strings.Contains(lower, strings.ToLower(term)) {
				found = true
				break
			}
		}

		if !found {
			return reject("input is not related to this tool")
		}
	}

	// 3. blacklist: global severe list + sensitivity tier + caller-supplied
	for _, term := range mergedBlacklist(cfg) {
		if term != "" && strings.Contains(lower, strings.ToLower(term)) {
			return reject("input contains disallowed content")
		}
	}

	// 4. language constraint
	if len(cfg.AllowedLanguages) > 0 {
		detected := DetectLanguage(text)
		allowed := false

		for _, lang := range cfg.AllowedLanguages {
			if strings.EqualFold(lang, detected) {
				allowed = true
				break
			}
		}

		if !allowed {
			return reject(fmt.Sprintf("language %q is not supported by this tool", detected))
		}
	}

	// 5. custom validator gets the final word
	if cfg.CustomValidator != nil {
		return cfg.CustomValidator(text)
	}

	return allow()
}

// merges the fixed global list, the sensitivity tier list, and the caller list
func mergedBlacklist(cfg Config) []string {
	var merged []string

	if !cfg.IgnoreGlobalBlacklist {
		merged = append(merged, globalBlacklist...)
	}

	switch cfg.Sensitivity {
	case SensitivityMedium:
		merged = append(merged, mildProfanity...)
	case SensitivityHigh:
		merged = append(merged, mildProfanity...)
		merged = append(merged, strongProfanity...)
	}

	merged = append(merged, cfg.Blacklist...)
	return merged
}
