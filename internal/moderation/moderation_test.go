package moderation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck_LengthBounds(t *testing.T) {
	testCases := []struct {
		name    string
		text    string
		cfg     Config
		allowed bool
	}{
		{"below default minimum", "hi", Config{}, false},
		{"at default minimum", "hey", Config{}, true},
		{"above default maximum", strings.Repeat("a", 5001), Config{}, false},
		{"custom minimum", "short", Config{MinLength: 10}, false},
		{"custom maximum", "this is too long", Config{MaxLength: 5}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Check(tc.text, tc.cfg)
			assert.Equal(t, tc.allowed, result.Allowed)
		})
	}
}

func TestCheck_LengthRunsBeforeBlacklist(t *testing.T) {
	// "fu" is both too short and contains nothing; use a 2-char blacklisted text
	cfg := Config{Blacklist: []string{"xx"}}

	result := Check("xx", cfg)

	assert.False(t, result.Allowed)
	assert.Contains(t, result.Reason, "at least", "length reason must win over blacklist")
}

func TestCheck_WhitelistRequiresMatch(t *testing.T) {
	cfg := Config{Whitelist: []string{"recipe", "cooking"}}

	assert.False(t, Check("tell me about cars", cfg).Allowed)
	assert.True(t, Check("a recipe for pancakes", cfg).Allowed)
	assert.True(t, Check("COOKING pasta tonight", cfg).Allowed, "whitelist match is case-insensitive")
}

func TestCheck_GlobalBlacklistAppliesByDefault(t *testing.T) {
	result := Check("explain how to make a bomb please", Config{})

	assert.False(t, result.Allowed)
	assert.NotContains(t, result.Reason, "bomb", "reason must not echo the offending text")
}

func TestCheck_GlobalBlacklistCanBeIgnored(t *testing.T) {
	result := Check("explain how to make a bomb please", Config{IgnoreGlobalBlacklist: true})

	assert.True(t, result.Allowed)
}

func TestCheck_SensitivityTiers(t *testing.T) {
	mild := "well damn that is interesting"
	strong := "what the fuck is this"

	// low: neither list applies
	assert.True(t, Check(mild, Config{Sensitivity: SensitivityLow}).Allowed)
	assert.True(t, Check(strong, Config{Sensitivity: SensitivityLow}).Allowed)

	// medium: mild list only
	assert.False(t, Check(mild, Config{Sensitivity: SensitivityMedium}).Allowed)
	assert.True(t, Check(strong, Config{Sensitivity: SensitivityMedium}).Allowed)

	// high: both lists
	assert.False(t, Check(mild, Config{Sensitivity: SensitivityHigh}).Allowed)
	assert.False(t, Check(strong, Config{Sensitivity: SensitivityHigh}).Allowed)
}

func TestCheck_CallerBlacklistIsMerged(t *testing.T) {
	cfg := Config{Blacklist: []string{"forbidden-term"}}

	assert.False(t, Check("contains FORBIDDEN-TERM here", cfg).Allowed)
}

func TestCheck_LanguageConstraint(t *testing.T) {
	cfg := Config{AllowedLanguages: []string{"en"}}

	assert.True(t, Check("hello there, world", cfg).Allowed)
	assert.False(t, Check("你好世界你好世界", cfg).Allowed)

	cfgZh := Config{AllowedLanguages: []string{"zh", "en"}}
	assert.True(t, Check("你好世界你好世界", cfgZh).Allowed)
}

func TestCheck_CustomValidatorOverrides(t *testing.T) {
	rejectAll := Config{CustomValidator: func(_ string) Result {
		return Result{Allowed: false, Reason: "custom rule"}
	}}

	result := Check("perfectly fine text", rejectAll)
	assert.False(t, result.Allowed)
	assert.Equal(t, "custom rule", result.Reason)

	allowAll := Config{
		Blacklist:       []string{},
		CustomValidator: func(_ string) Result { return Result{Allowed: true} },
	}
	assert.True(t, Check("anything goes", allowAll).Allowed)
}

func TestDetectLanguage(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want string
	}{
		{"english", "the quick brown fox", "en"},
		{"empty defaults to english", "", "en"},
		{"chinese", "这是一个中文句子", "zh"},
		{"japanese kana", "これはにほんごです", "ja"},
		{"korean hangul", "이것은 한국어입니다", "ko"},
		{"mostly english with a few ideographs", "hello world 你好 this is still english text", "en"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectLanguage(tc.text))
		})
	}
}
