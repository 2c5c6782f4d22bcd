package util

import (
	"regexp"
	"strings"
)

// languageAliases folds common fence language spellings to one canonical
// name, so that hosts only need one stylesheet rule per language.
var languageAliases = map[string]string{
	"golang":     "go",
	"py":         "python",
	"python3":    "python",
	"js":         "javascript",
	"node":       "javascript",
	"ts":         "typescript",
	"shell":      "sh",
	"bash":       "sh",
	"zsh":        "sh",
	"c++":        "cpp",
	"c#":         "csharp",
	"yml":        "yaml",
	"plaintext":  "text",
	"plain":      "text",
	"txt":        "text",
	"markdown":   "md",
	"dockerfile": "docker",
	"rb":         "ruby",
	"rs":         "rust",
	"kt":         "kotlin",
	"pl":         "perl",
}

var languageNameRe = regexp.MustCompile(`^[a-z0-9._+-]+$`)

// NormalizeLanguage lowercases and alias-folds a fence language identifier.
//
// Returns "" when the identifier is empty or contains characters that are
// not safe inside a class attribute; callers then emit a bare <pre>.
func NormalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if alias, ok := languageAliases[lang]; ok {
		lang = alias
	}
	if !languageNameRe.MatchString(lang) {
		return ""
	}
	return lang
}
