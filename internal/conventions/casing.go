package conventions

import (
	"path/filepath"
	"strings"
	"unicode"
)

type runeClass int

const (
	classOther runeClass = iota
	classLower
	classUpper
	classDigit
)

func classify(r rune) runeClass {
	switch {
	case unicode.IsLower(r):
		return classLower
	case unicode.IsUpper(r):
		return classUpper
	case unicode.IsDigit(r):
		return classDigit
	default:
		return classOther
	}
}

// Words splits s into words. Anything that is not a letter or digit separates
// words, and a new word starts at every lower→upper boundary, at every
// letter↔digit boundary, and before the last capital of an acronym run that
// is followed by a lowercase letter.
//
//	"feature1"        → [feature 1]
//	"admin/userList"  → [admin user List]
//	"HTMLParser"      → [HTML Parser]
//	"my-app_v2"       → [my app v 2]
func Words(s string) []string {
	runes := []rune(s)
	var words []string
	start := -1

	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, string(runes[start:end]))
		}
		start = -1
	}

	for i, r := range runes {
		c := classify(r)
		if c == classOther {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}

		prev := classify(runes[i-1])
		split := false
		switch {
		case prev == classDigit && c != classDigit, prev != classDigit && c == classDigit:
			split = true
		case prev == classLower && c == classUpper:
			split = true
		case prev == classUpper && c == classUpper:
			split = i+1 < len(runes) && classify(runes[i+1]) == classLower
		}
		if split {
			flush(i)
			start = i
		}
	}
	flush(len(runes))
	return words
}

// KebabCase lowercases the words of s and joins them with "-".
//
//	"feature1"        → "feature-1"
//	"admin/userList"  → "admin-user-list"
func KebabCase(s string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "-")
}

// CamelCase joins the words of s with the first word lowercased and every
// following word capitalized.
//
//	"feature1"        → "feature1"
//	"admin/user-list" → "adminUserList"
func CamelCase(s string) string {
	words := Words(s)
	var b strings.Builder
	for i, w := range words {
		lower := strings.ToLower(w)
		if i == 0 {
			b.WriteString(lower)
			continue
		}
		r := []rune(lower)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

// BaseName returns the file's base name without its extension and with the
// literal "Component" and "Controller" markers removed.
//
//	"home/homeController.js" → "home"
//	"navComponent.ts"        → "nav"
func BaseName(file string) string {
	base := filepath.Base(file)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, "Component", "")
	base = strings.ReplaceAll(base, "Controller", "")
	return base
}
