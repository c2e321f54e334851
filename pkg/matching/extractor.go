package matching

import (
	"regexp"
	"strings"
)

var urlPattern = regexp.MustCompile(`[A-Za-z][A-Za-z0-9+.\-]*://\S+`)

var stopWords = toSet(
	// articles
	"a", "an", "the",

	// conjunctions
	"and", "or", "but", "nor", "so", "for", "yet", "as",

	// prepositions
	"at", "by", "from", "in", "into", "of", "on", "to", "with",

	// pronouns
	"i", "you", "he", "she", "it", "we", "they", "me", "him", "her", "us", "them",

	// auxiliary and modal verbs
	"is", "are", "was", "were", "be", "been", "being", "have", "has", "had",
	"do", "does", "did", "will", "would", "shall", "should", "can", "could",
	"may", "might", "must",

	"this", "that", "these", "those", "there", "here", "what", "which", "who",
	"whom", "whose", "where", "when", "how", "why", "not", "no", "yes", "if",
	"then", "else", "about", "above", "after", "before", "between", "during",
	"under", "over", "again", "further", "once", "more", "most", "other",
	"some", "such", "only", "own", "same", "than", "too", "very", "just",
	"now", "also", "any", "each", "both", "all", "few", "many", "several",
	"my", "your", "his", "its", "our", "their",
)

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// ExtractTags turns a free-text description into distinct keyword stems in
// first-occurrence order. It never fails; noise yields an empty slice.
func ExtractTags(description string) []string {
	text := urlPattern.ReplaceAllString(description, "")
	text = strings.Map(func(r rune) rune {
		if isWordChar(r) {
			return r
		}
		return ' '
	}, text)

	tags := make([]string, 0)
	seen := make(map[string]struct{})

	for _, word := range strings.Fields(text) {
		word = strings.TrimSpace(strings.ToLower(word))
		if !keepToken(word) {
			continue
		}

		stem := Stem(word)
		if _, dup := seen[stem]; dup {
			continue
		}
		seen[stem] = struct{}{}
		tags = append(tags, stem)
	}

	return tags
}

// Stem applies the first matching suffix rule.
func Stem(word string) string {
	switch {
	case strings.HasSuffix(word, "ing"):
		return strings.TrimSuffix(word, "ing")
	case strings.HasSuffix(word, "tion"):
		return strings.TrimSuffix(word, "tion") + "t"
	case strings.HasSuffix(word, "ies"):
		return strings.TrimSuffix(word, "ies") + "y"
	case strings.HasSuffix(word, "s"):
		return strings.TrimSuffix(word, "s")
	default:
		return word
	}
}

func keepToken(word string) bool {
	if len(word) <= 2 {
		return false
	}
	if _, stop := stopWords[word]; stop {
		return false
	}
	return !strings.ContainsAny(word, "0123456789")
}

// Underscores count as separators, so only ASCII letters and digits survive.
func isWordChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
