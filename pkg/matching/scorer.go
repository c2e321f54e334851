package matching

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Score computes the additive relevance of candidate for a feedback with the
// given category and description tags.
func Score(candidate Candidate, userCategory string, tags []string) Match {
	lower := cases.Lower(language.Und)

	orgCategory := lower.String(candidate.Category)
	category := lower.String(userCategory)

	orgTags := make([]string, 0, len(candidate.Tags))
	for _, t := range candidate.Tags {
		if t = lower.String(t); t != "" {
			orgTags = append(orgTags, t)
		}
	}

	result := Match{
		Candidate: candidate,
		Reasons:   make([]string, 0),
	}

	if orgCategory != "" && category != "" {
		switch {
		case orgCategory == category:
			result.Score += WeightCategoryExact
			result.Reasons = append(result.Reasons, fmt.Sprintf("Category: %s", candidate.Category))
		case strings.Contains(orgCategory, category) || strings.Contains(category, orgCategory):
			result.Score += WeightCategoryPartial
			result.Reasons = append(result.Reasons, fmt.Sprintf("Partial category: %s", candidate.Category))
		}
	}

	for _, tag := range tags {
		tagLower := lower.String(tag)
		if tagLower == "" {
			continue
		}

		if contains(orgTags, tagLower) {
			result.Score += WeightTagExact
			result.Reasons = append(result.Reasons, fmt.Sprintf("Exact tag: %s", tag))
		}

		for _, entry := range synonymTable {
			if entry.covers(tagLower) && contains(orgTags, entry.Key) {
				result.Score += WeightTagSynonym
				result.Reasons = append(result.Reasons, fmt.Sprintf("Synonym: %s → %s", tag, entry.Key))
				break
			}
		}

		if overlaps(orgTags, tagLower) {
			result.Score += WeightTagPartial
			result.Reasons = append(result.Reasons, fmt.Sprintf("Partial: %s", tag))
		}
	}

	if category != "" && contains(orgTags, category) {
		result.Score += WeightCategoryTag
		result.Reasons = append(result.Reasons, fmt.Sprintf("Category tag: %s", userCategory))
	}

	return result
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func overlaps(orgTags []string, tag string) bool {
	for _, orgTag := range orgTags {
		if strings.Contains(orgTag, tag) || strings.Contains(tag, orgTag) {
			return true
		}
	}
	return false
}
