package matching

import "sort"

// Rank scores every candidate, drops those under MinScore and returns at most
// topN results, highest score first. Equal scores keep their input order.
// A topN of zero or less means DefaultTopN, not an empty result.
func Rank(candidates []Candidate, userCategory string, tags []string, topN int) []Match {
	if topN <= 0 {
		topN = DefaultTopN
	}

	ranked := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		m := Score(c, userCategory, tags)
		if m.Score < MinScore {
			continue
		}
		ranked = append(ranked, m)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	return ranked
}

// IDs returns the candidate ids of ranked matches in order.
func IDs(matches []Match) []string {
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.Candidate.ID)
	}
	return ids
}
