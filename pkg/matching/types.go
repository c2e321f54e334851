package matching

// Candidate is the read-only view of an organization the engine scores.
type Candidate struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// Match is the scored result for one candidate. Reasons lists every rule
// that fired, in evaluation order.
type Match struct {
	Candidate Candidate `json:"organization"`
	Score     float64   `json:"score"`
	Reasons   []string  `json:"matches"`
}

const (
	WeightCategoryExact   = 3.0
	WeightCategoryPartial = 1.0
	WeightTagExact        = 2.0
	WeightTagSynonym      = 1.5
	WeightTagPartial      = 1.0
	WeightCategoryTag     = 0.5

	// MinScore is the lowest score a candidate needs to be routed to.
	MinScore = 2.0

	DefaultTopN = 3
)

type synonymEntry struct {
	Key      string
	Matches  []string
	Category string
}

// synonymTable is evaluated in declaration order; the first entry that
// matches a tag wins.
var synonymTable = []synonymEntry{
	{
		Key:      "innovation",
		Matches:  []string{"innovate", "technology", "digital", "tech"},
		Category: "ICT",
	},
	{
		Key:      "garbage",
		Matches:  []string{"trash", "waste", "rubbish"},
		Category: "Sanitation",
	},
	{
		Key:      "sanitation",
		Matches:  []string{"cleanliness", "hygiene", "cleaning"},
		Category: "Sanitation",
	},
	{
		Key:      "road",
		Matches:  []string{"street", "highway", "pavement"},
		Category: "Infrastructure",
	},
}

func (e synonymEntry) covers(tag string) bool {
	if tag == e.Key {
		return true
	}
	for _, m := range e.Matches {
		if m == tag {
			return true
		}
	}
	return false
}
