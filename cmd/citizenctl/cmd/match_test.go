package cmd

import (
	"CitizenVoice/pkg/matching"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orgsJSON = `[
  {"id": "o-sanitation", "name": "Dinas Kebersihan", "category": "Sanitation", "tags": ["garbage"]},
  {"id": "o-roads", "name": "Dinas PU", "category": "Infrastructure", "tags": ["road"]}
]`

func TestDecodeOrganizations(t *testing.T) {
	orgs, err := decodeOrganizations(strings.NewReader(orgsJSON))
	require.NoError(t, err)
	require.Len(t, orgs, 2)
	assert.Equal(t, []string{"garbage"}, orgs[0].Tags)

	_, err = decodeOrganizations(strings.NewReader(`{"id": 1}`))
	assert.Error(t, err)
}

func TestFormatMatches(t *testing.T) {
	orgs, err := decodeOrganizations(strings.NewReader(orgsJSON))
	require.NoError(t, err)

	candidates := make([]matching.Candidate, 0, len(orgs))
	names := map[string]string{}
	for _, org := range orgs {
		candidates = append(candidates, org.MatchCandidate())
		names[org.ID] = org.Name
	}

	tags := matching.ExtractTags("Trash everywhere near the market")
	out := formatMatches(tags, matching.Rank(candidates, "Sanitation", tags, 0), names)

	assert.Contains(t, out, "1. Dinas Kebersihan [o-sanitation]")
	assert.Contains(t, out, "   - Category: Sanitation")
	assert.NotContains(t, out, "Dinas PU")
}

func TestFormatMatches_Empty(t *testing.T) {
	out := formatMatches([]string{}, nil, nil)
	assert.Equal(t, "tags: \nno organization reached the minimum score\n", out)
}

func TestSeedAdminValidation(t *testing.T) {
	seedEmail, seedPassword = "not-an-email", "short"
	err := seedAdminCmd.RunE(seedAdminCmd, nil)
	assert.ErrorContains(t, err, "invalid admin account")
}
