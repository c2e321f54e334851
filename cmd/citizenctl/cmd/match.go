package cmd

import (
	organizationRepository "CitizenVoice/internal/api/organization/repository"
	"CitizenVoice/internal/entity"
	"CitizenVoice/pkg/matching"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"golang.org/x/net/context"
)

var (
	matchCategory    string
	matchDescription string
	matchOrgsFile    string
	matchTop         int
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank organizations for a feedback without filing it",
	Long:  "Runs tag extraction and ranking against organizations from a JSON file or, without --orgs, from the database.",
	RunE:  runMatch,
}

func init() {
	f := matchCmd.Flags()
	f.StringVar(&matchCategory, "category", "", "Feedback category")
	f.StringVar(&matchDescription, "description", "", "Feedback description (required)")
	f.StringVar(&matchOrgsFile, "orgs", "", "JSON file with an array of organizations")
	f.IntVar(&matchTop, "top", matching.DefaultTopN, "Number of organizations to keep")
	_ = matchCmd.MarkFlagRequired("description")
}

func runMatch(cmd *cobra.Command, args []string) error {
	orgs, err := loadOrganizations()
	if err != nil {
		return err
	}

	candidates := make([]matching.Candidate, 0, len(orgs))
	names := make(map[string]string, len(orgs))
	for _, org := range orgs {
		candidates = append(candidates, org.MatchCandidate())
		names[org.ID] = org.Name
	}

	tags := matching.ExtractTags(matchDescription)
	matches := matching.Rank(candidates, matchCategory, tags, matchTop)

	fmt.Fprint(cmd.OutOrStdout(), formatMatches(tags, matches, names))
	return nil
}

func loadOrganizations() ([]entity.Organization, error) {
	if matchOrgsFile != "" {
		f, err := os.Open(matchOrgsFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return decodeOrganizations(f)
	}

	db, logger, err := openDatabase()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	client, err := organizationRepository.New(db, logger).NewClient(false)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return client.Organizations.GetAll(ctx)
}

func decodeOrganizations(r io.Reader) ([]entity.Organization, error) {
	var orgs []entity.Organization
	if err := jsoniter.NewDecoder(r).Decode(&orgs); err != nil {
		return nil, fmt.Errorf("decode organizations: %w", err)
	}
	return orgs, nil
}

func formatMatches(tags []string, matches []matching.Match, names map[string]string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "tags: %s\n", strings.Join(tags, ", "))
	if len(matches) == 0 {
		sb.WriteString("no organization reached the minimum score\n")
		return sb.String()
	}

	for i, m := range matches {
		name := names[m.Candidate.ID]
		if name == "" {
			name = m.Candidate.ID
		}
		fmt.Fprintf(&sb, "%d. %s [%s] score %.1f\n", i+1, name, m.Candidate.ID, m.Score)
		for _, reason := range m.Reasons {
			fmt.Fprintf(&sb, "   - %s\n", reason)
		}
	}

	return sb.String()
}
