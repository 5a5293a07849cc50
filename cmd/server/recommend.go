package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"jobboard/internal/app"
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/domain/recommendation"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print scored job recommendations for a candidate",
	RunE:  runRecommend,
}

var (
	recommendCandidate string
	recommendLimit     int
	recommendJSON      bool
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendCandidate, "candidate", "c", "", "candidate id (required)")
	recommendCmd.Flags().IntVarP(&recommendLimit, "limit", "n", 0, "maximum results, 0 uses RECOMMEND_DEFAULT_LIMIT")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "print recommendations as JSON")

	if err := recommendCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	id, err := uuid.Parse(recommendCandidate)
	if err != nil {
		return fmt.Errorf("invalid candidate id %q: %w", recommendCandidate, err)
	}

	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	c, err := app.NewContainer(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			log.Warn("cleanup error", zap.Error(err))
		}
	}()

	items, err := c.Recommendations.GetRecommendations(cmd.Context(), id, recommendLimit)
	if err != nil {
		return err
	}

	if recommendJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(dto.NewRecommendationResponses(items))
	}
	return printRecommendations(cmd.OutOrStdout(), items)
}

func printRecommendations(w io.Writer, items []recommendation.ScoredJob) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "no recommendations")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCORE\tSKILL\tEXP\tLOC\tTYPE\tJOB\tREASON")
	for _, sj := range items {
		b := sj.Breakdown
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%s at %s\t%s\n",
			sj.TotalScore, b.SkillMatch, b.ExperienceMatch, b.LocationMatch, b.JobTypeMatch,
			sj.Job.Title, sj.Job.Company, sj.Reason)
	}
	return tw.Flush()
}
