package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amishk599/careernav/internal/ranker"
)

var (
	certFilter string
	certSort   string
)

var certsCmd = &cobra.Command{
	Use:   "certs",
	Short: "Print ranked certification recommendations",
	Long:  "Fetches recommendations for --profile and prints certifications filtered by cost and sorted by relevance, cost or duration.",
	RunE:  runCerts,
}

func init() {
	certsCmd.Flags().StringVar(&certFilter, "filter", "", "cost filter: all, free or paid (default from config)")
	certsCmd.Flags().StringVar(&certSort, "sort", "", "sort key: relevance, cost or duration (default from config)")
	rootCmd.AddCommand(certsCmd)
}

func runCerts(cmd *cobra.Command, args []string) error {
	var filter ranker.CostFilter
	var sortKey ranker.SortKey
	var err error
	if certFilter != "" {
		if filter, err = ranker.ParseFilter(certFilter); err != nil {
			return err
		}
	}
	if certSort != "" {
		if sortKey, err = ranker.ParseSortKey(certSort); err != nil {
			return err
		}
	}

	cfg, _, snap, err := fetchSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if filter == "" {
		filter = cfg.Dashboard.DefaultFilter
	}
	if sortKey == "" {
		sortKey = cfg.Dashboard.DefaultSort
	}

	ranked := ranker.Rank(snap.Certifications, snap.SkillGaps, filter, sortKey)
	if len(ranked) == 0 {
		fmt.Println("No certification recommendations available. Try updating your profile with more details.")
		return nil
	}
	missing := ranker.MissingSkills(snap.SkillGaps)

	fmt.Printf("%-40s %-18s %-12s %-12s %s\n", "Certification", "Provider", "Cost", "Duration", "Relevance")
	fmt.Println(strings.Repeat("─", 96))
	for _, c := range ranked {
		pct := ranker.RelevancePercent(c.Certification, c.Score, missing)
		fmt.Printf("%-40s %-18s %-12s %-12s %3d%% (%d skills)\n",
			truncate(c.Name, 40), truncate(c.Provider, 18), c.Cost, c.Duration, pct, c.Score)
	}

	fmt.Printf("\nShowing %d of %d certifications (filter: %s, sort: %s)\n", len(ranked), len(snap.Certifications), filter, sortKey)
	return nil
}

// truncate shortens s to n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
