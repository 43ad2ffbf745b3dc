package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amishk599/careernav/internal/career"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Print job matches for a profile",
	Long:  "Fetches recommendations for --profile and prints each job with its match and how many of its required skills you already have.",
	RunE:  runJobs,
}

func init() {
	rootCmd.AddCommand(jobsCmd)
}

func runJobs(cmd *cobra.Command, args []string) error {
	_, profile, snap, err := fetchSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if len(snap.JobRecommendations) == 0 {
		fmt.Println("No job matches found. Try updating your profile with more skills and experience.")
		return nil
	}

	fmt.Printf("Hi %s, here are your personalized career recommendations\n\n", career.FirstName(profile.Name))
	fmt.Printf("%-32s %-20s %-8s %-10s %s\n", "Job", "Company", "Match", "Skills", "To Develop")
	fmt.Println(strings.Repeat("─", 96))
	for _, j := range snap.JobRecommendations {
		m := career.MatchSkills(profile, j)
		fmt.Printf("%-32s %-20s %-8s %-10s %s\n",
			truncate(j.Title, 32),
			truncate(j.Company, 20),
			fmt.Sprintf("%d%%", j.MatchPercentage),
			fmt.Sprintf("%d/%d", len(m.Matched), m.Required),
			strings.Join(m.ToDevelop, ", "),
		)
	}

	fmt.Printf("\nTotal: %d jobs\n", len(snap.JobRecommendations))
	return nil
}
