package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"yt-comment-archiver/internal/collect"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().Bold(true)
	summaryFailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printSummary(s collect.Summary) {
	fmt.Println(summaryTitleStyle.Render("fetch summary"))
	fmt.Printf("run_id: %s\n", s.RunID)
	fmt.Printf("channels: %d\n", s.Channels)
	fmt.Printf("videos: %d\n", s.Total)
	fmt.Printf("fetched: %d\n", s.Fetched)
	fmt.Printf("skipped: %d\n", s.Skipped)
	fmt.Printf("failed: %d\n", s.Failed)
	fmt.Printf("elapsed: %s\n", s.FinishedAt.Sub(s.StartedAt).Round(time.Millisecond))

	for _, lf := range s.ListingFailures {
		fmt.Println(summaryFailStyle.Render(fmt.Sprintf("listing failed %s: %s", lf.ChannelID, lf.Error)))
	}
	for _, fi := range s.FailedItems {
		fmt.Println(summaryFailStyle.Render(fmt.Sprintf("failed %s/%s: %s", fi.ChannelID, fi.VideoID, fi.Error)))
	}
}
