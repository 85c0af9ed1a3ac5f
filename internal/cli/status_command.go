package cli

import (
	"flag"
	"fmt"
	"strings"

	"yt-comment-archiver/internal/store"
)

type statusResult struct {
	OutputRoot string               `json:"output_root"`
	Channels   []store.ChannelDumps `json:"channels"`
	TotalDumps int                  `json:"total_dumps"`
}

func runStatus(args []string) error {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	output := fs.String("output", "", "root output folder (required)")
	jsonOut := fs.Bool("json", false, "print JSON output")

	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}
	root := strings.TrimSpace(*output)
	if root == "" {
		return fmt.Errorf("--output is required")
	}

	channels, err := store.ScanRoot(root)
	if err != nil {
		return err
	}
	total := 0
	for _, c := range channels {
		total += c.Dumps
	}

	if *jsonOut {
		return printJSON(statusResult{OutputRoot: root, Channels: channels, TotalDumps: total})
	}

	fmt.Printf("status for %s\n", root)
	for _, c := range channels {
		fmt.Printf("  %-28s %d\n", c.ChannelID, c.Dumps)
	}
	fmt.Printf("channels: %d\n", len(channels))
	fmt.Printf("dumps: %d\n", total)
	return nil
}
