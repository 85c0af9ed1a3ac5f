package cli

import (
	"fmt"
	"strings"
)

func Run(args []string) error {
	if len(args) == 0 {
		printRootUsage()
		return nil
	}

	// Bare flags keep the original single-command invocation shape working.
	if strings.HasPrefix(args[0], "-") && args[0] != "-h" && args[0] != "--help" {
		return runFetch(args)
	}

	var err error
	switch args[0] {
	case "fetch":
		err = runFetch(args[1:])
	case "status":
		err = runStatus(args[1:])
	case "doctor":
		err = runDoctor(args[1:])
	case "help", "-h", "--help":
		printRootUsage()
		return nil
	default:
		printRootUsage()
		return fmt.Errorf("unknown command %q", args[0])
	}

	return err
}

func printRootUsage() {
	fmt.Println("yt-comment-archiver: resumable YouTube channel comment collector")
	fmt.Println()
	fmt.Println("Quick Start:")
	fmt.Println("  yt-comment-archiver fetch --channel_ids UC123,UC456 --output ./comments")
	fmt.Println("  yt-comment-archiver fetch --channels_file channels.txt --output ./comments")
	fmt.Println("  yt-comment-archiver status --output ./comments")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  fetch   list each channel's videos and download per-video comment dumps")
	fmt.Println("  status  per-channel dump counts for an output root")
	fmt.Println("  doctor  dependency and output-root preflight checks")
	fmt.Println()
	fmt.Println("Notes:")
	fmt.Println("  - Re-running fetch skips videos whose dump is already complete;")
	fmt.Println("    re-invocation is the retry mechanism for failed videos")
	fmt.Println("  - Use --json on commands for machine-readable output")
}
