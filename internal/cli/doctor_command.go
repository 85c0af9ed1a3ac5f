package cli

import (
	"flag"
	"fmt"
	"strings"

	"yt-comment-archiver/internal/store"
	"yt-comment-archiver/internal/ytdlp"
)

type doctorResult struct {
	ytdlp.DependencyReport
	OutputRoot     string `json:"output_root,omitempty"`
	OutputWritable *bool  `json:"output_writable,omitempty"`
}

func runDoctor(args []string) error {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	output := fs.String("output", "", "output root to check for writability (optional)")
	jsonOut := fs.Bool("json", false, "print JSON output")

	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}

	result := doctorResult{DependencyReport: ytdlp.DependencyStatus()}

	var writeErr error
	if root := strings.TrimSpace(*output); root != "" {
		result.OutputRoot = root
		writeErr = store.CheckWritable(root)
		writable := writeErr == nil
		result.OutputWritable = &writable
	}

	if *jsonOut {
		if err := printJSON(result); err != nil {
			return err
		}
	} else {
		if result.YTDLPFound {
			fmt.Printf("yt-dlp: found (%s)\n", result.YTDLPPath)
		} else {
			fmt.Println("yt-dlp: NOT FOUND on PATH")
		}
		if result.OutputWritable != nil {
			if *result.OutputWritable {
				fmt.Printf("output: %s writable\n", result.OutputRoot)
			} else {
				fmt.Printf("output: %s NOT writable: %v\n", result.OutputRoot, writeErr)
			}
		}
	}

	if !result.YTDLPFound {
		return fmt.Errorf("missing dependency: yt-dlp is not installed or not on PATH")
	}
	if writeErr != nil {
		return writeErr
	}
	return nil
}
