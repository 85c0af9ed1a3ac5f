package cli

import (
	"flag"
	"fmt"
	"strings"

	"yt-comment-archiver/internal/collect"
	"yt-comment-archiver/internal/config"
	"yt-comment-archiver/internal/source"
	"yt-comment-archiver/internal/ytdlp"
)

// idListFlag accepts comma-separated channel IDs and may be repeated.
type idListFlag []string

func (f *idListFlag) String() string {
	return strings.Join(*f, ",")
}

func (f *idListFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		if s := strings.TrimSpace(part); s != "" {
			*f = append(*f, s)
		}
	}
	return nil
}

func runFetch(args []string) error {
	fs := flag.NewFlagSet("fetch", flag.ContinueOnError)
	var channelIDs idListFlag
	fs.Var(&channelIDs, "channel_ids", "channel ID(s), comma-separated; may be repeated")
	channelsFile := fs.String("channels_file", "", "file with one channel ID per line (lines starting with # are ignored)")
	output := fs.String("output", "", "root output folder (required)")
	numThreads := fs.Int("num_threads", 0, "number of parallel fetch workers (default 4)")
	cookies := fs.String("cookies", "", "path to a cookies file (e.g. cookies.txt)")
	configPath := fs.String("config", "", "optional YAML defaults file")
	progressFlag := fs.Bool("progress", true, "show live progress dashboard")
	jsonOut := fs.Bool("json", false, "print JSON summary")

	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}

	var cfg config.Config
	if strings.TrimSpace(*configPath) != "" {
		loaded, err := config.Load(strings.TrimSpace(*configPath))
		if err != nil {
			return err
		}
		cfg = loaded
	}

	outputRoot := firstNonEmpty(strings.TrimSpace(*output), cfg.Output)
	if outputRoot == "" {
		return fmt.Errorf("--output is required")
	}

	if flagWasSet(fs, "num_threads") && *numThreads < 1 {
		return fmt.Errorf("--num_threads must be >= 1")
	}
	workers := firstNonZero(*numThreads, cfg.NumThreads, collect.DefaultWorkers)

	cookiesPath := firstNonEmpty(strings.TrimSpace(*cookies), cfg.Cookies)
	if cookiesPath != "" {
		if _, err := ytdlp.ResolveCookiesPath(cookiesPath); err != nil {
			return err
		}
	}

	channels, err := source.Collect(source.Options{
		Inline:   channelIDs,
		FilePath: strings.TrimSpace(*channelsFile),
	})
	if err != nil {
		return err
	}

	if err := ytdlp.CheckDependencies(); err != nil {
		return err
	}

	progressEnabled := *progressFlag
	if cfg.Progress != nil && !flagWasSet(fs, "progress") {
		progressEnabled = *cfg.Progress
	}

	var events collect.Events
	switch {
	case *jsonOut:
		events = collect.NopEvents{}
	case progressEnabled:
		events = collect.NewDashboard(workers)
	default:
		events = collect.NewLogEvents()
	}

	backend := collect.NewBackend(cookiesPath)
	summary, err := collect.Run(collect.Options{
		OutputRoot: outputRoot,
		Channels:   channels,
		Workers:    workers,
		Lister:     backend,
		Fetcher:    backend,
		Events:     events,
	})
	if err != nil {
		return err
	}

	// Per-video and per-channel failures are reported in the summary but
	// never fail the invocation; re-running retries them.
	if *jsonOut {
		return printJSON(summary.Report())
	}
	printSummary(summary)
	return nil
}

func flagWasSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func firstNonZero(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
