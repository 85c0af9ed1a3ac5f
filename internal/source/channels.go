package source

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

type Options struct {
	// Inline channel IDs, in command-line order.
	Inline []string
	// FilePath names an optional file with one channel ID per line. Blank
	// lines and lines starting with '#' are ignored.
	FilePath string
}

// Collect merges inline and file channel IDs in first-seen order, dropping
// duplicates across both origins. An empty result is an error: there is
// nothing to process.
func Collect(opts Options) ([]string, error) {
	combined := make([]string, 0, len(opts.Inline))
	for _, id := range opts.Inline {
		if s := strings.TrimSpace(id); s != "" {
			combined = append(combined, s)
		}
	}

	if strings.TrimSpace(opts.FilePath) != "" {
		fileIDs, err := readChannelsFile(opts.FilePath)
		if err != nil {
			return nil, err
		}
		combined = append(combined, fileIDs...)
	}

	channels := dedupePreserveOrder(combined)
	if len(channels) == 0 {
		return nil, fmt.Errorf("no channel IDs provided: pass --channel_ids and/or --channels_file with at least one channel")
	}
	return channels, nil
}

func readChannelsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open channels file %s: %w", path, err)
	}
	defer f.Close()

	ids := make([]string, 0)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ids = append(ids, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read channels file %s: %w", path, err)
	}
	return ids, nil
}

func dedupePreserveOrder(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
