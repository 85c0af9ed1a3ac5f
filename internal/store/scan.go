package store

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

type ChannelDumps struct {
	ChannelID string `json:"channel_id"`
	Dumps     int    `json:"dumps"`
}

// ScanRoot walks an output root and counts comment dumps per channel
// directory. Internal bookkeeping directories are skipped.
func ScanRoot(root string) ([]ChannelDumps, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read output root %s: %w", root, err)
	}

	channels := make([]ChannelDumps, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		dir := ChannelDir(root, e.Name())
		files, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("read channel directory %s: %w", dir, err)
		}
		count := 0
		for _, f := range files {
			if !f.IsDir() && strings.HasSuffix(f.Name(), ".json") {
				count++
			}
		}
		channels = append(channels, ChannelDumps{ChannelID: e.Name(), Dumps: count})
	}
	sort.Slice(channels, func(i, j int) bool { return channels[i].ChannelID < channels[j].ChannelID })
	return channels, nil
}
