package store

import (
	"os"
	"path/filepath"
	"testing"

	"yt-comment-archiver/internal/model"
)

func TestScanRoot_CountsDumpsPerChannel(t *testing.T) {
	root := t.TempDir()
	writeDump := func(channel, name string) {
		dir := filepath.Join(root, channel)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), []byte(`[]`), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	writeDump("UCbbb", "vid00000001_20240101.json")
	writeDump("UCaaa", "vid00000002_20240102.json")
	writeDump("UCaaa", "vid00000003_20240103.json")

	// Bookkeeping directories must not show up as channels.
	if err := SaveRunReport(root, model.RunReport{RunID: NewRunID()}); err != nil {
		t.Fatalf("save run report: %v", err)
	}

	channels, err := ScanRoot(root)
	if err != nil {
		t.Fatalf("scan root: %v", err)
	}
	if len(channels) != 2 {
		t.Fatalf("expected 2 channels, got %+v", channels)
	}
	if channels[0].ChannelID != "UCaaa" || channels[0].Dumps != 2 {
		t.Fatalf("unexpected first channel: %+v", channels[0])
	}
	if channels[1].ChannelID != "UCbbb" || channels[1].Dumps != 1 {
		t.Fatalf("unexpected second channel: %+v", channels[1])
	}
}
