package ytdlp

import (
	"path/filepath"
	"testing"
)

func TestParseFlatPlaylist(t *testing.T) {
	raw := []byte(`{
		"id": "UCchannel",
		"title": "Some Channel",
		"entries": [
			{"id": "dQw4w9WgXcQ", "title": "first", "url": "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
			{"id": "", "title": "from url", "url": "https://youtu.be/abcdefghijk"},
			{"id": "", "title": "unusable", "url": "https://example.com/nothing"}
		]
	}`)

	videos, err := parseFlatPlaylist(raw)
	if err != nil {
		t.Fatalf("parse flat playlist: %v", err)
	}
	if len(videos) != 2 {
		t.Fatalf("expected 2 usable entries, got %d", len(videos))
	}
	if videos[0].ID != "dQw4w9WgXcQ" || videos[1].ID != "abcdefghijk" {
		t.Fatalf("unexpected IDs: %+v", videos)
	}
}

func TestParseFlatPlaylist_Malformed(t *testing.T) {
	if _, err := parseFlatPlaylist([]byte(`{"entries": [`)); err == nil {
		t.Fatalf("expected error for malformed JSON")
	}
}

func TestParseCommentDump(t *testing.T) {
	raw := []byte(`{
		"id": "dQw4w9WgXcQ",
		"upload_date": "20091025",
		"comments": [{"id": "c1", "text": "never gonna"}]
	}`)

	dump, err := parseCommentDump(raw, "fallback1234")
	if err != nil {
		t.Fatalf("parse comment dump: %v", err)
	}
	if dump.VideoID != "dQw4w9WgXcQ" {
		t.Fatalf("unexpected video ID %q", dump.VideoID)
	}
	if dump.UploadDate != "20091025" {
		t.Fatalf("unexpected upload date %q", dump.UploadDate)
	}
	if len(dump.Comments) == 0 {
		t.Fatalf("expected comments payload")
	}
}

func TestParseCommentDump_MissingFields(t *testing.T) {
	dump, err := parseCommentDump([]byte(`{"comments": null}`), "fallbackvid")
	if err != nil {
		t.Fatalf("parse comment dump: %v", err)
	}
	if dump.VideoID != "fallbackvid" {
		t.Fatalf("expected fallback video ID, got %q", dump.VideoID)
	}
	if dump.UploadDate != "" {
		t.Fatalf("expected empty upload date, got %q", dump.UploadDate)
	}
	if string(dump.Comments) != `[]` {
		t.Fatalf("expected empty comments array, got %q", dump.Comments)
	}
}

func TestExtractVideoID(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"  dQw4w9WgXcQ  ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=30s", "dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ/extra", "dQw4w9WgXcQ", true},
		{"https://m.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"tooshort", "", false},
		{"waytoolongtobeavideoid", "", false},
		{"https://www.youtube.com/watch?list=PL123", "", false},
		{"https://example.com/watch?v=dQw4w9WgXcQ", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ExtractVideoID(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ExtractVideoID(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestResolveCookiesPath_MissingFile(t *testing.T) {
	if _, err := ResolveCookiesPath(filepath.Join(t.TempDir(), "cookies.txt")); err == nil {
		t.Fatalf("expected error for missing cookies file")
	}
}

func TestResolveCookiesPath_Empty(t *testing.T) {
	got, err := ResolveCookiesPath("   ")
	if err != nil || got != "" {
		t.Fatalf("expected empty path to resolve to empty, got %q err=%v", got, err)
	}
}
