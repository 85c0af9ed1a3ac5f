package ytdlp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// The user agent the comment dump is issued with. Matches a mainstream
// browser so comment extraction is less likely to hit bot checks.
const dumpUserAgent = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:141.0) Gecko/20100101 Firefox/141.0"

type ListOptions struct {
	ChannelID   string
	CookiesPath string
}

type DumpOptions struct {
	ChannelID   string
	VideoID     string
	CookiesPath string
}

// Video is one entry of a channel's flat-playlist listing, in the order
// the service reported it.
type Video struct {
	ID    string
	Title string
	URL   string
}

// CommentDump is the parsed result of a single-video comment fetch.
type CommentDump struct {
	VideoID    string
	UploadDate string
	// Comments is the raw comments array from the video metadata. Never
	// nil: videos without comments yield an empty array.
	Comments json.RawMessage
}

type DependencyReport struct {
	YTDLPFound bool   `json:"yt_dlp_found"`
	YTDLPPath  string `json:"yt_dlp_path,omitempty"`
}

func DependencyStatus() DependencyReport {
	report := DependencyReport{}
	if path, err := exec.LookPath("yt-dlp"); err == nil {
		report.YTDLPFound = true
		report.YTDLPPath = path
	}
	return report
}

func CheckDependencies() error {
	if !DependencyStatus().YTDLPFound {
		return fmt.Errorf("missing dependency: yt-dlp is not installed or not on PATH")
	}
	return nil
}

func ChannelURL(channelID string) string {
	return "https://www.youtube.com/channel/" + channelID
}

func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

// ChannelVideos lists a channel's videos via a flat-playlist probe, in the
// order the service returned them.
func ChannelVideos(opts ListOptions) ([]Video, error) {
	if strings.TrimSpace(opts.ChannelID) == "" {
		return nil, fmt.Errorf("channel ID is required")
	}

	args := []string{"--flat-playlist", "--skip-download", "-J"}
	args, err := appendCookiesArgs(args, opts.CookiesPath)
	if err != nil {
		return nil, err
	}
	args = append(args, ChannelURL(opts.ChannelID))

	raw, err := runYTDLP(args)
	if err != nil {
		return nil, err
	}
	return parseFlatPlaylist(raw)
}

// DumpComments fetches the full metadata of a single video, comments
// included, and extracts the comments array plus the naming metadata.
func DumpComments(opts DumpOptions) (CommentDump, error) {
	if strings.TrimSpace(opts.VideoID) == "" {
		return CommentDump{}, fmt.Errorf("video ID is required")
	}

	args := []string{
		"--skip-download",
		"--write-comments",
		"--dump-json",
		"--user-agent", dumpUserAgent,
	}
	args, err := appendCookiesArgs(args, opts.CookiesPath)
	if err != nil {
		return CommentDump{}, err
	}
	args = append(args, WatchURL(opts.VideoID))

	raw, err := runYTDLP(args)
	if err != nil {
		return CommentDump{}, err
	}
	return parseCommentDump(raw, opts.VideoID)
}

func runYTDLP(args []string) ([]byte, error) {
	cmd := exec.Command("yt-dlp", args...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("yt-dlp failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	if stdout.Len() == 0 {
		return nil, fmt.Errorf("yt-dlp returned empty output")
	}
	return stdout.Bytes(), nil
}

type flatPlaylist struct {
	ID      string      `json:"id"`
	Title   string      `json:"title"`
	Entries []flatEntry `json:"entries"`
}

type flatEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

func parseFlatPlaylist(raw []byte) ([]Video, error) {
	var pl flatPlaylist
	if err := json.Unmarshal(raw, &pl); err != nil {
		return nil, fmt.Errorf("parse flat-playlist output: %w", err)
	}

	videos := make([]Video, 0, len(pl.Entries))
	for _, e := range pl.Entries {
		id := strings.TrimSpace(e.ID)
		if extracted, ok := ExtractVideoID(id); ok {
			id = extracted
		} else if extracted, ok := ExtractVideoID(e.URL); ok {
			id = extracted
		}
		if id == "" {
			continue
		}
		videos = append(videos, Video{ID: id, Title: e.Title, URL: e.URL})
	}
	return videos, nil
}

type videoMetadata struct {
	ID         string          `json:"id"`
	UploadDate string          `json:"upload_date"`
	Comments   json.RawMessage `json:"comments"`
}

func parseCommentDump(raw []byte, fallbackVideoID string) (CommentDump, error) {
	var meta videoMetadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return CommentDump{}, fmt.Errorf("parse video metadata: %w", err)
	}

	dump := CommentDump{
		VideoID:    strings.TrimSpace(meta.ID),
		UploadDate: strings.TrimSpace(meta.UploadDate),
		Comments:   meta.Comments,
	}
	if dump.VideoID == "" {
		dump.VideoID = fallbackVideoID
	}
	if len(dump.Comments) == 0 || string(dump.Comments) == "null" {
		dump.Comments = json.RawMessage(`[]`)
	}
	return dump, nil
}

func appendCookiesArgs(args []string, cookiesPath string) ([]string, error) {
	if strings.TrimSpace(cookiesPath) == "" {
		return args, nil
	}
	resolved, err := ResolveCookiesPath(cookiesPath)
	if err != nil {
		return nil, err
	}
	return append(args, "--cookies", resolved), nil
}

func ResolveCookiesPath(path string) (string, error) {
	p := strings.TrimSpace(path)
	if p == "" {
		return "", nil
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolve cookies path %s: %w", p, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("cookies file %s: %w", abs, err)
	}
	return abs, nil
}
