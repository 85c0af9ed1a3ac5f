package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Comment dumps live at <root>/<channelID>/<videoID>_<uploadDate>.json.
// The video ID prefix is the resumption key; the upload date suffix is
// informational and not inspected.

const UnknownUploadDate = "00000000"

func ChannelDir(root, channelID string) string {
	return filepath.Join(root, channelID)
}

func DumpFileName(videoID, uploadDate string) string {
	if strings.TrimSpace(uploadDate) == "" {
		uploadDate = UnknownUploadDate
	}
	return videoID + "_" + uploadDate + ".json"
}

func DumpPath(dir, videoID, uploadDate string) string {
	return filepath.Join(dir, DumpFileName(videoID, uploadDate))
}

// FindDump returns the path of the dump file for videoID in dir, if one
// exists. Any upload-date suffix matches.
func FindDump(dir, videoID string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	prefix := videoID + "_"
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, prefix) && strings.HasSuffix(name, ".json") {
			return filepath.Join(dir, name), true
		}
	}
	return "", false
}

// DumpComplete reports whether a complete comment dump exists for videoID
// in dir: the file must exist, be non-empty, and parse as JSON. Anything
// ambiguous (empty, truncated, corrupt) counts as not complete so the
// video is fetched again rather than silently missing data.
func DumpComplete(dir, videoID string) bool {
	path, ok := FindDump(dir, videoID)
	if !ok {
		return false
	}
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return false
	}
	return json.Valid(data)
}
