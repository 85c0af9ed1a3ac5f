package ytdlp

import (
	"net/url"
	"regexp"
	"strings"
)

var videoIDPattern = regexp.MustCompile(`^[0-9A-Za-z_-]{11}$`)

// ExtractVideoID normalizes a bare video ID or any of the common watch URL
// forms (watch?v=, youtu.be/, /shorts/, /embed/) to the canonical 11-char
// video ID. Returns false when no ID can be detected.
func ExtractVideoID(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if videoIDPattern.MatchString(s) {
		return s, true
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return "", false
	}

	parsed, err := url.Parse(s)
	if err != nil {
		return "", false
	}
	host := strings.ToLower(parsed.Hostname())
	path := parsed.Path

	switch {
	case host == "youtu.be":
		candidate := strings.TrimPrefix(path, "/")
		if videoIDPattern.MatchString(candidate) {
			return candidate, true
		}
	case strings.HasSuffix(host, "youtube.com"):
		if path == "/watch" {
			if v := parsed.Query().Get("v"); videoIDPattern.MatchString(v) {
				return v, true
			}
			return "", false
		}
		for _, prefix := range []string{"/shorts/", "/embed/"} {
			if strings.HasPrefix(path, prefix) {
				candidate := strings.SplitN(strings.TrimPrefix(path, prefix), "/", 2)[0]
				if videoIDPattern.MatchString(candidate) {
					return candidate, true
				}
			}
		}
	}
	return "", false
}
