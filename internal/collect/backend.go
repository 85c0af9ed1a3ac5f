package collect

import (
	"bytes"
	"encoding/json"
	"fmt"

	"yt-comment-archiver/internal/model"
	"yt-comment-archiver/internal/store"
	"yt-comment-archiver/internal/ytdlp"
)

// Backend is the production Lister and Fetcher over the yt-dlp subprocess.
type Backend struct {
	CookiesPath string
}

func NewBackend(cookiesPath string) Backend {
	return Backend{CookiesPath: cookiesPath}
}

func (b Backend) ListVideos(channelID string) ([]string, error) {
	videos, err := ytdlp.ChannelVideos(ytdlp.ListOptions{
		ChannelID:   channelID,
		CookiesPath: b.CookiesPath,
	})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(videos))
	for _, v := range videos {
		ids = append(ids, v.ID)
	}
	return ids, nil
}

// FetchComments dumps a video's comments and writes them atomically to
// the item's channel directory. The dump lands via temp-then-rename, so
// an interrupted fetch never leaves a file the completeness check of a
// later run would accept.
func (b Backend) FetchComments(item model.WorkItem) error {
	dump, err := ytdlp.DumpComments(ytdlp.DumpOptions{
		ChannelID:   item.ChannelID,
		VideoID:     item.VideoID,
		CookiesPath: b.CookiesPath,
	})
	if err != nil {
		return err
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, dump.Comments, "", "  "); err != nil {
		return fmt.Errorf("format comments for %s: %w", item.VideoID, err)
	}
	pretty.WriteByte('\n')

	// The queue's video ID keys the file so the resumption check and the
	// dump always agree, even if the metadata reports a variant ID.
	path := store.DumpPath(item.DumpDir, item.VideoID, dump.UploadDate)
	return store.WriteBytes(path, pretty.Bytes())
}
