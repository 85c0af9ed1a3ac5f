package collect

import (
	"fmt"
	"os"
	"sync"

	"yt-comment-archiver/internal/model"
)

// Events receives run progress. Calls arrive from the listing goroutine
// and from workers concurrently; implementations must be safe for that.
type Events interface {
	ChannelListed(channelID string, videos int)
	ChannelFailed(channelID string, err error)
	ItemStarted(workerID int, item model.WorkItem)
	ItemFinished(workerID int, outcome model.Outcome)
	Done(summary Summary)
}

type NopEvents struct{}

func (NopEvents) ChannelListed(string, int)       {}
func (NopEvents) ChannelFailed(string, error)     {}
func (NopEvents) ItemStarted(int, model.WorkItem) {}
func (NopEvents) ItemFinished(int, model.Outcome) {}
func (NopEvents) Done(Summary)                    {}

// LogEvents prints one plain line per event, for runs without the live
// dashboard.
type LogEvents struct {
	mu     sync.Mutex
	listed int
	done   int
}

func NewLogEvents() *LogEvents {
	return &LogEvents{}
}

func (l *LogEvents) ChannelListed(channelID string, videos int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listed += videos
	fmt.Printf("[list] %s: %d videos\n", channelID, videos)
}

func (l *LogEvents) ChannelFailed(channelID string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(os.Stderr, "[list] %s failed: %v\n", channelID, err)
}

func (l *LogEvents) ItemStarted(workerID int, item model.WorkItem) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Printf("[w%d] start %s/%s\n", workerID, item.ChannelID, item.VideoID)
}

func (l *LogEvents) ItemFinished(workerID int, outcome model.Outcome) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.done++
	switch outcome.Kind {
	case model.OutcomeFetched:
		fmt.Printf("[w%d %d/%d] done  %s\n", workerID, l.done, l.listed, outcome.Item.VideoID)
	case model.OutcomeSkipped:
		fmt.Printf("[w%d %d/%d] skip  %s\n", workerID, l.done, l.listed, outcome.Item.VideoID)
	case model.OutcomeFailed:
		fmt.Printf("[w%d %d/%d] fail  %s: %v\n", workerID, l.done, l.listed, outcome.Item.VideoID, outcome.Err)
	}
}

func (l *LogEvents) Done(Summary) {}
