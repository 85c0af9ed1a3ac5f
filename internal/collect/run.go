package collect

import (
	"fmt"
	"sync"
	"time"

	"yt-comment-archiver/internal/model"
	"yt-comment-archiver/internal/store"
)

const DefaultWorkers = 4

// Lister enumerates a channel's videos in the order the external service
// reports them.
type Lister interface {
	ListVideos(channelID string) ([]string, error)
}

type ListerFunc func(channelID string) ([]string, error)

func (f ListerFunc) ListVideos(channelID string) ([]string, error) { return f(channelID) }

// Fetcher fetches one video's comments and persists the dump at the work
// item's output location.
type Fetcher interface {
	FetchComments(item model.WorkItem) error
}

type FetcherFunc func(item model.WorkItem) error

func (f FetcherFunc) FetchComments(item model.WorkItem) error { return f(item) }

type Options struct {
	OutputRoot string
	// Channels in input order, already deduplicated.
	Channels []string
	// Workers is the fetch concurrency; <= 0 means DefaultWorkers.
	Workers int
	Lister  Lister
	Fetcher Fetcher
	// Complete decides whether a work item's output already represents a
	// finished fetch. Nil means the on-disk dump check.
	Complete func(item model.WorkItem) bool
	// Events receives run progress; nil means no reporting.
	Events Events
}

// Run drives a full collection pass: channels are listed sequentially in
// input order and feed the shared queue while N workers drain it. A
// channel's listing failure or a video's fetch failure never aborts the
// run; both are recorded in the summary. Resumption is derived purely
// from dump files on disk, so re-invoking after a partial run skips
// everything already complete.
func Run(opts Options) (Summary, error) {
	if len(opts.Channels) == 0 {
		return Summary{}, fmt.Errorf("no channels to process")
	}
	if opts.Lister == nil || opts.Fetcher == nil {
		return Summary{}, fmt.Errorf("lister and fetcher are required")
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	complete := opts.Complete
	if complete == nil {
		complete = func(item model.WorkItem) bool {
			return store.DumpComplete(item.DumpDir, item.VideoID)
		}
	}
	events := opts.Events
	if events == nil {
		events = NopEvents{}
	}

	if err := store.CheckWritable(opts.OutputRoot); err != nil {
		return Summary{}, err
	}
	lock, err := store.AcquireOutputLock(opts.OutputRoot)
	if err != nil {
		return Summary{}, err
	}
	defer func() {
		_ = lock.Release()
	}()

	summary := Summary{
		RunID:      store.NewRunID(),
		OutputRoot: opts.OutputRoot,
		Channels:   len(opts.Channels),
		StartedAt:  time.Now().UTC(),
	}

	queue := NewQueue()
	outcomes := make(chan model.Outcome, workers)
	listingFailures := make(chan model.ListingFailure, len(opts.Channels))

	var wg sync.WaitGroup
	for w := 1; w <= workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for {
				item, ok := queue.Take()
				if !ok {
					return
				}
				events.ItemStarted(workerID, item)
				var outcome model.Outcome
				if complete(item) {
					outcome = model.Skipped(item, model.ReasonAlreadyComplete)
				} else if err := opts.Fetcher.FetchComments(item); err != nil {
					outcome = model.Failed(item, &FetchError{ChannelID: item.ChannelID, VideoID: item.VideoID, Err: err})
				} else {
					outcome = model.Fetched(item)
				}
				events.ItemFinished(workerID, outcome)
				outcomes <- outcome
			}
		}(w)
	}

	// Listing runs sequentially, one channel at a time, feeding the queue
	// while workers are already draining it. Closing the queue is the
	// signal that no more work will ever arrive, so it happens only after
	// every channel has been listed.
	go func() {
		for _, channelID := range opts.Channels {
			dir := store.ChannelDir(opts.OutputRoot, channelID)
			if err := store.Mkdir(dir); err != nil {
				lerr := &ListingError{ChannelID: channelID, Err: err}
				listingFailures <- model.ListingFailure{ChannelID: channelID, Error: lerr.Error()}
				events.ChannelFailed(channelID, lerr)
				continue
			}
			videoIDs, err := opts.Lister.ListVideos(channelID)
			if err != nil {
				lerr := &ListingError{ChannelID: channelID, Err: err}
				listingFailures <- model.ListingFailure{ChannelID: channelID, Error: lerr.Error()}
				events.ChannelFailed(channelID, lerr)
				continue
			}
			items := make([]model.WorkItem, 0, len(videoIDs))
			for i, videoID := range videoIDs {
				items = append(items, model.WorkItem{
					ChannelID: channelID,
					VideoID:   videoID,
					Ordinal:   i + 1,
					DumpDir:   dir,
				})
			}
			queue.Append(items...)
			events.ChannelListed(channelID, len(items))
		}
		queue.Close()
		close(listingFailures)
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	for outcome := range outcomes {
		summary.add(outcome)
	}
	// Workers only exit after the queue is closed, which in turn only
	// happens once listing has finished; the failures channel is complete.
	for lf := range listingFailures {
		summary.ListingFailures = append(summary.ListingFailures, lf)
	}
	summary.FinishedAt = time.Now().UTC()

	if err := store.SaveRunReport(opts.OutputRoot, summary.Report()); err != nil {
		return summary, err
	}
	events.Done(summary)
	return summary, nil
}
