package collect

import (
	"time"

	"yt-comment-archiver/internal/model"
)

// Summary aggregates per-item outcomes for a run. It is owned by the
// coordinating goroutine; workers publish outcomes through a channel and
// never touch it directly.
type Summary struct {
	RunID           string
	OutputRoot      string
	Channels        int
	Total           int
	Fetched         int
	Skipped         int
	Failed          int
	FailedItems     []model.FailedItem
	ListingFailures []model.ListingFailure
	StartedAt       time.Time
	FinishedAt      time.Time
}

func (s *Summary) add(o model.Outcome) {
	s.Total++
	switch o.Kind {
	case model.OutcomeFetched:
		s.Fetched++
	case model.OutcomeSkipped:
		s.Skipped++
	case model.OutcomeFailed:
		s.Failed++
		errText := ""
		if o.Err != nil {
			errText = o.Err.Error()
		}
		s.FailedItems = append(s.FailedItems, model.FailedItem{
			ChannelID: o.Item.ChannelID,
			VideoID:   o.Item.VideoID,
			Error:     errText,
		})
	}
}

func (s Summary) Report() model.RunReport {
	return model.RunReport{
		SchemaVersion:   1,
		RunID:           s.RunID,
		StartedAt:       s.StartedAt.Format(time.RFC3339),
		FinishedAt:      s.FinishedAt.Format(time.RFC3339),
		OutputRoot:      s.OutputRoot,
		Channels:        s.Channels,
		Total:           s.Total,
		Fetched:         s.Fetched,
		Skipped:         s.Skipped,
		Failed:          s.Failed,
		FailedItems:     s.FailedItems,
		ListingFailures: s.ListingFailures,
	}
}
