package model

// WorkItem is one (channel, video) unit of comment-fetch work. Items are
// immutable once enqueued and consumed by exactly one worker.
type WorkItem struct {
	ChannelID string
	VideoID   string
	// Ordinal is the 1-based position within the channel's listing, in the
	// order the listing service reported it.
	Ordinal int
	// DumpDir is the channel directory under the output root where the
	// comment dump for this video lives.
	DumpDir string
}

// Outcome is the result a worker produced for a single WorkItem.
type Outcome struct {
	Item   WorkItem
	Kind   string
	Reason string
	Err    error
}

// RunReport is the persisted end-of-run summary, one file per invocation
// under <output>/.runs/.
type RunReport struct {
	SchemaVersion   int              `json:"schema_version"`
	RunID           string           `json:"run_id"`
	StartedAt       string           `json:"started_at"`
	FinishedAt      string           `json:"finished_at"`
	OutputRoot      string           `json:"output_root"`
	Channels        int              `json:"channels"`
	Total           int              `json:"total"`
	Fetched         int              `json:"fetched"`
	Skipped         int              `json:"skipped"`
	Failed          int              `json:"failed"`
	FailedItems     []FailedItem     `json:"failed_items,omitempty"`
	ListingFailures []ListingFailure `json:"listing_failures,omitempty"`
}

type FailedItem struct {
	ChannelID string `json:"channel_id"`
	VideoID   string `json:"video_id"`
	Error     string `json:"error"`
}

type ListingFailure struct {
	ChannelID string `json:"channel_id"`
	Error     string `json:"error"`
}
