package collect

import "fmt"

// ListingError marks one channel's enumeration as failed. The channel
// contributes no work; the run continues.
type ListingError struct {
	ChannelID string
	Err       error
}

func (e *ListingError) Error() string {
	return fmt.Sprintf("list videos for channel %s: %v", e.ChannelID, e.Err)
}

func (e *ListingError) Unwrap() error { return e.Err }

// FetchError marks one video's comment fetch as failed. It is recorded in
// the summary; the run continues.
type FetchError struct {
	ChannelID string
	VideoID   string
	Err       error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch comments for %s/%s: %v", e.ChannelID, e.VideoID, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
