package model

const (
	OutcomeFetched = "fetched"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
)

const ReasonAlreadyComplete = "already_complete"

func IsKnownOutcome(kind string) bool {
	switch kind {
	case OutcomeFetched, OutcomeSkipped, OutcomeFailed:
		return true
	default:
		return false
	}
}

func Fetched(item WorkItem) Outcome {
	return Outcome{Item: item, Kind: OutcomeFetched}
}

func Skipped(item WorkItem, reason string) Outcome {
	return Outcome{Item: item, Kind: OutcomeSkipped, Reason: reason}
}

func Failed(item WorkItem, err error) Outcome {
	return Outcome{Item: item, Kind: OutcomeFailed, Err: err}
}
