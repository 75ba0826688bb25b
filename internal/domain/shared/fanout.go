package shared

// FanOutStatus classifies the result of a best-effort multi-document write.
// The persistence layer offers no transaction across these writes, so the
// caller must resynchronize from the source of truth on anything but
// FanOutAllSucceeded.
type FanOutStatus string

const (
	FanOutAllSucceeded   FanOutStatus = "allSucceeded"
	FanOutPartialFailure FanOutStatus = "partialFailure"
	FanOutAllFailed      FanOutStatus = "allFailed"
)

// FanOutResult reports the outcome of a fan-out of independent writes.
type FanOutResult struct {
	Status    FanOutStatus `json:"status"`
	Total     int          `json:"total"`
	FailedIDs []string     `json:"failedIds,omitempty"`
}

// NewFanOutResult derives the status from the total number of writes and
// the IDs that failed.
func NewFanOutResult(total int, failedIDs []string) FanOutResult {
	r := FanOutResult{
		Status:    FanOutAllSucceeded,
		Total:     total,
		FailedIDs: failedIDs,
	}
	switch {
	case len(failedIDs) == 0:
		r.Status = FanOutAllSucceeded
	case len(failedIDs) >= total && total > 0:
		r.Status = FanOutAllFailed
	default:
		r.Status = FanOutPartialFailure
	}
	return r
}

// Succeeded reports whether every write in the fan-out succeeded.
func (r FanOutResult) Succeeded() bool {
	return r.Status == FanOutAllSucceeded
}
