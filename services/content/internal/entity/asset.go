package entity

import "io"

type AssetOutcome int

const (
	AssetSucceeded AssetOutcome = iota
	AssetFailed
)

func (o AssetOutcome) String() string {
	if o == AssetSucceeded {
		return "success"
	}
	return "failed"
}

// ImageFile is an uploaded image waiting to be pushed to the asset store.
type ImageFile struct {
	Name        string
	ContentType string
	Body        io.Reader
}

// AssetResult is the outcome of a best-effort asset store call. Callers log
// a failed result and carry on.
type AssetResult struct {
	Outcome    AssetOutcome
	URL        string
	StorageKey string
	Reason     error
}

func AssetSuccess(url, storageKey string) AssetResult {
	return AssetResult{Outcome: AssetSucceeded, URL: url, StorageKey: storageKey}
}

func AssetFailure(reason error) AssetResult {
	return AssetResult{Outcome: AssetFailed, Reason: reason}
}

func (r AssetResult) Succeeded() bool {
	return r.Outcome == AssetSucceeded
}
