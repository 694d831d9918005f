package types

import "errors"

var (
	// ErrStorageUnavailable is returned when the store can't be reached before a refresh starts.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrRefreshInProgress is returned when a refresh is requested while another one is running.
	ErrRefreshInProgress = errors.New("refresh already in progress")
)

// FailureKind classifies why a single netuid could not be synced.
type FailureKind string

const (
	FailureUpstreamUnavailable FailureKind = "upstream_unavailable"
	FailureUpstreamMalformed   FailureKind = "upstream_malformed"
	FailureStorageWrite        FailureKind = "storage_write"
)

func (k FailureKind) String() string {
	return string(k)
}

type RefreshFailure struct {
	Netuid  uint32      `json:"netuid"`
	Message string      `json:"message"`
	Kind    FailureKind `json:"kind"`
}

// RefreshSummary is the outcome of one refresh run.
// Failed always equals len(Errors) and Errors keep processing order.
type RefreshSummary struct {
	OK     int              `json:"ok"`
	Failed int              `json:"failed"`
	Errors []RefreshFailure `json:"errors"`
}

func NewRefreshSummary() *RefreshSummary {
	return &RefreshSummary{
		Errors: []RefreshFailure{},
	}
}

func (s *RefreshSummary) RecordSuccess() {
	s.OK++
}

func (s *RefreshSummary) RecordFailure(netuid uint32, kind FailureKind, err error) {
	s.Failed++
	s.Errors = append(s.Errors, RefreshFailure{
		Netuid:  netuid,
		Message: err.Error(),
		Kind:    kind,
	})
}
