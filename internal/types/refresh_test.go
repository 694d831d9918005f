package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefreshSummary(t *testing.T) {
	summary := NewRefreshSummary()
	assert.NotNil(t, summary.Errors)
	assert.Empty(t, summary.Errors)

	summary.RecordSuccess()
	summary.RecordFailure(6, FailureUpstreamMalformed, errors.New("no data"))
	summary.RecordFailure(9, FailureStorageWrite, errors.New("write failed"))
	summary.RecordSuccess()

	assert.Equal(t, 2, summary.OK)
	assert.Equal(t, 2, summary.Failed)
	assert.Equal(t, []RefreshFailure{
		{Netuid: 6, Message: "no data", Kind: FailureUpstreamMalformed},
		{Netuid: 9, Message: "write failed", Kind: FailureStorageWrite},
	}, summary.Errors)
}
