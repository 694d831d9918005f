//go:build e2e

package e2etest

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taodash/subnet-indexer/internal/db/model"
	"github.com/taodash/subnet-indexer/internal/types"
)

type refreshResponse struct {
	Message string `json:"message"`
	types.RefreshSummary
}

type listResponse struct {
	Data  []model.SubnetDocument `json:"data"`
	Total int                    `json:"total"`
}

func TestRefresh(t *testing.T) {
	const requestInterval = 50 * time.Millisecond

	tm := StartManager(t, requestInterval)
	defer tm.Stop(t)

	for netuid := uint32(1); netuid <= 128; netuid++ {
		tm.Upstream.SetSubnet(netuid, map[string]any{
			"name":           "subnet",
			"price":          "0.0105",
			"rank":           netuid,
			"timestamp":      "2025-02-13T12:00:00Z",
			"incentive_burn": 0.25,
		})
	}
	tm.Upstream.FailSubnet(10, http.StatusServiceUnavailable)
	tm.Upstream.SetSubnet(11, map[string]any{"name": "Apex", "price": json.Number("1.23456789012345678901")})
	tm.Upstream.FailSubnet(12, http.StatusBadGateway)

	var summary refreshResponse
	status := tm.Do(t, http.MethodPost, "/api/subnets/refresh", &summary)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Refresh complete", summary.Message)
	assert.Equal(t, 126, summary.OK)
	assert.Equal(t, 2, summary.Failed)
	require.Len(t, summary.Errors, 2)
	assert.Equal(t, uint32(10), summary.Errors[0].Netuid)
	assert.Equal(t, uint32(12), summary.Errors[1].Netuid)
	assert.Equal(t, types.FailureUpstreamUnavailable, summary.Errors[0].Kind)

	// requests never start closer than the configured interval
	times := tm.Upstream.RequestTimes()
	require.Len(t, times, 128)
	for i := 1; i < len(times); i++ {
		assert.GreaterOrEqual(t, times[i].Sub(times[i-1]), requestInterval)
	}

	var list listResponse
	status = tm.Do(t, http.MethodGet, "/api/subnets", &list)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 126, list.Total)
	for i := 1; i < len(list.Data); i++ {
		assert.Less(t, list.Data[i-1].Netuid, list.Data[i].Netuid)
	}

	var apex model.SubnetDocument
	status = tm.Do(t, http.MethodGet, "/api/subnets/11", &apex)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Apex", apex.Name)
	assert.Equal(t, "1.23456789012345678901", apex.Price)
	firstSync := apex.LastSyncedAt

	// second run: 11 is now down, its record must survive untouched
	tm.Upstream.FailSubnet(11, http.StatusInternalServerError)
	tm.Upstream.SetSubnet(10, map[string]any{"name": "back"})

	status = tm.Do(t, http.MethodPost, "/api/subnets/refresh", &summary)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 126, summary.OK)

	var again model.SubnetDocument
	status = tm.Do(t, http.MethodGet, "/api/subnets/11", &again)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, apex, again)
	assert.Equal(t, firstSync, again.LastSyncedAt)

	status = tm.Do(t, http.MethodGet, "/api/subnets?search=back", &list)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, uint32(10), list.Data[0].Netuid)
	assert.Nil(t, list.Data[0].Rank)
}
