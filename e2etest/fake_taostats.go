package e2etest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"
)

// FakeTaostats serves the subset of the taostats API the indexer uses.
type FakeTaostats struct {
	*httptest.Server

	mu       sync.Mutex
	subnets  map[uint32]map[string]any
	statuses map[uint32]int
	requests []time.Time
}

func NewFakeTaostats(t *testing.T) *FakeTaostats {
	f := &FakeTaostats{
		subnets:  map[uint32]map[string]any{},
		statuses: map[uint32]int{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/dtao/dtaoSubnets", f.handleSubnet)
	mux.HandleFunc("GET /api/price/price", func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, map[string]any{
			"data": []map[string]any{{"price": "412.37", "percent_change_24h": "-1.25"}},
		})
	})

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Server.Close)

	return f
}

func (f *FakeTaostats) SetSubnet(netuid uint32, fields map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()

	fields["netuid"] = netuid
	f.subnets[netuid] = fields
	delete(f.statuses, netuid)
}

// FailSubnet makes requests for netuid answer with the given status code.
func (f *FakeTaostats) FailSubnet(netuid uint32, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.statuses[netuid] = status
}

// RequestTimes returns the arrival time of every subnet request so far.
func (f *FakeTaostats) RequestTimes() []time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]time.Time(nil), f.requests...)
}

func (f *FakeTaostats) handleSubnet(w http.ResponseWriter, r *http.Request) {
	netuid, err := strconv.ParseUint(r.URL.Query().Get("netuid"), 10, 32)
	if err != nil {
		writeBody(w, http.StatusBadRequest, map[string]any{"error": "invalid netuid"})
		return
	}

	f.mu.Lock()
	f.requests = append(f.requests, time.Now())
	status, failing := f.statuses[uint32(netuid)]
	subnet, found := f.subnets[uint32(netuid)]
	f.mu.Unlock()

	switch {
	case failing:
		writeBody(w, status, map[string]any{"error": http.StatusText(status)})
	case !found:
		writeBody(w, http.StatusOK, map[string]any{"data": []any{}})
	default:
		writeBody(w, http.StatusOK, map[string]any{"data": []any{subnet}})
	}
}

func writeBody(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
