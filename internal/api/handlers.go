package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/taodash/subnet-indexer/internal/clients/taostatsclient"
	"github.com/taodash/subnet-indexer/internal/db"
	"github.com/taodash/subnet-indexer/internal/services"
	"github.com/taodash/subnet-indexer/internal/types"
)

const healthCheckTimeout = 2 * time.Second

type handler struct {
	service *services.Service
}

type errorResponse struct {
	Error string `json:"error"`
}

type listSubnetsResponse struct {
	Data  []services.SubnetView `json:"data"`
	Total int                   `json:"total"`
}

type refreshResponse struct {
	Message string `json:"message"`
	*types.RefreshSummary
}

type priceResponse struct {
	Data []taostatsclient.Price `json:"data"`
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.service.Ping(ctx); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("Health check failed")
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"ok": false, "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *handler) listSubnets(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	sortBy, err := services.ParseSortKey(query.Get("sort_by"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var desc bool
	switch order := query.Get("order"); order {
	case "", "asc":
	case "desc":
		desc = true
	default:
		writeError(w, http.StatusBadRequest, "order must be asc or desc")
		return
	}

	subnets, err := h.service.ListSubnets(r.Context(), services.ListSubnetsParams{
		Search: query.Get("search"),
		SortBy: sortBy,
		Desc:   desc,
	})
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to list subnets")
		writeError(w, storageErrorStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, listSubnetsResponse{Data: subnets, Total: len(subnets)})
}

func (h *handler) getSubnet(w http.ResponseWriter, r *http.Request) {
	netuid, err := strconv.ParseUint(chi.URLParam(r, "netuid"), 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "netuid must be a non negative integer")
		return
	}

	subnet, err := h.service.GetSubnet(r.Context(), uint32(netuid))
	if err != nil {
		if db.IsNotFoundError(err) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Ctx(r.Context()).Error().Err(err).Uint64("netuid", netuid).Msg("Failed to get subnet")
		writeError(w, storageErrorStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, subnet)
}

func (h *handler) refreshSubnets(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.RunRefresh(r.Context())
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, refreshResponse{
			Message:        "Refresh complete",
			RefreshSummary: summary,
		})
	case errors.Is(err, types.ErrRefreshInProgress):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, types.ErrStorageUnavailable):
		log.Ctx(r.Context()).Error().Err(err).Msg("Refresh aborted, storage unavailable")
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		log.Ctx(r.Context()).Error().Err(err).Msg("Refresh interrupted")
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func (h *handler) getPrice(w http.ResponseWriter, r *http.Request) {
	price, err := h.service.GetPrice(r.Context())
	if err != nil {
		log.Ctx(r.Context()).Warn().Err(err).Msg("Price unavailable")
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, priceResponse{Data: []taostatsclient.Price{price}})
}

// storageErrorStatus maps store failures to 503 and anything else to 500.
func storageErrorStatus(err error) int {
	if db.IsStorageError(err) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("Failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
