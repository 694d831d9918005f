package services

import (
	"fmt"
	"time"

	"github.com/taodash/subnet-indexer/internal/clients/taostatsclient"
	"github.com/taodash/subnet-indexer/internal/db/model"
)

// normalizeSubnet maps an upstream payload onto the stored document.
// Fields absent upstream stay absent, numeric text is copied verbatim.
func normalizeSubnet(
	netuid uint32, payload *taostatsclient.SubnetPayload, syncedAt time.Time,
) (*model.SubnetDocument, error) {
	if payload == nil {
		return nil, fmt.Errorf("empty payload for netuid %d", netuid)
	}
	if payload.Netuid.Set && payload.Netuid.Value != int64(netuid) {
		return nil, fmt.Errorf(
			"upstream returned netuid %d when asked for %d", payload.Netuid.Value, netuid,
		)
	}

	timestamp, err := parseTimestamp(payload.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp for netuid %d: %w", netuid, err)
	}
	registeredAt, err := parseTimestamp(payload.RegistrationTimestamp)
	if err != nil {
		return nil, fmt.Errorf("invalid registration_timestamp for netuid %d: %w", netuid, err)
	}

	name := payload.Name.Value
	if !payload.Name.Set {
		name = payload.SubnetName.Value
	}

	return &model.SubnetDocument{
		Netuid:      netuid,
		BlockNumber: payload.BlockNumber.Ptr(),
		Timestamp:   timestamp,

		Name:              name,
		Symbol:            payload.Symbol.Value,
		SubnetName:        payload.SubnetName.Value,
		SubnetDescription: payload.SubnetDescription.Value,
		Description:       payload.Description.Value,

		Price:                  payload.Price.Value,
		Rank:                   payload.Rank.Ptr(),
		ProjectedEmission:      payload.ProjectedEmission.Value,
		Emission:               payload.Emission.Value,
		NetFlow1Day:            payload.NetFlow1Day.Value,
		NetFlow7Days:           payload.NetFlow7Days.Value,
		NetFlow30Days:          payload.NetFlow30Days.Value,
		NeuronRegistrationCost: payload.NeuronRegistrationCost.Value,
		IncentiveBurn:          payload.IncentiveBurn.Value,
		ActiveKeys:             payload.ActiveKeys.Ptr(),
		MaxNeurons:             payload.MaxNeurons.Ptr(),

		TotalTao:    payload.TotalTao.Value,
		TotalAlpha:  payload.TotalAlpha.Value,
		AlphaStaked: payload.AlphaStaked.Value,
		MarketCap:   payload.MarketCap.Value,
		Liquidity:   payload.Liquidity.Value,

		Github:        payload.Github.Value,
		DiscordURL:    payload.DiscordURL.Value,
		SubnetContact: payload.SubnetContact.Value,
		SubnetURL:     payload.SubnetURL.Value,
		Owner:         payload.Owner.Value,

		RegistrationTimestamp: registeredAt,
		// mongo keeps millisecond precision
		LastSyncedAt: syncedAt.UTC().Truncate(time.Millisecond),
	}, nil
}

// timestampLayouts are tried in order. Layouts without a zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	time.DateOnly,
}

func parseTimestamp(t taostatsclient.Text) (*time.Time, error) {
	if !t.Set || t.Value == "" {
		return nil, nil
	}

	var firstErr error
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, t.Value)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		parsed = parsed.UTC().Truncate(time.Millisecond)
		return &parsed, nil
	}

	return nil, firstErr
}
