package taostatsclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Text keeps any scalar JSON value as its exact textual form.
// Upstream sends decimal figures both as strings and as bare numbers,
// decoding them through float64 would lose precision.
type Text struct {
	Value string
	Set   bool
}

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = Text{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text{Value: s, Set: true}
	case '{', '[':
		// e.g. owner sometimes comes as an object, keep it compact
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		*t = Text{Value: buf.String(), Set: true}
	default:
		*t = Text{Value: string(data), Set: true}
	}

	return nil
}

func (t Text) MarshalJSON() ([]byte, error) {
	if !t.Set {
		return []byte("null"), nil
	}
	return json.Marshal(t.Value)
}

// Int accepts a JSON number or a quoted integer.
type Int struct {
	Value int64
	Set   bool
}

func (i *Int) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*i = Int{}
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if raw == "" {
			*i = Int{}
			return nil
		}
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// integers encoded like 12.0
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f != float64(int64(f)) {
			return fmt.Errorf("invalid integer %s", string(data))
		}
		v = int64(f)
	}

	*i = Int{Value: v, Set: true}
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	if !i.Set {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(i.Value, 10)), nil
}

// Ptr returns nil for absent values.
func (i Int) Ptr() *int64 {
	if !i.Set {
		return nil
	}
	v := i.Value
	return &v
}

// SubnetPayload is a single element of the dtao subnets response.
type SubnetPayload struct {
	Netuid      Int  `json:"netuid"`
	BlockNumber Int  `json:"block_number"`
	Timestamp   Text `json:"timestamp"`

	Name              Text `json:"name"`
	Symbol            Text `json:"symbol"`
	SubnetName        Text `json:"subnet_name"`
	SubnetDescription Text `json:"subnet_description"`
	Description       Text `json:"description"`

	Price                  Text `json:"price"`
	Rank                   Int  `json:"rank"`
	ProjectedEmission      Text `json:"projected_emission"`
	Emission               Text `json:"emission"`
	NetFlow1Day            Text `json:"net_flow_1_day"`
	NetFlow7Days           Text `json:"net_flow_7_days"`
	NetFlow30Days          Text `json:"net_flow_30_days"`
	NeuronRegistrationCost Text `json:"neuron_registration_cost"`
	IncentiveBurn          Text `json:"incentive_burn"`
	ActiveKeys             Int  `json:"active_keys"`
	MaxNeurons             Int  `json:"max_neurons"`

	TotalTao    Text `json:"total_tao"`
	TotalAlpha  Text `json:"total_alpha"`
	AlphaStaked Text `json:"alpha_staked"`
	MarketCap   Text `json:"market_cap"`
	Liquidity   Text `json:"liquidity"`

	Github        Text `json:"github"`
	DiscordURL    Text `json:"discord_url"`
	SubnetContact Text `json:"subnet_contact"`
	SubnetURL     Text `json:"subnet_url"`
	Owner         Text `json:"owner"`

	RegistrationTimestamp Text `json:"registration_timestamp"`
}

// Elements are pointers so a null element can be told apart from an empty object.
type subnetsResponse struct {
	Data []*SubnetPayload `json:"data"`
}

type Price struct {
	Price            Text `json:"price"`
	PercentChange24h Text `json:"percent_change_24h"`
}

type priceResponse struct {
	Data []*Price `json:"data"`
}
