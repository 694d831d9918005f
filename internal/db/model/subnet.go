package model

import "time"

// SubnetDocument is the latest known metadata of one subnet.
// Decimal figures are kept as the exact text received from upstream.
type SubnetDocument struct {
	Netuid      uint32     `bson:"_id" json:"netuid"`
	BlockNumber *int64     `bson:"block_number,omitempty" json:"block_number,omitempty"`
	Timestamp   *time.Time `bson:"timestamp,omitempty" json:"timestamp,omitempty"`

	Name              string `bson:"name,omitempty" json:"name,omitempty"`
	Symbol            string `bson:"symbol,omitempty" json:"symbol,omitempty"`
	SubnetName        string `bson:"subnet_name,omitempty" json:"subnet_name,omitempty"`
	SubnetDescription string `bson:"subnet_description,omitempty" json:"subnet_description,omitempty"`
	Description       string `bson:"description,omitempty" json:"description,omitempty"`

	Price                  string `bson:"price,omitempty" json:"price,omitempty"`
	Rank                   *int64 `bson:"rank,omitempty" json:"rank,omitempty"`
	ProjectedEmission      string `bson:"projected_emission,omitempty" json:"projected_emission,omitempty"`
	Emission               string `bson:"emission,omitempty" json:"emission,omitempty"`
	NetFlow1Day            string `bson:"net_flow_1_day,omitempty" json:"net_flow_1_day,omitempty"`
	NetFlow7Days           string `bson:"net_flow_7_days,omitempty" json:"net_flow_7_days,omitempty"`
	NetFlow30Days          string `bson:"net_flow_30_days,omitempty" json:"net_flow_30_days,omitempty"`
	NeuronRegistrationCost string `bson:"neuron_registration_cost,omitempty" json:"neuron_registration_cost,omitempty"`
	IncentiveBurn          string `bson:"incentive_burn,omitempty" json:"incentive_burn,omitempty"`
	ActiveKeys             *int64 `bson:"active_keys,omitempty" json:"active_keys,omitempty"`
	MaxNeurons             *int64 `bson:"max_neurons,omitempty" json:"max_neurons,omitempty"`

	TotalTao    string `bson:"total_tao,omitempty" json:"total_tao,omitempty"`
	TotalAlpha  string `bson:"total_alpha,omitempty" json:"total_alpha,omitempty"`
	AlphaStaked string `bson:"alpha_staked,omitempty" json:"alpha_staked,omitempty"`
	MarketCap   string `bson:"market_cap,omitempty" json:"market_cap,omitempty"`
	Liquidity   string `bson:"liquidity,omitempty" json:"liquidity,omitempty"`

	Github        string `bson:"github,omitempty" json:"github,omitempty"`
	DiscordURL    string `bson:"discord_url,omitempty" json:"discord_url,omitempty"`
	SubnetContact string `bson:"subnet_contact,omitempty" json:"subnet_contact,omitempty"`
	SubnetURL     string `bson:"subnet_url,omitempty" json:"subnet_url,omitempty"`
	Owner         string `bson:"owner,omitempty" json:"owner,omitempty"`

	RegistrationTimestamp *time.Time `bson:"registration_timestamp,omitempty" json:"registration_timestamp,omitempty"`
	LastSyncedAt          time.Time  `bson:"last_synced_at" json:"last_synced_at"`
}

// DisplayName mirrors what the dashboard shows as subnet title.
func (s *SubnetDocument) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.SubnetName
}
