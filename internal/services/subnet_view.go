package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/taodash/subnet-indexer/internal/db/model"
)

// placeholder is shown for values upstream did not provide.
const placeholder = "—"

type SortKey string

const (
	SortByNetuid            SortKey = "netuid"
	SortByName              SortKey = "name"
	SortByRank              SortKey = "rank"
	SortByPrice             SortKey = "price"
	SortByProjectedEmission SortKey = "projected_emission"
	SortByIncentiveBurn     SortKey = "incentive_burn"
	SortByRegCost           SortKey = "regCost"
)

var ErrInvalidSortKey = errors.New("invalid sort key")

func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortByNetuid, nil
	}

	switch key := SortKey(s); key {
	case SortByNetuid, SortByName, SortByRank, SortByPrice,
		SortByProjectedEmission, SortByIncentiveBurn, SortByRegCost:
		return key, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
}

type ListSubnetsParams struct {
	// Search is matched case-insensitively against name and subnet_name.
	Search string
	SortBy SortKey
	Desc   bool
}

type SubnetDisplay struct {
	Name              string `json:"name"`
	Price             string `json:"price"`
	ProjectedEmission string `json:"projected_emission"`
	IncentiveBurn     string `json:"incentive_burn"`
	RegCost           string `json:"reg_cost"`
	// FullBurn is set when the whole incentive is burnt.
	FullBurn bool `json:"full_burn"`
}

type SubnetView struct {
	*model.SubnetDocument
	Display SubnetDisplay `json:"display"`
}

func (s *Service) GetSubnet(ctx context.Context, netuid uint32) (*SubnetView, error) {
	subnet, err := s.db.GetSubnetByNetuid(ctx, netuid)
	if err != nil {
		return nil, err
	}

	view := newSubnetView(subnet)
	return &view, nil
}

func (s *Service) ListSubnets(ctx context.Context, params ListSubnetsParams) ([]SubnetView, error) {
	subnets, err := s.db.GetAllSubnets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subnets: %w", err)
	}

	subnets = filterSubnets(subnets, params.Search)
	sortSubnets(subnets, params.SortBy, params.Desc)

	views := make([]SubnetView, 0, len(subnets))
	for _, subnet := range subnets {
		views = append(views, newSubnetView(subnet))
	}
	return views, nil
}

func newSubnetView(subnet *model.SubnetDocument) SubnetView {
	burn, ok := parseNumber(subnet.IncentiveBurn)

	name := subnet.DisplayName()
	if name == "" {
		name = placeholder
	}

	return SubnetView{
		SubnetDocument: subnet,
		Display: SubnetDisplay{
			Name:              name,
			Price:             formatPrice(subnet.Price),
			ProjectedEmission: formatPct(subnet.ProjectedEmission),
			IncentiveBurn:     formatPct(subnet.IncentiveBurn),
			RegCost:           formatRegCost(subnet.NeuronRegistrationCost),
			FullBurn:          ok && burn*100 >= 100,
		},
	}
}

func filterSubnets(subnets []*model.SubnetDocument, search string) []*model.SubnetDocument {
	q := strings.ToLower(strings.TrimSpace(search))

	filtered := make([]*model.SubnetDocument, 0, len(subnets))
	for _, s := range subnets {
		if q == "" ||
			strings.Contains(strings.ToLower(s.Name), q) ||
			strings.Contains(strings.ToLower(s.SubnetName), q) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// sortSubnets is stable so equal keys keep the store's netuid order.
// Missing or non numeric values sort as -1.
func sortSubnets(subnets []*model.SubnetDocument, key SortKey, desc bool) {
	compare := func(a, b *model.SubnetDocument) int {
		if key == SortByName {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
		return cmp.Compare(sortValue(a, key), sortValue(b, key))
	}

	slices.SortStableFunc(subnets, func(a, b *model.SubnetDocument) int {
		if desc {
			return compare(b, a)
		}
		return compare(a, b)
	})
}

func sortValue(s *model.SubnetDocument, key SortKey) float64 {
	var (
		v  float64
		ok bool
	)

	switch key {
	case SortByRank:
		if s.Rank != nil {
			v, ok = float64(*s.Rank), true
		}
	case SortByPrice:
		v, ok = parseNumber(s.Price)
	case SortByProjectedEmission:
		v, ok = parseNumber(s.ProjectedEmission)
	case SortByIncentiveBurn:
		v, ok = parseNumber(s.IncentiveBurn)
	case SortByRegCost:
		v, ok = parseNumber(s.NeuronRegistrationCost)
	default:
		v, ok = float64(s.Netuid), true
	}

	if !ok {
		return -1
	}
	return v
}

func parseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func formatPrice(s string) string {
	if s == "" {
		return placeholder
	}
	n, ok := parseNumber(s)
	if !ok {
		return s
	}

	switch {
	case n >= 1:
		return strconv.FormatFloat(n, 'f', 2, 64)
	case n >= 0.01:
		return strconv.FormatFloat(n, 'f', 4, 64)
	default:
		return formatExponent(n)
	}
}

// formatExponent renders n with two decimals and an unpadded exponent, e.g. 1.23e-5.
func formatExponent(n float64) string {
	out := strconv.FormatFloat(n, 'e', 2, 64)
	mantissa, exp, found := strings.Cut(out, "e")
	if !found {
		return out
	}

	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}

func formatPct(s string) string {
	if s == "" {
		return placeholder
	}
	n, ok := parseNumber(s)
	if !ok {
		return s
	}
	return strconv.FormatFloat(n*100, 'f', 2, 64) + "%"
}

// formatRegCost converts a cost in rao to TAO with K/M suffixes.
func formatRegCost(s string) string {
	n, ok := parseNumber(s)
	if !ok {
		return placeholder
	}

	tao := n / 1e9
	switch {
	case tao >= 1e6:
		return strconv.FormatFloat(tao/1e6, 'f', 2, 64) + "M"
	case tao >= 1e3:
		return strconv.FormatFloat(tao/1e3, 'f', 2, 64) + "K"
	default:
		return strconv.FormatFloat(tao, 'f', 2, 64)
	}
}
