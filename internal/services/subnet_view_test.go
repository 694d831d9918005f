package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taodash/subnet-indexer/internal/db"
	"github.com/taodash/subnet-indexer/internal/db/model"
	"github.com/taodash/subnet-indexer/pkg"
	"github.com/taodash/subnet-indexer/tests/mocks"
)

func testSubnets() []*model.SubnetDocument {
	return []*model.SubnetDocument{
		{Netuid: 1, Name: "Apex", Price: "0.05", Rank: pkg.Ptr[int64](3), NeuronRegistrationCost: "2500000000"},
		{Netuid: 2, Name: "omron", SubnetName: "Omron", Price: "1.25", Rank: pkg.Ptr[int64](1)},
		{Netuid: 3, SubnetName: "Templar", Price: "", IncentiveBurn: "1"},
		{Netuid: 4, Name: "Targon", Price: "0.05", Rank: pkg.Ptr[int64](2), IncentiveBurn: "0.25"},
	}
}

func netuidsOf(views []SubnetView) []uint32 {
	netuids := make([]uint32, 0, len(views))
	for _, v := range views {
		netuids = append(netuids, v.Netuid)
	}
	return netuids
}

func TestListSubnets(t *testing.T) {
	internalCtx := mock.Anything

	cases := []struct {
		name     string
		params   ListSubnetsParams
		expected []uint32
	}{
		{"default order", ListSubnetsParams{SortBy: SortByNetuid}, []uint32{1, 2, 3, 4}},
		{"netuid desc", ListSubnetsParams{SortBy: SortByNetuid, Desc: true}, []uint32{4, 3, 2, 1}},
		// missing rank sorts as -1, ties keep netuid order
		{"rank asc", ListSubnetsParams{SortBy: SortByRank}, []uint32{3, 2, 4, 1}},
		{"price asc is stable", ListSubnetsParams{SortBy: SortByPrice}, []uint32{3, 1, 4, 2}},
		{"price desc", ListSubnetsParams{SortBy: SortByPrice, Desc: true}, []uint32{2, 1, 4, 3}},
		{"name asc ignores case", ListSubnetsParams{SortBy: SortByName}, []uint32{3, 1, 2, 4}},
		{"reg cost desc", ListSubnetsParams{SortBy: SortByRegCost, Desc: true}, []uint32{1, 2, 3, 4}},
		{"burn desc", ListSubnetsParams{SortBy: SortByIncentiveBurn, Desc: true}, []uint32{3, 4, 1, 2}},
		{"search by name", ListSubnetsParams{Search: "  TAR "}, []uint32{4}},
		{"search by subnet_name", ListSubnetsParams{Search: "templar"}, []uint32{3}},
		{"search without match", ListSubnetsParams{Search: "nothing"}, []uint32{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dbClient := mocks.NewDbInterface(t)
			dbClient.On("GetAllSubnets", internalCtx).Return(testSubnets(), nil).Once()

			srv, _ := newTestService(t, dbClient, mocks.NewTaostatsInterface(t), 1, 128)

			views, err := srv.ListSubnets(t.Context(), tc.params)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, netuidsOf(views))
		})
	}

	t.Run("display values", func(t *testing.T) {
		dbClient := mocks.NewDbInterface(t)
		dbClient.On("GetAllSubnets", internalCtx).Return(testSubnets(), nil).Once()
		srv, _ := newTestService(t, dbClient, mocks.NewTaostatsInterface(t), 1, 128)

		views, err := srv.ListSubnets(t.Context(), ListSubnetsParams{})
		require.NoError(t, err)
		require.Len(t, views, 4)

		assert.Equal(t, SubnetDisplay{
			Name:              "Apex",
			Price:             "0.0500",
			ProjectedEmission: "—",
			IncentiveBurn:     "—",
			RegCost:           "2.50",
		}, views[0].Display)
		assert.Equal(t, "Templar", views[2].Display.Name)
		assert.True(t, views[2].Display.FullBurn)
		assert.Equal(t, "100.00%", views[2].Display.IncentiveBurn)
		assert.False(t, views[3].Display.FullBurn)
	})
	t.Run("unnamed subnet", func(t *testing.T) {
		view := newSubnetView(&model.SubnetDocument{Netuid: 99})

		assert.Equal(t, SubnetDisplay{
			Name:              "—",
			Price:             "—",
			ProjectedEmission: "—",
			IncentiveBurn:     "—",
			RegCost:           "—",
		}, view.Display)
	})
	t.Run("store error", func(t *testing.T) {
		dbClient := mocks.NewDbInterface(t)
		dbClient.On("GetAllSubnets", internalCtx).Return(nil, errors.New("boom")).Once()
		srv, _ := newTestService(t, dbClient, mocks.NewTaostatsInterface(t), 1, 128)

		_, err := srv.ListSubnets(t.Context(), ListSubnetsParams{})
		require.Error(t, err)
	})
}

func TestGetSubnet(t *testing.T) {
	store := newMemStore()
	store.subnets[7] = model.SubnetDocument{Netuid: 7, Name: "seven", Price: "2"}
	srv, _ := newTestService(t, store, mocks.NewTaostatsInterface(t), 1, 128)

	view, err := srv.GetSubnet(t.Context(), 7)
	require.NoError(t, err)
	assert.Equal(t, "2.00", view.Display.Price)

	_, err = srv.GetSubnet(t.Context(), 8)
	assert.True(t, db.IsNotFoundError(err))
}

func TestParseSortKey(t *testing.T) {
	key, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortByNetuid, key)

	key, err = ParseSortKey("regCost")
	require.NoError(t, err)
	assert.Equal(t, SortByRegCost, key)

	_, err = ParseSortKey("owner")
	require.ErrorIs(t, err, ErrInvalidSortKey)
}

func TestFormatting(t *testing.T) {
	t.Run("price", func(t *testing.T) {
		cases := map[string]string{
			"":            "—",
			"abc":         "abc",
			"12.3456":     "12.35",
			"1":           "1.00",
			"0.5":         "0.5000",
			"0.01":        "0.0100",
			"0.000012345": "1.23e-5",
			"0":           "0.00e+0",
		}
		for in, expected := range cases {
			assert.Equal(t, expected, formatPrice(in), in)
		}
	})
	t.Run("percent", func(t *testing.T) {
		cases := map[string]string{
			"":       "—",
			"n/a":    "n/a",
			"0.0042": "0.42%",
			"1":      "100.00%",
		}
		for in, expected := range cases {
			assert.Equal(t, expected, formatPct(in), in)
		}
	})
	t.Run("registration cost", func(t *testing.T) {
		cases := map[string]string{
			"":                 "—",
			"n/a":              "—",
			"1500000000":       "1.50",
			"2500000000000":    "2.50K",
			"3000000000000000": "3.00M",
			"999990000000":     "999.99",
		}
		for in, expected := range cases {
			assert.Equal(t, expected, formatRegCost(in), in)
		}
	})
}
