//go:build integration

package db_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/taodash/subnet-indexer/internal/db"
	"github.com/taodash/subnet-indexer/internal/db/model"
	"github.com/taodash/subnet-indexer/testutil"
)

func TestSubnets(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	t.Run("empty listing", func(t *testing.T) {
		subnets, err := testDB.GetAllSubnets(ctx)
		require.NoError(t, err)
		assert.NotNil(t, subnets)
		assert.Empty(t, subnets)
	})
	t.Run("not found", func(t *testing.T) {
		doc, err := testDB.GetSubnetByNetuid(ctx, 42)
		assert.True(t, db.IsNotFoundError(err))
		assert.Nil(t, doc)
	})
	t.Run("upsert inserts then replaces", func(t *testing.T) {
		resetDatabase(t)

		doc := createSubnet(t, 10)
		doc.Price = "1.0"
		doc.Github = "https://github.com/example/subnet"

		stored, err := testDB.UpsertSubnet(ctx, doc)
		require.NoError(t, err)
		assert.Equal(t, doc, stored)

		replacement := createSubnet(t, 10)
		replacement.Price = "2.5"
		// the new document has no github link, the old one must not survive
		replacement.Github = ""

		stored, err = testDB.UpsertSubnet(ctx, replacement)
		require.NoError(t, err)
		assert.Equal(t, replacement, stored)

		found, err := testDB.GetSubnetByNetuid(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, "2.5", found.Price)
		assert.Empty(t, found.Github)
	})
	t.Run("upsert is idempotent", func(t *testing.T) {
		resetDatabase(t)

		doc := createSubnet(t, 5)
		for range 2 {
			_, err := testDB.UpsertSubnet(ctx, doc)
			require.NoError(t, err)
		}

		count, err := mongoDB.Collection(model.SubnetsCollection).CountDocuments(ctx, bson.M{"_id": 5})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		found, err := testDB.GetSubnetByNetuid(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, doc, found)
	})
	t.Run("listing is ordered by netuid", func(t *testing.T) {
		resetDatabase(t)

		for _, netuid := range []uint32{64, 3, 128, 1, 17} {
			_, err := testDB.UpsertSubnet(ctx, createSubnet(t, netuid))
			require.NoError(t, err)
		}

		subnets, err := testDB.GetAllSubnets(ctx)
		require.NoError(t, err)
		require.Len(t, subnets, 5)

		var netuids []uint32
		for _, s := range subnets {
			netuids = append(netuids, s.Netuid)
		}
		assert.Equal(t, []uint32{1, 3, 17, 64, 128}, netuids)
	})
	t.Run("absent optional fields stay absent", func(t *testing.T) {
		resetDatabase(t)

		doc := &model.SubnetDocument{
			Netuid:       7,
			Name:         "apex",
			LastSyncedAt: time.Now().UTC().Truncate(time.Millisecond),
		}
		_, err := testDB.UpsertSubnet(ctx, doc)
		require.NoError(t, err)

		raw := bson.M{}
		err = mongoDB.Collection(model.SubnetsCollection).FindOne(ctx, bson.M{"_id": 7}).Decode(&raw)
		require.NoError(t, err)
		assert.NotContains(t, raw, "timestamp")
		assert.NotContains(t, raw, "registration_timestamp")
		assert.NotContains(t, raw, "rank")
		assert.NotContains(t, raw, "price")
	})
}

func createSubnet(t *testing.T, netuid uint32) *model.SubnetDocument {
	subnet, err := testutil.RandomSubnet(netuid)
	require.NoError(t, err)
	return subnet
}
