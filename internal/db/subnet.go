package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taodash/subnet-indexer/internal/db/model"
)

func (db *Database) UpsertSubnet(ctx context.Context, subnet *model.SubnetDocument) (*model.SubnetDocument, error) {
	if subnet == nil {
		return nil, &StorageError{Op: "upsert subnet", Err: errors.New("nil subnet document")}
	}

	filter := bson.M{"_id": subnet.Netuid}
	opts := options.FindOneAndReplace().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored model.SubnetDocument
	err := db.collection(model.SubnetsCollection).
		FindOneAndReplace(ctx, filter, subnet, opts).
		Decode(&stored)
	if err != nil {
		return nil, &StorageError{
			Op:  fmt.Sprintf("upsert subnet %d", subnet.Netuid),
			Err: err,
		}
	}

	return &stored, nil
}

func (db *Database) GetAllSubnets(ctx context.Context) ([]*model.SubnetDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := db.collection(model.SubnetsCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, &StorageError{Op: "list subnets", Err: err}
	}
	defer cursor.Close(ctx)

	subnets := []*model.SubnetDocument{}
	if err := cursor.All(ctx, &subnets); err != nil {
		return nil, &StorageError{Op: "decode subnets", Err: err}
	}

	return subnets, nil
}

func (db *Database) GetSubnetByNetuid(ctx context.Context, netuid uint32) (*model.SubnetDocument, error) {
	filter := bson.M{"_id": netuid}
	res := db.collection(model.SubnetsCollection).FindOne(ctx, filter)

	var subnet model.SubnetDocument
	err := res.Decode(&subnet)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     fmt.Sprintf("%d", netuid),
				Message: fmt.Sprintf("subnet %d not found", netuid),
			}
		}
		return nil, &StorageError{Op: fmt.Sprintf("get subnet %d", netuid), Err: err}
	}

	return &subnet, nil
}
