package testutil

import (
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/taodash/subnet-indexer/internal/db/model"
	"github.com/taodash/subnet-indexer/pkg"
)

// ContainerName appends a random suffix to prefix. Docker refuses two
// containers with the same name and a previous run may still be around.
func ContainerName(prefix string) string {
	return prefix + "-" + strings.ToLower(gofakeit.LetterN(6))
}

// RandomSubnet returns a fully populated subnet the way mongo hands it back,
// UTC times truncated to milliseconds, so round trips compare equal.
func RandomSubnet(netuid uint32) (*model.SubnetDocument, error) {
	var subnet model.SubnetDocument
	if err := gofakeit.Struct(&subnet); err != nil {
		return nil, err
	}

	subnet.Netuid = netuid
	subnet.Timestamp = pkg.Ptr(gofakeit.Date().UTC().Truncate(time.Millisecond))
	subnet.RegistrationTimestamp = pkg.Ptr(gofakeit.Date().UTC().Truncate(time.Millisecond))
	subnet.LastSyncedAt = time.Now().UTC().Truncate(time.Millisecond)

	return &subnet, nil
}
