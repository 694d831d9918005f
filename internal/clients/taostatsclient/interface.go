package taostatsclient

import "context"

//go:generate mockery --name=TaostatsInterface --output=../../../tests/mocks --outpkg=mocks --filename=mock_taostats_client.go
type TaostatsInterface interface {
	// GetSubnet issues exactly one request for the given netuid.
	GetSubnet(ctx context.Context, netuid uint32) (*SubnetPayload, error)
	GetPrice(ctx context.Context) (*Price, error)
}
