package container

import (
	"errors"
	"fmt"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/taodash/subnet-indexer/internal/config"
	"github.com/taodash/subnet-indexer/testutil"
)

const (
	mongoUsername = "user"
	mongoPassword = "password"
)

// Manager is a wrapper around all docker instances, and the dockertest pool
// used to run them. It does not depend on *testing.T so TestMain can use it.
type Manager struct {
	cfg       ImageConfig
	pool      *dockertest.Pool
	resources []*dockertest.Resource
}

func NewManager() (*Manager, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("failed to connect to docker: %w", err)
	}

	return &Manager{
		cfg:  NewImageConfig(),
		pool: pool,
	}, nil
}

// RunMongo starts a mongo container and returns the config to reach dbName in it.
func (m *Manager) RunMongo(name, dbName string) (*config.DbConfig, error) {
	resource, err := m.pool.RunWithOptions(&dockertest.RunOptions{
		Name:       testutil.ContainerName(name),
		Repository: m.cfg.MongoRepository,
		Tag:        m.cfg.MongoVersion,
		Env: []string{
			"MONGO_INITDB_ROOT_USERNAME=" + mongoUsername,
			"MONGO_INITDB_ROOT_PASSWORD=" + mongoPassword,
			"MONGO_INITDB_DATABASE=" + dbName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start mongo: %w", err)
	}
	m.resources = append(m.resources, resource)

	return &config.DbConfig{
		Username: mongoUsername,
		Password: mongoPassword,
		DbName:   dbName,
		// host port is picked by docker
		Address: fmt.Sprintf("mongodb://localhost:%s/", resource.GetPort("27017/tcp")),
	}, nil
}

// ClearResources removes every container started by the Manager.
func (m *Manager) ClearResources() error {
	var errs []error
	for _, resource := range m.resources {
		if err := m.pool.Purge(resource); err != nil {
			errs = append(errs, err)
		}
	}
	m.resources = nil

	return errors.Join(errs...)
}
