package redis_test

import (
	"context"
	"testing"
	"time"

	"travelorders/internal/adapters/out/redis"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type TokenStoreIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *goredis.Client
	store     *redis.TokenStore
}

func (suite *TokenStoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	endpoint, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)

	client, err := redis.NewClient(ctx, redis.Config{Addr: endpoint})
	suite.Require().NoError(err)
	suite.client = client
	suite.store = redis.NewTokenStore(client)
}

func (suite *TokenStoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushDB(context.Background()).Err())
}

func (suite *TokenStoreIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		suite.Require().NoError(suite.client.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TokenStoreIntegrationTestSuite) TestRevokedTokenIsDenied() {
	err := suite.store.Revoke(context.Background(), "token-1", time.Minute)
	suite.Require().NoError(err)

	revoked, err := suite.store.IsRevoked(context.Background(), "token-1")
	suite.Require().NoError(err)
	suite.True(revoked)
}

func (suite *TokenStoreIntegrationTestSuite) TestUnknownTokenIsNotRevoked() {
	revoked, err := suite.store.IsRevoked(context.Background(), "never-seen")
	suite.Require().NoError(err)
	suite.False(revoked)
}

func (suite *TokenStoreIntegrationTestSuite) TestExpiredTokenIsIgnored() {
	err := suite.store.Revoke(context.Background(), "stale", -time.Second)
	suite.Require().NoError(err)

	revoked, err := suite.store.IsRevoked(context.Background(), "stale")
	suite.Require().NoError(err)
	suite.False(revoked)
}

func TestTokenStoreIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TokenStoreIntegrationTestSuite))
}
