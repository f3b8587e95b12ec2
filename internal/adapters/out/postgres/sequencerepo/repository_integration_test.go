package sequencerepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/sequencerepo"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SequenceRepositoryIntegrationTestSuite verifies the atomic counter
// allocation against a real PostgreSQL instance, including its behavior
// under concurrent allocation.
type SequenceRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *sequencerepo.GormSequenceRepository
}

func (suite *SequenceRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&sequencerepo.CounterDTO{}))
}

func (suite *SequenceRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_sequences").Error)
	suite.repository = sequencerepo.NewGormSequenceRepository(suite.db)
}

func (suite *SequenceRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SequenceRepositoryIntegrationTestSuite) TestNext_StartsAtOne() {
	ctx := context.Background()
	day := kernel.DayKey(time.Now())

	seq, err := suite.repository.Next(ctx, day)
	suite.Require().NoError(err)
	suite.Equal(int64(1), seq)
}

func (suite *SequenceRepositoryIntegrationTestSuite) TestNext_IncrementsSequentially() {
	ctx := context.Background()
	day := kernel.DayKey(time.Now())

	for want := int64(1); want <= 5; want++ {
		seq, err := suite.repository.Next(ctx, day)
		suite.Require().NoError(err)
		suite.Equal(want, seq)
	}
}

func (suite *SequenceRepositoryIntegrationTestSuite) TestNext_DaysAreIndependent() {
	ctx := context.Background()

	seq, err := suite.repository.Next(ctx, "250830")
	suite.Require().NoError(err)
	suite.Equal(int64(1), seq)

	seq, err = suite.repository.Next(ctx, "250830")
	suite.Require().NoError(err)
	suite.Equal(int64(2), seq)

	// A new day starts over at 1.
	seq, err = suite.repository.Next(ctx, "250831")
	suite.Require().NoError(err)
	suite.Equal(int64(1), seq)
}

func (suite *SequenceRepositoryIntegrationTestSuite) TestNext_ConcurrentAllocationsAreDistinct() {
	ctx := context.Background()
	day := kernel.DayKey(time.Now())
	const workers = 20

	var wg sync.WaitGroup
	results := make(chan int64, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seq, err := suite.repository.Next(ctx, day)
			suite.NoError(err)
			results <- seq
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int64]bool)
	for seq := range results {
		suite.False(seen[seq], "sequence value %d allocated twice", seq)
		seen[seq] = true
	}
	suite.Len(seen, workers)
}

func (suite *SequenceRepositoryIntegrationTestSuite) TestNext_EmptyDayRejected() {
	_, err := suite.repository.Next(context.Background(), "")
	suite.Require().Error(err)
}

func TestSequenceRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SequenceRepositoryIntegrationTestSuite))
}
