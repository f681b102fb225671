package outboxrepo_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"vinylshop/internal/adapters/out/postgres/outboxrepo"
	"vinylshop/internal/core/domain/model/kernel"
	"vinylshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// EventOutboxIntegrationTestSuite provides integration tests for GormEventOutbox
// using PostgreSQL containers to verify staging, fetching and acknowledgement.
type EventOutboxIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	outbox    *outboxrepo.GormEventOutbox
}

func (suite *EventOutboxIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&outboxrepo.EventDTO{}))
}

func (suite *EventOutboxIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE outbox_events").Error)
	suite.outbox = outboxrepo.NewGormEventOutbox(suite.db)
}

func (suite *EventOutboxIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *EventOutboxIntegrationTestSuite) mustMoney(amount string) kernel.Money {
	money, err := kernel.MoneyFromString(amount, "USD")
	suite.Require().NoError(err)
	return money
}

func (suite *EventOutboxIntegrationTestSuite) TestStore_OrderPaid_StagesPendingMessage() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	event := order.OrderPaid{
		OrderID: orderID,
		Amount:  suite.mustMoney("17.00"),
	}

	suite.Require().NoError(suite.outbox.Store(ctx, event))

	messages, err := suite.outbox.FetchPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 1)

	msg := messages[0]
	suite.Equal("OrderPaid", msg.Name)
	suite.Equal(orderID.String(), msg.Key)

	var payload map[string]any
	suite.Require().NoError(json.Unmarshal(msg.Payload, &payload))
	suite.Equal(orderID.String(), payload["orderId"])
	suite.Equal(map[string]any{"amount": "17", "currency": "USD"}, payload["amount"])
}

func (suite *EventOutboxIntegrationTestSuite) TestStore_PayFailedAmountIsDifferent_CarriesExpectedAmount() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	event := order.OrderPayFailedAmountIsDifferent{
		OrderID:  orderID,
		Amount:   suite.mustMoney("16.00"),
		Expected: suite.mustMoney("17.00"),
	}

	suite.Require().NoError(suite.outbox.Store(ctx, event))

	messages, err := suite.outbox.FetchPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 1)
	suite.Equal("OrderPayFailedBecauseAmountIsDifferent", messages[0].Name)

	var payload map[string]any
	suite.Require().NoError(json.Unmarshal(messages[0].Payload, &payload))
	suite.Equal(orderID.String(), payload["orderId"])
	suite.Equal(map[string]any{"amount": "16", "currency": "USD"}, payload["amount"])
	suite.Equal(map[string]any{"amount": "17", "currency": "USD"}, payload["expected"])
}

func (suite *EventOutboxIntegrationTestSuite) TestStore_ItemsAddedToOrder_ListsItems() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	productID, err := order.NewProductID("vinyl-1")
	suite.Require().NoError(err)
	item, err := order.NewItem(productID, suite.mustMoney("9.99"))
	suite.Require().NoError(err)

	event := order.ItemsAddedToOrder{
		OrderID: orderID,
		Items:   []order.Item{item},
	}

	suite.Require().NoError(suite.outbox.Store(ctx, event))

	messages, err := suite.outbox.FetchPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 1)
	suite.Equal("ItemsAddedToOrder", messages[0].Name)

	var payload struct {
		OrderID string `json:"orderId"`
		Items   []struct {
			ProductID string `json:"productId"`
			Price     struct {
				Amount   string `json:"amount"`
				Currency string `json:"currency"`
			} `json:"price"`
		} `json:"items"`
	}
	suite.Require().NoError(json.Unmarshal(messages[0].Payload, &payload))
	suite.Equal(orderID.String(), payload.OrderID)
	suite.Require().Len(payload.Items, 1)
	suite.Equal("vinyl-1", payload.Items[0].ProductID)
	suite.Equal("9.99", payload.Items[0].Price.Amount)
	suite.Equal("USD", payload.Items[0].Price.Currency)
}

func (suite *EventOutboxIntegrationTestSuite) TestFetchPending_ReturnsEventsInStagingOrder() {
	ctx := context.Background()

	first := order.OrderPayFailedAlreadyPaid{OrderID: kernel.NewUUID()}
	second := order.OrderPaid{OrderID: kernel.NewUUID(), Amount: suite.mustMoney("5.00")}
	suite.Require().NoError(suite.outbox.Store(ctx, first))
	suite.Require().NoError(suite.outbox.Store(ctx, second))

	messages, err := suite.outbox.FetchPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 2)
	suite.Equal("OrderPayFailedBecauseAlreadyPaid", messages[0].Name)
	suite.Equal("OrderPaid", messages[1].Name)
	suite.Less(messages[0].ID, messages[1].ID)
}

func (suite *EventOutboxIntegrationTestSuite) TestFetchPending_RespectsLimit() {
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		event := order.OrderPayFailedAlreadyPaid{OrderID: kernel.NewUUID()}
		suite.Require().NoError(suite.outbox.Store(ctx, event))
	}

	messages, err := suite.outbox.FetchPending(ctx, 2)
	suite.Require().NoError(err)
	suite.Len(messages, 2)
}

func (suite *EventOutboxIntegrationTestSuite) TestMarkSent_ExcludesEventFromPending() {
	ctx := context.Background()

	event := order.OrderPaid{OrderID: kernel.NewUUID(), Amount: suite.mustMoney("5.00")}
	suite.Require().NoError(suite.outbox.Store(ctx, event))

	messages, err := suite.outbox.FetchPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 1)

	suite.Require().NoError(suite.outbox.MarkSent(ctx, messages[0].ID))

	remaining, err := suite.outbox.FetchPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(remaining)
}

func TestEventOutboxIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(EventOutboxIntegrationTestSuite))
}
