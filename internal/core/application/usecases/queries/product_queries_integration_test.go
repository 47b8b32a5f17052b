package queries_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/productrepo"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ProductQueriesIntegrationTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	productRepo *productrepo.GormProductRepository
}

func (suite *ProductQueriesIntegrationTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&productrepo.ProductDTO{})
	suite.Require().NoError(err)

	suite.productRepo = productrepo.NewGormProductRepository(db, stubTracker{})
}

func (suite *ProductQueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ProductQueriesIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE products CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *ProductQueriesIntegrationTestSuite) seedProduct(name string,
	price int64, stock int) *product.Product {
	p, err := product.NewProduct(kernel.NewUUID(), name, "", price, stock)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.productRepo.Add(context.Background(), p))
	return p
}

func (suite *ProductQueriesIntegrationTestSuite) TestGetProducts_ReturnsCatalogSortedByName() {
	suite.seedProduct("Webcam", 8900, 5)
	suite.seedProduct("Headset", 12900, 3)
	suite.seedProduct("Monitor", 27900, 7)

	query, err := queries.NewGetProductsQuery(1, 10, "")
	suite.Require().NoError(err)
	handler := queries.NewGetProductsQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("Headset", result[0].Name)
	suite.Equal("Monitor", result[1].Name)
	suite.Equal("Webcam", result[2].Name)
}

func (suite *ProductQueriesIntegrationTestSuite) TestGetProducts_SearchIsCaseInsensitive() {
	suite.seedProduct("USB-C Hub", 4900, 10)
	suite.seedProduct("USB Cable", 900, 50)
	suite.seedProduct("Monitor", 27900, 7)

	query, err := queries.NewGetProductsQuery(1, 10, "usb")
	suite.Require().NoError(err)
	handler := queries.NewGetProductsQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 2)
}

func (suite *ProductQueriesIntegrationTestSuite) TestGetProducts_PagingLimitsResults() {
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		suite.seedProduct(name, 1000, 1)
	}

	handler := queries.NewGetProductsQueryHandler(suite.db)

	firstPage, err := queries.NewGetProductsQuery(1, 2, "")
	suite.Require().NoError(err)
	lastPage, err := queries.NewGetProductsQuery(3, 2, "")
	suite.Require().NoError(err)

	first, err := handler.Handle(context.Background(), firstPage)
	suite.Require().NoError(err)
	last, err := handler.Handle(context.Background(), lastPage)
	suite.Require().NoError(err)

	suite.Len(first, 2)
	suite.Len(last, 1)
	suite.Equal("A", first[0].Name)
	suite.Equal("E", last[0].Name)
}

func (suite *ProductQueriesIntegrationTestSuite) TestGetProduct_ReturnsSingleProduct() {
	stored := suite.seedProduct("Webcam", 8900, 5)

	query, err := queries.NewGetProductQuery(stored.ID())
	suite.Require().NoError(err)
	handler := queries.NewGetProductQueryHandler(suite.db)

	resp, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(resp.ID.IsEqual(stored.ID()))
	suite.Equal("Webcam", resp.Name)
	suite.Equal(int64(8900), resp.Price)
	suite.Equal(5, resp.Stock)
}

func (suite *ProductQueriesIntegrationTestSuite) TestGetProduct_UnknownID_ReturnsObjectNotFound() {
	query, err := queries.NewGetProductQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	handler := queries.NewGetProductQueryHandler(suite.db)

	_, err = handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestProductQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductQueriesIntegrationTestSuite))
}
