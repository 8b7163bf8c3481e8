//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dakshilalbetrios/curtain-be/internal/adapters/db"
	redis_a "github.com/dakshilalbetrios/curtain-be/internal/adapters/redis_adapter"
	"github.com/dakshilalbetrios/curtain-be/internal/core/domain"
	"github.com/dakshilalbetrios/curtain-be/internal/core/services"
	"github.com/dakshilalbetrios/curtain-be/internal/handlers"
	"github.com/dakshilalbetrios/curtain-be/internal/handlers/middleware"
	"github.com/dakshilalbetrios/curtain-be/test/helpers"
)

type OrderWorkflowE2ESuite struct {
	suite.Suite
	server    *httptest.Server
	client    *http.Client
	baseURL   string
	testDB    *helpers.TestDB
	testRedis *helpers.TestRedis

	adminID    string
	staffID    string
	customerID string
	strangerID string
}

func (s *OrderWorkflowE2ESuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.testRedis = helpers.SetupTestRedis(s.T())

	s.adminID = strconv.FormatInt(helpers.SeedTestUser(s.T(), s.testDB.PgxPool, domain.RoleAdmin), 10)
	s.staffID = strconv.FormatInt(helpers.SeedTestUser(s.T(), s.testDB.PgxPool, domain.RoleStaff), 10)
	s.customerID = strconv.FormatInt(helpers.SeedTestUser(s.T(), s.testDB.PgxPool, domain.RoleCustomer), 10)
	s.strangerID = strconv.FormatInt(helpers.SeedTestUser(s.T(), s.testDB.PgxPool, domain.RoleCustomer), 10)

	s.server = s.startTestServer()
	s.client = &http.Client{Timeout: 10 * time.Second}
	s.baseURL = s.server.URL + "/api/v1"
}

func (s *OrderWorkflowE2ESuite) TearDownSuite() {
	s.server.Close()
}

func (s *OrderWorkflowE2ESuite) startTestServer() *httptest.Server {
	logger := helpers.TestLogger()

	cache := redis_a.NewCache(s.testRedis.Client, logger)
	unitRepo := db.NewStockUnitRepository(logger)
	movementRepo := db.NewStockMovementRepository(logger)
	collectionRepo := db.NewCollectionRepository(logger)
	accessRepo := db.NewCollectionAccessRepository(logger)
	orderRepo := db.NewOrderRepository(logger)
	orderItemRepo := db.NewOrderItemRepository(logger)

	stockService := services.NewStockService(s.testDB.Database, unitRepo, movementRepo, cache, time.Minute, logger)
	orderService := services.NewOrderService(s.testDB.Database, orderRepo, orderItemRepo, unitRepo, stockService, 7, logger)
	collectionService := services.NewCollectionService(s.testDB.Database, collectionRepo, unitRepo, accessRepo, stockService, logger)

	stockHandler := handlers.NewStockHandler(stockService, logger)
	orderHandler := handlers.NewOrderHandler(orderService, logger)
	collectionHandler := handlers.NewCollectionHandler(collectionService, stockService, logger)
	accessHandler := handlers.NewAccessHandler(collectionService, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/collections", collectionHandler.CreateCollection)
	mux.HandleFunc("GET /api/v1/collections/{id}", collectionHandler.GetCollection)
	mux.HandleFunc("GET /api/v1/stock-units/{id}", stockHandler.GetStockUnit)
	mux.HandleFunc("POST /api/v1/stock-units/{id}/movements", stockHandler.CreateMovement)
	mux.HandleFunc("GET /api/v1/stock-units/{id}/movements", stockHandler.ListMovements)
	mux.HandleFunc("POST /api/v1/orders", orderHandler.CreateOrder)
	mux.HandleFunc("GET /api/v1/orders", orderHandler.ListOrders)
	mux.HandleFunc("GET /api/v1/orders/{id}", orderHandler.GetOrder)
	mux.HandleFunc("PATCH /api/v1/orders/{id}/status", orderHandler.UpdateStatus)
	mux.HandleFunc("POST /api/v1/users/{id}/collections", accessHandler.GrantAccess)
	mux.HandleFunc("GET /api/v1/users/{id}/collections", accessHandler.ListCustomerAccess)

	var handler http.Handler = mux
	handler = middleware.Actor("X-User-ID", "X-User-Role")(handler)
	handler = middleware.RequestID(handler)

	return httptest.NewServer(handler)
}

func (s *OrderWorkflowE2ESuite) TestCompleteOrderWorkflow() {
	// 1. Create a collection with nested serial numbers
	createReq := map[string]interface{}{
		"name":        "Aurora Sheer",
		"description": "Lightweight sheer fabric",
		"serial_numbers": []map[string]interface{}{
			{"sr_no": "AUR-100", "current_stock": "100", "min_stock": "10", "max_stock": "500", "unit": "mtr"},
			{"sr_no": "AUR-101", "current_stock": "80", "min_stock": "10", "max_stock": "500", "unit": "mtr"},
		},
	}

	resp := s.makeRequest("POST", "/collections", createReq, s.adminID, "ADMIN")
	s.Equal(http.StatusCreated, resp.StatusCode)

	var created map[string]interface{}
	s.decodeResponse(resp, &created)
	collectionID := int64(created["id"].(float64))
	units := created["serial_numbers"].([]interface{})
	s.Len(units, 2)
	unitID := int64(units[0].(map[string]interface{})["id"].(float64))

	// 2. Retrieve the collection with its units
	resp = s.makeRequest("GET", fmt.Sprintf("/collections/%d", collectionID), nil, s.adminID, "ADMIN")
	s.Equal(http.StatusOK, resp.StatusCode)

	var retrieved map[string]interface{}
	s.decodeResponse(resp, &retrieved)
	s.Equal("Aurora Sheer", retrieved["name"])

	// 3. Restock the first unit
	movementReq := map[string]interface{}{
		"action":   "IN",
		"quantity": "50",
		"message":  "Restocked from supplier",
	}
	resp = s.makeRequest("POST", fmt.Sprintf("/stock-units/%d/movements", unitID), movementReq, s.staffID, "STAFF")
	s.Equal(http.StatusCreated, resp.StatusCode)
	s.Equal("150", s.currentStock(unitID))

	// 4. Place an order as a customer
	orderReq := map[string]interface{}{
		"order_items": []map[string]interface{}{
			{"stock_unit_id": unitID, "quantity": "30"},
		},
	}
	resp = s.makeRequest("POST", "/orders", orderReq, s.customerID, "CUSTOMER")
	s.Equal(http.StatusCreated, resp.StatusCode)

	var order map[string]interface{}
	s.decodeResponse(resp, &order)
	orderID := int64(order["id"].(float64))
	s.Equal("PENDING", order["status"])

	// 5. Stock is reserved immediately
	s.Equal("120", s.currentStock(unitID))

	// 6. Approve the order
	resp = s.makeRequest("PATCH", fmt.Sprintf("/orders/%d/status", orderID),
		map[string]interface{}{"status": "APPROVED"}, s.adminID, "ADMIN")
	s.Equal(http.StatusOK, resp.StatusCode)

	// 7. Customer sees their own order, not others'
	resp = s.makeRequest("GET", fmt.Sprintf("/orders/%d", orderID), nil, s.customerID, "CUSTOMER")
	s.Equal(http.StatusOK, resp.StatusCode)

	resp = s.makeRequest("GET", fmt.Sprintf("/orders/%d", orderID), nil, s.strangerID, "CUSTOMER")
	s.Equal(http.StatusForbidden, resp.StatusCode)

	// 8. Cancelling restores the reserved stock
	resp = s.makeRequest("PATCH", fmt.Sprintf("/orders/%d/status", orderID),
		map[string]interface{}{"status": "CANCELLED"}, s.adminID, "ADMIN")
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("150", s.currentStock(unitID))

	// 9. Cancelling again is rejected and does not restore twice
	resp = s.makeRequest("PATCH", fmt.Sprintf("/orders/%d/status", orderID),
		map[string]interface{}{"status": "CANCELLED"}, s.adminID, "ADMIN")
	s.Equal(http.StatusConflict, resp.StatusCode)
	s.Equal("150", s.currentStock(unitID))

	// 10. The ledger carries the full history: opening, restock, sale,
	// cancellation reversal
	resp = s.makeRequest("GET", fmt.Sprintf("/stock-units/%d/movements", unitID), nil, s.adminID, "ADMIN")
	s.Equal(http.StatusOK, resp.StatusCode)

	var movements map[string]interface{}
	s.decodeResponse(resp, &movements)
	s.Len(movements["data"].([]interface{}), 4)
}

func (s *OrderWorkflowE2ESuite) TestInsufficientStockRejected() {
	createReq := map[string]interface{}{
		"name": "Velvet Royale",
		"serial_numbers": []map[string]interface{}{
			{"sr_no": "VEL-200", "current_stock": "5", "min_stock": "1", "max_stock": "50", "unit": "pcs"},
		},
	}

	resp := s.makeRequest("POST", "/collections", createReq, s.adminID, "ADMIN")
	s.Equal(http.StatusCreated, resp.StatusCode)

	var created map[string]interface{}
	s.decodeResponse(resp, &created)
	unitID := int64(created["serial_numbers"].([]interface{})[0].(map[string]interface{})["id"].(float64))

	orderReq := map[string]interface{}{
		"order_items": []map[string]interface{}{
			{"stock_unit_id": unitID, "quantity": "20"},
		},
	}
	resp = s.makeRequest("POST", "/orders", orderReq, s.customerID, "CUSTOMER")
	s.Equal(http.StatusConflict, resp.StatusCode)

	// Nothing was reserved
	s.Equal("5", s.currentStock(unitID))
}

func (s *OrderWorkflowE2ESuite) TestCollectionAccessGrantAndList() {
	createReq := map[string]interface{}{
		"name":        "Royal Velvet",
		"description": "Heavy velvet fabric",
	}
	resp := s.makeRequest("POST", "/collections", createReq, s.adminID, "ADMIN")
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var collection map[string]interface{}
	s.decodeResponse(resp, &collection)
	collectionID := int64(collection["id"].(float64))

	// Grant the customer visibility into the new collection.
	grantReq := map[string]interface{}{
		"collection_ids": []int64{collectionID},
	}
	resp = s.makeRequest("POST", fmt.Sprintf("/users/%s/collections", s.customerID), grantReq, s.adminID, "ADMIN")
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var granted map[string]interface{}
	s.decodeResponse(resp, &granted)
	s.Len(granted["access"].([]interface{}), 1)

	// Granting again is reported per row, not as a hard failure.
	resp = s.makeRequest("POST", fmt.Sprintf("/users/%s/collections", s.customerID), grantReq, s.adminID, "ADMIN")
	s.Require().Equal(http.StatusConflict, resp.StatusCode)

	var repeated map[string]interface{}
	s.decodeResponse(resp, &repeated)
	s.Len(repeated["errors"].([]interface{}), 1)

	// The grant shows up in the customer's access list.
	resp = s.makeRequest("GET", fmt.Sprintf("/users/%s/collections?status=ACTIVE", s.customerID), nil, s.adminID, "ADMIN")
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var list map[string]interface{}
	s.decodeResponse(resp, &list)
	access := list["data"].([]interface{})
	s.Require().Len(access, 1)
	s.Equal("ACTIVE", access[0].(map[string]interface{})["status"])
}

func (s *OrderWorkflowE2ESuite) makeRequest(method, path string, body interface{}, userID, role string) *http.Response {
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reqBody)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", userID)
	req.Header.Set("X-User-Role", role)

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	return resp
}

func (s *OrderWorkflowE2ESuite) decodeResponse(resp *http.Response, v interface{}) {
	defer resp.Body.Close()
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(v))
}

func (s *OrderWorkflowE2ESuite) currentStock(unitID int64) string {
	resp := s.makeRequest("GET", fmt.Sprintf("/stock-units/%d", unitID), nil, s.adminID, "ADMIN")
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var unit map[string]interface{}
	s.decodeResponse(resp, &unit)
	return unit["current_stock"].(string)
}

func TestOrderWorkflowE2ESuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}
	suite.Run(t, new(OrderWorkflowE2ESuite))
}
