package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omgcarlo/RetailSavvy/internal/config"
	"github.com/omgcarlo/RetailSavvy/internal/repository/memory"
	"github.com/omgcarlo/RetailSavvy/internal/router"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Env:                "development",
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		Currency:           "PHP",
	}
	_, repos := memory.NewRegistry()
	return router.New(cfg, repos, nil, nil)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func authToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	creds := map[string]string{"username": "admin", "password": "admin123"}

	w := doJSON(t, r, http.MethodPost, "/api/register", "", creds)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/login", "", creds)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealth(t *testing.T) {
	r := newTestServer(t)
	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRequired(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/products", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/products", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	r := newTestServer(t)
	_ = authToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/login", "", map[string]string{
		"username": "admin", "password": "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCurrentUser(t *testing.T) {
	r := newTestServer(t)
	token := authToken(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/user", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var u map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
	assert.Equal(t, "admin", u["username"])
	assert.NotContains(t, u, "password")
}

func TestProductLifecycle(t *testing.T) {
	r := newTestServer(t)
	token := authToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/products", token, map[string]string{
		"name": "Laundry Soap Bar", "price": "19.99", "stock": "3",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID    int    `json:"id"`
		Price string `json:"price"`
		Stock int    `json:"stock"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "19.99", created.Price)
	assert.Equal(t, 3, created.Stock)

	w = doJSON(t, r, http.MethodPatch, "/api/products/1", token, map[string]string{"price": "21.50"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/products", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []struct {
		Name  string `json:"name"`
		Price string `json:"price"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Laundry Soap Bar", listed[0].Name)
	assert.Equal(t, "21.50", listed[0].Price)

	w = doJSON(t, r, http.MethodDelete, "/api/products/1", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestProductCreateValidation(t *testing.T) {
	r := newTestServer(t)
	token := authToken(t, r)

	// Missing required price field.
	w := doJSON(t, r, http.MethodPost, "/api/products", token, map[string]string{
		"name": "Soap", "stock": "3",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Negative price rejected past validation, in the service.
	w = doJSON(t, r, http.MethodPost, "/api/products", token, map[string]string{
		"name": "Soap", "price": "-1.00", "stock": "3",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransactionCreateAndReadBack(t *testing.T) {
	r := newTestServer(t)
	token := authToken(t, r)

	body := map[string]any{
		"total":  "25.00",
		"isPaid": 1,
		"items": []map[string]any{
			{"productId": 1, "quantity": 2, "price": "10.00"},
			{"productId": 2, "quantity": 1, "price": "5.00"},
		},
	}
	w := doJSON(t, r, http.MethodPost, "/api/transactions", token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID    int    `json:"id"`
		Total string `json:"total"`
		Items []struct {
			TransactionID int    `json:"transactionId"`
			Price         string `json:"price"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "25.00", created.Total)
	require.Len(t, created.Items, 2)
	for _, it := range created.Items {
		assert.Equal(t, created.ID, it.TransactionID)
	}

	w = doJSON(t, r, http.MethodGet, "/api/transactions/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/transactions/99", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTransactionCreateRejectsEmptyItems(t *testing.T) {
	r := newTestServer(t)
	token := authToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/transactions", token, map[string]any{
		"total": "0.00", "isPaid": 1, "items": []any{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDebtFlow(t *testing.T) {
	r := newTestServer(t)
	token := authToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/customers", token, map[string]string{"name": "Aling Nena"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/debts", token, map[string]any{
		"customerId": 1, "amount": "45.50", "isPaid": 0,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPatch, "/api/debts/1", token, map[string]any{"isPaid": 1})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated struct {
		IsPaid int    `json:"isPaid"`
		Amount string `json:"amount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 1, updated.IsPaid)
	assert.Equal(t, "45.50", updated.Amount)

	w = doJSON(t, r, http.MethodPatch, "/api/debts/99", token, map[string]any{"isPaid": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStatsSummary(t *testing.T) {
	r := newTestServer(t)
	token := authToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/transactions", token, map[string]any{
		"total": "25.00", "isPaid": 1,
		"items": []map[string]any{{"productId": 1, "quantity": 1, "price": "25.00"}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/expenses", token, map[string]any{
		"description": "Ice delivery", "amount": "4.25",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stats struct {
		TotalSales        string `json:"totalSales"`
		TotalExpenses     string `json:"totalExpenses"`
		TotalTransactions int    `json:"totalTransactions"`
		Currency          string `json:"currency"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, "25.00", stats.TotalSales)
	assert.Equal(t, "4.25", stats.TotalExpenses)
	assert.Equal(t, 1, stats.TotalTransactions)
	assert.Equal(t, "PHP", stats.Currency)
}
