package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"atolye/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_Checkout_EmptyCart(t *testing.T) {
	_, cleanup := setupMenuMockDB(t)
	defer cleanup()

	router := gin.New()
	router.POST("/api/v1/orders", NewOrderHandler(&config.Config{}).Checkout)
	body := `{"customer_name":"Ayşe Yılmaz","phone":"05551234567","address":"Çiçek Sok. No:3 Kadıköy İstanbul","items":[]}`
	req := httptest.NewRequest("POST", "/api/v1/orders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp["success"].(bool))
}

func TestOrderHandler_Checkout_InsufficientStock(t *testing.T) {
	mock, cleanup := setupMenuMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `products`").WithArgs(true, uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "description", "price", "stock", "image", "is_active", "category_id", "collection_id", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, "Deri Omuz Çantası", "deri-omuz-cantasi", "", 899.90, 1, "", true, nil, nil, now, now, nil))
	mock.ExpectRollback()

	router := gin.New()
	router.POST("/api/v1/orders", NewOrderHandler(&config.Config{}).Checkout)
	body := `{"customer_name":"Ayşe Yılmaz","phone":"05551234567","address":"Çiçek Sok. No:3 Kadıköy İstanbul","items":[{"product_id":1,"quantity":3}]}`
	req := httptest.NewRequest("POST", "/api/v1/orders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp["success"].(bool))
	assert.True(t, strings.Contains(resp["message"].(string), "yetersiz stok"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderHandler_Track_RequiresBothParams(t *testing.T) {
	_, cleanup := setupMenuMockDB(t)
	defer cleanup()

	router := gin.New()
	router.GET("/api/v1/orders/track", NewOrderHandler(&config.Config{}).Track)
	req := httptest.NewRequest("GET", "/api/v1/orders/track?order_no=AT20260829-ABC123", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Sipariş numarası ve telefon gerekli", resp["message"])
}

func TestOrderHandler_Track_NotFound(t *testing.T) {
	mock, cleanup := setupMenuMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `orders`").
		WithArgs("AT20260829-ABC123", "05551234567").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	router := gin.New()
	router.GET("/api/v1/orders/track", NewOrderHandler(&config.Config{}).Track)
	req := httptest.NewRequest("GET", "/api/v1/orders/track?order_no=AT20260829-ABC123&phone=05551234567", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Sipariş bulunamadı", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderHandler_UpdateStatus_InvalidStatus(t *testing.T) {
	_, cleanup := setupMenuMockDB(t)
	defer cleanup()

	router := gin.New()
	router.PUT("/admin/orders/:id/status", NewOrderHandler(&config.Config{}).UpdateStatus)
	body := `{"status":"teleported"}`
	req := httptest.NewRequest("PUT", "/admin/orders/1/status", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Geçersiz sipariş durumu", resp["message"])
}
