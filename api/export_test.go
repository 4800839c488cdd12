package api

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderColumns() []string {
	return []string{"id", "order_no", "user_id", "customer_name", "phone", "email", "address", "city", "note", "status", "payment_method", "items_total", "shipping_fee", "total", "created_at", "updated_at", "deleted_at"}
}

func TestExportHandler_ExportCSV(t *testing.T) {
	mock, cleanup := setupMenuMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `orders`").
		WillReturnRows(sqlmock.NewRows(orderColumns()).
			AddRow(1, "AT20260115-3F7A1C", nil, "Ayşe Yılmaz", "05551234567", "", "Çiçek Sok. No:3", "İstanbul", "", "pending", "cash_on_delivery", 899.90, 0, 899.90, now, now, nil))
	// Preload of the order lines.
	mock.ExpectQuery("SELECT .* FROM `order_items`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id", "name", "price", "quantity", "image", "created_at"}).
			AddRow(1, 1, 1, "Deri Omuz Çantası", 899.90, 1, "", now))

	router := gin.New()
	router.GET("/admin/export/csv", NewExportHandler().ExportCSV)

	req := httptest.NewRequest("GET", "/admin/export/csv?start_time=2026-01-01&end_time=2026-01-31", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "siparisler_20260101_20260131.csv")
	assert.Contains(t, w.Body.String(), "Sipariş No")
	assert.Contains(t, w.Body.String(), "AT20260115-3F7A1C")
	assert.Contains(t, w.Body.String(), "899.90")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_ExportCSV_MissingParams(t *testing.T) {
	router := gin.New()
	router.GET("/admin/export/csv", NewExportHandler().ExportCSV)

	req := httptest.NewRequest("GET", "/admin/export/csv", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestExportHandler_ExportExcel_BadDate(t *testing.T) {
	router := gin.New()
	router.GET("/admin/export/excel", NewExportHandler().ExportExcel)

	req := httptest.NewRequest("GET", "/admin/export/excel?start_time=01.01.2026&end_time=2026-01-31", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}
