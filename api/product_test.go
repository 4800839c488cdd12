package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productColumns() []string {
	return []string{"id", "name", "slug", "description", "price", "stock", "image", "is_active", "category_id", "collection_id", "created_at", "updated_at", "deleted_at"}
}

// The storefront list always filters on is_active; no query parameter can
// widen it to hidden products.
func TestProductHandler_List_AlwaysFiltersInactive(t *testing.T) {
	mock, cleanup := setupMenuMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `products` WHERE is_active = \\?").
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT .* FROM `products` WHERE is_active = \\?").
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(productColumns()).
			AddRow(1, "Deri Omuz Çantası", "deri-omuz-cantasi", "", 899.90, 3, "", true, nil, nil, now, now, nil))

	router := gin.New()
	router.GET("/api/v1/products", NewProductHandler().List)
	req := httptest.NewRequest("GET", "/api/v1/products?all=true", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["total"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductHandler_AdminList_IncludesInactive(t *testing.T) {
	mock, cleanup := setupMenuMockDB(t)
	defer cleanup()

	now := time.Now()
	// Only the soft-delete clause remains when the console lists products.
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `products` WHERE `products`\\.`deleted_at` IS NULL").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery("SELECT .* FROM `products` WHERE `products`\\.`deleted_at` IS NULL").
		WillReturnRows(sqlmock.NewRows(productColumns()).
			AddRow(1, "Deri Omuz Çantası", "deri-omuz-cantasi", "", 899.90, 3, "", true, nil, nil, now, now, nil).
			AddRow(2, "Taslak Çanta", "taslak-canta", "", 499.90, 0, "", false, nil, nil, now, now, nil))

	router := gin.New()
	router.GET("/admin/products", NewProductHandler().AdminList)
	req := httptest.NewRequest("GET", "/admin/products", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["total"])
	list := data["list"].([]interface{})
	require.Len(t, list, 2)
	assert.Equal(t, false, list[1].(map[string]interface{})["is_active"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductHandler_Get_InactiveIs404(t *testing.T) {
	mock, cleanup := setupMenuMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `products`").WithArgs(true, uint(7)).
		WillReturnRows(sqlmock.NewRows(productColumns()))

	router := gin.New()
	router.GET("/api/v1/products/:id", NewProductHandler().Get)
	req := httptest.NewRequest("GET", "/api/v1/products/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ürün bulunamadı", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}
