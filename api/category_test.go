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

func categoryColumns() []string {
	return []string{"id", "name", "slug", "description", "image", "sort_order", "created_at", "updated_at", "deleted_at"}
}

func TestCategoryHandler_Delete_WithProducts(t *testing.T) {
	mock, cleanup := setupMenuMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `categories`").WithArgs(uint(3)).
		WillReturnRows(sqlmock.NewRows(categoryColumns()).
			AddRow(3, "Deri Çantalar", "deri-cantalar", "", "", 0, now, now, nil))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `products`").WithArgs(uint(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	router := gin.New()
	router.DELETE("/admin/categories/:id", NewCategoryHandler().Delete)
	req := httptest.NewRequest("DELETE", "/admin/categories/3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp["success"].(bool))
	assert.Equal(t, "Bu kategoride ürünler var, önce ürünleri taşıyın", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryHandler_Delete_Empty(t *testing.T) {
	mock, cleanup := setupMenuMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `categories`").WithArgs(uint(3)).
		WillReturnRows(sqlmock.NewRows(categoryColumns()).
			AddRow(3, "Cüzdanlar", "cuzdanlar", "", "", 0, now, now, nil))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `products`").WithArgs(uint(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `categories` SET `deleted_at`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.DELETE("/admin/categories/:id", NewCategoryHandler().Delete)
	req := httptest.NewRequest("DELETE", "/admin/categories/3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp["success"].(bool))
	require.NoError(t, mock.ExpectationsWereMet())
}
