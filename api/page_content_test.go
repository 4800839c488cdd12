package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"atolye/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageColumns() []string {
	return []string{"id", "page_key", "field_key", "content", "created_at", "updated_at"}
}

func TestPageContentHandler_GetPage_OmitsEmptyFields(t *testing.T) {
	mock, cleanup := setupMenuMockDB(t)
	defer cleanup()

	now := time.Now()
	// story is stored out of shape order and mission is missing entirely;
	// the response follows the page shape, not the storage order.
	mock.ExpectQuery("SELECT .* FROM `page_contents`").WithArgs("about").
		WillReturnRows(sqlmock.NewRows(pageColumns()).
			AddRow(3, "about", "story", "<p>Bir atölyede başladı</p>", now, now).
			AddRow(1, "about", "intro", "<p>Merhaba</p>", now, now).
			AddRow(2, "about", "team", "", now, now))

	router := gin.New()
	router.GET("/api/v1/pages/:key", NewPageContentHandler().GetPage)
	req := httptest.NewRequest("GET", "/api/v1/pages/about", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp["success"].(bool))
	data := resp["data"].(map[string]interface{})
	fields := data["fields"].([]interface{})
	require.Len(t, fields, 2)
	assert.Equal(t, "intro", fields[0].(map[string]interface{})["key"])
	assert.Equal(t, "story", fields[1].(map[string]interface{})["key"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPageContentHandler_GetPage_EmptyPageIs404(t *testing.T) {
	mock, cleanup := setupMenuMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `page_contents`").WithArgs("about").
		WillReturnRows(sqlmock.NewRows(pageColumns()))

	router := gin.New()
	router.GET("/api/v1/pages/:key", NewPageContentHandler().GetPage)
	req := httptest.NewRequest("GET", "/api/v1/pages/about", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp["success"].(bool))
	assert.Equal(t, "Sayfa bulunamadı", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPageContentHandler_GetPageForEdit_ReturnsFullShape(t *testing.T) {
	mock, cleanup := setupMenuMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `page_contents`").WithArgs("contact").
		WillReturnRows(sqlmock.NewRows(pageColumns()).
			AddRow(1, "contact", "phone", "0555 123 45 67", now, now))

	router := gin.New()
	router.GET("/admin/pages/:key", NewPageContentHandler().GetPageForEdit)
	req := httptest.NewRequest("GET", "/admin/pages/contact", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	fields := data["fields"].([]interface{})
	require.Len(t, fields, 6)
	// Empty slots come back too so the editor can render them.
	first := fields[0].(map[string]interface{})
	assert.Equal(t, "info", first["key"])
	assert.Equal(t, "", first["content"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPageContentHandler_UpdatePage_RejectsUnknownField(t *testing.T) {
	_, cleanup := setupMenuMockDB(t)
	defer cleanup()

	router := gin.New()
	router.PUT("/admin/pages/:key", NewPageContentHandler().UpdatePage)
	body := `{"fields":{"banner":"<p>x</p>"}}`
	req := httptest.NewRequest("PUT", "/admin/pages/about", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp["success"].(bool))
	assert.Equal(t, "Bu sayfada böyle bir alan yok: banner", resp["message"])
}

func TestPageContentHandler_UpdatePage_EmptyContentDeletes(t *testing.T) {
	mock, cleanup := setupMenuMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `page_contents`").WithArgs("about", "intro").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.PUT("/admin/pages/:key", NewPageContentHandler().UpdatePage)
	body := `{"fields":{"intro":""}}`
	req := httptest.NewRequest("PUT", "/admin/pages/about", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp["success"].(bool))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPageFieldsShapes(t *testing.T) {
	assert.Equal(t, []string{"intro", "mission", "vision", "story", "team"}, pageFieldKeys("about"))
	assert.Equal(t, []string{"info", "address", "phone", "email", "map", "hours"}, pageFieldKeys("contact"))
	// Anything else is a single free-form page.
	assert.Equal(t, []string{"content"}, pageFieldKeys("kargo-ve-iade"))
}

func pageFieldKeys(pageKey string) []string {
	var keys []string
	for _, f := range models.PageFields(pageKey) {
		keys = append(keys, f.Key)
	}
	return keys
}
