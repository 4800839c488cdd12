package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"atolye/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPublicSetting(t *testing.T) {
	for _, k := range models.PublicSettingKeys {
		assert.True(t, models.IsPublicSetting(k), k)
	}
	assert.False(t, models.IsPublicSetting("smtp_password"))
	assert.False(t, models.IsPublicSetting(""))
}

func TestSettingHandler_Update_RejectsUnknownKey(t *testing.T) {
	_, cleanup := setupMenuMockDB(t)
	defer cleanup()

	router := gin.New()
	router.PUT("/admin/settings", NewSettingHandler().Update)
	body := `{"settings":{"smtp_password":"hunter2"}}`
	req := httptest.NewRequest("PUT", "/admin/settings", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp["success"].(bool))
	assert.Equal(t, "Bilinmeyen ayar: smtp_password", resp["message"])
}

func TestSettingHandler_Update_UpsertsKnownKey(t *testing.T) {
	mock, cleanup := setupMenuMockDB(t)
	defer cleanup()

	// No existing row: the value is inserted.
	mock.ExpectQuery("SELECT .* FROM `settings`").WithArgs("phone").
		WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `settings`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.PUT("/admin/settings", NewSettingHandler().Update)
	body := `{"settings":{"phone":"0555 123 45 67"}}`
	req := httptest.NewRequest("PUT", "/admin/settings", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp["success"].(bool))
	require.NoError(t, mock.ExpectationsWereMet())
}
