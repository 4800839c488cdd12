package api

import (
	"net/http"

	"atolye/database"
	"atolye/models"

	"github.com/gin-gonic/gin"
)

// SettingHandler manages the store settings.
type SettingHandler struct{}

func NewSettingHandler() *SettingHandler {
	return &SettingHandler{}
}

// PublicSettings returns the whitelisted settings the storefront needs
// (store name, contact info, shipping fees).
// @Summary Public store settings
// @Tags Storefront
// @Produce json
// @Success 200 {object} map[string]interface{} "key/value map"
// @Router /api/v1/settings [get]
func (h *SettingHandler) PublicSettings(c *gin.Context) {
	var list []models.Setting
	if err := database.DB.Where("`key` IN ?", models.PublicSettingKeys).Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Ayarlar yüklenemedi")})
		return
	}
	out := make(map[string]string, len(list))
	for _, s := range list {
		out[s.Key] = s.Value
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": out})
}

// List returns every setting for the admin console.
// @Summary Setting list
// @Tags Admin-Settings
// @Produce json
// @Success 200 {object} map[string]interface{} "settings"
// @Router /admin/settings [get]
func (h *SettingHandler) List(c *gin.Context) {
	var list []models.Setting
	if err := database.DB.Order("`key` ASC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Ayarlar yüklenemedi")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

type SettingsUpdateRequest struct {
	Settings map[string]string `json:"settings" binding:"required"`
}

// Update upserts the given settings. Keys outside the known set are rejected
// so a typo cannot create an orphan row the storefront never reads.
// @Summary Update settings
// @Tags Admin-Settings
// @Accept json
// @Produce json
// @Param request body SettingsUpdateRequest true "values by key"
// @Success 200 {object} map[string]interface{} "saved"
// @Failure 400 {object} map[string]interface{} "unknown setting key"
// @Router /admin/settings [put]
func (h *SettingHandler) Update(c *gin.Context) {
	var req SettingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": SafeErrorMessage(err, "Geçersiz istek")})
		return
	}
	for key := range req.Settings {
		if !models.IsPublicSetting(key) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Bilinmeyen ayar: " + key})
			return
		}
	}
	for key, value := range req.Settings {
		var s models.Setting
		err := database.DB.Where("`key` = ?", key).First(&s).Error
		if err != nil {
			s = models.Setting{Key: key, Value: value}
			err = database.DB.Create(&s).Error
		} else {
			err = database.DB.Model(&s).Update("value", value).Error
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Ayarlar kaydedilemedi")})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Ayarlar kaydedildi"})
}
