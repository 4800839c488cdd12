package api

import (
	"net/http"

	"atolye/database"
	"atolye/models"

	"github.com/gin-gonic/gin"
)

// PageContentHandler serves and edits the content pages (about, contact, ...).
type PageContentHandler struct{}

func NewPageContentHandler() *PageContentHandler {
	return &PageContentHandler{}
}

// PageFieldValue is one rendered slot of a page.
type PageFieldValue struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Content string `json:"content"`
}

// GetPage returns the fields of a page in their fixed dispatch order. Fields
// without stored content are omitted entirely; a page with no content at all
// is a 404 so the storefront can redirect to its not-found page.
// @Summary Page content
// @Tags Storefront
// @Produce json
// @Param key path string true "page key (about, contact, ...)"
// @Success 200 {object} map[string]interface{} "present fields in order"
// @Failure 404 {object} map[string]interface{} "no content for this page"
// @Router /api/v1/pages/{key} [get]
func (h *PageContentHandler) GetPage(c *gin.Context) {
	pageKey := c.Param("key")

	var rows []models.PageContent
	if err := database.DB.Where("page_key = ?", pageKey).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Sayfa yüklenemedi")})
		return
	}
	stored := make(map[string]string, len(rows))
	for _, r := range rows {
		stored[r.FieldKey] = r.Content
	}

	var fields []PageFieldValue
	for _, f := range models.PageFields(pageKey) {
		content, ok := stored[f.Key]
		if !ok || content == "" {
			continue
		}
		fields = append(fields, PageFieldValue{Key: f.Key, Label: f.Label, Content: content})
	}
	if len(fields) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Sayfa bulunamadı"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"page_key": pageKey, "fields": fields}})
}

// GetPageForEdit returns the full field shape of a page for the admin editor,
// including fields that have no content yet.
// @Summary Page content for editing
// @Tags Admin-Pages
// @Produce json
// @Param key path string true "page key"
// @Success 200 {object} map[string]interface{} "all fields of the page shape"
// @Router /admin/pages/{key} [get]
func (h *PageContentHandler) GetPageForEdit(c *gin.Context) {
	pageKey := c.Param("key")

	var rows []models.PageContent
	if err := database.DB.Where("page_key = ?", pageKey).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Sayfa yüklenemedi")})
		return
	}
	stored := make(map[string]string, len(rows))
	for _, r := range rows {
		stored[r.FieldKey] = r.Content
	}

	fields := make([]PageFieldValue, 0)
	for _, f := range models.PageFields(pageKey) {
		fields = append(fields, PageFieldValue{Key: f.Key, Label: f.Label, Content: stored[f.Key]})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"page_key": pageKey, "fields": fields}})
}

type PageUpdateRequest struct {
	Fields map[string]string `json:"fields" binding:"required"`
}

// UpdatePage upserts the given fields of a page. Field keys outside the
// page's shape are rejected; an empty content string removes the field so the
// renderer omits it.
// @Summary Update page content
// @Tags Admin-Pages
// @Accept json
// @Produce json
// @Param key path string true "page key"
// @Param request body PageUpdateRequest true "field contents by key"
// @Success 200 {object} map[string]interface{} "saved"
// @Failure 400 {object} map[string]interface{} "unknown field for this page"
// @Router /admin/pages/{key} [put]
func (h *PageContentHandler) UpdatePage(c *gin.Context) {
	pageKey := c.Param("key")

	var req PageUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": SafeErrorMessage(err, "Geçersiz istek")})
		return
	}
	for fieldKey := range req.Fields {
		if !models.HasPageField(pageKey, fieldKey) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Bu sayfada böyle bir alan yok: " + fieldKey})
			return
		}
	}

	for fieldKey, content := range req.Fields {
		if content == "" {
			if err := database.DB.Where("page_key = ? AND field_key = ?", pageKey, fieldKey).
				Delete(&models.PageContent{}).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Sayfa kaydedilemedi")})
				return
			}
			continue
		}
		var row models.PageContent
		err := database.DB.Where("page_key = ? AND field_key = ?", pageKey, fieldKey).First(&row).Error
		if err != nil {
			row = models.PageContent{PageKey: pageKey, FieldKey: fieldKey, Content: content}
			err = database.DB.Create(&row).Error
		} else {
			err = database.DB.Model(&row).Update("content", content).Error
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Sayfa kaydedilemedi")})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Sayfa içeriği kaydedildi"})
}
