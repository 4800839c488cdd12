package api

import (
	"net/http"
	"strconv"
	"strings"

	"atolye/database"
	"atolye/models"

	"github.com/gin-gonic/gin"
)

// CollectionHandler manages curated product collections.
type CollectionHandler struct{}

func NewCollectionHandler() *CollectionHandler {
	return &CollectionHandler{}
}

type CollectionCreateRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Slug        string `json:"slug" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
	Image       string `json:"image" binding:"omitempty,max=255"`
	IsActive    *bool  `json:"is_active"`
}

type CollectionUpdateRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Slug        *string `json:"slug" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Image       *string `json:"image" binding:"omitempty,max=255"`
	IsActive    *bool   `json:"is_active"`
}

// List returns collections. The public route filters to active ones, the
// admin list shows everything.
// @Summary Collection list
// @Tags Storefront
// @Produce json
// @Param all query bool false "include inactive (admin)"
// @Success 200 {object} map[string]interface{} "collections"
// @Router /api/v1/collections [get]
func (h *CollectionHandler) List(c *gin.Context) {
	q := database.DB.Order("id ASC")
	if c.Query("all") != "true" {
		q = q.Where("is_active = ?", true)
	}
	var list []models.Collection
	if err := q.Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Koleksiyonlar yüklenemedi")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

// Create adds a collection.
// @Summary Create collection
// @Tags Admin-Catalog
// @Accept json
// @Produce json
// @Param request body CollectionCreateRequest true "collection"
// @Success 200 {object} map[string]interface{} "created"
// @Failure 400 {object} map[string]interface{} "duplicate name or slug"
// @Router /admin/collections [post]
func (h *CollectionHandler) Create(c *gin.Context) {
	var req CollectionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": SafeErrorMessage(err, "Geçersiz istek")})
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Koleksiyon adı boş olamaz"})
		return
	}
	var existing models.Collection
	if err := database.DB.Where("name = ? OR slug = ?", req.Name, req.Slug).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Bu isim veya bağlantı zaten kullanılıyor"})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	col := models.Collection{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Image:       req.Image,
		IsActive:    isActive,
	}
	if err := database.DB.Create(&col).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Koleksiyon oluşturulamadı")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Koleksiyon oluşturuldu", "data": col})
}

// Update edits a collection.
// @Summary Update collection
// @Tags Admin-Catalog
// @Accept json
// @Produce json
// @Param id path int true "collection id"
// @Param request body CollectionUpdateRequest true "fields to change"
// @Success 200 {object} map[string]interface{} "updated"
// @Failure 404 {object} map[string]interface{} "unknown collection"
// @Router /admin/collections/{id} [put]
func (h *CollectionHandler) Update(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Geçersiz ID"})
		return
	}
	var col models.Collection
	if err := database.DB.First(&col, uint(id64)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Koleksiyon bulunamadı"})
		return
	}
	var req CollectionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": SafeErrorMessage(err, "Geçersiz istek")})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Koleksiyon adı boş olamaz"})
			return
		}
		updates["name"] = name
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Değişiklik yok"})
		return
	}
	if err := database.DB.Model(&col).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Koleksiyon güncellenemedi")})
		return
	}
	database.DB.First(&col, col.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Koleksiyon güncellendi", "data": col})
}

// Delete removes a collection unless products still reference it.
// @Summary Delete collection
// @Tags Admin-Catalog
// @Produce json
// @Param id path int true "collection id"
// @Success 200 {object} map[string]interface{} "deleted"
// @Failure 400 {object} map[string]interface{} "products still reference it"
// @Router /admin/collections/{id} [delete]
func (h *CollectionHandler) Delete(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Geçersiz ID"})
		return
	}
	var col models.Collection
	if err := database.DB.First(&col, uint(id64)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Koleksiyon bulunamadı"})
		return
	}
	var productCount int64
	if err := database.DB.Model(&models.Product{}).Where("collection_id = ?", col.ID).Count(&productCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Sorgu başarısız")})
		return
	}
	if productCount > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Bu koleksiyonda ürünler var, önce ürünleri taşıyın"})
		return
	}
	if err := database.DB.Delete(&col).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Koleksiyon silinemedi")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Koleksiyon silindi"})
}
