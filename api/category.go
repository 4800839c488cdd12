package api

import (
	"net/http"
	"strconv"
	"strings"

	"atolye/database"
	"atolye/models"

	"github.com/gin-gonic/gin"
)

// CategoryHandler manages product categories.
type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

type CategoryCreateRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Slug        string `json:"slug" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
	Image       string `json:"image" binding:"omitempty,max=255"`
	SortOrder   int    `json:"sort_order"`
}

type CategoryUpdateRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Slug        *string `json:"slug" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Image       *string `json:"image" binding:"omitempty,max=255"`
	SortOrder   *int    `json:"sort_order"`
}

// List returns all categories in sort order.
// @Summary Category list
// @Tags Storefront
// @Produce json
// @Success 200 {object} map[string]interface{} "categories"
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	var list []models.Category
	if err := database.DB.Order("sort_order ASC, id ASC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Kategoriler yüklenemedi")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

// Create adds a category.
// @Summary Create category
// @Tags Admin-Catalog
// @Accept json
// @Produce json
// @Param request body CategoryCreateRequest true "category"
// @Success 200 {object} map[string]interface{} "created"
// @Failure 400 {object} map[string]interface{} "duplicate name or slug"
// @Router /admin/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": SafeErrorMessage(err, "Geçersiz istek")})
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Kategori adı boş olamaz"})
		return
	}

	var existing models.Category
	if err := database.DB.Where("name = ? OR slug = ?", req.Name, req.Slug).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Bu isim veya bağlantı zaten kullanılıyor"})
		return
	}

	cat := models.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Image:       req.Image,
		SortOrder:   req.SortOrder,
	}
	if err := database.DB.Create(&cat).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Kategori oluşturulamadı")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Kategori oluşturuldu", "data": cat})
}

// Update edits a category.
// @Summary Update category
// @Tags Admin-Catalog
// @Accept json
// @Produce json
// @Param id path int true "category id"
// @Param request body CategoryUpdateRequest true "fields to change"
// @Success 200 {object} map[string]interface{} "updated"
// @Failure 404 {object} map[string]interface{} "unknown category"
// @Router /admin/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Geçersiz ID"})
		return
	}

	var cat models.Category
	if err := database.DB.First(&cat, uint(id64)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Kategori bulunamadı"})
		return
	}

	var req CategoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": SafeErrorMessage(err, "Geçersiz istek")})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Kategori adı boş olamaz"})
			return
		}
		var existing models.Category
		if err := database.DB.Where("name = ? AND id != ?", name, cat.ID).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Bu isim zaten kullanılıyor"})
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
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Değişiklik yok"})
		return
	}

	if err := database.DB.Model(&cat).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Kategori güncellenemedi")})
		return
	}
	database.DB.First(&cat, cat.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Kategori güncellendi", "data": cat})
}

// Delete removes a category unless products still reference it.
// @Summary Delete category
// @Tags Admin-Catalog
// @Produce json
// @Param id path int true "category id"
// @Success 200 {object} map[string]interface{} "deleted"
// @Failure 400 {object} map[string]interface{} "products still reference it"
// @Router /admin/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Geçersiz ID"})
		return
	}
	var cat models.Category
	if err := database.DB.First(&cat, uint(id64)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Kategori bulunamadı"})
		return
	}
	var productCount int64
	if err := database.DB.Model(&models.Product{}).Where("category_id = ?", cat.ID).Count(&productCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Sorgu başarısız")})
		return
	}
	if productCount > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Bu kategoride ürünler var, önce ürünleri taşıyın"})
		return
	}
	if err := database.DB.Delete(&cat).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Kategori silinemedi")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Kategori silindi"})
}
