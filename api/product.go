package api

import (
	"net/http"
	"strconv"
	"strings"

	"atolye/database"
	"atolye/models"

	"github.com/gin-gonic/gin"
)

// ProductHandler serves the catalog and its admin CRUD.
type ProductHandler struct{}

func NewProductHandler() *ProductHandler {
	return &ProductHandler{}
}

type ProductCreateRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=150"`
	Slug         string  `json:"slug" binding:"required,min=1,max=150"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	Stock        int     `json:"stock" binding:"gte=0"`
	Image        string  `json:"image" binding:"omitempty,max=255"`
	IsActive     *bool   `json:"is_active"`
	CategoryID   *uint   `json:"category_id"`
	CollectionID *uint   `json:"collection_id"`
}

type ProductUpdateRequest struct {
	Name         *string  `json:"name" binding:"omitempty,min=1,max=150"`
	Slug         *string  `json:"slug" binding:"omitempty,min=1,max=150"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price" binding:"omitempty,gt=0"`
	Stock        *int     `json:"stock" binding:"omitempty,gte=0"`
	Image        *string  `json:"image" binding:"omitempty,max=255"`
	IsActive     *bool    `json:"is_active"`
	CategoryID   *uint    `json:"category_id"`
	CollectionID *uint    `json:"collection_id"`
}

type ProductListRequest struct {
	Page         int     `form:"page"`
	PageSize     int     `form:"page_size"`
	Query        string  `form:"q"`
	CategoryID   uint    `form:"category_id"`
	CollectionID uint    `form:"collection_id"`
	MinPrice     float64 `form:"min_price"`
	MaxPrice     float64 `form:"max_price"`
}

// List returns active catalog products with substring search, filters and
// paging. Search is a plain LIKE match; there is no relevance ranking.
// @Summary Product list
// @Tags Storefront
// @Produce json
// @Param page query int false "page" default(1)
// @Param page_size query int false "page size" default(12)
// @Param q query string false "substring search on name"
// @Param category_id query int false "category filter"
// @Param collection_id query int false "collection filter"
// @Param min_price query number false "minimum price"
// @Param max_price query number false "maximum price"
// @Success 200 {object} Response{data=PageResponse} "products"
// @Router /api/v1/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	h.list(c, false)
}

// AdminList is the console listing; it includes inactive products. Which
// variant a caller gets is fixed at routing time, never by a request flag.
// @Summary Product list (admin)
// @Tags Admin-Catalog
// @Produce json
// @Param page query int false "page" default(1)
// @Param page_size query int false "page size" default(12)
// @Param q query string false "substring search on name"
// @Param category_id query int false "category filter"
// @Param collection_id query int false "collection filter"
// @Param min_price query number false "minimum price"
// @Param max_price query number false "maximum price"
// @Success 200 {object} Response{data=PageResponse} "products"
// @Router /admin/products [get]
func (h *ProductHandler) AdminList(c *gin.Context) {
	h.list(c, true)
}

func (h *ProductHandler) list(c *gin.Context, includeInactive bool) {
	var req ProductListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Geçersiz istek"))
		return
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 || req.PageSize > 100 {
		req.PageSize = 12
	}

	q := database.DB.Model(&models.Product{})
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	if s := strings.TrimSpace(req.Query); s != "" {
		q = q.Where("name LIKE ?", "%"+escapeLikeValue(s)+"%")
	}
	if req.CategoryID > 0 {
		q = q.Where("category_id = ?", req.CategoryID)
	}
	if req.CollectionID > 0 {
		q = q.Where("collection_id = ?", req.CollectionID)
	}
	if req.MinPrice > 0 {
		q = q.Where("price >= ?", req.MinPrice)
	}
	if req.MaxPrice > 0 {
		q = q.Where("price <= ?", req.MaxPrice)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Ürünler yüklenemedi"))
		return
	}

	var products []models.Product
	if err := q.Order("created_at DESC, id DESC").
		Offset((req.Page - 1) * req.PageSize).
		Limit(req.PageSize).
		Find(&products).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Ürünler yüklenemedi"))
		return
	}

	Success(c, PageResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		List:     products,
	})
}

// Get returns one product by numeric id or slug. Unknown products are a 404
// with a Turkish message the storefront shows inline.
// @Summary Product detail
// @Tags Storefront
// @Produce json
// @Param id path string true "product id or slug"
// @Success 200 {object} map[string]interface{} "product"
// @Failure 404 {object} map[string]interface{} "unknown product"
// @Router /api/v1/products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	key := c.Param("id")

	var product models.Product
	var err error
	if id64, convErr := strconv.ParseUint(key, 10, 32); convErr == nil {
		err = database.DB.Where("is_active = ?", true).First(&product, uint(id64)).Error
	} else {
		err = database.DB.Where("slug = ? AND is_active = ?", key, true).First(&product).Error
	}
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Ürün bulunamadı"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
}

// Create adds a product.
// @Summary Create product
// @Tags Admin-Catalog
// @Accept json
// @Produce json
// @Param request body ProductCreateRequest true "product"
// @Success 200 {object} map[string]interface{} "created"
// @Failure 400 {object} map[string]interface{} "validation error"
// @Router /admin/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": SafeErrorMessage(err, "Geçersiz istek")})
		return
	}

	var existing models.Product
	if err := database.DB.Where("slug = ?", req.Slug).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Bu bağlantı zaten kullanılıyor"})
		return
	}
	if req.CategoryID != nil {
		var cat models.Category
		if err := database.DB.First(&cat, *req.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Kategori bulunamadı"})
			return
		}
	}
	if req.CollectionID != nil {
		var col models.Collection
		if err := database.DB.First(&col, *req.CollectionID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Koleksiyon bulunamadı"})
			return
		}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	product := models.Product{
		Name:         strings.TrimSpace(req.Name),
		Slug:         req.Slug,
		Description:  req.Description,
		Price:        req.Price,
		Stock:        req.Stock,
		Image:        req.Image,
		IsActive:     isActive,
		CategoryID:   req.CategoryID,
		CollectionID: req.CollectionID,
	}
	if err := database.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Ürün oluşturulamadı")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Ürün oluşturuldu", "data": product})
}

// Update edits a product.
// @Summary Update product
// @Tags Admin-Catalog
// @Accept json
// @Produce json
// @Param id path int true "product id"
// @Param request body ProductUpdateRequest true "fields to change"
// @Success 200 {object} map[string]interface{} "updated"
// @Failure 404 {object} map[string]interface{} "unknown product"
// @Router /admin/products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Geçersiz ID"})
		return
	}
	var product models.Product
	if err := database.DB.First(&product, uint(id64)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Ürün bulunamadı"})
		return
	}
	var req ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": SafeErrorMessage(err, "Geçersiz istek")})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Slug != nil {
		var existing models.Product
		if err := database.DB.Where("slug = ? AND id != ?", *req.Slug, product.ID).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Bu bağlantı zaten kullanılıyor"})
			return
		}
		updates["slug"] = *req.Slug
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.CategoryID != nil {
		var cat models.Category
		if err := database.DB.First(&cat, *req.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Kategori bulunamadı"})
			return
		}
		updates["category_id"] = *req.CategoryID
	}
	if req.CollectionID != nil {
		var col models.Collection
		if err := database.DB.First(&col, *req.CollectionID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Koleksiyon bulunamadı"})
			return
		}
		updates["collection_id"] = *req.CollectionID
	}
	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Değişiklik yok"})
		return
	}
	if err := database.DB.Model(&product).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Ürün güncellenemedi")})
		return
	}
	database.DB.First(&product, product.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Ürün güncellendi", "data": product})
}

// Delete soft-deletes a product. Existing order lines keep their copied name
// and price, so history survives the delete.
// @Summary Delete product
// @Tags Admin-Catalog
// @Produce json
// @Param id path int true "product id"
// @Success 200 {object} map[string]interface{} "deleted"
// @Failure 404 {object} map[string]interface{} "unknown product"
// @Router /admin/products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Geçersiz ID"})
		return
	}
	var product models.Product
	if err := database.DB.First(&product, uint(id64)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Ürün bulunamadı"})
		return
	}
	if err := database.DB.Delete(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Ürün silinemedi")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Ürün silindi"})
}
