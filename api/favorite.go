package api

import (
	"net/http"
	"strconv"

	"atolye/database"
	"atolye/middleware"
	"atolye/models"

	"github.com/gin-gonic/gin"
)

// FavoriteHandler manages a customer's liked products.
type FavoriteHandler struct{}

func NewFavoriteHandler() *FavoriteHandler {
	return &FavoriteHandler{}
}

// List returns the signed-in customer's favorites with products attached.
// @Summary Favorite list
// @Tags Favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "favorites"
// @Router /api/v1/favorites [get]
func (h *FavoriteHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var list []models.Favorite
	if err := database.DB.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Favoriler yüklenemedi")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

type FavoriteRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// Add marks a product as a favorite. Re-adding an existing favorite is a
// no-op success.
// @Summary Add favorite
// @Tags Favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body FavoriteRequest true "product"
// @Success 200 {object} map[string]interface{} "added"
// @Failure 404 {object} map[string]interface{} "unknown product"
// @Router /api/v1/favorites [post]
func (h *FavoriteHandler) Add(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": SafeErrorMessage(err, "Geçersiz istek")})
		return
	}
	var product models.Product
	if err := database.DB.Where("is_active = ?", true).First(&product, req.ProductID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Ürün bulunamadı"})
		return
	}
	var existing models.Favorite
	if err := database.DB.Where("user_id = ? AND product_id = ?", userID, req.ProductID).First(&existing).Error; err == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Ürün zaten favorilerinizde", "data": existing})
		return
	}
	fav := models.Favorite{UserID: userID, ProductID: req.ProductID}
	if err := database.DB.Create(&fav).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Favorilere eklenemedi")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Favorilere eklendi", "data": fav})
}

// Remove deletes a favorite by product id.
// @Summary Remove favorite
// @Tags Favorites
// @Produce json
// @Security BearerAuth
// @Param productId path int true "product id"
// @Success 200 {object} map[string]interface{} "removed"
// @Router /api/v1/favorites/{productId} [delete]
func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id64, err := strconv.ParseUint(c.Param("productId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Geçersiz ID"})
		return
	}
	if err := database.DB.Where("user_id = ? AND product_id = ?", userID, uint(id64)).
		Delete(&models.Favorite{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Favorilerden çıkarılamadı")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Favorilerden çıkarıldı"})
}
