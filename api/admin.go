package api

import (
	"fmt"
	"net/http"

	"atolye/adminauth"
	"atolye/database"
	"atolye/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func setAdminCookie(c *gin.Context, name, value string, maxAge int, httpOnly bool) {
	secure, sameSite := getCookieOptions()
	c.SetCookieData(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   secure,
		HttpOnly: httpOnly,
		SameSite: sameSite,
	})
}

// setSignedAdminCookie signs sensitive cookies so clients cannot tamper with
// them.
func setSignedAdminCookie(c *gin.Context, name, value string, maxAge int, httpOnly bool) {
	setAdminCookie(c, name, adminauth.SignCookieValue(value), maxAge, httpOnly)
}

// AdminHandler handles console login and the dashboard.
type AdminHandler struct{}

// NewAdminHandler creates the admin handler.
func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// getCurrentAdmin loads the admin identified by the verified cookie.
func getCurrentAdmin(c *gin.Context) (*models.User, error) {
	userID, err := adminauth.GetVerifiedAdminUserID(c)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AdminLoginRequest accepts a username or email.
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin signs an admin into the console with session cookies. Only
// active admin accounts may sign in.
// @Summary Admin login
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body AdminLoginRequest true "credentials"
// @Success 200 {object} map[string]interface{} "signed in"
// @Failure 401 {object} map[string]interface{} "bad credentials"
// @Failure 403 {object} map[string]interface{} "not an admin or locked"
// @Router /admin/login [post]
func (h *AdminHandler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Geçersiz istek"})
		return
	}

	var user models.User
	if err := database.DB.Where("username = ? OR email = ?", req.Username, req.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Kullanıcı adı veya şifre hatalı"})
		return
	}
	if !user.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Bu hesabın yönetim paneli yetkisi yok"})
		return
	}
	if user.Status != models.UserStatusActive {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Hesabınız kilitli"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Kullanıcı adı veya şifre hatalı"})
		return
	}

	setSignedAdminCookie(c, "admin_user_id", fmt.Sprintf("%d", user.ID), 86400, true)
	setAdminCookie(c, "admin_username", user.Username, 86400, false)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Giriş başarılı",
		"data": gin.H{
			"user_id":  user.ID,
			"username": user.Username,
		},
	})
}

// AdminLogout clears the console cookies.
// @Summary Admin logout
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]interface{} "signed out"
// @Router /admin/logout [post]
func (h *AdminHandler) AdminLogout(c *gin.Context) {
	setAdminCookie(c, "admin_user_id", "", -1, true)
	setAdminCookie(c, "admin_username", "", -1, false)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Çıkış yapıldı"})
}

// GetCurrentUserInfo returns the signed-in admin for the console header.
// @Summary Current admin
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]interface{} "admin info"
// @Failure 401 {object} map[string]interface{} "not signed in"
// @Router /admin/me [get]
func (h *AdminHandler) GetCurrentUserInfo(c *gin.Context) {
	user, err := getCurrentAdmin(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Lütfen önce giriş yapın"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"user_id":  user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// GetStatistics returns the dashboard counters.
// @Summary Dashboard statistics
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]interface{} "counters and revenue"
// @Router /admin/statistics [get]
func (h *AdminHandler) GetStatistics(c *gin.Context) {
	var productCount, orderCount, pendingCount, customerCount int64
	database.DB.Model(&models.Product{}).Count(&productCount)
	database.DB.Model(&models.Order{}).Count(&orderCount)
	database.DB.Model(&models.Order{}).Where("status = ?", models.OrderStatusPending).Count(&pendingCount)
	database.DB.Model(&models.User{}).Where("is_admin = ?", false).Count(&customerCount)

	// Cancelled orders do not count toward revenue.
	var revenue float64
	database.DB.Model(&models.Order{}).
		Where("status != ?", models.OrderStatusCancelled).
		Select("COALESCE(SUM(total), 0)").Scan(&revenue)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"products":       productCount,
			"orders":         orderCount,
			"pending_orders": pendingCount,
			"customers":      customerCount,
			"revenue":        revenue,
		},
	})
}
