package api

import (
	"net/http"

	"atolye/config"
	"atolye/database"
	"atolye/middleware"
	"atolye/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler covers customer registration and login for the storefront.
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// RegisterRequest is the customer sign-up payload.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50" example:"ayse"`
	Password string `json:"password" binding:"required,min=6,max=50" example:"gizli123"`
	Email    string `json:"email" binding:"omitempty,email" example:"ayse@example.com"`
	FullName string `json:"full_name" binding:"omitempty,max=100" example:"Ayşe Yılmaz"`
	Phone    string `json:"phone" binding:"omitempty,max=30" example:"+905551112233"`
}

// LoginRequest accepts a username or email.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"ayse"`
	Password string `json:"password" binding:"required" example:"gizli123"`
}

// LoginResponse carries the token and the signed-in user.
type LoginResponse struct {
	Token    string      `json:"token"`
	UserInfo models.User `json:"user_info"`
}

// Register creates a customer account. Customers are active immediately.
// @Summary Customer registration
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "account info"
// @Success 200 {object} Response{data=models.User} "registered"
// @Failure 400 {object} Response "validation error or taken username"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Geçersiz istek"))
		return
	}

	var existing models.User
	if err := database.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		BadRequest(c, "Bu kullanıcı adı zaten alınmış")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "Şifre oluşturulamadı")
		return
	}

	user := models.User{
		Username: req.Username,
		Password: string(hashed),
		Email:    req.Email,
		FullName: req.FullName,
		Phone:    req.Phone,
		Status:   models.UserStatusActive,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Hesap oluşturulamadı"))
		return
	}
	SuccessWithMessage(c, "Kayıt başarılı", user)
}

// Login authenticates a customer and issues a JWT.
// @Summary Customer login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "credentials"
// @Success 200 {object} Response{data=LoginResponse} "token and user"
// @Failure 401 {object} Response "bad credentials"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Geçersiz istek"))
		return
	}

	var user models.User
	if err := database.DB.Where("username = ? OR email = ?", req.Username, req.Username).First(&user).Error; err != nil {
		Unauthorized(c, "Kullanıcı adı veya şifre hatalı")
		return
	}
	if user.Status != models.UserStatusActive {
		Error(c, http.StatusForbidden, "Hesabınız kilitli, lütfen bizimle iletişime geçin")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		Unauthorized(c, "Kullanıcı adı veya şifre hatalı")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "Oturum açılamadı")
		return
	}
	Success(c, LoginResponse{Token: token, UserInfo: user})
}

// GetProfile returns the signed-in customer.
// @Summary Current customer profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.User} "profile"
// @Failure 401 {object} Response "not signed in"
// @Router /api/v1/auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "Kullanıcı bulunamadı")
		return
	}
	Success(c, user)
}

// UpdateProfileRequest edits the customer's own contact details.
type UpdateProfileRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	FullName *string `json:"full_name" binding:"omitempty,max=100"`
	Phone    *string `json:"phone" binding:"omitempty,max=30"`
}

// UpdateProfile edits the signed-in customer's contact details.
// @Summary Update profile
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "fields to change"
// @Success 200 {object} Response{data=models.User} "updated profile"
// @Router /api/v1/auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "Kullanıcı bulunamadı")
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Geçersiz istek"))
		return
	}
	updates := map[string]interface{}{}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "Profil güncellenemedi"))
			return
		}
	}
	database.DB.First(&user, user.ID)
	SuccessWithMessage(c, "Profil güncellendi", user)
}

// ChangePasswordRequest carries the old and new password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=50"`
}

// ChangePassword replaces the signed-in customer's password.
// @Summary Change password
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "old and new password"
// @Success 200 {object} Response "changed"
// @Failure 400 {object} Response "wrong old password"
// @Router /api/v1/auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "Kullanıcı bulunamadı")
		return
	}
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Geçersiz istek"))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		BadRequest(c, "Mevcut şifre hatalı")
		return
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "Şifre oluşturulamadı")
		return
	}
	if err := database.DB.Model(&user).Update("password", string(hashed)).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Şifre güncellenemedi"))
		return
	}
	SuccessWithMessage(c, "Şifreniz güncellendi", nil)
}
