package api

import (
	"net/http"
	"time"

	"atolye/config"
	"atolye/database"
	"atolye/models"
	"atolye/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// PasswordResetHandler handles emailed password resets for admin accounts.
type PasswordResetHandler struct {
	cfg          *config.Config
	emailService *service.EmailService
}

// NewPasswordResetHandler creates the password reset handler.
func NewPasswordResetHandler(cfg *config.Config) *PasswordResetHandler {
	return &PasswordResetHandler{
		cfg:          cfg,
		emailService: service.NewEmailService(&cfg.Email),
	}
}

// RequestResetRequest asks for a reset email.
type RequestResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest redeems a token for a new password.
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// RequestPasswordReset emails a reset link. The response is identical whether
// or not the address is registered, so the endpoint cannot be used to probe
// for accounts.
// @Summary Request password reset
// @Tags Admin-PasswordReset
// @Accept json
// @Produce json
// @Param request body RequestResetRequest true "email address"
// @Success 200 {object} map[string]interface{} "accepted"
// @Failure 500 {object} map[string]interface{} "email could not be sent"
// @Router /admin/password/request-reset [post]
func (h *PasswordResetHandler) RequestPasswordReset(c *gin.Context) {
	var req RequestResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Geçerli bir e-posta adresi girin"})
		return
	}

	neutral := gin.H{
		"success": true,
		"message": "Bu e-posta kayıtlıysa, şifre sıfırlama bağlantısı gönderildi",
	}

	var user models.User
	if err := database.DB.Where("email = ? AND is_admin = ?", req.Email, true).First(&user).Error; err != nil {
		c.JSON(http.StatusOK, neutral)
		return
	}

	// An outstanding valid token means a mail was already sent.
	var existingToken models.PasswordReset
	if err := database.DB.Where("user_id = ? AND used = ? AND expires_at > ?", user.ID, false, time.Now()).
		First(&existingToken).Error; err == nil {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Sıfırlama e-postası zaten gönderildi, gelen kutunuzu kontrol edin",
		})
		return
	}

	token, err := models.GenerateToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Sıfırlama kodu üretilemedi"})
		return
	}

	passwordReset := models.PasswordReset{
		UserID:    user.ID,
		Token:     token,
		Email:     req.Email,
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}
	if err := database.DB.Create(&passwordReset).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Sıfırlama kaydı oluşturulamadı")})
		return
	}

	resetLink := h.cfg.Server.BaseURL + "/#/sifre-sifirla?token=" + token
	if err := h.emailService.SendPasswordResetEmail(req.Email, user.Username, resetLink); err != nil {
		// A token without a delivered mail is useless; drop it.
		database.DB.Delete(&passwordReset)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "E-posta gönderilemedi")})
		return
	}

	c.JSON(http.StatusOK, neutral)
}

// VerifyResetToken checks a token and returns the associated account.
// @Summary Verify reset token
// @Tags Admin-PasswordReset
// @Produce json
// @Param token query string true "reset token"
// @Success 200 {object} map[string]interface{} "valid token"
// @Failure 400 {object} map[string]interface{} "invalid, used or expired"
// @Router /admin/password/verify-token [get]
func (h *PasswordResetHandler) VerifyResetToken(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Sıfırlama kodu eksik"})
		return
	}
	var reset models.PasswordReset
	if err := database.DB.Where("token = ?", token).First(&reset).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Geçersiz sıfırlama kodu"})
		return
	}
	if !reset.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Sıfırlama kodu kullanılmış veya süresi dolmuş"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"email": reset.Email}})
}

// ResetPassword redeems a valid token and replaces the account password.
// @Summary Reset password
// @Tags Admin-PasswordReset
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "token and new password"
// @Success 200 {object} map[string]interface{} "password changed"
// @Failure 400 {object} map[string]interface{} "invalid, used or expired token"
// @Router /admin/password/reset [post]
func (h *PasswordResetHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": SafeErrorMessage(err, "Geçersiz istek")})
		return
	}
	var reset models.PasswordReset
	if err := database.DB.Where("token = ?", req.Token).First(&reset).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Geçersiz sıfırlama kodu"})
		return
	}
	if !reset.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Sıfırlama kodu kullanılmış veya süresi dolmuş"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Şifre oluşturulamadı"})
		return
	}
	if err := database.DB.Model(&models.User{}).Where("id = ?", reset.UserID).
		Update("password", string(hashed)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Şifre güncellenemedi")})
		return
	}
	database.DB.Model(&reset).Update("used", true)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Şifreniz güncellendi, giriş yapabilirsiniz"})
}
