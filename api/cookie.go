package api

import (
	"net/http"
	"strings"

	"atolye/adminauth"
	"atolye/config"

	"github.com/gin-gonic/gin"
)

// GetVerifiedAdminUserID validates the admin_user_id cookie signature and
// returns the user id.
func GetVerifiedAdminUserID(c *gin.Context) (uint, error) {
	return adminauth.GetVerifiedAdminUserID(c)
}

// escapeLikeValue escapes the LIKE wildcards % and _ so user input cannot
// change the match semantics of a search.
func escapeLikeValue(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

// getCookieOptions returns cookie security options for the current run mode.
// Release mode enables Secure (HTTPS-only); SameSite=Lax blocks cross-site
// POSTs from carrying the cookie while allowing same-site navigation.
func getCookieOptions() (secure bool, sameSite http.SameSite) {
	cfg := config.GlobalConfig
	if cfg != nil && cfg.Server.Mode == "release" {
		secure = true
	}
	sameSite = http.SameSiteLaxMode
	return
}
