package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/services"
)

const SessionCookieName = "token"

type AuthHandler struct {
  authService  services.AuthService
  secureCookie bool
}

func NewAuthHandler(authService services.AuthService, secureCookie bool) *AuthHandler {
  return &AuthHandler{authService: authService, secureCookie: secureCookie}
}

func (ah *AuthHandler) Login(c *gin.Context) {
  var req struct {
    Code string `json:"code"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Code is required"})
    return
  }
  token, err := ah.authService.Login(c.Request.Context(), req.Code)
  if err != nil {
    RespondServiceError(c, err, "Internal server error")
    return
  }
  maxAge := int(ah.authService.GetSessionTTL().Seconds())
  c.SetSameSite(http.SameSiteLaxMode)
  c.SetCookie(SessionCookieName, token, maxAge, "/", "", ah.secureCookie, true)
  c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

func (ah *AuthHandler) Verify(c *gin.Context) {
  token, err := c.Cookie(SessionCookieName)
  if err != nil || token == "" {
    c.JSON(http.StatusUnauthorized, gin.H{"error": "No token found"})
    return
  }
  if err := ah.authService.VerifyToken(token); err != nil {
    c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
    return
  }
  c.JSON(http.StatusOK, gin.H{"authenticated": true})
}

func (ah *AuthHandler) Logout(c *gin.Context) {
  c.SetSameSite(http.SameSiteLaxMode)
  c.SetCookie(SessionCookieName, "", -1, "/", "", ah.secureCookie, true)
  c.JSON(http.StatusOK, gin.H{"success": true})
}
