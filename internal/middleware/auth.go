package middleware

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/logger"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/services"
)

const sessionCookieName = "token"

// publicPaths is the exact allow-list reachable without a session. Everything
// else behind the gate needs a valid cookie-carried token.
var publicPaths = map[string]bool{
  "/":                true,
  "/healthcheck":     true,
  "/api/auth/login":  true,
  "/api/auth/verify": true,
  "/api/auth/logout": true,
}

type AuthMiddleware struct {
  log          *logger.Logger
  authService  services.AuthService
  secureCookie bool
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService, secureCookie bool) *AuthMiddleware {
  middlewareLogger := log.With("Middleware", "AuthMiddleware")
  return &AuthMiddleware{log: middlewareLogger, authService: authService, secureCookie: secureCookie}
}

// RequireSession never inspects the request body: admission is decided on
// path and cookie validity alone. A token that fails verification is cleared
// before the redirect so the browser does not resend it.
func (am *AuthMiddleware) RequireSession() gin.HandlerFunc {
  return func(c *gin.Context) {
    path := c.Request.URL.Path
    if publicPaths[path] {
      c.Next()
      return
    }

    token, err := c.Cookie(sessionCookieName)
    if err != nil || token == "" {
      am.log.Debug("No session token, redirecting", "path", path)
      c.Redirect(http.StatusFound, "/")
      c.Abort()
      return
    }

    if err := am.authService.VerifyToken(token); err != nil {
      am.log.Debug("Invalid session token, clearing cookie", "path", path)
      c.SetSameSite(http.SameSiteLaxMode)
      c.SetCookie(sessionCookieName, "", -1, "/", "", am.secureCookie, true)
      c.Redirect(http.StatusFound, "/")
      c.Abort()
      return
    }

    c.Next()
  }
}
