package services

import (
  "context"
  "errors"
  "fmt"
  "time"
  "gorm.io/gorm"
  "github.com/golang-jwt/jwt/v5"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/apierr"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/logger"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/normalization"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/repos"
)

// AuthService exchanges a shared access code for a signed session token.
// There are no user accounts: the token asserts "authenticated" and nothing
// else, and verification checks only signature and expiry.
type AuthService interface {
  Login(ctx context.Context, code string) (string, error)
  VerifyToken(tokenString string) error
  GetSessionTTL() time.Duration
}

type authService struct {
  db             *gorm.DB
  log            *logger.Logger
  accessCodeRepo repos.AccessCodeRepo
  jwtSecretKey   string
  sessionTTL     time.Duration
}

func NewAuthService(db *gorm.DB, log *logger.Logger, accessCodeRepo repos.AccessCodeRepo, jwtSecretKey string, sessionTTL time.Duration) AuthService {
  serviceLog := log.With("service", "AuthService")
  return &authService{
    db:             db,
    log:            serviceLog,
    accessCodeRepo: accessCodeRepo,
    jwtSecretKey:   jwtSecretKey,
    sessionTTL:     sessionTTL,
  }
}

func (as *authService) Login(ctx context.Context, code string) (string, error) {
  trimmed := normalization.TrimInputString(code)
  if trimmed == "" {
    return "", apierr.Validation("Code is required")
  }

  _, err := as.accessCodeRepo.GetActiveByCode(ctx, nil, trimmed)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return "", apierr.Unauthorized("Invalid code")
    }
    as.log.Error("Access code lookup failed", "error", err)
    return "", apierr.Internal(err)
  }

  now := time.Now()
  claims := jwt.MapClaims{
    "authenticated": true,
    "iat":           now.Unix(),
    "exp":           now.Add(as.sessionTTL).Unix(),
  }
  token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
  signed, err := token.SignedString([]byte(as.jwtSecretKey))
  if err != nil {
    as.log.Error("Failed to sign session token", "error", err)
    return "", apierr.Internal(err)
  }
  return signed, nil
}

func (as *authService) VerifyToken(tokenString string) error {
  parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
    if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
      return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
    }
    return []byte(as.jwtSecretKey), nil
  })
  if err != nil {
    as.log.Debug("Token verification failed", "error", err)
    return apierr.Unauthorized("Invalid token")
  }
  if !parsed.Valid {
    return apierr.Unauthorized("Invalid token")
  }
  return nil
}

func (as *authService) GetSessionTTL() time.Duration {
  return as.sessionTTL
}
