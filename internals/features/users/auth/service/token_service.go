package service

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"chariots_backend/internals/configs"
	authModel "chariots_backend/internals/features/users/auth/model"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

var ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")

// AccessClaims is everything the middleware and scope helpers need without a
// DB round trip per request.
type AccessClaims struct {
	UserID   string
	Email    string
	FullName string
	Role     string
	CourseID *string
}

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET is not set")
	}
	return secret, nil
}

// IssueAccessToken signs a short-lived access JWT.
func IssueAccessToken(ac AccessClaims, now time.Time) (string, time.Time, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", time.Time{}, err
	}

	exp := now.Add(accessTTLDefault)
	claims := jwt.MapClaims{
		"user_id":   ac.UserID,
		"email":     ac.Email,
		"full_name": ac.FullName,
		"role":      ac.Role,
		"typ":       "access",
		"iat":       now.Unix(),
		"exp":       exp.Unix(),
	}
	if ac.CourseID != nil {
		claims["course_id"] = *ac.CourseID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// ParseAccessToken verifies signature and expiry and returns the claims.
func ParseAccessToken(tokenString string) (AccessClaims, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return AccessClaims{}, err
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}); err != nil {
		return AccessClaims{}, err
	}

	ac := AccessClaims{}
	ac.UserID, _ = claims["user_id"].(string)
	ac.Email, _ = claims["email"].(string)
	ac.FullName, _ = claims["full_name"].(string)
	ac.Role, _ = claims["role"].(string)
	if courseID, ok := claims["course_id"].(string); ok && courseID != "" {
		ac.CourseID = &courseID
	}
	if ac.UserID == "" {
		return AccessClaims{}, errors.New("missing user_id claim")
	}
	return ac, nil
}

func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

// IssueRefreshToken mints an opaque refresh token and stores its HMAC hash.
func IssueRefreshToken(db *gorm.DB, userID string, userAgent, ip *string, now time.Time) (string, error) {
	secret, err := getRefreshSecret()
	if err != nil {
		return "", err
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	token := hex.EncodeToString(raw)

	record := authModel.RefreshToken{
		UserID:    userID,
		TokenHash: computeRefreshHash(token, secret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: userAgent,
		IP:        ip,
	}
	if err := db.Create(&record).Error; err != nil {
		return "", err
	}
	return token, nil
}

// ValidateRefreshToken resolves a presented refresh token to its user.
func ValidateRefreshToken(db *gorm.DB, token string, now time.Time) (string, error) {
	secret, err := getRefreshSecret()
	if err != nil {
		return "", err
	}

	var record authModel.RefreshToken
	if err := db.
		Where("token_hash = ? AND revoked_at IS NULL", computeRefreshHash(token, secret)).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidRefreshToken
		}
		return "", err
	}
	if now.After(record.ExpiresAt) {
		return "", ErrInvalidRefreshToken
	}
	return record.UserID, nil
}

// RevokeRefreshTokens marks every live refresh token of a user revoked.
func RevokeRefreshTokens(db *gorm.DB, userID string, now time.Time) error {
	return db.Model(&authModel.RefreshToken{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", now).Error
}

// BlacklistAccessToken stores an access token so the auth middleware rejects
// it for the rest of its lifetime.
func BlacklistAccessToken(db *gorm.DB, tokenString string, expiredAt time.Time) error {
	return db.Create(&authModel.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: expiredAt,
	}).Error
}
