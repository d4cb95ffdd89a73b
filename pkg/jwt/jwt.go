package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos que emite el backend del marketplace.
// El backend puede usar "id" o "user_id" para el usuario; ambos se aceptan al inspeccionar.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id,omitempty"`
	LegacyID string `json:"id,omitempty"`
	Role     string `json:"role,omitempty"`
}

// TokenInfo datos legibles de un bearer token sin verificar la firma.
type TokenInfo struct {
	Subject   string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time // cero si el token no declara exp
}

// Inspect decodifica el token SIN verificar la firma: el cliente no conoce el secreto.
// Solo se usa con fines informativos (whoami, Session.ExpiresAt); el backend sigue
// siendo la autoridad y responde 401 cuando el token no es válido.
func Inspect(tokenString string) (TokenInfo, error) {
	if tokenString == "" {
		return TokenInfo{}, fmt.Errorf("jwt: token vacío")
	}
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return TokenInfo{}, fmt.Errorf("jwt: token ilegible: %w", err)
	}
	info := TokenInfo{Role: claims.Role, Subject: claims.Subject}
	if info.Subject == "" {
		info.Subject = claims.UserID
	}
	if info.Subject == "" {
		info.Subject = claims.LegacyID
	}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}

// Generate genera un token JWT firmado con userID y role. Solo lo usan los
// backends falsos de los tests; en producción el token lo emite el backend.
func Generate(secret, userID, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID: userID,
		Role:   role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
