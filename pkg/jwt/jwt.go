package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// El frontend decodifica id_usuario, nombre_usuario y rol directamente del token,
// por eso se mantienen esos nombres de campo.
type Claims struct {
	jwt.RegisteredClaims
	IDUsuario     int    `json:"id_usuario"`
	Nombre        string `json:"nombre"`
	NombreUsuario string `json:"nombre_usuario"`
	Rol           string `json:"rol"` // "admin" | "economico" | "consultor"
}

// Generate genera un token JWT firmado con los datos del usuario autenticado.
func Generate(secret string, idUsuario int, nombre, nombreUsuario, rol, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.Itoa(idUsuario),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		IDUsuario:     idUsuario,
		Nombre:        nombre,
		NombreUsuario: nombreUsuario,
		Rol:           rol,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve los claims de la aplicación.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
