package util

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// AdminClaims 管理后台令牌载荷
type AdminClaims struct {
	AdminID uint   `json:"adminId"`
	Email   string `json:"email"`
	jwt.StandardClaims
}

// GenerateJWT 为管理员签发令牌
func GenerateJWT(adminID uint, email, secret string, expire time.Duration) (string, error) {
	claims := AdminClaims{
		AdminID: adminID,
		Email:   email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(expire).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseJWT 解析并校验令牌
func ParseJWT(tokenString, secret string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// GetAdminFromContext 取出认证中间件写入的管理员信息
func GetAdminFromContext(c *gin.Context) *AdminClaims {
	value, exists := c.Get("admin")
	if !exists {
		return nil
	}
	claims, ok := value.(*AdminClaims)
	if !ok {
		return nil
	}
	return claims
}
