package middleware

import (
	"strings"

	"pairbond_backend/internal/config"
	"pairbond_backend/internal/repository"
	"pairbond_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 管理后台 JWT 校验，通过后把 claims 写入上下文
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("admin", claims)
		c.Next()
	}
}

// ActivityMiddleware 请求携带 userId 时异步刷新该用户的最后活跃时间
func ActivityMiddleware(userRepo *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := util.ParseOptionalUint(c.Query("userId")); userID != nil {
			id := *userID
			go func() {
				_ = userRepo.TouchLastActive(id)
			}()
		}
		c.Next()
	}
}
