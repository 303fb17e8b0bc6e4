package middleware

import (
	"context"
	"net/http"
	"net/url"
	"yatube/internal/api/config"
	"yatube/internal/pkg/consts"
	"yatube/internal/pkg/redis"
	"yatube/internal/pkg/security"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 验证会话 Cookie 并把用户身份注入 Context。
// 匿名访问受保护页面时重定向到登录页并带上 next 返回路径。
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := resolveClaims(c)
		if claims == nil {
			loginURL := config.Cfg.Auth.LoginPath + "?next=" + url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, loginURL)
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// AuthOptionalMiddleware 可选鉴权：解析成功注入身份，失败或缺失则 UID 为 0
func AuthOptionalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := resolveClaims(c)
		if claims == nil {
			c.Set(consts.CtxUserID, uint64(0))
			c.Set(consts.CtxUsername, "")
			c.Next()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

func resolveClaims(c *gin.Context) *security.UserClaims {
	token, err := c.Cookie(config.Cfg.Auth.CookieName)
	if err != nil || token == "" {
		return nil
	}

	// 已登出的 Token 在失效名单里
	if redis.GetRdbClient() != nil {
		if signature, sigErr := security.ExtractSignature(token); sigErr == nil {
			if value, getErr := redis.GetValue(c.Request.Context(), consts.AuthTokenDenyKey+signature); getErr == nil && value != "" {
				return nil
			}
		}
	}

	claims, err := security.ValidateToken(token)
	if err != nil {
		return nil
	}
	return claims
}

func setIdentity(c *gin.Context, claims *security.UserClaims) {
	c.Set(consts.CtxUserID, claims.UserID)
	c.Set(consts.CtxUsername, claims.Username)

	newCtx := context.WithValue(c.Request.Context(), consts.CtxUserID, claims.UserID)
	c.Request = c.Request.WithContext(newCtx)
}
