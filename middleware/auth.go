package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	adminRepo "bokaenkelt/database/repository/admin"
	customerRepo "bokaenkelt/database/repository/customer"
	stylistRepo "bokaenkelt/database/repository/stylist"
	"bokaenkelt/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Context keys set by the auth middleware.
const (
	CtxAccountID = "accountID"
	CtxRole      = "role"
	CtxEmail     = "email"
)

// TokenHashSources resolves the stored token hash for each account role, used
// when the auth cache misses.
type TokenHashSources struct {
	Customers customerRepo.CustomerRepository
	Stylists  stylistRepo.StylistRepository
	Admins    adminRepo.AdminRepository
}

func (s TokenHashSources) lookup(role, id string) (string, error) {
	switch role {
	case "customer":
		return s.Customers.TokenHashByID(id)
	case "stylist":
		return s.Stylists.TokenHashByID(id)
	case "superadmin":
		return s.Admins.TokenHashByID(id)
	default:
		return "", nil
	}
}

// JWTAuth verifies the bearer token, checks that its hash still matches the
// account's stored credential, and restricts access to the given roles. An
// empty role list allows any authenticated account.
func JWTAuth(sources TokenHashSources, roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		claims, err := utils.VerifyToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		if len(allowed) > 0 && !allowed[claims.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		if !tokenHashValid(c.Request.Context(), sources, claims, utils.HashToken(tokenString)) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
			return
		}

		c.Set(CtxAccountID, claims.Subject)
		c.Set(CtxRole, claims.Role)
		c.Set(CtxEmail, claims.Email)
		c.Next()
	}
}

// tokenHashValid checks the computed token hash against the auth cache, and on
// a miss against the account record, re-priming the cache on success.
func tokenHashValid(ctx context.Context, sources TokenHashSources, claims *utils.TokenClaims, computedHash string) bool {
	cacheKey := utils.AuthCachePrefix + claims.Subject
	authCache := utils.GetAuthCacheClient()

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	cachedHash, err := authCache.Get(ctx, cacheKey).Result()
	if err == nil {
		if cachedHash != computedHash {
			return false
		}
		_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
		return true
	}
	if err != redis.Nil {
		zap.L().Warn("auth cache lookup failed, falling back to database", zap.Error(err))
	}

	storedHash, err := sources.lookup(claims.Role, claims.Subject)
	if err != nil || storedHash == "" || storedHash != computedHash {
		return false
	}
	_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
	return true
}
