package middleware

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/model"
	"art-atlas-server/internal/modules/common/httpx"
	"art-atlas-server/internal/modules/moderation"
	"art-atlas-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// 上下文键
const (
	CtxUserID    = "id"
	CtxUsername  = "username"
	CtxRole      = "role"
	CtxStatus    = "status"
	CtxSessionID = "session_id"
)

// SessionResolver 按令牌查找未过期的会话
type SessionResolver interface {
	ResolveSession(token string) (*model.Session, error)
}

// UserStatusReader 读取用户当前状态
type UserStatusReader interface {
	GetUserStatus(userID string) (string, error)
}

var (
	// statusCache缓存用户状态，减少数据库查询
	// Key: userID (string), Value: cachedStatus
	statusCache sync.Map
)

const statusCacheTTL = 1 * time.Minute

type cachedStatus struct {
	Status    string
	ExpiresAt time.Time
}

func statusRedisKey(userID string) string {
	return service.RedisKey("auth", "user_status", userID)
}

// ClearUserStatusCache 清除指定用户的状态缓存
func ClearUserStatusCache(userID string) {
	statusCache.Delete(userID)

	if redisClient := service.GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = redisClient.Del(ctx, statusRedisKey(userID)).Err()
	}
}

// SessionToken 从 Authorization: Bearer 或 ?session_id= 中读取会话令牌
func SessionToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	return strings.TrimSpace(c.Query("session_id"))
}

func setSessionContext(c *gin.Context, sess *model.Session) {
	c.Set(CtxUserID, sess.UserID)
	c.Set(CtxUsername, sess.Username)
	c.Set(CtxRole, sess.Role)
	c.Set(CtxSessionID, sess.ID)
}

// SessionAuth 要求有效会话
func SessionAuth(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c)
		if token == "" {
			httpx.AbortFail(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		sess, err := resolver.ResolveSession(token)
		if err != nil {
			httpx.AbortFail(c, http.StatusUnauthorized, "Invalid or expired session")
			return
		}

		setSessionContext(c, sess)
		c.Next()
	}
}

// OptionalSession 有令牌且有效时写入身份，否则按匿名继续
func OptionalSession(resolver SessionResolver, reader UserStatusReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c)
		if token == "" {
			c.Next()
			return
		}
		sess, err := resolver.ResolveSession(token)
		if err != nil {
			c.Next()
			return
		}
		status, ok := lookupStatus(reader, sess.UserID)
		if !ok || status != consts.UserStatusApproved {
			c.Next()
			return
		}
		setSessionContext(c, sess)
		c.Set(CtxStatus, status)
		c.Next()
	}
}

// UserStatusCheck 检查会话所属用户仍处于 approved 状态
func UserStatusCheck(reader UserStatusReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString(CtxUserID)
		if uid == "" {
			httpx.AbortFail(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		status, ok := lookupStatus(reader, uid)
		if !ok {
			httpx.AbortFail(c, http.StatusUnauthorized, "User not found")
			return
		}

		switch status {
		case consts.UserStatusApproved:
		case consts.UserStatusPending:
			httpx.AbortFail(c, http.StatusUnauthorized, "Account pending approval")
			return
		default:
			httpx.AbortFail(c, http.StatusUnauthorized, "Account is inactive")
			return
		}

		c.Set(CtxStatus, status)
		c.Next()
	}
}

func lookupStatus(reader UserStatusReader, uid string) (string, bool) {
	// 优先从 Redis 读取
	if redisClient := service.GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		if cached, err := redisClient.Get(ctx, statusRedisKey(uid)).Result(); err == nil && cached != "" {
			statusCache.Store(uid, cachedStatus{Status: cached, ExpiresAt: time.Now().Add(statusCacheTTL)})
			return cached, true
		}
	}

	// Redis 未命中或不可用时，回退本地内存缓存
	if val, ok := statusCache.Load(uid); ok {
		if cached, typeOk := val.(cachedStatus); typeOk && time.Now().Before(cached.ExpiresAt) {
			return cached.Status, true
		}
		statusCache.Delete(uid)
	}

	status, err := reader.GetUserStatus(uid)
	if err != nil {
		return "", false
	}

	statusCache.Store(uid, cachedStatus{Status: status, ExpiresAt: time.Now().Add(statusCacheTTL)})
	if redisClient := service.GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = redisClient.Set(ctx, statusRedisKey(uid), status, statusCacheTTL).Err()
	}
	return status, true
}

func AdminCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxRole) != consts.RoleAdmin {
			httpx.AbortFail(c, http.StatusForbidden, "Admin access required")
			return
		}
		c.Next()
	}
}

// CurrentActor 返回当前请求的身份，未登录时为匿名
func CurrentActor(c *gin.Context) moderation.Actor {
	return moderation.Actor{
		ID:     c.GetString(CtxUserID),
		Role:   c.GetString(CtxRole),
		Status: c.GetString(CtxStatus),
	}
}
