package middleware

import (
	"net/http"
	"sync"
	"time"

	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/modules/common/httpx"
	"art-atlas-server/internal/platform/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{r: r, b: b}
	go i.cleanupLoop()
	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	limiter := rate.NewLimiter(i.r, i.b)
	i.ips.Store(ip, &client{limiter: limiter, lastSeen: time.Now()})
	return limiter
}

func (i *IPRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		i.ips.Range(func(key, value interface{}) bool {
			if time.Since(value.(*client).lastSeen) > 3*time.Minute {
				i.ips.Delete(key)
			}
			return true
		})
	}
}

// RateLimitMiddleware 按客户端 IP 的令牌桶限流，速率从运行时设置动态读取。
// 同一个返回值在多个路由组间复用时共享限流状态。
func RateLimitMiddleware(appService *service.AppService, rpsKey string, burstKey string) gin.HandlerFunc {
	var limiter *IPRateLimiter
	var once sync.Once

	return func(c *gin.Context) {
		if !appService.GetBool(consts.ConfigRateLimitEnabled) {
			c.Next()
			return
		}

		currentRPS := rate.Limit(appService.GetFloat64(rpsKey))
		currentBurst := appService.GetInt(burstKey)
		if currentBurst < 1 {
			currentBurst = 1
		}

		once.Do(func() {
			limiter = NewIPRateLimiter(currentRPS, currentBurst)
		})

		l := limiter.getLimiter(c.ClientIP())
		if l.Limit() != currentRPS {
			l.SetLimit(currentRPS)
		}
		if l.Burst() != currentBurst {
			l.SetBurst(currentBurst)
		}

		if !l.Allow() {
			httpx.AbortFail(c, http.StatusTooManyRequests, "Too many requests, please try again later")
			return
		}
		c.Next()
	}
}
