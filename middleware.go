package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Paths that are never logged per request.
var quietPrefixes = []string{"/static/", "/images/", "/assets/", "/favicon", "/api/health"}

// ipHasher turns client addresses into short salted digests so request logs
// can correlate visitors without storing raw IPs. The salt lives only for
// the process lifetime.
type ipHasher struct {
	salt string
}

func newIPHasher() (*ipHasher, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("generate ip salt: %w", err)
	}
	return &ipHasher{salt: hex.EncodeToString(b)}, nil
}

func (h *ipHasher) hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// requestLogger logs one line per request. Clients sending DNT: 1 are
// logged without a visitor hash.
func requestLogger(log *zap.Logger, hasher *ipHasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range quietPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("user_agent", c.GetHeader("User-Agent")),
		}
		if c.GetHeader("DNT") != "1" {
			fields = append(fields, zap.String("visitor", hasher.hash(c.ClientIP())))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		if c.Writer.Status() >= http.StatusInternalServerError {
			log.Warn("request", fields...)
			return
		}
		log.Info("request", fields...)
	}
}

// recoverJSON turns panics into a generic JSON 500.
func recoverJSON(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.Error("server error",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	})
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
}
