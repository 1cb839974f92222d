package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(client *redis.Client, limit int) *gin.Engine {
	r := gin.New()
	r.POST("/submit", SubmitRateLimiter(client, "test_limit", limit), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func TestSubmitRateLimiter_NilClientPassesThrough(t *testing.T) {
	r := newLimitedRouter(nil, 1)

	// Without Redis the limiter never blocks, however many submissions.
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/submit", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestSubmitRateLimiter_RedisDownPassesThrough(t *testing.T) {
	// A client pointing at a closed port makes INCR fail; submissions
	// must still go through.
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()

	r := newLimitedRouter(client, 1)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/submit", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
