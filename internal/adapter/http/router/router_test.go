package router

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/start94/-Code-of-Babel/internal/domain/service"
	"github.com/start94/-Code-of-Babel/internal/infrastructure/config"
)

type stubClassifier struct{}

func (stubClassifier) Classify(_ context.Context, _ string) (*service.Prediction, error) {
	return &service.Prediction{LanguageCode: "it", Confidence: 0.9}, nil
}

func (stubClassifier) Languages() []string {
	return []string{"en", "it"}
}

// throttledRouter is configured so the second inference request in a row
// exceeds the bucket.
func throttledRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		RateLimit: config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 1},
	}
	return Setup(stubClassifier{}, nil, nil, zap.NewNop(), cfg)
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSetup_RateLimitScopedToInference(t *testing.T) {
	t.Run("root stays 200 past the bucket", func(t *testing.T) {
		router := throttledRouter()

		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusOK, get(router, "/").Code)
		}
	})

	t.Run("health and readiness are never throttled", func(t *testing.T) {
		router := throttledRouter()

		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusOK, get(router, "/health").Code)
			assert.Equal(t, http.StatusOK, get(router, "/ready").Code)
			assert.Equal(t, http.StatusOK, get(router, "/metrics").Code)
		}
	})

	t.Run("identify endpoint throttles past the bucket", func(t *testing.T) {
		router := throttledRouter()

		post := func() *httptest.ResponseRecorder {
			req, _ := http.NewRequest("POST", "/identify-language", bytes.NewBufferString(`{"text": "ciao"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			return w
		}

		assert.Equal(t, http.StatusOK, post().Code)
		assert.Equal(t, http.StatusTooManyRequests, post().Code)

		// Root must still respond after the bucket is drained.
		assert.Equal(t, http.StatusOK, get(router, "/").Code)
	})

	t.Run("disabled limiter leaves inference open", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		cfg := &config.Config{RateLimit: config.RateLimitConfig{Enabled: false}}
		router := Setup(stubClassifier{}, nil, nil, zap.NewNop(), cfg)

		for i := 0; i < 3; i++ {
			req, _ := http.NewRequest("POST", "/identify-language", bytes.NewBufferString(`{"text": "ciao"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})
}
