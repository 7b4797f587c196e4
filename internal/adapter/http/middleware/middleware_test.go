package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// serviceRouter wires the full chain the way router.Setup does, with a
// health route and an inference route.
func serviceRouter(logger *zap.Logger, identify gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.Use(Logger(logger))
	r.Use(Recovery(logger))
	r.Use(CORS())
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	r.POST("/identify-language", identify)
	return r
}

func identifyOK(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"language_code": "it", "confidence": 0.9})
}

func TestRequestID(t *testing.T) {
	t.Run("generates an ID and echoes it on the response", func(t *testing.T) {
		router := serviceRouter(zap.NewNop(), identifyOK)

		req, _ := http.NewRequest("GET", "/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("keeps the caller's X-Request-ID", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID())
		router.GET("/health", func(c *gin.Context) {
			c.String(http.StatusOK, c.GetString("request_id"))
		})

		req, _ := http.NewRequest("GET", "/health", nil)
		req.Header.Set("X-Request-ID", "caller-supplied-id")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "caller-supplied-id", w.Body.String())
		assert.Equal(t, "caller-supplied-id", w.Header().Get("X-Request-ID"))
	})
}

func TestLogger(t *testing.T) {
	logger := zap.NewNop()

	statuses := []int{
		http.StatusOK,
		http.StatusBadRequest,
		http.StatusInternalServerError,
	}
	for _, status := range statuses {
		router := serviceRouter(logger, func(c *gin.Context) {
			c.JSON(status, gin.H{})
		})

		req, _ := http.NewRequest("POST", "/identify-language", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, status, w.Code)
	}
}

func TestRecovery(t *testing.T) {
	t.Run("turns a panic into the error envelope", func(t *testing.T) {
		router := serviceRouter(zap.NewNop(), func(c *gin.Context) {
			panic("model table corrupted at runtime")
		})

		req, _ := http.NewRequest("POST", "/identify-language", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var body struct {
			Success bool `json:"success"`
			Error   struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
			Meta struct {
				Timestamp string `json:"timestamp"`
				RequestID string `json:"request_id"`
			} `json:"meta"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.Equal(t, "internal server error", body.Error.Message)
		assert.NotEmpty(t, body.Meta.RequestID)
		assert.Equal(t, body.Meta.RequestID, w.Header().Get("X-Request-ID"))
		assert.NotContains(t, w.Body.String(), "corrupted")
	})

	t.Run("passes through without panic", func(t *testing.T) {
		router := serviceRouter(zap.NewNop(), identifyOK)

		req, _ := http.NewRequest("POST", "/identify-language", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "language_code")
	})
}

func TestCORS(t *testing.T) {
	t.Run("sets CORS headers on responses", func(t *testing.T) {
		router := serviceRouter(zap.NewNop(), identifyOK)

		req, _ := http.NewRequest("GET", "/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
	})

	t.Run("short-circuits OPTIONS preflight", func(t *testing.T) {
		router := serviceRouter(zap.NewNop(), identifyOK)

		req, _ := http.NewRequest("OPTIONS", "/identify-language", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("allows requests within the burst", func(t *testing.T) {
		router := gin.New()
		router.POST("/identify-language", RateLimit(1, 2), identifyOK)

		for i := 0; i < 2; i++ {
			req, _ := http.NewRequest("POST", "/identify-language", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("rejects requests past the burst", func(t *testing.T) {
		router := gin.New()
		router.POST("/identify-language", RateLimit(0.001, 1), identifyOK)

		req, _ := http.NewRequest("POST", "/identify-language", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		req, _ = http.NewRequest("POST", "/identify-language", nil)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "RATE_LIMITED")
	})
}
