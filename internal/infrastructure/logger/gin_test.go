package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func findHTTPLog(logs []observer.LoggedEntry) *observer.LoggedEntry {
	for i := range logs {
		if logs[i].Message == "HTTP Request" {
			return &logs[i]
		}
	}
	return nil
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, recorded := observer.New(zapcore.InfoLevel)
	zapLogger := zap.New(core)

	router := gin.New()
	router.Use(GinMiddleware(zapLogger))
	router.GET("/products", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/products", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	httpLog := findHTTPLog(recorded.All())
	require.NotNil(t, httpLog, "HTTP Request log should exist")
	assert.Equal(t, zapcore.InfoLevel, httpLog.Level)

	fields := httpLog.ContextMap()
	assert.Contains(t, fields, "status")
	assert.Contains(t, fields, "latency")
	assert.Contains(t, fields, "client_ip")
	assert.Equal(t, "/products", fields["path"])
}

func TestGinMiddleware_WithRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, recorded := observer.New(zapcore.InfoLevel)
	zapLogger := zap.New(core)

	router := gin.New()
	// simulate the RequestID middleware running first
	router.Use(func(c *gin.Context) {
		c.Set("request_id", "test-req-123")
		c.Next()
	})
	router.Use(GinMiddleware(zapLogger))

	var ctxRequestID string
	router.GET("/cart", func(c *gin.Context) {
		ctxRequestID = GetRequestID(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/cart", nil)
	router.ServeHTTP(w, req)

	httpLog := findHTTPLog(recorded.All())
	require.NotNil(t, httpLog)
	assert.Equal(t, "test-req-123", httpLog.ContextMap()["request_id"])

	// request ID must also propagate through the request context
	assert.Equal(t, "test-req-123", ctxRequestID)
}

func TestGinMiddleware_ErrorResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, recorded := observer.New(zapcore.WarnLevel)
	zapLogger := zap.New(core)

	router := gin.New()
	router.Use(GinMiddleware(zapLogger))
	router.GET("/error", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/error", nil)
	router.ServeHTTP(w, req)

	httpLog := findHTTPLog(recorded.All())
	require.NotNil(t, httpLog)
	assert.Equal(t, zapcore.WarnLevel, httpLog.Level)
}

func TestGinMiddleware_ServerError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, recorded := observer.New(zapcore.ErrorLevel)
	zapLogger := zap.New(core)

	router := gin.New()
	router.Use(GinMiddleware(zapLogger))
	router.GET("/error", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/error", nil)
	router.ServeHTTP(w, req)

	httpLog := findHTTPLog(recorded.All())
	require.NotNil(t, httpLog)
	assert.Equal(t, zapcore.ErrorLevel, httpLog.Level)
}

func TestGinMiddleware_SkipPath(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, recorded := observer.New(zapcore.InfoLevel)
	zapLogger := zap.New(core)

	router := gin.New()
	router.Use(GinMiddleware(zapLogger, "/health"))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Nil(t, findHTTPLog(recorded.All()), "health probe should not be logged")
}

func TestGinMiddleware_SkipPathStillLogsErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, recorded := observer.New(zapcore.InfoLevel)
	zapLogger := zap.New(core)

	router := gin.New()
	router.Use(GinMiddleware(zapLogger, "/health"))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	require.NotNil(t, findHTTPLog(recorded.All()), "failing health probe must be logged")
}

func TestGinMiddleware_WithQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, recorded := observer.New(zapcore.InfoLevel)
	zapLogger := zap.New(core)

	router := gin.New()
	router.Use(GinMiddleware(zapLogger))
	router.GET("/products", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/products?q=argan&page=1", nil)
	router.ServeHTTP(w, req)

	httpLog := findHTTPLog(recorded.All())
	require.NotNil(t, httpLog)
	assert.Contains(t, httpLog.ContextMap()["query"], "q=argan")
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, recorded := observer.New(zapcore.ErrorLevel)
	zapLogger := zap.New(core)

	router := gin.New()
	router.Use(Recovery(zapLogger))
	router.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/panic", nil)

	assert.NotPanics(t, func() {
		router.ServeHTTP(w, req)
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	logs := recorded.All()
	require.NotEmpty(t, logs)
	assert.Contains(t, logs[0].Message, "Panic recovered")
}

func TestGetGinLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, _ := observer.New(zapcore.InfoLevel)
	zapLogger := zap.New(core)

	var retrievedLogger *zap.Logger

	router := gin.New()
	router.Use(GinMiddleware(zapLogger))
	router.GET("/test", func(c *gin.Context) {
		retrievedLogger = GetGinLogger(c)
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w, req)

	assert.NotNil(t, retrievedLogger)
}

func TestGetGinLogger_NotSet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var retrievedLogger *zap.Logger

	router := gin.New()
	router.GET("/test", func(c *gin.Context) {
		retrievedLogger = GetGinLogger(c)
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w, req)

	require.NotNil(t, retrievedLogger)
	assert.NotPanics(t, func() {
		retrievedLogger.Info("test")
	})
}
