package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arganshop/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupValidator(t *testing.T) {
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)
	assert.NotNil(t, v)
}

func TestPhoneValidation(t *testing.T) {
	SetupValidator()

	type form struct {
		Phone string `json:"phone" binding:"required,phone"`
	}

	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		var req form
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, FormatValidationErrors(err, ""))
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	tests := []struct {
		name     string
		phone    string
		wantCode int
	}{
		{"international format", "+212600000000", http.StatusOK},
		{"local with separators", "06 12-34-56-78", http.StatusOK},
		{"parentheses", "(0661) 234 567", http.StatusOK},
		{"too few digits", "+2126", http.StatusBadRequest},
		{"letters", "call me maybe", http.StatusBadRequest},
		{"empty", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := strings.NewReader(`{"phone": "` + tt.phone + `"}`)
			req := httptest.NewRequest(http.MethodPost, "/test", body)
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	SetupValidator()

	type form struct {
		Email string `json:"email" binding:"required,email"`
		Name  string `json:"name" binding:"required,max=5"`
	}

	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		var req form
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, FormatValidationErrors(err, "req-123"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	body := strings.NewReader(`{"email": "not-an-email", "name": "far too long"}`)
	req := httptest.NewRequest(http.MethodPost, "/test", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	assert.Equal(t, "req-123", resp.Error.RequestID)
	require.Len(t, resp.Error.Details, 2)

	// Field names come from json tags, not Go field names.
	fields := []string{resp.Error.Details[0].Field, resp.Error.Details[1].Field}
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "name")
}
