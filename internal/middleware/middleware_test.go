package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/IndiraMehta/EduTask/internal/app/models/dto"
	"github.com/IndiraMehta/EduTask/internal/pkg/apperrors"
	"github.com/IndiraMehta/EduTask/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(jwtService *auth.JWTService) *gin.Engine {
	router := gin.New()
	router.GET("/protected", JWTAuthMiddleware(jwtService), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"uid":   c.GetString(ContextUIDKey),
			"email": c.GetString(ContextEmailKey),
		})
	})
	return router
}

func TestJWTAuthMiddleware(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "test",
	})
	router := newTestRouter(jwtService)

	accessToken, _, _, _, err := jwtService.GenerateTokenPair("uid-1", "asha@college.edu")
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	t.Run("valid token passes and sets identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+accessToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if body["uid"] != "uid-1" || body["email"] != "asha@college.edu" {
			t.Errorf("identity = %v, want uid-1 / asha@college.edu", body)
		}
	})

	t.Run("missing header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("expired token rejected", func(t *testing.T) {
		expiredSvc := auth.NewJWTService(auth.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenExp:  -time.Minute,
			RefreshTokenExp: time.Hour,
			TokenIssuer:     "test",
		})
		expired, _, _, _, err := expiredSvc.GenerateTokenPair("uid-1", "asha@college.edu")
		if err != nil {
			t.Fatal(err)
		}

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+expired)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}

func TestHandleAPIErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"permission denied", apperrors.NewForbiddenError("nope"), http.StatusForbidden, dto.ErrorCodeForbidden},
		{"assignment missing", apperrors.ErrAssignmentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"submission missing", apperrors.ErrSubmissionNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"profile missing", apperrors.ErrProfileNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"revoked refresh token", apperrors.ErrTokenRevoked, http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"grade out of range", apperrors.ErrGradeOutOfRange, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"too many files", apperrors.ErrTooManyFiles, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"non pdf upload", apperrors.ErrFileTypeInvalid, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"unknown error", http.ErrBodyNotAllowed, http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

			HandleAPIError(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var resp dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("response is not an error envelope: %v", err)
			}
			if resp.Success {
				t.Error("error response marked success")
			}
			if resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Errorf("error code = %v, want %v", resp.Error, tt.wantCode)
			}
		})
	}
}
