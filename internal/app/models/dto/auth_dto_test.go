package dto

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func bindJSON(t *testing.T, body string, obj interface{}) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c.ShouldBindJSON(obj)
}

func TestRegisterRequestBinding(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "email and password suffice",
			body: `{"email":"asha@college.edu","password":"s3cret-pass"}`,
		},
		{
			name:    "missing password",
			body:    `{"email":"asha@college.edu"}`,
			wantErr: true,
		},
		{
			name:    "short password",
			body:    `{"email":"asha@college.edu","password":"short"}`,
			wantErr: true,
		},
		{
			name:    "malformed email",
			body:    `{"email":"not-an-email","password":"s3cret-pass"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req RegisterRequest
			err := bindJSON(t, tt.body, &req)
			if (err != nil) != tt.wantErr {
				t.Errorf("bind error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
