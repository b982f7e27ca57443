//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	mockKeyService := new(MockKeyService)
	mockCipherService := new(MockCipherService)

	r := gin.New()

	mockKeyService.On("Generate", mock.Anything, mock.Anything).Return(nil, assert.AnError)
	mockKeyService.On("List", mock.Anything, mock.Anything).Return(nil, assert.AnError)
	mockKeyService.On("GetByID", mock.Anything, mock.Anything).Return(nil, assert.AnError)
	mockKeyService.On("DeleteByID", mock.Anything, mock.Anything).Return(assert.AnError)
	mockCipherService.On("Encrypt", mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError)
	mockCipherService.On("Decrypt", mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError)
	mockCipherService.On("DecryptEmbedded", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	SetupRoutes(r, mockKeyService, mockCipherService)

	// Service failures surface as 500, so any 404 means the route is missing
	tests := []struct {
		method string
		url    string
	}{
		{"POST", BasePath + "/keys"},
		{"GET", BasePath + "/keys"},
		{"GET", BasePath + "/keys/abc"},
		{"DELETE", BasePath + "/keys/abc"},
		{"POST", BasePath + "/keys/abc/encrypt"},
		{"POST", BasePath + "/keys/abc/decrypt"},
		{"POST", BasePath + "/decrypt"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusInternalServerError, w.Code, "Route should be registered")
		})
	}
}
