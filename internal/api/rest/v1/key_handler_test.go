//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MGTheTrain/rsa-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-vault/internal/domain/keys"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/bigint"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testKeyRecord(t *testing.T) *keys.KeyRecord {
	t.Helper()
	keyPair, err := cryptoalg.NewKeyPair(bigint.FromUint64(16, 3233), bigint.FromUint64(16, 17), bigint.FromUint64(16, 2753))
	require.NoError(t, err)

	return &keys.KeyRecord{
		ID:              "abc-123",
		Label:           "demo",
		KeyBits:         16,
		KeyPair:         keyPair,
		DateTimeCreated: time.Now(),
	}
}

func TestKeyHandler_Generate_Success(t *testing.T) {
	mockKeyService := new(MockKeyService)
	handler := NewKeyHandler(mockKeyService)

	mockKeyService.On("Generate", mock.Anything, "demo").Return(testKeyRecord(t), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/keys", bytes.NewBufferString(`{"label": "demo"}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Generate(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "abc-123")
	assert.Contains(t, w.Body.String(), `"modulus":"0xca1"`)
	assert.NotContains(t, w.Body.String(), "0xac1")
	mockKeyService.AssertExpectations(t)
}

func TestKeyHandler_Generate_EmptyBody(t *testing.T) {
	mockKeyService := new(MockKeyService)
	handler := NewKeyHandler(mockKeyService)

	mockKeyService.On("Generate", mock.Anything, "").Return(testKeyRecord(t), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/keys", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Generate(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockKeyService.AssertExpectations(t)
}

func TestKeyHandler_Generate_InvalidJSON(t *testing.T) {
	mockKeyService := new(MockKeyService)
	handler := NewKeyHandler(mockKeyService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/keys", bytes.NewBufferString(`{"label":`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Generate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockKeyService.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestKeyHandler_Generate_Failure(t *testing.T) {
	mockKeyService := new(MockKeyService)
	handler := NewKeyHandler(mockKeyService)

	mockKeyService.On("Generate", mock.Anything, "").Return(nil, cryptoalg.ErrRetryLimitExceeded)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/keys", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Generate(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestKeyHandler_List_Success(t *testing.T) {
	mockKeyService := new(MockKeyService)
	handler := NewKeyHandler(mockKeyService)

	mockKeyService.
		On("List", mock.Anything, mock.MatchedBy(func(q *keys.KeyQuery) bool {
			return q.Label == "demo" && q.Limit == 5 && q.SortOrder == "desc"
		})).
		Return([]*keys.KeyRecord{testKeyRecord(t)}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/keys?label=demo&limit=5&sortOrder=desc", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "abc-123")
	mockKeyService.AssertExpectations(t)
}

func TestKeyHandler_List_InvalidQuery(t *testing.T) {
	for _, url := range []string{"/keys?limit=abc", "/keys?sortBy=modulus", "/keys?dateTimeCreated=yesterday"} {
		t.Run(url, func(t *testing.T) {
			mockKeyService := new(MockKeyService)
			handler := NewKeyHandler(mockKeyService)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", url, nil)

			c, _ := gin.CreateTestContext(w)
			c.Request = req

			handler.List(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			mockKeyService.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
		})
	}
}

func TestKeyHandler_GetByID(t *testing.T) {
	tests := []struct {
		name       string
		record     *keys.KeyRecord
		err        error
		wantStatus int
	}{
		{"Found", testKeyRecord(t), nil, http.StatusOK},
		{"NotFound", nil, keys.ErrKeyNotFound, http.StatusNotFound},
		{"StoreFailure", nil, errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockKeyService := new(MockKeyService)
			handler := NewKeyHandler(mockKeyService)

			if tt.record != nil {
				mockKeyService.On("GetByID", mock.Anything, "abc-123").Return(tt.record, nil)
			} else {
				mockKeyService.On("GetByID", mock.Anything, "abc-123").Return(nil, tt.err)
			}

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/keys/abc-123", nil)

			c, _ := gin.CreateTestContext(w)
			c.Request = req
			c.Params = gin.Params{gin.Param{Key: "id", Value: "abc-123"}}

			handler.GetByID(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			mockKeyService.AssertExpectations(t)
		})
	}
}

func TestKeyHandler_DeleteByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockKeyService := new(MockKeyService)
		handler := NewKeyHandler(mockKeyService)
		mockKeyService.On("DeleteByID", mock.Anything, "abc-123").Return(nil)

		router := gin.New()
		router.DELETE("/keys/:id", handler.DeleteByID)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/keys/abc-123", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		mockKeyService.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockKeyService := new(MockKeyService)
		handler := NewKeyHandler(mockKeyService)
		mockKeyService.On("DeleteByID", mock.Anything, "abc-123").Return(keys.ErrKeyNotFound)

		router := gin.New()
		router.DELETE("/keys/:id", handler.DeleteByID)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/keys/abc-123", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
