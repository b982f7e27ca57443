//go:build unit
// +build unit

package v1

import (
	"bufio"
	"bytes"
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MGTheTrain/rsa-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-vault/internal/domain/keys"
	pb "github.com/MGTheTrain/rsa-vault/internal/pkg/pb/rsavault/v1"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
)

func setupGateway(t *testing.T, keyService *MockKeyService, cipherService *MockCipherService) *runtime.ServeMux {
	t.Helper()

	conn := setupTestConn(t, keyService, cipherService)
	gwmux := runtime.NewServeMux()
	require.NoError(t, RegisterGateway(context.Background(), gwmux, conn))
	return gwmux
}

func serve(gwmux *runtime.ServeMux, method, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, "/api/v1/rsa"+path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	gwmux.ServeHTTP(w, req)
	return w
}

func TestGateway_Keys(t *testing.T) {
	mockKeyService := new(MockKeyService)
	gwmux := setupGateway(t, mockKeyService, new(MockCipherService))

	mockKeyService.On("Generate", mock.Anything, "demo").Return(testKeyRecord(t), nil)
	mockKeyService.On("GetByID", mock.Anything, "abc-123").Return(testKeyRecord(t), nil)
	mockKeyService.On("GetByID", mock.Anything, "missing").Return(nil, keys.ErrKeyNotFound)
	mockKeyService.On("DeleteByID", mock.Anything, "abc-123").Return(nil)

	w := serve(gwmux, http.MethodPost, "/keys", []byte(`{"label":"demo"}`))
	assert.Equal(t, http.StatusOK, w.Code)
	var created pb.KeyPairResponse
	require.NoError(t, protojson.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "abc-123", created.GetId())
	assert.Equal(t, "0xca1", created.GetModulus())
	assert.Equal(t, "2024-05-01T12:00:00Z", created.GetDateTimeCreated().AsTime().Format("2006-01-02T15:04:05Z07:00"))

	w = serve(gwmux, http.MethodGet, "/keys/abc-123", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"publicExponent":"0x11"`)
	assert.Contains(t, w.Body.String(), `"dateTimeCreated":"2024-05-01T12:00:00Z"`)
	assert.NotContains(t, w.Body.String(), "0xac1")

	w = serve(gwmux, http.MethodGet, "/keys/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(gwmux, http.MethodDelete, "/keys/abc-123", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "deleted successfully")

	mockKeyService.AssertExpectations(t)
}

func TestGateway_ListStream(t *testing.T) {
	mockKeyService := new(MockKeyService)
	gwmux := setupGateway(t, mockKeyService, new(MockCipherService))

	second := testKeyRecord(t)
	second.ID = "def-456"
	mockKeyService.On("List", mock.Anything, mock.MatchedBy(func(q *keys.KeyQuery) bool {
		return q.Label == "demo" && q.Limit == 2 && q.SortBy == "label"
	})).Return([]*keys.KeyRecord{testKeyRecord(t), second}, nil)

	w := serve(gwmux, http.MethodGet, "/keys?label=demo&limit=2&sort_by=label", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var lines []string
	scanner := bufio.NewScanner(w.Body)
	for scanner.Scan() {
		if scanner.Text() != "" {
			lines = append(lines, scanner.Text())
		}
	}
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"result":`)
	assert.Contains(t, lines[0], `"id":"abc-123"`)
	assert.Contains(t, lines[1], `"id":"def-456"`)

	w = serve(gwmux, http.MethodGet, "/keys?limit=ten", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(gwmux, http.MethodGet, "/keys?sortBy=modulus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockKeyService.AssertNumberOfCalls(t, "List", 1)
}

func TestGateway_Cipher(t *testing.T) {
	mockCipherService := new(MockCipherService)
	gwmux := setupGateway(t, new(MockKeyService), mockCipherService)

	plaintext := []byte("attack at dawn")
	ciphertext := []byte{0xde, 0xad, 0xbe, 0xef}
	mockCipherService.On("Encrypt", mock.Anything, "abc-123", plaintext).Return(ciphertext, nil)
	mockCipherService.On("Decrypt", mock.Anything, "abc-123", ciphertext).Return(plaintext, nil)
	mockCipherService.On("DecryptEmbedded", mock.Anything, ciphertext).
		Return(nil, cryptoalg.ErrMalformedCiphertext)

	body := func(payload []byte) []byte {
		return []byte(`{"payload":"` + base64.StdEncoding.EncodeToString(payload) + `"}`)
	}

	w := serve(gwmux, http.MethodPost, "/keys/abc-123/encrypt", body(plaintext))
	assert.Equal(t, http.StatusOK, w.Code)
	var resp pb.CipherResponse
	require.NoError(t, protojson.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ciphertext, resp.GetPayload())

	w = serve(gwmux, http.MethodPost, "/keys/abc-123/decrypt", body(ciphertext))
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, protojson.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, plaintext, resp.GetPayload())

	w = serve(gwmux, http.MethodPost, "/decrypt", body(ciphertext))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockCipherService.AssertExpectations(t)
}
