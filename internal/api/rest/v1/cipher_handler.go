package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MGTheTrain/rsa-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-vault/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// MaxPayloadBytes bounds the request bodies of the encrypt and decrypt endpoints
const MaxPayloadBytes = 32 << 20

const octetStream = "application/octet-stream"

// CipherHandler defines the interface for handling encrypt and decrypt requests
type CipherHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
	DecryptEmbedded(ctx *gin.Context)
}

// cipherHandler struct holds the services
type cipherHandler struct {
	cipherService keys.CipherService
}

// NewCipherHandler creates a new CipherHandler
func NewCipherHandler(cipherService keys.CipherService) CipherHandler {
	return &cipherHandler{
		cipherService: cipherService,
	}
}

// cipherErrorStatus maps a cipher failure to its HTTP status
func cipherErrorStatus(err error) int {
	switch {
	case errors.Is(err, keys.ErrKeyNotFound):
		return http.StatusNotFound
	case errors.Is(err, cryptoalg.ErrMalformedCiphertext),
		errors.Is(err, cryptoalg.ErrTruncatedInput),
		errors.Is(err, cryptoalg.ErrInvalidKeyPair),
		errors.Is(err, cryptoalg.ErrModulusTooSmall):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func readPayload(ctx *gin.Context) ([]byte, bool) {
	if ctx.Request.Body == nil {
		return []byte{}, true
	}
	body, err := io.ReadAll(http.MaxBytesReader(ctx.Writer, ctx.Request.Body, MaxPayloadBytes))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			ctx.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Message: fmt.Sprintf("payload exceeds %d bytes", MaxPayloadBytes)})
			return nil, false
		}
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("failed to read payload: %v", err.Error())})
		return nil, false
	}
	return body, true
}

// Encrypt handles the POST request to encrypt a payload with a stored key
// @Summary Encrypt a payload
// @Description Encrypt the raw request body with the key pair stored under id. The response uses the encrypted file layout.
// @Tags Cipher
// @Accept application/octet-stream
// @Produce application/octet-stream
// @Param id path string true "Key ID"
// @Success 200 {file} file "Ciphertext"
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/encrypt [post]
func (handler *cipherHandler) Encrypt(ctx *gin.Context) {
	keyID := ctx.Param("id")

	plaintext, ok := readPayload(ctx)
	if !ok {
		return
	}

	ciphertext, err := handler.cipherService.Encrypt(ctx, keyID, plaintext)
	if err != nil {
		ctx.JSON(cipherErrorStatus(err), ErrorResponse{Message: fmt.Sprintf("error encrypting with key %s: %v", keyID, err.Error())})
		return
	}

	ctx.Data(http.StatusOK, octetStream, ciphertext)
}

// Decrypt handles the POST request to decrypt a payload with a stored key
// @Summary Decrypt a payload
// @Description Decrypt the raw request body with the key pair stored under id, ignoring the embedded header.
// @Tags Cipher
// @Accept application/octet-stream
// @Produce application/octet-stream
// @Param id path string true "Key ID"
// @Success 200 {file} file "Plaintext"
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /keys/{id}/decrypt [post]
func (handler *cipherHandler) Decrypt(ctx *gin.Context) {
	keyID := ctx.Param("id")

	ciphertext, ok := readPayload(ctx)
	if !ok {
		return
	}

	plaintext, err := handler.cipherService.Decrypt(ctx, keyID, ciphertext)
	if err != nil {
		ctx.JSON(cipherErrorStatus(err), ErrorResponse{Message: fmt.Sprintf("error decrypting with key %s: %v", keyID, err.Error())})
		return
	}

	ctx.Data(http.StatusOK, octetStream, plaintext)
}

// DecryptEmbedded handles the POST request to decrypt a payload with the key in its header
// @Summary Decrypt a payload with its embedded key
// @Description Decrypt the raw request body using the private exponent and modulus stored in its first two blocks.
// @Tags Cipher
// @Accept application/octet-stream
// @Produce application/octet-stream
// @Success 200 {file} file "Plaintext"
// @Failure 422 {object} ErrorResponse
// @Router /decrypt [post]
func (handler *cipherHandler) DecryptEmbedded(ctx *gin.Context) {
	ciphertext, ok := readPayload(ctx)
	if !ok {
		return
	}

	plaintext, err := handler.cipherService.DecryptEmbedded(ctx, ciphertext)
	if err != nil {
		ctx.JSON(cipherErrorStatus(err), ErrorResponse{Message: fmt.Sprintf("error decrypting: %v", err.Error())})
		return
	}

	ctx.Data(http.StatusOK, octetStream, plaintext)
}
