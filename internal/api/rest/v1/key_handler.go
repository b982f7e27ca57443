package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MGTheTrain/rsa-vault/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// KeyHandler defines the interface for handling key-related operations
type KeyHandler interface {
	Generate(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// keyHandler struct holds the services
type keyHandler struct {
	keyService keys.KeyService
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(keyService keys.KeyService) KeyHandler {
	return &keyHandler{
		keyService: keyService,
	}
}

// keyErrorStatus maps a key lookup failure to its HTTP status
func keyErrorStatus(err error) int {
	if errors.Is(err, keys.ErrKeyNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// Generate handles the POST request to generate and store an RSA key pair
// @Summary Generate an RSA key pair
// @Description Generate a key pair of the configured width and store it under a new ID.
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyRequest false "Key attributes"
// @Success 201 {object} KeyPairResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /keys [post]
func (handler *keyHandler) Generate(ctx *gin.Context) {
	var request GenerateKeyRequest

	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid key data: %v", err.Error())})
			return
		}
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	record, err := handler.keyService.Generate(ctx, request.Label)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("error generating key: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusCreated, NewKeyPairResponse(record))
}

// List handles the GET request to list stored key pairs with optional query parameters
// @Summary List key pairs based on query parameters
// @Description Fetch stored key pairs filtered by label and creation date, with pagination and sorting options.
// @Tags Key
// @Produce json
// @Param label query string false "Key label"
// @Param dateTimeCreated query string false "Key Creation Date (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by date_time_created, label or key_bits"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} KeyPairResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [get]
func (handler *keyHandler) List(ctx *gin.Context) {
	query := keys.NewKeyQuery()
	query.Label = ctx.Query("label")
	query.SortBy = ctx.Query("sortBy")
	query.SortOrder = ctx.Query("sortOrder")

	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid dateTimeCreated: %v", err.Error())})
			return
		}
		query.DateTimeCreated = parsedTime
	}

	for name, target := range map[string]*int{"limit": &query.Limit, "offset": &query.Offset} {
		if raw := ctx.Query(name); len(raw) > 0 {
			value, err := strconv.Atoi(raw)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid %s: %s", name, raw)})
				return
			}
			*target = value
		}
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	records, err := handler.keyService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err.Error())})
		return
	}

	listResponse := []KeyPairResponse{}
	for _, record := range records {
		listResponse = append(listResponse, NewKeyPairResponse(record))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a key pair by ID
// @Summary Retrieve a key pair by ID
// @Description Fetch the public half of a stored key pair by ID.
// @Tags Key
// @Produce json
// @Param id path string true "Key ID"
// @Success 200 {object} KeyPairResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [get]
func (handler *keyHandler) GetByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	record, err := handler.keyService.GetByID(ctx, keyID)
	if err != nil {
		ctx.JSON(keyErrorStatus(err), ErrorResponse{Message: fmt.Sprintf("key with id %s not found", keyID)})
		return
	}

	ctx.JSON(http.StatusOK, NewKeyPairResponse(record))
}

// DeleteByID handles the DELETE request to delete a key pair by ID
// @Summary Delete a key pair by ID
// @Tags Key
// @Param id path string true "Key ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [delete]
func (handler *keyHandler) DeleteByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	if err := handler.keyService.DeleteByID(ctx, keyID); err != nil {
		ctx.JSON(keyErrorStatus(err), ErrorResponse{Message: fmt.Sprintf("error deleting key with id %s", keyID)})
		return
	}

	ctx.Status(http.StatusNoContent)
}
