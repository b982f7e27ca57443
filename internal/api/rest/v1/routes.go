package v1

import (
	"github.com/MGTheTrain/rsa-vault/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, keyService keys.KeyService, cipherService keys.CipherService) {
	v1 := r.Group(BasePath) // lookup in version file

	// Keys Routes
	keyHandler := NewKeyHandler(keyService)
	v1.POST("/keys", keyHandler.Generate)
	v1.GET("/keys", keyHandler.List)
	v1.GET("/keys/:id", keyHandler.GetByID)
	v1.DELETE("/keys/:id", keyHandler.DeleteByID)

	// Cipher Routes
	cipherHandler := NewCipherHandler(cipherService)
	v1.POST("/keys/:id/encrypt", cipherHandler.Encrypt)
	v1.POST("/keys/:id/decrypt", cipherHandler.Decrypt)
	v1.POST("/decrypt", cipherHandler.DecryptEmbedded)
}
