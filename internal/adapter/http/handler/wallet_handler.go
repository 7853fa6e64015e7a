package handler

import (
	"nwc-wallet-service/internal/adapter/http/dto"
	"nwc-wallet-service/internal/adapter/http/middleware"
	"nwc-wallet-service/internal/core/ports"
	"nwc-wallet-service/pkg/apperror"
	"nwc-wallet-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler handles wallet seed endpoints.
type WalletHandler struct {
	authSvc ports.AuthService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(authSvc ports.AuthService) *WalletHandler {
	return &WalletHandler{authSvc: authSvc}
}

// GetMnemonic handles GET /api/v1/wallet/mnemonic.
func (h *WalletHandler) GetMnemonic(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	mnemonic, err := h.authSvc.GetMnemonic(c.Request.Context(), userID.(uuid.UUID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.MnemonicResponse{Mnemonic: mnemonic})
}

// RotateMnemonic handles PUT /api/v1/wallet/mnemonic.
func (h *WalletHandler) RotateMnemonic(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.RotateMnemonicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.authSvc.RotateMnemonic(c.Request.Context(), userID.(uuid.UUID), req.Mnemonic); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"rotated": true})
}
