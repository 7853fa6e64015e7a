package handler

import (
	"time"

	"nwc-wallet-service/internal/adapter/http/dto"
	"nwc-wallet-service/internal/adapter/http/middleware"
	"nwc-wallet-service/internal/core/domain"
	"nwc-wallet-service/internal/core/ports"
	"nwc-wallet-service/pkg/apperror"
	"nwc-wallet-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AppHandler handles connected-app endpoints.
type AppHandler struct {
	appSvc ports.AppService
}

// NewAppHandler creates a new AppHandler.
func NewAppHandler(appSvc ports.AppService) *AppHandler {
	return &AppHandler{appSvc: appSvc}
}

// CreateApp handles POST /api/v1/apps.
func (h *AppHandler) CreateApp(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CreateAppRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.appSvc.CreateApp(c.Request.Context(), userID.(uuid.UUID), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CreateAppResponse{
		AppResponse:   toAppResponse(result.App),
		ConnectionURL: result.ConnectionURL,
	})
}

// ListApps handles GET /api/v1/apps.
func (h *AppHandler) ListApps(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	apps, err := h.appSvc.ListApps(c.Request.Context(), userID.(uuid.UUID))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.AppResponse, 0, len(apps))
	for _, app := range apps {
		items = append(items, toAppResponse(app))
	}

	response.OK(c, dto.AppListResponse{
		Items: items,
		Total: len(items),
	})
}

// DeleteApp handles DELETE /api/v1/apps/:pubkey.
func (h *AppHandler) DeleteApp(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	pubkey := c.Param("pubkey")
	if pubkey == "" {
		response.Error(c, apperror.Validation("missing app pubkey"))
		return
	}

	if err := h.appSvc.DeleteApp(c.Request.Context(), userID.(uuid.UUID), pubkey); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"deleted": true})
}

func toAppResponse(app domain.App) dto.AppResponse {
	return dto.AppResponse{
		ID:           app.ID.String(),
		Name:         app.Name,
		ClientPubkey: app.ClientPubkey,
		CreatedAt:    app.CreatedAt.UTC().Format(time.RFC3339),
	}
}
