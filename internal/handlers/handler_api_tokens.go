package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hndang/clinic_mgmt_app/internal/core/ports/services"
	"github.com/hndang/clinic_mgmt_app/internal/dto"
	"github.com/hndang/clinic_mgmt_app/internal/middleware"
)

type apiTokenHandler struct {
	tokenSvc services.APITokenSvc
}

func newAPITokenHandler(svc services.APITokenSvc) *apiTokenHandler {
	return &apiTokenHandler{tokenSvc: svc}
}

func registerAPITokenRoutes(rg *gin.RouterGroup, svc services.APITokenSvc) {
	h := newAPITokenHandler(svc)
	tokens := rg.Group("/api-tokens")
	{
		tokens.POST("", h.createToken)
		tokens.GET("", h.listTokens)
		tokens.DELETE("/:id", h.revokeToken)
	}
}

// createToken godoc
// @Summary      Issue a workstation token
// @Description  Issues an API token; the plaintext value appears in this response only
// @Tags         api-tokens
// @Accept       json
// @Produce      json
// @Param        token  body      dto.CreateAPITokenRequest  true  "Token data"
// @Success      201    {object}  dto.CreateAPITokenResponse
// @Failure      400    {object}  map[string]string
// @Router       /api-tokens [post]
// @Security     BearerAuth
func (h *apiTokenHandler) createToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAPITokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	res, err := h.tokenSvc.CreateToken(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("API token issued", slog.String("token_id", res.TokenID))
	c.JSON(http.StatusCreated, res)
}

// listTokens godoc
// @Summary      List active tokens
// @Description  Returns active tokens; hashes are never exposed
// @Tags         api-tokens
// @Produce      json
// @Success      200  {array}  dto.APITokenResponse
// @Router       /api-tokens [get]
// @Security     BearerAuth
func (h *apiTokenHandler) listTokens(c *gin.Context) {
	tokens, err := h.tokenSvc.ListTokens(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListAPITokenResponse(tokens))
}

// revokeToken godoc
// @Summary      Revoke a token
// @Tags         api-tokens
// @Param        id  path  string  true  "Token ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api-tokens/{id} [delete]
// @Security     BearerAuth
func (h *apiTokenHandler) revokeToken(c *gin.Context) {
	if err := h.tokenSvc.RevokeToken(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
