package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-summarizer/pkg/ai"
	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

// ServiceName identifies this API in health responses and logs
const ServiceName = "meeting-summarizer-api"

// System handles health and provider diagnostics
type System struct {
	cfg      *config.Config
	provider string
	logger   *zap.Logger
}

// NewSystemHandler creates a new system handler for the active provider
func NewSystemHandler(cfg *config.Config, provider string, logger *zap.Logger) *System {
	return &System{
		cfg:      cfg,
		provider: provider,
		logger:   logger,
	}
}

// Health handles GET /health
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  common.HealthResponse
// @Router       /health [get]
func (h *System) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, common.HealthResponse{
		Status:   "healthy",
		Service:  ServiceName,
		Provider: h.provider,
	})
}

// DebugProvider handles GET /debug/provider
// @Summary      Active provider
// @Tags         System
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=common.ProviderResponse}
// @Router       /debug/provider [get]
func (h *System) DebugProvider(c echo.Context) error {
	return HandleSuccess(h.logger, c, common.ProviderResponse{Provider: h.provider})
}

// DebugConfig handles GET /debug/config. Credentials are reported as present or absent only.
// @Summary      Provider configuration
// @Tags         System
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=common.ConfigResponse}
// @Router       /debug/config [get]
func (h *System) DebugConfig(c echo.Context) error {
	p := h.cfg.Provider
	resolved, _ := ai.ResolveName(p)

	return HandleSuccess(h.logger, c, common.ConfigResponse{
		ProviderSetting:      strings.TrimSpace(p.Name),
		ResolvedProvider:     resolved,
		OpenAIKeyPresent:     p.OpenAIAPIKey != "",
		HFTokenPresent:       p.HFToken != "",
		AssemblyAIKeyPresent: p.AssemblyAIKey != "",
		GroqKeyPresent:       p.GroqAPIKey != "",
		StorageEnabled:       h.cfg.Storage.Enabled,
		RedisEnabled:         h.cfg.Redis.Enabled,
	})
}
