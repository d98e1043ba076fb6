package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hmosawi/folio_api/shared"
)

type AdminHandler struct {
	rateLimitSvc RateLimitServiceInterface
}

func NewAdminHandler(rateLimitSvc RateLimitServiceInterface) *AdminHandler {
	return &AdminHandler{rateLimitSvc: rateLimitSvc}
}

// @Summary Rate limit statistics
// @Description Configured submission limits and active counter keys per category
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} shared.Response{data=[]dto.RateLimitStats}
// @Router /api/v1/admin/rate-limits [get]
func (h *AdminHandler) RateLimitStats(c *fiber.Ctx) error {
	stats, err := h.rateLimitSvc.GetRateLimitStats(c.Context())
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, stats)
}

// @Summary Reset a rate limit counter
// @Description Clear the submission counter for one identifier in a category
// @Tags admin
// @Produce json
// @Security Bearer
// @Param category path string true "Limit category"
// @Param identifier path string true "Client identifier"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/rate-limits/{category}/{identifier} [delete]
func (h *AdminHandler) ResetRateLimit(c *fiber.Ctx) error {
	category := c.Params("category")
	identifier := c.Params("identifier")

	if category == "" || identifier == "" {
		return shared.ResponseBadRequest(c, "Missing category or identifier")
	}

	if err := h.rateLimitSvc.ResetRateLimit(c.Context(), category, identifier); err != nil {
		return err
	}

	return shared.ResponseOK(c, nil)
}
