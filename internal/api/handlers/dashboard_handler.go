package handlers

import (
	"github.com/gofiber/fiber/v2"

	"inventory-brew/domain"
	"inventory-brew/internal/api/presenters"
	"inventory-brew/pkg/dashboard"
)

const maxDashboardLimit = 50

type (
	DashboardHandler interface {
		GetSummary(c *fiber.Ctx) error
	}

	dashboardHandler struct {
		dashboardService dashboard.DashboardService
	}
)

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandler{dashboardService: dashboardService}
}

func (h *dashboardHandler) GetSummary(c *fiber.Ctx) error {
	query := domain.DashboardQuery{
		LowStockLimit:           dashboardLimit(c, "lowStockLimit"),
		RecentTransactionsLimit: dashboardLimit(c, "recentTransactionsLimit"),
		IncludeInactive:         c.QueryBool("includeInactive", false),
		IncludeRelated:          c.QueryBool("includeRelated", true),
	}

	res, err := h.dashboardService.GetSummary(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedGetDashboard, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func dashboardLimit(c *fiber.Ctx, key string) int {
	limit := c.QueryInt(key, 10)
	if limit < 1 {
		limit = 10
	}
	if limit > maxDashboardLimit {
		limit = maxDashboardLimit
	}
	return limit
}
