package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/lifebalance-backend/internal/services"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (dh *DashboardHandler) Get(c *gin.Context) {
	dashboard, err := dh.dashboardService.Load(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, dashboard)
}
