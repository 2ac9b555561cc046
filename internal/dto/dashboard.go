package dto

import (
	"saha-servis/internal/entities"
	"saha-servis/pkg/types"
)

type AdminDashboardDTO struct {
	Counters         types.DashboardCounters `json:"counters"`
	LatestWorkOrders []entities.WorkOrder    `json:"latest_work_orders"`
	LowStock         []entities.StockItem    `json:"low_stock"`
}

type UserDashboardDTO struct {
	Counters        types.UserDashboardCounters `json:"counters"`
	OpenWorkOrders  []entities.WorkOrder        `json:"open_work_orders"`
	ToolAssignments []entities.ToolAssignment   `json:"tool_assignments"`
}
