package types

// Счётчики для админского дашборда
type DashboardCounters struct {
	Customers            int64            `json:"customers"`
	WorkOrdersByStatus   map[string]int64 `json:"work_orders_by_status"`
	OpenWorkOrders       int64            `json:"open_work_orders"`
	LowStockItems        int64            `json:"low_stock_items"`
	VehiclesDueService   int64            `json:"vehicles_due_maintenance"`
	KaskoExpiring        int64            `json:"kasko_expiring"`
	ActiveToolAssignment int64            `json:"active_tool_assignments"`
}

// Счётчики для дашборда пользователя
type UserDashboardCounters struct {
	OpenWorkOrders      int64 `json:"open_work_orders"`
	ActiveAssignments   int64 `json:"active_assignments"`
	UnreadNotifications int64 `json:"unread_notifications"`
}
