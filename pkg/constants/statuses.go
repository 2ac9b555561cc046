package constants

// --- СТАТУСЫ ИШ ЕМРИ (совпадают с CHECK в БД) ---
const (
	WorkOrderStatusPending    = "beklemede"
	WorkOrderStatusInProgress = "devam_ediyor"
	WorkOrderStatusCompleted  = "tamamlandi"
	WorkOrderStatusCancelled  = "iptal"
)

// Открытые статусы
var OpenWorkOrderStatuses = []string{
	WorkOrderStatusPending,
	WorkOrderStatusInProgress,
}

func IsValidWorkOrderStatus(code string) bool {
	switch code {
	case WorkOrderStatusPending, WorkOrderStatusInProgress, WorkOrderStatusCompleted, WorkOrderStatusCancelled:
		return true
	}
	return false
}

func IsFinalWorkOrderStatus(code string) bool {
	return code == WorkOrderStatusCompleted || code == WorkOrderStatusCancelled
}

// --- ПРИОРИТЕТЫ ---
const (
	PriorityLow    = "dusuk"
	PriorityNormal = "normal"
	PriorityHigh   = "yuksek"
	PriorityUrgent = "acil"
)

// --- ИНСТРУМЕНТЫ ---
const (
	ToolStatusAvailable   = "available"
	ToolStatusAssigned    = "assigned"
	ToolStatusMaintenance = "maintenance"
	ToolStatusLost        = "lost"
)

// --- ЗИММЕТ ---
const (
	AssignmentStatusAssigned        = "assigned"
	AssignmentStatusReturnRequested = "return_requested"
	AssignmentStatusReturned        = "returned"
)

// --- ТИПЫ УВЕДОМЛЕНИЙ ---
const (
	NotificationWorkOrder   = "work_order"
	NotificationStockChange = "stock_change"
	NotificationToolReturn  = "tool_return_request"
	NotificationMaintenance = "maintenance_reminder"
	NotificationKasko       = "kasko_reminder"
	RelatedEntityWorkOrder  = "work_order"
	RelatedEntityStock      = "warehouse_stock"
	RelatedEntityAssignment = "tool_assignment"
	RelatedEntityVehicle    = "vehicle"
)
