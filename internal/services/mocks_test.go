package services

import (
	"context"
	"io"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"saha-servis/internal/dto"
	"saha-servis/internal/entities"
	"saha-servis/pkg/middleware"
	"saha-servis/pkg/types"
)

func ptrResult[T any](args mock.Arguments) (*T, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

// --- profiles ---

type MockProfileRepository struct{ mock.Mock }

func (m *MockProfileRepository) GetSessionProfile(ctx context.Context, id uint64) (*middleware.SessionProfile, error) {
	return ptrResult[middleware.SessionProfile](m.Called(ctx, id))
}

func (m *MockProfileRepository) GetProfiles(ctx context.Context, filter types.Filter) ([]entities.Profile, uint64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]entities.Profile), args.Get(1).(uint64), args.Error(2)
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id uint64) (*entities.Profile, error) {
	return ptrResult[entities.Profile](m.Called(ctx, id))
}

func (m *MockProfileRepository) FindByEmail(ctx context.Context, email string) (*entities.Profile, error) {
	return ptrResult[entities.Profile](m.Called(ctx, email))
}

func (m *MockProfileRepository) FindActiveByRoles(ctx context.Context, roles []string) ([]entities.Profile, error) {
	args := m.Called(ctx, roles)
	return args.Get(0).([]entities.Profile), args.Error(1)
}

func (m *MockProfileRepository) CreateProfile(ctx context.Context, profile entities.Profile) (uint64, error) {
	args := m.Called(ctx, profile)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockProfileRepository) UpdateProfile(ctx context.Context, profile entities.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

// --- cache ---

type MockCacheRepository struct{ mock.Mock }

func (m *MockCacheRepository) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return m.Called(ctx, key, value, expiration).Error(0)
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheRepository) Del(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

func (m *MockCacheRepository) Incr(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCacheRepository) Expire(ctx context.Context, key string, expiration time.Duration) (bool, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.Error(1)
}

// --- customers ---

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) GetCustomers(ctx context.Context, filter types.Filter) ([]entities.Customer, uint64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]entities.Customer), args.Get(1).(uint64), args.Error(2)
}

func (m *MockCustomerRepository) FindCustomer(ctx context.Context, id uint64) (*entities.Customer, error) {
	return ptrResult[entities.Customer](m.Called(ctx, id))
}

func (m *MockCustomerRepository) CreateCustomer(ctx context.Context, customer entities.Customer) (uint64, error) {
	args := m.Called(ctx, customer)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer entities.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockCustomerRepository) UpdateCoordinates(ctx context.Context, id uint64, latitude, longitude float64) error {
	return m.Called(ctx, id, latitude, longitude).Error(0)
}

func (m *MockCustomerRepository) HasWorkOrders(ctx context.Context, id uint64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) DeleteCustomer(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

// --- warehouse / stock ---

type MockWarehouseRepository struct{ mock.Mock }

func (m *MockWarehouseRepository) GetWarehouses(ctx context.Context, filter types.Filter) ([]entities.Warehouse, uint64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]entities.Warehouse), args.Get(1).(uint64), args.Error(2)
}

func (m *MockWarehouseRepository) FindWarehouse(ctx context.Context, id uint64) (*entities.Warehouse, error) {
	return ptrResult[entities.Warehouse](m.Called(ctx, id))
}

func (m *MockWarehouseRepository) CreateWarehouse(ctx context.Context, w entities.Warehouse) (uint64, error) {
	args := m.Called(ctx, w)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockWarehouseRepository) UpdateWarehouse(ctx context.Context, w entities.Warehouse) error {
	return m.Called(ctx, w).Error(0)
}

func (m *MockWarehouseRepository) DeleteWarehouse(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type MockStockRepository struct{ mock.Mock }

func (m *MockStockRepository) GetStock(ctx context.Context, filter types.Filter) ([]entities.StockItem, uint64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]entities.StockItem), args.Get(1).(uint64), args.Error(2)
}

func (m *MockStockRepository) FindStock(ctx context.Context, id uint64) (*entities.StockItem, error) {
	return ptrResult[entities.StockItem](m.Called(ctx, id))
}

func (m *MockStockRepository) FindByPair(ctx context.Context, tx pgx.Tx, warehouseID uint64, productID, toolID null.Int64) (*entities.StockItem, error) {
	return ptrResult[entities.StockItem](m.Called(ctx, tx, warehouseID, productID, toolID))
}

func (m *MockStockRepository) UpdateQuantity(ctx context.Context, tx pgx.Tx, id uint64, quantity decimal.Decimal) error {
	return m.Called(ctx, tx, id, quantity).Error(0)
}

func (m *MockStockRepository) InsertStock(ctx context.Context, tx pgx.Tx, item entities.StockItem) (uint64, error) {
	args := m.Called(ctx, tx, item)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockStockRepository) DecreaseProductStock(ctx context.Context, tx pgx.Tx, warehouseID, productID uint64, quantity decimal.Decimal) error {
	return m.Called(ctx, tx, warehouseID, productID, quantity).Error(0)
}

func (m *MockStockRepository) IncreaseProductStock(ctx context.Context, tx pgx.Tx, warehouseID, productID uint64, quantity decimal.Decimal) error {
	return m.Called(ctx, tx, warehouseID, productID, quantity).Error(0)
}

func (m *MockStockRepository) GetLowStock(ctx context.Context, limit uint64) ([]entities.StockItem, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]entities.StockItem), args.Error(1)
}

func (m *MockStockRepository) CountLowStock(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- tools / zimmet ---

type MockToolRepository struct{ mock.Mock }

func (m *MockToolRepository) GetTools(ctx context.Context, filter types.Filter) ([]entities.Tool, uint64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]entities.Tool), args.Get(1).(uint64), args.Error(2)
}

func (m *MockToolRepository) FindTool(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Tool, error) {
	return ptrResult[entities.Tool](m.Called(ctx, tx, id))
}

func (m *MockToolRepository) CreateTool(ctx context.Context, tool entities.Tool) (uint64, error) {
	args := m.Called(ctx, tool)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockToolRepository) UpdateTool(ctx context.Context, tool entities.Tool) error {
	return m.Called(ctx, tool).Error(0)
}

func (m *MockToolRepository) UpdateToolStatus(ctx context.Context, tx pgx.Tx, id uint64, status string) error {
	return m.Called(ctx, tx, id, status).Error(0)
}

func (m *MockToolRepository) DeleteTool(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) GetAssignments(ctx context.Context, filter types.Filter) ([]entities.ToolAssignment, uint64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]entities.ToolAssignment), args.Get(1).(uint64), args.Error(2)
}

func (m *MockAssignmentRepository) FindAssignment(ctx context.Context, tx pgx.Tx, id uint64) (*entities.ToolAssignment, error) {
	return ptrResult[entities.ToolAssignment](m.Called(ctx, tx, id))
}

func (m *MockAssignmentRepository) GetActiveByEmployee(ctx context.Context, employeeID uint64) ([]entities.ToolAssignment, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).([]entities.ToolAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) CreateAssignment(ctx context.Context, tx pgx.Tx, a entities.ToolAssignment) (uint64, error) {
	args := m.Called(ctx, tx, a)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockAssignmentRepository) MarkReturnRequested(ctx context.Context, tx pgx.Tx, id uint64) error {
	return m.Called(ctx, tx, id).Error(0)
}

func (m *MockAssignmentRepository) MarkReturned(ctx context.Context, tx pgx.Tx, id uint64) error {
	return m.Called(ctx, tx, id).Error(0)
}

func (m *MockAssignmentRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockEmployeeRepository struct{ mock.Mock }

func (m *MockEmployeeRepository) GetEmployees(ctx context.Context, filter types.Filter) ([]entities.Employee, uint64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]entities.Employee), args.Get(1).(uint64), args.Error(2)
}

func (m *MockEmployeeRepository) FindEmployee(ctx context.Context, id uint64) (*entities.Employee, error) {
	return ptrResult[entities.Employee](m.Called(ctx, id))
}

func (m *MockEmployeeRepository) CreateEmployee(ctx context.Context, e entities.Employee) (uint64, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, e entities.Employee) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

// --- vehicles ---

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) GetVehicles(ctx context.Context, filter types.Filter) ([]entities.Vehicle, uint64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]entities.Vehicle), args.Get(1).(uint64), args.Error(2)
}

func (m *MockVehicleRepository) FindVehicle(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Vehicle, error) {
	return ptrResult[entities.Vehicle](m.Called(ctx, tx, id))
}

func (m *MockVehicleRepository) CreateVehicle(ctx context.Context, v entities.Vehicle) (uint64, error) {
	args := m.Called(ctx, v)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockVehicleRepository) UpdateVehicle(ctx context.Context, v entities.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVehicleRepository) DeleteVehicle(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockVehicleRepository) GetHistory(ctx context.Context, vehicleID uint64) ([]entities.VehicleMaintenance, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]entities.VehicleMaintenance), args.Error(1)
}

func (m *MockVehicleRepository) InsertHistory(ctx context.Context, tx pgx.Tx, record entities.VehicleMaintenance) (uint64, error) {
	args := m.Called(ctx, tx, record)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockVehicleRepository) ApplyMaintenance(ctx context.Context, tx pgx.Tx, vehicleID uint64, date time.Time, km int) error {
	return m.Called(ctx, tx, vehicleID, date, km).Error(0)
}

func (m *MockVehicleRepository) FindDueMaintenance(ctx context.Context, dateLimit time.Time, kmWindow int) ([]entities.Vehicle, error) {
	args := m.Called(ctx, dateLimit, kmWindow)
	return args.Get(0).([]entities.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindKaskoExpiring(ctx context.Context, expiredSince, dateLimit time.Time) ([]entities.Vehicle, error) {
	args := m.Called(ctx, expiredSince, dateLimit)
	return args.Get(0).([]entities.Vehicle), args.Error(1)
}

// --- notifications ---

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) InsertNotification(ctx context.Context, n entities.Notification) (uint64, error) {
	args := m.Called(ctx, n)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockNotificationRepository) GetByRecipient(ctx context.Context, recipientID uint64, filter types.Filter) ([]entities.Notification, uint64, error) {
	args := m.Called(ctx, recipientID, filter)
	return args.Get(0).([]entities.Notification), args.Get(1).(uint64), args.Error(2)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, recipientID, id uint64) error {
	return m.Called(ctx, recipientID, id).Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, recipientID uint64) (int64, error) {
	args := m.Called(ctx, recipientID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, recipientID uint64) (int64, error) {
	args := m.Called(ctx, recipientID)
	return args.Get(0).(int64), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, recipients []entities.Recipient, msg Message) error {
	return m.Called(ctx, recipients, msg).Error(0)
}

func (m *MockNotifier) NotifyManagers(ctx context.Context, msg Message, extraProfileIDs ...uint64) error {
	return m.Called(ctx, msg, extraProfileIDs).Error(0)
}

func (m *MockNotifier) SendWorkOrderNotification(ctx context.Context, wo *entities.WorkOrder, event string) error {
	return m.Called(ctx, wo, event).Error(0)
}

func (m *MockNotifier) SendStockChangeNotification(ctx context.Context, item *entities.StockItem, oldQty, newQty decimal.Decimal) error {
	return m.Called(ctx, item, oldQty, newQty).Error(0)
}

func (m *MockNotifier) SendToolReturnRequest(ctx context.Context, a *entities.ToolAssignment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockNotifier) SendMaintenanceReminder(ctx context.Context, v *entities.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockNotifier) SendKaskoReminder(ctx context.Context, v *entities.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockNotifier) GetMyNotifications(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[entities.Notification], error) {
	return ptrResult[dto.PaginatedResponse[entities.Notification]](m.Called(ctx, filter))
}

func (m *MockNotifier) MarkRead(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockNotifier) MarkAllRead(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockSender struct{ mock.Mock }

func (m *MockSender) Send(ctx context.Context, toEmail, subject, text string) error {
	return m.Called(ctx, toEmail, subject, text).Error(0)
}

type MockPush struct{ mock.Mock }

func (m *MockPush) SendMessage(ctx context.Context, chatID int64, text string) error {
	return m.Called(ctx, chatID, text).Error(0)
}

// fakeTxManager выполняет fn без реальной транзакции.
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) RunInTransaction(_ context.Context, fn func(tx pgx.Tx) error) error {
	f.calls++
	return fn(nil)
}

func newFilter() types.Filter {
	return types.Filter{Page: 1, PerPage: 10, WithPagination: true}
}

// --- work orders ---

type MockWorkOrderRepository struct{ mock.Mock }

func (m *MockWorkOrderRepository) GetWorkOrders(ctx context.Context, filter types.Filter) ([]entities.WorkOrder, uint64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]entities.WorkOrder), args.Get(1).(uint64), args.Error(2)
}

func (m *MockWorkOrderRepository) FindWorkOrder(ctx context.Context, tx pgx.Tx, id uint64) (*entities.WorkOrder, error) {
	return ptrResult[entities.WorkOrder](m.Called(ctx, tx, id))
}

func (m *MockWorkOrderRepository) GetRecentByCustomer(ctx context.Context, customerID uint64, limit uint64) ([]entities.WorkOrder, error) {
	args := m.Called(ctx, customerID, limit)
	return args.Get(0).([]entities.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) GetLatest(ctx context.Context, limit uint64) ([]entities.WorkOrder, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]entities.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) GetOpenByAssignee(ctx context.Context, profileID uint64, limit uint64) ([]entities.WorkOrder, error) {
	args := m.Called(ctx, profileID, limit)
	return args.Get(0).([]entities.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) CreateWorkOrder(ctx context.Context, wo entities.WorkOrder) (uint64, error) {
	args := m.Called(ctx, wo)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockWorkOrderRepository) UpdateWorkOrder(ctx context.Context, wo entities.WorkOrder) error {
	return m.Called(ctx, wo).Error(0)
}

func (m *MockWorkOrderRepository) UpdateStatus(ctx context.Context, id uint64, status string, completedAt null.Time) error {
	return m.Called(ctx, id, status, completedAt).Error(0)
}

func (m *MockWorkOrderRepository) DeleteWorkOrder(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockWorkOrderRepository) CountByStatus(ctx context.Context, assignedTo null.Int64) (map[string]int64, error) {
	args := m.Called(ctx, assignedTo)
	return args.Get(0).(map[string]int64), args.Error(1)
}

type MockMaterialRepository struct{ mock.Mock }

func (m *MockMaterialRepository) GetByWorkOrder(ctx context.Context, workOrderID uint64) ([]entities.WorkOrderMaterial, error) {
	args := m.Called(ctx, workOrderID)
	return args.Get(0).([]entities.WorkOrderMaterial), args.Error(1)
}

func (m *MockMaterialRepository) FindMaterial(ctx context.Context, tx pgx.Tx, id uint64) (*entities.WorkOrderMaterial, error) {
	return ptrResult[entities.WorkOrderMaterial](m.Called(ctx, tx, id))
}

func (m *MockMaterialRepository) InsertMaterial(ctx context.Context, tx pgx.Tx, material entities.WorkOrderMaterial) (uint64, error) {
	args := m.Called(ctx, tx, material)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockMaterialRepository) DeleteMaterial(ctx context.Context, tx pgx.Tx, id uint64) error {
	return m.Called(ctx, tx, id).Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) GetProducts(ctx context.Context, filter types.Filter) ([]entities.Product, uint64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]entities.Product), args.Get(1).(uint64), args.Error(2)
}

func (m *MockProductRepository) FindProduct(ctx context.Context, id uint64) (*entities.Product, error) {
	return ptrResult[entities.Product](m.Called(ctx, id))
}

func (m *MockProductRepository) SKUExists(ctx context.Context, sku string) (bool, error) {
	args := m.Called(ctx, sku)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) CreateProduct(ctx context.Context, p entities.Product) (uint64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, p entities.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

// --- devices ---

type MockDeviceRepository struct{ mock.Mock }

func (m *MockDeviceRepository) GetDevices(ctx context.Context, filter types.Filter) ([]entities.CustomerDevice, uint64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]entities.CustomerDevice), args.Get(1).(uint64), args.Error(2)
}

func (m *MockDeviceRepository) GetDevicesByCustomer(ctx context.Context, customerID uint64) ([]entities.CustomerDevice, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]entities.CustomerDevice), args.Error(1)
}

func (m *MockDeviceRepository) FindDevice(ctx context.Context, id uint64) (*entities.CustomerDevice, error) {
	return ptrResult[entities.CustomerDevice](m.Called(ctx, id))
}

func (m *MockDeviceRepository) CreateDevice(ctx context.Context, device entities.CustomerDevice) (uint64, error) {
	args := m.Called(ctx, device)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockDeviceRepository) UpdateDevice(ctx context.Context, device entities.CustomerDevice) error {
	return m.Called(ctx, device).Error(0)
}

func (m *MockDeviceRepository) UpdatePhoto(ctx context.Context, id uint64, photoURL null.String) error {
	return m.Called(ctx, id, photoURL).Error(0)
}

func (m *MockDeviceRepository) DeleteDevice(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

// fakeStorage запоминает сохранённые и удалённые URL.
type fakeStorage struct {
	saved     []string
	deleted   []string
	deleteErr error
}

func (f *fakeStorage) Save(_ context.Context, _ io.Reader, name, prefix, _ string) (string, error) {
	url := "/uploads/" + prefix + "/" + name
	f.saved = append(f.saved, url)
	return url, nil
}

func (f *fakeStorage) Delete(_ context.Context, url string) error {
	f.deleted = append(f.deleted, url)
	return f.deleteErr
}
