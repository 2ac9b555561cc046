package services

import (
	"context"
	"sync"
	"time"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"saha-servis/internal/dto"
	"saha-servis/internal/entities"
	"saha-servis/internal/repositories"
	"saha-servis/pkg/config"
	"saha-servis/pkg/constants"
	"saha-servis/pkg/types"
	"saha-servis/pkg/utils"
)

const dashboardListLimit = 10

type DashboardService struct {
	repo           repositories.DashboardRepositoryInterface
	workOrderRepo  repositories.WorkOrderRepositoryInterface
	stockRepo      repositories.StockRepositoryInterface
	assignmentRepo repositories.ToolAssignmentRepositoryInterface
	notifyRepo     repositories.NotificationRepositoryInterface
	profileRepo    repositories.ProfileRepositoryInterface
	cfg            config.MaintenanceConfig
	logger         *zap.Logger
	now            func() time.Time
}

func NewDashboardService(
	repo repositories.DashboardRepositoryInterface,
	workOrderRepo repositories.WorkOrderRepositoryInterface,
	stockRepo repositories.StockRepositoryInterface,
	assignmentRepo repositories.ToolAssignmentRepositoryInterface,
	notifyRepo repositories.NotificationRepositoryInterface,
	profileRepo repositories.ProfileRepositoryInterface,
	cfg config.MaintenanceConfig,
	logger *zap.Logger,
) *DashboardService {
	if cfg.ReminderDays <= 0 {
		cfg.ReminderDays = constants.DefaultMaintenanceReminderDays
	}
	if cfg.ReminderKm <= 0 {
		cfg.ReminderKm = constants.DefaultMaintenanceReminderKm
	}
	if cfg.KaskoReminderDay <= 0 {
		cfg.KaskoReminderDay = constants.DefaultKaskoReminderDays
	}
	return &DashboardService{
		repo:           repo,
		workOrderRepo:  workOrderRepo,
		stockRepo:      stockRepo,
		assignmentRepo: assignmentRepo,
		notifyRepo:     notifyRepo,
		profileRepo:    profileRepo,
		cfg:            cfg,
		logger:         logger,
		now:            time.Now,
	}
}

// taskGroup запускает независимые запросы параллельно и запоминает первую ошибку.
type taskGroup struct {
	wg  sync.WaitGroup
	mu  sync.Mutex
	err error
}

func (g *taskGroup) add(fn func() error) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		if err := fn(); err != nil {
			g.mu.Lock()
			if g.err == nil {
				g.err = err
			}
			g.mu.Unlock()
		}
	}()
}

func (g *taskGroup) wait() error {
	g.wg.Wait()
	return g.err
}

func (s *DashboardService) GetAdminDashboard(ctx context.Context) (*dto.AdminDashboardDTO, error) {
	today := s.now()
	var (
		g        taskGroup
		counters types.DashboardCounters
		latest   []entities.WorkOrder
		lowStock []entities.StockItem
	)

	g.add(func() (err error) { counters.Customers, err = s.repo.CountCustomers(ctx); return })
	g.add(func() (err error) {
		counters.WorkOrdersByStatus, err = s.workOrderRepo.CountByStatus(ctx, null.Int64{})
		return
	})
	g.add(func() (err error) { counters.LowStockItems, err = s.stockRepo.CountLowStock(ctx); return })
	g.add(func() (err error) {
		counters.VehiclesDueService, err = s.repo.CountVehiclesDue(ctx, today.AddDate(0, 0, s.cfg.ReminderDays), s.cfg.ReminderKm)
		return
	})
	g.add(func() (err error) {
		counters.KaskoExpiring, err = s.repo.CountKaskoExpiring(ctx, today.AddDate(0, 0, s.cfg.KaskoReminderDay))
		return
	})
	g.add(func() (err error) { counters.ActiveToolAssignment, err = s.assignmentRepo.CountActive(ctx); return })
	g.add(func() (err error) { latest, err = s.workOrderRepo.GetLatest(ctx, dashboardListLimit); return })
	g.add(func() (err error) { lowStock, err = s.stockRepo.GetLowStock(ctx, dashboardListLimit); return })

	if err := g.wait(); err != nil {
		s.logger.Error("Ошибка загрузки админского дашборда", zap.Error(err))
		return nil, err
	}

	for _, status := range constants.OpenWorkOrderStatuses {
		counters.OpenWorkOrders += counters.WorkOrdersByStatus[status]
	}
	if latest == nil {
		latest = []entities.WorkOrder{}
	}
	if lowStock == nil {
		lowStock = []entities.StockItem{}
	}
	return &dto.AdminDashboardDTO{Counters: counters, LatestWorkOrders: latest, LowStock: lowStock}, nil
}

func (s *DashboardService) GetUserDashboard(ctx context.Context) (*dto.UserDashboardDTO, error) {
	profileID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	var (
		g           taskGroup
		counters    types.UserDashboardCounters
		openOrders  []entities.WorkOrder
		assignments []entities.ToolAssignment
		byStatus    map[string]int64
	)
	g.add(func() (err error) {
		byStatus, err = s.workOrderRepo.CountByStatus(ctx, null.Int64From(int64(profileID)))
		return
	})
	g.add(func() (err error) {
		openOrders, err = s.workOrderRepo.GetOpenByAssignee(ctx, profileID, dashboardListLimit)
		return
	})
	g.add(func() (err error) { counters.UnreadNotifications, err = s.notifyRepo.CountUnread(ctx, profileID); return })
	if profile.EmployeeID.Valid {
		g.add(func() (err error) {
			assignments, err = s.assignmentRepo.GetActiveByEmployee(ctx, uint64(profile.EmployeeID.Int64))
			return
		})
	}
	if err := g.wait(); err != nil {
		s.logger.Error("Ошибка загрузки дашборда пользователя", zap.Uint64("profileID", profileID), zap.Error(err))
		return nil, err
	}

	if openOrders == nil {
		openOrders = []entities.WorkOrder{}
	}
	if assignments == nil {
		assignments = []entities.ToolAssignment{}
	}
	for _, status := range constants.OpenWorkOrderStatuses {
		counters.OpenWorkOrders += byStatus[status]
	}
	counters.ActiveAssignments = int64(len(assignments))
	return &dto.UserDashboardDTO{Counters: counters, OpenWorkOrders: openOrders, ToolAssignments: assignments}, nil
}
