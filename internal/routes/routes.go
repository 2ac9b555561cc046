package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"saha-servis/internal/controllers"
	"saha-servis/internal/repositories"
	"saha-servis/internal/services"
	"saha-servis/pkg/config"
	"saha-servis/pkg/filestorage"
	"saha-servis/pkg/geocoder"
	"saha-servis/pkg/mailer"
	"saha-servis/pkg/metrics"
	"saha-servis/pkg/middleware"
	"saha-servis/pkg/service"
	"saha-servis/pkg/telegram"
)

type Loggers struct {
	Main         *zap.Logger
	Auth         *zap.Logger
	WorkOrder    *zap.Logger
	Notification *zap.Logger
}

// Deps - внешние клиенты, созданные в main.
type Deps struct {
	DB       *pgxpool.Pool
	Redis    *redis.Client
	JWT      service.JWTService
	Storage  filestorage.FileStorageInterface
	Geocoder geocoder.Geocoder
	Mailer   mailer.Sender
	Push     telegram.ServiceInterface
	Metrics  *metrics.Metrics
}

func InitRouter(e *echo.Echo, deps Deps, loggers *Loggers, cfg *config.Config) {
	loggers.Main.Info("InitRouter: Начало создания маршрутов")
	dbConn := deps.DB

	// --- 1. РЕПОЗИТОРИИ ---
	txManager := repositories.NewTxManager(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(deps.Redis)
	profileRepo := repositories.NewProfileRepository(dbConn, loggers.Auth)
	customerRepo := repositories.NewCustomerRepository(dbConn, loggers.Main)
	deviceRepo := repositories.NewDeviceRepository(dbConn, loggers.Main)
	workOrderRepo := repositories.NewWorkOrderRepository(dbConn, loggers.WorkOrder)
	materialRepo := repositories.NewMaterialRepository(dbConn, loggers.WorkOrder)
	serviceRepo := repositories.NewServiceRepository(dbConn, loggers.Main)
	warehouseRepo := repositories.NewWarehouseRepository(dbConn, loggers.Main)
	productRepo := repositories.NewProductRepository(dbConn, loggers.Main)
	toolRepo := repositories.NewToolRepository(dbConn, loggers.Main)
	stockRepo := repositories.NewStockRepository(dbConn, loggers.Main)
	assignmentRepo := repositories.NewToolAssignmentRepository(dbConn, loggers.Main)
	vehicleRepo := repositories.NewVehicleRepository(dbConn, loggers.Main)
	employeeRepo := repositories.NewEmployeeRepository(dbConn, loggers.Main)
	notificationRepo := repositories.NewNotificationRepository(dbConn, loggers.Notification)
	dashboardRepo := repositories.NewDashboardRepository(dbConn, loggers.Main)

	// --- 2. СЕРВИСЫ ---
	notificationService := services.NewNotificationService(notificationRepo, profileRepo, deps.Mailer, deps.Push, deps.Metrics, loggers.Notification)
	authService := services.NewAuthService(profileRepo, cacheRepo, loggers.Auth, cfg.Auth)
	profileService := services.NewProfileService(profileRepo, loggers.Auth)
	customerService := services.NewCustomerService(customerRepo, deviceRepo, workOrderRepo, deps.Geocoder, loggers.Main)
	deviceService := services.NewDeviceService(deviceRepo, customerRepo, deps.Storage, loggers.Main)
	workOrderService := services.NewWorkOrderService(
		workOrderRepo, materialRepo, stockRepo, productRepo, customerRepo,
		deviceRepo, serviceRepo, vehicleRepo, txManager, notificationService, loggers.WorkOrder,
	)
	catalogService := services.NewCatalogService(serviceRepo, warehouseRepo, productRepo, toolRepo, loggers.Main)
	stockService := services.NewStockService(stockRepo, warehouseRepo, notificationService, loggers.Main)
	assignmentService := services.NewToolAssignmentService(
		assignmentRepo, toolRepo, employeeRepo, profileRepo, txManager, notificationService, loggers.Main,
	)
	vehicleService := services.NewVehicleService(vehicleRepo, txManager, notificationService, deps.Metrics, cfg.Maintenance, loggers.Main)
	employeeService := services.NewEmployeeService(employeeRepo, loggers.Main)
	dashboardService := services.NewDashboardService(
		dashboardRepo, workOrderRepo, stockRepo, assignmentRepo, notificationRepo, profileRepo, cfg.Maintenance, loggers.Main,
	)

	// --- 3. КОНТРОЛЛЕРЫ ---
	cookie := middleware.CookieOptions{Name: cfg.JWT.CookieName, Secure: cfg.JWT.CookieSecure}
	authMW := middleware.NewAuthMiddleware(deps.JWT, profileRepo, cfg.JWT.CookieName, loggers.Auth)

	authCtrl := controllers.NewAuthController(authService, deps.JWT, cookie, loggers.Auth)
	profileCtrl := controllers.NewProfileController(profileService, loggers.Auth)
	customerCtrl := controllers.NewCustomerController(customerService, deviceService, loggers.Main)
	workOrderCtrl := controllers.NewWorkOrderController(workOrderService, loggers.WorkOrder)
	catalogCtrl := controllers.NewCatalogController(catalogService, loggers.Main)
	stockCtrl := controllers.NewStockController(stockService, loggers.Main)
	assignmentCtrl := controllers.NewToolAssignmentController(assignmentService, loggers.Main)
	vehicleCtrl := controllers.NewVehicleController(vehicleService, loggers.Main)
	employeeCtrl := controllers.NewEmployeeController(employeeService, loggers.Main)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, loggers.Main)
	notificationCtrl := controllers.NewNotificationController(notificationService, loggers.Notification)
	reportCtrl := controllers.NewReportController(workOrderService, loggers.Main)

	// --- 4. РОУТЕРЫ ---
	e.GET("/", authMW.RootRedirect)
	e.GET("/health", healthHandler(dbConn))
	e.GET("/metrics", echo.WrapHandler(deps.Metrics.Handler()))

	runAuthRouter(e, authCtrl, authMW)
	runAdminRouter(e, authMW, dashboardCtrl, profileCtrl, catalogCtrl, reportCtrl)
	runDashboardRouter(e, authMW, dashboardCtrl, notificationCtrl)
	runDepoRouter(e, authMW, catalogCtrl, stockCtrl, assignmentCtrl)
	runCustomerRouter(e, authMW, customerCtrl)
	runWorkOrderRouter(e, authMW, workOrderCtrl)
	runVehicleRouter(e, authMW, vehicleCtrl)
	runEmployeeRouter(e, authMW, employeeCtrl)
	runAPIRouter(e, authMW, customerCtrl, vehicleCtrl, cfg.Maintenance.APIKey)

	loggers.Main.Info("INIT_ROUTER: Создание маршрутов завершено")
}

// pageGroup - общая цепочка для страниц: сессия и редиректы по роли.
func pageGroup(e *echo.Echo, prefix string, authMW *middleware.AuthMiddleware) *echo.Group {
	return e.Group(prefix, authMW.Auth, authMW.RoleRedirects)
}

func healthHandler(db *pgxpool.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "down"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}
