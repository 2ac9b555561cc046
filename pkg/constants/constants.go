// pkg/constants/constants.go
package constants

//============== ROLES ==============

const (
	RoleAdmin    = "admin"
	RoleYonetici = "yonetici"
	RoleUser     = "user"
)

// ManagerRoles - роли с доступом к /admin/*.
var ManagerRoles = []string{RoleAdmin, RoleYonetici}

func IsManagerRole(role string) bool {
	return role == RoleAdmin || role == RoleYonetici
}

func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleYonetici || role == RoleUser
}

//============== HOME PAGES ==============

const (
	LoginPath          = "/auth/login"
	UserHomePath       = "/dashboard"
	AdminHomePath      = "/admin/dashboard"
	AdminSectionPrefix = "/admin"
	APIPrefix          = "/api"
)

// HomePathForRole возвращает стартовую страницу для роли.
func HomePathForRole(role string) string {
	if IsManagerRole(role) {
		return AdminHomePath
	}
	return UserHomePath
}

//============== UPLOAD CONTEXTS ==============

// UploadContext определяет тип для контекстов загрузки файлов.
type UploadContext string

const (
	UploadContextDevicePhoto UploadContext = "device_photo"
)

func (uc UploadContext) String() string {
	return string(uc)
}

//============== CACHE KEYS ==============

const (
	// Формат: login_attempts:<profileID> -> count
	CacheKeyLoginAttempts = "login_attempts:%d"

	// Формат: lockout:<profileID> -> "locked"
	CacheKeyLockout = "lockout:%d"
)

//============== REMINDER WINDOWS ==============

const (
	DefaultMaintenanceReminderDays = 7
	DefaultMaintenanceReminderKm   = 500
	DefaultKaskoReminderDays       = 30
	// KaskoExpiredGraceDays - сколько дней после окончания kasko ещё напоминать.
	KaskoExpiredGraceDays = 30
)
