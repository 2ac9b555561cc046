package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AdminSeed - учётные данные первого администратора.
type AdminSeed struct {
	Email    string
	Password string
	FullName string
}

// SeedAdmin создает администратора, если профиля с таким email ещё нет.
func SeedAdmin(db *pgxpool.Pool, admin AdminSeed) {
	ctx := context.Background()
	log.Println("▶️  Создание администратора...")

	if err := seedAdminProfile(ctx, db, admin); err != nil {
		log.Fatalf("❌ Ошибка создания администратора: %v", err)
	}
	log.Println("✅ Администратор готов!")
}

// SeedDemoData наполняет справочники и демо-записи. Повторный запуск ничего не дублирует.
func SeedDemoData(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения демо-данных...")

	steps := []struct {
		name string
		fn   func(context.Context, *pgxpool.Pool) error
	}{
		{"Hizmetler", seedServices},
		{"Depolar", seedWarehouses},
		{"Ürünler", seedProducts},
		{"Aletler", seedTools},
		{"Çalışanlar", seedEmployees},
		{"Müşteriler", seedCustomers},
		{"Araçlar", seedVehicles},
		{"Stok", seedStock},
	}
	for _, step := range steps {
		if err := step.fn(ctx, db); err != nil {
			log.Fatalf("❌ Ошибка наполнения (%s): %v", step.name, err)
		}
		log.Printf("  - %s: готово", step.name)
	}
	log.Println("✅ Наполнение демо-данных завершено!")
}
