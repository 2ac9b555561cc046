package main

import (
	"context"
	"flag"
	"log"
	"os"

	"saha-servis/migrations"
	"saha-servis/pkg/config"
	"saha-servis/pkg/database/postgresql"
	"saha-servis/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	runAdmin := flag.Bool("admin", false, "Создать администратора")
	runDemo := flag.Bool("demo", false, "Наполнить демо-данные (hizmetler, depolar, ürünler, müşteriler...)")
	runAll := flag.Bool("all", false, "Запустить все сидеры (эквивалентно -admin -demo)")
	adminEmail := flag.String("admin-email", envOr("SEED_ADMIN_EMAIL", "admin@saha-servis.local"), "Email администратора")
	adminPassword := flag.String("admin-password", os.Getenv("SEED_ADMIN_PASSWORD"), "Пароль администратора")

	flag.Parse()

	if !*runAdmin && !*runDemo && !*runAll {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Примеры использования:")
		log.Println("  go run ./seeders/cmd/seed -admin -admin-password 'GucluSifre123'")
		log.Println("  go run ./seeders/cmd/seed -all")
		log.Println("======================================================")
		return
	}

	cfg := config.New()
	if err := postgresql.RunMigrations(cfg.Postgres.DSN, migrations.FS); err != nil {
		log.Fatalf("❌ Ошибка миграций: %v", err)
	}
	dbPool, err := postgresql.ConnectDB(context.Background(), cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("❌ Нет подключения к БД: %v", err)
	}
	defer dbPool.Close()

	log.Println("======================================================")

	if *runAll || *runAdmin {
		seeders.SeedAdmin(dbPool, seeders.AdminSeed{Email: *adminEmail, Password: *adminPassword})
		log.Println("======================================================")
	}
	if *runAll || *runDemo {
		seeders.SeedDemoData(dbPool)
		log.Println("======================================================")
	}

	log.Println("✅ Все указанные операции сидирования успешно завершены.")
	log.Println("======================================================")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
