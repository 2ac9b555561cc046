package seeders

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedServices(ctx context.Context, db *pgxpool.Pool) error {
	for _, s := range servicesData {
		_, err := db.Exec(ctx,
			`INSERT INTO services (name, description, price)
			 SELECT $1, $2, $3::numeric WHERE NOT EXISTS (SELECT 1 FROM services WHERE name = $1)`,
			s.Name, s.Description, s.Price)
		if err != nil {
			return fmt.Errorf("hizmet %q: %w", s.Name, err)
		}
	}
	return nil
}

func seedWarehouses(ctx context.Context, db *pgxpool.Pool) error {
	for _, w := range warehousesData {
		_, err := db.Exec(ctx,
			`INSERT INTO warehouses (name, location) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
			w.Name, w.Location)
		if err != nil {
			return fmt.Errorf("depo %q: %w", w.Name, err)
		}
	}
	return nil
}

func seedProducts(ctx context.Context, db *pgxpool.Pool) error {
	for _, p := range productsData {
		_, err := db.Exec(ctx,
			`INSERT INTO products (name, sku, category, unit, unit_price, min_stock_level)
			 VALUES ($1, $2, $3, $4, $5::numeric, $6::numeric) ON CONFLICT (sku) DO NOTHING`,
			p.Name, p.SKU, p.Category, p.Unit, p.UnitPrice, p.MinStockLevel)
		if err != nil {
			return fmt.Errorf("ürün %q: %w", p.SKU, err)
		}
	}
	return nil
}

func seedTools(ctx context.Context, db *pgxpool.Pool) error {
	for _, t := range toolsData {
		_, err := db.Exec(ctx,
			`INSERT INTO tools (name, serial_number, category) VALUES ($1, $2, $3) ON CONFLICT (serial_number) DO NOTHING`,
			t.Name, t.SerialNumber, t.Category)
		if err != nil {
			return fmt.Errorf("alet %q: %w", t.SerialNumber, err)
		}
	}
	return nil
}

func seedEmployees(ctx context.Context, db *pgxpool.Pool) error {
	for _, e := range employeesData {
		_, err := db.Exec(ctx,
			`INSERT INTO employees (first_name, last_name, phone, position, department, skills)
			 SELECT $1, $2, $3, $4, $5, $6
			 WHERE NOT EXISTS (SELECT 1 FROM employees WHERE first_name = $1 AND last_name = $2)`,
			e.FirstName, e.LastName, e.Phone, e.Position, e.Department, e.Skills)
		if err != nil {
			return fmt.Errorf("çalışan %s %s: %w", e.FirstName, e.LastName, err)
		}
	}
	return nil
}

func seedCustomers(ctx context.Context, db *pgxpool.Pool) error {
	for _, c := range customersData {
		_, err := db.Exec(ctx,
			`INSERT INTO customers (name, contact_person, phone, address, city, district)
			 SELECT $1, $2, $3, $4, $5, $6 WHERE NOT EXISTS (SELECT 1 FROM customers WHERE name = $1)`,
			c.Name, c.ContactPerson, c.Phone, c.Address, c.City, c.District)
		if err != nil {
			return fmt.Errorf("müşteri %q: %w", c.Name, err)
		}
	}
	return nil
}

func seedVehicles(ctx context.Context, db *pgxpool.Pool) error {
	for _, v := range vehiclesData {
		_, err := db.Exec(ctx,
			`INSERT INTO vehicles (plate, brand, model, year, current_km, next_maintenance_km, next_maintenance_date, kasko_expiry_date)
			 VALUES ($1, $2, $3, $4, $5, $5 + 10000, CURRENT_DATE + 90, CURRENT_DATE + 180)
			 ON CONFLICT (plate) DO NOTHING`,
			v.Plate, v.Brand, v.Model, v.Year, v.CurrentKm)
		if err != nil {
			return fmt.Errorf("araç %q: %w", v.Plate, err)
		}
	}
	return nil
}

// seedStock кладет каждый товар в Merkez Depo с количеством двух минимальных уровней.
func seedStock(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx,
		`INSERT INTO warehouse_stock (warehouse_id, product_id, quantity)
		 SELECT w.id, p.id, p.min_stock_level * 2
		 FROM warehouses w CROSS JOIN products p
		 WHERE w.name = 'Merkez Depo'
		 ON CONFLICT (warehouse_id, product_id) DO NOTHING`)
	return err
}
