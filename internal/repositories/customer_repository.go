package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"saha-servis/internal/entities"
	"saha-servis/pkg/types"
)

var customerColumns = []string{
	"c.id", "c.name", "c.contact_person", "c.phone", "c.email", "c.address", "c.city", "c.district",
	"c.tax_number", "c.latitude", "c.longitude", "c.notes", "c.created_at", "c.updated_at",
}

var customerList = listSpec{
	From:        "customers c",
	Columns:     customerColumns,
	CountColumn: "c.id",
	Search:      []string{"c.name", "c.contact_person", "c.phone", "c.email", "c.address", "c.tax_number"},
	Allowed: map[string]string{
		"id":         "c.id",
		"name":       "c.name",
		"city":       "c.city",
		"district":   "c.district",
		"tax_number": "c.tax_number",
		"created_at": "c.created_at",
		"updated_at": "c.updated_at",
	},
	DefaultSort: "c.name ASC",
}

type CustomerRepositoryInterface interface {
	GetCustomers(ctx context.Context, filter types.Filter) ([]entities.Customer, uint64, error)
	FindCustomer(ctx context.Context, id uint64) (*entities.Customer, error)
	CreateCustomer(ctx context.Context, customer entities.Customer) (uint64, error)
	UpdateCustomer(ctx context.Context, customer entities.Customer) error
	UpdateCoordinates(ctx context.Context, id uint64, latitude, longitude float64) error
	HasWorkOrders(ctx context.Context, id uint64) (bool, error)
	DeleteCustomer(ctx context.Context, id uint64) error
}

type CustomerRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewCustomerRepository(storage *pgxpool.Pool, logger *zap.Logger) CustomerRepositoryInterface {
	return &CustomerRepository{storage: storage, logger: logger}
}

func scanCustomer(row pgx.Row) (*entities.Customer, error) {
	var c entities.Customer
	err := row.Scan(
		&c.ID, &c.Name, &c.ContactPerson, &c.Phone, &c.Email, &c.Address, &c.City, &c.District,
		&c.TaxNumber, &c.Latitude, &c.Longitude, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err, "customer")
	}
	return &c, nil
}

func (r *CustomerRepository) GetCustomers(ctx context.Context, filter types.Filter) ([]entities.Customer, uint64, error) {
	return fetchList(ctx, r.storage, customerList, filter, scanCustomer)
}

func (r *CustomerRepository) FindCustomer(ctx context.Context, id uint64) (*entities.Customer, error) {
	return queryOne(ctx, r.storage, customerList.base(customerColumns...).Where(sq.Eq{"c.id": id}), scanCustomer)
}

func (r *CustomerRepository) CreateCustomer(ctx context.Context, c entities.Customer) (uint64, error) {
	return insertReturningID(ctx, r.storage, psql.Insert("customers").
		Columns("name", "contact_person", "phone", "email", "address", "city", "district",
			"tax_number", "latitude", "longitude", "notes").
		Values(c.Name, c.ContactPerson, c.Phone, c.Email, c.Address, c.City, c.District,
			c.TaxNumber, c.Latitude, c.Longitude, c.Notes))
}

func (r *CustomerRepository) UpdateCustomer(ctx context.Context, c entities.Customer) error {
	return execBuilder(ctx, r.storage, psql.Update("customers").SetMap(map[string]interface{}{
		"name":           c.Name,
		"contact_person": c.ContactPerson,
		"phone":          c.Phone,
		"email":          c.Email,
		"address":        c.Address,
		"city":           c.City,
		"district":       c.District,
		"tax_number":     c.TaxNumber,
		"latitude":       c.Latitude,
		"longitude":      c.Longitude,
		"notes":          c.Notes,
		"updated_at":     sq.Expr("NOW()"),
	}).Where(sq.Eq{"id": c.ID}))
}

func (r *CustomerRepository) UpdateCoordinates(ctx context.Context, id uint64, latitude, longitude float64) error {
	return affected(r.storage.Exec(ctx,
		`UPDATE customers SET latitude = $1, longitude = $2, updated_at = NOW() WHERE id = $3`,
		latitude, longitude, id))
}

func (r *CustomerRepository) HasWorkOrders(ctx context.Context, id uint64) (bool, error) {
	var exists bool
	err := r.storage.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM work_orders WHERE customer_id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *CustomerRepository) DeleteCustomer(ctx context.Context, id uint64) error {
	return affected(r.storage.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id))
}
