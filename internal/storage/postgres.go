package storage

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"myfooddesk/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) CreateProduct(p *domain.Product) error {
	return r.DB.QueryRow(`
		INSERT INTO products (name, description, price, cost_to_make, category, is_active, is_sold_out, image_url, made_with)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`,
		p.Name, p.Description, p.Price, p.CostToMake, p.Category, p.IsActive, p.IsSoldOut, p.ImageURL, pq.Array(p.MadeWith),
	).Scan(&p.ID, &p.CreatedAt)
}

func (r *PostgresRepository) ListProducts() ([]domain.Product, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, COALESCE(description, ''), price, cost_to_make, COALESCE(category, ''),
		       is_active, is_sold_out, COALESCE(image_url, ''), made_with, created_at
		FROM products
		ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CostToMake, &p.Category,
			&p.IsActive, &p.IsSoldOut, &p.ImageURL, pq.Array(&p.MadeWith), &p.CreatedAt); err != nil {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *PostgresRepository) GetProduct(id int) (*domain.Product, error) {
	var p domain.Product
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(description, ''), price, cost_to_make, COALESCE(category, ''),
		       is_active, is_sold_out, COALESCE(image_url, ''), made_with, created_at
		FROM products
		WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CostToMake, &p.Category,
			&p.IsActive, &p.IsSoldOut, &p.ImageURL, pq.Array(&p.MadeWith), &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) UpdateProduct(p *domain.Product) error {
	return r.DB.QueryRow(`
		UPDATE products
		SET name=$1, description=$2, price=$3, cost_to_make=$4, category=$5, is_active=$6, is_sold_out=$7, image_url=$8, made_with=$9
		WHERE id=$10
		RETURNING created_at`,
		p.Name, p.Description, p.Price, p.CostToMake, p.Category, p.IsActive, p.IsSoldOut, p.ImageURL, pq.Array(p.MadeWith), p.ID).
		Scan(&p.CreatedAt)
}

func (r *PostgresRepository) DeleteProduct(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM products WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateZone(z *domain.DeliveryZone) error {
	return r.DB.QueryRow(`
		INSERT INTO delivery_zones (zone_name, fee, is_active, area_keywords)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		z.ZoneName, z.Fee, z.IsActive, pq.Array(z.AreaKeywords),
	).Scan(&z.ID, &z.CreatedAt)
}

// ListZones keeps insertion order; zone order decides fee resolution ties.
func (r *PostgresRepository) ListZones() ([]domain.DeliveryZone, error) {
	rows, err := r.DB.Query(`
		SELECT id, zone_name, fee, is_active, area_keywords, created_at
		FROM delivery_zones
		ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var zones []domain.DeliveryZone
	for rows.Next() {
		var z domain.DeliveryZone
		if err := rows.Scan(&z.ID, &z.ZoneName, &z.Fee, &z.IsActive, pq.Array(&z.AreaKeywords), &z.CreatedAt); err != nil {
			continue
		}
		zones = append(zones, z)
	}
	return zones, nil
}

func (r *PostgresRepository) UpdateZone(z *domain.DeliveryZone) error {
	return r.DB.QueryRow(`
		UPDATE delivery_zones
		SET zone_name=$1, fee=$2, is_active=$3, area_keywords=$4
		WHERE id=$5
		RETURNING created_at`,
		z.ZoneName, z.Fee, z.IsActive, pq.Array(z.AreaKeywords), z.ID).
		Scan(&z.CreatedAt)
}

func (r *PostgresRepository) DeleteZone(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM delivery_zones WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateOrder(o *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO orders (customer_name, customer_phone, customer_email, delivery_address, order_note,
		                    scheduled_at, subtotal, bulk_discount, delivery_fee, total_amount, payment_status, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at`,
		o.CustomerName, o.CustomerPhone, o.CustomerEmail, o.DeliveryAddress, o.OrderNote,
		o.ScheduledDateTime, o.Subtotal, o.BulkDiscount, o.DeliveryFee, o.TotalAmount, o.PaymentStatus, o.Status,
	).Scan(&o.ID, &o.CreatedAt); err != nil {
		return err
	}

	for _, item := range o.Items {
		if _, err := tx.Exec(`
			INSERT INTO order_items (order_id, product_id, product_name, qty, unit_price, unit_cost_at_sale)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			o.ID, item.ProductID, item.ProductName, item.Qty, item.UnitPrice, item.UnitCostAtSale); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) orderItems(orderID int) ([]domain.OrderItem, error) {
	rows, err := r.DB.Query(`
		SELECT product_id, product_name, qty, unit_price, unit_cost_at_sale
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Qty, &item.UnitPrice, &item.UnitCostAtSale); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func scanOrder(row interface{ Scan(dest ...any) error }, o *domain.Order) error {
	var scheduledAt sql.NullTime
	if err := row.Scan(&o.ID, &o.CustomerName, &o.CustomerPhone, &o.CustomerEmail, &o.DeliveryAddress,
		&o.OrderNote, &scheduledAt, &o.Subtotal, &o.BulkDiscount, &o.DeliveryFee, &o.TotalAmount,
		&o.PaymentStatus, &o.Status, &o.CreatedAt); err != nil {
		return err
	}
	if scheduledAt.Valid {
		t := scheduledAt.Time
		o.ScheduledDateTime = &t
	}
	return nil
}

const orderColumns = `id, customer_name, customer_phone, customer_email, delivery_address,
	COALESCE(order_note, ''), scheduled_at, subtotal, bulk_discount, delivery_fee, total_amount,
	payment_status, status, created_at`

func (r *PostgresRepository) GetOrder(id int) (*domain.Order, error) {
	var o domain.Order
	row := r.DB.QueryRow("SELECT "+orderColumns+" FROM orders WHERE id = $1", id)
	if err := scanOrder(row, &o); err != nil {
		return nil, err
	}

	items, err := r.orderItems(o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *PostgresRepository) ListOrders() ([]domain.Order, error) {
	rows, err := r.DB.Query("SELECT " + orderColumns + " FROM orders ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := scanOrder(rows, &o); err != nil {
			continue
		}
		orders = append(orders, o)
	}

	for i := range orders {
		items, err := r.orderItems(orders[i].ID)
		if err != nil {
			continue
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *PostgresRepository) UpdateOrderStatus(id int, status string) (int64, error) {
	result, err := r.DB.Exec("UPDATE orders SET status=$1 WHERE id=$2", status, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) DeleteOrder(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM orders WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec("UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var qrCode []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qrCode); err != nil {
		return nil, err
	}
	return qrCode, nil
}

func (r *PostgresRepository) CreateStaffUser(u *domain.StaffUser) error {
	return r.DB.QueryRow(`
		INSERT INTO staff_users (name, email, role, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		u.Name, u.Email, u.Role, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt)
}

func (r *PostgresRepository) ListStaffUsers() ([]domain.StaffUser, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, email, role, created_at
		FROM staff_users
		ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.StaffUser
	for rows.Next() {
		var u domain.StaffUser
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt); err != nil {
			continue
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *PostgresRepository) GetStaffUserByEmail(email string) (*domain.StaffUser, error) {
	var u domain.StaffUser
	err := r.DB.QueryRow(`
		SELECT id, name, email, role, password_hash, created_at
		FROM staff_users
		WHERE email = $1`, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			price NUMERIC(10,2) NOT NULL DEFAULT 0,
			cost_to_make NUMERIC(10,2) NOT NULL DEFAULT 0,
			category TEXT,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			is_sold_out BOOLEAN NOT NULL DEFAULT FALSE,
			image_url TEXT,
			made_with TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS delivery_zones (
			id SERIAL PRIMARY KEY,
			zone_name TEXT NOT NULL,
			fee NUMERIC(10,2) NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			area_keywords TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			customer_name TEXT NOT NULL,
			customer_phone TEXT NOT NULL,
			customer_email TEXT NOT NULL,
			delivery_address TEXT NOT NULL,
			order_note TEXT,
			scheduled_at TIMESTAMPTZ,
			subtotal NUMERIC(10,2) NOT NULL,
			bulk_discount NUMERIC(10,2) NOT NULL DEFAULT 0,
			delivery_fee NUMERIC(10,2) NOT NULL DEFAULT 0,
			total_amount NUMERIC(10,2) NOT NULL,
			payment_status TEXT NOT NULL,
			status TEXT NOT NULL,
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			product_id INTEGER NOT NULL,
			product_name TEXT NOT NULL,
			qty INTEGER NOT NULL,
			unit_price NUMERIC(10,2) NOT NULL,
			unit_cost_at_sale NUMERIC(10,2) NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS staff_users (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			role TEXT NOT NULL DEFAULT 'staff',
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
