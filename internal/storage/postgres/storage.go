package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/quickbite/quickbite/internal/domain/errors"
	"github.com/quickbite/quickbite/internal/domain/model"
	"github.com/quickbite/quickbite/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool used by the storage layer.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type restaurantRepository struct {
	storage *Storage
}

type menuRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Restaurants() repository.RestaurantRepository {
	return &restaurantRepository{storage: s}
}

func (s *Storage) Menus() repository.MenuRepository {
	return &menuRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id TEXT PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS restaurants (
            id TEXT PRIMARY KEY,
            owner_id TEXT NOT NULL REFERENCES users(id),
            name TEXT NOT NULL,
            city TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS menu_items (
            id TEXT PRIMARY KEY,
            restaurant_id TEXT NOT NULL REFERENCES restaurants(id),
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            image TEXT NOT NULL DEFAULT '',
            price BIGINT NOT NULL,
            available BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            customer_id TEXT NOT NULL REFERENCES users(id),
            restaurant_id TEXT NOT NULL REFERENCES restaurants(id),
            delivery_details JSONB NOT NULL,
            cart_items JSONB NOT NULL,
            total_amount BIGINT NOT NULL,
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_restaurants_owner ON restaurants(owner_id)`,
		`CREATE INDEX IF NOT EXISTS idx_menu_items_restaurant ON menu_items(restaurant_id)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_restaurant ON orders(restaurant_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status, created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (id, login, password_hash) VALUES ($1, $2, $3) RETURNING created_at`
	u := model.User{ID: uuid.NewString(), Login: login, PasswordHash: passwordHash}
	err := r.storage.pool.QueryRow(ctx, query, u.ID, login, passwordHash).Scan(&u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	const query = `SELECT id, login, password_hash, created_at FROM users WHERE login=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	const query = `SELECT id, login, password_hash, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- RestaurantRepository implementation ---

func (r *restaurantRepository) Create(ctx context.Context, restaurant *model.Restaurant) (*model.Restaurant, error) {
	const query = `INSERT INTO restaurants (id, owner_id, name, city) VALUES ($1, $2, $3, $4) RETURNING created_at`
	created := *restaurant
	created.ID = uuid.NewString()
	err := r.storage.pool.QueryRow(ctx, query, created.ID, created.OwnerID, created.Name, created.City).Scan(&created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *restaurantRepository) GetByID(ctx context.Context, id string) (*model.Restaurant, error) {
	const query = `SELECT id, owner_id, name, city, created_at FROM restaurants WHERE id=$1`
	return r.scanOne(ctx, query, id)
}

func (r *restaurantRepository) GetByOwner(ctx context.Context, ownerID string) (*model.Restaurant, error) {
	const query = `SELECT id, owner_id, name, city, created_at FROM restaurants WHERE owner_id=$1`
	return r.scanOne(ctx, query, ownerID)
}

func (r *restaurantRepository) scanOne(ctx context.Context, query string, arg any) (*model.Restaurant, error) {
	var rest model.Restaurant
	err := r.storage.pool.QueryRow(ctx, query, arg).Scan(&rest.ID, &rest.OwnerID, &rest.Name, &rest.City, &rest.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &rest, nil
}

// --- MenuRepository implementation ---

const menuColumns = `id, restaurant_id, name, description, image, price, available, created_at, updated_at`

func (r *menuRepository) Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	const query = `INSERT INTO menu_items (id, restaurant_id, name, description, image, price, available)
                   VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at, updated_at`
	created := *item
	created.ID = uuid.NewString()
	err := r.storage.pool.QueryRow(ctx, query,
		created.ID, created.RestaurantID, created.Name, created.Description, created.Image, created.Price, created.Available,
	).Scan(&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *menuRepository) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items WHERE id=$1`
	var item model.MenuItem
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Image, &item.Price, &item.Available, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]model.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items WHERE restaurant_id=$1 ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.MenuItem
	for rows.Next() {
		var item model.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Image, &item.Price, &item.Available, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *menuRepository) Update(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	const query = `UPDATE menu_items
                   SET name=$2, description=$3, image=$4, price=$5, available=$6, updated_at=NOW()
                   WHERE id=$1 RETURNING restaurant_id, created_at, updated_at`
	updated := *item
	err := r.storage.pool.QueryRow(ctx, query,
		updated.ID, updated.Name, updated.Description, updated.Image, updated.Price, updated.Available,
	).Scan(&updated.RestaurantID, &updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *menuRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM menu_items WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- OrderRepository implementation ---

const orderColumns = `id, customer_id, restaurant_id, delivery_details, cart_items, total_amount, status, created_at, updated_at`

type orderScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row orderScanner) (*model.Order, error) {
	var (
		o            model.Order
		deliveryJSON []byte
		cartJSON     []byte
	)
	err := row.Scan(&o.ID, &o.CustomerID, &o.RestaurantID, &deliveryJSON, &cartJSON, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(deliveryJSON, &o.DeliveryDetails); err != nil {
		return nil, fmt.Errorf("decode delivery details: %w", err)
	}
	if err := json.Unmarshal(cartJSON, &o.CartItems); err != nil {
		return nil, fmt.Errorf("decode cart items: %w", err)
	}
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	const query = `INSERT INTO orders (id, customer_id, restaurant_id, delivery_details, cart_items, total_amount, status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at, updated_at`

	deliveryJSON, err := json.Marshal(order.DeliveryDetails)
	if err != nil {
		return nil, fmt.Errorf("encode delivery details: %w", err)
	}
	cartJSON, err := json.Marshal(order.CartItems)
	if err != nil {
		return nil, fmt.Errorf("encode cart items: %w", err)
	}

	created := *order
	created.ID = uuid.NewString()
	created.Status = model.OrderStatusPending
	err = r.storage.pool.QueryRow(ctx, query,
		created.ID, created.CustomerID, created.RestaurantID, deliveryJSON, cartJSON, created.TotalAmount, created.Status,
	).Scan(&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE customer_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, customerID)
}

func (r *orderRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE restaurant_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, restaurantID)
}

func (r *orderRepository) list(ctx context.Context, query string, arg any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ConfirmPending is the only path from pending to confirmed. The status
// guard in the WHERE clause makes duplicate webhook deliveries no-ops.
func (r *orderRepository) ConfirmPending(ctx context.Context, orderID string, settledAmount int64) (bool, error) {
	const query = `UPDATE orders SET status=$2, total_amount=$3, updated_at=NOW()
                   WHERE id=$1 AND status=$4`
	tag, err := r.storage.pool.Exec(ctx, query, orderID, model.OrderStatusConfirmed, settledAmount, model.OrderStatusPending)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// UpdateStatus never touches pending rows; confirmation of a pending order
// goes through ConfirmPending exclusively.
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	query := `UPDATE orders SET status=$2, updated_at=NOW() WHERE id=$1 AND status<>$3 RETURNING ` + orderColumns
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, orderID, status, model.OrderStatusPending))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) ListStalePending(ctx context.Context, olderThan time.Time, limit int) ([]model.Order, error) {
	selectQuery := `SELECT ` + orderColumns + `
                    FROM orders
                    WHERE status=$1 AND created_at < $2
                    ORDER BY created_at
                    LIMIT $3
                    FOR UPDATE SKIP LOCKED`

	var orders []model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectQuery, model.OrderStatusPending, olderThan, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			order, err := scanOrder(rows)
			if err != nil {
				return err
			}
			orders = append(orders, *order)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
