package postgres

import (
	"context"
	"errors"
	"fmt"

	"barista/internal/entities"
	"barista/internal/repository"
	"barista/internal/service/order"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const ordersTable = "orders"

var orderColumns = []string{"seq", "order_id", "customer_name", "items", "status", "created_at", "estimated_time"}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, o entities.Order) error {
	items, err := FromDomainItems(o.Items)
	if err != nil {
		return fmt.Errorf("encode order items: %w", err)
	}

	query, args, err := qb.
		Insert(ordersTable).
		Columns("order_id", "customer_name", "items", "status", "created_at", "estimated_time").
		Values(o.ID, o.CustomerName, items, o.Status.String(), o.CreatedAt, o.EstimatedTime).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}

	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return order.ErrConflict
		}
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.querier.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected order repository count error: %w", err)
	}
	return count, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query, args, err := qb.
		Select(orderColumns...).
		From(ordersTable).
		Where(sq.Eq{"order_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	var model OrderDB
	err = scanOrder(r.querier.QueryRow(ctx, query, args...), &model)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&model)
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Order, error) {
	query, args, err := qb.
		Select(orderColumns...).
		From(ordersTable).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}
	defer rows.Close()

	var models []OrderDB
	for rows.Next() {
		var model OrderDB
		if err := scanOrder(rows, &model); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		models = append(models, model)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}

	return ToDomainList(models)
}

func (r *Repository) Update(ctx context.Context, o entities.Order) error {
	items, err := FromDomainItems(o.Items)
	if err != nil {
		return fmt.Errorf("encode order items: %w", err)
	}

	query, args, err := qb.
		Update(ordersTable).
		Set("status", o.Status.String()).
		Set("items", items).
		Where(sq.Eq{"order_id": o.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected order repository update error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected order repository update error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func scanOrder(row pgx.Row, model *OrderDB) error {
	return row.Scan(
		&model.Seq,
		&model.OrderID,
		&model.CustomerName,
		&model.Items,
		&model.Status,
		&model.CreatedAt,
		&model.EstimatedTime,
	)
}
