package orderrepo

import (
	"context"
	"errors"
	"log/slog"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/davecgh/go-spew/spew"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// mutableColumns are overwritten when an existing order row is saved again.
// restaurant_id and created_at are fixed at creation.
var mutableColumns = []string{
	"customer_id",
	"status",
	"delivery_street",
	"delivery_city",
	"delivery_number",
	"delivery_postal_code",
	"delivery_latitude",
	"delivery_longitude",
	"schema_version",
}

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormOrderRepository creates a new GORM order repository. db may be a plain
// connection or an open transaction.
func NewGormOrderRepository(db *gorm.DB, logger *slog.Logger) *GormOrderRepository {
	return &GormOrderRepository{
		db:     db,
		logger: logger.With("component", "order_repository"),
	}
}

// Save upserts the order row, replaces all of its items and returns the reloaded
// aggregate. The steps run in one transaction (a savepoint when db already is a
// transaction). The upsert locks the order row, so concurrent saves of the same
// order are serialized and a reader never sees the items half replaced.
func (r *GormOrderRepository) Save(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	items := dto.Items
	dto.Items = nil

	var saved *order.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(mutableColumns),
		}).Create(&dto).Error; err != nil {
			return classify("upsert order", err)
		}

		if err := tx.Where("order_id = ?", dto.ID).Delete(&OrderItemDTO{}).Error; err != nil {
			return classify("delete order items", err)
		}

		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return classify("insert order items", err)
			}
		}

		reloaded, found, err := r.find(ctx, tx, aggregate.ID(), false)
		if err != nil {
			return err
		}
		if !found {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}

		saved = reloaded
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.DebugContext(ctx, "order saved",
		"order_id", aggregate.ID().String(),
		"items", len(items),
	)
	return saved, nil
}

// FindByID retrieves an order by ID. found is false when no order has the id.
func (r *GormOrderRepository) FindByID(ctx context.Context, id kernel.UUID) (*order.Order, bool, error) {
	if err := id.Validate(); err != nil {
		return nil, false, err
	}

	return r.find(ctx, r.db, id, false)
}

// FindByIDForUpdate retrieves an order and holds a row lock on it
// (SELECT ... FOR UPDATE) until the transaction r is bound to ends.
func (r *GormOrderRepository) FindByIDForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, bool, error) {
	if err := id.Validate(); err != nil {
		return nil, false, err
	}

	return r.find(ctx, r.db, id, true)
}

// FindByCustomerID retrieves all orders of a customer, oldest first.
func (r *GormOrderRepository) FindByCustomerID(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.preloaded(ctx, r.db).
		Where("customer_id = ?", customerID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, classify("find orders by customer", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := r.load(ctx, dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// UpdateStatus writes only the status column.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id kernel.UUID, status order.Status) error {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).
		Update("status", status.String())
	if result.Error != nil {
		return classify("update order status", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// Delete removes the order row; the foreign key cascades to its items.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&OrderDTO{}).Error; err != nil {
		return classify("delete order", err)
	}

	return nil
}

func (r *GormOrderRepository) find(
	ctx context.Context,
	db *gorm.DB,
	id kernel.UUID,
	forUpdate bool,
) (*order.Order, bool, error) {
	query := r.preloaded(ctx, db)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var dto OrderDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, classify("find order", err)
	}

	o, err := r.load(ctx, dto)
	if err != nil {
		return nil, false, err
	}
	return o, true, nil
}

func (r *GormOrderRepository) preloaded(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func (r *GormOrderRepository) load(ctx context.Context, dto OrderDTO) (*order.Order, error) {
	if r.logger.Enabled(ctx, slog.LevelDebug) {
		r.logger.DebugContext(ctx, "order record loaded", "record", spew.Sdump(dto))
	}

	o, err := toDomain(dto)
	if err != nil {
		r.logger.ErrorContext(ctx, "stored order failed validation",
			"order_id", dto.ID.String(),
			"error", err,
		)
		return nil, errs.NewPersistenceError("load order", "", err)
	}
	return o, nil
}
