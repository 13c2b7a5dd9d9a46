// Package repository provides the entity-agnostic data-access layer. A
// Repository owns one model type, its filter composition table, and its
// soft-delete capability; concrete repositories are plain configurations, not
// subclasses.
package repository

import (
	"context"
	"errors"
	"math"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/taskhub/taskhub-api/internal/apperrors"
	"github.com/taskhub/taskhub-api/internal/database"
	"github.com/taskhub/taskhub-api/internal/filter"
)

// Pagination describes one page of a filtered listing.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// Config declares a concrete repository: its filterable fields, the fields it
// may order by, and whether the entity carries an is_deleted tombstone.
type Config struct {
	Filters    filter.Map
	Orderable  []string
	SoftDelete bool
}

type Repository[T any] struct {
	db         *gorm.DB
	filters    filter.Map
	orderable  []string
	softDelete bool
	log        *zap.Logger
}

func New[T any](db *gorm.DB, log *zap.Logger, cfg Config) *Repository[T] {
	return &Repository[T]{
		db:         db,
		filters:    cfg.Filters,
		orderable:  cfg.Orderable,
		softDelete: cfg.SoftDelete,
		log:        log,
	}
}

// session returns the query handle for this call, joining the per-request
// transaction scope when one is bound to ctx.
func (r *Repository[T]) session(ctx context.Context) *gorm.DB {
	return database.FromContext(ctx, r.db).WithContext(ctx)
}

// withSoftDeleteDefault injects {is_deleted, false} unless the caller
// supplied the field explicitly, so tombstoned rows never leak by accident.
func (r *Repository[T]) withSoftDeleteDefault(filters []filter.Descriptor) []filter.Descriptor {
	if !r.softDelete || filter.Has(filters, "is_deleted") {
		return filters
	}
	out := make([]filter.Descriptor, 0, len(filters)+1)
	out = append(out, filter.Descriptor{Field: "is_deleted", Value: false})
	return append(out, filters...)
}

// GetByID looks up a record by primary key, excluding tombstoned rows for
// soft-deletable entities. Absence is (nil, nil), never an error.
func (r *Repository[T]) GetByID(ctx context.Context, id any) (*T, error) {
	q := r.session(ctx).Where("id = ?", id)
	if r.softDelete {
		q = q.Where("is_deleted = ?", false)
	}

	var m T
	if err := q.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.log.Error("get by id failed", zap.Any("id", id), zap.Error(err))
		return nil, apperrors.Storage(err, "get by id failed")
	}
	return &m, nil
}

// List applies the filter engine and returns one page of matches.
//
// List is deliberately fail-soft: a storage error is logged and an empty
// page with zeroed counters returned, so a transient query failure degrades
// a listing instead of breaking it. Single-record operations propagate.
//
// A non-positive limit is a sentinel for "return everything, one page".
func (r *Repository[T]) List(ctx context.Context, filters []filter.Descriptor, page, limit int, orderBy string) ([]T, Pagination) {
	if page < 1 {
		page = 1
	}

	q := r.session(ctx).Model(new(T))
	q = filter.Apply(q, r.filters, r.withSoftDeleteDefault(filters))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		r.log.Error("list count failed", zap.Error(err))
		return []T{}, Pagination{Page: page, Limit: limit}
	}

	pg := Pagination{Page: page, Limit: limit, Total: total}
	if limit > 0 {
		pg.TotalPages = int(math.Ceil(float64(total) / float64(limit)))
		q = q.Offset((page - 1) * limit).Limit(limit)
	} else {
		pg.Page = 1
		pg.TotalPages = 1
	}

	q = filter.ApplyOrder(q, orderBy, r.orderable)

	var items []T
	if err := q.Find(&items).Error; err != nil {
		r.log.Error("list find failed", zap.Error(err))
		return []T{}, Pagination{Page: page, Limit: limit}
	}
	if items == nil {
		items = []T{}
	}
	return items, pg
}

// GetOneByFilters returns the first record matching the filters, or
// (nil, nil) when nothing matches.
func (r *Repository[T]) GetOneByFilters(ctx context.Context, filters []filter.Descriptor, orderBy string) (*T, error) {
	q := r.session(ctx)
	q = filter.Apply(q, r.filters, r.withSoftDeleteDefault(filters))
	q = filter.ApplyOrder(q, orderBy, r.orderable)

	var m T
	if err := q.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.log.Error("get one by filters failed", zap.Error(err))
		return nil, apperrors.Storage(err, "get one by filters failed")
	}
	return &m, nil
}

// Create persists m and returns it with generated id and timestamps filled in.
func (r *Repository[T]) Create(ctx context.Context, m *T) (*T, error) {
	if err := r.session(ctx).Create(m).Error; err != nil {
		r.log.Error("create failed", zap.Error(err))
		return nil, apperrors.Storage(err, "create failed")
	}
	return m, nil
}

// Update fetches the record by id and mutates it in place. A missing target
// is (nil, nil), not an error.
func (r *Repository[T]) Update(ctx context.Context, id any, changes map[string]any) (*T, error) {
	m, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	if err := r.session(ctx).Model(m).Updates(changes).Error; err != nil {
		r.log.Error("update failed", zap.Any("id", id), zap.Error(err))
		return nil, apperrors.Storage(err, "update failed")
	}
	return m, nil
}

// UpdateOneByFilters mutates the first record matching the filters.
func (r *Repository[T]) UpdateOneByFilters(ctx context.Context, filters []filter.Descriptor, changes map[string]any) (*T, error) {
	m, err := r.GetOneByFilters(ctx, filters, "")
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	if err := r.session(ctx).Model(m).Updates(changes).Error; err != nil {
		r.log.Error("update one by filters failed", zap.Error(err))
		return nil, apperrors.Storage(err, "update one by filters failed")
	}
	return m, nil
}

// DeleteByID removes a record: soft sets the tombstone flag, hard removes the
// row. Entities without a tombstone column are always hard-deleted. Returns
// false when id does not resolve to a live record.
func (r *Repository[T]) DeleteByID(ctx context.Context, id any, soft bool) (bool, error) {
	m, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if m == nil {
		return false, nil
	}

	if soft && r.softDelete {
		if err := r.session(ctx).Model(m).Update("is_deleted", true).Error; err != nil {
			r.log.Error("soft delete failed", zap.Any("id", id), zap.Error(err))
			return false, apperrors.Storage(err, "soft delete failed")
		}
		return true, nil
	}

	if err := r.session(ctx).Delete(m).Error; err != nil {
		r.log.Error("hard delete failed", zap.Any("id", id), zap.Error(err))
		return false, apperrors.Storage(err, "hard delete failed")
	}
	return true, nil
}
