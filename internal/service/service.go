// Package service provides the generic business-rule wrapper over a
// repository. It owns the semantics a repository cannot know about: absence
// becomes a structured not-found error carrying the entity's readable name,
// and every read result passes through the output projection before leaving
// the layer.
package service

import (
	"context"
	"reflect"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/taskhub/taskhub-api/internal/apperrors"
	"github.com/taskhub/taskhub-api/internal/filter"
	"github.com/taskhub/taskhub-api/internal/repository"
)

// Service wraps a Repository[T] with an output projection to D.
type Service[T any, D any] struct {
	Repo    *repository.Repository[T]
	project func(*T) D
	name    string
	log     *zap.Logger
}

func New[T any, D any](repo *repository.Repository[T], project func(*T) D, log *zap.Logger) *Service[T, D] {
	return &Service[T, D]{
		Repo:    repo,
		project: project,
		name:    entityName[T](),
		log:     log,
	}
}

// Name returns the human-readable entity name, e.g. "group member".
func (s *Service[T, D]) Name() string { return s.name }

// Project applies the output projection to a raw model.
func (s *Service[T, D]) Project(m *T) D { return s.project(m) }

// GetByID returns the projected record or a not-found error.
func (s *Service[T, D]) GetByID(ctx context.Context, id any) (D, error) {
	var zero D
	m, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if m == nil {
		return zero, apperrors.NotFound("%s %v not found", s.name, id)
	}
	return s.project(m), nil
}

// ModelByID returns the raw model form, or (nil, nil) on absence.
func (s *Service[T, D]) ModelByID(ctx context.Context, id any) (*T, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns one projected page of matches.
func (s *Service[T, D]) List(ctx context.Context, filters []filter.Descriptor, page, limit int, orderBy string) ([]D, repository.Pagination) {
	items, pg := s.Repo.List(ctx, filters, page, limit, orderBy)
	out := make([]D, len(items))
	for i := range items {
		out[i] = s.project(&items[i])
	}
	return out, pg
}

// GetOneByFilters returns the raw first match, or (nil, nil).
func (s *Service[T, D]) GetOneByFilters(ctx context.Context, filters []filter.Descriptor) (*T, error) {
	return s.Repo.GetOneByFilters(ctx, filters, "")
}

// Create persists m and returns its projection.
func (s *Service[T, D]) Create(ctx context.Context, m *T) (D, error) {
	var zero D
	created, err := s.Repo.Create(ctx, m)
	if err != nil {
		return zero, err
	}
	return s.project(created), nil
}

// Update mutates the record in place; a missing target is a not-found error.
func (s *Service[T, D]) Update(ctx context.Context, id any, changes map[string]any) (D, error) {
	var zero D
	m, err := s.Repo.Update(ctx, id, changes)
	if err != nil {
		return zero, err
	}
	if m == nil {
		return zero, apperrors.NotFound("%s %v not found", s.name, id)
	}
	return s.project(m), nil
}

// DeleteByID confirms existence before delegating, so callers get a
// not-found error instead of a silent false.
func (s *Service[T, D]) DeleteByID(ctx context.Context, id any, soft bool) error {
	ok, err := s.Repo.DeleteByID(ctx, id, soft)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NotFound("%s %v not found", s.name, id)
	}
	return nil
}

// entityName derives a readable name from the model type: "GroupMember"
// becomes "group member".
func entityName[T any]() string {
	name := reflect.TypeOf(*new(T)).Name()
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteRune(' ')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
