package repository

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/taskhub/taskhub-api/internal/filter"
	"github.com/taskhub/taskhub-api/internal/models"
)

// Concrete repositories are declarations: a filter composition table, an
// ordering allow-list, and the soft-delete capability. No per-entity query
// code lives anywhere else.

func NewUserRepository(db *gorm.DB, log *zap.Logger) *Repository[models.User] {
	return New[models.User](db, log, Config{
		Filters: append(filter.Base(),
			filter.Entry{Field: "email", Apply: filter.Equals("email")},
			filter.Entry{Field: "username", Apply: filter.Equals("username")},
			filter.Entry{Field: "full_name", Apply: filter.EqualsFold("full_name")},
		),
		Orderable:  []string{"created_at", "email", "full_name"},
		SoftDelete: true,
	})
}

func NewGroupRepository(db *gorm.DB, log *zap.Logger) *Repository[models.Group] {
	return New[models.Group](db, log, Config{
		Filters: append(filter.Base(),
			filter.Entry{Field: "name", Apply: filter.EqualsFold("name")},
		),
		Orderable: []string{"created_at", "name"},
	})
}

func NewGroupMemberRepository(db *gorm.DB, log *zap.Logger) *Repository[models.GroupMember] {
	return New[models.GroupMember](db, log, Config{
		Filters: append(filter.Base(),
			filter.Entry{Field: "group_id", Apply: filter.Equals("group_id")},
			filter.Entry{Field: "user_id", Apply: filter.Equals("user_id")},
			filter.Entry{Field: "role", Apply: filter.EqualsFold("role")},
		),
		Orderable: []string{"joined_at"},
	})
}

func NewTaskRepository(db *gorm.DB, log *zap.Logger) *Repository[models.Task] {
	return New[models.Task](db, log, Config{
		Filters: append(filter.Base(),
			filter.Entry{Field: "title", Apply: filter.EqualsFold("title")},
			filter.Entry{Field: "status", Apply: filter.EqualsOrIn("status")},
			filter.Entry{Field: "group_id", Apply: filter.Equals("group_id")},
			filter.Entry{Field: "assigned_to", Apply: filter.Equals("assigned_to")},
		),
		Orderable:  []string{"created_at", "due_date", "title", "status"},
		SoftDelete: true,
	})
}
