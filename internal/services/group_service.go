package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/taskhub/taskhub-api/internal/apperrors"
	"github.com/taskhub/taskhub-api/internal/container"
	"github.com/taskhub/taskhub-api/internal/database"
	"github.com/taskhub/taskhub-api/internal/models"
	"github.com/taskhub/taskhub-api/internal/repository"
	"github.com/taskhub/taskhub-api/internal/schemas"
	"github.com/taskhub/taskhub-api/internal/service"
)

// GroupService provides group CRUD plus the create-group orchestration. It
// depends on the user and group-member services through the container, which
// resolves them lazily so the circular group <-> group-member wiring never
// needs eager construction.
type GroupService struct {
	*service.Service[models.Group, schemas.GroupOut]
	c   *container.Container
	tx  *database.TxManager
	log *zap.Logger
}

func NewGroupService(db *gorm.DB, log *zap.Logger, c *container.Container, tx *database.TxManager) *GroupService {
	repo := repository.NewGroupRepository(db, log)
	return &GroupService{
		Service: service.New(repo, schemas.NewGroupOut, log),
		c:       c,
		tx:      tx,
		log:     log,
	}
}

func (s *GroupService) users() (*UserService, error) {
	return container.Resolve[*UserService](s.c, container.KeyUser)
}

func (s *GroupService) members() (*GroupMemberService, error) {
	return container.Resolve[*GroupMemberService](s.c, container.KeyGroupMember)
}

// CreateGroup resolves the acting user, creates the group, and records the
// creator as its admin member. The group insert and the membership insert run
// in one transaction so a failed second step cannot leave an orphaned group.
func (s *GroupService) CreateGroup(ctx context.Context, req schemas.CreateGroupRequest, userID uuid.UUID) (schemas.GroupOut, error) {
	var zero schemas.GroupOut
	if err := schemas.Validate(req); err != nil {
		return zero, err
	}

	userSvc, err := s.users()
	if err != nil {
		return zero, err
	}
	memberSvc, err := s.members()
	if err != nil {
		return zero, err
	}

	user, err := userSvc.ModelByID(ctx, userID)
	if err != nil {
		return zero, err
	}
	if user == nil {
		return zero, apperrors.NotFound("user %s not found", userID)
	}

	var out schemas.GroupOut
	err = s.tx.Do(ctx, func(ctx context.Context) error {
		group, err := s.Repo.Create(ctx, &models.Group{Name: req.Name})
		if err != nil {
			return err
		}

		if _, err := memberSvc.Create(ctx, &models.GroupMember{
			GroupID:  group.ID,
			UserID:   user.ID,
			Role:     models.RoleAdmin,
			JoinedAt: time.Now(),
		}); err != nil {
			return err
		}

		out = s.Project(group)
		return nil
	})
	if err != nil {
		return zero, err
	}
	return out, nil
}
