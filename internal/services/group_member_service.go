package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/taskhub/taskhub-api/internal/container"
	"github.com/taskhub/taskhub-api/internal/models"
	"github.com/taskhub/taskhub-api/internal/repository"
	"github.com/taskhub/taskhub-api/internal/schemas"
	"github.com/taskhub/taskhub-api/internal/service"
)

// ErrAddMemberNotImplemented marks the AddMember extension point; the
// self-join flow behind it is not built yet.
var ErrAddMemberNotImplemented = errors.New("add member is not implemented")

// GroupMemberService manages the (group, user) membership records.
type GroupMemberService struct {
	*service.Service[models.GroupMember, schemas.MemberOut]
	c   *container.Container
	log *zap.Logger
}

func NewGroupMemberService(db *gorm.DB, log *zap.Logger, c *container.Container) *GroupMemberService {
	repo := repository.NewGroupMemberRepository(db, log)
	return &GroupMemberService{
		Service: service.New(repo, schemas.NewMemberOut, log),
		c:       c,
		log:     log,
	}
}

// AddMember is a declared extension point for member self-join flows.
func (s *GroupMemberService) AddMember(ctx context.Context, req schemas.AddMemberRequest) error {
	return ErrAddMemberNotImplemented
}
