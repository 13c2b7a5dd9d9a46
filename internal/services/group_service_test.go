package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/taskhub/taskhub-api/internal/apperrors"
	"github.com/taskhub/taskhub-api/internal/auth"
	"github.com/taskhub/taskhub-api/internal/container"
	"github.com/taskhub/taskhub-api/internal/database"
	"github.com/taskhub/taskhub-api/internal/models"
	"github.com/taskhub/taskhub-api/internal/schemas"
)

type groupTestEnv struct {
	db     *gorm.DB
	users  *UserService
	groups *GroupService
}

func setupGroupTestEnv(t *testing.T) groupTestEnv {
	t.Helper()

	db := setupTestDB(t)
	log := zap.NewNop()
	tx := database.NewTxManager(db)
	hasher := auth.NewPasswordHasher(4)
	tokens := auth.NewTokenIssuer("test-secret", "taskhub", time.Hour)

	c := container.New()
	c.Register(container.KeyUser, func() any {
		return NewUserService(db, log, hasher, tokens)
	})
	c.Register(container.KeyGroup, func() any {
		return NewGroupService(db, log, c, tx)
	})
	c.Register(container.KeyGroupMember, func() any {
		return NewGroupMemberService(db, log, c)
	})
	c.Boot()

	users, err := container.Resolve[*UserService](c, container.KeyUser)
	require.NoError(t, err)
	groups, err := container.Resolve[*GroupService](c, container.KeyGroup)
	require.NoError(t, err)

	return groupTestEnv{db: db, users: users, groups: groups}
}

func TestCreateGroupCreatesAdminMembership(t *testing.T) {
	env := setupGroupTestEnv(t)
	ctx := context.Background()

	user, err := env.users.AuthRegister(ctx, schemas.RegisterRequest{
		Email: "a@x.com", Password: "secret12", FullName: "A",
	})
	require.NoError(t, err)

	group, err := env.groups.CreateGroup(ctx, schemas.CreateGroupRequest{Name: "Team1"}, user.ID)
	require.NoError(t, err)
	require.Equal(t, "Team1", group.Name)
	require.NotEqual(t, uuid.Nil, group.ID)

	var members []models.GroupMember
	require.NoError(t, env.db.Where("group_id = ?", group.ID).Find(&members).Error)
	require.Len(t, members, 1)
	require.Equal(t, user.ID, members[0].UserID)
	require.Equal(t, models.RoleAdmin, members[0].Role)
}

func TestCreateGroupUnknownUserIsNotFound(t *testing.T) {
	env := setupGroupTestEnv(t)

	_, err := env.groups.CreateGroup(context.Background(), schemas.CreateGroupRequest{Name: "Team1"}, uuid.New())
	require.True(t, errors.Is(err, apperrors.ErrNotFound))

	// the failed orchestration must not leave a group behind
	var count int64
	require.NoError(t, env.db.Model(&models.Group{}).Count(&count).Error)
	require.Equal(t, int64(0), count)
}

func TestCreateGroupEmptyNameIsValidationError(t *testing.T) {
	env := setupGroupTestEnv(t)
	ctx := context.Background()

	user, err := env.users.AuthRegister(ctx, schemas.RegisterRequest{
		Email: "a@x.com", Password: "secret12", FullName: "A",
	})
	require.NoError(t, err)

	_, err = env.groups.CreateGroup(ctx, schemas.CreateGroupRequest{}, user.ID)
	require.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestCreateGroupRollsBackOnMembershipFailure(t *testing.T) {
	env := setupGroupTestEnv(t)
	ctx := context.Background()

	user, err := env.users.AuthRegister(ctx, schemas.RegisterRequest{
		Email: "a@x.com", Password: "secret12", FullName: "A",
	})
	require.NoError(t, err)

	// dropping the membership table makes the second step of the
	// orchestration fail after the group insert succeeded
	require.NoError(t, env.db.Migrator().DropTable(&models.GroupMember{}))

	_, err = env.groups.CreateGroup(ctx, schemas.CreateGroupRequest{Name: "Team1"}, user.ID)
	require.Error(t, err)

	var count int64
	require.NoError(t, env.db.Model(&models.Group{}).Count(&count).Error)
	require.Equal(t, int64(0), count)
}

func TestAddMemberIsUnimplemented(t *testing.T) {
	env := setupGroupTestEnv(t)

	members, err := env.groups.members()
	require.NoError(t, err)

	err = members.AddMember(context.Background(), schemas.AddMemberRequest{
		UserID: uuid.New(),
		Role:   models.RoleMember,
	})
	require.ErrorIs(t, err, ErrAddMemberNotImplemented)
}
