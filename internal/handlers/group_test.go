package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/taskhub/taskhub-api/internal/auth"
	"github.com/taskhub/taskhub-api/internal/container"
	"github.com/taskhub/taskhub-api/internal/database"
	"github.com/taskhub/taskhub-api/internal/middleware"
	"github.com/taskhub/taskhub-api/internal/models"
	"github.com/taskhub/taskhub-api/internal/services"
)

// setupGroupRouter wires the full request path: transaction scope, bearer
// auth, container-resolved services, group handler.
func setupGroupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)
	log := zap.NewNop()
	tx := database.NewTxManager(db)
	hasher := auth.NewPasswordHasher(4)
	tokens := newTestTokens()

	c := container.New()
	c.Register(container.KeyUser, func() any {
		return services.NewUserService(db, log, hasher, tokens)
	})
	c.Register(container.KeyGroup, func() any {
		return services.NewGroupService(db, log, c, tx)
	})
	c.Register(container.KeyGroupMember, func() any {
		return services.NewGroupMemberService(db, log, c)
	})
	c.Boot()

	users, err := container.Resolve[*services.UserService](c, container.KeyUser)
	require.NoError(t, err)
	groups, err := container.Resolve[*services.GroupService](c, container.KeyGroup)
	require.NoError(t, err)

	authH := NewAuthHandler(users)
	groupH := NewGroupHandler(groups)

	r := gin.New()
	api := r.Group("/api", middleware.Transaction(tx))
	api.POST("/auth/register", authH.Register)
	api.POST("/auth/login", authH.Login)

	protected := api.Group("", middleware.RequireAuth(tokens))
	protected.POST("/user/groups", groupH.Create)
	protected.GET("/user/groups", groupH.List)
	protected.GET("/user/groups/:id", groupH.Get)

	return r, db
}

func registerAndLogin(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"email": "a@x.com", "password": "secret12", "full_name": "A",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w, envelope := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"identity": "a@x.com", "password": "secret12",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := envelope.Data.(map[string]any)
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestCreateGroupEndpoint(t *testing.T) {
	r, db := setupGroupRouter(t)
	token := registerAndLogin(t, r)

	w, envelope := doJSON(t, r, http.MethodPost, "/api/user/groups", gin.H{"name": "Team1"},
		map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusCreated, w.Code)

	data := envelope.Data.(map[string]any)
	require.Equal(t, "Team1", data["name"])

	// the creator becomes the admin member in the same request
	var members []models.GroupMember
	require.NoError(t, db.Find(&members).Error)
	require.Len(t, members, 1)
	require.Equal(t, models.RoleAdmin, members[0].Role)
}

func TestCreateGroupWithoutTokenIs401(t *testing.T) {
	r, _ := setupGroupRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/user/groups", gin.H{"name": "Team1"}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListGroupsFilteredByName(t *testing.T) {
	r, _ := setupGroupRouter(t)
	token := registerAndLogin(t, r)
	headers := map[string]string{"Authorization": "Bearer " + token}

	for _, name := range []string{"Alpha", "Beta"} {
		w, _ := doJSON(t, r, http.MethodPost, "/api/user/groups", gin.H{"name": name}, headers)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, envelope := doJSON(t, r, http.MethodGet, "/api/user/groups?name=alpha", nil, headers)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, envelope.Pagination)
	require.Equal(t, int64(1), envelope.Pagination.Total)

	items := envelope.Data.([]any)
	require.Len(t, items, 1)
	require.Equal(t, "Alpha", items[0].(map[string]any)["name"])
}

func TestGetUnknownGroupIs404(t *testing.T) {
	r, _ := setupGroupRouter(t)
	token := registerAndLogin(t, r)

	w, _ := doJSON(t, r, http.MethodGet, "/api/user/groups/00000000-0000-0000-0000-000000000001", nil,
		map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusNotFound, w.Code)
}
