// Package registry wires every domain service factory into the container.
// Factories must not resolve other services; cross-service lookups happen
// lazily after boot, through the container.
package registry

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/taskhub/taskhub-api/internal/auth"
	"github.com/taskhub/taskhub-api/internal/container"
	"github.com/taskhub/taskhub-api/internal/database"
	"github.com/taskhub/taskhub-api/internal/services"
)

// Deps carries the shared collaborators the service factories close over.
type Deps struct {
	DB     *gorm.DB
	Log    *zap.Logger
	Tx     *database.TxManager
	Hasher auth.PasswordHasher
	Tokens *auth.TokenIssuer
}

// Wire registers all service factories. Call Boot on the container afterwards.
func Wire(c *container.Container, deps Deps) {
	c.Register(container.KeyUser, func() any {
		return services.NewUserService(deps.DB, deps.Log, deps.Hasher, deps.Tokens)
	})
	c.Register(container.KeyGroup, func() any {
		return services.NewGroupService(deps.DB, deps.Log, c, deps.Tx)
	})
	c.Register(container.KeyGroupMember, func() any {
		return services.NewGroupMemberService(deps.DB, deps.Log, c)
	})
	c.Register(container.KeyTask, func() any {
		return services.NewTaskService(deps.DB, deps.Log)
	})
}
