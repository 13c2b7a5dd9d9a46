// Package container holds the lazily-populated service registry that breaks
// the circular dependencies between domain services (group needs group-member,
// group-member needs group, both need user). Services capture only the
// container and a key; the concrete instance is resolved on first use, after
// the whole graph has been registered and booted.
package container

import (
	"sync"

	"github.com/taskhub/taskhub-api/internal/apperrors"
)

// Key identifies a registered service.
type Key string

const (
	KeyUser        Key = "user"
	KeyGroup       Key = "group"
	KeyGroupMember Key = "group_member"
	KeyTask        Key = "task"
)

// Factory builds a service instance. It runs at most once per key.
type Factory func() any

// Container is an explicit registry object passed by reference, not
// package-global state. Lifecycle: Register calls during single-threaded
// startup wiring, one Boot, then concurrent Get calls for the process
// lifetime.
type Container struct {
	mu        sync.Mutex
	booted    bool
	factories map[Key]Factory
	instances map[Key]any
}

func New() *Container {
	return &Container{
		factories: make(map[Key]Factory),
		instances: make(map[Key]any),
	}
}

// Register records a factory for key. Order-independent; the last
// registration for a key wins.
func (c *Container) Register(key Key, factory Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.factories[key] = factory
}

// Boot flips the container from wiring to serving. Get before Boot fails.
func (c *Container) Boot() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.booted = true
}

// Get returns the singleton for key, invoking its factory on first access.
// The lock spans construction so concurrent first accesses of the same key
// cannot double-construct.
func (c *Container) Get(key Key) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.booted {
		return nil, apperrors.Configuration("container not booted")
	}

	if instance, ok := c.instances[key]; ok {
		return instance, nil
	}

	factory, ok := c.factories[key]
	if !ok {
		return nil, apperrors.Configuration("no factory registered for key %q", key)
	}

	instance := factory()
	c.instances[key] = instance
	return instance, nil
}

// Resolve fetches the singleton for key and asserts its concrete type.
func Resolve[S any](c *Container, key Key) (S, error) {
	var zero S
	instance, err := c.Get(key)
	if err != nil {
		return zero, err
	}
	s, ok := instance.(S)
	if !ok {
		return zero, apperrors.Configuration("service registered for key %q has unexpected type %T", key, instance)
	}
	return s, nil
}
