// Package router wires handler route registration onto the gin engine.
package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router manages HTTP route registration. Protected registrars sit
// behind the admin session guard; public ones (the auth endpoints) do
// not.
type Router struct {
	engine     *gin.Engine
	apiVersion string
	guard      gin.HandlerFunc
	public     []RouteRegistrar
	protected  []RouteRegistrar
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithAPIVersion sets the API version prefix (e.g., "v1", "v2")
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, guard gin.HandlerFunc, opts ...RouterOption) *Router {
	r := &Router{
		engine:     engine,
		apiVersion: "v1",
		guard:      guard,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterPublic adds registrars whose routes skip the session guard
func (r *Router) RegisterPublic(registrars ...RouteRegistrar) *Router {
	r.public = append(r.public, registrars...)
	return r
}

// RegisterProtected adds registrars whose routes require an admin session
func (r *Router) RegisterProtected(registrars ...RouteRegistrar) *Router {
	r.protected = append(r.protected, registrars...)
	return r
}

// Setup registers all routes with the engine
func (r *Router) Setup() {
	api := r.engine.Group("/api/" + r.apiVersion)

	for _, registrar := range r.public {
		registrar.RegisterRoutes(api)
	}

	guarded := api.Group("")
	if r.guard != nil {
		guarded.Use(r.guard)
	}
	for _, registrar := range r.protected {
		registrar.RegisterRoutes(guarded)
	}
}
