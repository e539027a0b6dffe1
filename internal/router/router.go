package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/talentflow/recruiting-crm/internal/handler"    // handlers implementing the business logic
	"github.com/talentflow/recruiting-crm/internal/middleware" // middleware for JWT authentication and role enforcement
	"github.com/talentflow/recruiting-crm/internal/model"      // role constants
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and monitoring probe this endpoint.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes.  Login,
// refresh and logout live under /v1/auth and need no session; /v1/me is
// protected.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/login", a.Login)
	// Refresh rotates the refresh token and returns a new pair.
	g.POST("/refresh", a.Refresh)
	// Logout accepts either a bearer token (revoke all sessions) or a
	// refresh_token body (revoke one session), so it stays outside the
	// JWT middleware.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(model.RoleAdmin, model.RoleUser))
	auth.GET("/me", a.Me)
}

// API bundles the handlers for the protected CRM surface so route
// registration stays in one place.
type API struct {
	Clients      *handler.ClientHandler
	Recruiters   *handler.RecruiterHandler
	Vacancies    *handler.VacancyHandler
	Candidates   *handler.CandidateHandler
	Applications *handler.ApplicationHandler
	Payments     *handler.PaymentHandler
	Pipeline     *handler.PipelineHandler
	Reports      *handler.ReportHandler
	Exports      *handler.ExportHandler
	Users        *handler.UserHandler
}

// RegisterAPI wires the CRM endpoints under /v1.  Every route requires
// a valid access token; directory mutations and user management are
// additionally gated to the admin role.  Extra middleware (response
// cache, rate limiting) is applied to the group in the order given.
func RegisterAPI(e *echo.Echo, api API, jwtSecret string, extra ...echo.MiddlewareFunc) {
	v1 := e.Group("/v1")
	v1.Use(middleware.JWTAuth(jwtSecret))
	v1.Use(middleware.RequireRole(model.RoleAdmin, model.RoleUser))
	for _, m := range extra {
		v1.Use(m)
	}

	admin := middleware.RequireRole(model.RoleAdmin)

	// Directories: anyone can read, admins mutate.
	v1.GET("/clients", api.Clients.List)
	v1.POST("/clients", api.Clients.Create, admin)
	v1.PUT("/clients/:id", api.Clients.Update, admin)
	v1.DELETE("/clients/:id", api.Clients.Delete, admin)

	v1.GET("/recruiters", api.Recruiters.List)
	v1.POST("/recruiters", api.Recruiters.Create, admin)
	v1.PUT("/recruiters/:id", api.Recruiters.Update, admin)
	v1.DELETE("/recruiters/:id", api.Recruiters.Delete, admin)

	v1.GET("/vacancies", api.Vacancies.List)
	v1.POST("/vacancies", api.Vacancies.Create, admin)
	v1.PUT("/vacancies/:id", api.Vacancies.Update, admin)
	v1.DELETE("/vacancies/:id", api.Vacancies.Delete, admin)

	// Candidates are visible through the caller's own applications.
	v1.GET("/candidates", api.Candidates.List)
	v1.GET("/candidates/:id", api.Candidates.Get)
	v1.POST("/candidates", api.Candidates.Create)

	// Applications and their payment ledgers.
	v1.POST("/applications", api.Applications.Create)
	v1.GET("/applications/:id", api.Applications.Get)
	v1.PUT("/applications/:id", api.Applications.Update)
	v1.DELETE("/applications/:id", api.Applications.Delete)
	v1.GET("/applications/:id/payments", api.Payments.List)
	v1.POST("/applications/:id/payments", api.Payments.Add)
	v1.DELETE("/payments/:payment_id", api.Payments.Delete)

	// Aggregated views.
	v1.GET("/pipeline", api.Pipeline.List)
	v1.GET("/reports/earnings", api.Reports.Earnings)
	v1.GET("/export/pipeline.csv", api.Exports.PipelineCSV)

	// Account management (admin only).
	v1.GET("/users", api.Users.List, admin)
	v1.POST("/users", api.Users.Create, admin)
	v1.PUT("/users/:id", api.Users.Update, admin)
	v1.DELETE("/users/:id", api.Users.Delete, admin)
}
