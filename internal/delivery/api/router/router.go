// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"washapp/config"
	"washapp/internal/delivery/api/middleware"
	"washapp/internal/delivery/api/router/handler"
	"washapp/internal/domain/entity"
	"washapp/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	ProfileHandler   *handler.ProfileHandler
	CatalogHandler   *handler.CatalogHandler
	ProviderHandler  *handler.ProviderHandler
	BookingHandler   *handler.BookingHandler
	DashboardHandler *handler.DashboardHandler
	CartHandler      *handler.CartHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Metrics          *metrics.Metrics
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{RouterParams: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.Config.Metrics != nil && r.Config.Metrics.Enabled {
		path := r.Config.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		e.GET(path, echo.WrapHandler(r.Metrics.Handler()))
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.AuthHandler.Register)
		authGroup.POST("/login", r.AuthHandler.Login)
		authGroup.POST("/refresh", r.AuthHandler.RefreshToken)
		authGroup.POST("/logout", r.AuthHandler.Logout)
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.AuthMiddleware.Authenticate)

	adminOnly := r.AuthMiddleware.RequireRole(entity.RoleAdmin)
	providerOnly := r.AuthMiddleware.RequireRole(entity.RoleServiceProvider)
	customerOnly := r.AuthMiddleware.RequireRole(entity.RoleCustomer)

	profileGroup := apiV1.Group("/profile")
	{
		profileGroup.GET("", r.ProfileHandler.GetProfile)
		profileGroup.PUT("", r.ProfileHandler.UpdateProfile)
		profileGroup.DELETE("", r.ProfileHandler.DeleteAccount)
		profileGroup.GET("/picture", r.ProfileHandler.GetPicture)
		profileGroup.PUT("/picture", r.ProfileHandler.UploadPicture)
	}

	apiV1.GET("/categories", r.CatalogHandler.ListCategories)
	apiV1.POST("/categories", r.CatalogHandler.CreateCategory, adminOnly)

	servicesGroup := apiV1.Group("/services")
	{
		servicesGroup.GET("", r.CatalogHandler.ListServices)
		servicesGroup.GET("/:id", r.CatalogHandler.GetService)
		servicesGroup.GET("/:id/image", r.CatalogHandler.GetServiceImage)
		servicesGroup.POST("", r.CatalogHandler.CreateService, adminOnly)
		servicesGroup.PUT("/:id", r.CatalogHandler.UpdateService, adminOnly)
		servicesGroup.PUT("/:id/image", r.CatalogHandler.UploadServiceImage, adminOnly)
	}

	providersGroup := apiV1.Group("/providers")
	{
		providersGroup.POST("", r.ProviderHandler.Register, providerOnly)
		providersGroup.GET("/me", r.ProviderHandler.GetMine, providerOnly)
		providersGroup.PUT("/me/services", r.ProviderHandler.UpdateServices, providerOnly)
		providersGroup.GET("/:id", r.ProviderHandler.Get)
		providersGroup.GET("/:id/reviews", r.ProviderHandler.ListReviews)
		providersGroup.PUT("/:id/verification", r.ProviderHandler.SetVerified, adminOnly)
	}

	bookingsGroup := apiV1.Group("/bookings")
	{
		bookingsGroup.POST("", r.BookingHandler.Create, customerOnly)
		bookingsGroup.GET("", r.BookingHandler.List)
		bookingsGroup.POST("/check-in", r.BookingHandler.CheckIn)
		bookingsGroup.GET("/:id", r.BookingHandler.Get)
		bookingsGroup.PUT("/:id/status", r.BookingHandler.Transition)
		bookingsGroup.POST("/:id/cancel", r.BookingHandler.Cancel)
		bookingsGroup.GET("/:id/qr", r.BookingHandler.CheckInQR)
		bookingsGroup.POST("/:id/review", r.BookingHandler.SubmitReview, customerOnly)
		bookingsGroup.POST("/:id/payments", r.BookingHandler.RecordPayment)
		bookingsGroup.GET("/:id/payments", r.BookingHandler.ListPayments)
	}

	apiV1.GET("/dashboard", r.DashboardHandler.Get)

	cartGroup := apiV1.Group("/cart")
	{
		cartGroup.GET("", r.CartHandler.Get)
		cartGroup.POST("", r.CartHandler.Add)
		cartGroup.DELETE("/:serviceId", r.CartHandler.Remove)
	}
}
