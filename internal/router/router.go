package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"storefront/internal/auth"
	"storefront/internal/handler"
	"storefront/internal/model"
)

// Register wires routes and middleware. Required roles are declared here,
// statically, per route group; nothing resolves role metadata at request time.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	resolver auth.AccountResolver,
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/products", productHandler.ListProducts)
	api.GET("/products/:id", productHandler.GetProduct)

	// Authenticated routes: bearer token verified, then the subject re-checked
	// against the user store and an identity attached to the request.
	authed := api.Group("", auth.TokenMiddleware(jwtService), auth.LoadIdentity(resolver))

	authed.GET("/me", authHandler.Me)

	// Any authenticated user
	authed.POST("/orders", orderHandler.CreateOrder)
	authed.GET("/orders/user", orderHandler.ListMyOrders)
	authed.PATCH("/orders/user/:id/cancel", orderHandler.CancelMyOrder)

	// Admin only
	admin := authed.Group("", auth.RequireRoles(model.RoleAdmin))

	admin.POST("/products", productHandler.CreateProduct)
	admin.PUT("/products/:id", productHandler.UpdateProduct)
	admin.DELETE("/products/:id", productHandler.DeleteProduct)

	admin.GET("/orders", orderHandler.ListOrders)
	admin.GET("/orders/:id", orderHandler.GetOrder)
	admin.PATCH("/orders/:id/status", orderHandler.UpdateOrderStatus)
	admin.DELETE("/orders/:id", orderHandler.DeleteOrder)

	admin.GET("/users", userHandler.ListUsers)
	admin.PUT("/users/:id", userHandler.UpdateUser)
	admin.DELETE("/users/:id", userHandler.DeleteUser)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
