package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"oilsaas/internal/handler"
)

// Register wires routes and middleware. CORS is fully open: the API serves a
// browser frontend on arbitrary origins.
func Register(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	blogHandler *handler.BlogHandler,
	contactHandler *handler.ContactHandler,
	pricingHandler *handler.PricingHandler,
	statusHandler *handler.StatusHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"*"},
		AllowHeaders: []string{"*"},
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"message": "Oil SaaS API running"})
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/test", statusHandler.Check)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	api.POST("/auth/signup", authHandler.SignUp)
	api.POST("/auth/signin", authHandler.SignIn)
	api.POST("/blog", blogHandler.Create)
	api.GET("/blog", blogHandler.List)
	api.POST("/contact", contactHandler.Submit)
	api.GET("/pricing", pricingHandler.List)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
