package routes

import (
	"todoapi/internal/adapter/http/handler"
	"todoapi/internal/adapter/http/middleware"
	"todoapi/pkg/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type HandlersConfig struct {
	AuthHandler *handler.AuthHandler
	TodoHandler *handler.TodoHandler
	UserHandler *handler.UserHandler
}

func SetupRouter(handlers HandlersConfig, metrics *telemetry.AppMetrics, logger *otelzap.Logger) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(otelgin.Middleware("todoapi"))
	router.Use(middleware.LoggingMiddleware(logger))

	if metrics != nil {
		router.Use(middleware.MetricsMiddleware(metrics))
	}

	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	registerRoutes(router, handlers)

	return router
}

// SetupRouterForTests skips the telemetry middleware so handler suites
// run without a metrics registry or exporter.
func SetupRouterForTests(handlers HandlersConfig) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	registerRoutes(router, handlers)

	return router
}

func registerRoutes(router *gin.Engine, handlers HandlersConfig) {
	if handlers.AuthHandler != nil {
		auth := router.Group("/auth")
		{
			auth.POST("/signup", handlers.AuthHandler.Signup)
			auth.POST("/signin", handlers.AuthHandler.Signin)
		}
	}

	if handlers.TodoHandler != nil {
		todos := router.Group("/todos")
		todos.Use(middleware.GinJwtMiddleware())
		{
			todos.GET("", handlers.TodoHandler.GetAllTodos)
			todos.POST("", handlers.TodoHandler.CreateTodo)
			todos.GET("/:id", handlers.TodoHandler.GetTodoByID)
			todos.PATCH("/:id", handlers.TodoHandler.UpdateTodo)
			todos.DELETE("/:id", handlers.TodoHandler.DeleteTodo)
		}
	}

	if handlers.UserHandler != nil {
		users := router.Group("/users")
		users.Use(middleware.GinJwtMiddleware())
		{
			users.GET("/me", handlers.UserHandler.Me)
			users.PATCH("", handlers.UserHandler.UpdateUser)
		}
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
