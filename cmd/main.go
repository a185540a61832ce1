package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"taskboard/config" // its init loads .env before anything reads the environment
	"taskboard/database"
	authhandlers "taskboard/internal/handlers/auth"
	taskhandlers "taskboard/internal/handlers/tasks"
	"taskboard/internal/middleware"
	"taskboard/internal/stores"
	"taskboard/internal/token"
	"taskboard/internal/user"
)

// Application owns the wired dependencies and the HTTP server lifecycle.
type Application struct {
	Config *config.Config
	DB     *gorm.DB
	Router *gin.Engine
	Server *http.Server
}

func main() {
	cfg := config.Load()

	db, err := database.ConnectDB()
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	if err := database.ProcessMigrations(db); err != nil {
		log.Fatalf("Database migration error: %v", err)
	}

	app := &Application{Config: cfg, DB: db}
	app.setupRoutes()
	app.run()
}

func (app *Application) setupRoutes() {
	if !app.Config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	userStore := &stores.GormUserStore{DB: app.DB}
	refreshTokenStore := &stores.GormRefreshTokenStore{DB: app.DB}
	taskStore := &stores.GormTaskStore{DB: app.DB}
	hasher := user.BcryptHasher{}
	tokenService := &token.JWTService{
		AccessSecret:  app.Config.AccessSecret,
		RefreshSecret: app.Config.RefreshSecret,
	}

	auth := authhandlers.NewAuthHandler(userStore, refreshTokenStore, hasher, tokenService)
	tasks := taskhandlers.NewTaskHandler(taskStore)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.RecoveryWithLog(app.Config.IsDevelopment()))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Liveness probe.
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "taskboard api is running")
	})

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)
		authGroup.POST("/refresh", auth.RefreshToken)
		authGroup.POST("/logout", auth.Logout)
	}

	protected := api.Group("/")
	protected.Use(middleware.JWTAuthMiddleware(tokenService))
	{
		protected.GET("/auth/me", auth.GetCurrentUser)

		taskGroup := protected.Group("/tasks")
		{
			taskGroup.GET("", tasks.ListTasks)
			taskGroup.POST("", tasks.CreateTask)
			taskGroup.GET("/:id", tasks.GetTask)
			taskGroup.PUT("/:id", tasks.UpdateTask)
			taskGroup.PATCH("/:id", tasks.UpdateTask)
			taskGroup.DELETE("/:id", tasks.DeleteTask)
		}
	}

	app.Router = r
}

// run serves until SIGINT/SIGTERM, then drains in-flight requests and
// closes the connection pool before returning.
func (app *Application) run() {
	app.Server = &http.Server{
		Addr:    ":" + app.Config.Port,
		Handler: app.Router,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		app.gracefulStop(ctx)
	}()

	log.Printf("Server listening on :%s", app.Config.Port)
	if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}

	// ListenAndServe returns as soon as the listener closes; the drain is
	// still running in the signal goroutine, so wait for it to finish.
	<-done
	log.Println("Server stopped")
}

// gracefulStop blocks until in-flight requests have drained (or ctx
// expires), then releases the connection pool.
func (app *Application) gracefulStop(ctx context.Context) {
	if err := app.Server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}
