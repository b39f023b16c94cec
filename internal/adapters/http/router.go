package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/smartretail/internal/adapters/config"
	"github.com/rafaelleal24/smartretail/internal/adapters/http/controllers"
	"github.com/rafaelleal24/smartretail/internal/adapters/http/middleware"
)

const (
	loginRateLimit    = 10
	purchaseRateLimit = 30
	rateLimitWindow   = time.Minute
)

// Metrics is what the router needs from the metrics adapter: a request observer
// and the handler that exposes what was recorded.
type Metrics interface {
	middleware.RequestObserver
	Handler() http.Handler
}

type Router struct {
	healthController  *controllers.HealthController
	sessionController *controllers.SessionController
	productController *controllers.ProductController
	rateLimiter       middleware.RateLimiter
	metrics           Metrics
}

func NewRouter(
	healthController *controllers.HealthController,
	sessionController *controllers.SessionController,
	productController *controllers.ProductController,
	rateLimiter middleware.RateLimiter,
	metrics Metrics,
) *Router {
	return &Router{
		healthController:  healthController,
		sessionController: sessionController,
		productController: productController,
		rateLimiter:       rateLimiter,
		metrics:           metrics,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	rl := r.rateLimiter

	router.Use(middleware.RequestID(), middleware.Metrics(r.metrics))
	router.GET("/metrics", gin.WrapH(r.metrics.Handler()))

	apiGroup := router.Group("/api")
	v1Group := apiGroup.Group("/v1")
	{
		v1Group.Use(middleware.LogRequest())
		v1Group.GET("/health", r.healthController.Health)

		session := v1Group.Group("/session")
		session.GET("", r.sessionController.Current)
		session.POST("/login", middleware.RateLimit(rl, loginRateLimit, rateLimitWindow), r.sessionController.Login)
		session.POST("/signup/start", r.sessionController.BeginSignup)
		session.POST("/signup/cancel", r.sessionController.CancelSignup)
		session.POST("/signup", r.sessionController.Signup)
		session.POST("/logout", r.sessionController.Logout)

		v1Group.GET("/products", r.productController.GetAll)
		v1Group.GET("/products/:id", r.productController.GetByID)
		v1Group.POST("/products/:id/purchase", middleware.RateLimit(rl, purchaseRateLimit, rateLimitWindow), r.productController.Purchase)
	}
}

func (r *Router) Engine() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	r.SetupRoutes(engine)
	return engine
}

func (r *Router) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", config.BindInterface, config.Port),
		Handler:           r.Engine(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
