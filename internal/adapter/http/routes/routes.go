package routes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "foampro/docs" // generated by swag init
	"foampro/internal/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Run wires the application, starts the crew auto-sync loop and serves HTTP
// until SIGINT or SIGTERM.
func Run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg)
	if err != nil {
		return fmt.Errorf("build application: %w", err)
	}
	defer a.localState.Close()

	router := newRouter(a)

	go func() {
		if err := a.crewUseCase.RunAutoSync(ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("auto sync stopped", "component", "routes", "err", err)
		}
	}()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: router}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "component", "routes", "port", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down", "component", "routes")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newRouter registers middlewares, swagger and every /v1 route.
func newRouter(a *app) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, a.estimate, a.sync)
	addPaymentRoutes(v1, a.payment)
	addCrewRoutes(v1, a.crew)
	addCustomerRoutes(v1, a.customer)
	addWarehouseRoutes(v1, a.warehouse)
	addAccountRoutes(v1, a.account)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		slog.Error("recovered from panic", "component", "routes", "panic", recovered, "path", c.Request.URL.Path)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
