package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bitbucket.org/mmdatafocus/console_backend/config"
	"bitbucket.org/mmdatafocus/console_backend/dispatch"
	"bitbucket.org/mmdatafocus/console_backend/handlers"
	"bitbucket.org/mmdatafocus/console_backend/middlewares"
	"bitbucket.org/mmdatafocus/console_backend/upstream"
)

const defaultPort = "8080"

func main() {
	logger := config.GetLogger()

	config.ConnectRedis()

	client := upstream.NewClient(config.GetUpstreamConfig())
	defer client.Close()
	env := &handlers.Env{
		Client:     client,
		Dispatcher: dispatch.NewDispatcher(client, dispatch.LogNotifier{}),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(middlewares.CorrelationMiddleware())
	router.Use(middlewares.AuthMiddleware())
	router.Use(middlewares.PageScopeMiddleware())
	router.Use(middlewares.LoaderMiddleware(client))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.RegisterRoutes(router, env)
	router.POST("/documents/upload", uploadHandler(env))

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("shutdown: %v", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	conf := cors.DefaultConfig()
	origins := strings.TrimSpace(os.Getenv("CORS_ALLOW_ORIGINS"))
	if origins == "" {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = strings.Split(origins, ",")
	}
	conf.AllowHeaders = append(conf.AllowHeaders, "Authorization", "X-Correlation-Id", "X-Page-Id", "X-User-Id", "X-User-Name")
	return cors.New(conf)
}
