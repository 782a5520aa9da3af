package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/nrednav/cuid2"
	"uk.co.dudmesh.apiary/internal/archivestore"
	"uk.co.dudmesh.apiary/internal/boot"
	"uk.co.dudmesh.apiary/internal/handlers"
	"uk.co.dudmesh.apiary/internal/service/aaa"
	"uk.co.dudmesh.apiary/internal/service/mgmt"
)

type Store interface {
	mgmt.Store
	Close() error
}

type AccessGate interface {
	handlers.AccessGate
	mgmt.AccessGate
}

type MgmtService interface {
	handlers.MgmtService
}

type config struct {
	boot.Config
	store         Store
	accessService AccessGate
	mgmtService   MgmtService
}

func newConfig(bootConfig *boot.Config) *config {
	store, err := archivestore.New(bootConfig)
	if err != nil {
		log.Fatalf("creating archive store: %+v", err)
	}

	accessService := aaa.New(bootConfig)
	mgmtService := mgmt.New(store, accessService)

	return &config{*bootConfig, store, accessService, mgmtService}
}

func main() {
	bootConfig, err := boot.Load()
	if err != nil {
		log.Fatalf("boot: %+v", err)
	}

	config := newConfig(bootConfig)
	defer config.store.Close()

	server := echo.New()
	server.Use(middleware.BodyLimit("100M"))
	server.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return cuid2.Generate()
		},
	}))
	server.Use(echoprometheus.NewMiddleware("apiary"))
	server.Use(middleware.Recover())

	server.Logger.SetLevel(log.INFO)

	headers := []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization}
	server.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     strings.Split(bootConfig.Server.Origins, ","),
		AllowHeaders:     headers,
		AllowCredentials: true,
	}))

	server.POST("/api/mgmt", handlers.Mgmt(config.accessService, config.mgmtService), handlers.Session(bootConfig))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(":" + bootConfig.Server.MetricsPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	go func() {
		if err := server.Start(":" + bootConfig.Server.Port); err != nil && err != http.ErrServerClosed {
			server.Logger.Fatal("shutting down the server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		server.Logger.Fatal(err)
	}
}
