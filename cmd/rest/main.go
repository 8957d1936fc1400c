package main

import (
	"context"
	"log"

	"carepal-be/internal/bootstrap"
	"carepal-be/internal/config"
	"carepal-be/internal/server"
	"carepal-be/internal/tracer"
	"carepal-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.NatsPublisher.Close()

	go func() {
		log.Println("Background: starting telemetry consumer...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background consumer error: %v", err)
		}
	}()

	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
