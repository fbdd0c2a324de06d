package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/amazing-thailand/photo-service/asset"
	"github.com/amazing-thailand/photo-service/config"
	"github.com/amazing-thailand/photo-service/controller"
	"github.com/amazing-thailand/photo-service/infra"
	"github.com/amazing-thailand/photo-service/repository"
	routes "github.com/amazing-thailand/photo-service/route"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()
	infraClients := infra.InitInfra(cfg)
	defer infraClients.Logger.Shutdown(context.Background())

	if err := infraClients.Minio.EnsureBucket(context.Background()); err != nil {
		panic(err)
	}

	repo := repository.InitRepository(infraClients)

	assets := asset.NewManager(infraClients.Minio, infraClients.Produce.AssetService, infraClients.Logger, asset.ManagerConfig{
		RootFolder:     cfg.EnvConfig.Upload.RootFolder,
		UploadTimeout:  cfg.EnvConfig.Minio.UploadTimeout,
		DestroyTimeout: cfg.EnvConfig.Minio.DestroyTimeout,
	})

	ctrl := controller.NewController(cfg, infraClients, repo, assets)

	router := routes.SetupRouter(ctrl)
	if err := router.Run(":" + cfg.EnvConfig.Port); err != nil {
		panic(err)
	}
}
