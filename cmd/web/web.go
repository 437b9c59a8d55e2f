package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/feedbook/feedbook-be/app"
	"github.com/feedbook/feedbook-be/config"
	"github.com/feedbook/feedbook-be/db"
	"github.com/feedbook/feedbook-be/routes"
	"github.com/feedbook/feedbook-be/services"
	"github.com/feedbook/feedbook-be/store"
	"github.com/feedbook/feedbook-be/store/sqlkv"
)

const DefaultConfigPath = "./feedbook.yaml"

func main() {
	// .env is optional; real env always wins
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal("error loading config", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config", err)
	}

	blobStore, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatal("error opening blob store", err)
	}
	defer closeStore()

	database, err := db.Open(blobStore)
	if err != nil {
		log.Fatal("error hydrating collections from store", err)
	}

	notifier := app.NewNotifier()
	banner := &app.Banner{}
	notifier.Subscribe(func(change app.Change) {
		log.Printf("collection %v changed\n", change)
	})

	authService := services.NewAuthService(database, notifier)
	contentService := services.NewContentService(database, notifier)

	gin.SetMode(os.Getenv("GIN_MODE"))
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	if len(cfg.Server.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.Server.CORSOrigins,
			AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders:  []string{"Origin", "Content-Type"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		}))
	}

	routes.AddUserRoutes(&r.RouterGroup, authService, banner)
	routes.AddPostRoutes(&r.RouterGroup, contentService, authService, banner)
	routes.AddBannerRoutes(&r.RouterGroup, banner)

	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatal("error when attempting to run web server", err)
	}
}

func openStore(cfg *config.FileConfig) (store.Store, func(), error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		return store.NewMemory(), func() {}, nil
	case config.BackendDir:
		dir, err := store.NewDir(cfg.Store.Dir)
		if err != nil {
			return nil, nil, err
		}
		return dir, func() {}, nil
	case config.BackendMySQL:
		kv, err := sqlkv.Open(cfg.Store.DSN)
		if err != nil {
			return nil, nil, err
		}
		return kv, func() {
			if err := kv.Close(); err != nil {
				log.Println("error closing blob store", err)
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
