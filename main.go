package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"harmonize/counters"
	"harmonize/handlers"
	"harmonize/middleware"
	"harmonize/storage"
	"harmonize/store"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if key := os.Getenv("HARMONIZE_JWT_KEY"); key != "" {
		middleware.JwtKey = []byte(key)
	}

	dsn := getenv("HARMONIZE_DSN",
		"root:123456@tcp(127.0.0.1:3306)/harmonize?charset=utf8mb4&parseTime=True&loc=Local")
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	st := store.NewGorm(db)
	if err := st.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	images, err := storage.NewMinio(storage.MinioConfig{
		Endpoint:  getenv("HARMONIZE_MINIO_ENDPOINT", "127.0.0.1:9000"),
		AccessKey: getenv("HARMONIZE_MINIO_ACCESS_KEY", "admin"),
		SecretKey: getenv("HARMONIZE_MINIO_SECRET_KEY", "password123"),
		Bucket:    getenv("HARMONIZE_MINIO_BUCKET", "harmonize"),
	})
	if err != nil {
		slog.Error("minio connection failed", "error", err)
		os.Exit(1)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     getenv("HARMONIZE_REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("HARMONIZE_REDIS_PASSWORD"),
		DB:       0,
	})
	likes := counters.NewLikeCounter(rdb)

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		for range ticker.C {
			likes.Sync(context.Background(), st)
		}
	}()

	app := &handlers.App{
		Store:  st,
		Images: images,
		Likes:  likes,
	}

	addr := getenv("HARMONIZE_ADDR", ":8080")
	if err := app.Router().Run(addr); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
