package main

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"

	"socialmedia/internal/api"
	"socialmedia/internal/repository"
	"socialmedia/internal/service"

	"github.com/redis/go-redis/v9"
)

type Config struct {
	DBHost        string `envconfig:"DB_HOST" default:"localhost"`
	DBPort        string `envconfig:"DB_PORT" default:"5432"`
	DBUser        string `envconfig:"DB_USER" default:"postgres"`
	DBPassword    string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName        string `envconfig:"DB_NAME" default:"postgres"`
	RedisHost     string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort     string `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	Port          string `envconfig:"PORT" default:"8080"`
}

func main() {
	_ = godotenv.Load()
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	connStr := "host=" + cfg.DBHost +
		" port=" + cfg.DBPort +
		" user=" + cfg.DBUser +
		" password=" + cfg.DBPassword +
		" dbname=" + cfg.DBName +
		" sslmode=disable"
	repo, err := repository.NewPostgresRepo(connStr)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize database")
	}
	logrus.Info("Connected to PostgreSQL")

	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	cacheClient := initRedis(redisAddr, cfg.RedisPassword)
	redisCache := &RedisCache{client: cacheClient}
	logrus.Info("Connected to Redis")

	accounts := service.NewAccountService(repo)
	messages := service.NewMessageService(repo, redisCache)

	r := gin.Default()
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	handler := api.NewAPIHandler(accounts, messages)
	r.POST("/register", handler.Register)
	r.POST("/login", handler.Login)
	r.GET("/messages", handler.ListMessages)
	r.POST("/messages", handler.CreateMessage)
	r.GET("/messages/:message_id", handler.GetMessage)
	r.DELETE("/messages/:message_id", handler.DeleteMessage)
	r.PATCH("/messages/:message_id", handler.UpdateMessage)
	r.GET("/accounts/:account_id/messages", handler.ListAccountMessages)

	logrus.Infof("Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("Failed to run server")
	}
}

type RedisCache struct {
	client *redis.Client
}

func (rc *RedisCache) RecordMessage(id int, postedAt time.Time) error {
	ctx := context.Background()
	err := rc.client.Set(ctx, "msgid:"+strconv.Itoa(id), postedAt.Format(time.RFC3339), 0).Err()
	return err
}

func initRedis(addr string, password string) *redis.Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	}
	client := redis.NewClient(opts)
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		logrus.WithError(err).Fatal("Failed to connect to Redis")
	}
	return client
}
