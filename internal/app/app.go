package app

import (
	"go-garment-store/internal/backend"
	"go-garment-store/internal/cart"
	"go-garment-store/internal/checkout"
	"go-garment-store/internal/config"
	"go-garment-store/internal/messaging/kafka/producer"
	"go-garment-store/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	// 1. Setup Infrastructure. Redis dan Kafka boleh dimatikan lewat
	// env kosong — dev single-node jalan dengan store in-memory dan
	// publisher no-op.
	var store storage.Store = storage.NewMemory()
	var counter cart.Counter = cart.NopCounter{}
	if cfg.RedisAddr != "" {
		redisClient, err := connectRedisWithRetry(cfg.RedisAddr, 5)
		if err != nil {
			return err
		}
		store = storage.NewRedis(redisClient)
		counter = cart.NewRedisCounter(redisClient)
	}

	var publisher checkout.EventPublisher = checkout.NopPublisher{}
	if cfg.KafkaBroker != "" {
		kafkaWriter, err := connectKafkaWithRetry(cfg.KafkaBroker, 5)
		if err != nil {
			return err
		}
		publisher = producer.NewPublisher(kafkaWriter, logger)
	}

	// 2. Setup Backend Client
	backendClient := backend.NewClient(cfg.BackendBaseURL, logger)

	// 3. Register Modules & Routes
	registerModules(router, deps{
		backend:   backendClient,
		store:     store,
		counter:   counter,
		publisher: publisher,
		logger:    logger,
	})

	return nil
}
