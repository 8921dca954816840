package database

import (
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"scholar-duty-backend/src/config"
)

var AsynqClient *asynq.Client

// RedisClientOpt asynq connection options for cfg.
func RedisClientOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}
}

// InitAsynq initializes the asynq client only if Redis is available.
func InitAsynq(cfg config.RedisConfig) {
	if RedisClient == nil {
		zap.L().Warn("⚠️ Redis not available. Asynq client will not be initialized.")
		return
	}

	AsynqClient = asynq.NewClient(RedisClientOpt(cfg))
	zap.L().Info("✅ Asynq client initialized")
}
