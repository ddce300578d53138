package sql

import (
	"time"

	"consignment-server/internal/logger"

	"gorm.io/gorm"
)

type Options struct {
	LogLevel     string
	QueryTimeout time.Duration
}

func newGormConfig(opts Options) *gorm.Config {
	return &gorm.Config{
		Logger:         logger.NewGormLogger(opts.LogLevel),
		TranslateError: true,
	}
}
