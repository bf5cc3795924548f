package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

// InitLogger 初始化全局 zap 日志器，level 取值 debug|info|warn|error，非法值按 info 处理
func InitLogger(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// Logger 获取全局日志器（未初始化时为 Nop）
func Logger() *zap.Logger {
	return logger
}

// SyncLogger 刷新缓冲
func SyncLogger() {
	_ = logger.Sync()
}
