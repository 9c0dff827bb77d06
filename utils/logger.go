package utils

import "go.uber.org/zap"

var Logger = zap.NewNop()

func InitLogger() {
	config := zap.NewProductionConfig()
	logger, err := config.Build()
	if err != nil {
		panic("failed to build logger")
	}
	Logger = logger
}

// LogError records a handler-boundary error before the response is written.
func LogError(route string, err error) {
	Logger.Error("request failed", zap.String("route", route), zap.Error(err))
}
