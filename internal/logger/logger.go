package logger

import (
	"go.uber.org/zap"
)

// NewNamed builds a zap logger for the given environment, named after the
// service. Development gets console output with stacktraces, everything else
// gets production JSON.
func NewNamed(appEnv, service string) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if appEnv == "development" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return log.Named(service), nil
}
