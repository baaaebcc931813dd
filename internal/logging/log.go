//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package logging sets up the shared go-logging logger used across
// the engine.
package logging

import (
	"os"
	"sync"

	"github.com/op/go-logging"

	"github.com/frankkopp/floydgo/internal/config"
)

var (
	once sync.Once
	log  *logging.Logger
)

// GetLog returns the shared engine logger, creating it (and wiring
// its backend/level from config.LogLevel) on first use.
func GetLog() *logging.Logger {
	once.Do(func() {
		log = logging.MustGetLogger("floydgo")
		backend := logging.NewLogBackend(os.Stderr, "", 0)
		format := logging.MustStringFormatter(
			`%{time:15:04:05.000} %{shortfile} %{level:7s}: %{message}`,
		)
		formatted := logging.NewBackendFormatter(backend, format)
		leveled := logging.AddModuleLevel(formatted)
		leveled.SetLevel(logging.Level(config.LogLevel), "")
		logging.SetBackend(leveled)
	})
	return log
}
