//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package config holds globally available configuration variables,
// set from defaults, a TOML file, or command line options, in that
// order of increasing precedence.
package config

import (
	"log"

	"github.com/BurntSushi/toml"
)

// globally available config values.
var (
	// ConfFile is the path to the config file, relative to the
	// working directory unless overridden before Setup().
	ConfFile = "./config.toml"

	// LogLevel is the go-logging level (0=CRITICAL .. 5=DEBUG).
	LogLevel = 4

	// Settings is the configuration read from ConfFile, overlaid on
	// the defaults set in this package's init()s.
	Settings conf

	initialized = false
)

type conf struct {
	Search searchConfiguration
}

// Setup reads ConfFile once, falling back to defaults if it can't be
// found or parsed. Safe to call more than once; later calls are a
// no-op.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("config: file not found, using defaults (", err, ")")
	}
	initialized = true
}
