/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package logging wires the process-wide structured logger: zap, fronted by
// go-logr/logr (the interface controller-runtime and client-go expect) via
// go-logr/zapr, installed as the global logger through ctrl.SetLogger.
package logging

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	ctrl "sigs.k8s.io/controller-runtime"
)

// Setup builds a zap-backed logr.Logger at the given verbosity (0 = info,
// each increment enables one more level of -v debug output) and installs it
// as controller-runtime's global logger.
func Setup(verbosity int) logr.Logger {
	level := zapcore.InfoLevel
	if verbosity > 0 {
		level = zapcore.Level(-verbosity)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	zapConfig := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	zapLog, err := zapConfig.Build()
	if err != nil {
		panic(err)
	}

	logger := zapr.NewLogger(zapLog)
	ctrl.SetLogger(logger)
	return logger
}
