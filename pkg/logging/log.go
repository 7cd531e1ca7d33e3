//
// Copyright (c) 2025 [`safarimarks` contributors]
// (https://github.com/simtools/safarimarks/graphs/contributors).
//
// All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// This file is part of safarimarks.
//
// safarimarks is free software: you can redistribute it and/or modify it under
// the terms of the GNU Affero General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option) any
// later version.
//
// safarimarks is distributed in the hope that it will be useful, but WITHOUT ANY
// WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS FOR
// A PARTICULAR PURPOSE.  See the GNU Affero General Public License for more
// details.
//
// You should have received a copy of the GNU Affero General Public License along
// with safarimarks.  If not, see <http://www.gnu.org/licenses/>.

package logging

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	log "github.com/charmbracelet/log"
)

const EnvDebug = "SAFARIMARKS_DEBUG"

// Logging modes. Release keeps the CLI quiet (warnings and errors only),
// Dev turns on timestamps, callers and debug output.
const (
	Silent = -1 + iota
	Release
	Dev
)

var (
	LoggingMode = Release

	loggers = map[string]*log.Logger{}

	logLevelStyles = map[log.Level]lipgloss.Style{
		log.DebugLevel: lipgloss.NewStyle().
			SetString(strings.ToUpper(log.DebugLevel.String())).
			MaxWidth(4).
			Foreground(lipgloss.Color("63")),
		log.InfoLevel: lipgloss.NewStyle().
			SetString(strings.ToUpper(log.InfoLevel.String())).
			MaxWidth(4).
			Foreground(lipgloss.Color("36")),
		log.WarnLevel: lipgloss.NewStyle().
			SetString(strings.ToUpper(log.WarnLevel.String())).
			MaxWidth(4).
			Foreground(lipgloss.Color("178")),
		log.ErrorLevel: lipgloss.NewStyle().
			SetString(strings.ToUpper(log.ErrorLevel.String())).
			MaxWidth(4).
			Foreground(lipgloss.Color("204")),
		log.FatalLevel: lipgloss.NewStyle().
			SetString(strings.ToUpper(log.FatalLevel.String())).
			MaxWidth(4).
			Foreground(lipgloss.Color("134")),
	}
)

// GetLogger returns the logger for a module, creating it on first use.
// Logs always go to stderr; stdout is reserved for command output.
func GetLogger(module string) *log.Logger {
	if lg, ok := loggers[module]; ok {
		return lg
	}

	if LoggingMode == Silent {
		return log.New(io.Discard)
	}

	lg := log.New(os.Stderr)

	styles := log.DefaultStyles()
	styles.Levels = logLevelStyles
	lg.SetStyles(styles)

	if len(module) > 0 {
		lg.SetPrefix(fmt.Sprintf("[%.4s]", strings.ToUpper(module)))
	}

	if LoggingMode == Dev {
		lg.SetTimeFormat(time.TimeOnly)
		lg.SetReportTimestamp(true)
		lg.SetReportCaller(true)
		lg.SetLevel(log.DebugLevel)
	} else {
		lg.SetLevel(log.WarnLevel)
	}

	loggers[module] = lg

	return lg
}

// SetMode switches every live logger to the given mode.
func SetMode(mode int) {
	LoggingMode = mode

	for _, lg := range loggers {
		switch {
		case mode <= Silent:
			lg.SetOutput(io.Discard)
		case mode >= Dev:
			lg.SetOutput(os.Stderr)
			lg.SetTimeFormat(time.TimeOnly)
			lg.SetReportTimestamp(true)
			lg.SetReportCaller(true)
			lg.SetLevel(log.DebugLevel)
		default:
			lg.SetOutput(os.Stderr)
			lg.SetLevel(log.WarnLevel)
		}
	}
}

func init() {
	envDebug := os.Getenv(EnvDebug)
	if envDebug == "" {
		return
	}

	mode, err := strconv.Atoi(envDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s=%v: %v\n", EnvDebug, envDebug, err)
		return
	}

	if mode < Silent {
		mode = Silent
	}
	SetMode(mode)
}
