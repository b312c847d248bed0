// Package log wires log15 to the console and an optional rotating
// log file from the TOML config.
package log

import (
	"os"

	log15 "github.com/inconshreveable/log15"
	"github.com/mattn/go-colorable"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/leon-do/restricted-rock-paper-scissors/types"
)

// SetLogLevel routes everything at or above the level to stdout.
func SetLogLevel(logLevel string) {
	log15.Root().SetHandler(consoleHandler(logLevel))
}

// SetFileLog configures console plus rotating file output.
func SetFileLog(cfg *types.Log) {
	if cfg == nil || cfg.LogFile == "" {
		level := "info"
		if cfg != nil && cfg.LogConsoleLevel != "" {
			level = cfg.LogConsoleLevel
		}
		SetLogLevel(level)
		return
	}
	log15.Root().SetHandler(log15.MultiHandler(
		consoleHandler(cfg.LogConsoleLevel),
		fileHandler(cfg),
	))
}

func consoleHandler(logLevel string) log15.Handler {
	return log15.LvlFilterHandler(
		getLevel(logLevel),
		log15.StreamHandler(colorable.NewColorableStdout(), log15.TerminalFormat()),
	)
}

func fileHandler(cfg *types.Log) log15.Handler {
	rotate := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    int(cfg.MaxFileSize),
		MaxBackups: int(cfg.MaxBackups),
		MaxAge:     int(cfg.MaxAge),
		LocalTime:  cfg.LocalTime,
		Compress:   cfg.Compress,
	}
	return log15.LvlFilterHandler(
		getLevel(cfg.Loglevel),
		log15.StreamHandler(rotate, log15.LogfmtFormat()),
	)
}

func getLevel(level string) log15.Lvl {
	lvl, err := log15.LvlFromString(level)
	if err != nil {
		// unrecognized level, default to info
		return log15.LvlInfo
	}
	return lvl
}

// init keeps early package logs quiet until config arrives.
func init() {
	if os.Getenv("RRPS_TRACE") != "" {
		SetLogLevel("debug")
		return
	}
	SetLogLevel("error")
}
