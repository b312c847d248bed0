package types

import (
	"os"

	tml "github.com/BurntSushi/toml"
)

// Config is the TOML configuration of the engine and the CLI.
type Config struct {
	Title string `toml:"title"`
	Log   *Log   `toml:"log"`
	Store *Store `toml:"store"`
	Rules *Rules `toml:"rules"`
}

// Log mirrors the chain-style logging section: console level plus an
// optional rotating file sink.
type Log struct {
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	LogFile         string `toml:"logFile"`
	MaxFileSize     uint32 `toml:"maxFileSize"`
	MaxBackups      uint32 `toml:"maxBackups"`
	MaxAge          uint32 `toml:"maxAge"`
	LocalTime       bool   `toml:"localTime"`
	Compress        bool   `toml:"compress"`
}

// Store selects and locates the KV backend.
type Store struct {
	Driver  string `toml:"driver"`
	DbPath  string `toml:"dbPath"`
	DbCache int32  `toml:"dbCache"`
}

// Rules carries the economic parameters of the game.
type Rules struct {
	// RevealWindow is the number of ordering ticks between opening a
	// match and its reveal deadline.
	RevealWindow int64 `toml:"revealWindow"`
	// BuyInFee is collected by the coin collaborator on BuyIn.
	BuyInFee int64 `toml:"buyInFee"`
	// InitialStake and InitialTokens are granted per BuyIn.
	InitialStake  int64 `toml:"initialStake"`
	InitialTokens int64 `toml:"initialTokens"`
	// PayoutRate converts one stake unit to external coin, parsed as a
	// decimal string so fractional rates survive the TOML round trip.
	PayoutRate string `toml:"payoutRate"`
}

// default rule values, the classic set: three stars, four of each card.
const (
	DefaultRevealWindow  = int64(100)
	DefaultBuyInFee      = int64(100)
	DefaultInitialStake  = int64(3)
	DefaultInitialTokens = int64(4)
	DefaultPayoutRate    = "10"
)

// DefaultConfig returns a config with every rule filled in.
func DefaultConfig() *Config {
	cfg := &Config{Title: RRPSX}
	cfg.fill()
	return cfg
}

// InitCfg parses a TOML file and fills defaults for missing sections.
func InitCfg(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return InitCfgString(string(data))
}

// InitCfgString parses TOML config text.
func InitCfgString(cfgstring string) (*Config, error) {
	var cfg Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, err
	}
	cfg.fill()
	return &cfg, nil
}

func (cfg *Config) fill() {
	if cfg.Log == nil {
		cfg.Log = &Log{Loglevel: "info", LogConsoleLevel: "info"}
	}
	if cfg.Store == nil {
		cfg.Store = &Store{Driver: "memdb"}
	}
	if cfg.Rules == nil {
		cfg.Rules = &Rules{}
	}
	r := cfg.Rules
	if r.RevealWindow <= 0 {
		r.RevealWindow = DefaultRevealWindow
	}
	if r.BuyInFee <= 0 {
		r.BuyInFee = DefaultBuyInFee
	}
	if r.InitialStake <= 0 {
		r.InitialStake = DefaultInitialStake
	}
	if r.InitialTokens <= 0 {
		r.InitialTokens = DefaultInitialTokens
	}
	if r.PayoutRate == "" {
		r.PayoutRate = DefaultPayoutRate
	}
}
