package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ebfe/scard"
	"github.com/rs/zerolog"
)

// maxRecordNumber is the last record a directory EF can hold.
const maxRecordNumber = 30

// Config drives one exploration of a card.
type Config struct {
	Reader     string // empty selects the first reader
	Protocol   scard.Protocol
	MaxRecords int
	AIDs       [][]byte // when set, the payment directory is skipped
	LogLevel   zerolog.Level
}

func defaultConfig() Config {
	return Config{
		Protocol:   scard.ProtocolT0 | scard.ProtocolT1,
		MaxRecords: maxRecordNumber,
		LogLevel:   zerolog.InfoLevel,
	}
}

type fileConfig struct {
	Reader     string   `toml:"reader"`
	Protocol   string   `toml:"protocol"`
	MaxRecords int      `toml:"max_records"`
	AIDs       []string `toml:"aids"`
	LogLevel   string   `toml:"log_level"`
}

// loadConfig reads path over the defaults. An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load apdutrace config: %w", err)
	}

	if meta.IsDefined("reader") {
		cfg.Reader = strings.TrimSpace(raw.Reader)
	}

	if meta.IsDefined("protocol") {
		p, err := parseProtocol(raw.Protocol)
		if err != nil {
			return Config{}, err
		}
		cfg.Protocol = p
	}

	if meta.IsDefined("max_records") {
		if raw.MaxRecords < 1 || raw.MaxRecords > maxRecordNumber {
			return Config{}, fmt.Errorf("max_records %d out of range [1, %d]", raw.MaxRecords, maxRecordNumber)
		}
		cfg.MaxRecords = raw.MaxRecords
	}

	if meta.IsDefined("aids") {
		aids, err := parseAIDs(raw.AIDs)
		if err != nil {
			return Config{}, err
		}
		cfg.AIDs = aids
	}

	if meta.IsDefined("log_level") {
		level, err := zerolog.ParseLevel(strings.TrimSpace(raw.LogLevel))
		if err != nil {
			return Config{}, fmt.Errorf("parse log_level: %w", err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

func parseProtocol(s string) (scard.Protocol, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "t0", "t=0":
		return scard.ProtocolT0, nil
	case "t1", "t=1":
		return scard.ProtocolT1, nil
	case "", "any":
		return scard.ProtocolT0 | scard.ProtocolT1, nil
	default:
		return 0, fmt.Errorf("unknown protocol %q, want t0, t1 or any", s)
	}
}

func parseAIDs(in []string) ([][]byte, error) {
	out := make([][]byte, 0, len(in))
	for _, s := range in {
		s = strings.Join(strings.Fields(s), "")
		if s == "" {
			continue
		}
		aid, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("parse aid %q: %w", s, err)
		}
		// ISO/IEC 7816-4 application identifiers are 5 to 16 bytes.
		if len(aid) < 5 || len(aid) > 16 {
			return nil, fmt.Errorf("aid %X: length %d not in [5, 16]", aid, len(aid))
		}
		out = append(out, aid)
	}
	return out, nil
}
