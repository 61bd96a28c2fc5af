package config

import (
	"os"
	"strconv"
)

type Config struct {
	HTTPAddr   string
	BoardSize  int
	OwnedLimit int
	LedgerPath string
	MintSeed   int64

	// advisor weights
	WCapture  int
	WExposure int
	WRank     int
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Load() Config {
	return Config{
		HTTPAddr:   getenvStr("HTTP_ADDR", ":8080"),
		BoardSize:  getenvInt("BOARD_SIZE", 4),
		OwnedLimit: getenvInt("OWNED_LIMIT", 600),
		LedgerPath: getenvStr("LEDGER_PATH", "eterra.db"),
		MintSeed:   int64(getenvInt("MINT_SEED", 0)),

		WCapture:  getenvInt("W_CAPTURE", 100),
		WExposure: getenvInt("W_EXPOSURE", 10),
		WRank:     getenvInt("W_RANK", 1),
	}
}
