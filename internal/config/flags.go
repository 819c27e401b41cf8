package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database DSN
//	-c/-config json file path with configs
//	-max-open-conns maximum open database connections
//	-max-idle-conns maximum idle database connections
//	-connect-timeout startup connection timeout (e.g., "5s")
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var jsonConfigPath string
	var maxOpenConns int
	var maxIdleConns int
	var connectTimeout time.Duration

	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.IntVar(&maxOpenConns, "max-open-conns", 0, "Maximum open database connections")
	flag.IntVar(&maxIdleConns, "max-idle-conns", 0, "Maximum idle database connections")
	flag.DurationVar(&connectTimeout, "connect-timeout", 0, "Startup connection timeout (e.g., 5s)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN:            databaseDSN,
				MaxOpenConns:   maxOpenConns,
				MaxIdleConns:   maxIdleConns,
				ConnectTimeout: connectTimeout,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}
