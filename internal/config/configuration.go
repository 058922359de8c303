package config

import (
	"github.com/rs/zerolog"
)

type LogFormat int

const (
	LogTextFormat LogFormat = iota
	LogGelfFormat
)

func (f LogFormat) String() string {
	if f == LogGelfFormat {
		return "gelf"
	}
	return "text"
}

type LoggingConfig struct {
	Format LogFormat     `koanf:"format"`
	Level  zerolog.Level `koanf:"level"`
}

type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
)

// RecordConfig describes one record the command seeds the store with.
type RecordConfig struct {
	Brand   string `koanf:"brand"   validate:"required"`
	Founder string `koanf:"founder"`
	Year    int    `koanf:"year"    validate:"gte=0"`
}

type Configuration struct {
	Log     LoggingConfig  `koanf:"log"`
	Output  OutputFormat   `koanf:"output"  validate:"oneof=table json"`
	Search  string         `koanf:"search"`
	Records []RecordConfig `koanf:"records" validate:"dive"`
}

func defaults() map[string]any {
	return map[string]any{
		"log.level":  "info",
		"log.format": "text",
		"output":     string(OutputTable),
		"search":     "Charvel",
		"records": []any{
			map[string]any{"brand": "Peavey", "founder": "Hartley Peavey", "year": 1965},
			map[string]any{"brand": "Gibson Guitar Corporation", "founder": "Orvillie Gibson", "year": 1902},
			map[string]any{"brand": "Charvel", "founder": "Wayne Charvel", "year": 1974},
			map[string]any{"brand": "Music Man", "founder": "Leo Fender", "year": 1974},
		},
	}
}
