package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces every environment key read by the loader, e.g.
// GROUPER_TELEGRAM_API_ID -> telegram.api_id.
const envPrefix = "GROUPER_"

// Config is the immutable run configuration. It is constructed once in main
// and passed into the resolver and workflow constructors; nothing mutates it
// afterwards.
type Config struct {
	Telegram TelegramConfig `koanf:"telegram"`
	Group    GroupConfig    `koanf:"group"`
	Source   SourceConfig   `koanf:"source"`
	DM       DMConfig       `koanf:"dm"`
	Pacing   PacingConfig   `koanf:"pacing"`
	Journal  JournalConfig  `koanf:"journal"`
	Ops      OpsConfig      `koanf:"ops"`
	Schedule ScheduleConfig `koanf:"schedule"`
}

// TelegramConfig identifies the API application and the session store.
type TelegramConfig struct {
	APIID   int    `koanf:"api_id"`
	APIHash string `koanf:"api_hash"`
	// Phone pre-fills the first-run login prompt; leave empty to be asked.
	Phone string `koanf:"phone"`
	// SessionPath is the SQLite session file used by default.
	SessionPath string `koanf:"session_path"`
	// SessionRedisURL switches session storage to Redis when set.
	SessionRedisURL string `koanf:"session_redis_url"`
}

// GroupConfig names the target group and an optional pre-minted invite link.
type GroupConfig struct {
	Ref        string `koanf:"ref"`
	InviteLink string `koanf:"invite_link"`
}

// SourceConfig locates the roster spreadsheet.
type SourceConfig struct {
	ExcelURL      string `koanf:"excel_url"`
	ExcelPath     string `koanf:"excel_path"`
	PhoneColumn   string `koanf:"phone_column"`
	DefaultRegion string `koanf:"default_region"`
}

// DMConfig holds the fallback message template. Placeholders: {first},
// {group}, {link}.
type DMConfig struct {
	Template string `koanf:"template"`
}

// PacingConfig carries the four pacing parameters.
type PacingConfig struct {
	BetweenAdds time.Duration `koanf:"between_adds"`
	BetweenDMs  time.Duration `koanf:"between_dms"`
	BatchEvery  int           `koanf:"batch_every"`
	BatchSleep  time.Duration `koanf:"batch_sleep"`
}

// JournalConfig selects the outcome sink: CSV file by default, PostgreSQL
// when a DSN is set. An AMQP URL adds a publish tee beside the primary sink.
type JournalConfig struct {
	Path         string `koanf:"path"`
	PostgresDSN  string `koanf:"postgres_dsn"`
	AMQPURL      string `koanf:"amqp_url"`
	AMQPExchange string `koanf:"amqp_exchange"`
}

// OpsConfig configures the health/metrics listener used in scheduled mode.
type OpsConfig struct {
	Addr string `koanf:"addr"`
}

// ScheduleConfig enables the once-a-day mode.
type ScheduleConfig struct {
	Daily bool   `koanf:"daily"`
	At    string `koanf:"at"`
}

// Default returns the compiled-in configuration. Load layers file and
// environment sources over it, so absent keys keep these values.
func Default() Config {
	return Config{
		Telegram: TelegramConfig{
			SessionPath: "grouper.session",
		},
		Source: SourceConfig{
			PhoneColumn: "phone",
		},
		DM: DMConfig{
			Template: "Hi {first}, I tried to add you to {group} but Telegram privacy or permissions blocked it. " +
				"You can join directly using this link: {link}",
		},
		Pacing: PacingConfig{
			BetweenAdds: 2 * time.Second,
			BetweenDMs:  2 * time.Second,
			BatchEvery:  25,
			BatchSleep:  30 * time.Second,
		},
		Journal: JournalConfig{
			Path:         "add_members_log.csv",
			AMQPExchange: "grouper.outcomes",
		},
		Ops: OpsConfig{
			Addr: ":2112",
		},
		Schedule: ScheduleConfig{
			At: "03:00",
		},
	}
}

// Load builds the configuration from, in order of increasing precedence:
// compiled defaults, the env-style file at envFile (skipped when absent),
// the YAML file at yamlPath (an error when named but missing), and finally
// GROUPER_-prefixed process environment variables.
func Load(yamlPath, envFile string) (Config, error) {
	k := koanf.New(".")

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := k.Load(file.Provider(envFile), dotenv.ParserEnv(envPrefix, ".", envKey)); err != nil {
				return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
			}
		}
	}

	if yamlPath != "" {
		if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", yamlPath, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// envKey maps GROUPER_SECTION_SOME_KEY onto section.some_key. Only the first
// underscore separates the section, so multi-word keys survive.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.Replace(s, "_", ".", 1)
}

// Validate rejects configurations that cannot possibly produce a successful
// run. These surface before any platform work begins.
func (c Config) Validate() error {
	if c.Telegram.APIID == 0 || c.Telegram.APIHash == "" {
		return fmt.Errorf("telegram api_id and api_hash are required")
	}
	if c.Group.Ref == "" {
		return fmt.Errorf("group ref is required")
	}
	if c.Source.ExcelURL == "" && c.Source.ExcelPath == "" {
		return fmt.Errorf("one of source excel_url or excel_path is required")
	}
	if c.Schedule.Daily {
		if _, err := time.Parse("15:04", c.Schedule.At); err != nil {
			return fmt.Errorf("schedule at %q: want HH:MM", c.Schedule.At)
		}
	}
	return nil
}
