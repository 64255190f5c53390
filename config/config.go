package config

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all application configurations.
type Config struct {
	Server struct {
		Port            string        `mapstructure:"port"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	} `mapstructure:"server"`
	Database struct {
		Driver   string `mapstructure:"driver"` // mysql, mongodb or memory
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
		URI      string `mapstructure:"uri"` // mongodb only
		LogLevel string `mapstructure:"log_level"`
	} `mapstructure:"database"`
	Session struct {
		CookieName string        `mapstructure:"cookie_name"`
		GuardWait  time.Duration `mapstructure:"guard_wait"`
		Secure     bool          `mapstructure:"secure"`
	} `mapstructure:"session"`
	Auth       AuthConfig `mapstructure:"auth"`
	Cloudinary struct {
		BaseURL      string        `mapstructure:"base_url"`
		CloudName    string        `mapstructure:"cloud_name"`
		UploadPreset string        `mapstructure:"upload_preset"`
		Timeout      time.Duration `mapstructure:"timeout"`
	} `mapstructure:"cloudinary"`
	Kafka struct {
		Enabled  bool     `mapstructure:"enabled"`
		Brokers  []string `mapstructure:"brokers"`
		Topic    string   `mapstructure:"topic"`
		Encoding string   `mapstructure:"encoding"` // json or protobuf
	} `mapstructure:"kafka"`
	Products struct {
		PlaceholderURL string `mapstructure:"placeholder_url"`
	} `mapstructure:"products"`
}

// AuthConfig tunes sign-in throttling. It is the part of the config that is reloaded at runtime.
type AuthConfig struct {
	MaxFailedAttempts int           `mapstructure:"max_failed_attempts"`
	FailureWindow     time.Duration `mapstructure:"failure_window"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "3000")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "apparel_admin")
	v.SetDefault("database.uri", "mongodb://127.0.0.1:27017")
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("session.cookie_name", "admin_session")
	v.SetDefault("session.guard_wait", time.Duration(0))
	v.SetDefault("session.secure", false)
	v.SetDefault("auth.max_failed_attempts", 5)
	v.SetDefault("auth.failure_window", 15*time.Minute)
	v.SetDefault("cloudinary.base_url", "https://api.cloudinary.com/v1_1")
	v.SetDefault("cloudinary.cloud_name", "")
	v.SetDefault("cloudinary.upload_preset", "")
	v.SetDefault("cloudinary.timeout", 30*time.Second)
	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"127.0.0.1:9092"})
	v.SetDefault("kafka.topic", "apparel-admin-events")
	v.SetDefault("kafka.encoding", "json")
	v.SetDefault("products.placeholder_url", "https://via.placeholder.com/400")
}

// Loader reads the configuration and keeps watching it for changes.
type Loader struct {
	v   *viper.Viper
	mu  sync.RWMutex
	cfg *Config
}

// NewLoader prepares a loader. An empty path searches ./config/config.yml.
func NewLoader(path string) *Loader {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("./config") // Path to config files
		v.SetConfigName("config")   // Name of config file (without extension)
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix("APPAREL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return &Loader{v: v}
}

// LoadConfig reads configuration from the given file, ./config/config.yml when path is empty.
func LoadConfig(path string) (*Config, error) {
	return NewLoader(path).Load()
}

// Load reads and validates the configuration.
func (l *Loader) Load() (*Config, error) {
	if err := l.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file not found, using default values.")
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg, err := l.unmarshal()
	if err != nil {
		return nil, err
	}

	if cfg.Database.Driver == "mysql" && cfg.Database.Password == "" {
		log.Println("Warning: Database password is empty. Consider APPAREL_DATABASE_PASSWORD.")
	}

	l.mu.Lock()
	l.cfg = cfg
	l.mu.Unlock()
	return cfg, nil
}

func (l *Loader) unmarshal() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Current returns the last successfully loaded configuration.
func (l *Loader) Current() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cfg
}

// Watch reloads the file whenever it changes and hands every valid result to onChange.
// Invalid edits are logged and ignored.
func (l *Loader) Watch(onChange func(*Config)) {
	l.v.OnConfigChange(func(e fsnotify.Event) {
		log.Printf("Config file changed: %s", e.Name)
		cfg, err := l.unmarshal()
		if err != nil {
			log.Printf("Keeping previous config: %v", err)
			return
		}
		l.mu.Lock()
		l.cfg = cfg
		l.mu.Unlock()
		if onChange != nil {
			onChange(cfg)
		}
	})
	l.v.WatchConfig()
}

// Validate checks the values that cannot be defaulted sensibly.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "mysql", "mongodb", "memory":
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}
	switch c.Kafka.Encoding {
	case "json", "protobuf":
	default:
		return fmt.Errorf("unknown kafka encoding %q", c.Kafka.Encoding)
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka is enabled but no brokers are configured")
	}
	if c.Auth.MaxFailedAttempts < 0 {
		return fmt.Errorf("auth.max_failed_attempts must not be negative")
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("session.cookie_name must not be empty")
	}
	return nil
}
