package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// ErrNoConfigFile 未找到配置文件,仅使用默认值与环境变量
var ErrNoConfigFile = errors.New("no config file in use")

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Log       LogConfig       `mapstructure:"log"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Inventory InventoryConfig `mapstructure:"inventory"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`      // debug, release, test
	BasePath        string        `mapstructure:"base_path"` // 文件路由前缀,默认为空
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type StorageConfig struct {
	Root          string `mapstructure:"root"`           // 存储根目录
	CreateRoot    bool   `mapstructure:"create_root"`    // 根目录不存在时自动创建
	FileMode      uint32 `mapstructure:"file_mode"`      // 新建文件权限
	MaxNameLength int    `mapstructure:"max_name_length"` // 文件名最大长度
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Output     string `mapstructure:"output"` // console, file, both
	Format     string `mapstructure:"format"` // text, json
	FilePath   string `mapstructure:"file_path"`
	Colorize   bool   `mapstructure:"colorize"`
	AddSource  bool   `mapstructure:"add_source"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type RateLimitConfig struct {
	QPS int `mapstructure:"qps"` // 每秒请求数限制,0 表示不限制
}

type InventoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Cron    string `mapstructure:"cron"` // 标准5字段cron表达式
}

// Address 返回监听地址
func (s ServerConfig) Address() string {
	return s.Host + ":" + s.Port
}

// LoadConfig 从 ./configs/config.yaml 或 ./config.yaml 加载配置,
// 环境变量 FILES_* 覆盖文件中的值(如 FILES_STORAGE_ROOT)
func LoadConfig() (*Config, error) {
	return load(viper.New(), "")
}

// LoadConfigFile 从指定文件加载配置
func LoadConfigFile(path string) (*Config, error) {
	return load(viper.New(), path)
}

// Watch 监听配置文件,文件变化后重新解析并回调 onChange
// 解析或校验失败时 cfg 为 nil,err 说明原因
func Watch(path string, onChange func(cfg *Config, err error)) error {
	v := viper.New()
	if _, err := load(v, path); err != nil {
		return err
	}
	if v.ConfigFileUsed() == "" {
		return ErrNoConfigFile
	}

	// viper 在回调前已重新读取文件
	v.OnConfigChange(func(fsnotify.Event) {
		onChange(decode(v))
	})
	v.WatchConfig()
	return nil
}

func load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("FILES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, err
		}
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_path", "")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("storage.root", "./storage/app")
	v.SetDefault("storage.create_root", true)
	v.SetDefault("storage.file_mode", 0644)
	v.SetDefault("storage.max_name_length", 255)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.output", "console")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file_path", "./logs/app.log")
	v.SetDefault("log.colorize", true)
	v.SetDefault("log.add_source", false)
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 30)

	v.SetDefault("ratelimit.qps", 0)

	v.SetDefault("inventory.enabled", false)
	v.SetDefault("inventory.cron", "0 * * * *")
}

// Validate 校验配置合法性
func (c *Config) Validate() error {
	if c.Storage.Root == "" {
		return fmt.Errorf("storage.root must not be empty")
	}
	if c.Server.Port == "" {
		return fmt.Errorf("server.port must not be empty")
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid server.mode: %s", c.Server.Mode)
	}
	if c.RateLimit.QPS < 0 {
		return fmt.Errorf("ratelimit.qps must not be negative")
	}
	if c.Storage.MaxNameLength <= 0 {
		return fmt.Errorf("storage.max_name_length must be positive")
	}
	if c.Server.BasePath != "" && !strings.HasPrefix(c.Server.BasePath, "/") {
		return fmt.Errorf("server.base_path must start with '/': %s", c.Server.BasePath)
	}
	return nil
}
