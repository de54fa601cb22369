package structures

import (
	"net/http"
	"time"
)

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type Route struct {
	Url     string
	Handler http.Handler
}

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
	TTL     int  `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type PluginConfig struct {
	ID            string `yaml:"id" validate:"required"`
	ExtensionID   string `yaml:"extensionId" validate:"required"`
	CanEditSchema bool   `yaml:"canEditSchema"`
}

// CmsConfig points at the Content Management API of the hosting CMS.
type CmsConfig struct {
	BaseURL         string        `yaml:"baseUrl" validate:"required|fullUrl"`
	APIToken        string        `yaml:"apiToken"`
	Environment     string        `yaml:"environment"`
	RequestTimeout  time.Duration `yaml:"requestTimeout"`
	JobPollInterval time.Duration `yaml:"jobPollInterval"`
	JobPollAttempts int           `yaml:"jobPollAttempts"`
}

type S3Config struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	UseSSL    bool   `yaml:"useSsl"`
}

type AssetsConfig struct {
	Driver         string   `yaml:"driver" validate:"required|in:dato,s3"`
	DeleteReplaced bool     `yaml:"deleteReplaced"`
	S3             S3Config `yaml:"s3"`
}

type ParametersConfig struct {
	Driver   string `yaml:"driver" validate:"required|in:dato,file"`
	FilePath string `yaml:"filePath"`
	Compress bool   `yaml:"compress"`
}

type CatalogConfig struct {
	PageSize int `yaml:"pageSize" validate:"required|min:1"`
}

type MigrationConfig struct {
	ReloadDelay time.Duration `yaml:"reloadDelay"`
}

type Config struct {
	AppName    string
	Debug      bool
	Path       string
	WebServer  Server           `yaml:"webServer"`
	Logger     LoggerConfig     `yaml:"logger"`
	Cache      CacheConfig      `yaml:"cache"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Plugin     PluginConfig     `yaml:"plugin"`
	Cms        CmsConfig        `yaml:"cms"`
	Assets     AssetsConfig     `yaml:"assets"`
	Parameters ParametersConfig `yaml:"parameters"`
	Catalog    CatalogConfig    `yaml:"catalog"`
	Migration  MigrationConfig  `yaml:"migration"`
}
