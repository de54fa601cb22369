package providers

import (
	"fmt"
	"github.com/spf13/viper"
	"iconpicker/internal/structures"
	"path/filepath"
	"strings"
	"time"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.SetDefault("plugin.extensionId", "icon-picker-fields")
	viper.SetDefault("cms.baseUrl", "https://site-api.datocms.com")
	viper.SetDefault("cms.requestTimeout", 30*time.Second)
	viper.SetDefault("cms.jobPollInterval", time.Second)
	viper.SetDefault("cms.jobPollAttempts", 30)
	viper.SetDefault("assets.driver", "dato")
	viper.SetDefault("parameters.driver", "dato")
	viper.SetDefault("catalog.pageSize", 36)
	viper.SetDefault("migration.reloadDelay", 2*time.Second)

	viper.BindEnv("logger.level", "ICONPICKER_LOG_LEVEL")
	viper.BindEnv("plugin.id", "ICONPICKER_PLUGIN_ID")
	viper.BindEnv("plugin.canEditSchema", "ICONPICKER_CAN_EDIT_SCHEMA")
	viper.BindEnv("cms.apiToken", "ICONPICKER_CMA_TOKEN")
	viper.BindEnv("cms.environment", "ICONPICKER_CMA_ENVIRONMENT")
	viper.BindEnv("assets.driver", "ICONPICKER_ASSETS_DRIVER")
	viper.BindEnv("assets.s3.accessKey", "ICONPICKER_S3_ACCESS_KEY")
	viper.BindEnv("assets.s3.secretKey", "ICONPICKER_S3_SECRET_KEY")
	viper.BindEnv("parameters.driver", "ICONPICKER_PARAMETERS_DRIVER")
	viper.BindEnv("cache.enabled", "ICONPICKER_CACHE_ENABLED")
	viper.BindEnv("cache.size", "ICONPICKER_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "IconFontPicker"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
