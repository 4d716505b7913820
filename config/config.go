package config

import (
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

// SysConfig holds basic system level settings
type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
}

type WebConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

// CatalogConfig configures the remote product source.
// URL may point at a spreadsheet-backed script endpoint; when it is
// unreachable the built-in default catalog is used.
type CatalogConfig struct {
	URL     string `yaml:"url" json:"url"`
	Timeout int    `yaml:"timeout" json:"timeout"` // seconds
	Refresh string `yaml:"refresh" json:"refresh"` // cron spec for periodic refresh
}

type CartConfig struct {
	StorageKey string `yaml:"storage_key" json:"storage_key"`
}

// MessagingConfig configures outbound order dispatch.
type MessagingConfig struct {
	Phone  string `yaml:"phone" json:"phone"`   // WhatsApp destination number
	Origin string `yaml:"origin" json:"origin"` // origin identifier appended to every order message
}

type LoggerConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System    SysConfig       `yaml:"system" json:"system"`
	Web       WebConfig       `yaml:"web" json:"web"`
	Catalog   CatalogConfig   `yaml:"catalog" json:"catalog"`
	Cart      CartConfig      `yaml:"cart" json:"cart"`
	Messaging MessagingConfig `yaml:"messaging" json:"messaging"`
	Logger    LoggerConfig    `yaml:"logger" json:"logger"`
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "storefront",
		Location: "America/Argentina/Buenos_Aires",
		Workdir:  "/var/storefront",
	},
	Web: WebConfig{
		Host: "0.0.0.0",
		Port: 1816,
	},
	Catalog: CatalogConfig{
		URL:     "",
		Timeout: 10,
		Refresh: "@every 1h",
	},
	Cart: CartConfig{
		StorageKey: "chatard_cart",
	},
	Messaging: MessagingConfig{
		Phone:  "542645776592",
		Origin: "https://industriachatard.com.ar",
	},
	Logger: LoggerConfig{
		Mode:       "development",
		FileEnable: false,
		Filename:   "/var/storefront/storefront.log",
	},
}

func setEnvValue(name string, val *string) {
	if v, ok := os.LookupEnv(name); ok {
		*val = v
	}
}

func setEnvIntValue(name string, val *int) {
	if v, ok := os.LookupEnv(name); ok {
		*val = cast.ToInt(v)
	}
}

func setEnvBoolValue(name string, val *bool) {
	if v, ok := os.LookupEnv(name); ok {
		*val = cast.ToBool(v)
	}
}

// LoadConfig reads configuration from the given yaml file, falling back
// to defaults when the file is absent. Environment variables override
// file values.
func LoadConfig(cfile string) *AppConfig {
	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	setEnvValue("STOREFRONT_SYSTEM_WORKDIR", &cfg.System.Workdir)
	setEnvValue("STOREFRONT_SYSTEM_LOCATION", &cfg.System.Location)
	setEnvValue("STOREFRONT_WEB_HOST", &cfg.Web.Host)
	setEnvIntValue("STOREFRONT_WEB_PORT", &cfg.Web.Port)
	setEnvValue("STOREFRONT_CATALOG_URL", &cfg.Catalog.URL)
	setEnvIntValue("STOREFRONT_CATALOG_TIMEOUT", &cfg.Catalog.Timeout)
	setEnvValue("STOREFRONT_CATALOG_REFRESH", &cfg.Catalog.Refresh)
	setEnvValue("STOREFRONT_CART_STORAGE_KEY", &cfg.Cart.StorageKey)
	setEnvValue("STOREFRONT_MESSAGING_PHONE", &cfg.Messaging.Phone)
	setEnvValue("STOREFRONT_MESSAGING_ORIGIN", &cfg.Messaging.Origin)
	setEnvValue("STOREFRONT_LOGGER_MODE", &cfg.Logger.Mode)
	setEnvBoolValue("STOREFRONT_LOGGER_FILE_ENABLE", &cfg.Logger.FileEnable)
	setEnvValue("STOREFRONT_LOGGER_FILENAME", &cfg.Logger.Filename)

	return cfg
}
