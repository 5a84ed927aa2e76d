package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-ini/ini"
	"github.com/spf13/viper"
)

// All known configuration keys.
var allKeys = []string{
	KeyServerPort, KeyServerDebug, KeyJWTSecret,
	KeyDBType, KeyDBHost, KeyDBPort, KeyDBUser, KeyDBPassword, KeyDBName,
	KeyRedisAddr, KeyRedisPassword, KeyRedisDB,
	KeyCORSOrigins,
}

const (
	KeyServerPort  = "System.Port"
	KeyServerDebug = "System.Debug"
	KeyJWTSecret   = "System.JwtSecret"

	KeyDBType     = "Database.Type"
	KeyDBHost     = "Database.Host"
	KeyDBPort     = "Database.Port"
	KeyDBUser     = "Database.User"
	KeyDBPassword = "Database.Password"
	KeyDBName     = "Database.Name"

	KeyRedisAddr     = "Redis.Addr"
	KeyRedisPassword = "Redis.Password"
	KeyRedisDB       = "Redis.DB"

	KeyCORSOrigins = "CORS.AllowedOrigins"
)

type Config struct {
	vp *viper.Viper
}

// NewConfig loads data/conf.ini as defaults (creating it if missing) and then
// applies BLOG_*-prefixed environment variable overrides.
func NewConfig() (*Config, error) {
	vp := viper.New()
	filePath := "data/conf.ini"

	iniCfg, err := ini.Load(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("note: %s not found, creating a default configuration file", filePath)
			if err := createDefaultConfigFile(filePath); err != nil {
				log.Printf("warning: failed to create default config file: %v, falling back to env vars and internal defaults", err)
			} else {
				log.Printf("created default configuration file: %s", filePath)
				iniCfg, err = ini.Load(filePath)
				if err != nil {
					log.Printf("warning: failed to reload configuration file: %v", err)
				}
			}
		} else {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", filePath, err)
		}
	}

	if iniCfg != nil {
		for _, section := range iniCfg.Sections() {
			for _, key := range section.Keys() {
				viperKey := fmt.Sprintf("%s.%s", section.Name(), key.Name())
				if section.Name() == "DEFAULT" {
					viperKey = key.Name()
				}
				vp.Set(viperKey, key.Value())
			}
		}
		log.Println("loaded defaults from data/conf.ini")
	}

	// Environment variables win over file values, e.g. BLOG_DATABASE_HOST.
	envReplacer := strings.NewReplacer(".", "_")
	envPrefix := "BLOG"

	for _, key := range allKeys {
		envVarName := fmt.Sprintf("%s_%s", envPrefix, envReplacer.Replace(strings.ToUpper(key)))
		if value, found := os.LookupEnv(envVarName); found {
			vp.Set(key, value)
			log.Printf("environment variable %s overrides %q", envVarName, key)
		}
	}

	return &Config{vp: vp}, nil
}

func (c *Config) GetString(key string) string {
	return c.vp.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.vp.GetInt(key)
}

func (c *Config) GetBool(key string) bool {
	return c.vp.GetBool(key)
}

// createDefaultConfigFile writes a commented starter configuration.
func createDefaultConfigFile(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	defaultConfig := `[System]
Port = 8080
Debug = false
# Required in production; tokens cannot be issued without it.
JwtSecret =

[Database]
Type = sqlite
Name = blog.db

# Optional. When Addr is empty the process falls back to an in-memory cache.
[Redis]
Addr =
Password =
DB = 0

[CORS]
AllowedOrigins = *
`

	if err := os.WriteFile(filePath, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}
	return nil
}
