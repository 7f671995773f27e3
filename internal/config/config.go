package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

// Public holds settings that are safe to log or expose.
type Public struct {
	Pg                 Pg            `yaml:"pg"`
	HttpAddr           string        `yaml:"http_addr"`
	JwtTTL             time.Duration `yaml:"jwt_ttl"`
	AllowedOrigins     []string      `yaml:"allowed_origins"`
	SecureCookies      bool          `yaml:"secure_cookies"`
	LogLevel           string        `yaml:"log_level"`
	LogJSON            bool          `yaml:"log_json"`
	MaxPhotosPerUpload int           `yaml:"max_photos_per_upload"`
	MaxUploadBytes     int64         `yaml:"max_upload_bytes"`
	AllowedPhotoMimes  []string      `yaml:"allowed_photo_mimes"`
	S3                 S3            `yaml:"s3"`
}

type Pg struct {
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	User   string `yaml:"user"`
	Dbname string `yaml:"dbname"`
}

type S3 struct {
	Region   string `yaml:"region"`
	Bucket   string `yaml:"bucket"`
	Endpoint string `yaml:"endpoint"` // empty for AWS, set for S3-compatible storage
}

// Private holds secrets. Loaded from a separate file so the public part can
// be committed; none of these may ever be compiled-in literals.
type Private struct {
	JwtKey      string `yaml:"jwt_key"`
	PgPassword  string `yaml:"pg_password"`
	S3AccessKey string `yaml:"s3_access_key"`
	S3SecretKey string `yaml:"s3_secret_key"`
}

// New builds a config from already-loaded parts. Tests and tools use it to
// avoid touching the filesystem.
func New(public Public, private Private) *Config {
	cfg := &Config{public, private}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) JwtKey() string {
	return c.private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return c.Public.JwtTTL
}

func (c *Config) PgPassword() string {
	return c.private.PgPassword
}

func (c *Config) S3AccessKey() string {
	return c.private.S3AccessKey
}

func (c *Config) S3SecretKey() string {
	return c.private.S3SecretKey
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := New(public, private)
	if cfg.private.JwtKey == "" {
		panic("jwt_key must be set in private.yaml")
	}
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Public.HttpAddr == "" {
		c.Public.HttpAddr = ":8080"
	}
	if c.Public.JwtTTL == 0 {
		c.Public.JwtTTL = 7 * 24 * time.Hour
	}
	if c.Public.MaxPhotosPerUpload == 0 {
		c.Public.MaxPhotosPerUpload = 100
	}
	if c.Public.MaxUploadBytes == 0 {
		c.Public.MaxUploadBytes = 20 << 20
	}
	if len(c.Public.AllowedPhotoMimes) == 0 {
		c.Public.AllowedPhotoMimes = []string{"image/jpeg", "image/png", "image/gif"}
	}
}
