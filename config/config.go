package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging         LoggingConfig    `yaml:"logging"`
	Server          ServerConfig     `yaml:"server"`
	GeminiTextModel string           `yaml:"gemini_text_model"`
	GeminiProModel  string           `yaml:"gemini_pro_model"`
	GeminiImgModel  string           `yaml:"gemini_image_model"`
	TrendFeeds      []TrendFeed      `yaml:"trend_feeds"`
	TrendCache      TrendCacheConfig `yaml:"trend_cache"`
	Blogger         BloggerConfig    `yaml:"blogger"`

	// Secrets and endpoints come from the environment, not the yaml file.
	GeminiAPIKey      string `yaml:"-"`
	MongoURI          string `yaml:"-"`
	MongoDBName       string `yaml:"-"`
	RedisAddr         string `yaml:"-"`
	RedisPass         string `yaml:"-"`
	OAuthClientSecret string `yaml:"-"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Port      int    `yaml:"port"`
	StaticDir string `yaml:"static_dir"`
}

// TrendFeed is one RSS source whose recent headlines ground the trend prompt.
type TrendFeed struct {
	Name   string `yaml:"name"`
	RSSURL string `yaml:"rss_url"`
}

// TrendCacheConfig controls the optional redis-backed trend list cache.
// TTLSeconds <= 0 disables caching even when redis is configured.
type TrendCacheConfig struct {
	TTLSeconds int `yaml:"ttl_seconds"`
}

type BloggerConfig struct {
	BaseURL string `yaml:"base_url"`
	Scope   string `yaml:"scope"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}

	c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	c.MongoURI = os.Getenv("MONGO_URI")
	c.MongoDBName = os.Getenv("MONGO_DB_NAME")
	c.RedisAddr = os.Getenv("REDIS_ADDR")
	c.RedisPass = os.Getenv("REDIS_PASSWORD")
	c.OAuthClientSecret = os.Getenv("OAUTH_CLIENT_SECRET")

	if c.Blogger.BaseURL == "" {
		c.Blogger.BaseURL = "https://www.googleapis.com/blogger/v3"
	}
	if c.Blogger.Scope == "" {
		c.Blogger.Scope = "https://www.googleapis.com/auth/blogger"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}

	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
