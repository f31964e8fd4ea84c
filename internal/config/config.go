// Load envs from .env
// Load YAML config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	//Storage
	DBPath string `yaml:"db_path" env:"CRAWLER_DB_PATH"`

	//Browser
	UserAgent string `yaml:"user_agent"`

	//Captcha recovery: how long to wait for the operator before aborting.
	//Zero or negative waits forever, matching the old terminal prompt.
	CaptchaResumeTimeoutSec int `yaml:"captcha_resume_timeout_sec"`

	//Optional salary gate; when false the --salary-min option is only
	//forwarded to the board's own query parameters.
	EnableSalaryFilter bool `yaml:"enable_salary_filter"`

	//Optional Telegram run summary
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`

	//Paths
	ScreenshotDir string `yaml:"screenshot_dir"`
}

func Load() *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	if path := os.Getenv("CRAWLER_DB_PATH"); path != "" {
		cfg.DBPath = path
	}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	//Set default values if not set
	if cfg.DBPath == "" {
		cfg.DBPath = "career_assistant.db"
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
			"AppleWebKit/537.36 (KHTML, like Gecko) " +
			"Chrome/124.0.0.0 Safari/537.36"
	}
	if cfg.CaptchaResumeTimeoutSec == 0 {
		cfg.CaptchaResumeTimeoutSec = 300
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "logs/screenshots"
	}

	return cfg
}

// CaptchaResumeTimeout returns the configured operator wait as a
// Duration; zero means wait forever.
func (c *Config) CaptchaResumeTimeout() time.Duration {
	if c.CaptchaResumeTimeoutSec < 0 {
		return 0
	}
	return time.Duration(c.CaptchaResumeTimeoutSec) * time.Second
}
