// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	TelegramToken string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	OwnerChatID   int64  `yaml:"owner_chat_id" env:"OWNER_CHAT_ID"`
	//Feed sources and scoring inputs
	Feeds    []string `yaml:"feeds"`
	Keywords []string `yaml:"keywords"`
	//Polling
	PollIntervalMinutes int `yaml:"poll_interval_minutes"`
	//Paths
	DBPath string `yaml:"db_path"`
	//Email (Mailjet)
	MailjetPublicKey  string `yaml:"mailjet_public_key" env:"MAILJET_PUBLIC_KEY"`
	MailjetPrivateKey string `yaml:"mailjet_private_key" env:"MAILJET_PRIVATE_KEY"`
	MailjetSender     string `yaml:"mailjet_sender" env:"MAILJET_SENDER"`
	//Outreach identity
	RequesterName string   `yaml:"requester_name"`
	Skills        []string `yaml:"skills"`
	PortfolioURL  string   `yaml:"portfolio_url"`
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
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("OWNER_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid OWNER_CHAT_ID: %v", err)
		}
		cfg.OwnerChatID = id
	}

	if pub := os.Getenv("MAILJET_PUBLIC_KEY"); pub != "" {
		cfg.MailjetPublicKey = pub
	}

	if priv := os.Getenv("MAILJET_PRIVATE_KEY"); priv != "" {
		cfg.MailjetPrivateKey = priv
	}

	if sender := os.Getenv("MAILJET_SENDER"); sender != "" {
		cfg.MailjetSender = sender
	}

	//Set default values if not set
	if cfg.DBPath == "" {
		cfg.DBPath = "data/gigradar.db"
	}

	if cfg.PollIntervalMinutes <= 0 {
		cfg.PollIntervalMinutes = 30
	}

	if cfg.RequesterName == "" {
		cfg.RequesterName = "a frontend developer"
	}

	//Validate required fields
	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is required")
	}

	if cfg.OwnerChatID == 0 {
		log.Fatal("OWNER_CHAT_ID is required")
	}

	if len(cfg.Feeds) == 0 {
		log.Fatal("at least one feed URL is required")
	}

	return cfg
}
