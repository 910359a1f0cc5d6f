package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-gigradar/internal/config"
	"go-gigradar/internal/feed"
	"go-gigradar/internal/notify"
	"go-gigradar/internal/poller"
	"go-gigradar/internal/scheduler"
	"go-gigradar/internal/store"
)

func main() {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Feeds: %d, keywords: %v", len(cfg.Feeds), cfg.Keywords)

	//open store
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("❌ Failed to open store: %v", err)
	}
	defer st.Close()

	//init telegram notifier
	notifier, err := notify.NewTelegramNotifier(cfg.TelegramToken)
	if err != nil {
		log.Fatalf("❌ Failed to init Telegram notifier: %v", err)
	}
	log.Println("🤖 Telegram notifier initialized.")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	//wire the poll pipeline and start the schedule
	p := poller.New(st, feed.NewFetcher(), notifier, cfg.Feeds, cfg.Keywords, cfg.OwnerChatID)
	sched := scheduler.New(p, cfg.PollIntervalMinutes)
	if err := sched.Start(ctx); err != nil {
		log.Fatalf("❌ Failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	log.Println("🚀 gigradar running. Ctrl+C to stop.")

	//block until interrupted
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Println("🏁 Shutting down.")
}
