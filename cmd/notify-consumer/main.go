package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	natspkg "taskman/infrastructure/nats"
	"taskman/pkg/config"
	"taskman/pkg/logger"
)

// notify-consumer subscribe notification subject แล้วพิมพ์ message ที่ได้รับ
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	logConfig := logger.Config{
		Level:  cfg.Log.Level,
		Format: "text",
		Output: "stdout",
	}
	if err := logger.Init(logConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	client, err := natspkg.NewClient(natspkg.ClientConfig{
		URL: cfg.NATS.URL,
	})
	if err != nil {
		logger.Error("Failed to connect to NATS", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	subscriber := natspkg.NewSubscriber(client.Conn())
	subscriber.OnMessage(func(message string) {
		fmt.Printf("Received: %s\n", message)
	})

	if err := subscriber.Start(); err != nil {
		logger.Error("Failed to start subscriber", "error", err)
		os.Exit(1)
	}

	logger.Info("Notification consumer started", "url", cfg.NATS.URL)

	// รอ signal เพื่อปิด
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logger.Info("Shutting down consumer...")
	if err := subscriber.Stop(); err != nil {
		logger.Warn("Failed to stop subscriber", "error", err)
	}
}
