package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mkovalev/gain-planner/internal/config"
)

func main() {
	fmt.Println("🔍 Checking configuration...")

	if err := godotenv.Load(); err != nil {
		fmt.Printf("⚠️  .env file not found: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("❌ Configuration is invalid:\n%v\n", err)
		os.Exit(1)
	}

	fmt.Println("✅ Configuration is valid!")
	fmt.Printf("📋 Details:\n")
	fmt.Printf("  - DB Host: %s\n", cfg.DB.Host)
	fmt.Printf("  - DB Port: %s\n", cfg.DB.Port)
	fmt.Printf("  - DB User: %s\n", cfg.DB.User)
	fmt.Printf("  - DB Name: %s\n", cfg.DB.DBName)
	fmt.Printf("  - Redis Enabled: %v\n", cfg.Redis.Enabled)
	if cfg.Redis.Enabled {
		fmt.Printf("  - Redis Addr: %s:%s\n", cfg.Redis.Host, cfg.Redis.Port)
	}
	fmt.Printf("  - Server Port: %s\n", cfg.Server.Port)
	fmt.Printf("  - Snapshot TTL: %dh\n", cfg.Engine.SnapshotTTLHours)
	fmt.Printf("  - Log Level: %v\n", cfg.Logger.Level)
	fmt.Printf("  - Log Output: %s\n", cfg.Logger.OutputPath)
	fmt.Printf("  - Log Format: %s\n", cfg.Logger.Format)
}
