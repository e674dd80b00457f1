package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr    string
	Port          string
	DatabasePath  string
	AdminPassword string
	LeadsPath     string
	GinMode       string
	CacheTTL      time.Duration
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
// ADMIN_PASSWORD 故意没有默认值：留空时登录接口返回配置错误。
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "blacktechlight.db"
	}

	leadsPath := strings.TrimSpace(os.Getenv("LEADS_PATH"))
	if leadsPath == "" {
		leadsPath = "leads.jsonl"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	cacheTTL := 5 * time.Minute
	if raw := strings.TrimSpace(os.Getenv("CACHE_TTL_SECONDS")); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			cacheTTL = time.Duration(secs) * time.Second
		}
	}

	return AppConfig{
		ListenAddr:    listenAddr,
		Port:          port,
		DatabasePath:  databasePath,
		AdminPassword: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")),
		LeadsPath:     leadsPath,
		GinMode:       ginMode,
		CacheTTL:      cacheTTL,
	}
}
