package main

import (
	"log"

	"github.com/blacktechlight/internal/cache"
	"github.com/blacktechlight/internal/config"
	"github.com/blacktechlight/internal/db"
	"github.com/blacktechlight/internal/handler"
	"github.com/blacktechlight/internal/router"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库并填充初始数据
	gdb, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	if err := db.Seed(gdb); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	if cfg.AdminPassword == "" {
		log.Println("warning: ADMIN_PASSWORD is not set, admin login is disabled")
	}

	pc := cache.NewPageCache(cfg.CacheTTL)
	api := handler.NewAPI(gdb, pc, cfg.AdminPassword, cfg.LeadsPath)

	// 设置并运行 Gin 服务器
	r := router.Setup(api)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
