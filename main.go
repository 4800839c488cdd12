package main

import (
	"flag"
	"log"
	"strings"

	"atolye/config"
	"atolye/database"
	"atolye/middleware"
	"atolye/router"
)

// @title Atölye Çanta API
// @version 1.0
// @description El yapımı çanta mağazası API — ürün kataloğu, sipariş, menü ve sayfa içerik yönetimi
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "external config file path (optional)")
	flag.StringVar(&configFile, "c", "", "external config file path (shorthand)")
	flag.StringVar(&port, "port", "", "listen port, e.g. 8080 or :8080")
	flag.StringVar(&port, "p", "", "listen port (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&showVersion, "v", false, "print version (shorthand)")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("Atölye Çanta v1.0.0")
		return
	}

	// Built-in defaults, optionally overridden by an external file.
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("Yapılandırma yüklenemedi: %v", err)
	}

	// Command line port wins over config.
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("Komut satırı portu: %s", port)
	}

	config.PrintConfig()

	if err := database.Init(cfg); err != nil {
		log.Fatalf("Veritabanı başlatılamadı: %v", err)
	}

	middleware.InitJWT(cfg)

	r := router.SetupRouter(cfg)

	log.Printf("==========================================")
	log.Printf("  👜 Atölye Çanta başlatıldı")
	log.Printf("==========================================")
	log.Printf("  Yönetim:  http://localhost%s/", cfg.Server.Port)
	log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  API:      http://localhost%s/api/v1/", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("Sunucu başlatılamadı: %v", err)
	}
}
