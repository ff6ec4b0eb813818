package main

import (
	"embed"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/strimtechdev/academy/config"
	"github.com/strimtechdev/academy/enroll"
	"github.com/strimtechdev/academy/handlers"
	"github.com/strimtechdev/academy/logging"
	"github.com/strimtechdev/academy/middleware"
	"github.com/strimtechdev/academy/notify"
)

//go:embed templates/*.html
var templateFS embed.FS

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment")
	}
	cfg := config.Load()

	if err := logging.Init(cfg.Env == "release", cfg.LogLevel); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Logger.Sync()

	if cfg.Env == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	notifier, err := notify.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID)
	if err != nil {
		log.Printf("⚠️ Telegram notifications disabled: %v", err)
	}

	h := handlers.New(cfg, enroll.NewClient(cfg.EnrollAPIURL), notifier)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.SetTrustedProxies(cfg.TrustedProxies)
	r.Use(middleware.SetupCORS(cfg))

	subFS, err := fs.Sub(templateFS, "templates")
	if err != nil {
		log.Fatalf("❌ Failed to open embedded templates: %v", err)
	}
	tmpl := template.Must(template.New("").ParseFS(subFS, "*.html"))
	r.SetHTMLTemplate(tmpl)
	log.Println("✅ Templates loaded from embed.FS")

	public := r.Group("/")
	{
		public.GET("/", h.Home)
		public.GET("/courses", h.Courses)
		public.GET("/register", h.RegisterForm)
	}

	submit := r.Group("/")
	submit.Use(middleware.RateLimit(cfg.EnrollRateLimit, cfg.EnrollRateWindow))
	{
		submit.POST("/register", h.Register)
		submit.POST("/api/enroll", h.Enroll)
	}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	log.Printf("🚀 Server listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatalf("❌ Server error: %v", err)
	}
}
