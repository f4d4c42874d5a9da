package main

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/MindFiv/FivcGlue/caches"
	"github.com/MindFiv/FivcGlue/controllers"
	"github.com/MindFiv/FivcGlue/forms"
	"github.com/MindFiv/FivcGlue/service"
	"github.com/MindFiv/FivcGlue/site"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// CORS (Cross-Origin Resource Sharing)
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "http://localhost")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, UPDATE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "X-Requested-With, Content-Type, Origin, Authorization, Accept, Client-Security-Token, Accept-Encoding, x-access-token")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
		} else {
			c.Next()
		}
	}
}

func SlogMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rlog := logger.With(
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"client_ip", c.ClientIP(),
			"request_id", requestid.Get(c),
		)

		start := time.Now()
		rlog.Debug("request started")
		c.Next()
		duration := time.Since(start)
		rlog.Info("request completed", "status", c.Writer.Status(), "duration", duration)
	}
}

// Bearer token middleware attached to mutating cache endpoints. A no-op
// when no signing secret is configured
func TokenAuthMiddleware(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.Enabled() {
			c.Next()
			return
		}

		if err := auth.TokenValid(c.Request); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization"})
			return
		}
		c.Next()
	}
}

// registerBackends constructs every cache backend the environment
// configures and registers each with the component site under its name.
// The in-memory backend is always available
func registerBackends(componentSite *site.Site) error {
	if err := site.Register[caches.Cache](componentSite, "memory", caches.NewMemoryCache()); err != nil {
		return err
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" || os.Getenv("CACHE_BACKEND") == "redis" {
		redisDb := 0
		if raw := os.Getenv("REDIS_DB"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 0, 0)
			if err != nil {
				slog.Error("failed to parse REDIS_DB env variable", "error", err)
				os.Exit(1)
			}
			redisDb = int(parsed)
		}

		redisCache, err := caches.NewRedisCache(addr, os.Getenv("REDIS_PASS"), redisDb)
		if err != nil {
			return err
		}
		if err := site.Register[caches.Cache](componentSite, "redis", redisCache); err != nil {
			return err
		}
	}

	if uri := os.Getenv("MONGO_URI"); uri != "" {
		mongoCache, err := caches.NewMongoCache(uri, os.Getenv("MONGO_DB"))
		if err != nil {
			return err
		}
		if err := site.Register[caches.Cache](componentSite, "mongo", mongoCache); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	//Load the .env file if it exists
	if _, err := os.Stat(".env"); err == nil {
		err := godotenv.Load(".env")
		if err != nil {
			slog.Error("failed to load the env file")
			os.Exit(1)
		}
	}

	var logger *slog.Logger
	if os.Getenv("ENV") == "PRODUCTION" {
		gin.SetMode(gin.ReleaseMode)
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	slog.SetDefault(logger)

	//Start the default gin server
	r := gin.Default()

	//Custom form validator
	binding.Validator = new(forms.DefaultValidator)

	r.Use(CORSMiddleware())
	r.Use(requestid.New(requestid.WithCustomHeaderStrKey("X-Request-Id")))
	r.Use(SlogMiddleware(logger))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	componentSite := site.New()
	if err := registerBackends(componentSite); err != nil {
		slog.Error("failed to set up cache backends", "error", err)
		os.Exit(1)
	}

	backend := os.Getenv("CACHE_BACKEND")
	if backend == "" {
		backend = "memory"
	}

	cache, ok := site.Lookup[caches.Cache](componentSite, backend)
	if !ok {
		slog.Error("requested cache backend is not registered",
			"backend", backend, "available", site.Names[caches.Cache](componentSite))
		os.Exit(1)
	}

	cacheService := service.NewCacheService(backend, cache)
	authService := service.NewAuthService(os.Getenv("AUTH_SECRET"))

	health := controllers.NewHealthController(cacheService)
	r.GET("/health", health.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	entries := controllers.NewCacheController(cacheService)
	r.GET("/cache/:key", entries.Get)
	r.POST("/cache", TokenAuthMiddleware(authService), entries.Set)
	r.DELETE("/cache/:key", TokenAuthMiddleware(authService), entries.Delete)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	slog.Info("server starting",
		"port", port,
		"env", os.Getenv("ENV"),
		"backend", backend,
		"auth", authService.Enabled(),
		"instance_id", uuid.NewString(),
	)

	if err := r.Run(":" + port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
