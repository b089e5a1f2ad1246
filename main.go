package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"innstay/internal/cache"
	"innstay/internal/clients/amadeus"
	intconfig "innstay/internal/config"
	"innstay/internal/db"
	router "innstay/internal/http"
	"innstay/internal/repositories"
	"innstay/internal/services"
	"innstay/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	env := intconfig.LoadEnv()
	if err := utils.InitLogger(env.LogLevel); err != nil {
		panic(err)
	}
	defer func() { _ = utils.Log.Sync() }()

	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	var (
		handler http.Handler
		cleanup func()
		err     error
	)
	switch env.AppMode {
	case intconfig.ModeSearch:
		handler, cleanup = buildSearch(env)
	default:
		handler, cleanup, err = buildDatabase(env)
	}
	if err != nil {
		utils.Log.Fatalw("startup failed", "mode", env.AppMode, "error", err)
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		utils.Log.Infow("server listening", "addr", env.AppAddr, "mode", env.AppMode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Log.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	utils.Log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		utils.Log.Errorw("server shutdown failed", "error", err)
		return
	}

	utils.Log.Info("server stopped")
}

func buildDatabase(env intconfig.Env) (http.Handler, func(), error) {
	if env.UsesDefaultJWTSecret() {
		if gin.Mode() == gin.ReleaseMode {
			return nil, nil, errors.New("JWT_SECRET must be set in release mode")
		}
		utils.Log.Warn("JWT_SECRET not set, signing tokens with the development secret")
	}

	conn, err := intconfig.ConnectDB(env.DB)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = conn.Close() }

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.EnsureSchema(ctx, conn); err != nil {
		cleanup()
		return nil, nil, err
	}

	users := repositories.UserRepository{DB: conn}
	hotels := repositories.HotelRepository{DB: conn}
	bookings := repositories.BookingRepository{DB: conn}
	reviews := repositories.ReviewRepository{DB: conn}

	auth := &services.AuthService{
		Users:  users,
		Tokens: services.NewTokenService(env.JWTSecret, env.JWTTTL),
	}

	created, err := auth.SeedAdmin(ctx, env.AdminName, env.AdminEmail, env.AdminPassword)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if created {
		utils.Log.Infow("admin account created", "email", utils.NormalizeEmail(env.AdminEmail))
	}

	deps := router.Deps{
		Auth:     auth,
		Hotels:   services.HotelService{Hotels: hotels},
		Users:    services.UserService{Users: users, Hasher: auth},
		Bookings: services.BookingService{Bookings: bookings},
		Reviews:  services.ReviewService{Reviews: reviews},
		Uploads:  services.UploadService{Dir: env.UploadDir, BaseURL: env.PublicBaseURL},
		Docs:     services.DocsService{Bookings: bookings, Hotels: hotels, Users: users},
	}
	return router.NewRouter(env, deps), cleanup, nil
}

func buildSearch(env intconfig.Env) (http.Handler, func()) {
	client := amadeus.NewClient(env.Amadeus.BaseURL, env.Amadeus.APIKey, env.Amadeus.APISecret, env.Amadeus.Timeout)
	if !client.Configured() {
		utils.Log.Warn("hotel search API credentials missing, serving fallback hotels only")
	}

	cleanup := func() {}
	var store cache.Cache = cache.NewLRU(env.SearchCacheSize, env.SearchCacheTTL)
	if env.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     env.Redis.Addr,
			Password: env.Redis.Password,
			DB:       env.Redis.DB,
		})
		store = cache.NewRedis(rdb, env.SearchCacheTTL)
		cleanup = func() { _ = rdb.Close() }
		utils.Log.Infow("search cache backed by redis", "addr", env.Redis.Addr)
	}

	svc := &services.SearchService{
		Offers:   client,
		Cache:    store,
		Fallback: services.FallbackHotels,
	}
	return router.NewSearchRouter(env, svc), cleanup
}
