package api

import (
	intconfig "innstay/internal/config"
	"innstay/internal/domain"
	h "innstay/internal/http/handlers"
	"innstay/internal/http/middleware"
	"innstay/internal/services"
	"innstay/internal/utils"

	"github.com/gin-gonic/gin"
)

// Authenticator is the auth surface used by handlers and middleware.
type Authenticator interface {
	h.AuthAPI
	middleware.Authenticator
}

// Deps carries the services the database variant routes to.
type Deps struct {
	Auth     Authenticator
	Hotels   h.HotelAPI
	Users    services.UserService
	Bookings services.BookingService
	Reviews  services.ReviewService
	Uploads  h.ImageSaver
	Docs     h.ConfirmationRenderer
}

func newEngine(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Log.Warnw("failed to set trusted proxies", "error", err)
	}
	r.NoRoute(h.NotFound)
	return r
}

// NewRouter builds the MySQL-backed API.
func NewRouter(env intconfig.Env, d Deps) *gin.Engine {
	r := newEngine(env)
	r.MaxMultipartMemory = h.MaxUploadMemory
	r.Static(services.PublicUploadPath, env.UploadDir)

	requireUser := middleware.RequireAuth(d.Auth)
	requireAdmin := middleware.RequireAuth(d.Auth, domain.RoleAdmin)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)

		// Auth
		authH := h.AuthHandler{Auth: d.Auth}
		auth := api.Group("/auth")
		auth.POST("/register", authH.Register)
		auth.POST("/login", authH.Login)
		auth.GET("/me", requireUser, authH.Me)

		// Storefront
		public := h.PublicHotels{Hotels: d.Hotels}
		api.GET("/hotels", public.List)
		api.GET("/hotels/:id", public.Get)

		// Admin
		admin := api.Group("/admin", requireAdmin)
		admin.POST("/uploads", h.UploadHandler{Uploads: d.Uploads}.Upload)

		h.NewHotelAdmin(d.Hotels).Mount(admin.Group("/hotels"))
		h.NewUserAdmin(d.Users).Mount(admin.Group("/users"))
		h.NewReviewAdmin(d.Reviews).Mount(admin.Group("/reviews"))

		bookings := admin.Group("/bookings")
		h.NewBookingAdmin(d.Bookings).Mount(bookings)
		bookings.GET("/:id/confirmation", h.BookingDocs{Docs: d.Docs}.Confirmation)
	}

	return r
}

// NewSearchRouter builds the API variant that proxies hotel search upstream.
func NewSearchRouter(env intconfig.Env, search h.SearchAPI) *gin.Engine {
	r := newEngine(env)
	s := h.SearchHandler{Search: search}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/hotels", s.ListHotels)
		api.GET("/hotels/:id", s.HotelByID)
		api.GET("/search", s.SearchHotels)
		api.POST("/search", s.SearchHotels)
		api.GET("/cities", s.Cities)
	}

	return r
}
