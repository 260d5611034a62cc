package server

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"anoa.com/usherhire/internal/config"
	"anoa.com/usherhire/internal/entity"
	"anoa.com/usherhire/internal/middleware"
	"anoa.com/usherhire/internal/scheduler"
	"anoa.com/usherhire/pkg/auth"
	"anoa.com/usherhire/pkg/mq"
	"anoa.com/usherhire/pkg/ratelimiter"
	"anoa.com/usherhire/pkg/storage"
	"anoa.com/usherhire/pkg/validator"

	authHttp "anoa.com/usherhire/internal/modules/auth/delivery/http"
	authRepo "anoa.com/usherhire/internal/modules/auth/repository"
	authService "anoa.com/usherhire/internal/modules/auth/service"

	bookingHttp "anoa.com/usherhire/internal/modules/booking/delivery/http"
	bookingRepo "anoa.com/usherhire/internal/modules/booking/repository"
	bookingService "anoa.com/usherhire/internal/modules/booking/service"

	dashboardHttp "anoa.com/usherhire/internal/modules/dashboard/delivery/http"
	dashboardService "anoa.com/usherhire/internal/modules/dashboard/service"

	eventHttp "anoa.com/usherhire/internal/modules/event/delivery/http"
	eventRepo "anoa.com/usherhire/internal/modules/event/repository"
	eventService "anoa.com/usherhire/internal/modules/event/service"

	profileHttp "anoa.com/usherhire/internal/modules/profile/delivery/http"
	profileRepo "anoa.com/usherhire/internal/modules/profile/repository"
	profileService "anoa.com/usherhire/internal/modules/profile/service"

	reviewHttp "anoa.com/usherhire/internal/modules/review/delivery/http"
	reviewRepo "anoa.com/usherhire/internal/modules/review/repository"
	reviewService "anoa.com/usherhire/internal/modules/review/service"

	searchService "anoa.com/usherhire/internal/modules/search/service"

	statHttp "anoa.com/usherhire/internal/modules/stat/delivery/http"
	statService "anoa.com/usherhire/internal/modules/stat/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
	publisher   mq.Publisher
	scheduler   *scheduler.Scheduler
}

// NewServer wires repositories, services and routes. Redis, Meilisearch,
// Cloudinary and RabbitMQ are optional and skipped when not configured.
func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	if err := validator.Register(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.JWTTTL())
	denylist := auth.NewDenylist(redisClient)
	limiter := ratelimiter.New(redisClient)

	var usherIndex searchService.UsherIndex
	if host := cfg.MeiliHost(); host != "" {
		meiliClient := meilisearch.New(host, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
		usherIndex = searchService.NewMeiliUsherIndex(meiliClient)
	} else {
		log.Println("[server] MEILISEARCH_HOST not set, usher search uses the database")
	}

	var imageStorage storage.ImageStorage
	if cfg.CloudinaryURL != "" {
		cld, err := storage.NewCloudinaryStorage(cfg.CloudinaryURL)
		if err != nil {
			return nil, fmt.Errorf("initialize cloudinary storage: %w", err)
		}
		imageStorage = cld
	} else {
		log.Println("[server] CLOUDINARY_URL not set, avatar uploads are disabled")
	}

	publisher := mq.NewNopPublisher()
	if cfg.AMQPURL != "" {
		p, err := mq.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return nil, fmt.Errorf("connect amqp: %w", err)
		}
		publisher = p
	}

	userRepository := authRepo.NewUserRepository(db)
	profileRepository := profileRepo.NewProfileRepository(db)
	eventRepository := eventRepo.NewEventRepository(db)
	bookingRepository := bookingRepo.NewBookingRepository(db)
	reviewRepository := reviewRepo.NewReviewRepository(db)

	authSvc := authService.NewAuthService(userRepository, issuer, denylist, usherIndex)
	authHandler := authHttp.NewAuthHandler(authSvc)

	profileSvc := profileService.NewProfileService(profileRepository, imageStorage, usherIndex, cfg.CloudinaryUploadFolder)
	directorySvc := profileService.NewDirectoryService(profileRepository, reviewRepository, usherIndex)
	profileHandler := profileHttp.NewProfileHandler(profileSvc, directorySvc)

	eventSvc := eventService.NewEventService(eventRepository, profileRepository)
	eventHandler := eventHttp.NewEventHandler(eventSvc)

	bookingSvc := bookingService.NewBookingService(bookingRepository, eventRepository, profileRepository, limiter, publisher, cfg.RateLimitApply)
	bookingHandler := bookingHttp.NewBookingHandler(bookingSvc)

	reviewSvc := reviewService.NewReviewService(reviewRepository, bookingRepository, profileRepository, limiter, publisher, usherIndex, cfg.RateLimitReview)
	reviewHandler := reviewHttp.NewReviewHandler(reviewSvc)

	dashboardSvc := dashboardService.NewDashboardService(profileRepository, eventRepository, bookingRepository)
	dashboardHandler := dashboardHttp.NewDashboardHandler(dashboardSvc)

	statSvc := statService.NewStatService(eventRepository, bookingRepository, profileRepository)
	statHandler := statHttp.NewStatHandler(statSvc)

	jobs := scheduler.NewScheduler(0)
	if err := jobs.Register(scheduler.NewEventSweepJob(eventSvc, cfg.EventSweepSchedule)); err != nil {
		return nil, err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	setupCORS(router, cfg.Origins())

	router.Use(gin.Recovery())
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/healthz"},
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authMiddleware := middleware.NewAuthMiddleware(issuer, denylist)
	plannerOnly := authMiddleware.RequireUserType(entity.UserTypePlanner)
	usherOnly := authMiddleware.RequireUserType(entity.UserTypeUsher)

	api := router.Group("/api")

	// Public routes (no auth required)
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", authHandler.SignUp)
		authGroup.POST("/signin", authHandler.SignIn)
	}

	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.POST("/auth/signout", authHandler.SignOut)
		protected.GET("/auth/me", authHandler.Me)

		// Profile routes
		protected.GET("/profile/me", profileHandler.GetMyProfile)
		protected.PUT("/profile/me", profileHandler.UpdateMyProfile)
		protected.PUT("/profile/me/usher", usherOnly, profileHandler.UpdateUsherProfile)

		// Usher directory
		protected.GET("/ushers", plannerOnly, profileHandler.ListUshers)
		protected.GET("/ushers/:id", plannerOnly, profileHandler.GetUsher)

		// Event routes
		protected.POST("/events", plannerOnly, eventHandler.CreateEvent)
		protected.GET("/events/open", eventHandler.ListOpenEvents)
		protected.GET("/events/mine", plannerOnly, eventHandler.ListMyEvents)
		protected.GET("/events/:id", eventHandler.GetEvent)
		protected.PUT("/events/:id", plannerOnly, eventHandler.UpdateEvent)
		protected.PATCH("/events/:id/status", plannerOnly, eventHandler.ChangeStatus)
		protected.POST("/events/:id/apply", usherOnly, bookingHandler.Apply)
		protected.GET("/events/:id/applications", plannerOnly, bookingHandler.ListEventApplications)

		// Booking routes
		protected.GET("/bookings/mine", usherOnly, bookingHandler.ListMyBookings)
		protected.GET("/bookings/:id", bookingHandler.GetBooking)
		protected.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)
		protected.POST("/bookings/:id/review", plannerOnly, reviewHandler.SubmitReview)

		// Dashboards
		protected.GET("/dashboard/planner", plannerOnly, dashboardHandler.Planner)
		protected.GET("/dashboard/usher", usherOnly, dashboardHandler.Usher)

		protected.GET("/diagnostics", statHandler.GetDiagnostics)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
		publisher:   publisher,
		scheduler:   jobs,
	}, nil
}

// Handler exposes the router, mainly for http.Server and tests.
func (s *Server) Handler() *gin.Engine {
	return s.engine
}

// StartJobs runs one event sweep to catch up on events that ended while the
// process was down, then starts the cron loop.
func (s *Server) StartJobs() {
	log.Printf("[server] background jobs: %s", strings.Join(s.scheduler.Jobs(), ", "))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := s.scheduler.RunByName(ctx, scheduler.EventSweepJobName); err != nil {
		log.Printf("[server] startup event sweep failed: %v", err)
	}

	s.scheduler.Start()
}

// Close stops background jobs and releases broker and cache connections.
func (s *Server) Close() {
	s.scheduler.Stop()
	if err := s.publisher.Close(); err != nil {
		log.Printf("[server] close publisher: %v", err)
	}
	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Printf("[server] close redis: %v", err)
		}
	}
}

func setupCORS(router *gin.Engine, origins []string) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
