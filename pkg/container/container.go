package container

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"edubright-backend/internal/config"
	infraCache "edubright-backend/internal/infrastructure/cache"
	"edubright-backend/internal/infrastructure/database"
	"edubright-backend/internal/infrastructure/storage"
	"edubright-backend/pkg/cache"
	"edubright-backend/pkg/jwt"
	"edubright-backend/pkg/logger"

	"edubright-backend/internal/domains/blog"
	blogHandler "edubright-backend/internal/domains/blog/handler"
	blogRepo "edubright-backend/internal/domains/blog/repository"
	blogService "edubright-backend/internal/domains/blog/service"

	"edubright-backend/internal/domains/careers"
	careersHandler "edubright-backend/internal/domains/careers/handler"
	careersRepo "edubright-backend/internal/domains/careers/repository"
	careersService "edubright-backend/internal/domains/careers/service"

	"edubright-backend/internal/domains/contact"
	contactHandler "edubright-backend/internal/domains/contact/handler"
	contactRepo "edubright-backend/internal/domains/contact/repository"
	contactService "edubright-backend/internal/domains/contact/service"

	"edubright-backend/internal/domains/event"
	"edubright-backend/internal/domains/event/gateway"
	stripeGateway "edubright-backend/internal/domains/event/gateway/stripe"
	zoomGateway "edubright-backend/internal/domains/event/gateway/zoom"
	eventHandler "edubright-backend/internal/domains/event/handler"
	eventRepo "edubright-backend/internal/domains/event/repository"
	eventService "edubright-backend/internal/domains/event/service"

	"edubright-backend/internal/domains/media"
	mediaHandler "edubright-backend/internal/domains/media/handler"

	"edubright-backend/internal/domains/team"
	teamHandler "edubright-backend/internal/domains/team/handler"
	teamRepo "edubright-backend/internal/domains/team/repository"
	teamService "edubright-backend/internal/domains/team/service"

	"edubright-backend/internal/domains/user"
	userHandler "edubright-backend/internal/domains/user/handler"
	userRepo "edubright-backend/internal/domains/user/repository"
	userService "edubright-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Everything in it is a
// singleton living for the whole process.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================

	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	JWTManager  *jwt.Manager
	AsynqClient *asynq.Client
	Storage     *storage.MinIOStorage

	// External gateways. Nil when the credential is not configured;
	// services treat a nil gateway as "feature unavailable".
	PaymentGateway gateway.PaymentGateway
	WebinarGateway gateway.WebinarGateway

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	UserRepo    user.Repository
	TeamRepo    team.Repository
	BlogRepo    blog.Repository
	EventRepo   event.Repository
	CareersRepo careers.Repository
	ContactRepo contact.Repository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	UserService    user.Service
	TeamService    team.Service
	BlogService    blog.Service
	EventService   event.Service
	CareersService careers.Service
	ContactService contact.Service
	MediaService   media.Service

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	UserHandler    *userHandler.UserHandler
	TeamHandler    *teamHandler.TeamHandler
	BlogHandler    *blogHandler.BlogHandler
	EventHandler   *eventHandler.EventHandler
	CareersHandler *careersHandler.CareersHandler
	ContactHandler *contactHandler.ContactHandler
	MediaHandler   *mediaHandler.MediaHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the whole dependency graph. Initialization order
// matters: config, infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	// Step 1: configuration, nothing depends on it
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("config loaded", map[string]interface{}{"environment": cfg.App.Environment})

	// Step 2: database
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	logger.Info("database connected", nil)

	// Step 3: cache. Redis being down is not fatal, lists just go uncached.
	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			logger.Error("redis connection failed (non-critical)", err)
		} else {
			logger.Info("redis connected", nil)
		}
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Step 4: object storage
	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = minioStorage

	// Step 5: external gateways, optional per credential
	if err := c.initGateways(); err != nil {
		return nil, fmt.Errorf("failed to init gateways: %w", err)
	}

	// Step 6: repositories
	c.initRepositories()

	// Step 7: services
	c.initServices()

	// Step 8: handlers
	c.initHandlers()

	logger.Info("container initialized", nil)
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initGateways() error {
	if c.Config.Stripe.SecretKey != "" {
		payments, err := stripeGateway.NewClient(&stripeGateway.Config{
			SecretKey: c.Config.Stripe.SecretKey,
			APIURL:    c.Config.Stripe.APIURL,
			Currency:  c.Config.Stripe.Currency,
		})
		if err != nil {
			return err
		}
		c.PaymentGateway = payments
	} else {
		logger.Info("stripe not configured, paid registration disabled", nil)
	}

	if c.Config.Zoom.JWTToken != "" {
		webinars, err := zoomGateway.NewClient(&zoomGateway.Config{
			APIURL:   c.Config.Zoom.APIURL,
			JWTToken: c.Config.Zoom.JWTToken,
		})
		if err != nil {
			return err
		}
		c.WebinarGateway = webinars
	} else {
		logger.Info("zoom not configured, webinar registration disabled", nil)
	}

	return nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.TeamRepo = teamRepo.NewPostgresRepository(pool, c.Cache)
	c.BlogRepo = blogRepo.NewPostgresRepository(pool, c.Cache)
	c.EventRepo = eventRepo.NewPostgresRepository(pool, c.Cache)
	c.CareersRepo = careersRepo.NewPostgresRepository(pool)
	c.ContactRepo = contactRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.TeamService = teamService.NewTeamService(c.TeamRepo)
	c.BlogService = blogService.NewBlogService(c.BlogRepo)
	c.EventService = eventService.NewEventService(
		c.EventRepo,
		c.PaymentGateway,
		c.WebinarGateway,
		c.AsynqClient,
		c.Config.Stripe.Currency,
	)
	c.CareersService = careersService.NewCareersService(c.CareersRepo)
	c.ContactService = contactService.NewContactService(c.ContactRepo, c.AsynqClient)
	c.MediaService = media.NewMediaService(c.Storage)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.TeamHandler = teamHandler.NewTeamHandler(c.TeamService)
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService)
	c.EventHandler = eventHandler.NewEventHandler(c.EventService)
	c.CareersHandler = careersHandler.NewCareersHandler(c.CareersService)
	c.ContactHandler = contactHandler.NewContactHandler(c.ContactService)
	c.MediaHandler = mediaHandler.NewMediaHandler(c.MediaService)
}

// Close releases infrastructure connections
func (c *Container) Close() {
	if c.AsynqClient != nil {
		c.AsynqClient.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
