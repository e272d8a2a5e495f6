package provider

import (
	"github.com/subhe-sadik/shop-api/internal/cache"
	"github.com/subhe-sadik/shop-api/internal/config"
	"github.com/subhe-sadik/shop-api/internal/logger"
	"github.com/subhe-sadik/shop-api/internal/models"
	"github.com/subhe-sadik/shop-api/internal/queue"
	"github.com/subhe-sadik/shop-api/internal/repository"
	"github.com/subhe-sadik/shop-api/internal/service"
)

// Container wires repositories and services.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo    repository.AdminRepository
	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	CartRepo     repository.CartRepository
	OrderRepo    repository.OrderRepository

	// Services
	AuthService        *service.AuthService
	EmailService       *service.EmailService
	UploadService      *service.UploadService
	CategoryService    *service.CategoryService
	ProductService     *service.ProductService
	CartService        *service.CartService
	OrderService       *service.OrderService
	OrderNotifyService *service.OrderNotifyService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)

	// Order creation fans out an order-created task, mirroring a database
	// trigger: every insert through this repository enqueues exactly once.
	c.OrderRepo = repository.NewNotifyingOrderRepository(
		repository.NewOrderRepository(db),
		c.QueueClient,
	)
}

func (c *Container) initServices() {
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.UploadService = service.NewUploadService(c.Config)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo)
	c.OrderNotifyService = service.NewOrderNotifyService(c.Config, c.OrderRepo, c.EmailService)
}
