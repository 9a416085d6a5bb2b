package service

import (
	"github.com/kwamkid/joolz-factory-sub003/internal/config"
	"github.com/kwamkid/joolz-factory-sub003/internal/repository"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Services 服务集合
type Services struct {
	Auth      *AuthService
	User      *UserService
	Product   *ProductService
	Recipe    *RecipeService
	Inventory *InventoryService
	Order     *OrderService
	Customer  *CustomerService
	Payment   *PaymentService
	Planning  *PlanningService
	Upload    *UploadService
}

// NewServices 创建服务集合
func NewServices(repos *repository.Repositories, rdb *redis.Client, cfg *config.Config, logger *zap.Logger) *Services {
	// 初始化MinIO客户端
	var minioClient *minio.Client
	if cfg.MinIO.Endpoint != "" {
		var err error
		minioClient, err = minio.New(cfg.MinIO.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
			Secure: cfg.MinIO.UseSSL,
		})
		if err != nil {
			logger.Warn("minio client init failed, file upload disabled", zap.Error(err))
			minioClient = nil
		}
	}

	return &Services{
		Auth:      NewAuthService(repos.User, rdb, cfg),
		User:      NewUserService(repos.User),
		Product:   NewProductService(repos.Product, rdb),
		Recipe:    NewRecipeService(repos.Recipe, repos.Product),
		Inventory: NewInventoryService(repos.Inventory, logger),
		Order:     NewOrderService(repos.Order, repos.Product, repos.Customer),
		Customer:  NewCustomerService(repos.Customer),
		Payment:   NewPaymentService(repos.Payment),
		Planning:  NewPlanningService(repos, logger),
		Upload:    NewUploadService(minioClient, cfg.MinIO.Bucket),
	}
}
