package main

import (
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	identitypb "github.com/luxstudio/storefront-core/internal/api/identity/v1"
	storefrontpb "github.com/luxstudio/storefront-core/internal/api/storefront/v1"
	"github.com/luxstudio/storefront-core/internal/config"
	"github.com/luxstudio/storefront-core/internal/db"
	"github.com/luxstudio/storefront-core/internal/identity"
	"github.com/luxstudio/storefront-core/internal/model"
	"github.com/luxstudio/storefront-core/internal/repository"
	"github.com/luxstudio/storefront-core/internal/service"
)

func main() {
	// 1. Загружаем конфиг из env.
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("load db config: %v", err)
	}
	srvCfg := config.LoadServerConfig()

	// 2. Подключаемся к БД через GORM.
	gormDB, err := db.NewGormDB(dbCfg)
	if err != nil {
		log.Fatalf("init db: %v", err)
	}

	// 3. Миграции моделей и стартовый каталог.
	if err := model.AutoMigrate(gormDB); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}
	if err := model.Seed(gormDB); err != nil {
		log.Fatalf("seed: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("sql DB: %v", err)
	}
	defer sqlDB.Close()

	// 4. Репозитории (реализации на GORM).
	userRepo := repository.NewGormUserRepository(gormDB)
	serviceRepo := repository.NewGormServiceRepository(gormDB)
	orderRepo := repository.NewGormOrderRepository(gormDB)
	eventRepo := repository.NewGormEventRepository(gormDB)

	// 5. gRPC-сервисы витрины.
	provider := identity.NewDevProvider(model.AdminEmail)
	identitySvc := service.NewIdentityService(provider, userRepo, eventRepo)
	catalogSvc := service.NewCatalogService(serviceRepo, userRepo, eventRepo)
	orderSvc := service.NewOrderService(orderRepo, serviceRepo, userRepo, eventRepo)

	// 6. Настраиваем gRPC-сервер.
	grpcServer := grpc.NewServer()
	identitypb.RegisterIdentityServiceServer(grpcServer, identitySvc)
	storefrontpb.RegisterCatalogServiceServer(grpcServer, catalogSvc)
	storefrontpb.RegisterOrderServiceServer(grpcServer, orderSvc)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", srvCfg.GRPCAddr)
	if err != nil {
		log.Fatalf("listen %s: %v", srvCfg.GRPCAddr, err)
	}

	log.Printf("storefront core gRPC server listening on %s", srvCfg.GRPCAddr)

	// 7. Запускаем сервер в горутине.
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	// 8. Грейсфул-шатдаун по сигналу.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutting down gRPC server...")
	grpcServer.GracefulStop()
}
