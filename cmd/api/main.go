package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"fieldtofork/internal/adapter/api"
	"fieldtofork/internal/adapter/api/handler"
	apimiddleware "fieldtofork/internal/adapter/api/middleware"
	"fieldtofork/internal/adapter/api/router"
	"fieldtofork/internal/adapter/repository"
	"fieldtofork/internal/domain/service"
	"fieldtofork/internal/infrastructure/firebase"
	"fieldtofork/internal/infrastructure/localstore"
	"fieldtofork/internal/infrastructure/storage"
	"fieldtofork/internal/infrastructure/weather"
	"fieldtofork/internal/infrastructure/websocket"
	"fieldtofork/internal/usecase"
	"fieldtofork/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./serviceAccountKey.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudinaryClient(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryApiKey,
		cfg.CloudinaryApiSecret,
		cfg.CloudinaryFolder,
	)
	if err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	localStore, err := localstore.NewFileStore(cfg.LocalStoreDir)
	if err != nil {
		log.Fatalf("Failed to open local store at %s: %v", cfg.LocalStoreDir, err)
	}

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	chatRepo := repository.NewFirestoreChatRepository(firestoreClient)
	notificationRepo := repository.NewFirestoreNotificationRepository(firestoreClient)

	firebaseAuthClient := firebase.NewAuthClient(authClient, cfg.FirebaseApiKey)
	weatherClient := weather.NewClient(cfg.OpenWeatherApiKey)
	paymentService := service.NewFlutterwavePaymentService(cfg.FlutterwavePaymentLink)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	typingIdle := time.Duration(cfg.TypingIdleSeconds) * time.Second

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	userUseCase := usecase.NewUserUseCase(userRepo, localStore)
	productUseCase := usecase.NewProductUseCase(productRepo, userRepo, localStore, wsManager)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, productRepo, userRepo)
	cartUseCase := usecase.NewCartUseCase(localStore, userRepo, productRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, userRepo, localStore, paymentService, wsManager)
	chatUseCase := usecase.NewChatUseCase(chatRepo, userRepo, productRepo, notificationRepo, wsManager, typingIdle)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)
	weatherUseCase := usecase.NewWeatherUseCase(weatherClient)

	handler.Setup(
		authUseCase,
		userUseCase,
		productUseCase,
		reviewUseCase,
		cartUseCase,
		orderUseCase,
		chatUseCase,
		notificationUseCase,
		weatherUseCase,
	)
	handler.SetupFileHandler(storageClient)
	handler.SetupWebSocketHandler(wsManager, firebaseAuthClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(apimiddleware.Metrics)

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)

	router.Setup(e, authMiddleware, authClient)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
