package handler

import (
	"fieldtofork/internal/infrastructure/storage"
	"fieldtofork/internal/infrastructure/websocket"
	"fieldtofork/internal/usecase"
)

var (
	authHandler         *AuthHandler
	userHandler         *UserHandler
	productHandler      *ProductHandler
	reviewHandler       *ReviewHandler
	cartHandler         *CartHandler
	orderHandler        *OrderHandler
	chatHandler         *ChatHandler
	notificationHandler *NotificationHandler
	weatherHandler      *WeatherHandler
	fileHandler         *FileHandler
	webSocketHandler    *WebSocketHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	productUseCase *usecase.ProductUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	cartUseCase *usecase.CartUseCase,
	orderUseCase *usecase.OrderUseCase,
	chatUseCase *usecase.ChatUseCase,
	notificationUseCase *usecase.NotificationUseCase,
	weatherUseCase *usecase.WeatherUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	productHandler = NewProductHandler(productUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	cartHandler = NewCartHandler(cartUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	chatHandler = NewChatHandler(chatUseCase)
	notificationHandler = NewNotificationHandler(notificationUseCase)
	weatherHandler = NewWeatherHandler(weatherUseCase)
}

func SetupFileHandler(storageClient *storage.CloudinaryClient) {
	fileHandler = NewFileHandler(storageClient)
}

func SetupWebSocketHandler(manager *websocket.Manager, authProvider usecase.AuthProvider) {
	webSocketHandler = NewWebSocketHandler(manager, authProvider)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetCartHandler() *CartHandler {
	return cartHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}

func GetWeatherHandler() *WeatherHandler {
	return weatherHandler
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

func GetWebSocketHandler() *WebSocketHandler {
	return webSocketHandler
}
