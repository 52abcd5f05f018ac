package usecase

import (
	"context"

	"fieldtofork/internal/domain/entity"
)

// AuthProvider is the slice of the identity service the use cases need.
type AuthProvider interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	DeleteUser(ctx context.Context, uid string) error
	SignInWithEmailPassword(ctx context.Context, email, password string) (string, error)
	SendPasswordReset(ctx context.Context, email string) error
}

// ForecastProvider abstracts the weather API.
type ForecastProvider interface {
	Forecast(ctx context.Context, lat, lon float64) ([]entity.DailyForecast, error)
}

// EventPusher is the realtime push surface the chat and order flows use.
type EventPusher interface {
	PushToUser(userID string, eventType string, payload interface{})
	BroadcastAll(eventType string, payload interface{})
}
