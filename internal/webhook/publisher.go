package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/emergency_response_system/internal/models"
)

const (
	notificationQueueKey = "contact_notifications"
	// События, которые не удалось доставить, для ручного разбора
	notificationDeadLetterKey = "contact_notifications:dead"
)

//go:generate mockgen -source=publisher.go -destination=mocks/publisher_mock.go -package=mocks

// NotificationEvent - задание на оповещение контактов жителя после сообщения о ЧС.
// Messages идут в том порядке, в котором их нужно показать/отправить.
type NotificationEvent struct {
	IncidentID    uuid.UUID                 `json:"incident_id"`
	ResidentID    int64                     `json:"resident_id"`
	EmergencyType models.EmergencyType      `json:"emergency_type"`
	Location      string                    `json:"location"`
	ServiceID     int64                     `json:"service_id"`
	Contacts      []models.EmergencyContact `json:"contacts"`
	Messages      []string                  `json:"messages"`
	Timestamp     time.Time                 `json:"timestamp"`
}

// NotificationPublisher - интерфейс для постановки оповещений в очередь
type NotificationPublisher interface {
	Publish(ctx context.Context, event NotificationEvent) error
}

// RedisNotificationPublisher - реализация NotificationPublisher поверх списка Redis
type RedisNotificationPublisher struct {
	redisClient *redis.Client
}

// NewRedisNotificationPublisher создает новый RedisNotificationPublisher
func NewRedisNotificationPublisher(client *redis.Client) *RedisNotificationPublisher {
	return &RedisNotificationPublisher{
		redisClient: client,
	}
}

// Publish кладет событие в левую часть очереди, воркер забирает справа
func (p *RedisNotificationPublisher) Publish(ctx context.Context, event NotificationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, notificationQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification event to Redis: %w", err)
	}
	return nil
}
