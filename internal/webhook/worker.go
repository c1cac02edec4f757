package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/emergency_response_system/internal/config"
)

const (
	signatureHeader  = "X-Webhook-Signature"
	queuePollTimeout = 5 * time.Second
	pushBackTimeout  = 5 * time.Second
)

type deliveryOutcome int

const (
	outcomeDelivered deliveryOutcome = iota
	outcomeSkipped
	outcomeFailed
	outcomeInterrupted
)

// NotificationWorker забирает события из очереди и доставляет их на вебхук
type NotificationWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
	sleep       func(ctx context.Context, d time.Duration)
	pollTimeout time.Duration
	done        chan struct{}
}

// NewNotificationWorker создает новый NotificationWorker
func NewNotificationWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *NotificationWorker {
	return &NotificationWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
		sleep:       sleepCtx,
		pollTimeout: queuePollTimeout,
	}
}

// Start запускает горутину обработки очереди; остановка - через отмену ctx, дождаться выхода - Wait
func (w *NotificationWorker) Start(ctx context.Context) {
	w.logger.Info("Starting notification worker...")
	w.done = make(chan struct{})
	go func() {
		defer close(w.done)
		for {
			if ctx.Err() != nil {
				w.logger.Info("Stopping notification worker.")
				return
			}

			result, err := w.redisClient.BRPop(ctx, w.pollTimeout, notificationQueueKey).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) || ctx.Err() != nil {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop notification event from Redis")
				w.sleep(ctx, w.cfg.WebhookTimeout)
				continue
			}

			// result[0] - ключ, result[1] - значение
			w.handlePayload(ctx, result[1])
		}
	}()
}

// Wait ждет выхода горутины, запущенной Start, но не дольше ctx
func (w *NotificationWorker) Wait(ctx context.Context) error {
	if w.done == nil {
		return nil
	}
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// handlePayload обрабатывает одно событие, снятое с очереди.
// Прерванная остановкой доставка возвращается в очередь, неудачная или нечитаемая - в список недоставленных.
func (w *NotificationWorker) handlePayload(ctx context.Context, payload string) {
	var event NotificationEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal notification event from Redis")
		w.pushBack(ctx, notificationDeadLetterKey, payload, w.redisClient.LPush)
		return
	}

	switch w.processEvent(ctx, event, payload) {
	case outcomeFailed:
		w.pushBack(ctx, notificationDeadLetterKey, payload, w.redisClient.LPush)
	case outcomeInterrupted:
		// RPUSH: событие снова окажется первым для BRPOP
		w.pushBack(ctx, notificationQueueKey, payload, w.redisClient.RPush)
	}
}

// pushBack пишет событие в список Redis, даже если ctx уже отменен
func (w *NotificationWorker) pushBack(
	ctx context.Context,
	key, payload string,
	push func(ctx context.Context, key string, values ...interface{}) *redis.IntCmd,
) {
	log := w.logger.WithField("queue", key)
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), pushBackTimeout)
	defer cancel()

	if err := push(pctx, key, payload).Err(); err != nil {
		log.WithError(err).Error("Failed to return notification event to Redis, event is lost")
		return
	}
	log.Warn("Notification event returned to Redis")
}

// processEvent доставляет одно событие, повторяя с экспоненциальной задержкой
func (w *NotificationWorker) processEvent(ctx context.Context, event NotificationEvent, rawPayload string) deliveryOutcome {
	log := w.logger.WithFields(logrus.Fields{
		"incident_id": event.IncidentID,
		"resident_id": event.ResidentID,
		"messages":    len(event.Messages),
	})
	log.Debug("Processing notification event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping notification delivery.")
		return outcomeSkipped
	}

	maxRetries := w.cfg.WebhookMaxRetries
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		err := w.deliver(ctx, rawPayload)
		if err == nil {
			log.Info("Contact notifications delivered successfully.")
			return outcomeDelivered
		}
		if ctx.Err() != nil {
			log.WithError(err).Warn("Notification delivery interrupted by shutdown.")
			return outcomeInterrupted
		}

		retriesLeft := maxRetries - 1 - i
		if retriesLeft == 0 {
			log.WithError(err).Warn("Notification delivery attempt failed.")
			break
		}
		log.WithError(err).Warnf("Notification delivery failed. Retrying in %v. Retries left: %d", delay, retriesLeft)
		w.sleep(ctx, delay)
		delay *= 2
	}

	if ctx.Err() != nil {
		return outcomeInterrupted
	}
	log.Errorf("Failed to deliver contact notifications after %d attempts.", maxRetries)
	return outcomeFailed
}

func (w *NotificationWorker) deliver(ctx context.Context, rawPayload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(signatureHeader, generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded with status code %d", resp.StatusCode)
	}
	return nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
