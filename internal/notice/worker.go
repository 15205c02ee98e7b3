package notice

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

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/traffic_overlay/internal/config"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// errMalformed - запись в очереди не является уведомлением
var errMalformed = errors.New("malformed notice in delivery queue")

const signatureHeader = "X-Webhook-Signature"

// deliveryQueue - очередь доставки. *redis.Client удовлетворяет интерфейсу.
type deliveryQueue interface {
	BRPop(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd
}

// WebhookWorker - доставляет уведомления из очереди Redis на внешний вебхук
type WebhookWorker struct {
	queue      deliveryQueue
	logger     *logrus.Logger
	cfg        *config.Config
	httpClient *http.Client
}

// NewWebhookWorker создает новый WebhookWorker
func NewWebhookWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *WebhookWorker {
	return newWebhookWorker(redisClient, logger, cfg)
}

func newWebhookWorker(queue deliveryQueue, logger *logrus.Logger, cfg *config.Config) *WebhookWorker {
	return &WebhookWorker{
		queue:  queue,
		logger: logger,
		cfg:    cfg,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   cfg.WebhookTimeout,
		},
	}
}

// Start запускает доставку в отдельной горутине до отмены контекста
func (w *WebhookWorker) Start(ctx context.Context) {
	w.logger.WithField("queue", deliveryQueueKey).Info("Notice webhook worker started")
	go w.run(ctx)
}

func (w *WebhookWorker) run(ctx context.Context) {
	for ctx.Err() == nil {
		n, payload, err := w.next(ctx)
		switch {
		case err == nil:
			if err := w.deliver(ctx, n, payload); err != nil {
				w.logger.WithError(err).WithField("notice_id", n.ID).Error("Failed to deliver notice webhook")
			}
		case ctx.Err() != nil:
		case errors.Is(err, errMalformed):
			w.logger.WithError(err).Warn("Dropping queued notice")
		default:
			w.logger.WithError(err).Error("Notice delivery queue unavailable")
			w.pause(ctx)
		}
	}
	w.logger.Info("Notice webhook worker stopped")
}

// next блокируется до появления уведомления в очереди доставки
func (w *WebhookWorker) next(ctx context.Context) (Notice, []byte, error) {
	reply, err := w.queue.BRPop(ctx, 0, deliveryQueueKey).Result()
	if err != nil {
		return Notice{}, nil, err
	}
	// ответ BRPOP: ключ и значение
	if len(reply) != 2 {
		return Notice{}, nil, fmt.Errorf("%w: unexpected reply of %d items", errMalformed, len(reply))
	}

	payload := []byte(reply[1])
	var n Notice
	if err := json.Unmarshal(payload, &n); err != nil {
		return Notice{}, nil, fmt.Errorf("%w: %v", errMalformed, err)
	}
	if n.ID == uuid.Nil {
		return Notice{}, nil, fmt.Errorf("%w: missing id", errMalformed)
	}
	return n, payload, nil
}

func (w *WebhookWorker) pause(ctx context.Context) {
	t := time.NewTimer(w.cfg.WebhookBaseDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func (w *WebhookWorker) deliver(ctx context.Context, n Notice, payload []byte) error {
	log := w.logger.WithField("notice_id", n.ID).WithField("notice_kind", n.Kind)
	log.Debug("Processing notice webhook...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = w.cfg.WebhookBaseDelay
	policy.Multiplier = 2

	operation := func() (int, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewReader(payload))
		if err != nil {
			return 0, backoff.Permanent(fmt.Errorf("failed to create webhook request: %w", err))
		}
		req.Header.Set("Content-Type", "application/json")

		if w.cfg.WebhookSecret != "" {
			req.Header.Set(signatureHeader, sign(payload, w.cfg.WebhookSecret))
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			return 0, err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return resp.StatusCode, fmt.Errorf("webhook responded with status %d", resp.StatusCode)
		}
		return resp.StatusCode, nil
	}

	maxRetries := w.cfg.WebhookMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	_, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(uint(maxRetries)),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.WithError(err).Warnf("Webhook delivery failed. Retrying in %v", next)
		}),
	)
	if err != nil {
		return fmt.Errorf("webhook delivery failed after %d attempts: %w", maxRetries, err)
	}

	log.Info("Webhook delivered successfully.")
	return nil
}

// sign - hex HMAC-SHA256 тела уведомления
func sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
