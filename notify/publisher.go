// Package notify hands freshly stored notifications to an external delivery
// mechanism. Delivery itself (push, email, websocket) lives outside this service.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"social_graph/model"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultChannel = "social:notifications"

	EventCreated = "notification.created"
)

// Publisher 通知发布接口
type Publisher interface {
	Publish(ctx context.Context, n *model.Notification) error
}

// Envelope 发布到 Redis 的消息体
type Envelope struct {
	Type         string             `json:"type"`
	RecipientID  string             `json:"recipient_id"`
	Notification model.Notification `json:"notification"`
	SentAt       time.Time          `json:"sent_at"`
}

// RedisPublisher 通过 Redis Pub/Sub 广播通知，订阅方负责投递
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisPublisher{client: client, channel: channel}
}

func (p *RedisPublisher) Channel() string {
	return p.channel
}

func (p *RedisPublisher) Publish(ctx context.Context, n *model.Notification) error {
	body, err := json.Marshal(&Envelope{
		Type:         EventCreated,
		RecipientID:  n.RecipientID.String(),
		Notification: *n,
		SentAt:       time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode notification envelope: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, body).Err(); err != nil {
		return fmt.Errorf("publish notification to %s: %w", p.channel, err)
	}
	return nil
}

// NopPublisher 丢弃所有通知，用于未配置 Redis 的本地运行
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *model.Notification) error { return nil }
