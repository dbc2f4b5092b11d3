package nats

import (
	"context"
	"fmt"

	"taskman/domain/ports"
)

// SubjectNotification fanout subject สำหรับ notification messages
// consumer ทุกตัวที่ subscribe subject นี้ได้รับ message เหมือนกันหมด
const SubjectNotification = "notification"

// NotificationPublisher implements ports.NotificationPublisher ผ่าน NATS Pub/Sub
type NotificationPublisher struct {
	client *Client
}

// NewNotificationPublisher สร้าง publisher adapter สำหรับ NATS
func NewNotificationPublisher(client *Client) ports.NotificationPublisher {
	return &NotificationPublisher{client: client}
}

// Publish ส่ง plain-text message ไปยัง notification subject
func (p *NotificationPublisher) Publish(ctx context.Context, message string) error {
	if message == "" {
		return fmt.Errorf("message cannot be empty")
	}
	return p.client.conn.Publish(SubjectNotification, []byte(message))
}
