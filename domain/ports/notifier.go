package ports

import "context"

// ═══════════════════════════════════════════════════════════════════════════════
// Notification Publisher Port - สำหรับส่งข้อความแจ้งเตือนหลัง mutation สำเร็จ
// ═══════════════════════════════════════════════════════════════════════════════

// NotificationPublisher fire-and-forget publisher
// publish fail ไม่กระทบผลของ CRUD operation (service แค่ log แล้วไปต่อ)
type NotificationPublisher interface {
	// Publish ส่ง plain-text message ไปยัง notification subject
	Publish(ctx context.Context, message string) error
}
