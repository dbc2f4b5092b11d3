package nats

import (
	"sync"

	"github.com/nats-io/nats.go"
	"taskman/pkg/logger"
)

// MessageHandler callback function เมื่อได้รับ notification message
type MessageHandler func(message string)

// Subscriber NATS subscriber สำหรับ notification messages (plain text)
type Subscriber struct {
	conn       *nats.Conn
	sub        *nats.Subscription
	handlers   []MessageHandler
	handlersMu sync.RWMutex
	running    bool
	runningMu  sync.Mutex
}

// NewSubscriber สร้าง NATS Subscriber ใหม่
func NewSubscriber(conn *nats.Conn) *Subscriber {
	return &Subscriber{
		conn:     conn,
		handlers: make([]MessageHandler, 0),
	}
}

// OnMessage ลงทะเบียน handler สำหรับ notification messages
func (s *Subscriber) OnMessage(handler MessageHandler) {
	s.handlersMu.Lock()
	defer s.handlersMu.Unlock()
	s.handlers = append(s.handlers, handler)
}

// Start เริ่ม subscribe และรับข้อมูล
func (s *Subscriber) Start() error {
	s.runningMu.Lock()
	if s.running {
		s.runningMu.Unlock()
		return nil
	}
	s.running = true
	s.runningMu.Unlock()

	sub, err := s.conn.Subscribe(SubjectNotification, s.handleMessage)
	if err != nil {
		return err
	}
	s.sub = sub

	logger.Info("NATS subscriber started", "subject", SubjectNotification)
	return nil
}

// handleMessage จัดการ message ที่ได้รับ
func (s *Subscriber) handleMessage(msg *nats.Msg) {
	message := string(msg.Data)

	// Call handlers
	s.handlersMu.RLock()
	handlers := s.handlers
	s.handlersMu.RUnlock()

	for _, handler := range handlers {
		// Run synchronously to maintain message order
		func(h MessageHandler, m string) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Notification handler panicked", "error", r)
				}
			}()
			h(m)
		}(handler, message)
	}
}

// Stop หยุด subscriber
func (s *Subscriber) Stop() error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return nil
	}

	s.running = false

	if s.sub != nil {
		if err := s.sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", "error", err)
		}
	}

	logger.Info("NATS subscriber stopped")
	return nil
}

// IsRunning ตรวจสอบว่า subscriber กำลังทำงานอยู่หรือไม่
func (s *Subscriber) IsRunning() bool {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()
	return s.running
}
