package store

import (
	"math/rand"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"

	"github.com/superbutton/superbutton-go/internal/store/domain"
)

const notificationBaseTimeout = 3 * time.Second

// NotificationController holds the single notification slot. A new request
// replaces whatever is showing, so a burst of actions only ever surfaces the
// latest outcome.
type NotificationController struct {
	mu          sync.RWMutex
	current     *domain.Notification
	timer       *time.Timer
	baseTimeout time.Duration
	genID       *snowflake.Node
	log         *zap.Logger
}

func NewNotificationController(log *zap.Logger) (*NotificationController, error) {
	node, err := snowflake.NewNode(2)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &NotificationController{
		baseTimeout: notificationBaseTimeout,
		genID:       node,
		log:         log.Named("store.notification"),
	}, nil
}

// Notify replaces the current notification and arms its auto-dismiss timer.
// The small random jitter keeps back-to-back banners from dismissing in
// perfect lockstep.
func (c *NotificationController) Notify(request domain.NotificationRequest) domain.Notification {
	timeout := c.baseTimeout + time.Duration(rand.Intn(100))*time.Millisecond
	notification := domain.Notification{
		ID:      c.genID.Generate(),
		Message: request.Message,
		Type:    request.Type,
		Timeout: timeout,
		Active:  true,
	}

	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.current = &notification
	c.timer = time.AfterFunc(timeout, func() { c.dismiss(notification.ID) })
	c.mu.Unlock()

	c.log.Debug("notification shown",
		zap.String("type", string(request.Type)),
		zap.String("message", request.Message),
	)
	return notification
}

// Disable dismisses the current notification, keeping its message.
func (c *NotificationController) Disable() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	if c.current != nil {
		c.current.Active = false
	}
}

// Current returns a copy of the notification slot, nil when nothing has been
// shown yet.
func (c *NotificationController) Current() *domain.Notification {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current == nil {
		return nil
	}
	notification := *c.current
	return &notification
}

// dismiss is the timer path. The ID check keeps a stale timer from touching
// a notification that replaced its own.
func (c *NotificationController) dismiss(id snowflake.ID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != nil && c.current.ID == id {
		c.current.Active = false
	}
}
