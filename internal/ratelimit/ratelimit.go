package ratelimit

import (
	"fmt"
	"strings"
	"sync"
	"time"

	gerr "github.com/jekabolt/helpdesk/internal/errors"
)

const cleanupInterval = time.Minute

// Limiter is an in-memory fixed window rate limiter keyed by string.
type Limiter struct {
	mu       sync.RWMutex
	counters map[string]*counter
	window   time.Duration
	max      int
	now      func() time.Time
	stop     chan struct{}
	once     sync.Once
}

type counter struct {
	count     int
	expiresAt time.Time
}

// NewLimiter allows max requests per key per window.
func NewLimiter(window time.Duration, max int) *Limiter {
	l := &Limiter{
		counters: make(map[string]*counter),
		window:   window,
		max:      max,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	go l.cleanup()
	return l
}

// Allow checks if a request for the given key is allowed
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	c, exists := l.counters[key]

	if !exists || now.After(c.expiresAt) {
		l.counters[key] = &counter{
			count:     1,
			expiresAt: now.Add(l.window),
		}
		return true
	}

	if c.count >= l.max {
		return false
	}

	c.count++
	return true
}

// GetRemaining returns the number of remaining requests for the given key
func (l *Limiter) GetRemaining(key string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	c, exists := l.counters[key]
	if !exists || l.now().After(c.expiresAt) {
		return l.max
	}
	return max(l.max-c.count, 0)
}

// Close stops the background cleanup.
func (l *Limiter) Close() {
	l.once.Do(func() { close(l.stop) })
}

func (l *Limiter) cleanup() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.mu.Lock()
			now := l.now()
			for key, c := range l.counters {
				if now.After(c.expiresAt) {
					delete(l.counters, key)
				}
			}
			l.mu.Unlock()
		}
	}
}

type Config struct {
	Window         time.Duration `mapstructure:"window"`
	TicketsPerIP   int           `mapstructure:"tickets_per_ip"`
	TicketsPerMail int           `mapstructure:"tickets_per_email"`
}

// DefaultConfig allows 5 tickets per IP and 3 per email address per hour.
func DefaultConfig() Config {
	return Config{
		Window:         time.Hour,
		TicketsPerIP:   5,
		TicketsPerMail: 3,
	}
}

// SubmissionLimiter caps ticket submissions per client IP and per email.
type SubmissionLimiter struct {
	ip    *Limiter
	email *Limiter
}

func NewSubmissionLimiter(c *Config) *SubmissionLimiter {
	d := DefaultConfig()
	if c.Window <= 0 {
		c.Window = d.Window
	}
	if c.TicketsPerIP <= 0 {
		c.TicketsPerIP = d.TicketsPerIP
	}
	if c.TicketsPerMail <= 0 {
		c.TicketsPerMail = d.TicketsPerMail
	}
	return &SubmissionLimiter{
		ip:    NewLimiter(c.Window, c.TicketsPerIP),
		email: NewLimiter(c.Window, c.TicketsPerMail),
	}
}

// CheckSupportTicket verifies a ticket can be submitted from ip with email.
// The error wraps gerr.ErrSubmissionLimited.
func (s *SubmissionLimiter) CheckSupportTicket(ip, email string) error {
	if !s.ip.Allow(ip) {
		return fmt.Errorf("%w: too many support tickets from this IP address", gerr.ErrSubmissionLimited)
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email != "" && !s.email.Allow(email) {
		return fmt.Errorf("%w: too many support tickets from this email address", gerr.ErrSubmissionLimited)
	}
	return nil
}

// Remaining returns the submissions left for ip and email. Email is -1 when empty.
func (s *SubmissionLimiter) Remaining(ip, email string) (ipRemaining, emailRemaining int) {
	ipRemaining = s.ip.GetRemaining(ip)
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ipRemaining, -1
	}
	return ipRemaining, s.email.GetRemaining(email)
}

func (s *SubmissionLimiter) Close() {
	s.ip.Close()
	s.email.Close()
}
