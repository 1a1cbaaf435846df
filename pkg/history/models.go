// Package history persists observed screensaver state transitions.
package history

import "time"

// Event records one observed screensaver state transition.
type Event struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Timestamp time.Time `gorm:"not null;index" json:"timestamp"`
	Backend   string    `gorm:"not null;index" json:"backend"`
	Active    bool      `gorm:"not null" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
