package models

import "time"

// Sync adalah audit log: satu baris per sinkronisasi yang selesai.
type Sync struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Label          string    `gorm:"index;size:30" json:"label"`
	SynchronizedAt time.Time `json:"synchronized_at"`
}
