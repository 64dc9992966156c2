package model

import (
	"time"

	"gorm.io/datatypes"
)

// Well-known snapshot keys.
const (
	SnapshotAmenityRules = "amenityRules"
	SnapshotAutoApproval = "autoApprovalSettings"
	SnapshotTheme        = "theme"
)

// SettingsSnapshot is one persisted settings blob, written wholesale on
// every save (last write wins, no merging).
type SettingsSnapshot struct {
	Key       string         `gorm:"primaryKey;size:64"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}
