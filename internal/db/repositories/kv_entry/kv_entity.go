package kv_entry

import (
	"time"
)

type KVEntry struct {
	Key       string    `gorm:"column:key;type:text;primaryKey" json:"key"`
	Value     []byte    `gorm:"column:value;type:bytea;not null" json:"value"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// set table name
func (KVEntry) TableName() string {
	return "kv_entries"
}
