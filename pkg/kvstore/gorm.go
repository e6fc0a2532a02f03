package kvstore

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is the database shape of one persisted key. The value column
// carries the same JSON document the file backend writes, so the two
// backends are interchangeable behind the Store interface.
type KVEntry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"type:jsonb;column:value"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (Store, error) {
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, err
	}
	return &gormStore{db: db}, nil
}

func (s *gormStore) Get(key string, out any) (bool, error) {
	var entry KVEntry
	if err := s.db.Where("key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(entry.Value), out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *gormStore) Set(key string, value any) error {
	return s.SetAll(map[string]any{key: value})
}

func (s *gormStore) SetAll(values map[string]any) error {
	entries := make([]KVEntry, 0, len(values))
	for key, value := range values {
		raw, err := json.Marshal(value)
		if err != nil {
			return err
		}
		entries = append(entries, KVEntry{Key: key, Value: string(raw)})
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, entry := range entries {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value"}),
			}).Create(&entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
