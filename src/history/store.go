// Package history keeps an optional audit trail of completed verifications in
// MySQL. Verification results themselves stay ephemeral; this table exists for
// operators, so every write failure is logged and swallowed.
package history

import (
	"context"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/logging"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/schema"
)

// Record is one completed verification.
type Record struct {
	ID         uint   `gorm:"primaryKey"`
	ClaimID    string `gorm:"size:64;index"`
	Claim      string `gorm:"type:text"`
	Language   string `gorm:"size:64"`
	Verdict    string `gorm:"size:16;index"`
	Confidence float64
	CreatedAt  time.Time
}

// MustMySQL connects and migrates, or exits. An empty DSN disables history.
func MustMySQL(dsn string) *gorm.DB {
	if dsn == "" {
		return nil
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		log.Fatalf("mysql migrate: %v", err)
	}
	return db
}

type Store struct {
	db *gorm.DB
}

// NewStore wraps a gorm handle; a nil handle yields a no-op store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Append writes one row best-effort.
func (s *Store) Append(ctx context.Context, res *schema.VerificationResult) {
	if s == nil || s.db == nil || res == nil {
		return
	}
	rec := Record{
		ClaimID:    res.ClaimID,
		Claim:      logging.Truncate(res.Input.OriginalText, 4096),
		Language:   res.Input.Language,
		Verdict:    string(res.Verdict),
		Confidence: res.Confidence,
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		log.Printf("history: append %s: %v", res.ClaimID, err)
	}
}

// Recent returns the latest records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	var out []Record
	err := s.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&out).Error
	return out, err
}
