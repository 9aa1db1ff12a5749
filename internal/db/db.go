package db

import (
	"fmt"

	"promptbase/internal/auth"
	"promptbase/internal/engagement"
	"promptbase/internal/essay"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	// Tables
	if err := gdb.AutoMigrate(
		&auth.User{},
		&essay.Essay{},
		&engagement.Like{},
		&engagement.SavedEssay{},
	); err != nil {
		return err
	}

	// A user likes or saves a given essay at most once. The unique indexes
	// are the real guard against duplicate toggles; application pre-checks
	// only shape the error.
	if err := gdb.Exec(`create unique index if not exists uq_likes_user_essay on likes(user_id, essay_id);`).Error; err != nil {
		return err
	}
	if err := gdb.Exec(`create unique index if not exists uq_saved_user_essay on saved_essays(user_id, essay_id);`).Error; err != nil {
		return err
	}

	// Newest-first listing
	s := `create index if not exists idx_essays_created on essays(created_at desc);`
	if err := gdb.Exec(s).Error; err != nil {
		return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
	}

	return nil
}
