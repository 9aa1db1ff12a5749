package essay_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"promptbase/internal/db"
	"promptbase/internal/engagement"
	"promptbase/internal/essay"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// each in-memory connection is its own database
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrateAndIndexes(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func validInput() essay.CreateInput {
	return essay.CreateInput{
		Title:   "Finding my voice in a debate club",
		College: "Yale",
		Prompt:  "Describe a challenge you overcame.",
		Major:   "Political Science",
		Content: strings.Repeat("I learned to listen before I argued. ", 5),
		Year:    2023,
	}
}

func TestCreateSetsDerivedFields(t *testing.T) {
	gdb := newTestDB(t)
	svc := &essay.Service{DB: gdb}
	ctx := context.Background()

	in := validInput()
	e, err := svc.Create(ctx, 7, "writer@example.com", in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if e.ID == uuid.Nil {
		t.Fatal("id not assigned")
	}
	if e.UserID == nil || *e.UserID != 7 {
		t.Fatalf("user id = %v, want 7", e.UserID)
	}
	if e.Verified {
		t.Fatal("new essay must not be verified")
	}
	if want := essay.WordCount(in.Content); e.WordCount != want {
		t.Fatalf("word count = %d, want %d", e.WordCount, want)
	}
	if e.AuthorName == nil || *e.AuthorName != "writer@example.com" {
		t.Fatalf("author name = %v, want session email", e.AuthorName)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	gdb := newTestDB(t)
	svc := &essay.Service{DB: gdb}

	_, err := svc.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, essay.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestUpdateRejectsNonOwner(t *testing.T) {
	gdb := newTestDB(t)
	svc := &essay.Service{DB: gdb}
	ctx := context.Background()

	e, err := svc.Create(ctx, 7, "writer@example.com", validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	title := "A stranger's rewrite"
	if _, err := svc.Update(ctx, e.ID, 8, essay.UpdateInput{Title: &title}); !errors.Is(err, essay.ErrNotOwner) {
		t.Fatalf("non-owner update: got %v, want ErrNotOwner", err)
	}

	got, err := svc.GetByID(ctx, e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != e.Title {
		t.Fatalf("title changed to %q by non-owner", got.Title)
	}
}

func TestUpdateRecomputesWordCount(t *testing.T) {
	gdb := newTestDB(t)
	svc := &essay.Service{DB: gdb}
	ctx := context.Background()

	e, err := svc.Create(ctx, 7, "writer@example.com", validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	content := strings.Repeat("Rewritten after feedback from my mentor. ", 5)
	got, err := svc.Update(ctx, e.ID, 7, essay.UpdateInput{Content: &content})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if want := essay.WordCount(content); got.WordCount != want {
		t.Fatalf("word count = %d, want %d", got.WordCount, want)
	}
}

func TestDeleteRejectsNonOwner(t *testing.T) {
	gdb := newTestDB(t)
	svc := &essay.Service{DB: gdb}
	ctx := context.Background()

	e, err := svc.Create(ctx, 7, "writer@example.com", validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, e.ID, 8); !errors.Is(err, essay.ErrNotOwner) {
		t.Fatalf("non-owner delete: got %v, want ErrNotOwner", err)
	}
	if _, err := svc.GetByID(ctx, e.ID); err != nil {
		t.Fatalf("essay gone after rejected delete: %v", err)
	}
}

func TestDeleteCascadesEngagement(t *testing.T) {
	gdb := newTestDB(t)
	svc := &essay.Service{DB: gdb}
	engSvc := &engagement.Service{DB: gdb}
	ctx := context.Background()

	e, err := svc.Create(ctx, 7, "writer@example.com", validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := engSvc.Like(ctx, 8, e.ID); err != nil {
		t.Fatalf("like: %v", err)
	}
	if err := engSvc.Save(ctx, 8, e.ID); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := svc.Delete(ctx, e.ID, 7); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.GetByID(ctx, e.ID); !errors.Is(err, essay.ErrNotFound) {
		t.Fatalf("get after delete: got %v, want ErrNotFound", err)
	}
	var likes, saved int64
	if err := gdb.Model(&engagement.Like{}).Where("essay_id = ?", e.ID).Count(&likes).Error; err != nil {
		t.Fatalf("count likes: %v", err)
	}
	if err := gdb.Model(&engagement.SavedEssay{}).Where("essay_id = ?", e.ID).Count(&saved).Error; err != nil {
		t.Fatalf("count saved: %v", err)
	}
	if likes != 0 || saved != 0 {
		t.Fatalf("engagement rows survive delete: likes=%d saved=%d", likes, saved)
	}
}
