package essay

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("essay not found")
	ErrNotOwner = errors.New("not the essay owner")
)

type Service struct {
	DB *gorm.DB
}

// List returns essays newest-first. Query fields, when set, are pushed down
// to the store; clients may still re-filter the result locally.
func (s *Service) List(ctx context.Context, q Query) ([]Essay, error) {
	db := s.DB.WithContext(ctx).Model(&Essay{})

	if !wildcard(q.College, AllColleges) {
		db = db.Where("college = ?", q.College)
	}
	if !wildcard(q.Prompt, AllPrompts) {
		db = db.Where("prompt = ?", q.Prompt)
	}
	if !wildcard(q.Major, AllMajors) {
		db = db.Where("major = ?", q.Major)
	}
	if term := strings.TrimSpace(q.Search); term != "" {
		pat := "%" + term + "%"
		db = db.Where("title ILIKE ? OR content ILIKE ?", pat, pat)
	}

	var rows []Essay
	if err := db.Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Essay, error) {
	var e Essay
	err := s.DB.WithContext(ctx).Where("id = ?", id).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// ListByUser returns the essays owned by userID, newest-first.
func (s *Service) ListByUser(ctx context.Context, userID uint64) ([]Essay, error) {
	var rows []Essay
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// resolveAuthorName picks the display name for a new essay: the supplied
// name wins, then the submitter's email, then "Anonymous".
func resolveAuthorName(supplied *string, email string) string {
	if supplied != nil && strings.TrimSpace(*supplied) != "" {
		return strings.TrimSpace(*supplied)
	}
	if email != "" {
		return email
	}
	return "Anonymous"
}

// Create stores a new essay owned by userID. Submission requires a session;
// verified always starts false regardless of input.
func (s *Service) Create(ctx context.Context, userID uint64, email string, in CreateInput) (*Essay, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	name := resolveAuthorName(in.AuthorName, email)
	e := Essay{
		UserID:     &userID,
		Title:      strings.TrimSpace(in.Title),
		College:    strings.TrimSpace(in.College),
		Prompt:     strings.TrimSpace(in.Prompt),
		Major:      strings.TrimSpace(in.Major),
		Content:    in.Content,
		WordCount:  WordCount(in.Content),
		Year:       in.Year,
		Verified:   false,
		AuthorName: &name,
	}
	if email != "" {
		e.AuthorEmail = &email
	}

	if err := s.DB.WithContext(ctx).Create(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// Update applies a partial edit. Only the owner may edit; word_count is
// recomputed whenever content changes.
func (s *Service) Update(ctx context.Context, id uuid.UUID, userID uint64, in UpdateInput) (*Essay, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	e, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.UserID == nil || *e.UserID != userID {
		return nil, ErrNotOwner
	}

	if in.Title != nil {
		e.Title = strings.TrimSpace(*in.Title)
	}
	if in.College != nil {
		e.College = strings.TrimSpace(*in.College)
	}
	if in.Prompt != nil {
		e.Prompt = strings.TrimSpace(*in.Prompt)
	}
	if in.Major != nil {
		e.Major = strings.TrimSpace(*in.Major)
	}
	if in.Content != nil {
		e.Content = *in.Content
		e.WordCount = WordCount(*in.Content)
	}
	if in.Year != nil {
		e.Year = *in.Year
	}

	if err := s.DB.WithContext(ctx).Save(e).Error; err != nil {
		return nil, err
	}
	return e, nil
}

// Delete removes an essay and its like and bookmark rows in one transaction,
// so a failed essay delete never leaves the relations half-gone.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, userID uint64) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var e Essay
		if err := tx.Where("id = ?", id).First(&e).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if e.UserID == nil || *e.UserID != userID {
			return ErrNotOwner
		}

		if err := tx.Exec(`delete from likes where essay_id = ?`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`delete from saved_essays where essay_id = ?`, id).Error; err != nil {
			return err
		}
		return tx.Delete(&e).Error
	})
}
