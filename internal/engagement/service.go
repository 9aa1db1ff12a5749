package engagement

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"promptbase/internal/essay"
)

var ErrAlreadyLiked = errors.New("already liked")

type Service struct {
	DB *gorm.DB
}

// Like records userID liking essayID. The essay must exist. A second like
// for the same pair fails with ErrAlreadyLiked; the unique index backstops
// the pre-check under concurrent clicks.
func (s *Service) Like(ctx context.Context, userID uint64, essayID uuid.UUID) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := essayExists(tx, essayID); err != nil {
			return err
		}
		var n int64
		if err := tx.Model(&Like{}).
			Where("user_id = ? AND essay_id = ?", userID, essayID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrAlreadyLiked
		}
		return tx.Create(&Like{UserID: userID, EssayID: essayID}).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyLiked
	}
	return err
}

func essayExists(tx *gorm.DB, essayID uuid.UUID) error {
	var n int64
	if err := tx.Model(&essay.Essay{}).Where("id = ?", essayID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return essay.ErrNotFound
	}
	return nil
}

// Unlike removes the like if present; absent is a no-op, not an error.
func (s *Service) Unlike(ctx context.Context, userID uint64, essayID uuid.UUID) error {
	return s.DB.WithContext(ctx).
		Where("user_id = ? AND essay_id = ?", userID, essayID).
		Delete(&Like{}).Error
}

func (s *Service) LikeCount(ctx context.Context, essayID uuid.UUID) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&Like{}).
		Where("essay_id = ?", essayID).
		Count(&n).Error
	return n, err
}

func (s *Service) IsLiked(ctx context.Context, userID uint64, essayID uuid.UUID) (bool, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&Like{}).
		Where("user_id = ? AND essay_id = ?", userID, essayID).
		Count(&n).Error
	return n > 0, err
}

// Save bookmarks an essay. The essay must exist. Saving twice is harmless:
// the insert is an on-conflict no-op against the composite unique index.
func (s *Service) Save(ctx context.Context, userID uint64, essayID uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := essayExists(tx, essayID); err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&SavedEssay{UserID: userID, EssayID: essayID}).Error
	})
}

func (s *Service) Unsave(ctx context.Context, userID uint64, essayID uuid.UUID) error {
	return s.DB.WithContext(ctx).
		Where("user_id = ? AND essay_id = ?", userID, essayID).
		Delete(&SavedEssay{}).Error
}

func (s *Service) IsSaved(ctx context.Context, userID uint64, essayID uuid.UUID) (bool, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&SavedEssay{}).
		Where("user_id = ? AND essay_id = ?", userID, essayID).
		Count(&n).Error
	return n > 0, err
}

// Status bundles the per-card engagement state. userID may be nil for
// anonymous viewers, who only get the count.
type Status struct {
	Likes int64 `json:"likes"`
	Liked bool  `json:"liked"`
	Saved bool  `json:"saved"`
}

func (s *Service) Status(ctx context.Context, userID *uint64, essayID uuid.UUID) (Status, error) {
	var st Status
	var err error

	st.Likes, err = s.LikeCount(ctx, essayID)
	if err != nil {
		return st, err
	}
	if userID == nil {
		return st, nil
	}

	st.Liked, err = s.IsLiked(ctx, *userID, essayID)
	if err != nil {
		return st, err
	}
	st.Saved, err = s.IsSaved(ctx, *userID, essayID)
	return st, err
}

// ListLiked returns the essays userID has liked, most recently liked first.
func (s *Service) ListLiked(ctx context.Context, userID uint64) ([]essay.Essay, error) {
	var rows []essay.Essay
	err := s.DB.WithContext(ctx).Raw(`
select essays.*
from essays
join likes on likes.essay_id = essays.id
where likes.user_id = ?
order by likes.created_at desc
`, userID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListSaved returns the essays userID has bookmarked, most recent first.
func (s *Service) ListSaved(ctx context.Context, userID uint64) ([]essay.Essay, error) {
	var rows []essay.Essay
	err := s.DB.WithContext(ctx).Raw(`
select essays.*
from essays
join saved_essays on saved_essays.essay_id = essays.id
where saved_essays.user_id = ?
order by saved_essays.created_at desc
`, userID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
