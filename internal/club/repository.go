package club

import (
	"context"
	"errors"
	"fmt"

	"github.com/ifclub/ifclub-api/internal/model"
	"gorm.io/gorm"
)

type ClubRepository struct {
	db *gorm.DB
}

func NewClubRepository(db *gorm.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) FindByID(ctx context.Context, id uint64) (*model.Club, error) {
	var club model.Club
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&club).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("clubID=%d: %w", id, ErrClubNotFound)
		}
		return nil, fmt.Errorf("find club by id: %w", err)
	}
	return &club, nil
}
