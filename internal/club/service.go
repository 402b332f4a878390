package club

import (
	"context"
	"fmt"

	"github.com/ifclub/ifclub-api/internal/model"
)

type Finder interface {
	FindByID(ctx context.Context, id uint64) (*model.Club, error)
}

type ClubResponse struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

type ClubService struct {
	finder Finder
}

func NewClubService(finder Finder) *ClubService {
	return &ClubService{finder: finder}
}

func (s *ClubService) GetByID(ctx context.Context, id uint64) (*ClubResponse, error) {
	club, err := s.finder.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("동아리 조회 실패: %w", err)
	}

	return &ClubResponse{
		ID:          club.ID,
		Name:        club.Name,
		Description: club.Description,
		ImageURL:    club.ImageURL,
	}, nil
}
