package member

import (
	"context"
	"errors"
	"fmt"

	"github.com/ifclub/ifclub-api/internal/model"
	"github.com/ifclub/ifclub-api/internal/shared/database"
	"gorm.io/gorm"
)

// MemberRepository is the GORM Store
type MemberRepository struct {
	db *gorm.DB
}

var _ Store = (*MemberRepository)(nil)

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create checks the email and inserts in one transaction. A concurrent insert
// that slips past the check is rejected by idx_member_email.
func (m *MemberRepository) Create(ctx context.Context, member *model.Member) error {
	err := database.WithTransaction(ctx, m.db, func(tx *gorm.DB) error {
		exists, err := m.isExist(tx, member.Email)
		if err != nil {
			return fmt.Errorf("check member existence: %w", err)
		}
		if exists {
			return ErrDuplicateEmail
		}
		return tx.Create(member).Error
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrDuplicateEmail), database.IsDuplicateKeyError(err):
		return fmt.Errorf("create member: %w", ErrDuplicateEmail)
	default:
		return fmt.Errorf("create member: %w", err)
	}
}

func (m *MemberRepository) isExist(tx *gorm.DB, email string) (bool, error) {
	var count int64
	err := tx.Model(&model.Member{}).
		Where("email = ?", email).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (m *MemberRepository) FindByID(ctx context.Context, id uint64) (*model.Member, error) {
	var member model.Member
	err := m.db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("memberID=%d: %w", id, ErrMemberNotFound)
		}
		return nil, fmt.Errorf("find member by id: %w", err)
	}
	return &member, nil
}

func (m *MemberRepository) FindByEmail(ctx context.Context, email string) (*model.Member, error) {
	var members []model.Member
	err := m.db.WithContext(ctx).Where("email = ?", email).Limit(1).Find(&members).Error
	if err != nil {
		return nil, fmt.Errorf("find member by email: %w", err)
	}
	if len(members) == 0 {
		return nil, nil
	}
	return &members[0], nil
}

func (m *MemberRepository) FindAll(ctx context.Context) ([]model.Member, error) {
	members := []model.Member{}
	if err := m.db.WithContext(ctx).Order("id").Find(&members).Error; err != nil {
		return nil, fmt.Errorf("find members: %w", err)
	}
	return members, nil
}

func (m *MemberRepository) DeleteByID(ctx context.Context, id uint64) error {
	if err := m.db.WithContext(ctx).Delete(&model.Member{}, id).Error; err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	return nil
}

// Update is last-write-wins; callers load the member first.
// refresh_token is owned by UpdateRefreshToken and never written here.
func (m *MemberRepository) Update(ctx context.Context, member *model.Member) error {
	result := m.db.WithContext(ctx).
		Model(member).
		Select("*").
		Omit("id", "created_at", "refresh_token").
		Updates(member)
	if result.Error != nil {
		if database.IsDuplicateKeyError(result.Error) {
			return fmt.Errorf("update member id=%d: %w", member.ID, ErrDuplicateEmail)
		}
		return fmt.Errorf("update member: %w", result.Error)
	}
	// updated_at always changes, so zero rows means the member is gone
	if result.RowsAffected == 0 {
		return fmt.Errorf("memberID=%d: %w", member.ID, ErrMemberNotFound)
	}
	return nil
}

func (m *MemberRepository) UpdateRefreshToken(ctx context.Context, id uint64, refreshToken string) error {
	result := m.db.WithContext(ctx).
		Model(&model.Member{}).
		Where("id = ?", id).
		Update("refresh_token", refreshToken)
	if result.Error != nil {
		return fmt.Errorf("update refresh token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("memberID=%d: %w", id, ErrMemberNotFound)
	}
	return nil
}
