package member

import (
	"time"

	"github.com/ifclub/ifclub-api/internal/model"
)

const birthDateLayout = "2006-01-02"

type SignupRequest struct {
	Email       string `json:"email" binding:"required,email,max=255"`
	Password    string `json:"password" binding:"required,min=6,max=64,bcryptlen"`
	Name        string `json:"name" binding:"required,min=1,max=20"`
	StudentID   string `json:"studentId" binding:"omitempty,numeric,max=20"`
	PhoneNumber string `json:"phoneNumber" binding:"omitempty,phone"`
	BirthDate   string `json:"birthDate" binding:"omitempty,datetime=2006-01-02"`
	Gender      string `json:"gender" binding:"omitempty,oneof=MALE FEMALE OTHER"`
	MBTI        string `json:"mbti" binding:"omitempty,mbti"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// UpdateProfileRequest is a partial update: nil fields are left untouched
type UpdateProfileRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=20"`
	StudentID   *string `json:"studentId" binding:"omitempty,numeric,max=20"`
	PhoneNumber *string `json:"phoneNumber" binding:"omitempty,phone"`
	Email       *string `json:"email" binding:"omitempty,email,max=255"`
}

// MemberResponse is the public projection of a member. It never carries the password hash.
type MemberResponse struct {
	ID                   uint64    `json:"id"`
	Email                string    `json:"email"`
	Name                 string    `json:"name"`
	StudentID            string    `json:"studentId,omitempty"`
	PhoneNumber          string    `json:"phoneNumber,omitempty"`
	BirthDate            string    `json:"birthDate,omitempty"`
	Gender               string    `json:"gender,omitempty"`
	MBTI                 string    `json:"mbti,omitempty"`
	ProfileImageURL      *string   `json:"profileImageUrl"`
	Role                 string    `json:"role"`
	Status               string    `json:"status"`
	TotalScore           int       `json:"totalScore"`
	TotalRegressionCount int       `json:"totalRegressionCount"`
	GameProgress         string    `json:"gameProgress"`
	CreatedAt            time.Time `json:"createdAt"`
}

type LoginResponse struct {
	AccessToken  string         `json:"accessToken"`
	RefreshToken string         `json:"refreshToken"`
	Member       MemberResponse `json:"member"`
}

func NewMemberResponse(m *model.Member) MemberResponse {
	resp := MemberResponse{
		ID:                   m.ID,
		Email:                m.Email,
		Name:                 m.Name,
		StudentID:            m.StudentID,
		PhoneNumber:          m.PhoneNumber,
		Gender:               string(m.Gender),
		MBTI:                 m.MBTI,
		ProfileImageURL:      m.ProfileImageURL,
		Role:                 string(m.Role),
		Status:               string(m.Status),
		TotalScore:           m.TotalScore,
		TotalRegressionCount: m.TotalRegressionCount,
		GameProgress:         string(m.GameProgress),
		CreatedAt:            m.CreatedAt,
	}
	if m.BirthDate != nil {
		resp.BirthDate = time.Time(*m.BirthDate).Format(birthDateLayout)
	}
	return resp
}
