package model

import (
	"gorm.io/datatypes"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

type GameProgress string

const (
	GameProgressNotStarted GameProgress = "NOT_STARTED"
	GameProgressInProgress GameProgress = "IN_PROGRESS"
	GameProgressCompleted  GameProgress = "COMPLETED"
)

// Member represents a club user account
type Member struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`

	// Credentials
	Email    string `gorm:"column:email;type:VARCHAR(255);not null;uniqueIndex:idx_member_email"` // 이메일 (unique)
	Password string `gorm:"column:password;type:VARCHAR(60);not null" json:"-"`                   // bcrypt 해시

	// Profile
	Name            string          `gorm:"column:name;type:VARCHAR(100);not null"` // 캐릭터 이름
	StudentID       string          `gorm:"column:student_id;type:VARCHAR(20)"`
	PhoneNumber     string          `gorm:"column:phone_number;type:VARCHAR(20)"`
	BirthDate       *datatypes.Date `gorm:"column:birth_date"`
	Gender          Gender          `gorm:"column:gender;type:VARCHAR(10)"`
	MBTI            string          `gorm:"column:mbti;type:VARCHAR(4)"`
	ProfileImageURL *string         `gorm:"column:profile_image_url;type:VARCHAR(500)"`

	// Account state
	Role   Role   `gorm:"column:role;type:VARCHAR(20);not null"`
	Status Status `gorm:"column:status;type:VARCHAR(20);not null"`

	// Game state
	TotalScore           int          `gorm:"column:total_score;not null;default:0"`
	TotalRegressionCount int          `gorm:"column:total_regression_count;not null;default:0"`
	GameProgress         GameProgress `gorm:"column:game_progress;type:VARCHAR(20);not null"`

	// Session
	RefreshToken *string `gorm:"column:refresh_token;type:VARCHAR(1000)" json:"-"`

	BaseEntity
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "member"
}

// NewMemberParams holds the caller-supplied fields of a new member.
// PasswordHash must already be hashed.
type NewMemberParams struct {
	Email        string
	PasswordHash string
	Name         string
	StudentID    string
	PhoneNumber  string
	BirthDate    *datatypes.Date
	Gender       Gender
	MBTI         string
}

// NewMember is the only place new-member defaults are decided.
func NewMember(p NewMemberParams) *Member {
	return &Member{
		Email:                p.Email,
		Password:             p.PasswordHash,
		Name:                 p.Name,
		StudentID:            p.StudentID,
		PhoneNumber:          p.PhoneNumber,
		BirthDate:            p.BirthDate,
		Gender:               p.Gender,
		MBTI:                 p.MBTI,
		ProfileImageURL:      nil,
		Role:                 RoleUser,
		Status:               StatusActive,
		TotalScore:           0,
		TotalRegressionCount: 0,
		GameProgress:         GameProgressNotStarted,
		RefreshToken:         nil,
	}
}
