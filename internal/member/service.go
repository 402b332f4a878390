package member

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ifclub/ifclub-api/internal/auth"
	"github.com/ifclub/ifclub-api/internal/model"
	"github.com/ifclub/ifclub-api/internal/shared/logger"
	"gorm.io/datatypes"
)

// PasswordHasher is the one-way credential service
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenIssuer mints session tokens. IssueRefreshToken persists the token on the member.
type TokenIssuer interface {
	IssueAccessToken(member *model.Member) (string, error)
	IssueRefreshToken(ctx context.Context, member *model.Member) (string, error)
	ParseRefreshToken(refreshToken string) (uint64, error)
}

type MemberService struct {
	store       Store
	hasher      PasswordHasher
	tokenIssuer TokenIssuer
}

func NewMemberService(store Store, hasher PasswordHasher, tokenIssuer TokenIssuer) *MemberService {
	return &MemberService{
		store:       store,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
	}
}

func (s *MemberService) Register(ctx context.Context, request *SignupRequest) (*MemberResponse, error) {
	log := logger.FromContext(ctx)
	email := normalizeEmail(request.Email)

	existing, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		log.Error("Failed to check member existence", "error", err)
		return nil, fmt.Errorf("check member existence: %w", err)
	}
	if existing != nil {
		log.Warn("Member already exists", "email", logger.MaskEmail(email))
		return nil, fmt.Errorf("signup: %w", ErrDuplicateEmail)
	}

	birthDate, err := parseBirthDate(request.BirthDate)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := s.hasher.Hash(request.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			log.Warn("Password too long", "email", logger.MaskEmail(email))
			return nil, fmt.Errorf("signup: %w", err)
		}
		log.Error("Failed to hash password", "error", err)
		return nil, fmt.Errorf("hash password: %w", err)
	}

	member := model.NewMember(model.NewMemberParams{
		Email:        email,
		PasswordHash: hashedPassword,
		Name:         request.Name,
		StudentID:    request.StudentID,
		PhoneNumber:  request.PhoneNumber,
		BirthDate:    birthDate,
		Gender:       model.Gender(request.Gender),
		MBTI:         strings.ToUpper(request.MBTI),
	})

	if err := s.store.Create(ctx, member); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			log.Warn("Member already exists", "email", logger.MaskEmail(email))
			return nil, fmt.Errorf("signup: %w", err)
		}
		log.Error("Failed to create member", "error", err)
		return nil, fmt.Errorf("create member: %w", err)
	}

	log.Info("Member created successfully", "member_id", member.ID, "email", logger.MaskEmail(email))

	response := NewMemberResponse(member)
	return &response, nil
}

func (s *MemberService) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	log := logger.FromContext(ctx)
	email := normalizeEmail(request.Email)

	// 1. Find member by email
	member, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		log.Error("로그인 실패 - 알 수 없는 오류", "error", err)
		return nil, fmt.Errorf("로그인 실패: %w", err)
	}
	if member == nil {
		log.Warn("로그인 실패 - member email not found", "email", logger.MaskEmail(email))
		return nil, fmt.Errorf("login: %w", auth.ErrAccountNotFound)
	}

	// 2. Validate password
	if !s.hasher.Verify(request.Password, member.Password) {
		log.Warn("로그인 실패 - invalid password", "email", logger.MaskEmail(email))
		return nil, fmt.Errorf("login: %w", auth.ErrInvalidCredentials)
	}

	// 3. Issue tokens; the refresh token is persisted before returning
	response, err := s.issueTokens(ctx, member)
	if err != nil {
		return nil, err
	}

	log.Info("로그인 성공", "member_id", member.ID, "email", logger.MaskEmail(email))
	return response, nil
}

// Refresh rotates the refresh token. Only the most recently issued token is accepted.
func (s *MemberService) Refresh(ctx context.Context, request *RefreshRequest) (*LoginResponse, error) {
	log := logger.FromContext(ctx)

	memberID, err := s.tokenIssuer.ParseRefreshToken(request.RefreshToken)
	if err != nil {
		log.Warn("토큰 재발급 실패 - invalid refresh token", "token", logger.MaskToken(request.RefreshToken))
		return nil, fmt.Errorf("refresh: %w", auth.ErrInvalidRefreshToken)
	}

	member, err := s.store.FindByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			log.Warn("토큰 재발급 실패 - member not found", "member_id", memberID)
			return nil, fmt.Errorf("refresh: %w", auth.ErrInvalidRefreshToken)
		}
		return nil, fmt.Errorf("refresh: %w", err)
	}

	if member.RefreshToken == nil ||
		subtle.ConstantTimeCompare([]byte(*member.RefreshToken), []byte(request.RefreshToken)) != 1 {
		log.Warn("토큰 재발급 실패 - refresh token mismatch", "member_id", memberID)
		return nil, fmt.Errorf("refresh: %w", auth.ErrInvalidRefreshToken)
	}

	response, err := s.issueTokens(ctx, member)
	if err != nil {
		return nil, err
	}

	log.Info("토큰 재발급 성공", "member_id", member.ID)
	return response, nil
}

func (s *MemberService) issueTokens(ctx context.Context, member *model.Member) (*LoginResponse, error) {
	log := logger.FromContext(ctx)

	accessToken, err := s.tokenIssuer.IssueAccessToken(member)
	if err != nil {
		log.Error("access token 생성 실패", "error", err)
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	refreshToken, err := s.tokenIssuer.IssueRefreshToken(ctx, member)
	if err != nil {
		log.Error("refresh token 생성 실패", "error", err)
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Member:       NewMemberResponse(member),
	}, nil
}

func (s *MemberService) GetByID(ctx context.Context, id uint64) (*MemberResponse, error) {
	member, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("회원 조회 실패: %w", err)
	}

	response := NewMemberResponse(member)
	return &response, nil
}

func (s *MemberService) ListAll(ctx context.Context) ([]MemberResponse, error) {
	members, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("회원 목록 조회 실패: %w", err)
	}

	responses := make([]MemberResponse, 0, len(members))
	for i := range members {
		responses = append(responses, NewMemberResponse(&members[i]))
	}
	return responses, nil
}

// UpdateProfile applies only the fields present in request. Concurrent updates
// of the same member are last-write-wins.
func (s *MemberService) UpdateProfile(ctx context.Context, id uint64, request *UpdateProfileRequest) (*MemberResponse, error) {
	log := logger.FromContext(ctx)

	member, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("회원 수정 실패: %w", err)
	}

	if request.Email != nil {
		email := normalizeEmail(*request.Email)
		if email != member.Email {
			other, err := s.store.FindByEmail(ctx, email)
			if err != nil {
				return nil, fmt.Errorf("check member existence: %w", err)
			}
			if other != nil && other.ID != member.ID {
				log.Warn("회원 수정 실패 - email already in use", "member_id", id, "email", logger.MaskEmail(email))
				return nil, fmt.Errorf("update member: %w", ErrDuplicateEmail)
			}
		}
		member.Email = email
	}
	if request.Name != nil {
		member.Name = *request.Name
	}
	if request.StudentID != nil {
		member.StudentID = *request.StudentID
	}
	if request.PhoneNumber != nil {
		member.PhoneNumber = *request.PhoneNumber
	}

	if err := s.store.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("회원 수정 실패: %w", err)
	}

	log.Info("회원 정보 수정 완료", "member_id", id)

	response := NewMemberResponse(member)
	return &response, nil
}

// Delete succeeds whether or not the member exists
func (s *MemberService) Delete(ctx context.Context, id uint64) error {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("회원 삭제 실패: %w", err)
	}

	logger.FromContext(ctx).Info("회원 삭제 완료", "member_id", id)
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func parseBirthDate(value string) (*datatypes.Date, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(birthDateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("birthDate=%q: %w", value, ErrInvalidBirthDate)
	}
	date := datatypes.Date(t)
	return &date, nil
}
