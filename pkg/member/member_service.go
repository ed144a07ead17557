package member

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sorteat-backend/domain"
	"sorteat-backend/entities"
	"sorteat-backend/pkg/jwt"
)

type (
	MemberService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, memberID string) (domain.MemberResponse, error)
	}

	memberService struct {
		memberRepository MemberRepository
		jwtService       jwt.JWTService
	}
)

func NewMemberService(memberRepository MemberRepository, jwtService jwt.JWTService) MemberService {
	return &memberService{
		memberRepository: memberRepository,
		jwtService:       jwtService,
	}
}

func (s *memberService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.memberRepository.GetMemberByEmail(ctx, req.Email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	var household *entities.Household
	if req.InviteCode != "" {
		found, err := s.memberRepository.GetHouseholdByInviteCode(ctx, req.InviteCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.RegisterResponse{}, domain.ErrInviteCodeInvalid
			}
			return domain.RegisterResponse{}, err
		}
		household = found
	} else {
		if req.HouseholdName == "" {
			return domain.RegisterResponse{}, domain.ErrHouseholdNameMissing
		}
		household = &entities.Household{
			ID:         uuid.New(),
			Name:       req.HouseholdName,
			InviteCode: newInviteCode(),
		}
		if err := s.memberRepository.CreateHousehold(ctx, household); err != nil {
			return domain.RegisterResponse{}, err
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	member := &entities.Member{
		ID:          uuid.New(),
		HouseholdID: household.ID,
		Name:        req.Name,
		Email:       req.Email,
		Password:    string(hashed),
	}

	if err := s.memberRepository.CreateMember(ctx, member); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{
		ID:          member.ID.String(),
		Name:        member.Name,
		Email:       member.Email,
		HouseholdID: household.ID.String(),
		InviteCode:  household.InviteCode,
	}, nil
}

func (s *memberService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	member, err := s.memberRepository.GetMemberByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenMember(member.ID.String(), member.HouseholdID.String())
	return domain.LoginResponse{Token: token}, nil
}

func (s *memberService) Me(ctx context.Context, memberID string) (domain.MemberResponse, error) {
	member, err := s.memberRepository.GetMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MemberResponse{}, domain.ErrMemberNotFound
		}
		return domain.MemberResponse{}, err
	}

	household, err := s.memberRepository.GetHouseholdByID(ctx, member.HouseholdID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MemberResponse{}, domain.ErrHouseholdNotFound
		}
		return domain.MemberResponse{}, err
	}

	return domain.MemberResponse{
		ID:          member.ID.String(),
		Name:        member.Name,
		Email:       member.Email,
		Avatar:      member.Avatar,
		HouseholdID: household.ID.String(),
		Household:   household.Name,
		InviteCode:  household.InviteCode,
	}, nil
}

func newInviteCode() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return uuid.New().String()[:8]
	}
	return hex.EncodeToString(buf)
}
