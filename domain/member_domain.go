package domain

import (
	"errors"
)

var (
	MessageSuccessRegister  = "member registered successfully"
	MessageSuccessLogin     = "login successful"
	MessageSuccessGetMember = "member retrieved successfully"

	MessageFailedRegister  = "failed to register member"
	MessageFailedLogin     = "failed to login"
	MessageFailedGetMember = "failed to retrieve member"

	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrCredentialsInvalid   = errors.New("invalid email or password")
	ErrMemberNotFound       = errors.New("member not found")
	ErrHouseholdNotFound    = errors.New("household not found")
	ErrInviteCodeInvalid    = errors.New("invalid invite code")
	ErrHouseholdNameMissing = errors.New("household name required when not joining")
)

type (
	RegisterRequest struct {
		Name          string `json:"name" validate:"required"`
		Email         string `json:"email" validate:"required,email"`
		Password      string `json:"password" validate:"required,min=8"`
		HouseholdName string `json:"household_name" validate:"omitempty"`
		InviteCode    string `json:"invite_code" validate:"omitempty"`
	}

	RegisterResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Email       string `json:"email"`
		HouseholdID string `json:"household_id"`
		InviteCode  string `json:"invite_code"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}

	MemberResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Email       string `json:"email"`
		Avatar      string `json:"avatar,omitempty"`
		HouseholdID string `json:"household_id"`
		Household   string `json:"household"`
		InviteCode  string `json:"invite_code"`
	}
)
