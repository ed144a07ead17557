package jwt

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"sorteat-backend/domain"
	"sorteat-backend/internal/utils"
)

type (
	JWTService interface {
		GenerateTokenMember(memberID string, householdID string) string
		ValidateTokenMember(token string) (*jwt.Token, error)
		GetMemberIDByToken(token string) (string, string, error)
	}

	jwtMemberClaim struct {
		MemberID    string `json:"member_id"`
		HouseholdID string `json:"household_id"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func getSecretKey() string {
	utils.LoadConfig()
	secretKey := utils.GetConfig("JWT_SECRET")
	return secretKey
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: getSecretKey(),
		issuer:    "SORTEAT",
	}
}

func (j *jwtService) GenerateTokenMember(memberID string, householdID string) string {
	claims := jwtMemberClaim{
		memberID,
		householdID,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute * 120)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tx, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		log.Println(err)
	}
	return tx
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateTokenMember(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtMemberClaim{}, j.parseToken)
}

func (j *jwtService) GetMemberIDByToken(token string) (string, string, error) {
	t_Token, err := j.ValidateTokenMember(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", domain.ErrTokenExpired
		}
		return "", "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtMemberClaim)
	return claims.MemberID, claims.HouseholdID, nil
}
