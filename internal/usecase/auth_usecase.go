package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"appointment-booking-service/internal/delivery/dto"
	"appointment-booking-service/pkg/credentials"
	"appointment-booking-service/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, username, tokenID string) error
}

type authUsecase struct {
	log         *logrus.Logger
	credentials credentials.Store
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthUsecase(
	log *logrus.Logger,
	credentials credentials.Store,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		log:         log,
		credentials: credentials,
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

// SessionKey builds the redis key under which an issued session token is
// recorded. A token missing from redis is treated as revoked.
func SessionKey(username, tokenID string) string {
	return fmt.Sprintf("session:%s:%s", username, tokenID)
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if !u.credentials.Verify(req.Username, req.Password) {
		u.log.Warnf("Failed admin login attempt for username %q", req.Username)
		return nil, ErrInvalidCredentials
	}

	token, tokenID, err := u.jwtService.GenerateSessionToken(req.Username)
	if err != nil {
		u.log.Errorf("Failed to generate session token: %+v", err)
		return nil, err
	}

	expiry := u.jwtService.GetSessionExpiry()
	if err := u.redisClient.Set(ctx, SessionKey(req.Username, tokenID), "1", expiry).Err(); err != nil {
		u.log.Errorf("Failed to store session: %+v", err)
		return nil, err
	}

	u.log.Infof("Admin session created for %s", req.Username)
	return &dto.TokenResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(expiry),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, username, tokenID string) error {
	if err := u.redisClient.Del(ctx, SessionKey(username, tokenID)).Err(); err != nil {
		u.log.Warnf("Failed to revoke session: %+v", err)
		return err
	}

	u.log.Infof("Admin session revoked for %s", username)
	return nil
}
