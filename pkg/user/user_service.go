package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"Eco-Earn-Backend/domain"
	"Eco-Earn-Backend/entities"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*domain.RegisterResponse, error)
		Me(ctx context.Context) (*entities.User, error)
	}

	userService struct {
		userRepository UserRepository
	}
)

func NewUserService(userRepository UserRepository) UserService {
	return &userService{
		userRepository: userRepository,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.RegisterResponse, error) {
	existing, err := s.userRepository.GetUser(ctx)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	now := time.Now()
	user := &entities.User{
		ID:                 uuid.New().String(),
		Name:               req.Name,
		Email:              req.Email,
		WalletBalance:      domain.WelcomeBonus,
		TotalEarnings:      0,
		PlantsGrown:        0,
		EnvironmentalScore: 0,
		ConsecutiveStreak:  0,
		Badges:             []entities.Badge{},
		JoinedDate:         now,
	}

	welcome := entities.Transaction{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		Type:        entities.TransactionReward,
		Amount:      domain.WelcomeBonus,
		Description: "Welcome bonus - Start your green journey!",
		Date:        now,
		Balance:     user.WalletBalance,
	}

	if err := s.userRepository.CommitRegistration(ctx, user, []entities.Transaction{welcome}); err != nil {
		return nil, err
	}

	return &domain.RegisterResponse{
		User:        *user,
		Transaction: welcome,
	}, nil
}

func (s *userService) Me(ctx context.Context) (*entities.User, error) {
	return s.userRepository.GetUser(ctx)
}
