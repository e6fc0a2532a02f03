package plant

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"Eco-Earn-Backend/domain"
	"Eco-Earn-Backend/entities"
	"Eco-Earn-Backend/internal/utils/storage"
	"Eco-Earn-Backend/pkg/user"
	"Eco-Earn-Backend/pkg/wallet"
)

const (
	baseHealthScore = 70
	maxHealthScore  = 100

	// Every successful check-in adds a fixed amount to the user's
	// environmental score.
	checkInEnvironmentalBonus = 10

	checkInInterval = 30 * 24 * time.Hour
)

type (
	PlantService interface {
		GetPlants(ctx context.Context, status string) ([]entities.Plant, error)
		GetPlantByID(ctx context.Context, id string) (*entities.Plant, error)
		CheckIn(ctx context.Context, plantID string, req domain.CheckInRequest) (*domain.CheckInResponse, error)
	}

	plantService struct {
		plantRepository       PlantRepository
		userRepository        user.UserRepository
		transactionRepository wallet.TransactionRepository
		objectStorage         storage.ObjectStorage
	}
)

func NewPlantService(
	plantRepository PlantRepository,
	userRepository user.UserRepository,
	transactionRepository wallet.TransactionRepository,
	objectStorage storage.ObjectStorage,
) PlantService {
	return &plantService{
		plantRepository:       plantRepository,
		userRepository:        userRepository,
		transactionRepository: transactionRepository,
		objectStorage:         objectStorage,
	}
}

// ComputeHealthScore derives a plant health score from the two categorical
// assessment inputs. Base 70, each input contributes up to 15, capped at
// 100. Pure; unknown values contribute nothing, like "poor"/"brown".
func ComputeHealthScore(assessment entities.HealthAssessment) int {
	score := baseHealthScore

	switch assessment.GrowthRate {
	case "excellent":
		score += 15
	case "good":
		score += 10
	case "moderate":
		score += 5
	}

	switch assessment.LeavesColor {
	case "vibrant":
		score += 15
	case "normal":
		score += 10
	case "pale":
		score += 5
	}

	if score > maxHealthScore {
		score = maxHealthScore
	}
	return score
}

func (s *plantService) GetPlants(ctx context.Context, status string) ([]entities.Plant, error) {
	plants, err := s.plantRepository.GetPlants(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" || status == "all" {
		return plants, nil
	}
	filtered := []entities.Plant{}
	for _, p := range plants {
		if p.Status == status {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *plantService) GetPlantByID(ctx context.Context, id string) (*entities.Plant, error) {
	return s.plantRepository.GetPlantByID(ctx, id)
}

func (s *plantService) CheckIn(ctx context.Context, plantID string, req domain.CheckInRequest) (*domain.CheckInResponse, error) {
	if req.Photo == nil {
		return nil, domain.ErrImageRequired
	}

	plants, err := s.plantRepository.GetPlants(ctx)
	if err != nil {
		return nil, err
	}
	plantIndex := -1
	for i := range plants {
		if plants[i].ID == plantID {
			plantIndex = i
			break
		}
	}
	if plantIndex == -1 {
		return nil, domain.ErrPlantNotFound
	}
	p := plants[plantIndex]

	u, err := s.userRepository.GetUser(ctx)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepository.GetTransactions(ctx)
	if err != nil {
		return nil, err
	}

	photoID := uuid.New().String()
	fileName := fmt.Sprintf("plant-photo-%s", photoID)
	objectKey, err := s.objectStorage.UploadFile(fileName, req.Photo, "plant-photos", storage.AllowImage...)
	if err != nil {
		return nil, err
	}
	imageURL := s.objectStorage.GetPublicLinkKey(objectKey)

	assessment := entities.HealthAssessment{
		GrowthRate:  req.GrowthRate,
		LeavesColor: req.LeavesColor,
		Issues:      req.Issues,
	}
	assessment.OverallHealth = ComputeHealthScore(assessment)

	now := time.Now()
	newMonthlyCheckIns := p.MonthlyCheckIns + 1
	willBeYielding := newMonthlyCheckIns >= p.SeedType.GrowthDuration

	// Tier order matters: the first crossing into yielding pays the
	// yielding reward, not the monthly one.
	firstCrossing := willBeYielding && !p.IsYieldingStage
	var reward float64
	var rewardDescription string
	switch {
	case firstCrossing:
		reward = p.SeedType.YieldingReward
		rewardDescription = "Yielding stage reached"
	case p.IsYieldingStage:
		reward = p.SeedType.YieldingReward
		rewardDescription = "Yielding stage"
	default:
		reward = p.SeedType.MonthlyReward
		rewardDescription = "Monthly check-in"
	}

	stage := entities.PhotoStageMonthly
	if willBeYielding {
		stage = entities.PhotoStageYielding
	}
	photo := entities.PlantPhoto{
		ID:               photoID,
		PlantID:          p.ID,
		UploadDate:       now,
		ImageURL:         imageURL,
		Stage:            stage,
		HealthAssessment: &assessment,
		RewardEarned:     reward,
	}

	if willBeYielding {
		p.Status = entities.PlantStatusYielding
	} else {
		p.Status = entities.PlantStatusGrowing
	}
	p.HealthScore = assessment.OverallHealth
	p.LastCheckIn = now
	p.NextCheckIn = now.Add(checkInInterval)
	p.MonthlyCheckIns = newMonthlyCheckIns
	p.TotalEarned += reward
	if willBeYielding {
		p.IsYieldingStage = true
	}
	p.Photos = append(p.Photos, photo)
	plants[plantIndex] = p

	u.WalletBalance += reward
	u.TotalEarnings += reward
	u.ConsecutiveStreak++
	u.EnvironmentalScore += checkInEnvironmentalBonus
	user.AwardMilestoneBadges(u, now)

	transaction := entities.Transaction{
		ID:          uuid.New().String(),
		UserID:      u.ID,
		Type:        entities.TransactionReward,
		Amount:      reward,
		Description: fmt.Sprintf("%s reward - %s", rewardDescription, p.SeedType.Name),
		PlantID:     p.ID,
		Date:        now,
		Balance:     u.WalletBalance,
	}
	transactions = append([]entities.Transaction{transaction}, transactions...)

	if err := s.plantRepository.CommitCheckIn(ctx, plants, u, transactions); err != nil {
		_ = s.objectStorage.DeleteFile(objectKey)
		return nil, err
	}

	message := fmt.Sprintf("Check-in successful! You earned $%.2f. Keep up the great work!", reward)
	if firstCrossing {
		message = fmt.Sprintf("Your plant reached the yielding stage! You earned $%.2f.", reward)
	}

	return &domain.CheckInResponse{
		Plant:             p,
		RewardAmount:      reward,
		RewardDescription: rewardDescription,
		Photo:             photo,
		Transaction:       transaction,
		Message:           message,
	}, nil
}
