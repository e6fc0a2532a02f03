package plant

import (
	"context"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Eco-Earn-Backend/domain"
	"Eco-Earn-Backend/entities"
	"Eco-Earn-Backend/pkg/kvstore"
	"Eco-Earn-Backend/pkg/user"
	"Eco-Earn-Backend/pkg/wallet"
)

// fakeObjectStorage records uploads and deletes without touching any disk
// or network.
type fakeObjectStorage struct {
	uploads []string
	deletes []string
	failUp  error
}

func (f *fakeObjectStorage) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error) {
	if f.failUp != nil {
		return "", f.failUp
	}
	key := folder + "/" + fileName + ".jpg"
	f.uploads = append(f.uploads, key)
	return key, nil
}

func (f *fakeObjectStorage) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	return objectKey, nil
}

func (f *fakeObjectStorage) DeleteFile(objectKey string) error {
	f.deletes = append(f.deletes, objectKey)
	return nil
}

func (f *fakeObjectStorage) GetPublicLinkKey(objectKey string) string {
	return "https://cdn.example.com/" + objectKey
}

func (f *fakeObjectStorage) GetObjectKeyFromLink(link string) string {
	return link
}

func newTestService(t *testing.T, store kvstore.Store) (PlantService, *fakeObjectStorage) {
	t.Helper()
	objectStorage := &fakeObjectStorage{}
	service := NewPlantService(
		NewPlantRepository(store),
		user.NewUserRepository(store),
		wallet.NewTransactionRepository(store),
		objectStorage,
	)
	return service, objectStorage
}

func seedGarden(t *testing.T, store kvstore.Store, plants ...entities.Plant) {
	t.Helper()
	require.NoError(t, store.SetAll(map[string]any{
		kvstore.KeyUser: entities.User{
			ID:            "user-1",
			Name:          "Alex Green",
			WalletBalance: 50,
			Badges:        []entities.Badge{},
		},
		kvstore.KeyPlants:       plants,
		kvstore.KeyTransactions: []entities.Transaction{},
	}))
}

func growingPlant(id string, monthlyCheckIns int, yielding bool) entities.Plant {
	seed := entities.SeedType{
		ID:             "seed-neem",
		Name:           "Neem Tree",
		MonthlyReward:  4,
		YieldingReward: 25,
		GrowthDuration: 6,
	}
	status := entities.PlantStatusGrowing
	if yielding {
		status = entities.PlantStatusYielding
	}
	return entities.Plant{
		ID:              id,
		UserID:          "user-1",
		SeedType:        seed,
		Status:          status,
		MonthlyCheckIns: monthlyCheckIns,
		IsYieldingStage: yielding,
		Photos:          []entities.PlantPhoto{},
	}
}

func photoHeader() *multipart.FileHeader {
	return &multipart.FileHeader{Filename: "photo.jpg"}
}

func checkInRequest(growthRate, leavesColor string) domain.CheckInRequest {
	return domain.CheckInRequest{
		GrowthRate:  growthRate,
		LeavesColor: leavesColor,
		Photo:       photoHeader(),
	}
}

func TestComputeHealthScore(t *testing.T) {
	cases := []struct {
		growthRate  string
		leavesColor string
		want        int
	}{
		{"excellent", "vibrant", 100},
		{"excellent", "normal", 95},
		{"excellent", "pale", 90},
		{"excellent", "brown", 85},
		{"good", "vibrant", 95},
		{"good", "normal", 90},
		{"moderate", "pale", 80},
		{"moderate", "brown", 75},
		{"poor", "vibrant", 85},
		{"poor", "brown", 70},
	}
	for _, tc := range cases {
		got := ComputeHealthScore(entities.HealthAssessment{
			GrowthRate:  tc.growthRate,
			LeavesColor: tc.leavesColor,
		})
		assert.Equal(t, tc.want, got, "%s/%s", tc.growthRate, tc.leavesColor)
	}
}

func TestComputeHealthScore_NeverExceedsCap(t *testing.T) {
	for _, growthRate := range []string{"excellent", "good", "moderate", "poor"} {
		for _, leavesColor := range []string{"vibrant", "normal", "pale", "brown"} {
			got := ComputeHealthScore(entities.HealthAssessment{
				GrowthRate:  growthRate,
				LeavesColor: leavesColor,
			})
			assert.GreaterOrEqual(t, got, 70)
			assert.LessOrEqual(t, got, 100)
		}
	}
}

func TestCheckIn_RequiresPhoto(t *testing.T) {
	store := kvstore.NewMemoryStore()
	seedGarden(t, store, growingPlant("plant-1", 0, false))
	service, objectStorage := newTestService(t, store)

	req := checkInRequest("good", "normal")
	req.Photo = nil
	_, err := service.CheckIn(context.Background(), "plant-1", req)
	assert.ErrorIs(t, err, domain.ErrImageRequired)
	assert.Empty(t, objectStorage.uploads)

	// The rejected check-in must leave everything untouched.
	var u entities.User
	_, getErr := store.Get(kvstore.KeyUser, &u)
	require.NoError(t, getErr)
	assert.Equal(t, 50.0, u.WalletBalance)
	assert.Equal(t, 0, u.ConsecutiveStreak)

	var plants []entities.Plant
	_, getErr = store.Get(kvstore.KeyPlants, &plants)
	require.NoError(t, getErr)
	assert.Equal(t, 0, plants[0].MonthlyCheckIns)
}

func TestCheckIn_PlantNotFound(t *testing.T) {
	store := kvstore.NewMemoryStore()
	seedGarden(t, store, growingPlant("plant-1", 0, false))
	service, _ := newTestService(t, store)

	_, err := service.CheckIn(context.Background(), "plant-missing", checkInRequest("good", "normal"))
	assert.ErrorIs(t, err, domain.ErrPlantNotFound)
}

func TestCheckIn_MonthlyReward(t *testing.T) {
	store := kvstore.NewMemoryStore()
	seedGarden(t, store, growingPlant("plant-1", 0, false))
	service, _ := newTestService(t, store)

	res, err := service.CheckIn(context.Background(), "plant-1", checkInRequest("good", "normal"))
	require.NoError(t, err)

	assert.Equal(t, 4.0, res.RewardAmount)
	assert.Equal(t, "Monthly check-in", res.RewardDescription)
	assert.Equal(t, entities.PlantStatusGrowing, res.Plant.Status)
	assert.False(t, res.Plant.IsYieldingStage)
	assert.Equal(t, 1, res.Plant.MonthlyCheckIns)
	assert.Equal(t, 90, res.Plant.HealthScore)
	assert.Equal(t, entities.PhotoStageMonthly, res.Photo.Stage)
	assert.Contains(t, res.Message, "Check-in successful!")

	expectedNext := res.Plant.LastCheckIn.Add(30 * 24 * time.Hour)
	assert.Equal(t, expectedNext, res.Plant.NextCheckIn)
}

func TestCheckIn_FirstYieldingCrossing(t *testing.T) {
	store := kvstore.NewMemoryStore()
	seedGarden(t, store, growingPlant("plant-1", 5, false))
	service, _ := newTestService(t, store)

	res, err := service.CheckIn(context.Background(), "plant-1", checkInRequest("excellent", "vibrant"))
	require.NoError(t, err)

	assert.Equal(t, 25.0, res.RewardAmount)
	assert.Equal(t, "Yielding stage reached", res.RewardDescription)
	assert.Equal(t, entities.PlantStatusYielding, res.Plant.Status)
	assert.True(t, res.Plant.IsYieldingStage)
	assert.Equal(t, entities.PhotoStageYielding, res.Photo.Stage)
	assert.Contains(t, res.Message, "reached the yielding stage")
}

func TestCheckIn_AlreadyYielding(t *testing.T) {
	store := kvstore.NewMemoryStore()
	seedGarden(t, store, growingPlant("plant-1", 8, true))
	service, _ := newTestService(t, store)

	res, err := service.CheckIn(context.Background(), "plant-1", checkInRequest("good", "vibrant"))
	require.NoError(t, err)

	assert.Equal(t, 25.0, res.RewardAmount)
	assert.Equal(t, "Yielding stage", res.RewardDescription)
	assert.True(t, res.Plant.IsYieldingStage)
	assert.Contains(t, res.Message, "Check-in successful!")
}

func TestCheckIn_UpdatesUserAndLedger(t *testing.T) {
	store := kvstore.NewMemoryStore()
	seedGarden(t, store, growingPlant("plant-1", 0, false))
	service, _ := newTestService(t, store)

	res, err := service.CheckIn(context.Background(), "plant-1", checkInRequest("good", "normal"))
	require.NoError(t, err)

	var u entities.User
	_, getErr := store.Get(kvstore.KeyUser, &u)
	require.NoError(t, getErr)
	assert.Equal(t, 54.0, u.WalletBalance)
	assert.Equal(t, 4.0, u.TotalEarnings)
	assert.Equal(t, 1, u.ConsecutiveStreak)
	assert.Equal(t, 10, u.EnvironmentalScore)

	var transactions []entities.Transaction
	_, getErr = store.Get(kvstore.KeyTransactions, &transactions)
	require.NoError(t, getErr)
	require.Len(t, transactions, 1)
	assert.Equal(t, entities.TransactionReward, transactions[0].Type)
	assert.Equal(t, 4.0, transactions[0].Amount)
	assert.Equal(t, "Monthly check-in reward - Neem Tree", transactions[0].Description)
	assert.Equal(t, "plant-1", transactions[0].PlantID)
	assert.Equal(t, res.Transaction.ID, transactions[0].ID)
}

func TestCheckIn_AppendsPhotoRecord(t *testing.T) {
	store := kvstore.NewMemoryStore()
	seedGarden(t, store, growingPlant("plant-1", 0, false))
	service, objectStorage := newTestService(t, store)

	res, err := service.CheckIn(context.Background(), "plant-1", checkInRequest("moderate", "pale"))
	require.NoError(t, err)

	require.Len(t, res.Plant.Photos, 1)
	photo := res.Plant.Photos[0]
	assert.Equal(t, "plant-1", photo.PlantID)
	assert.Equal(t, 4.0, photo.RewardEarned)
	require.NotNil(t, photo.HealthAssessment)
	assert.Equal(t, 80, photo.HealthAssessment.OverallHealth)
	require.Len(t, objectStorage.uploads, 1)
	assert.Contains(t, photo.ImageURL, objectStorage.uploads[0])
}

// A $100 wallet buys a $20 seed with a one-month growth duration; the very
// first check-in crosses into yielding and pays the $15 yielding reward,
// leaving $95.
func TestCheckIn_FastSeedFirstCheckInPaysYielding(t *testing.T) {
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.SetAll(map[string]any{
		kvstore.KeyUser: entities.User{
			ID:            "user-1",
			Name:          "Alex Green",
			WalletBalance: 80, // $100 minus the $20 seed
			Badges:        []entities.Badge{},
		},
		kvstore.KeyPlants: []entities.Plant{{
			ID:     "plant-1",
			UserID: "user-1",
			SeedType: entities.SeedType{
				ID:             "seed-fast",
				Name:           "Fast Grower",
				Price:          20,
				MonthlyReward:  5,
				YieldingReward: 15,
				GrowthDuration: 1,
			},
			Status: entities.PlantStatusSeedling,
			Photos: []entities.PlantPhoto{},
		}},
		kvstore.KeyTransactions: []entities.Transaction{},
	}))
	service, _ := newTestService(t, store)

	res, err := service.CheckIn(context.Background(), "plant-1", checkInRequest("good", "normal"))
	require.NoError(t, err)

	assert.Equal(t, 15.0, res.RewardAmount)
	assert.Equal(t, "Yielding stage reached", res.RewardDescription)

	var u entities.User
	_, getErr := store.Get(kvstore.KeyUser, &u)
	require.NoError(t, getErr)
	assert.Equal(t, 95.0, u.WalletBalance)
}

func TestGetPlants_FilterByStatus(t *testing.T) {
	store := kvstore.NewMemoryStore()
	yielding := growingPlant("plant-2", 8, true)
	seedGarden(t, store, growingPlant("plant-1", 0, false), yielding)
	service, _ := newTestService(t, store)

	all, err := service.GetPlants(context.Background(), "all")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := service.GetPlants(context.Background(), entities.PlantStatusYielding)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "plant-2", filtered[0].ID)
}

func TestGetPlantByID_NotFound(t *testing.T) {
	store := kvstore.NewMemoryStore()
	seedGarden(t, store)
	service, _ := newTestService(t, store)

	_, err := service.GetPlantByID(context.Background(), "plant-missing")
	assert.ErrorIs(t, err, domain.ErrPlantNotFound)
}
