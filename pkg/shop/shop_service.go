package shop

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"Eco-Earn-Backend/domain"
	"Eco-Earn-Backend/entities"
	"Eco-Earn-Backend/pkg/catalog"
	"Eco-Earn-Backend/pkg/plant"
	"Eco-Earn-Backend/pkg/user"
	"Eco-Earn-Backend/pkg/wallet"
)

// New plants expect their first check-in a week after planting.
const firstCheckInInterval = 7 * 24 * time.Hour

type (
	ShopService interface {
		GetCart(ctx context.Context) (*entities.Cart, error)
		AddToCart(ctx context.Context, seedID string) (*entities.Cart, error)
		UpdateCartQuantity(ctx context.Context, seedID string, quantity int) (*entities.Cart, error)
		RemoveFromCart(ctx context.Context, seedID string) (*entities.Cart, error)
		ApplyCoupon(ctx context.Context, code string) (*entities.Cart, error)
		Checkout(ctx context.Context) (*domain.CheckoutResponse, error)
		Purchase(ctx context.Context, req domain.PurchaseRequest) (*domain.PurchaseResponse, error)
	}

	shopService struct {
		cartRepository        CartRepository
		userRepository        user.UserRepository
		plantRepository       plant.PlantRepository
		transactionRepository wallet.TransactionRepository
	}
)

func NewShopService(
	cartRepository CartRepository,
	userRepository user.UserRepository,
	plantRepository plant.PlantRepository,
	transactionRepository wallet.TransactionRepository,
) ShopService {
	return &shopService{
		cartRepository:        cartRepository,
		userRepository:        userRepository,
		plantRepository:       plantRepository,
		transactionRepository: transactionRepository,
	}
}

func (s *shopService) GetCart(ctx context.Context) (*entities.Cart, error) {
	return s.cartRepository.GetCart(ctx)
}

func (s *shopService) AddToCart(ctx context.Context, seedID string) (*entities.Cart, error) {
	seed, ok := catalog.SeedByID(seedID)
	if !ok {
		return nil, domain.ErrSeedTypeNotFound
	}

	cart, err := s.cartRepository.GetCart(ctx)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].Seed.ID == seedID {
			cart.Items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, entities.CartItem{Seed: seed, Quantity: 1})
	}
	cart.Recalculate()

	if err := s.cartRepository.SaveCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *shopService) UpdateCartQuantity(ctx context.Context, seedID string, quantity int) (*entities.Cart, error) {
	if quantity <= 0 {
		return s.RemoveFromCart(ctx, seedID)
	}

	cart, err := s.cartRepository.GetCart(ctx)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].Seed.ID == seedID {
			cart.Items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return nil, domain.ErrCartItemNotFound
	}
	cart.Recalculate()

	if err := s.cartRepository.SaveCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *shopService) RemoveFromCart(ctx context.Context, seedID string) (*entities.Cart, error) {
	cart, err := s.cartRepository.GetCart(ctx)
	if err != nil {
		return nil, err
	}

	items := cart.Items[:0]
	for _, item := range cart.Items {
		if item.Seed.ID != seedID {
			items = append(items, item)
		}
	}
	cart.Items = items
	cart.Recalculate()

	if err := s.cartRepository.SaveCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *shopService) ApplyCoupon(ctx context.Context, code string) (*entities.Cart, error) {
	coupon, ok := catalog.CouponByCode(code)
	if !ok {
		return nil, domain.ErrInvalidCoupon
	}

	cart, err := s.cartRepository.GetCart(ctx)
	if err != nil {
		return nil, err
	}
	cart.AppliedCoupon = &coupon

	if err := s.cartRepository.SaveCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *shopService) Checkout(ctx context.Context) (*domain.CheckoutResponse, error) {
	cart, err := s.cartRepository.GetCart(ctx)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 || cart.Total == 0 {
		return nil, domain.ErrEmptyCart
	}

	u, err := s.userRepository.GetUser(ctx)
	if err != nil {
		return nil, err
	}

	subtotal := cart.Total
	discount := 0.0
	if cart.AppliedCoupon != nil && !cart.AppliedCoupon.IsUsed {
		discount = subtotal * cart.AppliedCoupon.Discount / 100
	}
	charged := subtotal - discount

	if u.WalletBalance < charged {
		return nil, fmt.Errorf("%w: you need $%.2f more to complete this purchase",
			domain.ErrInsufficientBalance, charged-u.WalletBalance)
	}

	plants, err := s.plantRepository.GetPlants(ctx)
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactionRepository.GetTransactions(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newPlants := []entities.Plant{}
	for _, item := range cart.Items {
		for i := 0; i < item.Quantity; i++ {
			newPlants = append(newPlants, newPlant(u.ID, item.Seed, now))
		}
	}
	plants = append(plants, newPlants...)

	u.WalletBalance -= charged
	u.PlantsGrown += len(newPlants)
	user.AwardMilestoneBadges(u, now)

	description := fmt.Sprintf("Purchased %d seed type(s) - %d total seeds", len(cart.Items), len(newPlants))
	if discount > 0 {
		description = fmt.Sprintf("%s (%s, -$%.2f)", description, cart.AppliedCoupon.Code, discount)
	}
	transaction := entities.Transaction{
		ID:          uuid.New().String(),
		UserID:      u.ID,
		Type:        entities.TransactionPurchase,
		Amount:      -charged,
		Description: description,
		Date:        now,
		Balance:     u.WalletBalance,
	}
	transactions = append([]entities.Transaction{transaction}, transactions...)

	// The coupon is consumed with the checkout; the cleared cart carries
	// no leftover discount.
	cleared := &entities.Cart{Items: []entities.CartItem{}, Total: 0}

	if err := s.cartRepository.CommitCheckout(ctx, cleared, u, plants, transactions); err != nil {
		return nil, err
	}

	return &domain.CheckoutResponse{
		Plants:        newPlants,
		Transaction:   transaction,
		WalletBalance: u.WalletBalance,
		Subtotal:      subtotal,
		Discount:      discount,
		ChargedTotal:  charged,
	}, nil
}

func (s *shopService) Purchase(ctx context.Context, req domain.PurchaseRequest) (*domain.PurchaseResponse, error) {
	seed, ok := catalog.SeedByID(req.SeedID)
	if !ok {
		return nil, domain.ErrSeedTypeNotFound
	}
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	u, err := s.userRepository.GetUser(ctx)
	if err != nil {
		return nil, err
	}

	cost := seed.Price * float64(quantity)
	if u.WalletBalance < cost {
		return nil, fmt.Errorf("%w: you need $%.2f more to purchase this seed",
			domain.ErrInsufficientBalance, cost-u.WalletBalance)
	}

	plants, err := s.plantRepository.GetPlants(ctx)
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactionRepository.GetTransactions(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newPlants := make([]entities.Plant, 0, quantity)
	for i := 0; i < quantity; i++ {
		newPlants = append(newPlants, newPlant(u.ID, seed, now))
	}
	plants = append(plants, newPlants...)

	u.WalletBalance -= cost
	u.PlantsGrown += len(newPlants)
	user.AwardMilestoneBadges(u, now)

	transaction := entities.Transaction{
		ID:          uuid.New().String(),
		UserID:      u.ID,
		Type:        entities.TransactionPurchase,
		Amount:      -cost,
		Description: fmt.Sprintf("Purchased %s seeds", seed.Name),
		Date:        now,
		Balance:     u.WalletBalance,
	}
	transactions = append([]entities.Transaction{transaction}, transactions...)

	if err := s.cartRepository.CommitPurchase(ctx, u, plants, transactions); err != nil {
		return nil, err
	}

	return &domain.PurchaseResponse{
		Plants:        newPlants,
		Transaction:   transaction,
		WalletBalance: u.WalletBalance,
	}, nil
}

func newPlant(userID string, seed entities.SeedType, now time.Time) entities.Plant {
	return entities.Plant{
		ID:              uuid.New().String(),
		UserID:          userID,
		SeedType:        seed, // snapshot by value
		PlantedDate:     now,
		Status:          entities.PlantStatusSeedling,
		HealthScore:     100,
		LastCheckIn:     now,
		NextCheckIn:     now.Add(firstCheckInInterval),
		MonthlyCheckIns: 0,
		TotalEarned:     0,
		Photos:          []entities.PlantPhoto{},
		IsYieldingStage: false,
	}
}
