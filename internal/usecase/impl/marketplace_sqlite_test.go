package impl

import (
	"context"
	"testing"
	"time"

	"agrifarma/config"
	"agrifarma/internal/domain/entity"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/domain/repository"
	"agrifarma/internal/domain/service"
	"agrifarma/internal/infra/auth"
	"agrifarma/internal/infra/persistence/model"
	"agrifarma/internal/infra/persistence/sqlite"
	"agrifarma/internal/infra/persistence/store"
	"agrifarma/internal/infra/storage"
	"agrifarma/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gocloud.dev/blob/memblob"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MarketplaceSQLiteSuite runs the usecases against a real SQLite store.
type MarketplaceSQLiteSuite struct {
	suite.Suite

	ctx           context.Context
	db            *gorm.DB
	txManager     repository.TransactionManager
	resetTokens   service.ResetTokenService
	cart          usecase.CartUsecase
	checkout      usecase.CheckoutUsecase
	accounts      usecase.AccountUsecase
	passwordReset usecase.PasswordResetUsecase
}

func TestMarketplaceSQLiteSuite(t *testing.T) {
	suite.Run(t, new(MarketplaceSQLiteSuite))
}

func (s *MarketplaceSQLiteSuite) SetupTest() {
	s.ctx = context.Background()

	db, err := sqlite.OpenMemory(uuid.NewString(), &gorm.Config{Logger: logger.Discard})
	s.Require().NoError(err)
	s.db = store.Configure(db, logger.Discard)
	s.Require().NoError(store.Migrate(s.db))

	cfg := newTestConfig()
	cfg.SecretKey = config.SecretKeyConfig{Session: "session-secret", PasswordReset: "reset-secret"}

	s.resetTokens, err = auth.NewResetTokenService(cfg)
	s.Require().NoError(err)

	s.txManager = store.NewTransactionManager(s.db)
	hasher := auth.NewBcryptHasher(cfg)
	bucket := memblob.OpenBucket(nil)
	s.T().Cleanup(func() { _ = bucket.Close() })

	s.cart = NewCartService(CartServiceParams{TxManager: s.txManager, Logger: newDiscardLogger()})
	s.checkout = NewCheckoutService(CheckoutServiceParams{TxManager: s.txManager, Logger: newDiscardLogger()})
	s.accounts = NewAccountService(AccountServiceParams{
		TxManager: s.txManager,
		Hasher:    hasher,
		Storage:   storage.NewWithBucket(bucket),
		Logger:    newDiscardLogger(),
	})
	s.passwordReset = NewPasswordResetService(PasswordResetServiceParams{
		TxManager:    s.txManager,
		Hasher:       hasher,
		ResetService: s.resetTokens,
		Logger:       newDiscardLogger(),
	})
}

func (s *MarketplaceSQLiteSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	s.Require().NoError(err)
	s.Require().NoError(sqlDB.Close())
}

func (s *MarketplaceSQLiteSuite) createUser(username string) *entity.User {
	user := &entity.User{Username: username, Email: username + "@example.com", PasswordHash: "x"}
	s.Require().NoError(store.NewUserRepository(s.db).Create(s.ctx, user))

	return user
}

func (s *MarketplaceSQLiteSuite) createProduct(owner *entity.User, name, price string, stock int) *entity.Product {
	product := &entity.Product{
		UserID:        owner.ID,
		Name:          name,
		Price:         decimal.RequireFromString(price),
		Description:   name,
		Category:      "General",
		StockQuantity: stock,
		Active:        true,
	}
	s.Require().NoError(store.NewProductRepository(s.db).Create(s.ctx, product))

	return product
}

func (s *MarketplaceSQLiteSuite) stockOf(productID uuid.UUID) int {
	product, err := store.NewProductRepository(s.db).FindByID(s.ctx, productID)
	s.Require().NoError(err)

	return product.StockQuantity
}

func (s *MarketplaceSQLiteSuite) countRows(m any) int64 {
	var count int64
	s.Require().NoError(s.db.Model(m).Count(&count).Error)

	return count
}

func (s *MarketplaceSQLiteSuite) TestAddToCart_NeverExceedsStock() {
	seller := s.createUser("seller")
	buyer := s.createUser("buyer")
	product := s.createProduct(seller, "Seed", "3", 2)

	_, err := s.cart.AddToCart(s.ctx, buyer.ID, product.ID)
	s.Require().NoError(err)
	_, err = s.cart.AddToCart(s.ctx, buyer.ID, product.ID)
	s.Require().NoError(err)
	_, err = s.cart.AddToCart(s.ctx, buyer.ID, product.ID)
	s.Require().ErrorIs(err, domainerrors.ErrCartLimitReached)

	item, err := store.NewCartRepository(s.db).Find(s.ctx, buyer.ID, product.ID)
	s.Require().NoError(err)
	s.Equal(2, item.Quantity)
	s.LessOrEqual(item.Quantity, s.stockOf(product.ID))
}

func (s *MarketplaceSQLiteSuite) TestUpdateQuantityZero_RemovesLineFromTotal() {
	seller := s.createUser("seller")
	buyer := s.createUser("buyer")
	kept := s.createProduct(seller, "Kept", "4", 10)
	dropped := s.createProduct(seller, "Dropped", "9", 10)

	_, err := s.cart.AddToCart(s.ctx, buyer.ID, kept.ID)
	s.Require().NoError(err)
	_, err = s.cart.AddToCart(s.ctx, buyer.ID, dropped.ID)
	s.Require().NoError(err)

	summary, err := s.cart.UpdateQuantity(s.ctx, buyer.ID, dropped.ID, 0)
	s.Require().NoError(err)
	s.Equal(1, summary.ItemCount)

	_, err = store.NewCartRepository(s.db).Find(s.ctx, buyer.ID, dropped.ID)
	s.ErrorIs(err, repository.ErrCartItemNotFound)

	total, err := s.cart.GetCartTotal(s.ctx, buyer.ID)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(4).Equal(total), total.String())
}

func (s *MarketplaceSQLiteSuite) TestCheckout_SingleItem() {
	seller := s.createUser("seller")
	buyer := s.createUser("buyer")
	product := s.createProduct(seller, "Jembe", "20", 5)

	_, err := s.cart.AddToCart(s.ctx, buyer.ID, product.ID)
	s.Require().NoError(err)

	orders, err := s.checkout.Checkout(s.ctx, buyer.ID, "Box 12, Embu")
	s.Require().NoError(err)
	s.Require().Len(orders, 1)

	latest, err := s.checkout.LatestOrder(s.ctx, buyer.ID)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(20).Equal(latest.TotalPrice), latest.TotalPrice.String())
	s.Equal(entity.OrderStatusConfirmed, latest.Status)
	s.Equal(4, s.stockOf(product.ID))

	count, err := s.cart.CountItems(s.ctx, buyer.ID)
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *MarketplaceSQLiteSuite) TestCheckout_MultipleLines() {
	seller := s.createUser("seller")
	buyer := s.createUser("buyer")
	first := s.createProduct(seller, "First", "2.50", 6)
	second := s.createProduct(seller, "Second", "10", 3)

	for range 3 {
		_, err := s.cart.AddToCart(s.ctx, buyer.ID, first.ID)
		s.Require().NoError(err)
	}
	_, err := s.cart.AddToCart(s.ctx, buyer.ID, second.ID)
	s.Require().NoError(err)

	orders, err := s.checkout.Checkout(s.ctx, buyer.ID, "Kitale")
	s.Require().NoError(err)
	s.Len(orders, 2)

	s.Equal(3, s.stockOf(first.ID))
	s.Equal(2, s.stockOf(second.ID))
	s.True(decimal.RequireFromString("7.50").Equal(orders[0].TotalPrice), orders[0].TotalPrice.String())
	s.EqualValues(0, s.countRows(&model.CartItemModel{}))
}

func (s *MarketplaceSQLiteSuite) TestCheckout_AllOrNothing() {
	seller := s.createUser("seller")
	buyer := s.createUser("buyer")
	productA := s.createProduct(seller, "A", "10", 2)
	productB := s.createProduct(seller, "B", "5", 0)

	cartRepo := store.NewCartRepository(s.db)
	s.Require().NoError(cartRepo.Create(s.ctx, &entity.CartItem{UserID: buyer.ID, ProductID: productA.ID, Quantity: 2}))
	// B went out of stock after it was added.
	s.Require().NoError(cartRepo.Create(s.ctx, &entity.CartItem{UserID: buyer.ID, ProductID: productB.ID, Quantity: 1}))

	_, err := s.checkout.Checkout(s.ctx, buyer.ID, "Nanyuki")
	s.Require().ErrorIs(err, domainerrors.ErrInsufficientStock)
	s.Contains(domainerrors.MessageOf(err), "B")

	s.Equal(2, s.stockOf(productA.ID))
	s.Equal(0, s.stockOf(productB.ID))
	s.EqualValues(0, s.countRows(&model.OrderModel{}))
	s.EqualValues(2, s.countRows(&model.CartItemModel{}))
}

func (s *MarketplaceSQLiteSuite) TestCheckout_EmptyCart() {
	buyer := s.createUser("buyer")

	_, err := s.checkout.Checkout(s.ctx, buyer.ID, "Nairobi")
	s.ErrorIs(err, domainerrors.ErrCartEmpty)
}

func (s *MarketplaceSQLiteSuite) TestDeletingProduct_RemovesCartLines() {
	seller := s.createUser("seller")
	buyer := s.createUser("buyer")
	product := s.createProduct(seller, "Ephemeral", "1", 3)

	_, err := s.cart.AddToCart(s.ctx, buyer.ID, product.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.db.Where("id = ?", product.ID).Delete(&model.ProductModel{}).Error)

	cart, err := s.cart.GetCart(s.ctx, buyer.ID)
	s.Require().NoError(err)
	s.Empty(cart.Items)
	s.True(cart.Total.IsZero())
}

func (s *MarketplaceSQLiteSuite) TestDeleteAccount_Cascades() {
	seller := s.createUser("seller")
	buyer := s.createUser("buyer")
	product := s.createProduct(seller, "Owned", "1", 3)

	_, err := s.cart.AddToCart(s.ctx, buyer.ID, product.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.accounts.DeleteAccount(s.ctx, seller.Email))

	s.EqualValues(0, s.countRows(&model.ProductModel{}))
	s.EqualValues(0, s.countRows(&model.CartItemModel{}))
	s.EqualValues(1, s.countRows(&model.UserModel{}))
}

func (s *MarketplaceSQLiteSuite) TestRegister_DuplicateEmailConflicts() {
	input := &usecase.RegisterInput{Username: "njeri", Email: "njeri@example.com", Password: "secret1"}

	_, err := s.accounts.Register(s.ctx, input)
	s.Require().NoError(err)

	_, err = s.accounts.Register(s.ctx, &usecase.RegisterInput{Username: "njeri2", Email: "njeri@example.com", Password: "secret1"})
	s.Require().ErrorIs(err, domainerrors.ErrUserAlreadyExists)
	s.Equal(domainerrors.KindConflict, domainerrors.KindOf(err))
	s.EqualValues(1, s.countRows(&model.UserModel{}))
}

func (s *MarketplaceSQLiteSuite) TestPasswordReset_RoundTripAndSingleUse() {
	_, err := s.accounts.Register(s.ctx, &usecase.RegisterInput{Username: "ochieng", Email: "ochieng@example.com", Password: "secret1"})
	s.Require().NoError(err)

	token, err := s.passwordReset.RequestPasswordReset(s.ctx, "ochieng@example.com")
	s.Require().NoError(err)

	input := &usecase.ResetPasswordInput{Token: token, Password: "newpass", ConfirmPassword: "newpass"}
	s.Require().NoError(s.passwordReset.ResetPassword(s.ctx, input))

	err = s.passwordReset.ResetPassword(s.ctx, input)
	s.ErrorIs(err, domainerrors.ErrResetTokenInvalid)
}

func (s *MarketplaceSQLiteSuite) TestPasswordReset_RejectsUnknownUser() {
	token, err := s.resetTokens.Issue("ghost@example.com", "irrelevant")
	s.Require().NoError(err)

	err = s.passwordReset.ResetPassword(s.ctx, &usecase.ResetPasswordInput{Token: token, Password: "newpass", ConfirmPassword: "newpass"})
	s.ErrorIs(err, domainerrors.ErrResetTokenInvalid)
}

func (s *MarketplaceSQLiteSuite) TestPasswordReset_RejectsTokenOlderThanOneHour() {
	user, err := s.accounts.Register(s.ctx, &usecase.RegisterInput{Username: "akinyi", Email: "akinyi@example.com", Password: "secret1"})
	s.Require().NoError(err)

	issuedAt := time.Now().Add(-61 * time.Minute)
	stale, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"purpose": "password-reset",
		"fp":      s.resetTokens.Fingerprint(user.PasswordHash),
		"sub":     user.Email,
		"iat":     issuedAt.Unix(),
		"exp":     issuedAt.Add(time.Hour).Unix(),
	}).SignedString([]byte("reset-secret"))
	s.Require().NoError(err)

	err = s.passwordReset.ResetPassword(s.ctx, &usecase.ResetPasswordInput{Token: stale, Password: "newpass", ConfirmPassword: "newpass"})
	s.ErrorIs(err, domainerrors.ErrResetTokenInvalid)
}
