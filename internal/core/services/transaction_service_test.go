package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/core/services"
	"github.com/SscSPs/money_tracker/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockCategoryRepo *MockCategoryRepository
	mockUserRepo     *MockUserRepository
	mockCurrencyRepo *MockCurrencyRepository
	mockRateRepo     *MockExchangeRateRepository
	service          portssvc.TransactionSvcFacade

	now      time.Time
	userID   int64
	user     *domain.User
	usd      *domain.Currency
	eur      *domain.Currency
	food     *domain.Category
	salary   *domain.Category
	eurToUsd domain.ExchangeRate
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.now = time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	clock := fixedClock(suite.now)
	resolver := services.NewRateResolver(suite.mockRateRepo, services.WithResolverClock(clock))
	suite.service = services.NewTransactionService(
		suite.mockTxnRepo,
		suite.mockCategoryRepo,
		suite.mockUserRepo,
		services.NewCurrencyService(suite.mockCurrencyRepo),
		resolver,
		services.NewTransactionConverter(clock),
		services.WithTransactionClock(clock),
	)

	suite.userID = 100
	suite.user = &domain.User{UserID: suite.userID, Name: "Ada", HomeCurrencyID: usdID}
	suite.usd = &domain.Currency{CurrencyID: usdID, Code: "USD", Symbol: "$", IsActive: true}
	suite.eur = &domain.Currency{CurrencyID: eurID, Code: "EUR", Symbol: "€", IsActive: true}
	suite.food = &domain.Category{CategoryID: 10, UserID: suite.userID, Name: "Food", Type: domain.Expense, Color: "#ff8800", Icon: "food", IsActive: true}
	suite.salary = &domain.Category{CategoryID: 11, UserID: suite.userID, Name: "Salary", Type: domain.Income, IsActive: true}
	suite.eurToUsd = rate(5, eurID, usdID, "1.10", day(2024, 3, 1))
}

func (suite *TransactionServiceTestSuite) TestCreate_SameCurrency() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		CategoryID:   suite.food.CategoryID,
		Amount:       decimal.RequireFromString("12.34"),
		CurrencyCode: "USD",
		Date:         day(2024, 3, 14),
		Description:  " lunch ",
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.food.CategoryID).Return(suite.food, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(suite.usd, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(suite.user, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Type == domain.Expense &&
			t.ConvertedAmount.Equal(t.Amount) &&
			t.ExchangeRateUsed.Equal(decimal.NewFromInt(1)) &&
			t.ConvertedCurrencyID == usdID &&
			t.RateAppliedAt.Equal(suite.now) &&
			t.Description == "lunch" &&
			t.CreatedBy == "100"
	})).Return(func(_ context.Context, t domain.Transaction) *domain.Transaction {
		t.TransactionID = 77
		return &t
	}, nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal(int64(77), txn.TransactionID)
	suite.Equal("Food", txn.Category.Name)
	suite.mockRateRepo.AssertNumberOfCalls(suite.T(), "FindActiveRates", 0)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreate_ForeignCurrencyUsesCurrentRate() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		CategoryID:   suite.food.CategoryID,
		Amount:       decimal.NewFromInt(50),
		CurrencyCode: "EUR",
		Date:         day(2024, 3, 14),
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.food.CategoryID).Return(suite.food, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(suite.eur, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(suite.user, nil).Once()
	suite.mockRateRepo.On("FindActiveRates", ctx, eurID, usdID).Return([]domain.ExchangeRate{suite.eurToUsd}, nil)
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Return(func(_ context.Context, t domain.Transaction) *domain.Transaction { return &t }, nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal("55", txn.ConvertedAmount.String())
	suite.True(txn.ExchangeRateUsed.Equal(decimal.RequireFromString("1.10")))
	suite.Equal(usdID, txn.ConvertedCurrencyID)
	suite.Equal(eurID, txn.CurrencyID)
}

func (suite *TransactionServiceTestSuite) TestCreate_NoRateIsValidationError() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		CategoryID:   suite.food.CategoryID,
		Amount:       decimal.NewFromInt(50),
		CurrencyCode: "EUR",
		Date:         day(2024, 3, 14),
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.food.CategoryID).Return(suite.food, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(suite.eur, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(suite.user, nil).Once()
	suite.mockRateRepo.On("FindActiveRates", ctx, eurID, usdID).Return([]domain.ExchangeRate{}, nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrRateNotFound)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreate_RateNotYetEffective() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		CategoryID:   suite.food.CategoryID,
		Amount:       decimal.NewFromInt(50),
		CurrencyCode: "EUR",
		Date:         day(2024, 2, 20),
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.food.CategoryID).Return(suite.food, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(suite.eur, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(suite.user, nil).Once()
	suite.mockRateRepo.On("FindActiveRates", ctx, eurID, usdID).Return([]domain.ExchangeRate{suite.eurToUsd}, nil)

	_, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, apperrors.ErrRateNotFound)
	suite.Contains(err.Error(), "newer than the transaction date 2024-02-20")
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreate_RejectsForeignCategoryAndInactiveCurrency() {
	ctx := context.Background()
	foreignCategory := *suite.food
	foreignCategory.UserID = 999

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, int64(10)).Return(&foreignCategory, nil).Once()
	_, err := suite.service.CreateTransaction(ctx, suite.userID, dto.CreateTransactionRequest{
		CategoryID: 10, Amount: decimal.NewFromInt(1), CurrencyCode: "USD", Date: day(2024, 3, 1),
	})
	suite.ErrorIs(err, apperrors.ErrValidation)

	inactive := *suite.eur
	inactive.IsActive = false
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, int64(10)).Return(suite.food, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(&inactive, nil).Once()
	_, err = suite.service.CreateTransaction(ctx, suite.userID, dto.CreateTransactionRequest{
		CategoryID: 10, Amount: decimal.NewFromInt(1), CurrencyCode: "EUR", Date: day(2024, 3, 1),
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreate_NonPositiveAmount() {
	ctx := context.Background()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.food.CategoryID).Return(suite.food, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(suite.usd, nil).Once()

	_, err := suite.service.CreateTransaction(ctx, suite.userID, dto.CreateTransactionRequest{
		CategoryID: suite.food.CategoryID, Amount: decimal.NewFromInt(-3), CurrencyCode: "USD", Date: day(2024, 3, 1),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "must be positive")
}

// A description-only edit still goes through rate lookup and validation, so a
// transaction whose rate was retired cannot be saved again unchanged.
func (suite *TransactionServiceTestSuite) TestUpdate_AlwaysRevalidates() {
	ctx := context.Background()
	existing := &domain.Transaction{
		TransactionID:       5,
		UserID:              suite.userID,
		CategoryID:          suite.food.CategoryID,
		Type:                domain.Expense,
		Amount:              decimal.NewFromInt(50),
		CurrencyID:          eurID,
		ConvertedAmount:     decimal.NewFromInt(55),
		ConvertedCurrencyID: usdID,
		ExchangeRateUsed:    decimal.RequireFromString("1.10"),
		Date:                day(2024, 3, 14),
		Description:         "dinner",
	}
	req := dto.UpdateTransactionRequest{
		CategoryID:   suite.food.CategoryID,
		Amount:       existing.Amount,
		CurrencyCode: "EUR",
		Date:         existing.Date,
		Description:  "dinner with friends",
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, int64(5)).Return(existing, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.food.CategoryID).Return(suite.food, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(suite.eur, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(suite.user, nil).Once()
	suite.mockRateRepo.On("FindActiveRates", ctx, eurID, usdID).Return([]domain.ExchangeRate{}, nil).Once()

	_, err := suite.service.UpdateTransaction(ctx, suite.userID, 5, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrRateNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdate_ReconvertsWithCurrentRate() {
	ctx := context.Background()
	existing := &domain.Transaction{
		TransactionID:    5,
		UserID:           suite.userID,
		CategoryID:       suite.food.CategoryID,
		Type:             domain.Expense,
		Amount:           decimal.NewFromInt(50),
		CurrencyID:       eurID,
		ConvertedAmount:  decimal.NewFromInt(54),
		ExchangeRateUsed: decimal.RequireFromString("1.08"),
		Date:             day(2024, 3, 14),
	}
	req := dto.UpdateTransactionRequest{
		CategoryID:   suite.food.CategoryID,
		Amount:       decimal.NewFromInt(60),
		CurrencyCode: "EUR",
		Date:         day(2024, 3, 14),
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, int64(5)).Return(existing, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.food.CategoryID).Return(suite.food, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(suite.eur, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(suite.user, nil).Once()
	suite.mockRateRepo.On("FindActiveRates", ctx, eurID, usdID).Return([]domain.ExchangeRate{suite.eurToUsd}, nil)
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.ConvertedAmount.Equal(decimal.NewFromInt(66)) && t.LastUpdatedBy == "100"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateTransaction(ctx, suite.userID, 5, req)

	suite.Require().NoError(err)
	suite.True(updated.ExchangeRateUsed.Equal(decimal.RequireFromString("1.10")))
	suite.Equal(suite.now, updated.RateAppliedAt)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdate_TypeIsImmutable() {
	ctx := context.Background()
	existing := &domain.Transaction{TransactionID: 5, UserID: suite.userID, CategoryID: suite.food.CategoryID, Type: domain.Expense}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, int64(5)).Return(existing, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.salary.CategoryID).Return(suite.salary, nil).Once()

	_, err := suite.service.UpdateTransaction(ctx, suite.userID, 5, dto.UpdateTransactionRequest{
		CategoryID: suite.salary.CategoryID, Amount: decimal.NewFromInt(1), CurrencyCode: "USD", Date: day(2024, 3, 1),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestGet_OtherUserIsNotFound() {
	ctx := context.Background()
	suite.mockTxnRepo.On("FindTransactionByID", ctx, int64(8)).Return(&domain.Transaction{TransactionID: 8, UserID: 999}, nil).Once()

	txn, err := suite.service.GetTransaction(ctx, suite.userID, 8)

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestDelete() {
	ctx := context.Background()
	suite.mockTxnRepo.On("FindTransactionByID", ctx, int64(8)).Return(&domain.Transaction{TransactionID: 8, UserID: suite.userID}, nil).Once()
	suite.mockTxnRepo.On("DeleteTransaction", ctx, int64(8)).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, suite.userID, 8)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestList_DefaultsAndValidation() {
	ctx := context.Background()
	suite.mockTxnRepo.On("ListTransactions", ctx, suite.userID, domain.TransactionFilter{Limit: 50}).Return(nil, nil).Once()

	txns, err := suite.service.ListTransactions(ctx, suite.userID, domain.TransactionFilter{})
	suite.Require().NoError(err)
	suite.NotNil(txns)
	suite.Empty(txns)

	from, to := day(2024, 3, 2), day(2024, 3, 1)
	_, err = suite.service.ListTransactions(ctx, suite.userID, domain.TransactionFilter{From: &from, To: &to})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func TestTransactionService_RepoErrorPropagates(t *testing.T) {
	ctx := context.Background()
	txnRepo := new(MockTransactionRepository)
	svc := services.NewTransactionService(txnRepo, new(MockCategoryRepository), new(MockUserRepository),
		services.NewCurrencyService(new(MockCurrencyRepository)),
		services.NewRateResolver(new(MockExchangeRateRepository)),
		services.NewTransactionConverter(nil))

	txnRepo.On("FindTransactionByID", ctx, int64(1)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := svc.GetTransaction(ctx, 1, 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
