package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/core/services"
	"github.com/SscSPs/money_tracker/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Success() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{Code: "TST", Symbol: "T", Name: "Test Currency"}

	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.Code == req.Code && c.Symbol == req.Symbol && c.Name == req.Name &&
			c.IsActive && c.CreatedBy == "42" && c.LastUpdatedBy == "42"
	})).Return(&domain.Currency{CurrencyID: 9, Code: "TST", Symbol: "T", Name: "Test Currency", IsActive: true}, nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, 42)

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.Equal(int64(9), currency.CurrencyID)
	suite.Equal(req.Code, currency.Code)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_SaveError() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{Code: "ERR", Symbol: "E", Name: "Error Currency"}

	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(nil, apperrors.ErrDuplicate).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, 42)

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_Success() {
	ctx := context.Background()
	expectedCurrency := &domain.Currency{CurrencyID: 1, Code: "TST"}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "TST").Return(expectedCurrency, nil).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "tst")

	suite.Require().NoError(err)
	suite.Equal(expectedCurrency, currency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindCurrencyByCode", ctx, "NTF").Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "NTF")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_Empty() {
	ctx := context.Background()
	var expectedCurrencies []domain.Currency

	suite.mockRepo.On("ListCurrencies", ctx).Return(expectedCurrencies, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.Empty(currencies)
	suite.NotNil(currencies)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_RepoError() {
	ctx := context.Background()

	suite.mockRepo.On("ListCurrencies", ctx).Return(nil, assert.AnError).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().Error(err)
	suite.Nil(currencies)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *CurrencyServiceTestSuite) TestSetCurrencyActive() {
	ctx := context.Background()
	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").Return(&domain.Currency{CurrencyID: eurID, Code: "EUR", IsActive: true}, nil).Once()
	suite.mockRepo.On("SetCurrencyActive", ctx, eurID, false, "42").Return(nil).Once()

	currency, err := suite.service.SetCurrencyActive(ctx, "EUR", false, 42)

	suite.Require().NoError(err)
	suite.False(currency.IsActive)
	suite.Equal("42", currency.LastUpdatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestCurrencyService(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
