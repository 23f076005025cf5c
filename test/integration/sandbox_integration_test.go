//go:build integration

package integration

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/fivetwenty-io/increase/pkg/increase"
	"github.com/fivetwenty-io/increase/pkg/increaseclient"
	"github.com/stretchr/testify/suite"
)

// SandboxIntegrationTestSuite exercises the client against the Increase
// sandbox. It needs INCREASE_SANDBOX_API_KEY.
type SandboxIntegrationTestSuite struct {
	suite.Suite

	client    increase.Client
	ctx       context.Context
	cancel    context.CancelFunc
	accountID string
}

func (s *SandboxIntegrationTestSuite) SetupSuite() {
	apiKey := os.Getenv("INCREASE_SANDBOX_API_KEY")
	if apiKey == "" {
		s.T().Skip("INCREASE_SANDBOX_API_KEY not set, skipping integration tests")
	}

	client, err := increaseclient.NewSandbox(apiKey)
	s.Require().NoError(err)

	s.client = client
	s.ctx, s.cancel = context.WithTimeout(context.Background(), 2*time.Minute)

	account, err := s.client.Accounts().Create(s.ctx,
		increase.NewAccountNewParams(fmt.Sprintf("integration-%d", time.Now().Unix())))
	s.Require().NoError(err)

	s.accountID = account.ID
}

func (s *SandboxIntegrationTestSuite) TearDownSuite() {
	if s.accountID != "" {
		_, err := s.client.Accounts().Close(s.ctx, s.accountID)
		s.NoError(err)
	}

	if s.cancel != nil {
		s.cancel()
	}
}

func (s *SandboxIntegrationTestSuite) TestGetAccount() {
	account, err := s.client.Accounts().Get(s.ctx, s.accountID)
	s.Require().NoError(err)
	s.Equal(s.accountID, account.ID)
	s.Equal(increase.AccountStatusOpen, account.Status)
}

func (s *SandboxIntegrationTestSuite) TestBalance() {
	balance, err := s.client.Accounts().Balance(s.ctx, s.accountID, increase.AccountBalanceParams{})
	s.Require().NoError(err)
	s.Equal(s.accountID, balance.AccountID)
	s.Equal(int64(0), balance.CurrentBalance)
}

func (s *SandboxIntegrationTestSuite) TestListAutoPaging() {
	iter := s.client.Accounts().ListAutoPaging(s.ctx, increase.AccountListParams{}.WithLimit(1))

	found := false

	for account, err := range iter.Seq() {
		s.Require().NoError(err)

		if account.ID == s.accountID {
			found = true

			break
		}
	}

	s.True(found, "created account not listed")
}

func (s *SandboxIntegrationTestSuite) TestObjectNotFound() {
	_, err := s.client.Accounts().Get(s.ctx, "account_does_not_exist")
	s.Require().Error(err)

	var notFound *increase.ObjectNotFoundError
	s.True(errors.As(err, &notFound), "got %T", err)
}

func (s *SandboxIntegrationTestSuite) TestIdempotentCreate() {
	key := fmt.Sprintf("integration-number-%d", time.Now().UnixNano())
	params := increase.NewAccountNumberNewParams(s.accountID, "Integration")

	first, err := s.client.AccountNumbers().Create(s.ctx, params, increase.WithIdempotencyKey(key))
	s.Require().NoError(err)

	second, err := s.client.AccountNumbers().Create(s.ctx, params, increase.WithIdempotencyKey(key))
	s.Require().NoError(err)
	s.Equal(first.ID, second.ID)
}

func TestSandboxIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SandboxIntegrationTestSuite))
}
