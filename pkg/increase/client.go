package increase

import (
	"context"
	"net/http"
	"time"
)

// Client provides access to every resource client.
type Client interface {
	Accounts() AccountsClient
	AccountNumbers() AccountNumbersClient
	AccountTransfers() AccountTransfersClient
	ACHTransfers() ACHTransfersClient
	Cards() CardsClient
	CardDisputes() CardDisputesClient
	Entities() EntitiesClient
	Transactions() TransactionsClient
}

// AccountsClient manages accounts.
type AccountsClient interface {
	Create(ctx context.Context, params AccountNewParams, opts ...RequestOption) (*Account, error)
	Get(ctx context.Context, accountID string, opts ...RequestOption) (*Account, error)
	Update(ctx context.Context, accountID string, params AccountUpdateParams, opts ...RequestOption) (*Account, error)
	List(ctx context.Context, params AccountListParams, opts ...RequestOption) (*Page[Account], error)
	ListAutoPaging(ctx context.Context, params AccountListParams, opts ...RequestOption) *PaginationIterator[Account]
	Balance(ctx context.Context, accountID string, params AccountBalanceParams, opts ...RequestOption) (*BalanceLookup, error)
	Close(ctx context.Context, accountID string, opts ...RequestOption) (*Account, error)
}

// AccountNumbersClient manages account numbers.
type AccountNumbersClient interface {
	Create(ctx context.Context, params AccountNumberNewParams, opts ...RequestOption) (*AccountNumber, error)
	Get(ctx context.Context, accountNumberID string, opts ...RequestOption) (*AccountNumber, error)
	Update(ctx context.Context, accountNumberID string, params AccountNumberUpdateParams, opts ...RequestOption) (*AccountNumber, error)
	List(ctx context.Context, params AccountNumberListParams, opts ...RequestOption) (*Page[AccountNumber], error)
	ListAutoPaging(ctx context.Context, params AccountNumberListParams, opts ...RequestOption) *PaginationIterator[AccountNumber]
}

// AccountTransfersClient manages transfers between accounts of the same group.
type AccountTransfersClient interface {
	Create(ctx context.Context, params AccountTransferNewParams, opts ...RequestOption) (*AccountTransfer, error)
	Get(ctx context.Context, accountTransferID string, opts ...RequestOption) (*AccountTransfer, error)
	List(ctx context.Context, params AccountTransferListParams, opts ...RequestOption) (*Page[AccountTransfer], error)
	ListAutoPaging(ctx context.Context, params AccountTransferListParams, opts ...RequestOption) *PaginationIterator[AccountTransfer]
	Approve(ctx context.Context, accountTransferID string, opts ...RequestOption) (*AccountTransfer, error)
	Cancel(ctx context.Context, accountTransferID string, opts ...RequestOption) (*AccountTransfer, error)
}

// ACHTransfersClient manages outbound ACH transfers.
type ACHTransfersClient interface {
	Create(ctx context.Context, params ACHTransferNewParams, opts ...RequestOption) (*ACHTransfer, error)
	Get(ctx context.Context, achTransferID string, opts ...RequestOption) (*ACHTransfer, error)
	List(ctx context.Context, params ACHTransferListParams, opts ...RequestOption) (*Page[ACHTransfer], error)
	ListAutoPaging(ctx context.Context, params ACHTransferListParams, opts ...RequestOption) *PaginationIterator[ACHTransfer]
	Approve(ctx context.Context, achTransferID string, opts ...RequestOption) (*ACHTransfer, error)
	Cancel(ctx context.Context, achTransferID string, opts ...RequestOption) (*ACHTransfer, error)
}

// CardsClient manages cards.
type CardsClient interface {
	Create(ctx context.Context, params CardNewParams, opts ...RequestOption) (*Card, error)
	Get(ctx context.Context, cardID string, opts ...RequestOption) (*Card, error)
	Update(ctx context.Context, cardID string, params CardUpdateParams, opts ...RequestOption) (*Card, error)
	List(ctx context.Context, params CardListParams, opts ...RequestOption) (*Page[Card], error)
	ListAutoPaging(ctx context.Context, params CardListParams, opts ...RequestOption) *PaginationIterator[Card]
	Details(ctx context.Context, cardID string, opts ...RequestOption) (*CardDetails, error)
}

// CardDisputesClient manages card disputes.
type CardDisputesClient interface {
	Create(ctx context.Context, params CardDisputeNewParams, opts ...RequestOption) (*CardDispute, error)
	Get(ctx context.Context, cardDisputeID string, opts ...RequestOption) (*CardDispute, error)
	List(ctx context.Context, params CardDisputeListParams, opts ...RequestOption) (*Page[CardDispute], error)
	ListAutoPaging(ctx context.Context, params CardDisputeListParams, opts ...RequestOption) *PaginationIterator[CardDispute]
}

// EntitiesClient manages the legal entities that own accounts.
type EntitiesClient interface {
	Create(ctx context.Context, params EntityNewParams, opts ...RequestOption) (*Entity, error)
	Get(ctx context.Context, entityID string, opts ...RequestOption) (*Entity, error)
	List(ctx context.Context, params EntityListParams, opts ...RequestOption) (*Page[Entity], error)
	ListAutoPaging(ctx context.Context, params EntityListParams, opts ...RequestOption) *PaginationIterator[Entity]
	Archive(ctx context.Context, entityID string, opts ...RequestOption) (*Entity, error)
}

// TransactionsClient reads settled transactions.
type TransactionsClient interface {
	Get(ctx context.Context, transactionID string, opts ...RequestOption) (*Transaction, error)
	List(ctx context.Context, params TransactionListParams, opts ...RequestOption) (*Page[Transaction], error)
	ListAutoPaging(ctx context.Context, params TransactionListParams, opts ...RequestOption) *PaginationIterator[Transaction]
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an increase.Client.
//
// # Environments
//
// BaseURL wins over Environment. With neither set, production is used.
// increaseclient.New fills APIKey and BaseURL from INCREASE_API_KEY and
// INCREASE_BASE_URL when they are empty.
//
// # Retries
//
// Connection errors, 429 and 5xx responses are retried up to RetryMax times
// with exponential backoff between RetryWaitMin and RetryWaitMax, honouring
// Retry-After. POST requests carry an Idempotency-Key so that a retried create
// is applied at most once.
type Config struct {
	// APIKey is sent as a Bearer token.
	APIKey string
	// Environment is "production" or "sandbox".
	Environment string
	// BaseURL overrides Environment, e.g. for a local mock server.
	BaseURL string

	// HTTPTimeout bounds each attempt. Zero uses the default.
	HTTPTimeout time.Duration
	// RetryMax is the number of retries after the first attempt. Zero uses the
	// default of 2; use DisableRetries for none.
	RetryMax int
	// DisableRetries sends every request exactly once.
	DisableRetries bool
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug enables request and response logging when a Logger is provided.
	Debug bool
	// Logger receives retry warnings and, with Debug, request logs.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Interceptors run around every request.
	Interceptors *InterceptorChain
	// Cache stores GET responses for CacheTTL. Nil disables caching.
	Cache Cache
	// CacheTTL defaults to 30 seconds when Cache is set.
	CacheTTL time.Duration

	// HTTPClient replaces the underlying transport client.
	HTTPClient *http.Client
}
