package increase

import (
	"net/url"

	"github.com/fivetwenty-io/increase/internal/schema"
)

// TransferApproval records who approved a transfer that required approval.
type TransferApproval struct {
	ApprovedAt Timestamp
	ApprovedBy *string
}

var transferApprovalSchema = schema.New("TransferApproval",
	schema.Value("ApprovedAt", "approved_at", schema.Timestamps(), func(r *TransferApproval) *Timestamp { return &r.ApprovedAt }),
	schema.Pointer("ApprovedBy", "approved_by", schema.String(), func(r *TransferApproval) **string { return &r.ApprovedBy }),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *TransferApproval) FromMap(raw map[string]any) error { return transferApprovalSchema.Decode(raw, r) }

// ToMap encodes r as a wire object.
func (r *TransferApproval) ToMap() (map[string]any, error) { return transferApprovalSchema.Encode(r) }

// TransferCancellation records who canceled a pending transfer.
type TransferCancellation struct {
	CanceledAt Timestamp
	CanceledBy *string
}

var transferCancellationSchema = schema.New("TransferCancellation",
	schema.Value("CanceledAt", "canceled_at", schema.Timestamps(), func(r *TransferCancellation) *Timestamp { return &r.CanceledAt }),
	schema.Pointer("CanceledBy", "canceled_by", schema.String(), func(r *TransferCancellation) **string { return &r.CanceledBy }),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *TransferCancellation) FromMap(raw map[string]any) error {
	return transferCancellationSchema.Decode(raw, r)
}

// ToMap encodes r as a wire object.
func (r *TransferCancellation) ToMap() (map[string]any, error) {
	return transferCancellationSchema.Encode(r)
}

// AccountTransfer moves money between two accounts in the same group.
type AccountTransfer struct {
	ID                       string
	AccountID                string
	Amount                   int64
	Approval                 *TransferApproval
	Cancellation             *TransferCancellation
	CreatedAt                Timestamp
	Currency                 Currency
	Description              string
	DestinationAccountID     string
	DestinationTransactionID *string
	IdempotencyKey           *string
	Network                  AccountTransferNetwork
	PendingTransactionID     *string
	Status                   AccountTransferStatus
	TransactionID            *string
	Type                     AccountTransferType
}

var accountTransferSchema = schema.New("AccountTransfer",
	schema.Value("ID", "id", schema.String(), func(r *AccountTransfer) *string { return &r.ID }),
	schema.Value("AccountID", "account_id", schema.String(), func(r *AccountTransfer) *string { return &r.AccountID }),
	schema.Value("Amount", "amount", schema.Int64(), func(r *AccountTransfer) *int64 { return &r.Amount }),
	schema.Pointer("Approval", "approval", schema.Model[TransferApproval](), func(r *AccountTransfer) **TransferApproval {
		return &r.Approval
	}),
	schema.Pointer("Cancellation", "cancellation", schema.Model[TransferCancellation](),
		func(r *AccountTransfer) **TransferCancellation { return &r.Cancellation }),
	schema.Value("CreatedAt", "created_at", schema.Timestamps(), func(r *AccountTransfer) *Timestamp { return &r.CreatedAt }),
	schema.Value("Currency", "currency", schema.Enum[Currency](), func(r *AccountTransfer) *Currency { return &r.Currency }),
	schema.Value("Description", "description", schema.String(), func(r *AccountTransfer) *string { return &r.Description }),
	schema.Value("DestinationAccountID", "destination_account_id", schema.String(), func(r *AccountTransfer) *string {
		return &r.DestinationAccountID
	}),
	schema.Pointer("DestinationTransactionID", "destination_transaction_id", schema.String(), func(r *AccountTransfer) **string {
		return &r.DestinationTransactionID
	}),
	schema.Pointer("IdempotencyKey", "idempotency_key", schema.String(), func(r *AccountTransfer) **string {
		return &r.IdempotencyKey
	}),
	schema.Value("Network", "network", schema.Enum[AccountTransferNetwork](), func(r *AccountTransfer) *AccountTransferNetwork {
		return &r.Network
	}),
	schema.Pointer("PendingTransactionID", "pending_transaction_id", schema.String(), func(r *AccountTransfer) **string {
		return &r.PendingTransactionID
	}),
	schema.Value("Status", "status", schema.Enum[AccountTransferStatus](), func(r *AccountTransfer) *AccountTransferStatus {
		return &r.Status
	}),
	schema.Pointer("TransactionID", "transaction_id", schema.String(), func(r *AccountTransfer) **string {
		return &r.TransactionID
	}),
	schema.Value("Type", "type", schema.Enum[AccountTransferType](), func(r *AccountTransfer) *AccountTransferType { return &r.Type }),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *AccountTransfer) FromMap(raw map[string]any) error { return accountTransferSchema.Decode(raw, r) }

// ToMap encodes r as a wire object.
func (r *AccountTransfer) ToMap() (map[string]any, error) { return accountTransferSchema.Encode(r) }

// UnmarshalJSON decodes r through its schema.
func (r *AccountTransfer) UnmarshalJSON(data []byte) error { return accountTransferSchema.Unmarshal(data, r) }

// MarshalJSON encodes r through its schema.
func (r AccountTransfer) MarshalJSON() ([]byte, error) { return accountTransferSchema.Marshal(&r) }

// AccountTransferNetwork is always "account".
type AccountTransferNetwork string

const AccountTransferNetworkAccount AccountTransferNetwork = "account"

// IsKnown reports whether the value is one this client version recognises.
func (r AccountTransferNetwork) IsKnown() bool {
	return r == AccountTransferNetworkAccount
}

// AccountTransferStatus is the lifecycle state of an account transfer.
type AccountTransferStatus string

const (
	AccountTransferStatusPendingApproval AccountTransferStatus = "pending_approval"
	AccountTransferStatusCanceled        AccountTransferStatus = "canceled"
	AccountTransferStatusComplete        AccountTransferStatus = "complete"
)

// IsKnown reports whether the value is one this client version recognises.
func (r AccountTransferStatus) IsKnown() bool {
	switch r {
	case AccountTransferStatusPendingApproval, AccountTransferStatusCanceled, AccountTransferStatusComplete:
		return true
	}

	return false
}

// AccountTransferType is always "account_transfer".
type AccountTransferType string

const AccountTransferTypeAccountTransfer AccountTransferType = "account_transfer"

// IsKnown reports whether the value is one this client version recognises.
func (r AccountTransferType) IsKnown() bool {
	return r == AccountTransferTypeAccountTransfer
}

// AccountTransferNewParams is the body of POST /account_transfers.
type AccountTransferNewParams struct {
	AccountID            Field[string]
	Amount               Field[int64]
	Description          Field[string]
	DestinationAccountID Field[string]
	RequireApproval      Field[bool]
}

var accountTransferNewParamsSchema = schema.New("AccountTransferNewParams",
	schema.Slot("AccountID", "account_id", schema.String(), func(r *AccountTransferNewParams) *Field[string] {
		return &r.AccountID
	}, schema.Required),
	schema.Slot("Amount", "amount", schema.Int64(), func(r *AccountTransferNewParams) *Field[int64] {
		return &r.Amount
	}, schema.Required),
	schema.Slot("Description", "description", schema.String(), func(r *AccountTransferNewParams) *Field[string] {
		return &r.Description
	}, schema.Required),
	schema.Slot("DestinationAccountID", "destination_account_id", schema.String(), func(r *AccountTransferNewParams) *Field[string] {
		return &r.DestinationAccountID
	}, schema.Required),
	schema.Slot("RequireApproval", "require_approval", schema.Bool(), func(r *AccountTransferNewParams) *Field[bool] {
		return &r.RequireApproval
	}),
)

// NewAccountTransferNewParams returns params with the required fields set.
// Amount is in the minor unit of the account currency.
func NewAccountTransferNewParams(accountID string, amount int64, description, destinationAccountID string) AccountTransferNewParams {
	return AccountTransferNewParams{
		AccountID:            F(accountID),
		Amount:               F(amount),
		Description:          F(description),
		DestinationAccountID: F(destinationAccountID),
	}
}

// AccountTransferNewParamsFromMap builds params from a map literal.
func AccountTransferNewParamsFromMap(raw map[string]any) (AccountTransferNewParams, error) {
	return paramFromMap(accountTransferNewParamsSchema, raw)
}

// WithRequireApproval holds the transfer until it is approved.
func (r AccountTransferNewParams) WithRequireApproval(v bool) AccountTransferNewParams {
	r.RequireApproval = F(v)

	return r
}

// MarshalJSON encodes r through its schema.
func (r AccountTransferNewParams) MarshalJSON() ([]byte, error) {
	return accountTransferNewParamsSchema.Marshal(&r)
}

// AccountTransferListParams filters GET /account_transfers.
type AccountTransferListParams struct {
	ListParams

	AccountID      Field[string]
	CreatedAt      Field[CreatedAtFilter]
	IdempotencyKey Field[string]
}

var accountTransferListParamsSchema = schema.New("AccountTransferListParams", append(
	listProps(func(r *AccountTransferListParams) *ListParams { return &r.ListParams }),
	schema.Slot("AccountID", "account_id", schema.String(), func(r *AccountTransferListParams) *Field[string] {
		return &r.AccountID
	}),
	schema.Slot("CreatedAt", "created_at", schema.Model[CreatedAtFilter](),
		func(r *AccountTransferListParams) *Field[CreatedAtFilter] { return &r.CreatedAt }),
	schema.Slot("IdempotencyKey", "idempotency_key", schema.String(), func(r *AccountTransferListParams) *Field[string] {
		return &r.IdempotencyKey
	}),
)...)

// WithCursor resumes the listing from a cursor returned by a previous page.
func (r AccountTransferListParams) WithCursor(v string) AccountTransferListParams {
	r.Cursor = F(v)

	return r
}

// WithLimit caps the page size, between 1 and 100.
func (r AccountTransferListParams) WithLimit(v int64) AccountTransferListParams {
	r.Limit = F(v)

	return r
}

// WithAccountID filters by account ID.
func (r AccountTransferListParams) WithAccountID(v string) AccountTransferListParams {
	r.AccountID = F(v)

	return r
}

// WithCreatedAt filters by creation time.
func (r AccountTransferListParams) WithCreatedAt(v CreatedAtFilter) AccountTransferListParams {
	r.CreatedAt = F(v)

	return r
}

// WithIdempotencyKey finds the transfer created with this key.
func (r AccountTransferListParams) WithIdempotencyKey(v string) AccountTransferListParams {
	r.IdempotencyKey = F(v)

	return r
}

// ToValues encodes the params as a query string.
func (r AccountTransferListParams) ToValues() (url.Values, error) {
	return queryValues(accountTransferListParamsSchema, &r)
}
