package increase

import (
	"net/url"
	"time"

	"github.com/fivetwenty-io/increase/internal/schema"
)

// ACHTransfer sends money to an external bank account over the ACH network.
type ACHTransfer struct {
	ID                       string
	AccountID                string
	AccountNumber            string
	Amount                   int64
	Approval                 *TransferApproval
	Cancellation             *TransferCancellation
	CompanyEntryDescription  *string
	CompanyName              *string
	CreatedAt                Timestamp
	Currency                 Currency
	DestinationAccountHolder ACHTransferDestinationAccountHolder
	ExternalAccountID        *string
	Funding                  ACHTransferFunding
	IdempotencyKey           *string
	IndividualName           *string
	Network                  ACHTransferNetwork
	PendingTransactionID     *string
	RoutingNumber            string
	StandardEntryClassCode   ACHTransferStandardEntryClassCode
	StatementDescriptor      string
	Status                   ACHTransferStatus
	Submission               *ACHTransferSubmission
	TransactionID            *string
	Type                     ACHTransferType
}

var achTransferSchema = schema.New("ACHTransfer",
	schema.Value("ID", "id", schema.String(), func(r *ACHTransfer) *string { return &r.ID }),
	schema.Value("AccountID", "account_id", schema.String(), func(r *ACHTransfer) *string { return &r.AccountID }),
	schema.Value("AccountNumber", "account_number", schema.String(), func(r *ACHTransfer) *string { return &r.AccountNumber }),
	schema.Value("Amount", "amount", schema.Int64(), func(r *ACHTransfer) *int64 { return &r.Amount }),
	schema.Pointer("Approval", "approval", schema.Model[TransferApproval](), func(r *ACHTransfer) **TransferApproval {
		return &r.Approval
	}),
	schema.Pointer("Cancellation", "cancellation", schema.Model[TransferCancellation](),
		func(r *ACHTransfer) **TransferCancellation { return &r.Cancellation }),
	schema.Pointer("CompanyEntryDescription", "company_entry_description", schema.String(), func(r *ACHTransfer) **string {
		return &r.CompanyEntryDescription
	}),
	schema.Pointer("CompanyName", "company_name", schema.String(), func(r *ACHTransfer) **string { return &r.CompanyName }),
	schema.Value("CreatedAt", "created_at", schema.Timestamps(), func(r *ACHTransfer) *Timestamp { return &r.CreatedAt }),
	schema.Value("Currency", "currency", schema.Enum[Currency](), func(r *ACHTransfer) *Currency { return &r.Currency }),
	schema.Value("DestinationAccountHolder", "destination_account_holder", schema.Enum[ACHTransferDestinationAccountHolder](),
		func(r *ACHTransfer) *ACHTransferDestinationAccountHolder { return &r.DestinationAccountHolder }),
	schema.Pointer("ExternalAccountID", "external_account_id", schema.String(), func(r *ACHTransfer) **string {
		return &r.ExternalAccountID
	}),
	schema.Value("Funding", "funding", schema.Enum[ACHTransferFunding](), func(r *ACHTransfer) *ACHTransferFunding {
		return &r.Funding
	}),
	schema.Pointer("IdempotencyKey", "idempotency_key", schema.String(), func(r *ACHTransfer) **string {
		return &r.IdempotencyKey
	}),
	schema.Pointer("IndividualName", "individual_name", schema.String(), func(r *ACHTransfer) **string {
		return &r.IndividualName
	}),
	schema.Value("Network", "network", schema.Enum[ACHTransferNetwork](), func(r *ACHTransfer) *ACHTransferNetwork {
		return &r.Network
	}),
	schema.Pointer("PendingTransactionID", "pending_transaction_id", schema.String(), func(r *ACHTransfer) **string {
		return &r.PendingTransactionID
	}),
	schema.Value("RoutingNumber", "routing_number", schema.String(), func(r *ACHTransfer) *string { return &r.RoutingNumber }),
	schema.Value("StandardEntryClassCode", "standard_entry_class_code", schema.Enum[ACHTransferStandardEntryClassCode](),
		func(r *ACHTransfer) *ACHTransferStandardEntryClassCode { return &r.StandardEntryClassCode }),
	schema.Value("StatementDescriptor", "statement_descriptor", schema.String(), func(r *ACHTransfer) *string {
		return &r.StatementDescriptor
	}),
	schema.Value("Status", "status", schema.Enum[ACHTransferStatus](), func(r *ACHTransfer) *ACHTransferStatus {
		return &r.Status
	}),
	schema.Pointer("Submission", "submission", schema.Model[ACHTransferSubmission](),
		func(r *ACHTransfer) **ACHTransferSubmission { return &r.Submission }),
	schema.Pointer("TransactionID", "transaction_id", schema.String(), func(r *ACHTransfer) **string {
		return &r.TransactionID
	}),
	schema.Value("Type", "type", schema.Enum[ACHTransferType](), func(r *ACHTransfer) *ACHTransferType { return &r.Type }),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *ACHTransfer) FromMap(raw map[string]any) error { return achTransferSchema.Decode(raw, r) }

// ToMap encodes r as a wire object.
func (r *ACHTransfer) ToMap() (map[string]any, error) { return achTransferSchema.Encode(r) }

// UnmarshalJSON decodes r through its schema.
func (r *ACHTransfer) UnmarshalJSON(data []byte) error { return achTransferSchema.Unmarshal(data, r) }

// MarshalJSON encodes r through its schema.
func (r ACHTransfer) MarshalJSON() ([]byte, error) { return achTransferSchema.Marshal(&r) }

// ACHTransferSubmission is set once the transfer has been sent to the Federal Reserve.
type ACHTransferSubmission struct {
	EffectiveDate             time.Time
	ExpectedFundsSettlementAt Timestamp
	SubmittedAt               Timestamp
	TraceNumber               string
}

var achTransferSubmissionSchema = schema.New("ACHTransferSubmission",
	schema.Value("EffectiveDate", "effective_date", schema.Date(), func(r *ACHTransferSubmission) *time.Time {
		return &r.EffectiveDate
	}),
	schema.Value("ExpectedFundsSettlementAt", "expected_funds_settlement_at", schema.Timestamps(),
		func(r *ACHTransferSubmission) *Timestamp { return &r.ExpectedFundsSettlementAt }),
	schema.Value("SubmittedAt", "submitted_at", schema.Timestamps(), func(r *ACHTransferSubmission) *Timestamp {
		return &r.SubmittedAt
	}),
	schema.Value("TraceNumber", "trace_number", schema.String(), func(r *ACHTransferSubmission) *string {
		return &r.TraceNumber
	}),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *ACHTransferSubmission) FromMap(raw map[string]any) error {
	return achTransferSubmissionSchema.Decode(raw, r)
}

// ToMap encodes r as a wire object.
func (r *ACHTransferSubmission) ToMap() (map[string]any, error) {
	return achTransferSubmissionSchema.Encode(r)
}

// ACHTransferDestinationAccountHolder describes the receiving account owner.
type ACHTransferDestinationAccountHolder string

const (
	ACHTransferDestinationAccountHolderBusiness   ACHTransferDestinationAccountHolder = "business"
	ACHTransferDestinationAccountHolderIndividual ACHTransferDestinationAccountHolder = "individual"
	ACHTransferDestinationAccountHolderUnknown    ACHTransferDestinationAccountHolder = "unknown"
)

// IsKnown reports whether the value is one this client version recognises.
func (r ACHTransferDestinationAccountHolder) IsKnown() bool {
	switch r {
	case ACHTransferDestinationAccountHolderBusiness, ACHTransferDestinationAccountHolderIndividual,
		ACHTransferDestinationAccountHolderUnknown:
		return true
	}

	return false
}

// ACHTransferFunding is the type of the receiving account.
type ACHTransferFunding string

const (
	ACHTransferFundingChecking ACHTransferFunding = "checking"
	ACHTransferFundingSavings  ACHTransferFunding = "savings"
)

// IsKnown reports whether the value is one this client version recognises.
func (r ACHTransferFunding) IsKnown() bool {
	switch r {
	case ACHTransferFundingChecking, ACHTransferFundingSavings:
		return true
	}

	return false
}

// ACHTransferNetwork is always "ach".
type ACHTransferNetwork string

const ACHTransferNetworkACH ACHTransferNetwork = "ach"

// IsKnown reports whether the value is one this client version recognises.
func (r ACHTransferNetwork) IsKnown() bool {
	return r == ACHTransferNetworkACH
}

// ACHTransferStandardEntryClassCode is the NACHA entry class.
type ACHTransferStandardEntryClassCode string

const (
	ACHTransferStandardEntryClassCodeCorporateCreditOrDebit        ACHTransferStandardEntryClassCode = "corporate_credit_or_debit"
	ACHTransferStandardEntryClassCodeCorporateTradeExchange        ACHTransferStandardEntryClassCode = "corporate_trade_exchange"
	ACHTransferStandardEntryClassCodePrearrangedPaymentsAndDeposit ACHTransferStandardEntryClassCode = "prearranged_payments_and_deposit"
	ACHTransferStandardEntryClassCodeInternetInitiated             ACHTransferStandardEntryClassCode = "internet_initiated"
)

// IsKnown reports whether the value is one this client version recognises.
func (r ACHTransferStandardEntryClassCode) IsKnown() bool {
	switch r {
	case ACHTransferStandardEntryClassCodeCorporateCreditOrDebit, ACHTransferStandardEntryClassCodeCorporateTradeExchange,
		ACHTransferStandardEntryClassCodePrearrangedPaymentsAndDeposit, ACHTransferStandardEntryClassCodeInternetInitiated:
		return true
	}

	return false
}

// ACHTransferStatus is the lifecycle state of an ACH transfer.
type ACHTransferStatus string

const (
	ACHTransferStatusPendingApproval   ACHTransferStatus = "pending_approval"
	ACHTransferStatusCanceled          ACHTransferStatus = "canceled"
	ACHTransferStatusPendingReviewing  ACHTransferStatus = "pending_reviewing"
	ACHTransferStatusPendingSubmission ACHTransferStatus = "pending_submission"
	ACHTransferStatusSubmitted         ACHTransferStatus = "submitted"
	ACHTransferStatusReturned          ACHTransferStatus = "returned"
	ACHTransferStatusRequiresAttention ACHTransferStatus = "requires_attention"
	ACHTransferStatusRejected          ACHTransferStatus = "rejected"
)

// IsKnown reports whether the value is one this client version recognises.
func (r ACHTransferStatus) IsKnown() bool {
	switch r {
	case ACHTransferStatusPendingApproval, ACHTransferStatusCanceled, ACHTransferStatusPendingReviewing,
		ACHTransferStatusPendingSubmission, ACHTransferStatusSubmitted, ACHTransferStatusReturned,
		ACHTransferStatusRequiresAttention, ACHTransferStatusRejected:
		return true
	}

	return false
}

// ACHTransferType is always "ach_transfer".
type ACHTransferType string

const ACHTransferTypeACHTransfer ACHTransferType = "ach_transfer"

// IsKnown reports whether the value is one this client version recognises.
func (r ACHTransferType) IsKnown() bool {
	return r == ACHTransferTypeACHTransfer
}

// ACHTransferNewParams is the body of POST /ach_transfers. Either an
// external account or an account and routing number pair must be given.
type ACHTransferNewParams struct {
	AccountID                Field[string]
	Amount                   Field[int64]
	StatementDescriptor      Field[string]
	AccountNumber            Field[string]
	RoutingNumber            Field[string]
	ExternalAccountID        Field[string]
	CompanyEntryDescription  Field[string]
	CompanyName              Field[string]
	DestinationAccountHolder Field[ACHTransferDestinationAccountHolder]
	Funding                  Field[ACHTransferFunding]
	IndividualName           Field[string]
	RequireApproval          Field[bool]
	StandardEntryClassCode   Field[ACHTransferStandardEntryClassCode]
}

var achTransferNewParamsSchema = schema.New("ACHTransferNewParams",
	schema.Slot("AccountID", "account_id", schema.String(), func(r *ACHTransferNewParams) *Field[string] {
		return &r.AccountID
	}, schema.Required),
	schema.Slot("Amount", "amount", schema.Int64(), func(r *ACHTransferNewParams) *Field[int64] {
		return &r.Amount
	}, schema.Required),
	schema.Slot("StatementDescriptor", "statement_descriptor", schema.String(), func(r *ACHTransferNewParams) *Field[string] {
		return &r.StatementDescriptor
	}, schema.Required),
	schema.Slot("AccountNumber", "account_number", schema.String(), func(r *ACHTransferNewParams) *Field[string] {
		return &r.AccountNumber
	}),
	schema.Slot("RoutingNumber", "routing_number", schema.String(), func(r *ACHTransferNewParams) *Field[string] {
		return &r.RoutingNumber
	}),
	schema.Slot("ExternalAccountID", "external_account_id", schema.String(), func(r *ACHTransferNewParams) *Field[string] {
		return &r.ExternalAccountID
	}),
	schema.Slot("CompanyEntryDescription", "company_entry_description", schema.String(),
		func(r *ACHTransferNewParams) *Field[string] { return &r.CompanyEntryDescription }),
	schema.Slot("CompanyName", "company_name", schema.String(), func(r *ACHTransferNewParams) *Field[string] {
		return &r.CompanyName
	}),
	schema.Slot("DestinationAccountHolder", "destination_account_holder", schema.Enum[ACHTransferDestinationAccountHolder](),
		func(r *ACHTransferNewParams) *Field[ACHTransferDestinationAccountHolder] { return &r.DestinationAccountHolder }),
	schema.Slot("Funding", "funding", schema.Enum[ACHTransferFunding](),
		func(r *ACHTransferNewParams) *Field[ACHTransferFunding] { return &r.Funding }),
	schema.Slot("IndividualName", "individual_name", schema.String(), func(r *ACHTransferNewParams) *Field[string] {
		return &r.IndividualName
	}),
	schema.Slot("RequireApproval", "require_approval", schema.Bool(), func(r *ACHTransferNewParams) *Field[bool] {
		return &r.RequireApproval
	}),
	schema.Slot("StandardEntryClassCode", "standard_entry_class_code", schema.Enum[ACHTransferStandardEntryClassCode](),
		func(r *ACHTransferNewParams) *Field[ACHTransferStandardEntryClassCode] { return &r.StandardEntryClassCode }),
)

// NewACHTransferNewParams returns params with the required fields set.
func NewACHTransferNewParams(accountID string, amount int64, statementDescriptor string) ACHTransferNewParams {
	return ACHTransferNewParams{
		AccountID:           F(accountID),
		Amount:              F(amount),
		StatementDescriptor: F(statementDescriptor),
	}
}

// ACHTransferNewParamsFromMap builds params from a map literal.
func ACHTransferNewParamsFromMap(raw map[string]any) (ACHTransferNewParams, error) {
	return paramFromMap(achTransferNewParamsSchema, raw)
}

// WithDestination sets the receiving account and routing numbers.
func (r ACHTransferNewParams) WithDestination(accountNumber, routingNumber string) ACHTransferNewParams {
	r.AccountNumber = F(accountNumber)
	r.RoutingNumber = F(routingNumber)

	return r
}

// WithExternalAccountID sets the external account ID.
func (r ACHTransferNewParams) WithExternalAccountID(v string) ACHTransferNewParams {
	r.ExternalAccountID = F(v)

	return r
}

// WithCompanyEntryDescription sets the company entry description.
func (r ACHTransferNewParams) WithCompanyEntryDescription(v string) ACHTransferNewParams {
	r.CompanyEntryDescription = F(v)

	return r
}

// WithCompanyName sets the company name.
func (r ACHTransferNewParams) WithCompanyName(v string) ACHTransferNewParams {
	r.CompanyName = F(v)

	return r
}

// WithDestinationAccountHolder sets the destination account holder.
func (r ACHTransferNewParams) WithDestinationAccountHolder(v ACHTransferDestinationAccountHolder) ACHTransferNewParams {
	r.DestinationAccountHolder = F(v)

	return r
}

// WithFunding sets the funding.
func (r ACHTransferNewParams) WithFunding(v ACHTransferFunding) ACHTransferNewParams {
	r.Funding = F(v)

	return r
}

// WithIndividualName sets the individual name.
func (r ACHTransferNewParams) WithIndividualName(v string) ACHTransferNewParams {
	r.IndividualName = F(v)

	return r
}

// WithRequireApproval holds the transfer until it is approved.
func (r ACHTransferNewParams) WithRequireApproval(v bool) ACHTransferNewParams {
	r.RequireApproval = F(v)

	return r
}

// WithStandardEntryClassCode sets the standard entry class code.
func (r ACHTransferNewParams) WithStandardEntryClassCode(v ACHTransferStandardEntryClassCode) ACHTransferNewParams {
	r.StandardEntryClassCode = F(v)

	return r
}

// MarshalJSON encodes r through its schema.
func (r ACHTransferNewParams) MarshalJSON() ([]byte, error) {
	return achTransferNewParamsSchema.Marshal(&r)
}

// ACHTransferListParams filters GET /ach_transfers.
type ACHTransferListParams struct {
	ListParams

	AccountID         Field[string]
	CreatedAt         Field[CreatedAtFilter]
	ExternalAccountID Field[string]
	IdempotencyKey    Field[string]
	Status            Field[StatusFilter[ACHTransferStatus]]
}

var achTransferListParamsSchema = schema.New("ACHTransferListParams", append(
	listProps(func(r *ACHTransferListParams) *ListParams { return &r.ListParams }),
	schema.Slot("AccountID", "account_id", schema.String(), func(r *ACHTransferListParams) *Field[string] {
		return &r.AccountID
	}),
	schema.Slot("CreatedAt", "created_at", schema.Model[CreatedAtFilter](),
		func(r *ACHTransferListParams) *Field[CreatedAtFilter] { return &r.CreatedAt }),
	schema.Slot("ExternalAccountID", "external_account_id", schema.String(), func(r *ACHTransferListParams) *Field[string] {
		return &r.ExternalAccountID
	}),
	schema.Slot("IdempotencyKey", "idempotency_key", schema.String(), func(r *ACHTransferListParams) *Field[string] {
		return &r.IdempotencyKey
	}),
	schema.Slot("Status", "status", statusFilterCodec[ACHTransferStatus](),
		func(r *ACHTransferListParams) *Field[StatusFilter[ACHTransferStatus]] { return &r.Status }),
)...)

// WithCursor resumes the listing from a cursor returned by a previous page.
func (r ACHTransferListParams) WithCursor(v string) ACHTransferListParams {
	r.Cursor = F(v)

	return r
}

// WithLimit caps the page size, between 1 and 100.
func (r ACHTransferListParams) WithLimit(v int64) ACHTransferListParams {
	r.Limit = F(v)

	return r
}

// WithAccountID filters by account ID.
func (r ACHTransferListParams) WithAccountID(v string) ACHTransferListParams {
	r.AccountID = F(v)

	return r
}

// WithStatus filters by status.
func (r ACHTransferListParams) WithStatus(v ...ACHTransferStatus) ACHTransferListParams {
	r.Status = F(In(v...))

	return r
}

// WithCreatedAt filters by creation time.
func (r ACHTransferListParams) WithCreatedAt(v CreatedAtFilter) ACHTransferListParams {
	r.CreatedAt = F(v)

	return r
}

// WithExternalAccountID filters by external account ID.
func (r ACHTransferListParams) WithExternalAccountID(v string) ACHTransferListParams {
	r.ExternalAccountID = F(v)

	return r
}

// WithIdempotencyKey finds the transfer created with this key.
func (r ACHTransferListParams) WithIdempotencyKey(v string) ACHTransferListParams {
	r.IdempotencyKey = F(v)

	return r
}

// ToValues encodes the params as a query string.
func (r ACHTransferListParams) ToValues() (url.Values, error) {
	return queryValues(achTransferListParamsSchema, &r)
}
