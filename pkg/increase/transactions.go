package increase

import (
	"net/url"

	"github.com/fivetwenty-io/increase/internal/schema"
)

// Transaction is a posted movement of funds on an account. Source says what
// caused it.
type Transaction struct {
	ID          string
	AccountID   string
	Amount      int64
	CreatedAt   Timestamp
	Currency    Currency
	Description string
	RouteID     *string
	RouteType   *TransactionRouteType
	Source      TransactionSource
	Type        TransactionType
}

var transactionSchema = schema.New("Transaction",
	schema.Value("ID", "id", schema.String(), func(r *Transaction) *string { return &r.ID }),
	schema.Value("AccountID", "account_id", schema.String(), func(r *Transaction) *string { return &r.AccountID }),
	schema.Value("Amount", "amount", schema.Int64(), func(r *Transaction) *int64 { return &r.Amount }),
	schema.Value("CreatedAt", "created_at", schema.Timestamps(), func(r *Transaction) *Timestamp { return &r.CreatedAt }),
	schema.Value("Currency", "currency", schema.Enum[Currency](), func(r *Transaction) *Currency { return &r.Currency }),
	schema.Value("Description", "description", schema.String(), func(r *Transaction) *string { return &r.Description }),
	schema.Pointer("RouteID", "route_id", schema.String(), func(r *Transaction) **string { return &r.RouteID }),
	schema.Pointer("RouteType", "route_type", schema.Enum[TransactionRouteType](), func(r *Transaction) **TransactionRouteType {
		return &r.RouteType
	}),
	schema.Value("Source", "source", schema.Model[TransactionSource](), func(r *Transaction) *TransactionSource { return &r.Source }),
	schema.Value("Type", "type", schema.Enum[TransactionType](), func(r *Transaction) *TransactionType { return &r.Type }),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *Transaction) FromMap(raw map[string]any) error { return transactionSchema.Decode(raw, r) }

// ToMap encodes r as a wire object.
func (r *Transaction) ToMap() (map[string]any, error) { return transactionSchema.Encode(r) }

// UnmarshalJSON decodes r through its schema.
func (r *Transaction) UnmarshalJSON(data []byte) error { return transactionSchema.Unmarshal(data, r) }

// MarshalJSON encodes r through its schema.
func (r Transaction) MarshalJSON() ([]byte, error) { return transactionSchema.Marshal(&r) }

// TransactionSource is a tagged union: Category names the variant and the
// matching field is non-nil. Variant keys may be absent or null. For
// categories this client does not model, every variant field is nil and
// Category still carries the raw tag.
type TransactionSource struct {
	Category                 TransactionSourceCategory
	AccountTransferIntention *TransactionSourceAccountTransferIntention
	ACHTransferIntention     *TransactionSourceACHTransferIntention
	InterestPayment          *TransactionSourceInterestPayment
}

var transactionSourceSchema = schema.New("TransactionSource",
	schema.Value("Category", "category", schema.Enum[TransactionSourceCategory](),
		func(r *TransactionSource) *TransactionSourceCategory { return &r.Category }),
	schema.Optional("AccountTransferIntention", "account_transfer_intention",
		schema.Model[TransactionSourceAccountTransferIntention](),
		func(r *TransactionSource) **TransactionSourceAccountTransferIntention { return &r.AccountTransferIntention }),
	schema.Optional("ACHTransferIntention", "ach_transfer_intention", schema.Model[TransactionSourceACHTransferIntention](),
		func(r *TransactionSource) **TransactionSourceACHTransferIntention { return &r.ACHTransferIntention }),
	schema.Optional("InterestPayment", "interest_payment", schema.Model[TransactionSourceInterestPayment](),
		func(r *TransactionSource) **TransactionSourceInterestPayment { return &r.InterestPayment }),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *TransactionSource) FromMap(raw map[string]any) error { return transactionSourceSchema.Decode(raw, r) }

// ToMap encodes r as a wire object.
func (r *TransactionSource) ToMap() (map[string]any, error) { return transactionSourceSchema.Encode(r) }

// TransactionSourceAccountTransferIntention is the source of a transaction
// created by an account transfer.
type TransactionSourceAccountTransferIntention struct {
	Amount               int64
	Currency             Currency
	Description          string
	DestinationAccountID string
	SourceAccountID      string
	TransferID           string
}

var transactionSourceAccountTransferIntentionSchema = schema.New("TransactionSourceAccountTransferIntention",
	schema.Value("Amount", "amount", schema.Int64(), func(r *TransactionSourceAccountTransferIntention) *int64 {
		return &r.Amount
	}),
	schema.Value("Currency", "currency", schema.Enum[Currency](), func(r *TransactionSourceAccountTransferIntention) *Currency {
		return &r.Currency
	}),
	schema.Value("Description", "description", schema.String(), func(r *TransactionSourceAccountTransferIntention) *string {
		return &r.Description
	}),
	schema.Value("DestinationAccountID", "destination_account_id", schema.String(),
		func(r *TransactionSourceAccountTransferIntention) *string { return &r.DestinationAccountID }),
	schema.Value("SourceAccountID", "source_account_id", schema.String(),
		func(r *TransactionSourceAccountTransferIntention) *string { return &r.SourceAccountID }),
	schema.Value("TransferID", "transfer_id", schema.String(), func(r *TransactionSourceAccountTransferIntention) *string {
		return &r.TransferID
	}),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *TransactionSourceAccountTransferIntention) FromMap(raw map[string]any) error {
	return transactionSourceAccountTransferIntentionSchema.Decode(raw, r)
}

// ToMap encodes r as a wire object.
func (r *TransactionSourceAccountTransferIntention) ToMap() (map[string]any, error) {
	return transactionSourceAccountTransferIntentionSchema.Encode(r)
}

// TransactionSourceACHTransferIntention is the source of a transaction
// created by an outbound ACH transfer.
type TransactionSourceACHTransferIntention struct {
	AccountNumber       string
	Amount              int64
	RoutingNumber       string
	StatementDescriptor string
	TransferID          string
}

var transactionSourceACHTransferIntentionSchema = schema.New("TransactionSourceACHTransferIntention",
	schema.Value("AccountNumber", "account_number", schema.String(), func(r *TransactionSourceACHTransferIntention) *string {
		return &r.AccountNumber
	}),
	schema.Value("Amount", "amount", schema.Int64(), func(r *TransactionSourceACHTransferIntention) *int64 { return &r.Amount }),
	schema.Value("RoutingNumber", "routing_number", schema.String(), func(r *TransactionSourceACHTransferIntention) *string {
		return &r.RoutingNumber
	}),
	schema.Value("StatementDescriptor", "statement_descriptor", schema.String(),
		func(r *TransactionSourceACHTransferIntention) *string { return &r.StatementDescriptor }),
	schema.Value("TransferID", "transfer_id", schema.String(), func(r *TransactionSourceACHTransferIntention) *string {
		return &r.TransferID
	}),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *TransactionSourceACHTransferIntention) FromMap(raw map[string]any) error {
	return transactionSourceACHTransferIntentionSchema.Decode(raw, r)
}

// ToMap encodes r as a wire object.
func (r *TransactionSourceACHTransferIntention) ToMap() (map[string]any, error) {
	return transactionSourceACHTransferIntentionSchema.Encode(r)
}

// TransactionSourceInterestPayment is the source of a monthly interest credit.
type TransactionSourceInterestPayment struct {
	AccruedOnAccountID string
	Amount             int64
	Currency           Currency
	PeriodEnd          Timestamp
	PeriodStart        Timestamp
}

var transactionSourceInterestPaymentSchema = schema.New("TransactionSourceInterestPayment",
	schema.Value("AccruedOnAccountID", "accrued_on_account_id", schema.String(),
		func(r *TransactionSourceInterestPayment) *string { return &r.AccruedOnAccountID }),
	schema.Value("Amount", "amount", schema.Int64(), func(r *TransactionSourceInterestPayment) *int64 { return &r.Amount }),
	schema.Value("Currency", "currency", schema.Enum[Currency](), func(r *TransactionSourceInterestPayment) *Currency {
		return &r.Currency
	}),
	schema.Value("PeriodEnd", "period_end", schema.Timestamps(), func(r *TransactionSourceInterestPayment) *Timestamp {
		return &r.PeriodEnd
	}),
	schema.Value("PeriodStart", "period_start", schema.Timestamps(), func(r *TransactionSourceInterestPayment) *Timestamp {
		return &r.PeriodStart
	}),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *TransactionSourceInterestPayment) FromMap(raw map[string]any) error {
	return transactionSourceInterestPaymentSchema.Decode(raw, r)
}

// ToMap encodes r as a wire object.
func (r *TransactionSourceInterestPayment) ToMap() (map[string]any, error) {
	return transactionSourceInterestPaymentSchema.Encode(r)
}

// TransactionSourceCategory tags the variant held by a TransactionSource.
type TransactionSourceCategory string

const (
	TransactionSourceCategoryAccountTransferIntention TransactionSourceCategory = "account_transfer_intention"
	TransactionSourceCategoryACHTransferIntention     TransactionSourceCategory = "ach_transfer_intention"
	TransactionSourceCategoryACHTransferRejection     TransactionSourceCategory = "ach_transfer_rejection"
	TransactionSourceCategoryACHTransferReturn        TransactionSourceCategory = "ach_transfer_return"
	TransactionSourceCategoryCardDisputeAcceptance    TransactionSourceCategory = "card_dispute_acceptance"
	TransactionSourceCategoryCardRefund               TransactionSourceCategory = "card_refund"
	TransactionSourceCategoryCardSettlement           TransactionSourceCategory = "card_settlement"
	TransactionSourceCategoryFeePayment               TransactionSourceCategory = "fee_payment"
	TransactionSourceCategoryInboundACHTransfer       TransactionSourceCategory = "inbound_ach_transfer"
	TransactionSourceCategoryInterestPayment          TransactionSourceCategory = "interest_payment"
	TransactionSourceCategoryInternalSource           TransactionSourceCategory = "internal_source"
	TransactionSourceCategoryOther                    TransactionSourceCategory = "other"
)

// IsKnown reports whether the value is one this client version recognises.
func (r TransactionSourceCategory) IsKnown() bool {
	switch r {
	case TransactionSourceCategoryAccountTransferIntention, TransactionSourceCategoryACHTransferIntention,
		TransactionSourceCategoryACHTransferRejection, TransactionSourceCategoryACHTransferReturn,
		TransactionSourceCategoryCardDisputeAcceptance, TransactionSourceCategoryCardRefund,
		TransactionSourceCategoryCardSettlement, TransactionSourceCategoryFeePayment,
		TransactionSourceCategoryInboundACHTransfer, TransactionSourceCategoryInterestPayment,
		TransactionSourceCategoryInternalSource, TransactionSourceCategoryOther:
		return true
	}

	return false
}

// TransactionRouteType is the kind of route a transaction arrived through.
type TransactionRouteType string

const (
	TransactionRouteTypeAccountNumber TransactionRouteType = "account_number"
	TransactionRouteTypeCard          TransactionRouteType = "card"
	TransactionRouteTypeLockbox       TransactionRouteType = "lockbox"
)

// IsKnown reports whether the value is one this client version recognises.
func (r TransactionRouteType) IsKnown() bool {
	switch r {
	case TransactionRouteTypeAccountNumber, TransactionRouteTypeCard, TransactionRouteTypeLockbox:
		return true
	}

	return false
}

// TransactionType is always "transaction".
type TransactionType string

const TransactionTypeTransaction TransactionType = "transaction"

// IsKnown reports whether the value is one this client version recognises.
func (r TransactionType) IsKnown() bool {
	return r == TransactionTypeTransaction
}

// TransactionListParams filters GET /transactions.
type TransactionListParams struct {
	ListParams

	AccountID Field[string]
	Category  Field[StatusFilter[TransactionSourceCategory]]
	CreatedAt Field[CreatedAtFilter]
	RouteID   Field[string]
}

var transactionListParamsSchema = schema.New("TransactionListParams", append(
	listProps(func(r *TransactionListParams) *ListParams { return &r.ListParams }),
	schema.Slot("AccountID", "account_id", schema.String(), func(r *TransactionListParams) *Field[string] {
		return &r.AccountID
	}),
	schema.Slot("Category", "category", statusFilterCodec[TransactionSourceCategory](),
		func(r *TransactionListParams) *Field[StatusFilter[TransactionSourceCategory]] { return &r.Category }),
	schema.Slot("CreatedAt", "created_at", schema.Model[CreatedAtFilter](),
		func(r *TransactionListParams) *Field[CreatedAtFilter] { return &r.CreatedAt }),
	schema.Slot("RouteID", "route_id", schema.String(), func(r *TransactionListParams) *Field[string] { return &r.RouteID }),
)...)

// WithCursor resumes the listing from a cursor returned by a previous page.
func (r TransactionListParams) WithCursor(v string) TransactionListParams {
	r.Cursor = F(v)

	return r
}

// WithLimit caps the page size, between 1 and 100.
func (r TransactionListParams) WithLimit(v int64) TransactionListParams {
	r.Limit = F(v)

	return r
}

// WithAccountID filters by account ID.
func (r TransactionListParams) WithAccountID(v string) TransactionListParams {
	r.AccountID = F(v)

	return r
}

// WithCategory filters by category.
func (r TransactionListParams) WithCategory(v ...TransactionSourceCategory) TransactionListParams {
	r.Category = F(In(v...))

	return r
}

// WithCreatedAt filters by creation time.
func (r TransactionListParams) WithCreatedAt(v CreatedAtFilter) TransactionListParams {
	r.CreatedAt = F(v)

	return r
}

// WithRouteID filters by the card or account number that moved the money.
func (r TransactionListParams) WithRouteID(v string) TransactionListParams {
	r.RouteID = F(v)

	return r
}

// ToValues encodes the params as a query string.
func (r TransactionListParams) ToValues() (url.Values, error) {
	return queryValues(transactionListParamsSchema, &r)
}
