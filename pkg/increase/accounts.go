package increase

import (
	"net/url"
	"time"

	"github.com/fivetwenty-io/increase/internal/schema"
)

// Account holds money at a partner bank on behalf of an entity.
type Account struct {
	ID                    string
	Bank                  AccountBank
	ClosedAt              *Timestamp
	CreatedAt             Timestamp
	Currency              Currency
	EntityID              *string
	IdempotencyKey        *string
	InformationalEntityID *string
	// InterestAccrued is a decimal string in the account currency.
	InterestAccrued   string
	InterestAccruedAt *time.Time
	InterestRate      string
	Name              string
	ProgramID         string
	Status            AccountStatus
	Type              AccountType
}

var accountSchema = schema.New("Account",
	schema.Value("ID", "id", schema.String(), func(r *Account) *string { return &r.ID }),
	schema.Value("Bank", "bank", schema.Enum[AccountBank](), func(r *Account) *AccountBank { return &r.Bank }),
	schema.Pointer("ClosedAt", "closed_at", schema.Timestamps(), func(r *Account) **Timestamp { return &r.ClosedAt }),
	schema.Value("CreatedAt", "created_at", schema.Timestamps(), func(r *Account) *Timestamp { return &r.CreatedAt }),
	schema.Value("Currency", "currency", schema.Enum[Currency](), func(r *Account) *Currency { return &r.Currency }),
	schema.Pointer("EntityID", "entity_id", schema.String(), func(r *Account) **string { return &r.EntityID }),
	schema.Pointer("IdempotencyKey", "idempotency_key", schema.String(), func(r *Account) **string { return &r.IdempotencyKey }),
	schema.Pointer("InformationalEntityID", "informational_entity_id", schema.String(), func(r *Account) **string {
		return &r.InformationalEntityID
	}),
	schema.Value("InterestAccrued", "interest_accrued", schema.String(), func(r *Account) *string { return &r.InterestAccrued }),
	schema.Pointer("InterestAccruedAt", "interest_accrued_at", schema.Date(), func(r *Account) **time.Time {
		return &r.InterestAccruedAt
	}),
	schema.Value("InterestRate", "interest_rate", schema.String(), func(r *Account) *string { return &r.InterestRate }),
	schema.Value("Name", "name", schema.String(), func(r *Account) *string { return &r.Name }),
	schema.Value("ProgramID", "program_id", schema.String(), func(r *Account) *string { return &r.ProgramID }),
	schema.Value("Status", "status", schema.Enum[AccountStatus](), func(r *Account) *AccountStatus { return &r.Status }),
	schema.Value("Type", "type", schema.Enum[AccountType](), func(r *Account) *AccountType { return &r.Type }),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *Account) FromMap(raw map[string]any) error { return accountSchema.Decode(raw, r) }

// ToMap encodes r as a wire object.
func (r *Account) ToMap() (map[string]any, error) { return accountSchema.Encode(r) }

// UnmarshalJSON decodes r through its schema.
func (r *Account) UnmarshalJSON(data []byte) error  { return accountSchema.Unmarshal(data, r) }

// MarshalJSON encodes r through its schema.
func (r Account) MarshalJSON() ([]byte, error) { return accountSchema.Marshal(&r) }

// AccountBank is the partner bank holding the funds.
type AccountBank string

const (
	AccountBankCoreBank          AccountBank = "core_bank"
	AccountBankFirstInternetBank AccountBank = "first_internet_bank"
	AccountBankGrasshopperBank   AccountBank = "grasshopper_bank"
)

// IsKnown reports whether the value is one this client version recognises.
func (r AccountBank) IsKnown() bool {
	switch r {
	case AccountBankCoreBank, AccountBankFirstInternetBank, AccountBankGrasshopperBank:
		return true
	}

	return false
}

// AccountStatus is the lifecycle state of an account.
type AccountStatus string

const (
	AccountStatusClosed AccountStatus = "closed"
	AccountStatusOpen   AccountStatus = "open"
)

// IsKnown reports whether the value is one this client version recognises.
func (r AccountStatus) IsKnown() bool {
	switch r {
	case AccountStatusClosed, AccountStatusOpen:
		return true
	}

	return false
}

// AccountType is always "account".
type AccountType string

const AccountTypeAccount AccountType = "account"

// IsKnown reports whether the value is one this client version recognises.
func (r AccountType) IsKnown() bool {
	return r == AccountTypeAccount
}

// BalanceLookup is the balance of an account at a point in time. Amounts are
// in the minor unit of the account currency.
type BalanceLookup struct {
	AccountID        string
	AvailableBalance int64
	CurrentBalance   int64
	Type             BalanceLookupType
}

var balanceLookupSchema = schema.New("BalanceLookup",
	schema.Value("AccountID", "account_id", schema.String(), func(r *BalanceLookup) *string { return &r.AccountID }),
	schema.Value("AvailableBalance", "available_balance", schema.Int64(), func(r *BalanceLookup) *int64 {
		return &r.AvailableBalance
	}),
	schema.Value("CurrentBalance", "current_balance", schema.Int64(), func(r *BalanceLookup) *int64 { return &r.CurrentBalance }),
	schema.Value("Type", "type", schema.Enum[BalanceLookupType](), func(r *BalanceLookup) *BalanceLookupType { return &r.Type }),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *BalanceLookup) FromMap(raw map[string]any) error { return balanceLookupSchema.Decode(raw, r) }

// ToMap encodes r as a wire object.
func (r *BalanceLookup) ToMap() (map[string]any, error) { return balanceLookupSchema.Encode(r) }

// UnmarshalJSON decodes r through its schema.
func (r *BalanceLookup) UnmarshalJSON(data []byte) error  { return balanceLookupSchema.Unmarshal(data, r) }

// MarshalJSON encodes r through its schema.
func (r BalanceLookup) MarshalJSON() ([]byte, error) { return balanceLookupSchema.Marshal(&r) }

// BalanceLookupType is always "balance_lookup".
type BalanceLookupType string

const BalanceLookupTypeBalanceLookup BalanceLookupType = "balance_lookup"

// IsKnown reports whether the value is one this client version recognises.
func (r BalanceLookupType) IsKnown() bool {
	return r == BalanceLookupTypeBalanceLookup
}

// AccountNewParams is the body of POST /accounts.
type AccountNewParams struct {
	Name                  Field[string]
	EntityID              Field[string]
	InformationalEntityID Field[string]
	ProgramID             Field[string]
}

var accountNewParamsSchema = schema.New("AccountNewParams",
	schema.Slot("Name", "name", schema.String(), func(r *AccountNewParams) *Field[string] { return &r.Name }, schema.Required),
	schema.Slot("EntityID", "entity_id", schema.String(), func(r *AccountNewParams) *Field[string] { return &r.EntityID }),
	schema.Slot("InformationalEntityID", "informational_entity_id", schema.String(), func(r *AccountNewParams) *Field[string] {
		return &r.InformationalEntityID
	}),
	schema.Slot("ProgramID", "program_id", schema.String(), func(r *AccountNewParams) *Field[string] { return &r.ProgramID }),
)

// NewAccountNewParams returns params with the required name set.
func NewAccountNewParams(name string) AccountNewParams {
	return AccountNewParams{Name: F(name)}
}

// AccountNewParamsFromMap builds params from a map literal.
func AccountNewParamsFromMap(raw map[string]any) (AccountNewParams, error) {
	return paramFromMap(accountNewParamsSchema, raw)
}

// WithEntityID sets the entity ID.
func (r AccountNewParams) WithEntityID(v string) AccountNewParams {
	r.EntityID = F(v)

	return r
}

// WithInformationalEntityID sets the informational entity ID.
func (r AccountNewParams) WithInformationalEntityID(v string) AccountNewParams {
	r.InformationalEntityID = F(v)

	return r
}

// WithProgramID sets the program ID.
func (r AccountNewParams) WithProgramID(v string) AccountNewParams {
	r.ProgramID = F(v)

	return r
}

// ToMap encodes r as a wire object.
func (r *AccountNewParams) ToMap() (map[string]any, error) { return accountNewParamsSchema.Encode(r) }

// MarshalJSON encodes r through its schema.
func (r AccountNewParams) MarshalJSON() ([]byte, error) { return accountNewParamsSchema.Marshal(&r) }

// AccountUpdateParams is the body of PATCH /accounts/{id}.
type AccountUpdateParams struct {
	Name Field[string]
}

var accountUpdateParamsSchema = schema.New("AccountUpdateParams",
	schema.Slot("Name", "name", schema.String(), func(r *AccountUpdateParams) *Field[string] { return &r.Name }),
)

// NewAccountUpdateParams returns empty update params.
func NewAccountUpdateParams() AccountUpdateParams {
	return AccountUpdateParams{}
}

// WithName sets the name.
func (r AccountUpdateParams) WithName(v string) AccountUpdateParams {
	r.Name = F(v)

	return r
}

// MarshalJSON encodes r through its schema.
func (r AccountUpdateParams) MarshalJSON() ([]byte, error) { return accountUpdateParamsSchema.Marshal(&r) }

// AccountListParams filters GET /accounts.
type AccountListParams struct {
	ListParams

	CreatedAt             Field[CreatedAtFilter]
	EntityID              Field[string]
	IdempotencyKey        Field[string]
	InformationalEntityID Field[string]
	ProgramID             Field[string]
	Status                Field[StatusFilter[AccountStatus]]
}

var accountListParamsSchema = schema.New("AccountListParams", append(
	listProps(func(r *AccountListParams) *ListParams { return &r.ListParams }),
	schema.Slot("CreatedAt", "created_at", schema.Model[CreatedAtFilter](), func(r *AccountListParams) *Field[CreatedAtFilter] {
		return &r.CreatedAt
	}),
	schema.Slot("EntityID", "entity_id", schema.String(), func(r *AccountListParams) *Field[string] { return &r.EntityID }),
	schema.Slot("IdempotencyKey", "idempotency_key", schema.String(), func(r *AccountListParams) *Field[string] {
		return &r.IdempotencyKey
	}),
	schema.Slot("InformationalEntityID", "informational_entity_id", schema.String(), func(r *AccountListParams) *Field[string] {
		return &r.InformationalEntityID
	}),
	schema.Slot("ProgramID", "program_id", schema.String(), func(r *AccountListParams) *Field[string] { return &r.ProgramID }),
	schema.Slot("Status", "status", statusFilterCodec[AccountStatus](), func(r *AccountListParams) *Field[StatusFilter[AccountStatus]] {
		return &r.Status
	}),
)...)

// WithCursor resumes the listing from a cursor returned by a previous page.
func (r AccountListParams) WithCursor(v string) AccountListParams {
	r.Cursor = F(v)

	return r
}

// WithLimit caps the page size, between 1 and 100.
func (r AccountListParams) WithLimit(v int64) AccountListParams {
	r.Limit = F(v)

	return r
}

// WithCreatedAt filters by creation time.
func (r AccountListParams) WithCreatedAt(v CreatedAtFilter) AccountListParams {
	r.CreatedAt = F(v)

	return r
}

// WithEntityID filters by entity ID.
func (r AccountListParams) WithEntityID(v string) AccountListParams {
	r.EntityID = F(v)

	return r
}

// WithIdempotencyKey finds the account created with this key.
func (r AccountListParams) WithIdempotencyKey(v string) AccountListParams {
	r.IdempotencyKey = F(v)

	return r
}

// WithInformationalEntityID filters by informational entity ID.
func (r AccountListParams) WithInformationalEntityID(v string) AccountListParams {
	r.InformationalEntityID = F(v)

	return r
}

// WithProgramID filters by program ID.
func (r AccountListParams) WithProgramID(v string) AccountListParams {
	r.ProgramID = F(v)

	return r
}

// WithStatus filters by status.
func (r AccountListParams) WithStatus(v ...AccountStatus) AccountListParams {
	r.Status = F(In(v...))

	return r
}

// ToValues encodes the params as a query string.
func (r AccountListParams) ToValues() (url.Values, error) {
	return queryValues(accountListParamsSchema, &r)
}

// AccountBalanceParams selects the point in time of a balance lookup.
type AccountBalanceParams struct {
	AtTime Field[time.Time]
}

var accountBalanceParamsSchema = schema.New("AccountBalanceParams",
	schema.Slot("AtTime", "at_time", schema.Time(), func(r *AccountBalanceParams) *Field[time.Time] { return &r.AtTime }),
)

// WithAtTime asks for the balance as of a past instant.
func (r AccountBalanceParams) WithAtTime(v time.Time) AccountBalanceParams {
	r.AtTime = F(v)

	return r
}

// ToValues encodes the params as a query string.
func (r AccountBalanceParams) ToValues() (url.Values, error) {
	return queryValues(accountBalanceParamsSchema, &r)
}
