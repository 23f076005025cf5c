package increase

import (
	"net/url"

	"github.com/fivetwenty-io/increase/internal/schema"
)

// AccountNumber is a routable number pointing at an account. An account may
// have many account numbers.
type AccountNumber struct {
	ID             string
	AccountID      string
	AccountNumber  string
	CreatedAt      Timestamp
	IdempotencyKey *string
	InboundACH     AccountNumberInboundACH
	InboundChecks  AccountNumberInboundChecks
	Name           string
	RoutingNumber  string
	Status         AccountNumberStatus
	Type           AccountNumberType
}

var accountNumberSchema = schema.New("AccountNumber",
	schema.Value("ID", "id", schema.String(), func(r *AccountNumber) *string { return &r.ID }),
	schema.Value("AccountID", "account_id", schema.String(), func(r *AccountNumber) *string { return &r.AccountID }),
	schema.Value("AccountNumber", "account_number", schema.String(), func(r *AccountNumber) *string { return &r.AccountNumber }),
	schema.Value("CreatedAt", "created_at", schema.Timestamps(), func(r *AccountNumber) *Timestamp { return &r.CreatedAt }),
	schema.Pointer("IdempotencyKey", "idempotency_key", schema.String(), func(r *AccountNumber) **string {
		return &r.IdempotencyKey
	}),
	schema.Value("InboundACH", "inbound_ach", schema.Model[AccountNumberInboundACH](), func(r *AccountNumber) *AccountNumberInboundACH {
		return &r.InboundACH
	}),
	schema.Value("InboundChecks", "inbound_checks", schema.Model[AccountNumberInboundChecks](),
		func(r *AccountNumber) *AccountNumberInboundChecks { return &r.InboundChecks }),
	schema.Value("Name", "name", schema.String(), func(r *AccountNumber) *string { return &r.Name }),
	schema.Value("RoutingNumber", "routing_number", schema.String(), func(r *AccountNumber) *string { return &r.RoutingNumber }),
	schema.Value("Status", "status", schema.Enum[AccountNumberStatus](), func(r *AccountNumber) *AccountNumberStatus {
		return &r.Status
	}),
	schema.Value("Type", "type", schema.Enum[AccountNumberType](), func(r *AccountNumber) *AccountNumberType { return &r.Type }),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *AccountNumber) FromMap(raw map[string]any) error { return accountNumberSchema.Decode(raw, r) }

// ToMap encodes r as a wire object.
func (r *AccountNumber) ToMap() (map[string]any, error) { return accountNumberSchema.Encode(r) }

// UnmarshalJSON decodes r through its schema.
func (r *AccountNumber) UnmarshalJSON(data []byte) error { return accountNumberSchema.Unmarshal(data, r) }

// MarshalJSON encodes r through its schema.
func (r AccountNumber) MarshalJSON() ([]byte, error) { return accountNumberSchema.Marshal(&r) }

// AccountNumberInboundACH controls inbound ACH debits.
type AccountNumberInboundACH struct {
	DebitStatus AccountNumberDebitStatus
}

var accountNumberInboundACHSchema = schema.New("AccountNumberInboundACH",
	schema.Value("DebitStatus", "debit_status", schema.Enum[AccountNumberDebitStatus](),
		func(r *AccountNumberInboundACH) *AccountNumberDebitStatus { return &r.DebitStatus }),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *AccountNumberInboundACH) FromMap(raw map[string]any) error {
	return accountNumberInboundACHSchema.Decode(raw, r)
}

// ToMap encodes r as a wire object.
func (r *AccountNumberInboundACH) ToMap() (map[string]any, error) {
	return accountNumberInboundACHSchema.Encode(r)
}

// AccountNumberInboundChecks controls inbound check deposits.
type AccountNumberInboundChecks struct {
	Status AccountNumberCheckStatus
}

var accountNumberInboundChecksSchema = schema.New("AccountNumberInboundChecks",
	schema.Value("Status", "status", schema.Enum[AccountNumberCheckStatus](),
		func(r *AccountNumberInboundChecks) *AccountNumberCheckStatus { return &r.Status }),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *AccountNumberInboundChecks) FromMap(raw map[string]any) error {
	return accountNumberInboundChecksSchema.Decode(raw, r)
}

// ToMap encodes r as a wire object.
func (r *AccountNumberInboundChecks) ToMap() (map[string]any, error) {
	return accountNumberInboundChecksSchema.Encode(r)
}

// AccountNumberStatus is the lifecycle state of an account number.
type AccountNumberStatus string

const (
	AccountNumberStatusActive   AccountNumberStatus = "active"
	AccountNumberStatusDisabled AccountNumberStatus = "disabled"
	AccountNumberStatusCanceled AccountNumberStatus = "canceled"
)

// IsKnown reports whether the value is one this client version recognises.
func (r AccountNumberStatus) IsKnown() bool {
	switch r {
	case AccountNumberStatusActive, AccountNumberStatusDisabled, AccountNumberStatusCanceled:
		return true
	}

	return false
}

// AccountNumberDebitStatus says whether ACH debits are accepted.
type AccountNumberDebitStatus string

const (
	AccountNumberDebitStatusAllowed AccountNumberDebitStatus = "allowed"
	AccountNumberDebitStatusBlocked AccountNumberDebitStatus = "blocked"
)

// IsKnown reports whether the value is one this client version recognises.
func (r AccountNumberDebitStatus) IsKnown() bool {
	switch r {
	case AccountNumberDebitStatusAllowed, AccountNumberDebitStatusBlocked:
		return true
	}

	return false
}

// AccountNumberCheckStatus says which checks may be deposited.
type AccountNumberCheckStatus string

const (
	AccountNumberCheckStatusAllowed            AccountNumberCheckStatus = "allowed"
	AccountNumberCheckStatusCheckTransfersOnly AccountNumberCheckStatus = "check_transfers_only"
)

// IsKnown reports whether the value is one this client version recognises.
func (r AccountNumberCheckStatus) IsKnown() bool {
	switch r {
	case AccountNumberCheckStatusAllowed, AccountNumberCheckStatusCheckTransfersOnly:
		return true
	}

	return false
}

// AccountNumberType is always "account_number".
type AccountNumberType string

const AccountNumberTypeAccountNumber AccountNumberType = "account_number"

// IsKnown reports whether the value is one this client version recognises.
func (r AccountNumberType) IsKnown() bool {
	return r == AccountNumberTypeAccountNumber
}

// AccountNumberInboundACHParam sets inbound ACH behaviour on create or update.
type AccountNumberInboundACHParam struct {
	DebitStatus Field[AccountNumberDebitStatus]
}

var accountNumberInboundACHParamSchema = schema.New("AccountNumberInboundACHParam",
	schema.Slot("DebitStatus", "debit_status", schema.Enum[AccountNumberDebitStatus](),
		func(r *AccountNumberInboundACHParam) *Field[AccountNumberDebitStatus] { return &r.DebitStatus }, schema.Required),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *AccountNumberInboundACHParam) FromMap(raw map[string]any) error {
	return accountNumberInboundACHParamSchema.Decode(raw, r)
}

// ToMap encodes r as a wire object.
func (r *AccountNumberInboundACHParam) ToMap() (map[string]any, error) {
	return accountNumberInboundACHParamSchema.Encode(r)
}

// AccountNumberInboundChecksParam sets inbound check behaviour on create or update.
type AccountNumberInboundChecksParam struct {
	Status Field[AccountNumberCheckStatus]
}

var accountNumberInboundChecksParamSchema = schema.New("AccountNumberInboundChecksParam",
	schema.Slot("Status", "status", schema.Enum[AccountNumberCheckStatus](),
		func(r *AccountNumberInboundChecksParam) *Field[AccountNumberCheckStatus] { return &r.Status }, schema.Required),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *AccountNumberInboundChecksParam) FromMap(raw map[string]any) error {
	return accountNumberInboundChecksParamSchema.Decode(raw, r)
}

// ToMap encodes r as a wire object.
func (r *AccountNumberInboundChecksParam) ToMap() (map[string]any, error) {
	return accountNumberInboundChecksParamSchema.Encode(r)
}

// AccountNumberNewParams is the body of POST /account_numbers.
type AccountNumberNewParams struct {
	AccountID     Field[string]
	Name          Field[string]
	InboundACH    Field[AccountNumberInboundACHParam]
	InboundChecks Field[AccountNumberInboundChecksParam]
}

var accountNumberNewParamsSchema = schema.New("AccountNumberNewParams",
	schema.Slot("AccountID", "account_id", schema.String(), func(r *AccountNumberNewParams) *Field[string] {
		return &r.AccountID
	}, schema.Required),
	schema.Slot("Name", "name", schema.String(), func(r *AccountNumberNewParams) *Field[string] { return &r.Name }, schema.Required),
	schema.Slot("InboundACH", "inbound_ach", schema.Model[AccountNumberInboundACHParam](),
		func(r *AccountNumberNewParams) *Field[AccountNumberInboundACHParam] { return &r.InboundACH }),
	schema.Slot("InboundChecks", "inbound_checks", schema.Model[AccountNumberInboundChecksParam](),
		func(r *AccountNumberNewParams) *Field[AccountNumberInboundChecksParam] { return &r.InboundChecks }),
)

// NewAccountNumberNewParams returns params with the required fields set.
func NewAccountNumberNewParams(accountID, name string) AccountNumberNewParams {
	return AccountNumberNewParams{AccountID: F(accountID), Name: F(name)}
}

// AccountNumberNewParamsFromMap builds params from a map literal.
func AccountNumberNewParamsFromMap(raw map[string]any) (AccountNumberNewParams, error) {
	return paramFromMap(accountNumberNewParamsSchema, raw)
}

// WithInboundACH sets the inbound ACH.
func (r AccountNumberNewParams) WithInboundACH(v AccountNumberInboundACHParam) AccountNumberNewParams {
	r.InboundACH = F(v)

	return r
}

// WithInboundChecks sets the inbound checks.
func (r AccountNumberNewParams) WithInboundChecks(v AccountNumberInboundChecksParam) AccountNumberNewParams {
	r.InboundChecks = F(v)

	return r
}

// MarshalJSON encodes r through its schema.
func (r AccountNumberNewParams) MarshalJSON() ([]byte, error) {
	return accountNumberNewParamsSchema.Marshal(&r)
}

// AccountNumberUpdateParams is the body of PATCH /account_numbers/{id}.
type AccountNumberUpdateParams struct {
	Name          Field[string]
	Status        Field[AccountNumberStatus]
	InboundACH    Field[AccountNumberInboundACHParam]
	InboundChecks Field[AccountNumberInboundChecksParam]
}

var accountNumberUpdateParamsSchema = schema.New("AccountNumberUpdateParams",
	schema.Slot("Name", "name", schema.String(), func(r *AccountNumberUpdateParams) *Field[string] { return &r.Name }),
	schema.Slot("Status", "status", schema.Enum[AccountNumberStatus](),
		func(r *AccountNumberUpdateParams) *Field[AccountNumberStatus] { return &r.Status }),
	schema.Slot("InboundACH", "inbound_ach", schema.Model[AccountNumberInboundACHParam](),
		func(r *AccountNumberUpdateParams) *Field[AccountNumberInboundACHParam] { return &r.InboundACH }),
	schema.Slot("InboundChecks", "inbound_checks", schema.Model[AccountNumberInboundChecksParam](),
		func(r *AccountNumberUpdateParams) *Field[AccountNumberInboundChecksParam] { return &r.InboundChecks }),
)

// WithName sets the name.
func (r AccountNumberUpdateParams) WithName(v string) AccountNumberUpdateParams {
	r.Name = F(v)

	return r
}

// WithStatus sets the status.
func (r AccountNumberUpdateParams) WithStatus(v AccountNumberStatus) AccountNumberUpdateParams {
	r.Status = F(v)

	return r
}

// WithInboundACH sets the inbound ACH.
func (r AccountNumberUpdateParams) WithInboundACH(v AccountNumberInboundACHParam) AccountNumberUpdateParams {
	r.InboundACH = F(v)

	return r
}

// WithInboundChecks sets the inbound check deposit policy.
func (r AccountNumberUpdateParams) WithInboundChecks(v AccountNumberInboundChecksParam) AccountNumberUpdateParams {
	r.InboundChecks = F(v)

	return r
}

// MarshalJSON encodes r through its schema.
func (r AccountNumberUpdateParams) MarshalJSON() ([]byte, error) {
	return accountNumberUpdateParamsSchema.Marshal(&r)
}

// AccountNumberListParams filters GET /account_numbers.
type AccountNumberListParams struct {
	ListParams

	AccountID      Field[string]
	ACHDebitStatus Field[AccountNumberDebitStatus]
	CreatedAt      Field[CreatedAtFilter]
	IdempotencyKey Field[string]
	Status         Field[StatusFilter[AccountNumberStatus]]
}

var accountNumberListParamsSchema = schema.New("AccountNumberListParams", append(
	listProps(func(r *AccountNumberListParams) *ListParams { return &r.ListParams }),
	schema.Slot("AccountID", "account_id", schema.String(), func(r *AccountNumberListParams) *Field[string] {
		return &r.AccountID
	}),
	schema.Slot("ACHDebitStatus", "ach_debit_status", schema.Enum[AccountNumberDebitStatus](),
		func(r *AccountNumberListParams) *Field[AccountNumberDebitStatus] { return &r.ACHDebitStatus }),
	schema.Slot("CreatedAt", "created_at", schema.Model[CreatedAtFilter](),
		func(r *AccountNumberListParams) *Field[CreatedAtFilter] { return &r.CreatedAt }),
	schema.Slot("IdempotencyKey", "idempotency_key", schema.String(), func(r *AccountNumberListParams) *Field[string] {
		return &r.IdempotencyKey
	}),
	schema.Slot("Status", "status", statusFilterCodec[AccountNumberStatus](),
		func(r *AccountNumberListParams) *Field[StatusFilter[AccountNumberStatus]] { return &r.Status }),
)...)

// WithCursor resumes the listing from a cursor returned by a previous page.
func (r AccountNumberListParams) WithCursor(v string) AccountNumberListParams {
	r.Cursor = F(v)

	return r
}

// WithLimit caps the page size, between 1 and 100.
func (r AccountNumberListParams) WithLimit(v int64) AccountNumberListParams {
	r.Limit = F(v)

	return r
}

// WithAccountID filters by account ID.
func (r AccountNumberListParams) WithAccountID(v string) AccountNumberListParams {
	r.AccountID = F(v)

	return r
}

// WithStatus filters by status.
func (r AccountNumberListParams) WithStatus(v ...AccountNumberStatus) AccountNumberListParams {
	r.Status = F(In(v...))

	return r
}

// WithACHDebitStatus filters by whether ACH debits are allowed.
func (r AccountNumberListParams) WithACHDebitStatus(v AccountNumberDebitStatus) AccountNumberListParams {
	r.ACHDebitStatus = F(v)

	return r
}

// WithCreatedAt filters by creation time.
func (r AccountNumberListParams) WithCreatedAt(v CreatedAtFilter) AccountNumberListParams {
	r.CreatedAt = F(v)

	return r
}

// WithIdempotencyKey finds the account number created with this key.
func (r AccountNumberListParams) WithIdempotencyKey(v string) AccountNumberListParams {
	r.IdempotencyKey = F(v)

	return r
}

// ToValues encodes the params as a query string.
func (r AccountNumberListParams) ToValues() (url.Values, error) {
	return queryValues(accountNumberListParamsSchema, &r)
}
