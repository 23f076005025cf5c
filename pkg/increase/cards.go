package increase

import (
	"net/url"

	"github.com/fivetwenty-io/increase/internal/schema"
)

// Card is a debit card drawing on an account.
type Card struct {
	ID              string
	AccountID       string
	BillingAddress  CardBillingAddress
	CreatedAt       Timestamp
	Description     *string
	DigitalWallet   *CardDigitalWallet
	EntityID        *string
	ExpirationMonth int64
	ExpirationYear  int64
	IdempotencyKey  *string
	Last4           string
	Status          CardStatus
	Type            CardType
}

var cardSchema = schema.New("Card",
	schema.Value("ID", "id", schema.String(), func(r *Card) *string { return &r.ID }),
	schema.Value("AccountID", "account_id", schema.String(), func(r *Card) *string { return &r.AccountID }),
	schema.Value("BillingAddress", "billing_address", schema.Model[CardBillingAddress](), func(r *Card) *CardBillingAddress {
		return &r.BillingAddress
	}),
	schema.Value("CreatedAt", "created_at", schema.Timestamps(), func(r *Card) *Timestamp { return &r.CreatedAt }),
	schema.Pointer("Description", "description", schema.String(), func(r *Card) **string { return &r.Description }),
	schema.Pointer("DigitalWallet", "digital_wallet", schema.Model[CardDigitalWallet](), func(r *Card) **CardDigitalWallet {
		return &r.DigitalWallet
	}),
	schema.Pointer("EntityID", "entity_id", schema.String(), func(r *Card) **string { return &r.EntityID }),
	schema.Value("ExpirationMonth", "expiration_month", schema.Int64(), func(r *Card) *int64 { return &r.ExpirationMonth }),
	schema.Value("ExpirationYear", "expiration_year", schema.Int64(), func(r *Card) *int64 { return &r.ExpirationYear }),
	schema.Pointer("IdempotencyKey", "idempotency_key", schema.String(), func(r *Card) **string { return &r.IdempotencyKey }),
	schema.Value("Last4", "last4", schema.String(), func(r *Card) *string { return &r.Last4 }),
	schema.Value("Status", "status", schema.Enum[CardStatus](), func(r *Card) *CardStatus { return &r.Status }),
	schema.Value("Type", "type", schema.Enum[CardType](), func(r *Card) *CardType { return &r.Type }),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *Card) FromMap(raw map[string]any) error { return cardSchema.Decode(raw, r) }

// ToMap encodes r as a wire object.
func (r *Card) ToMap() (map[string]any, error) { return cardSchema.Encode(r) }

// UnmarshalJSON decodes r through its schema.
func (r *Card) UnmarshalJSON(data []byte) error { return cardSchema.Unmarshal(data, r) }

// MarshalJSON encodes r through its schema.
func (r Card) MarshalJSON() ([]byte, error) { return cardSchema.Marshal(&r) }

// CardBillingAddress is the address used for address verification.
type CardBillingAddress struct {
	City       *string
	Line1      *string
	Line2      *string
	PostalCode *string
	State      *string
}

var cardBillingAddressSchema = schema.New("CardBillingAddress",
	schema.Pointer("City", "city", schema.String(), func(r *CardBillingAddress) **string { return &r.City }),
	schema.Pointer("Line1", "line1", schema.String(), func(r *CardBillingAddress) **string { return &r.Line1 }),
	schema.Pointer("Line2", "line2", schema.String(), func(r *CardBillingAddress) **string { return &r.Line2 }),
	schema.Pointer("PostalCode", "postal_code", schema.String(), func(r *CardBillingAddress) **string { return &r.PostalCode }),
	schema.Pointer("State", "state", schema.String(), func(r *CardBillingAddress) **string { return &r.State }),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *CardBillingAddress) FromMap(raw map[string]any) error { return cardBillingAddressSchema.Decode(raw, r) }

// ToMap encodes r as a wire object.
func (r *CardBillingAddress) ToMap() (map[string]any, error) { return cardBillingAddressSchema.Encode(r) }

// CardDigitalWallet holds the contact details used to provision a card into
// Apple Pay or Google Pay.
type CardDigitalWallet struct {
	DigitalCardProfileID *string
	Email                *string
	Phone                *string
}

var cardDigitalWalletSchema = schema.New("CardDigitalWallet",
	schema.Pointer("DigitalCardProfileID", "digital_card_profile_id", schema.String(), func(r *CardDigitalWallet) **string {
		return &r.DigitalCardProfileID
	}),
	schema.Pointer("Email", "email", schema.String(), func(r *CardDigitalWallet) **string { return &r.Email }),
	schema.Pointer("Phone", "phone", schema.String(), func(r *CardDigitalWallet) **string { return &r.Phone }),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *CardDigitalWallet) FromMap(raw map[string]any) error { return cardDigitalWalletSchema.Decode(raw, r) }

// ToMap encodes r as a wire object.
func (r *CardDigitalWallet) ToMap() (map[string]any, error) { return cardDigitalWalletSchema.Encode(r) }

// CardStatus is the lifecycle state of a card.
type CardStatus string

const (
	CardStatusActive   CardStatus = "active"
	CardStatusDisabled CardStatus = "disabled"
	CardStatusCanceled CardStatus = "canceled"
)

// IsKnown reports whether the value is one this client version recognises.
func (r CardStatus) IsKnown() bool {
	switch r {
	case CardStatusActive, CardStatusDisabled, CardStatusCanceled:
		return true
	}

	return false
}

// CardType is always "card".
type CardType string

const CardTypeCard CardType = "card"

// IsKnown reports whether the value is one this client version recognises.
func (r CardType) IsKnown() bool {
	return r == CardTypeCard
}

// CardDetails holds the sensitive card number and verification code.
type CardDetails struct {
	CardID               string
	ExpirationMonth      int64
	ExpirationYear       int64
	PrimaryAccountNumber string
	Type                 CardDetailsType
	VerificationCode     string
}

var cardDetailsSchema = schema.New("CardDetails",
	schema.Value("CardID", "card_id", schema.String(), func(r *CardDetails) *string { return &r.CardID }),
	schema.Value("ExpirationMonth", "expiration_month", schema.Int64(), func(r *CardDetails) *int64 { return &r.ExpirationMonth }),
	schema.Value("ExpirationYear", "expiration_year", schema.Int64(), func(r *CardDetails) *int64 { return &r.ExpirationYear }),
	schema.Value("PrimaryAccountNumber", "primary_account_number", schema.String(), func(r *CardDetails) *string {
		return &r.PrimaryAccountNumber
	}),
	schema.Value("Type", "type", schema.Enum[CardDetailsType](), func(r *CardDetails) *CardDetailsType { return &r.Type }),
	schema.Value("VerificationCode", "verification_code", schema.String(), func(r *CardDetails) *string {
		return &r.VerificationCode
	}),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *CardDetails) FromMap(raw map[string]any) error { return cardDetailsSchema.Decode(raw, r) }

// ToMap encodes r as a wire object.
func (r *CardDetails) ToMap() (map[string]any, error) { return cardDetailsSchema.Encode(r) }

// UnmarshalJSON decodes r through its schema.
func (r *CardDetails) UnmarshalJSON(data []byte) error { return cardDetailsSchema.Unmarshal(data, r) }

// MarshalJSON encodes r through its schema.
func (r CardDetails) MarshalJSON() ([]byte, error) { return cardDetailsSchema.Marshal(&r) }

// CardDetailsType is always "card_details".
type CardDetailsType string

const CardDetailsTypeCardDetails CardDetailsType = "card_details"

// IsKnown reports whether the value is one this client version recognises.
func (r CardDetailsType) IsKnown() bool {
	return r == CardDetailsTypeCardDetails
}

// CardBillingAddressParam is the billing address sent on create or update.
type CardBillingAddressParam struct {
	City       Field[string]
	Line1      Field[string]
	Line2      Field[string]
	PostalCode Field[string]
	State      Field[string]
}

var cardBillingAddressParamSchema = schema.New("CardBillingAddressParam",
	schema.Slot("City", "city", schema.String(), func(r *CardBillingAddressParam) *Field[string] { return &r.City }, schema.Required),
	schema.Slot("Line1", "line1", schema.String(), func(r *CardBillingAddressParam) *Field[string] { return &r.Line1 }, schema.Required),
	schema.Slot("Line2", "line2", schema.String(), func(r *CardBillingAddressParam) *Field[string] { return &r.Line2 }),
	schema.Slot("PostalCode", "postal_code", schema.String(), func(r *CardBillingAddressParam) *Field[string] {
		return &r.PostalCode
	}, schema.Required),
	schema.Slot("State", "state", schema.String(), func(r *CardBillingAddressParam) *Field[string] { return &r.State }, schema.Required),
)

// NewCardBillingAddressParam returns an address with the required lines set.
func NewCardBillingAddressParam(line1, city, state, postalCode string) CardBillingAddressParam {
	return CardBillingAddressParam{Line1: F(line1), City: F(city), State: F(state), PostalCode: F(postalCode)}
}

// CardBillingAddressParamFromMap builds an address from a map literal.
func CardBillingAddressParamFromMap(raw map[string]any) (CardBillingAddressParam, error) {
	return paramFromMap(cardBillingAddressParamSchema, raw)
}

// WithLine2 sets the second address line.
func (r CardBillingAddressParam) WithLine2(v string) CardBillingAddressParam {
	r.Line2 = F(v)

	return r
}

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *CardBillingAddressParam) FromMap(raw map[string]any) error {
	return cardBillingAddressParamSchema.Decode(raw, r)
}

// ToMap encodes r as a wire object.
func (r *CardBillingAddressParam) ToMap() (map[string]any, error) {
	return cardBillingAddressParamSchema.Encode(r)
}

// CardDigitalWalletParam configures digital wallet provisioning.
type CardDigitalWalletParam struct {
	DigitalCardProfileID Field[string]
	Email                Field[string]
	Phone                Field[string]
}

var cardDigitalWalletParamSchema = schema.New("CardDigitalWalletParam",
	schema.Slot("DigitalCardProfileID", "digital_card_profile_id", schema.String(),
		func(r *CardDigitalWalletParam) *Field[string] { return &r.DigitalCardProfileID }),
	schema.Slot("Email", "email", schema.String(), func(r *CardDigitalWalletParam) *Field[string] { return &r.Email }),
	schema.Slot("Phone", "phone", schema.String(), func(r *CardDigitalWalletParam) *Field[string] { return &r.Phone }),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *CardDigitalWalletParam) FromMap(raw map[string]any) error {
	return cardDigitalWalletParamSchema.Decode(raw, r)
}

// ToMap encodes r as a wire object.
func (r *CardDigitalWalletParam) ToMap() (map[string]any, error) {
	return cardDigitalWalletParamSchema.Encode(r)
}

// CardNewParams is the body of POST /cards.
type CardNewParams struct {
	AccountID      Field[string]
	BillingAddress Field[CardBillingAddressParam]
	Description    Field[string]
	DigitalWallet  Field[CardDigitalWalletParam]
	EntityID       Field[string]
}

var cardNewParamsSchema = schema.New("CardNewParams",
	schema.Slot("AccountID", "account_id", schema.String(), func(r *CardNewParams) *Field[string] {
		return &r.AccountID
	}, schema.Required),
	schema.Slot("BillingAddress", "billing_address", schema.Model[CardBillingAddressParam](),
		func(r *CardNewParams) *Field[CardBillingAddressParam] { return &r.BillingAddress }),
	schema.Slot("Description", "description", schema.String(), func(r *CardNewParams) *Field[string] { return &r.Description }),
	schema.Slot("DigitalWallet", "digital_wallet", schema.Model[CardDigitalWalletParam](),
		func(r *CardNewParams) *Field[CardDigitalWalletParam] { return &r.DigitalWallet }),
	schema.Slot("EntityID", "entity_id", schema.String(), func(r *CardNewParams) *Field[string] { return &r.EntityID }),
)

// NewCardNewParams returns params with the required account set.
func NewCardNewParams(accountID string) CardNewParams {
	return CardNewParams{AccountID: F(accountID)}
}

// CardNewParamsFromMap builds params from a map literal.
func CardNewParamsFromMap(raw map[string]any) (CardNewParams, error) {
	return paramFromMap(cardNewParamsSchema, raw)
}

// WithBillingAddress sets the billing address.
func (r CardNewParams) WithBillingAddress(v CardBillingAddressParam) CardNewParams {
	r.BillingAddress = F(v)

	return r
}

// WithDescription sets the description.
func (r CardNewParams) WithDescription(v string) CardNewParams {
	r.Description = F(v)

	return r
}

// WithDigitalWallet sets the digital wallet.
func (r CardNewParams) WithDigitalWallet(v CardDigitalWalletParam) CardNewParams {
	r.DigitalWallet = F(v)

	return r
}

// WithEntityID sets the entity ID.
func (r CardNewParams) WithEntityID(v string) CardNewParams {
	r.EntityID = F(v)

	return r
}

// MarshalJSON encodes r through its schema.
func (r CardNewParams) MarshalJSON() ([]byte, error) { return cardNewParamsSchema.Marshal(&r) }

// CardUpdateParams is the body of PATCH /cards/{id}.
type CardUpdateParams struct {
	BillingAddress Field[CardBillingAddressParam]
	Description    Field[string]
	DigitalWallet  Field[CardDigitalWalletParam]
	EntityID       Field[string]
	Status         Field[CardStatus]
}

var cardUpdateParamsSchema = schema.New("CardUpdateParams",
	schema.Slot("BillingAddress", "billing_address", schema.Model[CardBillingAddressParam](),
		func(r *CardUpdateParams) *Field[CardBillingAddressParam] { return &r.BillingAddress }),
	schema.Slot("Description", "description", schema.String(), func(r *CardUpdateParams) *Field[string] { return &r.Description }),
	schema.Slot("DigitalWallet", "digital_wallet", schema.Model[CardDigitalWalletParam](),
		func(r *CardUpdateParams) *Field[CardDigitalWalletParam] { return &r.DigitalWallet }),
	schema.Slot("EntityID", "entity_id", schema.String(), func(r *CardUpdateParams) *Field[string] { return &r.EntityID }),
	schema.Slot("Status", "status", schema.Enum[CardStatus](), func(r *CardUpdateParams) *Field[CardStatus] { return &r.Status }),
)

// WithDescription sets the description.
func (r CardUpdateParams) WithDescription(v string) CardUpdateParams {
	r.Description = F(v)

	return r
}

// WithStatus sets the status.
func (r CardUpdateParams) WithStatus(v CardStatus) CardUpdateParams {
	r.Status = F(v)

	return r
}

// WithBillingAddress sets the billing address.
func (r CardUpdateParams) WithBillingAddress(v CardBillingAddressParam) CardUpdateParams {
	r.BillingAddress = F(v)

	return r
}

// WithDigitalWallet replaces the digital wallet contact details.
func (r CardUpdateParams) WithDigitalWallet(v CardDigitalWalletParam) CardUpdateParams {
	r.DigitalWallet = F(v)

	return r
}

// WithEntityID moves the card to another entity.
func (r CardUpdateParams) WithEntityID(v string) CardUpdateParams {
	r.EntityID = F(v)

	return r
}

// MarshalJSON encodes r through its schema.
func (r CardUpdateParams) MarshalJSON() ([]byte, error) { return cardUpdateParamsSchema.Marshal(&r) }

// CardListParams filters GET /cards.
type CardListParams struct {
	ListParams

	AccountID      Field[string]
	CreatedAt      Field[CreatedAtFilter]
	IdempotencyKey Field[string]
	Status         Field[StatusFilter[CardStatus]]
}

var cardListParamsSchema = schema.New("CardListParams", append(
	listProps(func(r *CardListParams) *ListParams { return &r.ListParams }),
	schema.Slot("AccountID", "account_id", schema.String(), func(r *CardListParams) *Field[string] { return &r.AccountID }),
	schema.Slot("CreatedAt", "created_at", schema.Model[CreatedAtFilter](),
		func(r *CardListParams) *Field[CreatedAtFilter] { return &r.CreatedAt }),
	schema.Slot("IdempotencyKey", "idempotency_key", schema.String(), func(r *CardListParams) *Field[string] {
		return &r.IdempotencyKey
	}),
	schema.Slot("Status", "status", statusFilterCodec[CardStatus](),
		func(r *CardListParams) *Field[StatusFilter[CardStatus]] { return &r.Status }),
)...)

// WithCursor resumes the listing from a cursor returned by a previous page.
func (r CardListParams) WithCursor(v string) CardListParams {
	r.Cursor = F(v)

	return r
}

// WithLimit caps the page size, between 1 and 100.
func (r CardListParams) WithLimit(v int64) CardListParams {
	r.Limit = F(v)

	return r
}

// WithAccountID filters by account ID.
func (r CardListParams) WithAccountID(v string) CardListParams {
	r.AccountID = F(v)

	return r
}

// WithStatus filters by status.
func (r CardListParams) WithStatus(v ...CardStatus) CardListParams {
	r.Status = F(In(v...))

	return r
}

// WithCreatedAt filters by creation time.
func (r CardListParams) WithCreatedAt(v CreatedAtFilter) CardListParams {
	r.CreatedAt = F(v)

	return r
}

// WithIdempotencyKey finds the card created with this key.
func (r CardListParams) WithIdempotencyKey(v string) CardListParams {
	r.IdempotencyKey = F(v)

	return r
}

// ToValues encodes the params as a query string.
func (r CardListParams) ToValues() (url.Values, error) {
	return queryValues(cardListParamsSchema, &r)
}
