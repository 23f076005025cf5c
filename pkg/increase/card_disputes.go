package increase

import (
	"net/url"

	"github.com/fivetwenty-io/increase/internal/schema"
)

// CardDispute contests a card transaction. Exactly one of Acceptance,
// Rejection, Loss or Win is set once the dispute is resolved.
type CardDispute struct {
	ID                    string
	Acceptance            *CardDisputeAcceptance
	Amount                *int64
	CreatedAt             Timestamp
	DisputedTransactionID string
	Explanation           string
	IdempotencyKey        *string
	Loss                  *CardDisputeLoss
	Rejection             *CardDisputeRejection
	Status                CardDisputeStatus
	Type                  CardDisputeType
	Win                   *CardDisputeWin
}

var cardDisputeSchema = schema.New("CardDispute",
	schema.Value("ID", "id", schema.String(), func(r *CardDispute) *string { return &r.ID }),
	schema.Pointer("Acceptance", "acceptance", schema.Model[CardDisputeAcceptance](),
		func(r *CardDispute) **CardDisputeAcceptance { return &r.Acceptance }),
	schema.Pointer("Amount", "amount", schema.Int64(), func(r *CardDispute) **int64 { return &r.Amount }),
	schema.Value("CreatedAt", "created_at", schema.Timestamps(), func(r *CardDispute) *Timestamp { return &r.CreatedAt }),
	schema.Value("DisputedTransactionID", "disputed_transaction_id", schema.String(), func(r *CardDispute) *string {
		return &r.DisputedTransactionID
	}),
	schema.Value("Explanation", "explanation", schema.String(), func(r *CardDispute) *string { return &r.Explanation }),
	schema.Pointer("IdempotencyKey", "idempotency_key", schema.String(), func(r *CardDispute) **string {
		return &r.IdempotencyKey
	}),
	schema.Pointer("Loss", "loss", schema.Model[CardDisputeLoss](), func(r *CardDispute) **CardDisputeLoss { return &r.Loss }),
	schema.Pointer("Rejection", "rejection", schema.Model[CardDisputeRejection](),
		func(r *CardDispute) **CardDisputeRejection { return &r.Rejection }),
	schema.Value("Status", "status", schema.Enum[CardDisputeStatus](), func(r *CardDispute) *CardDisputeStatus { return &r.Status }),
	schema.Value("Type", "type", schema.Enum[CardDisputeType](), func(r *CardDispute) *CardDisputeType { return &r.Type }),
	schema.Pointer("Win", "win", schema.Model[CardDisputeWin](), func(r *CardDispute) **CardDisputeWin { return &r.Win }),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *CardDispute) FromMap(raw map[string]any) error { return cardDisputeSchema.Decode(raw, r) }

// ToMap encodes r as a wire object.
func (r *CardDispute) ToMap() (map[string]any, error) { return cardDisputeSchema.Encode(r) }

// UnmarshalJSON decodes r through its schema.
func (r *CardDispute) UnmarshalJSON(data []byte) error { return cardDisputeSchema.Unmarshal(data, r) }

// MarshalJSON encodes r through its schema.
func (r CardDispute) MarshalJSON() ([]byte, error) { return cardDisputeSchema.Marshal(&r) }

// CardDisputeAcceptance is set when the dispute was accepted and funds returned.
type CardDisputeAcceptance struct {
	AcceptedAt    Timestamp
	CardDisputeID string
	TransactionID string
}

var cardDisputeAcceptanceSchema = schema.New("CardDisputeAcceptance",
	schema.Value("AcceptedAt", "accepted_at", schema.Timestamps(), func(r *CardDisputeAcceptance) *Timestamp { return &r.AcceptedAt }),
	schema.Value("CardDisputeID", "card_dispute_id", schema.String(), func(r *CardDisputeAcceptance) *string {
		return &r.CardDisputeID
	}),
	schema.Value("TransactionID", "transaction_id", schema.String(), func(r *CardDisputeAcceptance) *string {
		return &r.TransactionID
	}),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *CardDisputeAcceptance) FromMap(raw map[string]any) error {
	return cardDisputeAcceptanceSchema.Decode(raw, r)
}

// ToMap encodes r as a wire object.
func (r *CardDisputeAcceptance) ToMap() (map[string]any, error) {
	return cardDisputeAcceptanceSchema.Encode(r)
}

// CardDisputeLoss is set when the dispute was lost at the network.
type CardDisputeLoss struct {
	CardDisputeID string
	Explanation   string
	LostAt        Timestamp
	TransactionID string
}

var cardDisputeLossSchema = schema.New("CardDisputeLoss",
	schema.Value("CardDisputeID", "card_dispute_id", schema.String(), func(r *CardDisputeLoss) *string { return &r.CardDisputeID }),
	schema.Value("Explanation", "explanation", schema.String(), func(r *CardDisputeLoss) *string { return &r.Explanation }),
	schema.Value("LostAt", "lost_at", schema.Timestamps(), func(r *CardDisputeLoss) *Timestamp { return &r.LostAt }),
	schema.Value("TransactionID", "transaction_id", schema.String(), func(r *CardDisputeLoss) *string { return &r.TransactionID }),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *CardDisputeLoss) FromMap(raw map[string]any) error { return cardDisputeLossSchema.Decode(raw, r) }

// ToMap encodes r as a wire object.
func (r *CardDisputeLoss) ToMap() (map[string]any, error) { return cardDisputeLossSchema.Encode(r) }

// CardDisputeRejection is set when the dispute was rejected before reaching the network.
type CardDisputeRejection struct {
	CardDisputeID string
	Explanation   string
	RejectedAt    Timestamp
}

var cardDisputeRejectionSchema = schema.New("CardDisputeRejection",
	schema.Value("CardDisputeID", "card_dispute_id", schema.String(), func(r *CardDisputeRejection) *string {
		return &r.CardDisputeID
	}),
	schema.Value("Explanation", "explanation", schema.String(), func(r *CardDisputeRejection) *string { return &r.Explanation }),
	schema.Value("RejectedAt", "rejected_at", schema.Timestamps(), func(r *CardDisputeRejection) *Timestamp { return &r.RejectedAt }),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *CardDisputeRejection) FromMap(raw map[string]any) error {
	return cardDisputeRejectionSchema.Decode(raw, r)
}

// ToMap encodes r as a wire object.
func (r *CardDisputeRejection) ToMap() (map[string]any, error) {
	return cardDisputeRejectionSchema.Encode(r)
}

// CardDisputeWin is set when the dispute was won at the network.
type CardDisputeWin struct {
	CardDisputeID string
	WonAt         Timestamp
}

var cardDisputeWinSchema = schema.New("CardDisputeWin",
	schema.Value("CardDisputeID", "card_dispute_id", schema.String(), func(r *CardDisputeWin) *string { return &r.CardDisputeID }),
	schema.Value("WonAt", "won_at", schema.Timestamps(), func(r *CardDisputeWin) *Timestamp { return &r.WonAt }),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *CardDisputeWin) FromMap(raw map[string]any) error { return cardDisputeWinSchema.Decode(raw, r) }

// ToMap encodes r as a wire object.
func (r *CardDisputeWin) ToMap() (map[string]any, error) { return cardDisputeWinSchema.Encode(r) }

// CardDisputeStatus is the lifecycle state of a dispute.
type CardDisputeStatus string

const (
	CardDisputeStatusPendingReviewing       CardDisputeStatus = "pending_reviewing"
	CardDisputeStatusPendingUserInformation CardDisputeStatus = "pending_user_information"
	CardDisputeStatusAccepted               CardDisputeStatus = "accepted"
	CardDisputeStatusRejected               CardDisputeStatus = "rejected"
	CardDisputeStatusLost                   CardDisputeStatus = "lost"
	CardDisputeStatusWon                    CardDisputeStatus = "won"
)

// IsKnown reports whether the value is one this client version recognises.
func (r CardDisputeStatus) IsKnown() bool {
	switch r {
	case CardDisputeStatusPendingReviewing, CardDisputeStatusPendingUserInformation, CardDisputeStatusAccepted,
		CardDisputeStatusRejected, CardDisputeStatusLost, CardDisputeStatusWon:
		return true
	}

	return false
}

// CardDisputeType is always "card_dispute".
type CardDisputeType string

const CardDisputeTypeCardDispute CardDisputeType = "card_dispute"

// IsKnown reports whether the value is one this client version recognises.
func (r CardDisputeType) IsKnown() bool {
	return r == CardDisputeTypeCardDispute
}

// CardDisputeNewParams is the body of POST /card_disputes.
type CardDisputeNewParams struct {
	DisputedTransactionID Field[string]
	Explanation           Field[string]
	// Amount disputes part of the transaction; omitted means all of it.
	Amount Field[int64]
}

var cardDisputeNewParamsSchema = schema.New("CardDisputeNewParams",
	schema.Slot("DisputedTransactionID", "disputed_transaction_id", schema.String(),
		func(r *CardDisputeNewParams) *Field[string] { return &r.DisputedTransactionID }, schema.Required),
	schema.Slot("Explanation", "explanation", schema.String(), func(r *CardDisputeNewParams) *Field[string] {
		return &r.Explanation
	}, schema.Required),
	schema.Slot("Amount", "amount", schema.Int64(), func(r *CardDisputeNewParams) *Field[int64] { return &r.Amount }),
)

// NewCardDisputeNewParams returns params with the required fields set.
func NewCardDisputeNewParams(disputedTransactionID, explanation string) CardDisputeNewParams {
	return CardDisputeNewParams{DisputedTransactionID: F(disputedTransactionID), Explanation: F(explanation)}
}

// CardDisputeNewParamsFromMap builds params from a map literal.
func CardDisputeNewParamsFromMap(raw map[string]any) (CardDisputeNewParams, error) {
	return paramFromMap(cardDisputeNewParamsSchema, raw)
}

// WithAmount sets the disputed amount in minor units.
func (r CardDisputeNewParams) WithAmount(v int64) CardDisputeNewParams {
	r.Amount = F(v)

	return r
}

// MarshalJSON encodes r through its schema.
func (r CardDisputeNewParams) MarshalJSON() ([]byte, error) { return cardDisputeNewParamsSchema.Marshal(&r) }

// CardDisputeListParams filters GET /card_disputes.
type CardDisputeListParams struct {
	ListParams

	CreatedAt      Field[CreatedAtFilter]
	IdempotencyKey Field[string]
	Status         Field[StatusFilter[CardDisputeStatus]]
}

var cardDisputeListParamsSchema = schema.New("CardDisputeListParams", append(
	listProps(func(r *CardDisputeListParams) *ListParams { return &r.ListParams }),
	schema.Slot("CreatedAt", "created_at", schema.Model[CreatedAtFilter](),
		func(r *CardDisputeListParams) *Field[CreatedAtFilter] { return &r.CreatedAt }),
	schema.Slot("IdempotencyKey", "idempotency_key", schema.String(), func(r *CardDisputeListParams) *Field[string] {
		return &r.IdempotencyKey
	}),
	schema.Slot("Status", "status", statusFilterCodec[CardDisputeStatus](),
		func(r *CardDisputeListParams) *Field[StatusFilter[CardDisputeStatus]] { return &r.Status }),
)...)

// WithCursor resumes the listing from a cursor returned by a previous page.
func (r CardDisputeListParams) WithCursor(v string) CardDisputeListParams {
	r.Cursor = F(v)

	return r
}

// WithLimit caps the page size, between 1 and 100.
func (r CardDisputeListParams) WithLimit(v int64) CardDisputeListParams {
	r.Limit = F(v)

	return r
}

// WithStatus filters by status.
func (r CardDisputeListParams) WithStatus(v ...CardDisputeStatus) CardDisputeListParams {
	r.Status = F(In(v...))

	return r
}

// WithCreatedAt filters by creation time.
func (r CardDisputeListParams) WithCreatedAt(v CreatedAtFilter) CardDisputeListParams {
	r.CreatedAt = F(v)

	return r
}

// WithIdempotencyKey finds the dispute created with this key.
func (r CardDisputeListParams) WithIdempotencyKey(v string) CardDisputeListParams {
	r.IdempotencyKey = F(v)

	return r
}

// ToValues encodes the params as a query string.
func (r CardDisputeListParams) ToValues() (url.Values, error) {
	return queryValues(cardDisputeListParamsSchema, &r)
}
