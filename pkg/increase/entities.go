package increase

import (
	"net/url"
	"slices"
	"time"

	"github.com/fivetwenty-io/increase/internal/schema"
)

// Entity is the legal person that owns accounts: a corporation, a natural
// person, or one of the other structures.
type Entity struct {
	ID                    string
	Corporation           *EntityCorporation
	CreatedAt             Timestamp
	Description           *string
	DetailsConfirmedAt    *Timestamp
	IdempotencyKey        *string
	NaturalPerson         *EntityPerson
	Status                EntityStatus
	Structure             EntityStructure
	SupplementalDocuments []EntitySupplementalDocument
	Type                  EntityType
}

var entitySchema = schema.New("Entity",
	schema.Value("ID", "id", schema.String(), func(r *Entity) *string { return &r.ID }),
	schema.Pointer("Corporation", "corporation", schema.Model[EntityCorporation](), func(r *Entity) **EntityCorporation {
		return &r.Corporation
	}),
	schema.Value("CreatedAt", "created_at", schema.Timestamps(), func(r *Entity) *Timestamp { return &r.CreatedAt }),
	schema.Pointer("Description", "description", schema.String(), func(r *Entity) **string { return &r.Description }),
	schema.Pointer("DetailsConfirmedAt", "details_confirmed_at", schema.Timestamps(), func(r *Entity) **Timestamp {
		return &r.DetailsConfirmedAt
	}),
	schema.Pointer("IdempotencyKey", "idempotency_key", schema.String(), func(r *Entity) **string { return &r.IdempotencyKey }),
	schema.Pointer("NaturalPerson", "natural_person", schema.Model[EntityPerson](), func(r *Entity) **EntityPerson {
		return &r.NaturalPerson
	}),
	schema.Value("Status", "status", schema.Enum[EntityStatus](), func(r *Entity) *EntityStatus { return &r.Status }),
	schema.Value("Structure", "structure", schema.Enum[EntityStructure](), func(r *Entity) *EntityStructure { return &r.Structure }),
	schema.Value("SupplementalDocuments", "supplemental_documents", schema.List(schema.Model[EntitySupplementalDocument]()),
		func(r *Entity) *[]EntitySupplementalDocument { return &r.SupplementalDocuments }),
	schema.Value("Type", "type", schema.Enum[EntityType](), func(r *Entity) *EntityType { return &r.Type }),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *Entity) FromMap(raw map[string]any) error { return entitySchema.Decode(raw, r) }

// ToMap encodes r as a wire object.
func (r *Entity) ToMap() (map[string]any, error) { return entitySchema.Encode(r) }

// UnmarshalJSON decodes r through its schema.
func (r *Entity) UnmarshalJSON(data []byte) error { return entitySchema.Unmarshal(data, r) }

// MarshalJSON encodes r through its schema.
func (r Entity) MarshalJSON() ([]byte, error) { return entitySchema.Marshal(&r) }

// EntityAddress is a physical US address.
type EntityAddress struct {
	City  string
	Line1 string
	Line2 *string
	State string
	Zip   string
}

var entityAddressSchema = schema.New("EntityAddress",
	schema.Value("City", "city", schema.String(), func(r *EntityAddress) *string { return &r.City }),
	schema.Value("Line1", "line1", schema.String(), func(r *EntityAddress) *string { return &r.Line1 }),
	schema.Pointer("Line2", "line2", schema.String(), func(r *EntityAddress) **string { return &r.Line2 }),
	schema.Value("State", "state", schema.String(), func(r *EntityAddress) *string { return &r.State }),
	schema.Value("Zip", "zip", schema.String(), func(r *EntityAddress) *string { return &r.Zip }),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *EntityAddress) FromMap(raw map[string]any) error { return entityAddressSchema.Decode(raw, r) }

// ToMap encodes r as a wire object.
func (r *EntityAddress) ToMap() (map[string]any, error) { return entityAddressSchema.Encode(r) }

// EntityCorporation holds the details of a corporation entity.
type EntityCorporation struct {
	Address            EntityAddress
	BeneficialOwners   []EntityBeneficialOwner
	IncorporationState *string
	IndustryCode       *string
	Name               string
	TaxIdentifier      *string
	Website            *string
}

var entityCorporationSchema = schema.New("EntityCorporation",
	schema.Value("Address", "address", schema.Model[EntityAddress](), func(r *EntityCorporation) *EntityAddress {
		return &r.Address
	}),
	schema.Value("BeneficialOwners", "beneficial_owners", schema.List(schema.Model[EntityBeneficialOwner]()),
		func(r *EntityCorporation) *[]EntityBeneficialOwner { return &r.BeneficialOwners }),
	schema.Pointer("IncorporationState", "incorporation_state", schema.String(), func(r *EntityCorporation) **string {
		return &r.IncorporationState
	}),
	schema.Pointer("IndustryCode", "industry_code", schema.String(), func(r *EntityCorporation) **string {
		return &r.IndustryCode
	}),
	schema.Value("Name", "name", schema.String(), func(r *EntityCorporation) *string { return &r.Name }),
	schema.Pointer("TaxIdentifier", "tax_identifier", schema.String(), func(r *EntityCorporation) **string {
		return &r.TaxIdentifier
	}),
	schema.Pointer("Website", "website", schema.String(), func(r *EntityCorporation) **string { return &r.Website }),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *EntityCorporation) FromMap(raw map[string]any) error { return entityCorporationSchema.Decode(raw, r) }

// ToMap encodes r as a wire object.
func (r *EntityCorporation) ToMap() (map[string]any, error) { return entityCorporationSchema.Encode(r) }

// EntityBeneficialOwner is a person who owns or controls a corporation.
type EntityBeneficialOwner struct {
	BeneficialOwnerID string
	CompanyTitle      *string
	Individual        EntityPerson
	Prongs            []EntityBeneficialOwnerProng
}

var entityBeneficialOwnerSchema = schema.New("EntityBeneficialOwner",
	schema.Value("BeneficialOwnerID", "beneficial_owner_id", schema.String(), func(r *EntityBeneficialOwner) *string {
		return &r.BeneficialOwnerID
	}),
	schema.Pointer("CompanyTitle", "company_title", schema.String(), func(r *EntityBeneficialOwner) **string {
		return &r.CompanyTitle
	}),
	schema.Value("Individual", "individual", schema.Model[EntityPerson](), func(r *EntityBeneficialOwner) *EntityPerson {
		return &r.Individual
	}),
	schema.Value("Prongs", "prongs", schema.List(schema.Enum[EntityBeneficialOwnerProng]()),
		func(r *EntityBeneficialOwner) *[]EntityBeneficialOwnerProng { return &r.Prongs }),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *EntityBeneficialOwner) FromMap(raw map[string]any) error {
	return entityBeneficialOwnerSchema.Decode(raw, r)
}

// ToMap encodes r as a wire object.
func (r *EntityBeneficialOwner) ToMap() (map[string]any, error) {
	return entityBeneficialOwnerSchema.Encode(r)
}

// EntityPerson is an individual: the natural person of an entity, or a
// beneficial owner.
type EntityPerson struct {
	Address     EntityAddress
	DateOfBirth time.Time
	Name        string
}

var entityPersonSchema = schema.New("EntityPerson",
	schema.Value("Address", "address", schema.Model[EntityAddress](), func(r *EntityPerson) *EntityAddress { return &r.Address }),
	schema.Value("DateOfBirth", "date_of_birth", schema.Date(), func(r *EntityPerson) *time.Time { return &r.DateOfBirth }),
	schema.Value("Name", "name", schema.String(), func(r *EntityPerson) *string { return &r.Name }),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *EntityPerson) FromMap(raw map[string]any) error { return entityPersonSchema.Decode(raw, r) }

// ToMap encodes r as a wire object.
func (r *EntityPerson) ToMap() (map[string]any, error) { return entityPersonSchema.Encode(r) }

// EntitySupplementalDocument is a file attached to an entity.
type EntitySupplementalDocument struct {
	CreatedAt      Timestamp
	EntityID       string
	FileID         string
	IdempotencyKey *string
	Type           string
}

var entitySupplementalDocumentSchema = schema.New("EntitySupplementalDocument",
	schema.Value("CreatedAt", "created_at", schema.Timestamps(), func(r *EntitySupplementalDocument) *Timestamp {
		return &r.CreatedAt
	}),
	schema.Value("EntityID", "entity_id", schema.String(), func(r *EntitySupplementalDocument) *string { return &r.EntityID }),
	schema.Value("FileID", "file_id", schema.String(), func(r *EntitySupplementalDocument) *string { return &r.FileID }),
	schema.Pointer("IdempotencyKey", "idempotency_key", schema.String(), func(r *EntitySupplementalDocument) **string {
		return &r.IdempotencyKey
	}),
	schema.Value("Type", "type", schema.String(), func(r *EntitySupplementalDocument) *string { return &r.Type }),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *EntitySupplementalDocument) FromMap(raw map[string]any) error {
	return entitySupplementalDocumentSchema.Decode(raw, r)
}

// ToMap encodes r as a wire object.
func (r *EntitySupplementalDocument) ToMap() (map[string]any, error) {
	return entitySupplementalDocumentSchema.Encode(r)
}

// EntityStatus is the lifecycle state of an entity.
type EntityStatus string

const (
	EntityStatusActive   EntityStatus = "active"
	EntityStatusArchived EntityStatus = "archived"
	EntityStatusDisabled EntityStatus = "disabled"
)

// IsKnown reports whether the value is one this client version recognises.
func (r EntityStatus) IsKnown() bool {
	switch r {
	case EntityStatusActive, EntityStatusArchived, EntityStatusDisabled:
		return true
	}

	return false
}

// EntityStructure is the legal form of an entity.
type EntityStructure string

const (
	EntityStructureCorporation         EntityStructure = "corporation"
	EntityStructureNaturalPerson       EntityStructure = "natural_person"
	EntityStructureJoint               EntityStructure = "joint"
	EntityStructureTrust               EntityStructure = "trust"
	EntityStructureGovernmentAuthority EntityStructure = "government_authority"
)

// IsKnown reports whether the value is one this client version recognises.
func (r EntityStructure) IsKnown() bool {
	switch r {
	case EntityStructureCorporation, EntityStructureNaturalPerson, EntityStructureJoint, EntityStructureTrust,
		EntityStructureGovernmentAuthority:
		return true
	}

	return false
}

// EntityBeneficialOwnerProng is why a person counts as a beneficial owner.
type EntityBeneficialOwnerProng string

const (
	EntityBeneficialOwnerProngOwnership EntityBeneficialOwnerProng = "ownership"
	EntityBeneficialOwnerProngControl   EntityBeneficialOwnerProng = "control"
)

// IsKnown reports whether the value is one this client version recognises.
func (r EntityBeneficialOwnerProng) IsKnown() bool {
	switch r {
	case EntityBeneficialOwnerProngOwnership, EntityBeneficialOwnerProngControl:
		return true
	}

	return false
}

// EntityType is always "entity".
type EntityType string

const EntityTypeEntity EntityType = "entity"

// IsKnown reports whether the value is one this client version recognises.
func (r EntityType) IsKnown() bool {
	return r == EntityTypeEntity
}

// EntityAddressParam is an address sent when creating an entity.
type EntityAddressParam struct {
	City  Field[string]
	Line1 Field[string]
	Line2 Field[string]
	State Field[string]
	Zip   Field[string]
}

var entityAddressParamSchema = schema.New("EntityAddressParam",
	schema.Slot("City", "city", schema.String(), func(r *EntityAddressParam) *Field[string] { return &r.City }, schema.Required),
	schema.Slot("Line1", "line1", schema.String(), func(r *EntityAddressParam) *Field[string] { return &r.Line1 }, schema.Required),
	schema.Slot("Line2", "line2", schema.String(), func(r *EntityAddressParam) *Field[string] { return &r.Line2 }),
	schema.Slot("State", "state", schema.String(), func(r *EntityAddressParam) *Field[string] { return &r.State }, schema.Required),
	schema.Slot("Zip", "zip", schema.String(), func(r *EntityAddressParam) *Field[string] { return &r.Zip }, schema.Required),
)

// NewEntityAddressParam returns an address with the required fields set.
func NewEntityAddressParam(line1, city, state, zip string) EntityAddressParam {
	return EntityAddressParam{Line1: F(line1), City: F(city), State: F(state), Zip: F(zip)}
}

// EntityAddressParamFromMap builds an address from a map literal.
func EntityAddressParamFromMap(raw map[string]any) (EntityAddressParam, error) {
	return paramFromMap(entityAddressParamSchema, raw)
}

// WithLine2 sets the second address line.
func (r EntityAddressParam) WithLine2(v string) EntityAddressParam {
	r.Line2 = F(v)

	return r
}

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *EntityAddressParam) FromMap(raw map[string]any) error { return entityAddressParamSchema.Decode(raw, r) }

// ToMap encodes r as a wire object.
func (r *EntityAddressParam) ToMap() (map[string]any, error) { return entityAddressParamSchema.Encode(r) }

// EntityPersonParam describes an individual: a natural person entity or a
// beneficial owner.
type EntityPersonParam struct {
	Address            Field[EntityAddressParam]
	ConfirmedNoUSTaxID Field[bool]
	DateOfBirth        Field[time.Time]
	Name               Field[string]
}

var entityPersonParamSchema = schema.New("EntityPersonParam",
	schema.Slot("Address", "address", schema.Model[EntityAddressParam](), func(r *EntityPersonParam) *Field[EntityAddressParam] {
		return &r.Address
	}, schema.Required),
	schema.Slot("ConfirmedNoUSTaxID", "confirmed_no_us_tax_id", schema.Bool(), func(r *EntityPersonParam) *Field[bool] {
		return &r.ConfirmedNoUSTaxID
	}),
	schema.Slot("DateOfBirth", "date_of_birth", schema.Date(), func(r *EntityPersonParam) *Field[time.Time] {
		return &r.DateOfBirth
	}, schema.Required),
	schema.Slot("Name", "name", schema.String(), func(r *EntityPersonParam) *Field[string] { return &r.Name }, schema.Required),
)

// NewEntityPersonParam returns a person with the required fields set.
func NewEntityPersonParam(name string, dateOfBirth time.Time, address EntityAddressParam) EntityPersonParam {
	return EntityPersonParam{Name: F(name), DateOfBirth: F(dateOfBirth), Address: F(address)}
}

// EntityPersonParamFromMap builds a person from a map literal. The nested
// address may itself be a map literal.
func EntityPersonParamFromMap(raw map[string]any) (EntityPersonParam, error) {
	return paramFromMap(entityPersonParamSchema, raw)
}

// WithConfirmedNoUSTaxID records that the person has no US tax ID.
func (r EntityPersonParam) WithConfirmedNoUSTaxID(v bool) EntityPersonParam {
	r.ConfirmedNoUSTaxID = F(v)

	return r
}

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *EntityPersonParam) FromMap(raw map[string]any) error { return entityPersonParamSchema.Decode(raw, r) }

// ToMap encodes r as a wire object.
func (r *EntityPersonParam) ToMap() (map[string]any, error) { return entityPersonParamSchema.Encode(r) }

// EntityBeneficialOwnerParam is one beneficial owner of a new corporation.
type EntityBeneficialOwnerParam struct {
	CompanyTitle Field[string]
	Individual   Field[EntityPersonParam]
	Prongs       Field[[]EntityBeneficialOwnerProng]
}

var entityBeneficialOwnerParamSchema = schema.New("EntityBeneficialOwnerParam",
	schema.Slot("CompanyTitle", "company_title", schema.String(), func(r *EntityBeneficialOwnerParam) *Field[string] {
		return &r.CompanyTitle
	}),
	schema.Slot("Individual", "individual", schema.Model[EntityPersonParam](),
		func(r *EntityBeneficialOwnerParam) *Field[EntityPersonParam] { return &r.Individual }, schema.Required),
	schema.Slot("Prongs", "prongs", schema.List(schema.Enum[EntityBeneficialOwnerProng]()),
		func(r *EntityBeneficialOwnerParam) *Field[[]EntityBeneficialOwnerProng] { return &r.Prongs }, schema.Required),
)

// NewEntityBeneficialOwnerParam returns an owner with the required fields set.
func NewEntityBeneficialOwnerParam(
	individual EntityPersonParam,
	prongs ...EntityBeneficialOwnerProng,
) EntityBeneficialOwnerParam {
	return EntityBeneficialOwnerParam{Individual: F(individual), Prongs: F(slices.Clone(prongs))}
}

// EntityBeneficialOwnerParamFromMap builds an owner from a map literal.
func EntityBeneficialOwnerParamFromMap(raw map[string]any) (EntityBeneficialOwnerParam, error) {
	return paramFromMap(entityBeneficialOwnerParamSchema, raw)
}

// WithCompanyTitle sets the company title.
func (r EntityBeneficialOwnerParam) WithCompanyTitle(v string) EntityBeneficialOwnerParam {
	r.CompanyTitle = F(v)

	return r
}

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *EntityBeneficialOwnerParam) FromMap(raw map[string]any) error {
	return entityBeneficialOwnerParamSchema.Decode(raw, r)
}

// ToMap encodes r as a wire object.
func (r *EntityBeneficialOwnerParam) ToMap() (map[string]any, error) {
	return entityBeneficialOwnerParamSchema.Encode(r)
}

// EntityCorporationParam describes a new corporation.
type EntityCorporationParam struct {
	Address            Field[EntityAddressParam]
	BeneficialOwners   Field[[]EntityBeneficialOwnerParam]
	IncorporationState Field[string]
	IndustryCode       Field[string]
	Name               Field[string]
	TaxIdentifier      Field[string]
	Website            Field[string]
}

var entityCorporationParamSchema = schema.New("EntityCorporationParam",
	schema.Slot("Address", "address", schema.Model[EntityAddressParam](),
		func(r *EntityCorporationParam) *Field[EntityAddressParam] { return &r.Address }, schema.Required),
	schema.Slot("BeneficialOwners", "beneficial_owners", schema.List(schema.Model[EntityBeneficialOwnerParam]()),
		func(r *EntityCorporationParam) *Field[[]EntityBeneficialOwnerParam] { return &r.BeneficialOwners }, schema.Required),
	schema.Slot("IncorporationState", "incorporation_state", schema.String(), func(r *EntityCorporationParam) *Field[string] {
		return &r.IncorporationState
	}),
	schema.Slot("IndustryCode", "industry_code", schema.String(), func(r *EntityCorporationParam) *Field[string] {
		return &r.IndustryCode
	}),
	schema.Slot("Name", "name", schema.String(), func(r *EntityCorporationParam) *Field[string] {
		return &r.Name
	}, schema.Required),
	schema.Slot("TaxIdentifier", "tax_identifier", schema.String(), func(r *EntityCorporationParam) *Field[string] {
		return &r.TaxIdentifier
	}, schema.Required),
	schema.Slot("Website", "website", schema.String(), func(r *EntityCorporationParam) *Field[string] { return &r.Website }),
)

// NewEntityCorporationParam returns a corporation with the required fields set.
func NewEntityCorporationParam(
	name, taxIdentifier string,
	address EntityAddressParam,
	owners ...EntityBeneficialOwnerParam,
) EntityCorporationParam {
	return EntityCorporationParam{
		Name:             F(name),
		TaxIdentifier:    F(taxIdentifier),
		Address:          F(address),
		BeneficialOwners: F(slices.Clone(owners)),
	}
}

// EntityCorporationParamFromMap builds a corporation from a map literal.
// Nested addresses and owners may be map literals too.
func EntityCorporationParamFromMap(raw map[string]any) (EntityCorporationParam, error) {
	return paramFromMap(entityCorporationParamSchema, raw)
}

// WithIncorporationState sets the incorporation state.
func (r EntityCorporationParam) WithIncorporationState(v string) EntityCorporationParam {
	r.IncorporationState = F(v)

	return r
}

// WithIndustryCode sets the industry code.
func (r EntityCorporationParam) WithIndustryCode(v string) EntityCorporationParam {
	r.IndustryCode = F(v)

	return r
}

// WithWebsite sets the website.
func (r EntityCorporationParam) WithWebsite(v string) EntityCorporationParam {
	r.Website = F(v)

	return r
}

// WithBeneficialOwners replaces the owner list. The receiver's list is not touched.
func (r EntityCorporationParam) WithBeneficialOwners(v ...EntityBeneficialOwnerParam) EntityCorporationParam {
	r.BeneficialOwners = F(slices.Clone(v))

	return r
}

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *EntityCorporationParam) FromMap(raw map[string]any) error {
	return entityCorporationParamSchema.Decode(raw, r)
}

// ToMap encodes r as a wire object.
func (r *EntityCorporationParam) ToMap() (map[string]any, error) {
	return entityCorporationParamSchema.Encode(r)
}

// EntitySupplementalDocumentParam attaches an uploaded file to a new entity.
type EntitySupplementalDocumentParam struct {
	FileID Field[string]
}

var entitySupplementalDocumentParamSchema = schema.New("EntitySupplementalDocumentParam",
	schema.Slot("FileID", "file_id", schema.String(), func(r *EntitySupplementalDocumentParam) *Field[string] {
		return &r.FileID
	}, schema.Required),
)

// FromMap decodes a wire object into r, failing on missing required keys.
func (r *EntitySupplementalDocumentParam) FromMap(raw map[string]any) error {
	return entitySupplementalDocumentParamSchema.Decode(raw, r)
}

// ToMap encodes r as a wire object.
func (r *EntitySupplementalDocumentParam) ToMap() (map[string]any, error) {
	return entitySupplementalDocumentParamSchema.Encode(r)
}

// EntityNewParams is the body of POST /entities. Set Corporation or
// NaturalPerson to match Structure.
type EntityNewParams struct {
	Corporation           Field[EntityCorporationParam]
	Description           Field[string]
	NaturalPerson         Field[EntityPersonParam]
	Structure             Field[EntityStructure]
	SupplementalDocuments Field[[]EntitySupplementalDocumentParam]
}

var entityNewParamsSchema = schema.New("EntityNewParams",
	schema.Slot("Corporation", "corporation", schema.Model[EntityCorporationParam](),
		func(r *EntityNewParams) *Field[EntityCorporationParam] { return &r.Corporation }),
	schema.Slot("Description", "description", schema.String(), func(r *EntityNewParams) *Field[string] { return &r.Description }),
	schema.Slot("NaturalPerson", "natural_person", schema.Model[EntityPersonParam](),
		func(r *EntityNewParams) *Field[EntityPersonParam] { return &r.NaturalPerson }),
	schema.Slot("Structure", "structure", schema.Enum[EntityStructure](), func(r *EntityNewParams) *Field[EntityStructure] {
		return &r.Structure
	}, schema.Required),
	schema.Slot("SupplementalDocuments", "supplemental_documents",
		schema.List(schema.Model[EntitySupplementalDocumentParam]()),
		func(r *EntityNewParams) *Field[[]EntitySupplementalDocumentParam] { return &r.SupplementalDocuments }),
)

// NewEntityNewParams returns params with the required structure set.
func NewEntityNewParams(structure EntityStructure) EntityNewParams {
	return EntityNewParams{Structure: F(structure)}
}

// EntityNewParamsFromMap builds params from a map literal. Missing required
// keys at any depth are reported with their full path.
func EntityNewParamsFromMap(raw map[string]any) (EntityNewParams, error) {
	return paramFromMap(entityNewParamsSchema, raw)
}

// WithCorporation sets the corporation.
func (r EntityNewParams) WithCorporation(v EntityCorporationParam) EntityNewParams {
	r.Corporation = F(v)

	return r
}

// WithDescription sets the description.
func (r EntityNewParams) WithDescription(v string) EntityNewParams {
	r.Description = F(v)

	return r
}

// WithNaturalPerson sets the natural person.
func (r EntityNewParams) WithNaturalPerson(v EntityPersonParam) EntityNewParams {
	r.NaturalPerson = F(v)

	return r
}

// WithSupplementalDocuments attaches the given uploaded files.
func (r EntityNewParams) WithSupplementalDocuments(fileIDs ...string) EntityNewParams {
	docs := make([]EntitySupplementalDocumentParam, 0, len(fileIDs))
	for _, id := range fileIDs {
		docs = append(docs, EntitySupplementalDocumentParam{FileID: F(id)})
	}

	r.SupplementalDocuments = F(docs)

	return r
}

// MarshalJSON encodes r through its schema.
func (r EntityNewParams) MarshalJSON() ([]byte, error) { return entityNewParamsSchema.Marshal(&r) }

// EntityListParams filters GET /entities.
type EntityListParams struct {
	ListParams

	CreatedAt      Field[CreatedAtFilter]
	IdempotencyKey Field[string]
	Status         Field[StatusFilter[EntityStatus]]
}

var entityListParamsSchema = schema.New("EntityListParams", append(
	listProps(func(r *EntityListParams) *ListParams { return &r.ListParams }),
	schema.Slot("CreatedAt", "created_at", schema.Model[CreatedAtFilter](), func(r *EntityListParams) *Field[CreatedAtFilter] {
		return &r.CreatedAt
	}),
	schema.Slot("IdempotencyKey", "idempotency_key", schema.String(), func(r *EntityListParams) *Field[string] {
		return &r.IdempotencyKey
	}),
	schema.Slot("Status", "status", statusFilterCodec[EntityStatus](),
		func(r *EntityListParams) *Field[StatusFilter[EntityStatus]] { return &r.Status }),
)...)

// WithCursor resumes the listing from a cursor returned by a previous page.
func (r EntityListParams) WithCursor(v string) EntityListParams {
	r.Cursor = F(v)

	return r
}

// WithLimit caps the page size, between 1 and 100.
func (r EntityListParams) WithLimit(v int64) EntityListParams {
	r.Limit = F(v)

	return r
}

// WithStatus filters by status.
func (r EntityListParams) WithStatus(v ...EntityStatus) EntityListParams {
	r.Status = F(In(v...))

	return r
}

// WithCreatedAt filters by creation time.
func (r EntityListParams) WithCreatedAt(v CreatedAtFilter) EntityListParams {
	r.CreatedAt = F(v)

	return r
}

// WithIdempotencyKey finds the entity created with this key.
func (r EntityListParams) WithIdempotencyKey(v string) EntityListParams {
	r.IdempotencyKey = F(v)

	return r
}

// ToValues encodes the params as a query string.
func (r EntityListParams) ToValues() (url.Values, error) {
	return queryValues(entityListParamsSchema, &r)
}
