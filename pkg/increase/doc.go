// Package increase provides types, interfaces, and helpers for working with the
// Increase banking API.
//
// # Overview
//
// The increase package defines the domain types (e.g., Account, Card, Entity,
// Transaction) and the interfaces for resource-oriented clients (e.g.,
// AccountsClient, CardsClient). A concrete implementation of these clients is
// provided by the increaseclient package, which wires configuration, transport
// and authentication. Most consumers should import increaseclient to construct
// a client and then interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/increase/pkg/increase"
//	  "github.com/fivetwenty-io/increase/pkg/increaseclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := increaseclient.NewSandbox("sk_sandbox_...")
//	  if err != nil { log.Fatal(err) }
//
//	  account, err := cli.Accounts().Create(ctx, increase.NewAccountNewParams("Operating"))
//	  if err != nil { log.Fatal(err) }
//	  _ = account
//	}
//
// # Params
//
// Request params are plain structs of Field values. A Field is unset (left
// out of the request), set, or explicitly null. Constructors such as
// NewAccountNewParams take the required fields; WithX setters return a copy
// and never modify the receiver. Nested params may also be given as map
// literals through the FromMap constructors, in which case missing required
// keys are reported with their full path, e.g.
// "corporation.beneficial_owners[0].individual.name".
//
// # Models and enums
//
// Response models decode through a property table. Required keys must be
// present, nullable keys may be null, and unknown keys are ignored. Enum
// fields keep values this version does not know; use IsKnown to tell them
// apart.
//
// # Pagination
//
// List returns one Page. ListAutoPaging returns a PaginationIterator that
// requests pages lazily as items are consumed:
//
//	it := cli.Accounts().ListAutoPaging(ctx, increase.AccountListParams{}.WithLimit(100))
//	for account, err := range it.Seq() {
//	  if err != nil { break }
//	  _ = account
//	}
//
// # Errors
//
// Non-2xx responses become a typed error from the status and the body "type"
// field, for example ObjectNotFoundError or IdempotencyKeyAlreadyUsedError.
// Every typed error unwraps to its status family (NotFoundError, ConflictError)
// and then to APIStatusError. Helpers such as IsNotFound, IsConflict and
// IsRateLimited branch on the family.
//
// # Interceptors and caching
//
// The package includes request/response interceptors (logging, headers,
// metrics, rate limiting, circuit breaking) and a pluggable Cache for GET
// responses, backed by memory or a NATS key-value bucket.
package increase
