// Package increaseclient is the entry point for constructing an Increase API
// client that implements the increase.Client interface.
//
// It layers configuration, environment selection, HTTP transport and API key
// authentication on top of the resource interfaces and types defined in the
// increase package.
//
// Quick start
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
//
//	  // Reads INCREASE_API_KEY and INCREASE_BASE_URL when set.
//	  cli, err := increaseclient.New(&increase.Config{Environment: "sandbox"})
//	  if err != nil { log.Fatal(err) }
//
//	  page, err := cli.Accounts().List(ctx, increase.AccountListParams{}.WithLimit(10))
//	  if err != nil { log.Fatal(err) }
//	  _ = page
//	}
//
// Retries, caching and interceptors are configured through increase.Config.
package increaseclient
