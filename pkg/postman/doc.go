// Package postman provides types, interfaces, and helpers for working with the
// Postman public REST API.
//
// # Overview
//
// The postman package defines the resource client interfaces (CollectionsClient,
// SpecsClient, MocksClient, ...), the identifier validators shared by every
// operation, the ordered Query type used for query strings, and the error types
// returned by the client. A concrete implementation is provided by the
// postmanclient package:
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/postman-client/pkg/postman"
//	  "github.com/fivetwenty-io/postman-client/pkg/postmanclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := postmanclient.New(ctx, &postman.Config{APIKey: "PMAK-..."})
//	  if err != nil { log.Fatal(err) }
//
//	  resp, err := cli.Specs().Get(ctx, "bf5cb6e7-0a1e-4b82-a577-b2068a70f830")
//	  if err != nil { log.Fatal(err) }
//	  _ = resp.Body
//	}
//
// # Identifiers
//
// Most endpoints take an ID (a UUID). Endpoints whose resource is unique only
// per owner take a UID, "<ownerId>-<ID>". ValidateID and ValidateUID reject
// malformed values before any network call; BuildUID joins an owner ID and an
// ID.
//
// # Responses and errors
//
// Successful calls return a *Response carrying the status, headers and raw
// JSON body exactly as received. Any status outside 200-299 is returned as an
// *APIError whose message is "API call failed with status N: <body>". Local
// validation failures are *InvalidArgumentError values matching
// ErrInvalidArgument. Network failures are returned as the transport produced
// them.
package postman
