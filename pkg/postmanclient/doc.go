// Package postmanclient provides the primary entry point for constructing a
// Postman API client that implements the postman.Client interface.
//
// It layers configuration and HTTP transport on top of the resource
// interfaces and types defined in the postman package. Most applications
// import postmanclient to build a client, then use the returned
// postman.Client to reach the resource clients, for example Collections(),
// Specs(), Mocks(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//	  "os"
//
//	  "github.com/fivetwenty-io/postman-client/pkg/postman"
//	  "github.com/fivetwenty-io/postman-client/pkg/postmanclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := postmanclient.NewWithAPIKey(ctx, os.Getenv("POSTMAN_API_KEY"))
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with a custom endpoint, retries and a request timeout:
//	  cli, err = postmanclient.New(ctx, &postman.Config{
//	    APIKey:         os.Getenv("POSTMAN_API_KEY"),
//	    BaseURL:        "https://api.eu.postman.com",
//	    RetryMax:       3,
//	    RequestTimeout: 30 * time.Second,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  resp, err := cli.Collections().List(ctx, &postman.CollectionListOptions{Limit: postman.Int(10)})
//	  if err != nil { log.Fatal(err) }
//	  _ = resp.Body
//	}
//
// # Base URL
//
// BaseURL defaults to postman.DefaultBaseURL. Surrounding whitespace and
// trailing slashes are removed; otherwise the value is used verbatim as the
// prefix of every request path.
package postmanclient
