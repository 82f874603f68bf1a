// Package hvr provides a client for the HVR hub server REST API.
//
// The hub server manages hubs, channels, locations and replication jobs.
// This package implements a typed binding of its API: one method per
// operation, generated from api/openapi.yaml, on top of a small
// hand-written session and request layer.
//
// # Architecture
//
//   - Client: base URL, HTTP client, options
//   - Session: bearer-token login and caching (session.go)
//   - Do: the request executor every generated method calls (request.go)
//   - Generated methods: *.gen.go, one file per API area
//   - Errors: a single *Error type classified by Kind
//
// # Usage
//
//	client, err := hvr.NewClient(
//		"http://localhost:4340",
//		"admin",
//		"secret",
//		hvr.WithLogger(logger),
//		hvr.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	channels, err := client.GetHubsDefinitionChannels(ctx, "hvrhub",
//		&hvr.GetHubsDefinitionChannelsParams{Channel: []string{"ch1"}})
//
// A hub server without a repository only accepts setup-mode logins:
//
//	setup, err := hvr.NewSetupClient("http://localhost:4340")
//
// # Tokens
//
// The first call logs in. The token is reused until it is within 60
// seconds of expiry and then replaced before the next call. Client is safe
// for concurrent use.
//
// # Parameters
//
// Path parameters are positional arguments. Query, header and body
// parameters are fields of the method's Params struct; a nil Params sends
// none of them. Required body fields are always sent, optional ones only
// when set. Booleans travel as the strings "true" and "false".
//
// # Results
//
// Methods return the decoded JSON value (maps, slices, float64, string,
// bool), the response text for text/plain operations, or nil for an empty
// body. Decode converts a result into a typed struct.
//
// # Error Handling
//
// Every failure is an *Error:
//
//   - KindConnection (ErrConnection): no response was received
//   - KindLogin (ErrLogin): the authentication endpoint refused the login
//   - KindREST (ErrREST): any other non-2xx response
//
// Body holds the response text unmodified. Server diagnostics of the form
// "F_JX0A09: message" are split into Code and Message.
//
//	if e, ok := hvr.AsError(err); ok && e.IsNotFound() {
//		// Handle missing object
//	}
package hvr

//go:generate go run .. generate --spec ../api/openapi.yaml --mapping ../api/function_mapping.yaml --out . --package hvr
