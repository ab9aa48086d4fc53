// Package drive fetches OneDrive metadata collections from the Graph API.
//
// Graph paginates collection responses with an @odata.nextLink cursor: each
// page carries a slice of the result set plus an optional link naming the
// next page. Pagination is inherently sequential because the cursor is only
// known after the previous page arrives, so the fetcher runs a single
// request loop per collection and concatenates items in arrival order.
//
// Example usage:
//
//	fetcher := drive.NewFetcher(drive.Config{})
//	items, err := fetcher.Following(ctx, drive.StaticToken(token))
//
// The fetcher:
//   - Resolves the bearer token from the session before any network call
//   - Constructs a fresh, exclusively owned client per invocation
//   - Follows continuation links verbatim until the server stops sending them
//   - Fails terminally on the first transport or parse error, never
//     returning a partial collection
package drive
