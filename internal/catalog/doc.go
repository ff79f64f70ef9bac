// Package catalog loads the hackdex dataset and resolves display names.
//
// # Overview
//
// The catalog is published as two static JSON documents next to each other
// on the hackdex site:
//
//   - db.json: ordered array of hack records
//   - pretty.json: category → raw value → display label
//
// Client fetches both over HTTP, Load runs the two fetches concurrently and
// only succeeds when both documents arrive and decode.
//
// # Client Usage
//
//	client, err := catalog.NewClient(catalog.ClientOptions{
//		BaseURL: "https://hackdex.app/",
//	})
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	cat, err := catalog.Load(ctx, client)
//	if err != nil {
//		log.Printf("catalog unavailable: %v", err)
//	}
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation
//   - Set Accept: application/json header
//   - Include User-Agent: hackdex/0.1 header
//   - Have a configurable timeout (15 seconds by default)
//   - Return wrapped errors with context about what failed
//
// Paths are resolved relative to the base URL, so a catalog hosted under a
// sub-path ("https://example.github.io/hackdex/") works as-is.
//
// # Error Handling
//
// Load treats every failure the same way: network errors, non-2xx responses
// (wrapping ErrStatus) and malformed JSON all abort the load. There are no
// retries and no partial results.
//
// Example error messages:
//   - "load catalog: get db.json: unexpected status 404 Not Found"
//   - "load display names: decode pretty.json: unexpected EOF"
//
// # Records
//
// Hack mirrors one db.json entry. Optional single-valued fields decode to the
// empty string when absent; optional arrays decode to nil. Two fields need
// more care:
//
//   - ID accepts a JSON string or number
//   - Timestamp remembers whether last_update was present, so renderers can
//     tell "missing" from "present but unparseable", and whether it was a
//     JSON number; only numbers are read as epoch milliseconds
//
// # Display Names
//
// Names.Format looks a raw value up in the table and falls back to
// FallbackLabel, which upper-cases the first character and replaces
// underscores with spaces. A missing category, key or table all fall back;
// lookups never fail. Formatter adds a one-time debug log entry per missing
// category/key pair.
package catalog
