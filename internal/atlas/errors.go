package atlas

import "github.com/rotisserie/eris"

// Error taxonomy for a fetch. Every failure is fatal to the in-flight fetch;
// no partial results are returned and nothing is retried internally. Callers
// match with errors.Is.
var (
	// ErrTransport covers network failures, timeouts and non-2xx responses.
	ErrTransport = eris.New("atlas: transport error")

	// ErrAPI covers well-formed responses carrying an error.message payload,
	// regardless of HTTP status.
	ErrAPI = eris.New("atlas: api error")

	// ErrMalformedResponse covers bodies that do not decode as a feature-service
	// response.
	ErrMalformedResponse = eris.New("atlas: malformed response")

	// ErrUnknownService is raised before any network call when the requested
	// service is not in the routing table.
	ErrUnknownService = eris.New("atlas: unknown service")

	// ErrPaginationLimit is raised when a fetch exceeds the configured page cap
	// without the server ever signalling a final page.
	ErrPaginationLimit = eris.New("atlas: pagination limit exceeded")
)
