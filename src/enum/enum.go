package enum

const (
	// URL lifecycle inside a crawl. Dispatched happens exactly once per URL;
	// Fetched and Failed are terminal and never retried.
	URLDiscovered = 0
	URLDispatched = 1
	URLFetched    = 2
	URLFailed     = 3
)

type ResultStatus string

const (
	// keyword extraction outcome
	ResultFull     ResultStatus = "full"
	ResultDegraded ResultStatus = "degraded"
)

const NoTitle = "No title"
