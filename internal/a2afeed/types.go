package a2afeed

// QueryID uniquely identifies an agent-to-agent query record.
type QueryID int64

// QueryRecord is one synthetic agent-to-agent interaction: one purchasing
// agent asking another about a listing. The feed's record count seeds the
// a2a edges of the ecosystem graph.
type QueryRecord struct {
	ID        QueryID
	Time      int64 // unix nanos
	FromAgent string
	ToAgent   string
	SKU       string
	Intent    string
}
