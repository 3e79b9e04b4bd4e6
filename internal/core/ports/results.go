package ports

// WriteResult reports the outcome of an update or upsert against a single
// document. A role mutation targeting an unknown email completes with
// MatchedCount 0 rather than an error; only registration may populate
// UpsertedID.
type WriteResult struct {
	MatchedCount  int64  `json:"matched_count"`
	ModifiedCount int64  `json:"modified_count"`
	UpsertedID    string `json:"upserted_id,omitempty"`
}

// DeleteResult reports the outcome of a delete.
type DeleteResult struct {
	DeletedCount int64 `json:"deleted_count"`
}
