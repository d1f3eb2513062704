package response

type InsertResponse struct {
	InsertedID string `json:"insertedId"`
}

type UpdateResponse struct {
	MatchedCount int64 `json:"matchedCount"`
}

type DeleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}
