package sanity

import "encoding/json"

// Mutation is one entry of a mutate request. Only create is used by the site.
type Mutation struct {
	Create any `json:"create,omitempty"`
}

type mutateRequest struct {
	Mutations []Mutation `json:"mutations"`
}

type MutationResult struct {
	ID        string `json:"id"`
	Operation string `json:"operation"`
}

// MutateResponse is returned by POST /data/mutate/{dataset}
type MutateResponse struct {
	TransactionID string           `json:"transactionId"`
	Results       []MutationResult `json:"results"`
}

type queryResponse struct {
	Query  string          `json:"query"`
	Result json.RawMessage `json:"result"`
	MS     int             `json:"ms"`
}

// errorResponse covers both error shapes the API returns: an object with a
// description for query/mutation errors and a plain string for auth errors.
type errorResponse struct {
	Error   json.RawMessage `json:"error"`
	Message string          `json:"message"`
}

type errorDetail struct {
	Description string `json:"description"`
	Type        string `json:"type"`
}
