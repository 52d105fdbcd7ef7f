package models

// Requests and responses for the HTTP endpoints. Defined in domain for
// consistency and reuse.

type RankingRequest struct {
	Chain string `query:"chain" json:"chain"`
}

type VoteRequest struct {
	Address string `json:"address" validate:"required"`
}

type VoteResponse struct {
	Success bool `json:"success"`
	Votes   int  `json:"votes"`
}
