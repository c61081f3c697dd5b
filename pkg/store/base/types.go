package base

// CompanyDetails is the static record behind a single company lookup.
// Address falls back to the head of the multi-valued addresses property
// when no scalar address was ingested.
type CompanyDetails struct {
	ID      string `json:"company_id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// Officer is one person holding a directorship into a company.
type Officer struct {
	Name      string `json:"name"`
	Role      string `json:"role,omitempty"`
	StartDate string `json:"start_date,omitempty"`
}

// SearchHit is one ranked company name match. Fallback substring matches
// carry a fixed score of 0.
type SearchHit struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// EgoRow is one raw path from the bounded ego-network query: the root
// company, a person with a directorship into it, and optionally a second
// company that person also directs. Empty strings stand for absent values;
// person and company identifiers may be store-internal opaque ids when the
// node lacks a stable one.
type EgoRow struct {
	RootID      string
	RootName    string
	PersonID    string
	PersonName  string
	OtherID     string
	OtherName   string
	RoleToRoot  string
	RoleToOther string
}
