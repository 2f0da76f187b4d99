package repositories

// ListOptions controls paging and ordering of list queries. Sort is always
// applied descending, matching the API contract.
type ListOptions struct {
	Limit int
	Skip  int
	Sort  string
}

// PetFilter narrows pet queries. Zero values mean "no constraint".
type PetFilter struct {
	// Species matches as a case-insensitive substring.
	Species string
	// AgeMin and AgeMax are inclusive bounds.
	AgeMin *int
	AgeMax *int
	// Owner matches pets owned by a specific user.
	Owner *string
	// HasOwner filters on owner presence: true for adopted pets, false for
	// available ones.
	HasOwner *bool
}

// SpeciesStat is one row of the per-species adoption breakdown.
type SpeciesStat struct {
	Species   string `json:"species" bson:"species"`
	Total     int64  `json:"total" bson:"total"`
	Adopted   int64  `json:"adopted" bson:"adopted"`
	Available int64  `json:"available" bson:"available"`
}
