package campsite

type (
	// Campsite is the wire representation of a listing. Tags always serialize
	// as an array; the delimited storage form never leaves the repository.
	Campsite struct {
		ID          int64    `json:"id"`
		Name        string   `json:"name"`
		Description string   `json:"description,omitempty"`
		Location    string   `json:"location"`
		Prefecture  string   `json:"prefecture"`
		PriceMin    int      `json:"price_min"`
		PriceMax    int      `json:"price_max"`
		PetFriendly bool     `json:"pet_friendly"`
		Tags        []string `json:"tags"`
	}

	// CampsiteIn is the create/update body. Updates are full-record replaces,
	// so every column is written from this struct.
	CampsiteIn struct {
		Name        string   `json:"name" validate:"required"`
		Description string   `json:"description"`
		Location    string   `json:"location" validate:"required"`
		Prefecture  string   `json:"prefecture" validate:"required"`
		PriceMin    int      `json:"price_min"`
		PriceMax    int      `json:"price_max"`
		PetFriendly bool     `json:"pet_friendly"`
		Tags        []string `json:"tags"`
	}

	// ListQuery holds the optional, conjunctive listing filters.
	ListQuery struct {
		Keyword     string
		Prefecture  string
		PetFriendly *bool
	}
)
