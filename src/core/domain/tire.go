package domain

// Tire represents one catalog entry.
//
// Optional descriptive fields are pointers so that an absent value is stored
// and rendered as null rather than an empty string; optional numeric fields
// default to zero. Timestamps are milliseconds since epoch and are assigned
// by the store.
type Tire struct {
	ID            int64   `json:"id"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	Size          string  `json:"size"`
	LayerIndex    *string `json:"layer_index"`
	Layers        int     `json:"layers"`
	MaxPressure   int     `json:"max_pressure"`
	MinPressure   int     `json:"min_pressure"`
	MaxDepth      int     `json:"max_depth"`
	MinDepth      int     `json:"min_depth"`
	WearType      *string `json:"wear_type"`
	Profitability int     `json:"profitability"`
	Performance   int     `json:"performance"`
	Temperature   *string `json:"temperature"`
	Speed         *string `json:"speed"`
	SpeedNumber   int     `json:"speed_number"`
	Braking       *string `json:"braking"`
	LoadType      *string `json:"load_type"`
	LoadValue     int     `json:"load"`
	RoadType      *string `json:"road_type"`
	TerrainType   *string `json:"terrain_type"`
	Position      *string `json:"position"`
	CreatedAt     int64   `json:"created_at"`
	UpdatedAt     int64   `json:"updated_at"`
}

// TireFilter holds the optional list parameters. Empty string means the
// filter is inactive. Search matches brand OR model OR size as a
// case-insensitive substring; the remaining fields are exact matches and
// combine with AND.
type TireFilter struct {
	Search   string
	Brand    string
	Model    string
	Size     string
	Position string
}

// FilterFacets is the distinct values currently present in the catalog,
// recomputed per request. Position values exclude null.
type FilterFacets struct {
	Brands    []string `json:"brands"`
	Models    []string `json:"models"`
	Sizes     []string `json:"sizes"`
	Positions []string `json:"positions"`
}

// TirePage is one page of catalog entries, newest first, with totals
// covering the full filtered set.
type TirePage struct {
	Tires      []Tire
	Page       int
	Limit      int
	Total      int
	TotalPages int
}
