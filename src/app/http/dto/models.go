package dto

import "tirecatalog/src/core/domain"

// TireRequest is the payload for creating or updating a tire. Both
// operations accept the same fully-enumerated field set: required fields
// are validated downstream, absent optional fields fall back to their
// documented defaults (zero for numerics, null for categorical text).
type TireRequest struct {
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
}

// ToDomain maps the request onto a domain entity.
func (r *TireRequest) ToDomain() *domain.Tire {
	return &domain.Tire{
		Brand:         r.Brand,
		Model:         r.Model,
		Size:          r.Size,
		LayerIndex:    r.LayerIndex,
		Layers:        r.Layers,
		MaxPressure:   r.MaxPressure,
		MinPressure:   r.MinPressure,
		MaxDepth:      r.MaxDepth,
		MinDepth:      r.MinDepth,
		WearType:      r.WearType,
		Profitability: r.Profitability,
		Performance:   r.Performance,
		Temperature:   r.Temperature,
		Speed:         r.Speed,
		SpeedNumber:   r.SpeedNumber,
		Braking:       r.Braking,
		LoadType:      r.LoadType,
		LoadValue:     r.LoadValue,
		RoadType:      r.RoadType,
		TerrainType:   r.TerrainType,
		Position:      r.Position,
	}
}
