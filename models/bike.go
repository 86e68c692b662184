// File: /models/bike.go
package models

import (
	"strings"
	"time"
)

// Bike is a catalog entry curated by showroom staff. Lead records reference
// it by slug only, so deleting a bike never cascades into historical leads.
type Bike struct {
	ID         string `json:"id" gorm:"primaryKey;size:191"`
	Slug       string `json:"slug" gorm:"uniqueIndex;not null;size:100"`
	Name       string `json:"name" gorm:"not null;size:200"`
	Family     string `json:"family" gorm:"size:100"`
	IsFeatured bool   `json:"is_featured" gorm:"default:false"`
	HeroImage  string `json:"hero_image" gorm:"size:200"`

	// Engine specifications (all optional)
	EngineCC     *float64 `json:"engine_cc" gorm:"type:decimal(6,2)"`
	CCCategory   string   `json:"cc_category" gorm:"size:50"`
	Power        string   `json:"power" gorm:"size:100"`
	Torque       string   `json:"torque" gorm:"size:100"`
	Cooling      string   `json:"cooling" gorm:"size:100"`
	Transmission string   `json:"transmission" gorm:"size:100"`

	// Performance (all optional)
	Mileage            string `json:"mileage" gorm:"size:100"`
	TopSpeed           string `json:"top_speed" gorm:"size:100"`
	PerformanceSummary string `json:"performance_summary" gorm:"type:text"`

	// Chassis (all optional)
	FrontBrake string `json:"front_brake" gorm:"size:200"`
	RearBrake  string `json:"rear_brake" gorm:"size:200"`
	Suspension string `json:"suspension" gorm:"size:200"`
	Weight     string `json:"weight" gorm:"size:50"`
	SeatHeight string `json:"seat_height" gorm:"size:50"`

	// Colors, features and gallery are stored as delimited text so rows
	// round-trip with the legacy data set. Split on read only.
	Colors        string `json:"colors" gorm:"type:text"`
	Features      string `json:"features" gorm:"type:text"`
	GalleryImages string `json:"gallery_images" gorm:"type:text"`

	// Pricing
	ExShowroomPrice *float64 `json:"ex_showroom_price" gorm:"type:decimal(10,2)"`
	OnRoadPrice     *float64 `json:"on_road_price" gorm:"type:decimal(10,2)"`
	EMI             string   `json:"emi" gorm:"size:100"`

	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BikeView is the public JSON shape of a bike. The front end consumes it
// both embedded in pages and from the bikes.json feed, so field names and
// nesting must stay stable.
type BikeView struct {
	Slug        string          `json:"slug"`
	Name        string          `json:"name"`
	Family      string          `json:"family"`
	IsFeatured  bool            `json:"isFeatured"`
	HeroImage   string          `json:"heroImage"`
	Gallery     []string        `json:"gallery"`
	Engine      EngineView      `json:"engine"`
	Performance PerformanceView `json:"performance"`
	Chassis     ChassisView     `json:"chassis"`
	Colors      []string        `json:"colors"`
	Price       PriceView       `json:"price"`
	Features    []string        `json:"features"`
}

type EngineView struct {
	CC           float64 `json:"cc"`
	CCCategory   string  `json:"ccCategory"`
	Power        string  `json:"power"`
	Torque       string  `json:"torque"`
	Cooling      string  `json:"cooling"`
	Transmission string  `json:"transmission"`
}

type PerformanceView struct {
	Mileage  string `json:"mileage"`
	TopSpeed string `json:"topSpeed"`
	Summary  string `json:"summary"`
}

type ChassisView struct {
	FrontBrake string `json:"frontBrake"`
	RearBrake  string `json:"rearBrake"`
	Suspension string `json:"suspension"`
	Weight     string `json:"weight"`
	SeatHeight string `json:"seatHeight"`
}

type PriceView struct {
	ExShowroom float64 `json:"exShowroom"`
	OnRoad     float64 `json:"onRoad"`
	EMI        string  `json:"emi"`
}

// BikeChoice is the slug/name pair used by the booking form dropdowns.
type BikeChoice struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// splitList splits delimited text into trimmed entries, dropping empties.
// An empty source yields an empty slice, never nil, so JSON stays "[]".
func splitList(raw string) []string {
	out := []string{}
	if raw == "" {
		return out
	}
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ColorsList returns the stored colors as a list.
func (b *Bike) ColorsList() []string {
	return splitList(b.Colors)
}

// FeaturesList returns the stored features as a list. Features accept
// newlines as an alternate delimiter; colors and gallery do not.
func (b *Bike) FeaturesList() []string {
	return splitList(strings.ReplaceAll(b.Features, "\n", ","))
}

// GalleryList returns the stored gallery image paths as a list.
func (b *Bike) GalleryList() []string {
	return splitList(b.GalleryImages)
}

// ToView projects the stored record into its public JSON shape. Nullable
// numeric columns project to 0 to keep the feed shape stable for consumers
// that expect numbers.
func (b *Bike) ToView() BikeView {
	return BikeView{
		Slug:       b.Slug,
		Name:       b.Name,
		Family:     b.Family,
		IsFeatured: b.IsFeatured,
		HeroImage:  b.HeroImage,
		Gallery:    b.GalleryList(),
		Engine: EngineView{
			CC:           floatOrZero(b.EngineCC),
			CCCategory:   b.CCCategory,
			Power:        b.Power,
			Torque:       b.Torque,
			Cooling:      b.Cooling,
			Transmission: b.Transmission,
		},
		Performance: PerformanceView{
			Mileage:  b.Mileage,
			TopSpeed: b.TopSpeed,
			Summary:  b.PerformanceSummary,
		},
		Chassis: ChassisView{
			FrontBrake: b.FrontBrake,
			RearBrake:  b.RearBrake,
			Suspension: b.Suspension,
			Weight:     b.Weight,
			SeatHeight: b.SeatHeight,
		},
		Colors: b.ColorsList(),
		Price: PriceView{
			ExShowroom: floatOrZero(b.ExShowroomPrice),
			OnRoad:     floatOrZero(b.OnRoadPrice),
			EMI:        b.EMI,
		},
		Features: b.FeaturesList(),
	}
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
