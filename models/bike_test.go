// File: /models/bike_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorsListSplitsOnCommasAndTrims(t *testing.T) {
	bike := Bike{Colors: "Red, Blue ,Green"}
	assert.Equal(t, []string{"Red", "Blue", "Green"}, bike.ColorsList())
}

func TestFeaturesListSplitsOnNewlinesToo(t *testing.T) {
	bike := Bike{Features: "ABS\nLED headlamp, Disc brake"}
	assert.Equal(t, []string{"ABS", "LED headlamp", "Disc brake"}, bike.FeaturesList())
}

func TestGalleryListIgnoresNewlines(t *testing.T) {
	// The newline delimiter is a features-only quirk
	bike := Bike{GalleryImages: "a.webp\nb.webp, c.webp"}
	assert.Equal(t, []string{"a.webp\nb.webp", "c.webp"}, bike.GalleryList())
}

func TestListFieldsEmptyStringYieldsEmptySlice(t *testing.T) {
	bike := Bike{}
	assert.Equal(t, []string{}, bike.ColorsList())
	assert.Equal(t, []string{}, bike.FeaturesList())
	assert.Equal(t, []string{}, bike.GalleryList())
}

func TestListFieldsDropEmptyEntries(t *testing.T) {
	bike := Bike{Colors: "Red, , ,Blue,"}
	assert.Equal(t, []string{"Red", "Blue"}, bike.ColorsList())
}

func TestToViewProjectsNilNumericsAsZero(t *testing.T) {
	bike := Bike{Slug: "hunter-350", Name: "Hunter 350"}

	view := bike.ToView()
	assert.Equal(t, "hunter-350", view.Slug)
	assert.Equal(t, float64(0), view.Engine.CC)
	assert.Equal(t, float64(0), view.Price.ExShowroom)
	assert.Equal(t, float64(0), view.Price.OnRoad)
}

func TestToViewKeepsStoredNumerics(t *testing.T) {
	cc := 350.5
	price := 169900.0
	bike := Bike{Slug: "hunter-350", Name: "Hunter 350", EngineCC: &cc, ExShowroomPrice: &price}

	view := bike.ToView()
	assert.Equal(t, 350.5, view.Engine.CC)
	assert.Equal(t, 169900.0, view.Price.ExShowroom)
}

func TestToViewIsPure(t *testing.T) {
	cc := 411.0
	bike := Bike{
		Slug:     "himalayan",
		Name:     "Himalayan",
		EngineCC: &cc,
		Colors:   "Granite Black, Lake Blue",
		Features: "Tripper navigation\nSwitchable ABS",
	}

	first := bike.ToView()
	second := bike.ToView()
	assert.Equal(t, first, second)
}

func TestToViewNesting(t *testing.T) {
	bike := Bike{
		Slug:       "classic-350",
		Name:       "Classic 350",
		Family:     "Classic",
		IsFeatured: true,
		Mileage:    "35 kmpl",
		TopSpeed:   "120 km/h",
		FrontBrake: "300mm disc",
		EMI:        "₹3,599/month",
	}

	view := bike.ToView()
	assert.True(t, view.IsFeatured)
	assert.Equal(t, "Classic", view.Family)
	assert.Equal(t, "35 kmpl", view.Performance.Mileage)
	assert.Equal(t, "120 km/h", view.Performance.TopSpeed)
	assert.Equal(t, "300mm disc", view.Chassis.FrontBrake)
	assert.Equal(t, "₹3,599/month", view.Price.EMI)
}
