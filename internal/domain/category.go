package domain

import "time"

// Category classifies a spot. Categories are a closed set: provider tag
// strings that do not parse into one of these values fall back to the
// default stay time and carry no planning semantics.
type Category string

const (
	CategoryHotel            Category = "HOTEL"
	CategoryEating           Category = "EATING"
	CategorySightseeing      Category = "SIGHTSEEING"
	CategoryAmusementPark    Category = "AMUSEMENT_PARK"
	CategoryThemePark        Category = "THEME_PARK"
	CategoryHiking           Category = "HIKING"
	CategoryNaturalScenery   Category = "NATURAL_SCENERY"
	CategoryMarineSports     Category = "MARINE_SPORTS"
	CategorySnowSports       Category = "SNOW_SPORTS"
	CategoryFamousPlaces     Category = "FAMOUS_PLACES"
	CategoryMuseumGallery    Category = "MUSEUM_ART_GALLERY"
	CategoryCraft            Category = "CRAFT"
	CategoryTraditionalCraft Category = "TRADITIONAL_CRAFT"
	CategoryFactory          Category = "FACTORY"
	CategoryZoo              Category = "ZOO"
	CategoryAquarium         Category = "AQUARIUM"
	CategoryDeparture        Category = "DEPARTURE"
	CategoryDestination      Category = "DESTINATION"
	CategoryMust             Category = "MUST"
)

// DefaultStayTime is used for spots whose tags match no known category.
const DefaultStayTime = time.Hour

// averageStayByCategory maps each category to its average visit duration.
// Values mirror observed visit behavior; hotels and trip endpoints cost
// nothing because their time is accounted for outside the day budget.
var averageStayByCategory = map[Category]time.Duration{
	CategoryHotel:            0,
	CategoryEating:           time.Hour,
	CategorySightseeing:      90 * time.Minute,
	CategoryAmusementPark:    6 * time.Hour,
	CategoryThemePark:        6 * time.Hour,
	CategoryHiking:           5 * time.Hour,
	CategoryNaturalScenery:   time.Hour,
	CategoryMarineSports:     4 * time.Hour,
	CategorySnowSports:       5 * time.Hour,
	CategoryFamousPlaces:     90 * time.Minute,
	CategoryMuseumGallery:    2 * time.Hour,
	CategoryCraft:            2 * time.Hour,
	CategoryTraditionalCraft: 2 * time.Hour,
	CategoryFactory:          90 * time.Minute,
	CategoryZoo:              3 * time.Hour,
	CategoryAquarium:         2 * time.Hour,
	CategoryDeparture:        0,
	CategoryDestination:      0,
}

// stayLookupOrder fixes which category wins when a spot carries several.
// Endpoint and meal categories take precedence over sightseeing ones.
var stayLookupOrder = []Category{
	CategoryDeparture,
	CategoryDestination,
	CategoryEating,
	CategoryHotel,
	CategoryAmusementPark,
	CategoryThemePark,
	CategoryHiking,
	CategoryNaturalScenery,
	CategoryMarineSports,
	CategorySnowSports,
	CategorySightseeing,
	CategoryFamousPlaces,
	CategoryMuseumGallery,
	CategoryCraft,
	CategoryTraditionalCraft,
	CategoryFactory,
	CategoryZoo,
	CategoryAquarium,
}

// openAirCategories occupy a whole day; time-window constraints are not
// enforced when the trip theme is one of these.
var openAirCategories = map[Category]struct{}{
	CategoryAmusementPark: {},
	CategoryThemePark:     {},
	CategoryHiking:        {},
	CategoryMarineSports:  {},
	CategorySnowSports:    {},
}

// IsOpenAirTheme reports whether the theme disables time-window enforcement.
func IsOpenAirTheme(theme Category) bool {
	_, ok := openAirCategories[theme]
	return ok
}

// AverageStayTime returns the average visit duration for a tag set.
// The first category in the fixed lookup order wins; an unmatched tag set
// falls back to DefaultStayTime.
func AverageStayTime(categories []Category) time.Duration {
	tags := make(map[Category]struct{}, len(categories))
	for _, c := range categories {
		tags[c] = struct{}{}
	}

	for _, c := range stayLookupOrder {
		if _, ok := tags[c]; ok {
			return averageStayByCategory[c]
		}
	}

	return DefaultStayTime
}

// SetStayTimeOverrides replaces average stay durations for the given
// categories. Unknown categories are ignored. Intended for startup
// configuration only; not safe to call once planning has begun.
func SetStayTimeOverrides(overrides map[Category]time.Duration) {
	for c, d := range overrides {
		if _, ok := averageStayByCategory[c]; ok {
			averageStayByCategory[c] = d
		}
	}
}
