package catalog

import "github.com/nutrichat/nutrichat-go/core"

// nycFoodResources is the static demo dataset shipped with the application.
// Declaration order is load-bearing: filter results preserve it and proximity
// ties break on it.
var nycFoodResources = []core.FoodResource{
	{
		ID:   "union-square-greenmarket",
		Name: "Union Square Greenmarket",
		Type: core.ResourceFarmersMarket,
		Location: core.ResourceLocation{
			Address:     "Union Square Park, E 17th St & Broadway, New York, NY 10003",
			Coordinates: core.Coordinates{Lat: 40.7359, Lng: -73.9911},
		},
		AcceptsSnap:         true,
		CulturalSpecialties: []string{"Organic produce", "Local artisanal foods"},
		Hours:               "Mon, Wed, Fri, Sat: 8am-6pm",
		Description:         "Year-round farmers market with fresh local produce, accepts SNAP/EBT, and offers nutrition education programs.",
	},
	{
		ID:   "whole-foods-bowery",
		Name: "Whole Foods Market - Bowery",
		Type: core.ResourceGroceryStore,
		Location: core.ResourceLocation{
			Address:     "95 E Houston St, New York, NY 10002",
			Coordinates: core.Coordinates{Lat: 40.7226, Lng: -73.9953},
		},
		AcceptsSnap:         true,
		CulturalSpecialties: []string{"Organic foods", "International cuisine ingredients"},
		Hours:               "Daily: 8am-10pm",
		Description:         "Full-service grocery store with organic options, accepts SNAP/EBT, and offers 10% discount for SNAP customers.",
	},
	{
		ID:   "kam-hing-coffee-shop",
		Name: "Kam Hing Coffee Shop & Market",
		Type: core.ResourceCulturalStore,
		Location: core.ResourceLocation{
			Address:     "79 Mott St, New York, NY 10013",
			Coordinates: core.Coordinates{Lat: 40.7155, Lng: -73.9976},
		},
		AcceptsSnap:         false,
		CulturalSpecialties: []string{"Chinese groceries", "Asian produce", "Traditional herbs"},
		Hours:               "Daily: 7am-9pm",
		Description:         "Traditional Chinese grocery store in Chinatown with fresh Asian vegetables, rice, and authentic ingredients.",
	},
	{
		ID:   "council-on-the-environment-food-pantry",
		Name: "Council on the Environment Food Pantry",
		Type: core.ResourceFoodPantry,
		Location: core.ResourceLocation{
			Address:     "51 Chambers St, New York, NY 10007",
			Coordinates: core.Coordinates{Lat: 40.7143, Lng: -74.0043},
		},
		AcceptsSnap:         false,
		CulturalSpecialties: []string{"Emergency food assistance", "Fresh produce"},
		Hours:               "Tue, Thu: 10am-2pm",
		Description:         "Free food pantry serving individuals and families in need. No documentation required.",
	},
	{
		ID:   "la-marqueta",
		Name: "La Marqueta",
		Type: core.ResourceCulturalStore,
		Location: core.ResourceLocation{
			Address:     "1590 Park Ave, New York, NY 10029",
			Coordinates: core.Coordinates{Lat: 40.7957, Lng: -73.9389},
		},
		AcceptsSnap:         true,
		CulturalSpecialties: []string{"Latin American foods", "Caribbean produce", "Traditional spices"},
		Hours:               "Tue-Sun: 10am-6pm",
		Description:         "Historic Latin American market in East Harlem with authentic ingredients, fresh produce, and traditional foods.",
	},
	{
		ID:   "hearts-of-gold-community-kitchen",
		Name: "Hearts of Gold Community Kitchen",
		Type: core.ResourceCommunityKitchen,
		Location: core.ResourceLocation{
			Address:     "721 Franklin Ave, Brooklyn, NY 11238",
			Coordinates: core.Coordinates{Lat: 40.6736, Lng: -73.9566},
		},
		AcceptsSnap:         false,
		CulturalSpecialties: []string{"Hot meals", "Community dining"},
		Hours:               "Mon-Fri: 12pm-2pm, 6pm-8pm",
		Description:         "Community kitchen providing free hot meals and nutrition education to Brooklyn residents.",
	},
	{
		ID:   "gristedes-supermarket-uws",
		Name: "Gristedes Supermarket",
		Type: core.ResourceGroceryStore,
		Location: core.ResourceLocation{
			Address:     "2591 Broadway, New York, NY 10025",
			Coordinates: core.Coordinates{Lat: 40.7956, Lng: -73.9722},
		},
		AcceptsSnap:         true,
		CulturalSpecialties: []string{"General groceries", "Budget-friendly options"},
		Hours:               "Daily: 6am-11pm",
		Description:         "Neighborhood supermarket on the Upper West Side, accepts SNAP/EBT with competitive prices.",
	},
	{
		ID:   "sunset-park-greenmarket",
		Name: "Sunset Park Greenmarket",
		Type: core.ResourceFarmersMarket,
		Location: core.ResourceLocation{
			Address:     "4th Ave & 59th St, Brooklyn, NY 11220",
			Coordinates: core.Coordinates{Lat: 40.6409, Lng: -74.0092},
		},
		AcceptsSnap:         true,
		CulturalSpecialties: []string{"Local produce", "Latino vendors"},
		Hours:               "Saturdays: 8am-3pm",
		Description:         "Community farmers market in diverse Sunset Park neighborhood, many vendors speak Spanish.",
	},
	{
		ID:   "halal-guys-grocery",
		Name: "Patel Brothers (Halal Section)",
		Type: core.ResourceCulturalStore,
		Location: core.ResourceLocation{
			Address:     "3707 74th St, Jackson Heights, NY 11372",
			Coordinates: core.Coordinates{Lat: 40.7505, Lng: -73.8917},
		},
		AcceptsSnap:         true,
		CulturalSpecialties: []string{"Halal meats", "South Asian groceries", "Middle Eastern foods"},
		Hours:               "Daily: 9am-10pm",
		Description:         "Large South Asian grocery store with halal meat section and diverse international ingredients.",
	},
	{
		ID:   "food-bank-nyc-harlem",
		Name: "Food Bank For New York City - Harlem",
		Type: core.ResourceFoodPantry,
		Location: core.ResourceLocation{
			Address:     "2017 Amsterdam Ave, New York, NY 10032",
			Coordinates: core.Coordinates{Lat: 40.8259, Lng: -73.9442},
		},
		AcceptsSnap:         false,
		CulturalSpecialties: []string{"Emergency food", "Fresh produce", "Culturally appropriate foods"},
		Hours:               "Mon, Wed, Fri: 9am-12pm",
		Description:         "Major food pantry serving Harlem community with culturally appropriate food options and nutrition counseling.",
	},
	{
		ID:   "bowery-mission-food-pantry",
		Name: "Bowery Mission Food Pantry",
		Type: core.ResourceFoodPantry,
		Location: core.ResourceLocation{
			Address:     "227 Bowery, New York, NY 10002",
			Coordinates: core.Coordinates{Lat: 40.7226, Lng: -73.9935},
		},
		AcceptsSnap:         false,
		CulturalSpecialties: []string{"Emergency food assistance", "Hot meals", "Groceries"},
		Hours:               "Daily: 7am-8pm",
		Description:         "Historic food pantry and soup kitchen serving the Lower East Side with free meals and groceries.",
	},
	{
		ID:   "city-harvest-mobile-market",
		Name: "City Harvest Mobile Market",
		Type: core.ResourceFoodPantry,
		Location: core.ResourceLocation{
			Address:     "Various Locations, Brooklyn, NY",
			Coordinates: core.Coordinates{Lat: 40.6698, Lng: -73.9441},
		},
		AcceptsSnap:         false,
		CulturalSpecialties: []string{"Fresh produce", "Mobile food distribution"},
		Hours:               "Schedule varies by location",
		Description:         "Mobile food pantry bringing fresh produce and groceries directly to underserved Brooklyn neighborhoods.",
	},
	{
		ID:   "st-johns-bread-life",
		Name: "St. John's Bread & Life",
		Type: core.ResourceFoodPantry,
		Location: core.ResourceLocation{
			Address:     "795 Lexington Ave, Brooklyn, NY 11221",
			Coordinates: core.Coordinates{Lat: 40.6912, Lng: -73.9275},
		},
		AcceptsSnap:         false,
		CulturalSpecialties: []string{"Emergency food", "Soup kitchen", "Community support"},
		Hours:               "Mon-Fri: 8am-11am, 1pm-3pm",
		Description:         "One of NYC's largest food pantries, serving over 3,000 people daily with emergency food assistance.",
	},
}

// nycNeighborhoodCoordinates maps lowercase neighborhood names to demo
// coordinates. Lookup is exact after normalization; there is no fuzzy match.
var nycNeighborhoodCoordinates = map[string]core.Coordinates{
	"manhattan":       {Lat: 40.7831, Lng: -73.9712},
	"lower east side": {Lat: 40.7153, Lng: -73.9877},
	"chinatown":       {Lat: 40.7155, Lng: -73.9976},
	"soho":            {Lat: 40.7233, Lng: -73.9973},
	"village":         {Lat: 40.7308, Lng: -74.0020},
	"union square":    {Lat: 40.7359, Lng: -73.9911},
	"upper west side": {Lat: 40.7870, Lng: -73.9754},
	"upper east side": {Lat: 40.7736, Lng: -73.9566},
	"harlem":          {Lat: 40.8116, Lng: -73.9465},
	"brooklyn":        {Lat: 40.6782, Lng: -73.9442},
	"sunset park":     {Lat: 40.6409, Lng: -74.0092},
	"jackson heights": {Lat: 40.7505, Lng: -73.8917},
	"queens":          {Lat: 40.7282, Lng: -73.7949},
	"bronx":           {Lat: 40.8448, Lng: -73.8648},
}
