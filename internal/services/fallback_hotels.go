package services

// FallbackHotels is served whenever the upstream search is unavailable.
var FallbackHotels = []Listing{
	{
		ID:          1,
		Title:       "Charming Downtown Loft",
		Location:    "Lower Manhattan, New York, NY",
		Price:       185,
		Rating:      4.86,
		Reviews:     218,
		Image:       "https://images.unsplash.com/photo-1631049307038-da31e36f2d5c?w=500",
		Description: "Beautiful modern loft in the heart of Manhattan with stunning city views and high ceilings.",
	},
	{
		ID:          2,
		Title:       "Modern City Center Suite",
		Location:    "Midtown Manhattan, New York, NY",
		Price:       215,
		Rating:      4.94,
		Reviews:     289,
		Image:       "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=500",
		Description: "Contemporary suite with full amenities, perfect for business and leisure travelers.",
	},
	{
		ID:          3,
		Title:       "Cozy Studio with Rooftop",
		Location:    "Upper West Side, New York, NY",
		Price:       145,
		Rating:      4.78,
		Reviews:     156,
		Image:       "https://images.unsplash.com/photo-1582719471384-894fbb16e074?w=500",
		Description: "Compact and cozy studio featuring private access to rooftop with panoramic views.",
	},
	{
		ID:          4,
		Title:       "Luxury 3-Bedroom Brownstone",
		Location:    "Brooklyn Heights, New York, NY",
		Price:       325,
		Rating:      4.95,
		Reviews:     342,
		Image:       "https://images.unsplash.com/photo-1614008375896-cb53fc677b86?w=500",
		Description: "Spacious luxury brownstone with 3 bedrooms, perfect for families and groups.",
	},
	{
		ID:          5,
		Title:       "Trendy SoHo Loft",
		Location:    "SoHo, New York, NY",
		Price:       275,
		Rating:      4.85,
		Reviews:     201,
		Image:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=500",
		Description: "Hip and trendy loft in the artistic neighborhood of SoHo with local vibes.",
	},
	{
		ID:          6,
		Title:       "Stunning Manhattan Penthouse",
		Location:    "Tribeca, New York, NY",
		Price:       450,
		Rating:      5.0,
		Reviews:     183,
		Image:       "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=500",
		Description: "Exclusive penthouse with terrace, fitness center, and breathtaking skyline views.",
	},
	{
		ID:          7,
		Title:       "Charming Brooklyn Heights Cottage",
		Location:    "Brooklyn, New York, NY",
		Price:       195,
		Rating:      4.82,
		Reviews:     167,
		Image:       "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=500",
		Description: "Charming cottage-style accommodation with period features and modern conveniences.",
	},
	{
		ID:          8,
		Title:       "Budget-Friendly East Village Studio",
		Location:    "East Village, New York, NY",
		Price:       125,
		Rating:      4.60,
		Reviews:     145,
		Image:       "https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=500",
		Description: "Affordable studio in vibrant East Village neighborhood, great for backpackers.",
	},
}
