package catalog

import "github.com/shopspring/decimal"

// DefaultCatalog returns the stock ski-goggles assortment used to seed an
// empty database.
func DefaultCatalog() []Product {
	entries := []struct {
		name        string
		description string
		price       string
		imageURL    string
		category    string
		lensColor   string
		frameStyle  string
		stock       int
	}{
		// Budget options ($50-80)
		{
			name:        "Alpine Basic",
			description: "Entry-level ski goggles with anti-fog coating and UV protection. Perfect for beginners.",
			price:       "54.99",
			imageURL:    "/images/goggles/alpine-basic.jpg",
			category:    "Budget",
			lensColor:   "Clear",
			frameStyle:  "Full Frame",
			stock:       25,
		},
		{
			name:        "Snowview Orange",
			description: "Budget-friendly goggles with orange lens for low-light conditions. Great visibility on cloudy days.",
			price:       "59.99",
			imageURL:    "/images/goggles/snowview-orange.jpg",
			category:    "Budget",
			lensColor:   "Orange",
			frameStyle:  "Full Frame",
			stock:       30,
		},
		{
			name:        "Glacier Entry",
			description: "Comfortable fit with adjustable strap. Double-layer foam for all-day comfort.",
			price:       "74.99",
			imageURL:    "/images/goggles/glacier-entry.jpg",
			category:    "Budget",
			lensColor:   "Yellow",
			frameStyle:  "Full Frame",
			stock:       20,
		},

		// Mid-range options ($100-150)
		{
			name:        "ProVision Blue",
			description: "Enhanced contrast blue lens with triple-layer foam. Excellent peripheral vision.",
			price:       "119.99",
			imageURL:    "/images/goggles/provision-blue.jpg",
			category:    "Mid-Range",
			lensColor:   "Blue",
			frameStyle:  "Semi-Frameless",
			stock:       15,
		},
		{
			name:        "Summit Mirror",
			description: "Mirrored lens reduces glare on bright days. Helmet-compatible design.",
			price:       "134.99",
			imageURL:    "/images/goggles/summit-mirror.jpg",
			category:    "Mid-Range",
			lensColor:   "Mirrored Silver",
			frameStyle:  "Frameless",
			stock:       18,
		},
		{
			name:        "ClearView Pro",
			description: "Interchangeable lens system with clear and tinted options included.",
			price:       "149.99",
			imageURL:    "/images/goggles/clearview-pro.jpg",
			category:    "Mid-Range",
			lensColor:   "Clear/Rose",
			frameStyle:  "Full Frame",
			stock:       12,
		},
		{
			name:        "AllWeather Sport",
			description: "Photochromic lens adapts to changing light conditions automatically.",
			price:       "139.99",
			imageURL:    "/images/goggles/allweather-sport.jpg",
			category:    "Mid-Range",
			lensColor:   "Photochromic",
			frameStyle:  "Semi-Frameless",
			stock:       10,
		},

		// Premium options ($200-300)
		{
			name:        "Elite Spherical",
			description: "Premium spherical lens for distortion-free vision. Magnetic quick-change system.",
			price:       "229.99",
			imageURL:    "/images/goggles/elite-spherical.jpg",
			category:    "Premium",
			lensColor:   "Rose Gold Mirror",
			frameStyle:  "Frameless",
			stock:       8,
		},
		{
			name:        "Pro-X Competition",
			description: "Competition-grade goggles used by professional athletes. Ultimate clarity and comfort.",
			price:       "279.99",
			imageURL:    "/images/goggles/pro-x-competition.jpg",
			category:    "Premium",
			lensColor:   "Blue Mirror",
			frameStyle:  "Frameless",
			stock:       6,
		},
		{
			name:        "Titanium Series",
			description: "Titanium-reinforced frame with heated lens technology. The ultimate in ski eyewear.",
			price:       "299.99",
			imageURL:    "/images/goggles/titanium-series.jpg",
			category:    "Premium",
			lensColor:   "Mirrored Gold",
			frameStyle:  "Full Frame",
			stock:       5,
		},
		{
			name:        "Nordic Vision",
			description: "Scandinavian design with ultra-wide field of view. Premium anti-scratch coating.",
			price:       "249.99",
			imageURL:    "/images/goggles/nordic-vision.jpg",
			category:    "Premium",
			lensColor:   "Green Mirror",
			frameStyle:  "Frameless",
			stock:       7,
		},
		{
			name:        "Stealth Carbon",
			description: "Carbon fiber accents with matte black finish. Includes two interchangeable lenses.",
			price:       "269.99",
			imageURL:    "/images/goggles/stealth-carbon.jpg",
			category:    "Premium",
			lensColor:   "Smoke/Clear",
			frameStyle:  "Semi-Frameless",
			stock:       9,
		},
	}

	products := make([]Product, 0, len(entries))
	for _, s := range entries {
		p, err := NewProduct(
			s.name,
			s.description,
			decimal.RequireFromString(s.price),
			s.imageURL,
			s.category,
			s.lensColor,
			s.frameStyle,
			s.stock,
		)
		if err != nil {
			// The seed list is static and valid by construction.
			panic(err)
		}
		products = append(products, *p)
	}
	return products
}
