package catalog

// Zones in declared order. Zone order plus per-zone area order defines the
// full walkthrough sequence.
var Zones = []Zone{
	{
		ID:            "outside",
		Name:          "Outside the Home",
		Areas:         []string{"exterior", "roof", "foundation"},
		EstimatedTime: 25,
		Description:   "Start outside while you have daylight.",
	},
	{
		ID:            "systems",
		Name:          "Major Systems",
		Areas:         []string{"hvac", "water-heater", "electrical", "plumbing"},
		EstimatedTime: 30,
		Description:   "The mechanical heart of the house.",
	},
	{
		ID:            "living",
		Name:          "Living Spaces",
		Areas:         []string{"kitchen", "bathroom", "laundry"},
		EstimatedTime: 20,
		Description:   "Rooms with water and appliances.",
	},
	{
		ID:            "edges",
		Name:          "Attic & Basement",
		Areas:         []string{"attic", "basement"},
		EstimatedTime: 15,
		Description:   "Finish at the top and bottom of the house.",
	},
}

// Areas in their catalog order.
var Areas = []Area{
	{
		ID:               "exterior",
		Name:             "Exterior & Siding",
		Icon:             "home",
		Color:            "#8B5CF6",
		Zone:             "outside",
		EstimatedMinutes: EstimatedMinutes{Quick: 5, Full: 10},
		WhatToCheck:      "Siding, paint, trim, gutters and grading around the house.",
		SystemTypes:      []string{"exterior", "drainage"},
	},
	{
		ID:               "roof",
		Name:             "Roof",
		Icon:             "triangle",
		Color:            "#64748B",
		Zone:             "outside",
		EstimatedMinutes: EstimatedMinutes{Quick: 4, Full: 8},
		WhatToCheck:      "Shingles, flashing, vents and visible sag from the ground.",
		SystemTypes:      []string{"roofing"},
	},
	{
		ID:               "foundation",
		Name:             "Foundation",
		Icon:             "layers",
		Color:            "#78716C",
		Zone:             "outside",
		EstimatedMinutes: EstimatedMinutes{Quick: 4, Full: 7},
		WhatToCheck:      "Visible cracks, settling, and water pooling near the base.",
		SystemTypes:      []string{"structural"},
	},
	{
		ID:               "hvac",
		Name:             "Heating & Cooling",
		Icon:             "thermometer",
		Color:            "#F97316",
		Zone:             "systems",
		EstimatedMinutes: EstimatedMinutes{Quick: 5, Full: 12},
		WhatToCheck:      "Filter condition, airflow, unusual noise, and the outdoor unit.",
		SystemTypes:      []string{"hvac"},
	},
	{
		ID:               "water-heater",
		Name:             "Water Heater",
		Icon:             "flame",
		Color:            "#EF4444",
		Zone:             "systems",
		EstimatedMinutes: EstimatedMinutes{Quick: 3, Full: 6},
		WhatToCheck:      "Leaks, rust, venting and the pressure relief valve.",
		SystemTypes:      []string{"plumbing", "hvac"},
	},
	{
		ID:               "electrical",
		Name:             "Electrical Panel",
		Icon:             "zap",
		Color:            "#EAB308",
		Zone:             "systems",
		EstimatedMinutes: EstimatedMinutes{Quick: 3, Full: 8},
		WhatToCheck:      "Panel condition, breaker labels, GFCI outlets, warm spots.",
		SystemTypes:      []string{"electrical"},
	},
	{
		ID:               "plumbing",
		Name:             "Plumbing",
		Icon:             "droplet",
		Color:            "#3B82F6",
		Zone:             "systems",
		EstimatedMinutes: EstimatedMinutes{Quick: 5, Full: 10},
		WhatToCheck:      "Under-sink leaks, water pressure, shutoff valve, drain speed.",
		SystemTypes:      []string{"plumbing"},
	},
	{
		ID:               "kitchen",
		Name:             "Kitchen",
		Icon:             "chef-hat",
		Color:            "#22C55E",
		Zone:             "living",
		EstimatedMinutes: EstimatedMinutes{Quick: 4, Full: 9},
		WhatToCheck:      "Appliance condition, caulk lines, disposal, range ventilation.",
		SystemTypes:      []string{"appliances", "plumbing"},
	},
	{
		ID:               "bathroom",
		Name:             "Bathrooms",
		Icon:             "bath",
		Color:            "#06B6D4",
		Zone:             "living",
		EstimatedMinutes: EstimatedMinutes{Quick: 4, Full: 8},
		WhatToCheck:      "Grout, caulk, toilet base, exhaust fan, signs of moisture.",
		SystemTypes:      []string{"plumbing", "ventilation"},
	},
	{
		ID:               "laundry",
		Name:             "Laundry",
		Icon:             "shirt",
		Color:            "#A855F7",
		Zone:             "living",
		EstimatedMinutes: EstimatedMinutes{Quick: 3, Full: 6},
		WhatToCheck:      "Washer hoses, dryer vent, lint buildup, drain pan.",
		SystemTypes:      []string{"appliances", "ventilation"},
	},
	{
		ID:               "attic",
		Name:             "Attic",
		Icon:             "arrow-up",
		Color:            "#F59E0B",
		Zone:             "edges",
		EstimatedMinutes: EstimatedMinutes{Quick: 3, Full: 8},
		WhatToCheck:      "Insulation depth, roof deck stains, ventilation, pests.",
		SystemTypes:      []string{"roofing", "insulation"},
	},
	{
		ID:               "basement",
		Name:             "Basement & Crawlspace",
		Icon:             "arrow-down",
		Color:            "#0EA5E9",
		Zone:             "edges",
		EstimatedMinutes: EstimatedMinutes{Quick: 4, Full: 9},
		WhatToCheck:      "Moisture, musty smell, sump pump, visible framing.",
		SystemTypes:      []string{"structural", "drainage"},
	},
}
