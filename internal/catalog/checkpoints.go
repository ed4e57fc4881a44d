package catalog

// Quick spot-check checkpoints per area. Authored independently from the
// full-walkthrough set; the two never share checkpoint ids.
var quickCheckpoints = map[string][]Checkpoint{
	"exterior": {
		{
			ID:              "exterior-siding",
			Question:        "Does the siding look intact, with no cracks or peeling paint?",
			GoodDescription: "Siding and paint look solid all the way around.",
			BadDescription:  "Cracked, warped or peeling sections that could let water in.",
			Severity:        SeverityFlag,
			PhotoExample:    true,
		},
		{
			ID:              "exterior-gutters",
			Question:        "Are the gutters clear and attached firmly?",
			GoodDescription: "Gutters drain freely and sit tight against the fascia.",
			BadDescription:  "Sagging, overflowing or detached gutter runs.",
			Severity:        SeverityFlag,
		},
		{
			ID:              "exterior-grading",
			Question:        "Does the ground slope away from the house?",
			GoodDescription: "Water runs away from the foundation on all sides.",
			BadDescription:  "Soil slopes toward the house or water pools at the base.",
			Severity:        SeverityMonitor,
		},
	},
	"roof": {
		{
			ID:              "roof-shingles",
			Question:        "From the ground, do the shingles look flat and complete?",
			GoodDescription: "No missing, curled or slipped shingles visible.",
			BadDescription:  "Missing or curled shingles, or debris catching on the roof.",
			Severity:        SeverityUrgent,
			PhotoExample:    true,
		},
		{
			ID:              "roof-flashing",
			Question:        "Does the flashing around chimneys and vents look tight?",
			GoodDescription: "Metal flashing lies flat with no visible gaps.",
			BadDescription:  "Lifted or rusted flashing that can channel water inside.",
			Severity:        SeverityFlag,
		},
		{
			ID:              "roof-sag",
			Question:        "Is the roofline straight, with no visible dips?",
			GoodDescription: "Ridge and planes look straight from the street.",
			BadDescription:  "A visible dip or sag in the roofline.",
			Severity:        SeverityUrgent,
		},
	},
	"foundation": {
		{
			ID:              "foundation-cracks",
			Question:        "Is the visible foundation free of cracks wider than a coin?",
			GoodDescription: "Only hairline cracks, if any.",
			BadDescription:  "Cracks wide enough to fit a coin edge, or stair-step cracking.",
			Severity:        SeverityUrgent,
			PhotoExample:    true,
		},
		{
			ID:              "foundation-water",
			Question:        "Is the base of the house dry, with no pooling water?",
			GoodDescription: "Soil near the foundation is dry after normal weather.",
			BadDescription:  "Standing water or chronically damp soil against the house.",
			Severity:        SeverityFlag,
		},
		{
			ID:              "foundation-vents",
			Question:        "Are crawlspace vents clear and screened?",
			GoodDescription: "Vents open, screens intact, nothing nesting inside.",
			BadDescription:  "Blocked or broken vents inviting moisture and pests.",
			Severity:        SeverityMonitor,
		},
	},
	"hvac": {
		{
			ID:              "hvac-filter",
			Question:        "Is the air filter clean (replaced within ~3 months)?",
			GoodDescription: "Filter is white or lightly gray and air passes easily.",
			BadDescription:  "Filter is gray or clogged and is choking the system.",
			Severity:        SeverityFlag,
			PhotoExample:    true,
		},
		{
			ID:              "hvac-sounds",
			Question:        "Does the system run without grinding, squealing or banging?",
			GoodDescription: "Steady hum only, at startup and while running.",
			BadDescription:  "Grinding, squealing or banging as it starts or runs.",
			Severity:        SeverityUrgent,
		},
		{
			ID:              "hvac-airflow",
			Question:        "Is airflow strong and evenly warm/cool at the vents?",
			GoodDescription: "All registers blow firmly at the set temperature.",
			BadDescription:  "Weak or uneven airflow from one or more registers.",
			Severity:        SeverityMonitor,
		},
	},
	"water-heater": {
		{
			ID:              "wh-leaks",
			Question:        "Is the tank and floor around it dry?",
			GoodDescription: "No drips, rust streaks, or wet spots under the tank.",
			BadDescription:  "Moisture, rust trails, or pooling under the tank.",
			Severity:        SeverityUrgent,
			PhotoExample:    true,
		},
		{
			ID:              "wh-age-noise",
			Question:        "Does it heat without rumbling or popping sounds?",
			GoodDescription: "Quiet operation; sediment is under control.",
			BadDescription:  "Rumbling or popping from sediment buildup.",
			Severity:        SeverityFlag,
		},
		{
			ID:              "wh-valve",
			Question:        "Is the pressure relief valve free of drips and corrosion?",
			GoodDescription: "Valve and discharge pipe are dry and clean.",
			BadDescription:  "Dripping or corroded relief valve.",
			Severity:        SeverityFlag,
		},
	},
	"electrical": {
		{
			ID:              "elec-panel",
			Question:        "Is the panel cool, quiet, and free of burn marks?",
			GoodDescription: "No heat, buzzing, or discoloration at the panel.",
			BadDescription:  "Warm spots, buzzing, or scorch marks around breakers.",
			Severity:        SeverityUrgent,
		},
		{
			ID:              "elec-gfci",
			Question:        "Do GFCI outlets trip and reset with the test button?",
			GoodDescription: "Kitchen and bath GFCIs trip and reset cleanly.",
			BadDescription:  "A GFCI fails to trip or won't reset.",
			Severity:        SeverityFlag,
		},
		{
			ID:              "elec-flicker",
			Question:        "Are lights steady when large appliances kick on?",
			GoodDescription: "No dimming or flicker during appliance startup.",
			BadDescription:  "Noticeable dimming or flicker under load.",
			Severity:        SeverityMonitor,
		},
	},
	"plumbing": {
		{
			ID:              "plumb-undersink",
			Question:        "Are the cabinets under sinks dry?",
			GoodDescription: "Pipes and cabinet floors dry to the touch.",
			BadDescription:  "Drips, water stains, or swollen cabinet base.",
			Severity:        SeverityUrgent,
			PhotoExample:    true,
		},
		{
			ID:              "plumb-pressure",
			Question:        "Is water pressure steady at every fixture?",
			GoodDescription: "Strong, even flow at each faucet and shower.",
			BadDescription:  "Weak or sputtering flow at one or more fixtures.",
			Severity:        SeverityMonitor,
		},
		{
			ID:              "plumb-drains",
			Question:        "Do sinks and tubs drain quickly without gurgling?",
			GoodDescription: "Water clears fast and quietly.",
			BadDescription:  "Slow drains or gurgling that hints at a blockage.",
			Severity:        SeverityFlag,
		},
	},
	"kitchen": {
		{
			ID:              "kitchen-caulk",
			Question:        "Is the caulk around the sink and counters intact?",
			GoodDescription: "Continuous caulk beads with no gaps or mildew.",
			BadDescription:  "Cracked or missing caulk letting water behind counters.",
			Severity:        SeverityMonitor,
		},
		{
			ID:              "kitchen-disposal",
			Question:        "Does the disposal run without jamming or leaking?",
			GoodDescription: "Spins freely, drains clean underneath.",
			BadDescription:  "Jammed, humming, or leaking at the mounting ring.",
			Severity:        SeverityFlag,
		},
		{
			ID:              "kitchen-rangehood",
			Question:        "Does the range hood pull air and vent properly?",
			GoodDescription: "Fan pulls a tissue against the filter at low speed.",
			BadDescription:  "Weak draw or a clogged, greasy filter.",
			Severity:        SeverityMonitor,
		},
	},
	"bathroom": {
		{
			ID:              "bath-grout",
			Question:        "Are tile grout and caulk lines sealed and intact?",
			GoodDescription: "No gaps, crumbling grout, or dark mildew lines.",
			BadDescription:  "Open grout or caulk gaps letting water into walls.",
			Severity:        SeverityFlag,
			PhotoExample:    true,
		},
		{
			ID:              "bath-toilet",
			Question:        "Is the toilet firm at the base with no leaks?",
			GoodDescription: "No rocking, no moisture around the base.",
			BadDescription:  "Rocking toilet or dampness at the floor seal.",
			Severity:        SeverityUrgent,
		},
		{
			ID:              "bath-fan",
			Question:        "Does the exhaust fan clear mirror fog within a few minutes?",
			GoodDescription: "Fan moves enough air to dry the room quickly.",
			BadDescription:  "Weak or noisy fan leaving moisture behind.",
			Severity:        SeverityMonitor,
		},
	},
	"laundry": {
		{
			ID:              "laundry-hoses",
			Question:        "Are washer hoses free of bulges, cracks and drips?",
			GoodDescription: "Hoses supple, connections dry.",
			BadDescription:  "Bulging or cracked hoses ready to burst.",
			Severity:        SeverityUrgent,
			PhotoExample:    true,
		},
		{
			ID:              "laundry-dryervent",
			Question:        "Is the dryer vent clear of lint inside and out?",
			GoodDescription: "Strong airflow at the exterior flap while running.",
			BadDescription:  "Lint buildup or weak exterior airflow.",
			Severity:        SeverityUrgent,
		},
		{
			ID:              "laundry-drain",
			Question:        "Is the washer drain and pan dry after a cycle?",
			GoodDescription: "No standing water in the pan or around the standpipe.",
			BadDescription:  "Water in the pan or overflow at the standpipe.",
			Severity:        SeverityFlag,
		},
	},
	"attic": {
		{
			ID:              "attic-stains",
			Question:        "Is the roof deck free of dark stains or damp spots?",
			GoodDescription: "Sheathing looks dry and uniform.",
			BadDescription:  "Dark staining or dampness pointing to a roof leak.",
			Severity:        SeverityUrgent,
		},
		{
			ID:              "attic-insulation",
			Question:        "Does insulation cover the joists evenly?",
			GoodDescription: "Insulation sits above joist tops with no bare patches.",
			BadDescription:  "Thin, compressed or missing insulation.",
			Severity:        SeverityMonitor,
		},
		{
			ID:              "attic-pests",
			Question:        "Is the attic free of droppings, nests or chewed wiring?",
			GoodDescription: "No sign of rodents, birds or insects.",
			BadDescription:  "Droppings, nesting material, or gnawed cables.",
			Severity:        SeverityFlag,
		},
	},
	"basement": {
		{
			ID:              "basement-moisture",
			Question:        "Are walls and floor dry, with no musty smell?",
			GoodDescription: "Dry surfaces, neutral smell.",
			BadDescription:  "Damp walls, efflorescence, or a musty odor.",
			Severity:        SeverityFlag,
		},
		{
			ID:              "basement-sump",
			Question:        "Does the sump pump run when its float is lifted?",
			GoodDescription: "Pump kicks on and discharges away from the house.",
			BadDescription:  "Pump dead, stuck, or discharging at the foundation.",
			Severity:        SeverityUrgent,
		},
		{
			ID:              "basement-framing",
			Question:        "Does visible framing look straight and unstained?",
			GoodDescription: "Joists and posts straight, no water marks.",
			BadDescription:  "Sagging, cracked, or water-stained framing.",
			Severity:        SeverityFlag,
		},
	},
}

// Full-walkthrough checkpoints per area. Where a question revisits a quick
// checkpoint's territory its id carries a -full suffix; ids never collide
// with the quick set.
var fullCheckpoints = map[string][]Checkpoint{
	"exterior": {
		{
			ID:              "exterior-siding-full",
			Question:        "Walk all four sides: is every siding section sound and sealed?",
			GoodDescription: "No cracks, gaps, or rot on any elevation.",
			BadDescription:  "Damage on any side, including spots hidden from the street.",
			Severity:        SeverityFlag,
			PhotoExample:    true,
		},
		{
			ID:              "exterior-trim",
			Question:        "Is the trim around windows and doors solid, with no soft wood?",
			GoodDescription: "Trim is firm when pressed, paint intact.",
			BadDescription:  "Soft, rotted or separating trim boards.",
			Severity:        SeverityFlag,
		},
		{
			ID:              "exterior-downspouts",
			Question:        "Do downspouts discharge at least a few feet from the house?",
			GoodDescription: "Extensions carry water well clear of the foundation.",
			BadDescription:  "Downspouts dumping water right at the base.",
			Severity:        SeverityMonitor,
		},
		{
			ID:              "exterior-driveway",
			Question:        "Are walkways and driveway free of trip-hazard heaving?",
			GoodDescription: "Slabs even, joints tight.",
			BadDescription:  "Lifted or cracked slabs creating trip hazards.",
			Severity:        SeverityMonitor,
		},
	},
	"roof": {
		{
			ID:              "roof-shingles-full",
			Question:        "Check every plane with binoculars: are all shingles seated?",
			GoodDescription: "No lifted tabs, granule loss, or exposed felt anywhere.",
			BadDescription:  "Lifted, bald, or missing shingles on any plane.",
			Severity:        SeverityUrgent,
			PhotoExample:    true,
		},
		{
			ID:              "roof-valleys",
			Question:        "Are roof valleys clear and their metal intact?",
			GoodDescription: "Valleys clean, metal unrusted.",
			BadDescription:  "Debris dams or rusted valley metal.",
			Severity:        SeverityFlag,
		},
		{
			ID:              "roof-chimney",
			Question:        "Is the chimney crown and cap in good shape?",
			GoodDescription: "Crown uncracked, cap screened and secure.",
			BadDescription:  "Cracked crown or missing cap letting water in.",
			Severity:        SeverityFlag,
		},
		{
			ID:              "roof-moss",
			Question:        "Is the roof free of moss and lichen growth?",
			GoodDescription: "Clean surface, especially on shaded planes.",
			BadDescription:  "Moss patches lifting shingle edges.",
			Severity:        SeverityMonitor,
		},
	},
	"foundation": {
		{
			ID:              "foundation-cracks-full",
			Question:        "Trace the full perimeter: any cracks wider than 1/8 inch?",
			GoodDescription: "Only hairline shrinkage cracks.",
			BadDescription:  "Wide, horizontal, or stair-step cracks anywhere on the perimeter.",
			Severity:        SeverityUrgent,
			PhotoExample:    true,
		},
		{
			ID:              "foundation-sill",
			Question:        "Where visible, is the sill plate dry and solid?",
			GoodDescription: "No rot or insect damage where framing meets foundation.",
			BadDescription:  "Soft or damaged sill plate sections.",
			Severity:        SeverityUrgent,
		},
		{
			ID:              "foundation-efflorescence",
			Question:        "Are interior foundation walls free of white mineral deposits?",
			GoodDescription: "Walls clean and dry.",
			BadDescription:  "White powdery deposits showing water migration.",
			Severity:        SeverityMonitor,
		},
		{
			ID:              "foundation-anchors",
			Question:        "Are deck and porch ledgers firmly attached?",
			GoodDescription: "Ledger bolted, flashing intact.",
			BadDescription:  "Loose ledger or missing flashing at attachments.",
			Severity:        SeverityFlag,
		},
	},
	"hvac": {
		{
			ID:              "hvac-filter-full",
			Question:        "Pull the filter: is it clean and the right size for the slot?",
			GoodDescription: "Clean filter seated with no air bypass around the frame.",
			BadDescription:  "Dirty filter, wrong size, or gaps letting air bypass.",
			Severity:        SeverityFlag,
			PhotoExample:    true,
		},
		{
			ID:              "hvac-outdoor-unit",
			Question:        "Is the outdoor unit level, clear, and its fins undamaged?",
			GoodDescription: "Two feet of clearance, straight fins, level pad.",
			BadDescription:  "Vegetation crowding, crushed fins, or a tilting pad.",
			Severity:        SeverityFlag,
		},
		{
			ID:              "hvac-condensate",
			Question:        "Is the condensate line dripping freely where it should?",
			GoodDescription: "Steady drip at the discharge during cooling.",
			BadDescription:  "Dry line while cooling, or water around the air handler.",
			Severity:        SeverityUrgent,
		},
		{
			ID:              "hvac-ducts",
			Question:        "Are accessible ducts sealed and insulated?",
			GoodDescription: "Joints taped or mastic-sealed, insulation intact.",
			BadDescription:  "Disconnected runs or bare ducts in unconditioned space.",
			Severity:        SeverityMonitor,
		},
		{
			ID:              "hvac-thermostat",
			Question:        "Does the thermostat hold its set temperature within a degree or two?",
			GoodDescription: "Room temperature tracks the setpoint.",
			BadDescription:  "Big swings or a system that never reaches setpoint.",
			Severity:        SeverityMonitor,
		},
	},
	"water-heater": {
		{
			ID:              "wh-leaks-full",
			Question:        "Inspect every fitting on the tank: all dry?",
			GoodDescription: "Inlet, outlet, drain valve and seams all dry.",
			BadDescription:  "Any moisture at fittings, seams, or the drain valve.",
			Severity:        SeverityUrgent,
			PhotoExample:    true,
		},
		{
			ID:              "wh-venting",
			Question:        "For gas units: is the flue pitched up and connections tight?",
			GoodDescription: "Flue rises to the chimney with secure joints.",
			BadDescription:  "Sagging, disconnected, or corroded flue sections.",
			Severity:        SeverityUrgent,
		},
		{
			ID:              "wh-expansion",
			Question:        "Is there an expansion tank and is it charged (taps ring hollow on top)?",
			GoodDescription: "Expansion tank present, top half rings hollow.",
			BadDescription:  "Missing or waterlogged expansion tank.",
			Severity:        SeverityMonitor,
		},
		{
			ID:              "wh-drainpan",
			Question:        "Is a drain pan installed and piped where a leak would be damaging?",
			GoodDescription: "Pan present with a drain line to a safe place.",
			BadDescription:  "No pan on an upper-floor or finished-space install.",
			Severity:        SeverityFlag,
		},
	},
	"electrical": {
		{
			ID:              "elec-panel-full",
			Question:        "Open the panel cover: clean interior, labeled breakers, no doubles?",
			GoodDescription: "Tidy panel, legible labels, one conductor per breaker.",
			BadDescription:  "Scorch marks, double-tapped breakers, or rust inside.",
			Severity:        SeverityUrgent,
			PhotoExample:    true,
		},
		{
			ID:              "elec-outlets",
			Question:        "Spot-check outlets with a tester: wiring correct everywhere?",
			GoodDescription: "Tester shows correct wiring at each sampled outlet.",
			BadDescription:  "Open grounds, reversed polarity, or dead outlets.",
			Severity:        SeverityFlag,
		},
		{
			ID:              "elec-exterior",
			Question:        "Are exterior outlets and fixtures weather-sealed?",
			GoodDescription: "In-use covers intact, fixtures sealed to the wall.",
			BadDescription:  "Cracked covers or fixtures letting water into boxes.",
			Severity:        SeverityFlag,
		},
		{
			ID:              "elec-smoke-detectors",
			Question:        "Do all smoke and CO detectors pass their test button?",
			GoodDescription: "Every detector sounds on test and is under 10 years old.",
			BadDescription:  "Dead, missing, or expired detectors.",
			Severity:        SeverityUrgent,
		},
	},
	"plumbing": {
		{
			ID:              "plumb-undersink-full",
			Question:        "Open every sink cabinet with a flashlight: all connections dry?",
			GoodDescription: "Supply lines, traps and disposals dry at every sink.",
			BadDescription:  "Any dampness, corrosion, or staining under any sink.",
			Severity:        SeverityUrgent,
			PhotoExample:    true,
		},
		{
			ID:              "plumb-shutoff",
			Question:        "Does the main shutoff valve turn freely?",
			GoodDescription: "Valve operates smoothly and fully closes.",
			BadDescription:  "Seized or leaking main shutoff.",
			Severity:        SeverityFlag,
		},
		{
			ID:              "plumb-supply-lines",
			Question:        "Are toilet and faucet supply lines braided and kink-free?",
			GoodDescription: "Braided stainless lines without corrosion at the nuts.",
			BadDescription:  "Old plastic or kinked lines; green crust at fittings.",
			Severity:        SeverityFlag,
		},
		{
			ID:              "plumb-waterheater-pipes",
			Question:        "Are exposed pipes in unheated spaces insulated?",
			GoodDescription: "Foam sleeves on lines through garage, attic, crawlspace.",
			BadDescription:  "Bare pipes exposed to freezing temperatures.",
			Severity:        SeverityMonitor,
		},
	},
	"kitchen": {
		{
			ID:              "kitchen-caulk-full",
			Question:        "Check every counter seam and backsplash joint: fully sealed?",
			GoodDescription: "Continuous seal at sink, backsplash, and counter joints.",
			BadDescription:  "Gaps anywhere water could reach the substrate.",
			Severity:        SeverityMonitor,
		},
		{
			ID:              "kitchen-dishwasher",
			Question:        "Is the dishwasher door seal clean and the base dry?",
			GoodDescription: "Gasket supple, no water trail at the kick plate.",
			BadDescription:  "Cracked gasket or moisture under the unit.",
			Severity:        SeverityFlag,
		},
		{
			ID:              "kitchen-fridge-line",
			Question:        "Is the icemaker supply line dry and kink-free?",
			GoodDescription: "Line undamaged, connection dry behind the fridge.",
			BadDescription:  "Kinked or weeping icemaker line.",
			Severity:        SeverityFlag,
		},
		{
			ID:              "kitchen-range",
			Question:        "Do all burners and the oven heat correctly?",
			GoodDescription: "Burners light evenly; oven holds temperature.",
			BadDescription:  "Dead burners, gas smell, or erratic oven temps.",
			Severity:        SeverityFlag,
		},
	},
	"bathroom": {
		{
			ID:              "bath-grout-full",
			Question:        "Probe tile walls around tubs: any give or hollow sound?",
			GoodDescription: "Tile firm everywhere; grout and caulk continuous.",
			BadDescription:  "Flexing tile or hollow sounds meaning water got behind.",
			Severity:        SeverityUrgent,
			PhotoExample:    true,
		},
		{
			ID:              "bath-supply",
			Question:        "Are toilet and sink shutoff valves operable and dry?",
			GoodDescription: "Valves turn and everything is dry.",
			BadDescription:  "Frozen valves or seepage at the stems.",
			Severity:        SeverityFlag,
		},
		{
			ID:              "bath-fan-duct",
			Question:        "Does the exhaust fan duct to the outside, not the attic?",
			GoodDescription: "Duct runs to an exterior hood with a working damper.",
			BadDescription:  "Fan dumping moist air into the attic.",
			Severity:        SeverityFlag,
		},
		{
			ID:              "bath-floor",
			Question:        "Is the floor around tub and toilet solid, with no soft spots?",
			GoodDescription: "No flex when standing next to fixtures.",
			BadDescription:  "Springy or discolored flooring near water sources.",
			Severity:        SeverityUrgent,
		},
	},
	"laundry": {
		{
			ID:              "laundry-hoses-full",
			Question:        "Disconnect check: are hose washers intact and hoses under 5 years old?",
			GoodDescription: "Braided hoses, fresh washers, tight fittings.",
			BadDescription:  "Aging rubber hoses or hardened washers.",
			Severity:        SeverityUrgent,
			PhotoExample:    true,
		},
		{
			ID:              "laundry-duct-run",
			Question:        "Is the dryer duct rigid metal with a short, clean run?",
			GoodDescription: "Smooth metal duct, joints taped, minimal bends.",
			BadDescription:  "Crushed flex duct or long lint-packed runs.",
			Severity:        SeverityUrgent,
		},
		{
			ID:              "laundry-level",
			Question:        "Is the washer level and stable during spin?",
			GoodDescription: "No walking or banging at high spin.",
			BadDescription:  "Machine shifts or slams during spin cycles.",
			Severity:        SeverityMonitor,
		},
	},
	"attic": {
		{
			ID:              "attic-stains-full",
			Question:        "Sweep the whole deck with a flashlight: any staining at all?",
			GoodDescription: "Sheathing uniform around every penetration.",
			BadDescription:  "Staining rings around vents, chimney, or valleys.",
			Severity:        SeverityUrgent,
			PhotoExample:    true,
		},
		{
			ID:              "attic-ventilation",
			Question:        "Are soffit and ridge vents open and unblocked?",
			GoodDescription: "Daylight at soffits, clear path to ridge.",
			BadDescription:  "Insulation stuffed into soffits or painted-shut vents.",
			Severity:        SeverityMonitor,
		},
		{
			ID:              "attic-wiring",
			Question:        "Is visible wiring in the attic intact and junctions boxed?",
			GoodDescription: "No open splices or chewed insulation.",
			BadDescription:  "Open junctions or damaged cable runs.",
			Severity:        SeverityUrgent,
		},
		{
			ID:              "attic-bypass",
			Question:        "Are attic hatches and chases sealed against air leaks?",
			GoodDescription: "Weatherstripped hatch, sealed chases.",
			BadDescription:  "Big air gaps wasting conditioned air.",
			Severity:        SeverityMonitor,
		},
	},
	"basement": {
		{
			ID:              "basement-moisture-full",
			Question:        "Check every wall and corner: any dampness or efflorescence?",
			GoodDescription: "Dry surfaces in all corners and behind storage.",
			BadDescription:  "Damp patches or mineral deposits anywhere.",
			Severity:        SeverityFlag,
		},
		{
			ID:              "basement-sump-full",
			Question:        "Pour a bucket into the sump pit: does the pump cycle correctly?",
			GoodDescription: "Pump starts, clears the pit, and shuts off.",
			BadDescription:  "Pump fails to start, runs on, or cycles rapidly.",
			Severity:        SeverityUrgent,
			PhotoExample:    true,
		},
		{
			ID:              "basement-posts",
			Question:        "Are support posts plumb and footings uncracked?",
			GoodDescription: "Posts vertical, bases dry and solid.",
			BadDescription:  "Leaning posts or cracked, heaving footings.",
			Severity:        SeverityUrgent,
		},
		{
			ID:              "basement-radon",
			Question:        "If a radon system exists, is its manometer showing draw?",
			GoodDescription: "Manometer fluid offset shows the fan is pulling.",
			BadDescription:  "Level fluid meaning the radon fan has failed.",
			Severity:        SeverityFlag,
		},
	},
}
