package timeline

import "sprout/entities"

func adj(mult float64, waterEvery int, care ...string) entities.ClimateAdjustment {
	return entities.ClimateAdjustment{
		GrowthMultiplier:      mult,
		WateringFrequencyDays: waterEvery,
		ExtraCare:             care,
	}
}

func activity(day int, act, details string, cat entities.TaskCategory) entities.KeyActivity {
	return entities.KeyActivity{TimingDays: day, Activity: act, Details: details, Category: cat}
}

// defaultTimeline is used for any plant the registry does not know. Five
// generic activities spanning planting, fertilizing, pest, pruning and
// harvest; the planting entry is implicit and filtered out at generation.
var defaultTimeline = entities.PlantTimeline{
	SowToSeedlingDays:     14,
	SeedlingToHarvestDays: 60,
	HarvestWindowDays:     30,
	ClimateAdjustments: map[entities.Climate]entities.ClimateAdjustment{
		entities.ClimateWarm: adj(0.9, 2,
			"Shade cloth on extreme heat days",
			"Mulch well to hold soil moisture",
			"Check daily during heat waves"),
		entities.ClimateCool: adj(1.2, 4,
			"Protect from frost with fleece or cloches",
			"Start under cover in early spring"),
		entities.ClimateTemperate: adj(1.0, 3,
			"Mulch before summer",
			"Watch for fungal disease in humid spells"),
	},
	KeyActivities: []entities.KeyActivity{
		activity(0, "Plant according to the packet", "Follow spacing and depth on the label", entities.CategoryPlanting),
		activity(14, "Fertilise with a balanced feed", "Half-strength liquid feed once established", entities.CategoryFertilizing),
		activity(28, "Check leaves for pests", "Look under leaves for aphids and caterpillars", entities.CategoryPest),
		activity(42, "Tidy and prune straggly growth", "Remove damaged or crowded stems", entities.CategoryPruning),
		activity(70, "Start checking for harvest", "Pick as soon as produce looks ready", entities.CategoryHarvest),
	},
}

var builtinTimelines = map[string]entities.PlantTimeline{
	"Tomatoes": {
		SowToSeedlingDays:     21,
		SeedlingToHarvestDays: 60,
		HarvestWindowDays:     40,
		ClimateAdjustments: map[entities.Climate]entities.ClimateAdjustment{
			entities.ClimateWarm: adj(0.9, 2,
				"Shade cloth during heat waves",
				"Mulch thickly to hold soil moisture",
				"Check fruit for sunscald"),
			entities.ClimateCool: adj(1.15, 4,
				"Protect from frost with fleece",
				"Grow against a warm north-facing wall"),
			entities.ClimateTemperate: adj(1.0, 3,
				"Mulch in late spring",
				"Improve airflow to limit fungal disease"),
		},
		KeyActivities: []entities.KeyActivity{
			activity(0, "Sow seeds in trays", "Keep trays warm until germination", entities.CategoryPlanting),
			activity(7, "Water seedlings daily", "Keep the mix just damp, never soggy", entities.CategoryPlanting),
			activity(14, "Thin to the strongest seedling", "One seedling per cell or pot", entities.CategoryPlanting),
			activity(21, "Fertilise", "First true leaves, start fortnightly feeding", entities.CategoryFertilizing),
			activity(35, "Stake and remove laterals", "Tie the main stem loosely to a stake", entities.CategoryPruning),
			activity(42, "Check for pests", "Look for aphids and whitefly under leaves", entities.CategoryPest),
			activity(75, "First harvest check", "Pick fruit as it colours and ripen indoors if needed", entities.CategoryHarvest),
		},
	},
	"Lettuce": {
		SowToSeedlingDays:     10,
		SeedlingToHarvestDays: 45,
		HarvestWindowDays:     21,
		ClimateAdjustments: map[entities.Climate]entities.ClimateAdjustment{
			entities.ClimateWarm: adj(0.85, 1,
				"Grow in afternoon shade",
				"Harvest early before plants bolt"),
			entities.ClimateCool: adj(1.1, 3,
				"Use a cold frame for winter sowings"),
			entities.ClimateTemperate: adj(1.0, 2,
				"Sow small batches every fortnight"),
		},
		KeyActivities: []entities.KeyActivity{
			activity(0, "Sow seeds direct", "Barely cover, lettuce needs light to germinate", entities.CategoryPlanting),
			activity(10, "Thin seedlings", "Space to a hand-width apart", entities.CategoryPlanting),
			activity(18, "Fertilise lightly", "Weak liquid feed, leafy growth only", entities.CategoryFertilizing),
			activity(25, "Check for slugs and snails", "Bait or hand-pick in the evening", entities.CategoryPest),
			activity(45, "Begin picking outer leaves", "Cut-and-come-again keeps plants producing", entities.CategoryHarvest),
		},
	},
	"Carrots": {
		SowToSeedlingDays:     14,
		SeedlingToHarvestDays: 70,
		HarvestWindowDays:     28,
		ClimateAdjustments: map[entities.Climate]entities.ClimateAdjustment{
			entities.ClimateWarm:      adj(0.95, 3, "Sow in autumn to avoid the worst heat"),
			entities.ClimateCool:      adj(1.15, 5, "Cover late sowings against hard frost"),
			entities.ClimateTemperate: adj(1.0, 4, "Keep the bed free of fresh manure"),
		},
		KeyActivities: []entities.KeyActivity{
			activity(0, "Sow seeds thinly in rows", "Direct sow only, carrots resent transplanting", entities.CategoryPlanting),
			activity(14, "Thin to finger spacing", "Remove thinnings to avoid carrot fly", entities.CategoryPlanting),
			activity(30, "Check for carrot fly", "Cover rows with fine mesh if flies are about", entities.CategoryPest),
			activity(45, "Hill soil over shoulders", "Stops green shoulders on the roots", entities.CategoryPruning),
			activity(80, "Pull a test root", "Harvest once roots reach usable size", entities.CategoryHarvest),
		},
	},
	"Beans": {
		SowToSeedlingDays:     7,
		SeedlingToHarvestDays: 55,
		HarvestWindowDays:     21,
		ClimateAdjustments: map[entities.Climate]entities.ClimateAdjustment{
			entities.ClimateWarm:      adj(0.9, 2, "Pick daily in hot weather to keep plants cropping"),
			entities.ClimateCool:      adj(1.15, 4, "Delay sowing until frosts are done"),
			entities.ClimateTemperate: adj(1.0, 3, "Provide a frame before plants need it"),
		},
		KeyActivities: []entities.KeyActivity{
			activity(0, "Sow seeds at the base of supports", "Two seeds per station, thin to one", entities.CategoryPlanting),
			activity(14, "Train onto supports", "Wind young stems anti-clockwise onto canes", entities.CategoryPruning),
			activity(21, "Fertilise sparingly", "Too much nitrogen gives leaves, not pods", entities.CategoryFertilizing),
			activity(30, "Check for bean fly and aphids", "Inspect stems at soil level", entities.CategoryPest),
			activity(60, "Start picking pods young", "Regular picking extends the harvest", entities.CategoryHarvest),
		},
	},
	"Capsicum": {
		SowToSeedlingDays:     21,
		SeedlingToHarvestDays: 70,
		HarvestWindowDays:     42,
		ClimateAdjustments: map[entities.Climate]entities.ClimateAdjustment{
			entities.ClimateWarm:      adj(0.9, 2, "Shade fruit exposed to western sun"),
			entities.ClimateCool:      adj(1.2, 4, "Grow in the warmest, most sheltered spot"),
			entities.ClimateTemperate: adj(1.0, 3, "Stake before fruit weighs branches down"),
		},
		KeyActivities: []entities.KeyActivity{
			activity(0, "Sow seeds in a warm tray", "Capsicum germinates slowly in cold mix", entities.CategoryPlanting),
			activity(25, "Fertilise with a tomato feed", "Potassium-rich feed once flowering starts", entities.CategoryFertilizing),
			activity(35, "Stake plants", "Brittle branches snap under fruit load", entities.CategoryPruning),
			activity(45, "Check for fruit fly", "Bag or net fruit in affected areas", entities.CategoryPest),
			activity(85, "Pick first green fruit", "Leave some to colour for sweeter flavour", entities.CategoryHarvest),
		},
	},
	"Cucumber": {
		SowToSeedlingDays:     10,
		SeedlingToHarvestDays: 50,
		HarvestWindowDays:     30,
		ClimateAdjustments: map[entities.Climate]entities.ClimateAdjustment{
			entities.ClimateWarm:      adj(0.9, 1, "Trellis for airflow in humid weather"),
			entities.ClimateCool:      adj(1.15, 3, "Wait for warm soil before sowing"),
			entities.ClimateTemperate: adj(1.0, 2, "Pinch the growing tip at the top of the trellis"),
		},
		KeyActivities: []entities.KeyActivity{
			activity(0, "Sow seeds on mounds", "Warm, free-draining soil prevents rot", entities.CategoryPlanting),
			activity(14, "Train onto a trellis", "Climbing keeps fruit straight and clean", entities.CategoryPruning),
			activity(21, "Fertilise fortnightly", "Cucumbers are hungry once flowering", entities.CategoryFertilizing),
			activity(28, "Check for powdery mildew", "Remove the worst leaves early", entities.CategoryPest),
			activity(55, "Pick fruit small", "Oversized fruit turns bitter and slows the vine", entities.CategoryHarvest),
		},
	},
	"Zucchini": {
		SowToSeedlingDays:     7,
		SeedlingToHarvestDays: 45,
		HarvestWindowDays:     30,
		ClimateAdjustments: map[entities.Climate]entities.ClimateAdjustment{
			entities.ClimateWarm:      adj(0.9, 2, "Hand-pollinate on very hot mornings"),
			entities.ClimateCool:      adj(1.1, 4, "Cover young plants on cold nights"),
			entities.ClimateTemperate: adj(1.0, 3, "Give each plant a square metre"),
		},
		KeyActivities: []entities.KeyActivity{
			activity(0, "Sow seeds direct", "Two seeds per mound, keep the stronger", entities.CategoryPlanting),
			activity(18, "Fertilise generously", "Compost and a liquid feed at flowering", entities.CategoryFertilizing),
			activity(25, "Check for mildew and beetles", "Morning inspections catch trouble early", entities.CategoryPest),
			activity(35, "Remove older lower leaves", "Improves airflow around the crown", entities.CategoryPruning),
			activity(50, "Pick fruit at finger length", "Check every second day, they grow fast", entities.CategoryHarvest),
		},
	},
	"Spinach": {
		SowToSeedlingDays:     10,
		SeedlingToHarvestDays: 40,
		HarvestWindowDays:     21,
		ClimateAdjustments: map[entities.Climate]entities.ClimateAdjustment{
			entities.ClimateWarm:      adj(0.85, 2, "Grow only through the cooler months"),
			entities.ClimateCool:      adj(1.1, 4, "A long, slow season gives the best leaves"),
			entities.ClimateTemperate: adj(1.0, 3, "Succession sow from autumn to spring"),
		},
		KeyActivities: []entities.KeyActivity{
			activity(0, "Sow seeds direct in rich soil", "Soak seed overnight for better strike", entities.CategoryPlanting),
			activity(12, "Thin seedlings", "Eat the thinnings as baby leaf", entities.CategoryPlanting),
			activity(20, "Fertilise with nitrogen feed", "Leafy crops want steady nitrogen", entities.CategoryFertilizing),
			activity(28, "Check for leaf miner", "Squash larvae inside tunnelled leaves", entities.CategoryPest),
			activity(42, "Harvest outer leaves", "Leave the crown to keep producing", entities.CategoryHarvest),
		},
	},
	"Basil": {
		SowToSeedlingDays:     14,
		SeedlingToHarvestDays: 40,
		HarvestWindowDays:     60,
		ClimateAdjustments: map[entities.Climate]entities.ClimateAdjustment{
			entities.ClimateWarm:      adj(0.9, 2, "Pinch flower spikes as soon as they form"),
			entities.ClimateCool:      adj(1.2, 4, "Grow in pots so plants can come indoors"),
			entities.ClimateTemperate: adj(1.0, 3, "Plant out well after the last frost"),
		},
		KeyActivities: []entities.KeyActivity{
			activity(0, "Sow seeds in trays", "Surface-sow and keep warm", entities.CategoryPlanting),
			activity(21, "Pinch out growing tips", "Pinching makes bushy plants", entities.CategoryPruning),
			activity(28, "Fertilise lightly", "Over-fed basil loses flavour", entities.CategoryFertilizing),
			activity(35, "Check for snails", "They shred young basil overnight", entities.CategoryPest),
			activity(50, "Harvest sprigs regularly", "Cut above a leaf pair to regrow", entities.CategoryHarvest),
		},
	},
	"Strawberries": {
		SowToSeedlingDays:     30,
		SeedlingToHarvestDays: 90,
		HarvestWindowDays:     60,
		ClimateAdjustments: map[entities.Climate]entities.ClimateAdjustment{
			entities.ClimateWarm:      adj(0.95, 2, "Net early, birds find fruit before you do"),
			entities.ClimateCool:      adj(1.15, 4, "Protect flowers from late frost"),
			entities.ClimateTemperate: adj(1.0, 3, "Straw mulch keeps fruit off the soil"),
		},
		KeyActivities: []entities.KeyActivity{
			activity(0, "Plant according to crown depth", "Crown at soil level, roots spread wide", entities.CategoryPlanting),
			activity(30, "Fertilise at flowering", "Potassium feed sweetens the fruit", entities.CategoryFertilizing),
			activity(45, "Remove runners", "Runners steal energy from fruiting", entities.CategoryPruning),
			activity(60, "Check for slugs under mulch", "Lift mulch and inspect weekly", entities.CategoryPest),
			activity(100, "Pick fully red fruit", "Flavour develops only on the plant", entities.CategoryHarvest),
		},
	},
}
