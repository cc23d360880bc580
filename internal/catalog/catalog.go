// Package catalog holds the static tables the deal generator samples from:
// purchasable item archetypes, their categories, and the ordered condition
// tiers that scale an item's value.
package catalog

// Category tags an archetype for market trend purposes. Closed set.
type Category string

const (
	CategoryMower     Category = "Mower"
	CategoryPowerTool Category = "Power Tool"
	CategoryATV       Category = "ATV/Quad"
	CategoryGenerator Category = "Generator"
	CategoryTruckPart Category = "Truck Part"
)

// Categories lists every known category, in display order.
var Categories = []Category{
	CategoryMower,
	CategoryPowerTool,
	CategoryATV,
	CategoryGenerator,
	CategoryTruckPart,
}

// Archetype is an immutable catalog entry for one kind of purchasable good.
type Archetype struct {
	Name      string   `json:"name"`
	Category  Category `json:"category"`
	BaseValue int      `json:"base_value"`
}

// Archetypes is the full purchasable catalog.
var Archetypes = []Archetype{
	{Name: "Husqvarna Riding Mower", Category: CategoryMower, BaseValue: 900},
	{Name: "Craftsman Push Mower", Category: CategoryMower, BaseValue: 250},
	{Name: "Stihl Chainsaw", Category: CategoryPowerTool, BaseValue: 400},
	{Name: "DeWalt Impact Driver Set", Category: CategoryPowerTool, BaseValue: 300},
	{Name: "Yamaha 350 ATV", Category: CategoryATV, BaseValue: 2200},
	{Name: "Chinese Pit Bike", Category: CategoryATV, BaseValue: 450},
	{Name: "Honda EU Generator", Category: CategoryGenerator, BaseValue: 1200},
	{Name: "Harbor Freight Generator", Category: CategoryGenerator, BaseValue: 450},
	{Name: "Diesel Injector Set", Category: CategoryTruckPart, BaseValue: 900},
	{Name: "Class 8 Truck Tires (Set)", Category: CategoryTruckPart, BaseValue: 1600},
}

// ConditionTier is one discrete quality level. Index into Conditions is
// meaningful: repair advances an item exactly one index.
type ConditionTier struct {
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

// Conditions is ordered worst to best.
var Conditions = []ConditionTier{
	{Label: "Blown Up", Multiplier: 0.15},
	{Label: "Rough", Multiplier: 0.35},
	{Label: "Used", Multiplier: 0.6},
	{Label: "Clean", Multiplier: 0.9},
	{Label: "Mint", Multiplier: 1.1},
}

// BestCondition is the index of the top tier; repair stops here.
func BestCondition() int {
	return len(Conditions) - 1
}
