package assets

import "dungeonforge/internal/content"

// ThemeDef bundles everything theme-specific: the catalog handed to the
// room populator, the word pools for the stock describer, and the glyphs
// the terminal viewer draws rooms with.
type ThemeDef struct {
	ID string

	RoomGlyph     string
	EntranceGlyph string
	ExitGlyph     string
	ChestGlyph    string
	EnemyGlyph    string

	Catalog   content.Catalog
	Fragments content.Fragments
}

// Themes is the ordered list of built-in themes. Index 0 is the default.
var Themes = []ThemeDef{
	{
		ID:            "forgotten crypt",
		RoomGlyph:     "⬜",
		EntranceGlyph: "🚪",
		ExitGlyph:     "🏁",
		ChestGlyph:    "📦",
		EnemyGlyph:    "💀",
		Catalog: content.Catalog{
			Theme: "forgotten crypt",
			Enemies: []content.TypeEntry{
				{Name: "Barrow Wight", Flavor: "A grave-cold figure wrapped in rotted ceremonial cloth"},
				{Name: "Bone Servitor", Flavor: "Assembled from mismatched skeletons and still taking orders"},
				{Name: "Crypt Moth Swarm", Flavor: "Dust-grey wings that smother torchlight"},
				{Name: "Hollow Priest", Flavor: "Chants a litany for a god nobody remembers"},
				{Name: "Grave Ooze", Flavor: "What seeps up when the embalming fails"},
			},
			Treasures: []content.TypeEntry{
				{Name: "Funerary Mask", Flavor: "Beaten gold, expression serene"},
				{Name: "Tarnished Reliquary", Flavor: "Rattles with a saint's knucklebones"},
				{Name: "Grave Goods", Flavor: "Coins placed on eyes long ago"},
				{Name: "Embalmer's Kit", Flavor: "The tools are obsidian and still sharp"},
			},
		},
		Fragments: content.Fragments{
			Adjectives: []string{"collapsed", "silent", "candle-lit", "flooded", "dust-choked", "echoing"},
			Nouns:      []string{"ossuary", "burial chamber", "chapel", "gallery", "antechamber", "sepulcher"},
			Features:   []string{"Niches in the walls hold nameless remains.", "The ceiling has partly fallen in.", "Faded murals depict a procession of mourners.", "Something scratched tally marks beside the door.", "The air tastes of old incense."},
		},
	},
	{
		ID:            "sunken sewer",
		RoomGlyph:     "🟩",
		EntranceGlyph: "🚪",
		ExitGlyph:     "🏁",
		ChestGlyph:    "📦",
		EnemyGlyph:    "🐀",
		Catalog: content.Catalog{
			Theme: "sunken sewer",
			Enemies: []content.TypeEntry{
				{Name: "Plague Rat", Flavor: "Larger than it has any right to be"},
				{Name: "Drowned Cutpurse", Flavor: "Still clutching a purse of waterlogged coppers"},
				{Name: "Sluice Crawler", Flavor: "All legs and valve-like mouths"},
				{Name: "Mire Serpent", Flavor: "Moves through the muck without a ripple"},
			},
			Treasures: []content.TypeEntry{
				{Name: "Smuggler's Cache", Flavor: "Oilcloth kept the contents dry"},
				{Name: "Lost Signet Ring", Flavor: "Some noble house wants this back"},
				{Name: "Copper Hoard", Flavor: "Verdigris-green but spendable"},
			},
		},
		Fragments: content.Fragments{
			Adjectives: []string{"dripping", "fetid", "half-flooded", "slick", "fog-bound"},
			Nouns:      []string{"cistern", "junction", "overflow vault", "culvert", "maintenance walk"},
			Features:   []string{"Brown water moves sluggishly along a central channel.", "Rusted chains hang from a winch overhead.", "A grate in the floor breathes warm, foul air.", "Bootprints in the silt end abruptly."},
		},
	},
	{
		ID:            "ember mines",
		RoomGlyph:     "🟧",
		EntranceGlyph: "🚪",
		ExitGlyph:     "🏁",
		ChestGlyph:    "📦",
		EnemyGlyph:    "👺",
		Catalog: content.Catalog{
			Theme: "ember mines",
			Enemies: []content.TypeEntry{
				{Name: "Cinder Goblin", Flavor: "Soot-black skin and a miner's pick to match"},
				{Name: "Slag Golem", Flavor: "Cooling crust over a molten core"},
				{Name: "Ash Bat", Flavor: "Roosts in exhausted shafts"},
				{Name: "Deep Foreman", Flavor: "Never stopped working. Never will"},
				{Name: "Magma Wisp", Flavor: "A spark that resents being small"},
			},
			Treasures: []content.TypeEntry{
				{Name: "Raw Fire Opal", Flavor: "Warm to the touch"},
				{Name: "Foreman's Strongbox", Flavor: "Wages nobody collected"},
				{Name: "Seam of Gold", Flavor: "Pried loose in glittering chunks"},
				{Name: "Dwarven Toolhoard", Flavor: "Every head stamped with a maker's rune"},
			},
		},
		Fragments: content.Fragments{
			Adjectives: []string{"smoldering", "soot-stained", "sweltering", "timber-braced", "abandoned"},
			Nouns:      []string{"shaft", "gallery", "winch room", "ore sorting floor", "crosscut"},
			Features:   []string{"A mine cart sits derailed beside a buckled track.", "Heat shimmers above a crack in the floor.", "Pick marks cover every surface.", "The support beams creak when you enter."},
		},
	},
}

// ThemeByID returns the theme definition matching id, falling back to the
// default theme for unknown ids so an arbitrary theme string still renders
// and populates.
func ThemeByID(id string) ThemeDef {
	for _, t := range Themes {
		if t.ID == id {
			return t
		}
	}
	def := Themes[0]
	def.Catalog.Theme = id
	return def
}
