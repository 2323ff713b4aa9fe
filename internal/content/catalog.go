package content

// TypeEntry is one named entry in a theme catalog: an enemy or treasure
// type with its flavor text. The generator treats entries as opaque data
// and only ever indexes into the lists.
type TypeEntry struct {
	Name   string
	Flavor string
}

// Catalog bundles the enemy and treasure types available for one theme.
type Catalog struct {
	Theme     string
	Enemies   []TypeEntry
	Treasures []TypeEntry
}
