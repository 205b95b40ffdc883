package domain

// Item is one catalog entry shown in the filtered list
type Item struct {
	Name  string
	Color string // option value this item is tagged with ("" never matches)
}

// Catalog is the loaded item set plus the option order for the panel
type Catalog struct {
	Colors []string // checkbox panel order, sentinel appended by the UI
	Items  []Item
}
