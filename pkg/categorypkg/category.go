// Package categorypkg provides the supported entry kinds and categories.
package categorypkg

// Constants for all supported entry kinds.
const (
	Debit  = "Debit"
	Credit = "Credit"
)

// SupportedKinds holds all the supported entry kinds.
var SupportedKinds = []string{
	Debit,
	Credit,
}

// Constants for all supported entry categories.
const (
	Work  = "Work"
	Food  = "Food"
	Bill  = "Bill"
	Shop  = "Shop"
	Other = "Other"
)

// SupportedCategories holds all the supported entry categories.
var SupportedCategories = []string{
	Work,
	Food,
	Bill,
	Shop,
	Other,
}

// IsSupportedKind returns true if the kind is supported.
func IsSupportedKind(kind string) bool {
	for _, k := range SupportedKinds {
		if k == kind {
			return true
		}
	}

	return false
}

// IsSupportedCategory returns true if the category is supported.
func IsSupportedCategory(category string) bool {
	for _, c := range SupportedCategories {
		if c == category {
			return true
		}
	}

	return false
}
