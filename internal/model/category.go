package model

// ExpenseCategories is the fixed set of categories for expense transactions.
var ExpenseCategories = []string{
	"Food & Dining",
	"Transport",
	"Shopping",
	"Utilities",
	"Rent/Mortgage",
	"Entertainment",
	"Health",
	"Personal Care",
	"Education",
	"Other",
}

// IncomeCategories is the fixed set of categories for income transactions.
var IncomeCategories = []string{
	"Salary",
	"Freelance",
	"Investments",
	"Gift",
	"Refund",
	"Bonus",
	"Other",
}

// CategoryColors maps category names to their display colors. Categories
// without an entry fall back to DefaultCategoryColor.
var CategoryColors = map[string]string{
	"Food & Dining": "#F87171",
	"Transport":     "#60A5FA",
	"Shopping":      "#FBBF24",
	"Utilities":     "#34D399",
	"Rent/Mortgage": "#A78BFA",
	"Entertainment": "#F472B6",
	"Health":        "#FB7185",
	"Salary":        "#10B981",
	"Freelance":     "#3B82F6",
	"Other":         "#94A3B8",
}

// DefaultCategoryColor is used for categories with no configured color.
const DefaultCategoryColor = "#94A3B8"

// CategoriesFor returns the permitted category set for a transaction type.
func CategoriesFor(t TransactionType) []string {
	if t == TypeIncome {
		return IncomeCategories
	}
	return ExpenseCategories
}

// ValidCategory reports whether name belongs to the category set for t.
func ValidCategory(t TransactionType, name string) bool {
	for _, c := range CategoriesFor(t) {
		if c == name {
			return true
		}
	}
	return false
}

// ColorFor returns the display color for a category.
func ColorFor(category string) string {
	if c, ok := CategoryColors[category]; ok {
		return c
	}
	return DefaultCategoryColor
}
