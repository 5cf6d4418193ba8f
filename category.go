package govnotice

import "strings"

// Category is the topical category assigned to a notification.
type Category string

// The closed set of notification categories.
const (
	CategoryGeneral    Category = "general"
	CategoryHealth     Category = "health"
	CategoryEducation  Category = "education"
	CategoryEmployment Category = "employment"
	CategoryTaxation   Category = "taxation"
	CategoryLegal      Category = "legal"
)

// Categories lists all valid categories.
var Categories = []Category{
	CategoryGeneral,
	CategoryHealth,
	CategoryEducation,
	CategoryEmployment,
	CategoryTaxation,
	CategoryLegal,
}

// ValidCategory reports whether c is a member of the closed category set.
func ValidCategory(c Category) bool {
	for _, valid := range Categories {
		if c == valid {
			return true
		}
	}
	return false
}

// categoryRule pairs a category with the keywords that select it.
type categoryRule struct {
	category Category
	keywords []string
}

// categoryRules are evaluated in order and the first matching category wins.
// The order is a tie-break contract: a notice mentioning both "school" and
// "tax" is education, not taxation.
var categoryRules = []categoryRule{
	{CategoryHealth, []string{"health", "medical", "hospital"}},
	{CategoryEducation, []string{"education", "school", "university"}},
	{CategoryEmployment, []string{"job", "employment", "recruitment"}},
	{CategoryTaxation, []string{"tax", "income", "gst"}},
	{CategoryLegal, []string{"legal", "court", "law"}},
}

// Categorize maps a notification's text to a topical category using keyword
// substring matching on the lower-cased title and content. It is total:
// unmatched text falls back to CategoryGeneral.
func Categorize(title, content string) Category {
	text := strings.ToLower(title + " " + content)
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(text, keyword) {
				return rule.category
			}
		}
	}
	return CategoryGeneral
}
