package agent

import (
	"regexp"
	"strings"
)

const maxQueryLen = 2000

var whitespaceRe = regexp.MustCompile(`\s+`)

// SanitizeQuery collapses whitespace and caps the query length before it is
// sent to retrieval or generation.
func SanitizeQuery(text string) string {
	cleaned := whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
	if len(cleaned) > maxQueryLen {
		cleaned = cleaned[:maxQueryLen]
	}
	return cleaned
}

// Destination extraction mirrors the phrasing travelers actually use: a
// preposition followed by a proper-noun run, with a last-capitalized-run
// fallback when no pattern matches.
var destinationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)in\s+([A-Z][A-Za-z\-\s]+)$`),
	regexp.MustCompile(`(?i)to\s+([A-Z][A-Za-z\-\s]+)$`),
	regexp.MustCompile(`(?i)at\s+([A-Z][A-Za-z\-\s]+)$`),
	regexp.MustCompile(`(?i)(?:go(?:ing)?\s+to|visit(?:ing)?|travel to|trip to)\s+([A-Z][A-Za-z\-\s]+)`),
	regexp.MustCompile(`(?i)day in\s+([A-Z][A-Za-z\-\s]+)`),
}

var capitalizedRunRe = regexp.MustCompile(`[A-Z][A-Za-z\-]+(?:\s+[A-Z][A-Za-z\-]+)*`)

// ExtractDestination pulls a destination name out of a user query. Returns ""
// when nothing plausible is found.
func ExtractDestination(text string) string {
	trimmed := strings.TrimSpace(text)
	for _, pat := range destinationPatterns {
		if m := pat.FindStringSubmatch(trimmed); m != nil {
			return strings.Trim(m[1], " .!?,")
		}
	}

	// Fallback: last run of capitalized words, e.g. "Ho Chi Minh City".
	runs := capitalizedRunRe.FindAllString(trimmed, -1)
	if len(runs) > 0 {
		return runs[len(runs)-1]
	}
	return ""
}

// ActivityPreferences captures activity-specific hints found in a query.
type ActivityPreferences struct {
	Destination string
	Types       []string
	Budget      string // "budget", "medium" or "luxury"
}

// ExtractActivityPreferences scans the query for activity types and budget
// hints used to sharpen retrieval.
func ExtractActivityPreferences(text string) ActivityPreferences {
	lower := strings.ToLower(text)

	var types []string
	if containsAny(lower, "museum", "museums", "cultural", "history", "historical") {
		types = append(types, "cultural")
	}
	if containsAny(lower, "outdoor", "nature", "hiking", "adventure", "trekking") {
		types = append(types, "outdoor")
	}
	if containsAny(lower, "family", "kids", "children") {
		types = append(types, "family")
	}
	if containsAny(lower, "romantic", "couple", "date") {
		types = append(types, "romantic")
	}
	if containsAny(lower, "budget", "cheap", "free", "affordable") {
		types = append(types, "budget")
	}
	if containsAny(lower, "nightlife", "night", "evening", "bars", "clubs") {
		types = append(types, "nightlife")
	}

	budget := "medium"
	if containsAny(lower, "budget", "cheap", "free", "affordable", "low cost") {
		budget = "budget"
	} else if containsAny(lower, "luxury", "expensive", "high-end", "premium") {
		budget = "luxury"
	}

	return ActivityPreferences{
		Destination: ExtractDestination(text),
		Types:       types,
		Budget:      budget,
	}
}

// DietaryPreferences captures dietary restrictions found in a query.
type DietaryPreferences struct {
	Vegetarian bool
	Vegan      bool
	Allergies  []string
	Budget     string
}

var (
	vegetarianRe = regexp.MustCompile(`\b(vegetarian|veg-only|veg friendly|veg-friendly)\b`)
	veganRe      = regexp.MustCompile(`\b(vegan|plant-based)\b`)
	nonVegRe     = regexp.MustCompile(`\b(non-veg|non veg|meat lover|steak)\b`)
	avoidanceRe  = regexp.MustCompile(`\bno\s+\w+\b`)
)

var knownAllergens = []string{
	"peanut", "peanuts", "tree nut", "tree nuts", "nut", "nuts", "almond",
	"cashew", "walnut", "pistachio", "hazelnut", "pecan", "macadamia",
	"brazil nut", "sesame", "soy", "soya", "gluten", "wheat", "dairy",
	"milk", "lactose", "egg", "eggs", "shellfish", "shrimp", "prawn",
	"crab", "lobster", "mollusk", "clam", "oyster", "fish", "mustard",
}

var allergenRes = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(knownAllergens))
	for i, allergen := range knownAllergens {
		res[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(allergen) + `\b`)
	}
	return res
}()

// ExtractDietaryPreferences scans the query for vegetarian/vegan markers,
// allergens and budget hints.
func ExtractDietaryPreferences(text string) DietaryPreferences {
	lower := strings.ToLower(text)

	prefs := DietaryPreferences{Budget: "medium"}
	prefs.Vegetarian = vegetarianRe.MatchString(lower)
	prefs.Vegan = veganRe.MatchString(lower)
	if nonVegRe.MatchString(lower) {
		prefs.Vegetarian = false
		prefs.Vegan = false
	}

	if strings.Contains(lower, "allerg") || avoidanceRe.MatchString(lower) {
		for i, allergen := range knownAllergens {
			if allergenRes[i].MatchString(lower) {
				singular := strings.TrimSuffix(allergen, "s")
				if !slicesContains(prefs.Allergies, singular) {
					prefs.Allergies = append(prefs.Allergies, singular)
				}
			}
		}
	}

	if containsAny(lower, "budget", "cheap", "affordable", "street food") {
		prefs.Budget = "budget"
	} else if containsAny(lower, "luxury", "expensive", "fine dining", "high-end") {
		prefs.Budget = "luxury"
	}

	return prefs
}

// LanguagePreferences captures communication hints found in a query.
type LanguagePreferences struct {
	TargetLanguage string // "local" when unspecified
	Situation      string // dining, shopping, directions, ...
	Formality      string // formal, informal or neutral
}

var commonLanguages = []string{
	"english", "spanish", "french", "german", "italian", "portuguese",
	"chinese", "japanese", "korean", "arabic", "hindi", "russian",
	"thai", "vietnamese", "indonesian", "malay", "tagalog", "dutch",
	"swedish", "norwegian", "danish", "finnish", "polish", "czech",
}

// ExtractLanguagePreferences scans the query for a target language,
// conversational situation and formality level.
func ExtractLanguagePreferences(text string) LanguagePreferences {
	lower := strings.ToLower(text)

	prefs := LanguagePreferences{
		TargetLanguage: "local",
		Situation:      "general",
		Formality:      "neutral",
	}

	for _, lang := range commonLanguages {
		if strings.Contains(lower, lang) {
			prefs.TargetLanguage = lang
			break
		}
	}

	switch {
	case containsAny(lower, "emergency", "help", "urgent"):
		prefs.Situation = "emergency"
	case containsAny(lower, "restaurant", "food", "dining"):
		prefs.Situation = "dining"
	case containsAny(lower, "shopping", "buy", "purchase"):
		prefs.Situation = "shopping"
	case containsAny(lower, "directions", "where", "how to get"):
		prefs.Situation = "directions"
	case containsAny(lower, "hotel", "accommodation"):
		prefs.Situation = "accommodation"
	case containsAny(lower, "transport", "taxi", "bus", "train"):
		prefs.Situation = "transportation"
	}

	if containsAny(lower, "formal", "polite", "respectful") {
		prefs.Formality = "formal"
	} else if containsAny(lower, "casual", "informal", "friendly") {
		prefs.Formality = "informal"
	}

	return prefs
}

func containsAny(haystack string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

func slicesContains(items []string, item string) bool {
	for _, it := range items {
		if it == item {
			return true
		}
	}
	return false
}
