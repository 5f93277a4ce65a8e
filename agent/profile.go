package agent

import (
	"fmt"
	"strings"
)

// Profile describes one travel subdomain: the keywords that make a query
// relevant to it, the system prompt its LLM calls use, how its web searches
// are sharpened, and the canned text returned when generation fails.
type Profile struct {
	ID           ID
	Keywords     []string
	SystemPrompt string
	// SearchSuffix is appended to web search queries to bias results toward
	// this subdomain.
	SearchSuffix string
	// Fallback is returned verbatim when the LLM call fails.
	Fallback string
	// EnhanceQuery sharpens the query passed to generation with extracted
	// preferences (destination, budget, dietary restrictions, ...). Nil means
	// the query is used as-is.
	EnhanceQuery func(query string) string
}

// Relevant reports whether any profile keyword appears in the query.
// Matching is case-insensitive substring containment, not tokenized.
func (p *Profile) Relevant(query string) bool {
	lower := strings.ToLower(query)
	for _, keyword := range p.Keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// Profiles returns the four built-in travel profiles keyed by agent ID.
func Profiles() map[ID]*Profile {
	return map[ID]*Profile{
		Culture:  CultureProfile(),
		Activity: ActivityProfile(),
		Food:     FoodProfile(),
		Language: LanguageProfile(),
	}
}

// CultureProfile covers traditions, etiquette, customs and festivals.
func CultureProfile() *Profile {
	return &Profile{
		ID: Culture,
		Keywords: []string{
			"culture", "cultural", "tradition", "traditions", "customs", "custom",
			"etiquette", "ceremony", "ceremonies", "festival", "festivals",
			"heritage", "wedding", "weddings", "ritual", "rituals", "local",
			"regional", "traditional", "folklore", "beliefs", "values",
			"social norms", "behavior", "manners", "protocol", "taboo",
			"sacred", "religious", "spiritual", "ancestral", "historical",
		},
		SystemPrompt: `You are a Cultural Expert Agent specializing in traditions, customs, etiquette, and cultural practices.

Your expertise includes:
- Cultural traditions and customs
- Social etiquette and manners
- Religious and spiritual practices
- Festivals and celebrations
- Wedding traditions
- Social norms and taboos
- Historical cultural context
- Regional cultural differences

Guidelines:
- Provide accurate, respectful information about cultural practices
- Avoid stereotypes and generalizations
- Explain the significance and context of traditions
- Be sensitive to cultural differences
- If unsure about sensitive topics, recommend consulting local sources
- Include practical advice for respectful cultural interaction
- Mention any important cultural considerations for travelers

For itinerary planning:
- Highlight cultural sites and experiences to include
- Mention cultural events happening during the visit
- Provide cultural context for recommended activities
- Suggest appropriate dress codes and behavior
- Include cultural timing considerations (prayer times, siesta, etc.)
- Mention cultural etiquette for dining and social interactions`,
		SearchSuffix: "cultural traditions customs etiquette",
		Fallback: "I'd be happy to help with cultural information about your destination. " +
			"While I don't have specific local knowledge in my database, I can provide general " +
			"cultural guidance. Could you please specify which destination you're interested in?",
	}
}

// ActivityProfile covers attractions, tours, experiences and sightseeing.
func ActivityProfile() *Profile {
	return &Profile{
		ID: Activity,
		Keywords: []string{
			"activities", "activity", "attractions", "attraction", "things to do",
			"sightseeing", "tour", "tours", "visit", "explore", "museums", "museum",
			"temples", "temple", "parks", "park", "hiking", "trekking", "adventure",
			"landmarks", "monuments", "historical sites", "archaeological sites",
			"nature", "outdoor", "indoor", "entertainment", "shows", "performances",
			"experiences", "excursions", "day trips", "guided tours",
			"self-guided", "free activities", "budget activities", "family activities",
			"romantic activities", "nightlife", "shopping", "markets", "beaches",
			"mountains", "lakes", "rivers", "caves", "waterfalls", "gardens",
		},
		SystemPrompt: `You are an Activity Expert Agent specializing in attractions, tours, experiences, and sightseeing.

Your expertise includes:
- Tourist attractions and landmarks
- Museums and cultural sites
- Outdoor activities and adventures
- Guided tours and excursions
- Entertainment and shows
- Nature and wildlife experiences
- Historical and archaeological sites
- Family-friendly activities
- Budget and free activities

Guidelines:
- Provide diverse activity recommendations
- Include practical information (duration, cost, difficulty)
- Consider different interests and fitness levels
- Mention seasonal availability and weather considerations
- Suggest both popular and off-the-beaten-path options
- Consider accessibility and family-friendliness`,
		SearchSuffix: "attractions activities things to do tourist",
		Fallback: "I can help you find activities and attractions. To provide the best " +
			"recommendations, could you tell me which destination you're planning to visit?",
		EnhanceQuery: enhanceActivityQuery,
	}
}

// FoodProfile covers cuisine, restaurants and dietary preferences.
func FoodProfile() *Profile {
	return &Profile{
		ID: Food,
		Keywords: []string{
			"food", "foods", "cuisine", "dish", "dishes", "eat", "eating", "dining",
			"restaurant", "restaurants", "cafe", "café", "bar", "bars", "street food",
			"local food", "traditional food", "breakfast", "lunch", "dinner", "brunch",
			"snacks", "desserts", "drinks", "beverages", "vegetarian", "vegan",
			"halal", "kosher", "gluten-free", "allergies", "dietary", "spicy",
			"mild", "sweet", "sour", "bitter", "flavors", "ingredients", "recipes",
			"cooking", "chef", "menu", "price", "budget", "expensive", "cheap",
			"fine dining", "casual dining", "fast food", "food market", "food tour",
		},
		SystemPrompt: `You are a Food Expert Agent specializing in cuisine, restaurants, and dining experiences.

Your expertise includes:
- Local and traditional cuisines
- Restaurant recommendations
- Street food and local specialties
- Dietary restrictions and preferences
- Food allergies and safety
- Food culture and traditions
- Budget-friendly dining options
- Fine dining experiences

Guidelines:
- Provide diverse food recommendations
- Always consider dietary restrictions and allergies
- Include price ranges and budget considerations
- Mention food safety and hygiene tips
- Explain cultural significance of dishes
- Include both popular and hidden gem recommendations
- Mention any cultural dining etiquette`,
		SearchSuffix: "restaurants food dining cuisine local",
		Fallback: "I'd love to help with food recommendations! To give you the best dining " +
			"suggestions, could you specify which city or region you're interested in?",
		EnhanceQuery: enhanceFoodQuery,
	}
}

// LanguageProfile covers phrases, translations and communication tips.
func LanguageProfile() *Profile {
	return &Profile{
		ID: Language,
		Keywords: []string{
			"language", "languages", "translate", "translation", "speak", "speaking",
			"communication", "communicate", "phrase", "phrases", "words", "vocabulary",
			"pronunciation", "pronounce", "accent", "dialect", "local language",
			"native language", "official language", "common phrases", "useful phrases",
			"greetings", "hello", "thank you", "please", "excuse me", "sorry",
			"directions", "asking for help", "emergency", "numbers", "time", "date",
			"polite", "formal", "informal", "conversation", "basic", "essential",
			"language barrier", "communication tips", "gestures", "body language",
			"cultural communication", "etiquette", "manners", "respectful",
		},
		SystemPrompt: `You are a Language Expert Agent specializing in communication, translations, and language assistance.

Your expertise includes:
- Common phrases and essential vocabulary
- Translation assistance
- Pronunciation guidance
- Cultural communication tips
- Language etiquette and manners
- Emergency and practical phrases
- Regional language variations
- Communication strategies for travelers

Guidelines:
- Provide practical, commonly used phrases
- Include pronunciation guides when helpful
- Explain cultural context for language use
- Mention formal vs informal language usage
- Include emergency and safety-related phrases
- Provide tips for overcoming language barriers
- Mention regional variations and dialects`,
		SearchSuffix: "phrases language translation communication",
		Fallback: "I can help with language assistance and essential phrases. Which destination " +
			"are you planning to visit so I can provide relevant language guidance?",
		EnhanceQuery: enhanceLanguageQuery,
	}
}

func enhanceActivityQuery(query string) string {
	prefs := ExtractActivityPreferences(query)

	enhanced := query
	if prefs.Destination != "" {
		enhanced += " in " + prefs.Destination
	}
	if len(prefs.Types) > 0 {
		enhanced += " focusing on " + strings.Join(prefs.Types, ", ") + " activities"
	}
	if prefs.Budget != "medium" {
		enhanced += " with " + prefs.Budget + " budget"
	}
	return enhanced
}

func enhanceFoodQuery(query string) string {
	prefs := ExtractDietaryPreferences(query)

	enhanced := query
	if dest := ExtractDestination(query); dest != "" {
		enhanced += " in " + dest
	}
	if prefs.Budget != "medium" {
		enhanced += " with " + prefs.Budget + " budget"
	}
	if prefs.Vegetarian {
		enhanced += " (vegetarian options)"
	}
	if prefs.Vegan {
		enhanced += " (vegan options)"
	}
	if len(prefs.Allergies) > 0 {
		enhanced += " (avoiding: " + strings.Join(prefs.Allergies, ", ") + ")"
	}
	return enhanced
}

func enhanceLanguageQuery(query string) string {
	prefs := ExtractLanguagePreferences(query)

	enhanced := query
	if dest := ExtractDestination(query); dest != "" {
		enhanced += " for " + dest
	}
	return enhanced + fmt.Sprintf(" (context: %s, formality: %s)", prefs.Situation, prefs.Formality)
}
