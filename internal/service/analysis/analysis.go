package analysis

import (
	"context"
	"strings"

	"github.com/WINZED31/Baladeya/internal/domain/complaint"
)

// Result is a suggested classification for a free-text complaint.
type Result struct {
	Category complaint.Category `json:"category"`
	Priority complaint.Priority `json:"priority"`
	Matched  []string           `json:"matched"`
}

// Analyzer suggests a category and priority for complaint text. The
// complaint form pre-fills its selects from the suggestion; the citizen
// keeps the last word.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (Result, error)
}

// KeywordAnalyzer is a local keyword heuristic standing in for an external
// classification service.
type KeywordAnalyzer struct{}

func NewKeywordAnalyzer() *KeywordAnalyzer {
	return &KeywordAnalyzer{}
}

var categoryKeywords = map[complaint.Category][]string{
	complaint.CategoryRoads:       {"طريق", "حفرة", "رصيف", "route", "trou", "road", "pothole"},
	complaint.CategoryWater:       {"ماء", "مياه", "تسرب", "eau", "fuite", "water", "leak"},
	complaint.CategoryElectricity: {"كهرباء", "انقطاع التيار", "électricité", "coupure", "electricity", "power"},
	complaint.CategoryWaste:       {"نفايات", "قمامة", "déchets", "ordures", "waste", "garbage", "trash"},
	complaint.CategoryLighting:    {"إنارة", "عمود", "éclairage", "lampadaire", "lighting", "streetlight"},
	complaint.CategoryParks:       {"حديقة", "مساحة خضراء", "jardin", "parc", "park", "garden"},
	complaint.CategoryTransport:   {"حافلة", "نقل", "bus", "transport", "tram"},
}

var urgentKeywords = []string{
	"خطر", "عاجل", "انفجار", "حريق",
	"danger", "urgent", "incendie",
	"fire", "emergency",
}

// Analyze scans the text for category and urgency keywords. Unmatched text
// falls back to the "other" category with medium priority.
func (a *KeywordAnalyzer) Analyze(ctx context.Context, text string) (Result, error) {
	lowered := strings.ToLower(text)

	result := Result{
		Category: complaint.CategoryOther,
		Priority: complaint.PriorityMedium,
	}

	best := 0
	for _, category := range complaint.Categories {
		keywords := categoryKeywords[category]
		hits := 0
		var matched []string
		for _, kw := range keywords {
			if strings.Contains(lowered, kw) {
				hits++
				matched = append(matched, kw)
			}
		}
		if hits > best {
			best = hits
			result.Category = category
			result.Matched = matched
		}
	}

	for _, kw := range urgentKeywords {
		if strings.Contains(lowered, kw) {
			result.Priority = complaint.PriorityUrgent
			result.Matched = append(result.Matched, kw)
			break
		}
	}

	return result, nil
}
