package analysis

import (
	"context"
	"testing"

	"github.com/WINZED31/Baladeya/internal/domain/complaint"
)

func TestAnalyzeCategories(t *testing.T) {
	cases := []struct {
		text string
		want complaint.Category
	}{
		{"حفرة كبيرة في الطريق أمام المدرسة", complaint.CategoryRoads},
		{"تسرب مياه في الشارع", complaint.CategoryWater},
		{"coupure d'électricité depuis deux jours", complaint.CategoryElectricity},
		{"garbage not collected this week", complaint.CategoryWaste},
		{"عمود الإنارة لا يعمل", complaint.CategoryLighting},
		{"something unclassifiable", complaint.CategoryOther},
	}

	a := NewKeywordAnalyzer()
	for _, c := range cases {
		result, err := a.Analyze(context.Background(), c.text)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Category != c.want {
			t.Errorf("Analyze(%q).Category = %s, want %s", c.text, result.Category, c.want)
		}
	}
}

func TestAnalyzePriority(t *testing.T) {
	a := NewKeywordAnalyzer()

	result, _ := a.Analyze(context.Background(), "خطر انفجار أنبوب الغاز")
	if result.Priority != complaint.PriorityUrgent {
		t.Errorf("danger keywords should raise priority, got %s", result.Priority)
	}

	result, _ = a.Analyze(context.Background(), "رصيف متضرر")
	if result.Priority != complaint.PriorityMedium {
		t.Errorf("plain text keeps medium priority, got %s", result.Priority)
	}
}
