package i18n

// Wilayas lists the Algerian provinces offered in the complaint form,
// in official numbering order.
var Wilayas = []string{
	"أدرار", "الشلف", "الأغواط", "أم البواقي", "باتنة", "بجاية", "بسكرة",
	"بشار", "البليدة", "البويرة", "تمنراست", "تبسة", "تلمسان", "تيارت",
	"تيزي وزو", "الجزائر", "الجلفة", "جيجل", "سطيف", "سعيدة", "سكيكدة",
	"سيدي بلعباس", "عنابة", "قالمة", "قسنطينة", "المدية", "مستغانم",
	"المسيلة", "معسكر", "ورقلة", "وهران", "البيض", "إليزي", "برج بوعريريج",
	"بومرداس", "الطارف", "تندوف", "تيسمسيلت", "الوادي", "خنشلة",
	"سوق أهراس", "تيبازة", "ميلة", "عين الدفلى", "النعامة", "عين تموشنت",
	"غرداية", "غليزان",
}

// WilayaKnown reports whether name is one of the listed provinces.
func WilayaKnown(name string) bool {
	for _, w := range Wilayas {
		if w == name {
			return true
		}
	}
	return false
}
