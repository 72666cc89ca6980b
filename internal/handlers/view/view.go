package view

import (
	"time"

	"github.com/WINZED31/Baladeya/internal/domain/complaint"
	"github.com/WINZED31/Baladeya/internal/domain/user"
	"github.com/WINZED31/Baladeya/internal/pkg/i18n"
)

const dateTimeLayout = "2006-01-02 15:04"

// isoLayouts are the timestamp shapes accepted by FormatDateTime, most
// specific first.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatDateTime renders a timestamp as "2006-01-02 15:04". It accepts
// either a time.Time or an ISO-8601 string; an unparseable string is
// returned unchanged so a bad value never fails the page.
func FormatDateTime(value any) string {
	switch v := value.(type) {
	case time.Time:
		return v.Format(dateTimeLayout)
	case string:
		for _, layout := range isoLayouts {
			if parsed, err := time.Parse(layout, v); err == nil {
				return parsed.Format(dateTimeLayout)
			}
		}
		return v
	}
	return ""
}

// NavEntry is one sidebar control.
type NavEntry struct {
	Path  string
	Label string
}

// BuildNav assembles the sidebar for one render. Admin entries are only
// emitted when the freshly checked admin flag is true; they are absent for
// everyone else, not disabled.
func BuildNav(lang i18n.Lang, authenticated, admin bool) []NavEntry {
	nav := []NavEntry{
		{Path: "/", Label: i18n.T("الصفحة الرئيسية", "Accueil", "Home").Resolve(lang)},
	}
	if authenticated {
		nav = append(nav,
			NavEntry{Path: "/complaints/new", Label: i18n.T("تقديم شكوى جديدة", "Nouvelle réclamation", "Submit New Complaint").Resolve(lang)},
			NavEntry{Path: "/complaints", Label: i18n.T("متابعة الشكاوى", "Suivi des réclamations", "Track Complaints").Resolve(lang)},
			NavEntry{Path: "/profile", Label: i18n.T("الملف الشخصي", "Profil", "Profile").Resolve(lang)},
		)
	}
	nav = append(nav, NavEntry{Path: "/faq", Label: i18n.T("الأسئلة الشائعة", "FAQ", "FAQ").Resolve(lang)})
	if authenticated && admin {
		nav = append(nav,
			NavEntry{Path: "/admin", Label: i18n.T("لوحة الإدارة", "Tableau d'administration", "Admin Dashboard").Resolve(lang)},
			NavEntry{Path: "/admin/analytics", Label: i18n.T("التحليلات والإحصائيات", "Analyses et statistiques", "Analytics & Statistics").Resolve(lang)},
		)
	}
	return nav
}

// ComplaintCard is the view model for one complaint card: title (shaped for
// Arabic), tracking number, formatted date, status badge and progress.
type ComplaintCard struct {
	ID             int64
	Title          string
	TrackingNumber string
	Date           string
	StatusLabel    string
	BadgeColor     string
	Progress       int
	CategoryLabel  string
	PriorityLabel  string
}

func NewComplaintCard(c complaint.Complaint, lang i18n.Lang) ComplaintCard {
	title := c.Title
	if lang == i18n.Arabic {
		title = i18n.ShapeArabic(title)
	}
	return ComplaintCard{
		ID:             c.ID,
		Title:          title,
		TrackingNumber: c.TrackingNumber,
		Date:           FormatDateTime(c.CreatedAt),
		StatusLabel:    c.Status.Label().Resolve(lang),
		BadgeColor:     c.Status.BadgeColor(),
		Progress:       c.Status.Progress(),
		CategoryLabel:  c.Category.Label().Resolve(lang),
		PriorityLabel:  c.Priority.Label().Resolve(lang),
	}
}

func NewComplaintCards(complaints []complaint.Complaint, lang i18n.Lang) []ComplaintCard {
	cards := make([]ComplaintCard, 0, len(complaints))
	for _, c := range complaints {
		cards = append(cards, NewComplaintCard(c, lang))
	}
	return cards
}

// BasePage carries what every template needs.
type BasePage struct {
	Title         string
	Lang          i18n.Lang
	RTL           bool
	SignedIn      bool
	Admin         bool
	User          *user.User
	Nav           []NavEntry
	Notice        string
	ErrorMessage  string
	AppName       string
	LanguageCodes []i18n.Lang
}

func NewBasePage(title i18n.Text, lang i18n.Lang, u *user.User, admin bool) BasePage {
	return BasePage{
		Title:         title.Resolve(lang),
		Lang:          lang,
		RTL:           lang.RTL(),
		SignedIn:      u != nil,
		Admin:         admin,
		User:          u,
		Nav:           BuildNav(lang, u != nil, admin),
		AppName:       i18n.T("نظام إدارة الشكاوى الحكومية", "Système de gestion des réclamations", "Government Complaints Management System").Resolve(lang),
		LanguageCodes: i18n.All(),
	}
}

// NoticeText maps redirect notice keys to localized strings. Unknown keys
// render nothing.
func NoticeText(key string, lang i18n.Lang) string {
	switch key {
	case "login_ok":
		return i18n.T("تم تسجيل الدخول بنجاح!", "Connexion réussie !", "Login successful!").Resolve(lang)
	case "signup_ok":
		return i18n.T("تم إنشاء الحساب بنجاح! يمكنك الآن تسجيل الدخول.", "Compte créé avec succès ! Vous pouvez maintenant vous connecter.", "Account created successfully! You can now login.").Resolve(lang)
	case "complaint_ok":
		return i18n.T("تم تقديم الشكوى بنجاح", "Réclamation déposée avec succès", "Complaint submitted successfully").Resolve(lang)
	case "status_ok":
		return i18n.T("تم تحديث حالة الشكوى", "Statut de la réclamation mis à jour", "Complaint status updated").Resolve(lang)
	}
	return ""
}
