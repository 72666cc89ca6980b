package view

import (
	"testing"
	"time"

	"github.com/WINZED31/Baladeya/internal/domain/complaint"
	"github.com/WINZED31/Baladeya/internal/pkg/i18n"
)

func TestFormatDateTime(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{"2024-05-01T13:45:00", "2024-05-01 13:45"},
		{"2024-05-01T13:45:00Z", "2024-05-01 13:45"},
		{"2024-05-01 13:45:00", "2024-05-01 13:45"},
		{"2024-05-01", "2024-05-01 00:00"},
		{"not-a-date", "not-a-date"},
		{"", ""},
		{time.Date(2024, 5, 1, 13, 45, 0, 0, time.UTC), "2024-05-01 13:45"},
		{42, ""},
	}
	for _, c := range cases {
		if got := FormatDateTime(c.in); got != c.want {
			t.Errorf("FormatDateTime(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func navPaths(entries []NavEntry) map[string]bool {
	paths := make(map[string]bool, len(entries))
	for _, e := range entries {
		paths[e.Path] = true
	}
	return paths
}

func TestBuildNavAnonymous(t *testing.T) {
	paths := navPaths(BuildNav(i18n.English, false, false))

	for _, want := range []string{"/", "/faq"} {
		if !paths[want] {
			t.Errorf("anonymous nav missing %s", want)
		}
	}
	for _, forbidden := range []string{"/complaints", "/profile", "/admin", "/admin/analytics"} {
		if paths[forbidden] {
			t.Errorf("anonymous nav must not contain %s", forbidden)
		}
	}
}

func TestBuildNavCitizen(t *testing.T) {
	paths := navPaths(BuildNav(i18n.English, true, false))

	for _, want := range []string{"/", "/complaints/new", "/complaints", "/profile", "/faq"} {
		if !paths[want] {
			t.Errorf("citizen nav missing %s", want)
		}
	}
	if paths["/admin"] || paths["/admin/analytics"] {
		t.Error("citizen nav must not contain admin entries")
	}
}

func TestBuildNavAdmin(t *testing.T) {
	paths := navPaths(BuildNav(i18n.English, true, true))

	if !paths["/admin"] || !paths["/admin/analytics"] {
		t.Error("admin nav missing admin entries")
	}
}

func TestComplaintCardMapping(t *testing.T) {
	created := time.Date(2024, 5, 1, 13, 45, 0, 0, time.UTC)
	c := complaint.Complaint{
		ID:             9,
		TrackingNumber: "CMP-AB12CD34",
		Title:          "Streetlight out",
		Status:         complaint.StatusProcessing,
		Priority:       complaint.PriorityHigh,
		Category:       complaint.CategoryLighting,
		CreatedAt:      created,
	}

	card := NewComplaintCard(c, i18n.English)
	if card.Title != "Streetlight out" {
		t.Errorf("Title = %q", card.Title)
	}
	if card.Date != "2024-05-01 13:45" {
		t.Errorf("Date = %q", card.Date)
	}
	if card.BadgeColor != "info" {
		t.Errorf("BadgeColor = %q, want info", card.BadgeColor)
	}
	if card.Progress != 75 {
		t.Errorf("Progress = %d, want 75", card.Progress)
	}
	if card.StatusLabel != "Processing" {
		t.Errorf("StatusLabel = %q", card.StatusLabel)
	}
}

func TestComplaintCardShapesArabicTitle(t *testing.T) {
	c := complaint.Complaint{Title: "إنارة معطلة", Status: complaint.StatusPending}

	card := NewComplaintCard(c, i18n.Arabic)
	if card.Title != i18n.ShapeArabic("إنارة معطلة") {
		t.Error("Arabic title should be shaped")
	}

	card = NewComplaintCard(c, i18n.English)
	if card.Title != "إنارة معطلة" {
		t.Error("non-Arabic render keeps the raw title")
	}
}

func TestNoticeText(t *testing.T) {
	if NoticeText("login_ok", i18n.English) != "Login successful!" {
		t.Error("known key should resolve")
	}
	if NoticeText("bogus", i18n.English) != "" {
		t.Error("unknown key should render nothing")
	}
}
