package complaint

import "testing"

func TestStatusProgress(t *testing.T) {
	cases := map[Status]int{
		StatusPending:    25,
		StatusProcessing: 75,
		StatusResolved:   100,
		StatusRejected:   100,
		Status("bogus"):  0,
	}
	for status, want := range cases {
		if got := status.Progress(); got != want {
			t.Errorf("Progress(%s) = %d, want %d", status, got, want)
		}
	}
}

func TestStatusBadgeColor(t *testing.T) {
	cases := map[Status]string{
		StatusPending:    "warning",
		StatusProcessing: "info",
		StatusResolved:   "success",
		StatusRejected:   "danger",
		Status("bogus"):  "secondary",
	}
	for status, want := range cases {
		if got := status.BadgeColor(); got != want {
			t.Errorf("BadgeColor(%s) = %q, want %q", status, got, want)
		}
	}
}

func TestStatusOpen(t *testing.T) {
	if !StatusPending.Open() || !StatusProcessing.Open() {
		t.Error("pending and processing should count as open")
	}
	if StatusResolved.Open() || StatusRejected.Open() {
		t.Error("terminal statuses should not count as open")
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range Statuses {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if Status("closed").Valid() {
		t.Error("unknown status should be invalid")
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		if !c.Valid() {
			t.Errorf("%s should be valid", c)
		}
	}
	if Category("misc").Valid() {
		t.Error("unknown category should be invalid")
	}
}
