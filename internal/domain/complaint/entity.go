package complaint

import (
	"time"

	"github.com/WINZED31/Baladeya/internal/pkg/i18n"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusResolved   Status = "resolved"
	StatusRejected   Status = "rejected"
)

// Statuses lists the complaint life-cycle states in triage order.
var Statuses = []Status{StatusPending, StatusProcessing, StatusResolved, StatusRejected}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusResolved, StatusRejected:
		return true
	}
	return false
}

// Open reports whether the complaint still awaits administrator action.
func (s Status) Open() bool {
	return s == StatusPending || s == StatusProcessing
}

// Progress returns the determinate progress percentage shown under a
// complaint card. A rejected complaint renders a full bar: it is terminal,
// nothing further is pending.
func (s Status) Progress() int {
	switch s {
	case StatusPending:
		return 25
	case StatusProcessing:
		return 75
	case StatusResolved, StatusRejected:
		return 100
	}
	return 0
}

// BadgeColor returns the badge color class for the status.
func (s Status) BadgeColor() string {
	switch s {
	case StatusPending:
		return "warning"
	case StatusProcessing:
		return "info"
	case StatusResolved:
		return "success"
	case StatusRejected:
		return "danger"
	}
	return "secondary"
}

func (s Status) Label() i18n.Text {
	switch s {
	case StatusPending:
		return i18n.T("قيد الانتظار", "En attente", "Pending")
	case StatusProcessing:
		return i18n.T("قيد المعالجة", "En traitement", "Processing")
	case StatusResolved:
		return i18n.T("تم الحل", "Résolue", "Resolved")
	case StatusRejected:
		return i18n.T("مرفوضة", "Rejetée", "Rejected")
	}
	return i18n.T(string(s), string(s), string(s))
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

func (p Priority) Label() i18n.Text {
	switch p {
	case PriorityLow:
		return i18n.T("منخفضة", "Basse", "Low")
	case PriorityMedium:
		return i18n.T("متوسطة", "Moyenne", "Medium")
	case PriorityHigh:
		return i18n.T("عالية", "Haute", "High")
	case PriorityUrgent:
		return i18n.T("عاجلة", "Urgente", "Urgent")
	}
	return i18n.T(string(p), string(p), string(p))
}

type Category string

const (
	CategoryRoads       Category = "roads"
	CategoryWater       Category = "water"
	CategoryElectricity Category = "electricity"
	CategoryWaste       Category = "waste"
	CategoryLighting    Category = "lighting"
	CategoryParks       Category = "parks"
	CategoryTransport   Category = "transport"
	CategoryOther       Category = "other"
)

var Categories = []Category{
	CategoryRoads, CategoryWater, CategoryElectricity, CategoryWaste,
	CategoryLighting, CategoryParks, CategoryTransport, CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) Label() i18n.Text {
	switch c {
	case CategoryRoads:
		return i18n.T("الطرقات", "Voirie", "Roads")
	case CategoryWater:
		return i18n.T("المياه", "Eau", "Water")
	case CategoryElectricity:
		return i18n.T("الكهرباء", "Électricité", "Electricity")
	case CategoryWaste:
		return i18n.T("النفايات", "Déchets", "Waste")
	case CategoryLighting:
		return i18n.T("الإنارة العمومية", "Éclairage public", "Public Lighting")
	case CategoryParks:
		return i18n.T("الحدائق والمساحات الخضراء", "Espaces verts", "Parks & Green Spaces")
	case CategoryTransport:
		return i18n.T("النقل", "Transport", "Transport")
	case CategoryOther:
		return i18n.T("أخرى", "Autre", "Other")
	}
	return i18n.T(string(c), string(c), string(c))
}

type Complaint struct {
	ID             int64     `json:"id"`
	TrackingNumber string    `json:"tracking_number"`
	UserID         int64     `json:"user_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       Category  `json:"category"`
	Wilaya         string    `json:"wilaya"`
	Status         Status    `json:"status"`
	Priority       Priority  `json:"priority"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
