package pages

import (
	"net/http"
	"strconv"

	"github.com/WINZED31/Baladeya/internal/domain/complaint"
	"github.com/WINZED31/Baladeya/internal/handlers/view"
	"github.com/WINZED31/Baladeya/internal/metrics"
	"github.com/WINZED31/Baladeya/internal/middleware"
	xerrors "github.com/WINZED31/Baladeya/internal/pkg/errors"
	"github.com/WINZED31/Baladeya/internal/pkg/i18n"
	"github.com/WINZED31/Baladeya/internal/pkg/response"
	"github.com/WINZED31/Baladeya/internal/service/analysis"
	"github.com/WINZED31/Baladeya/internal/service/auth"
	complaintsvc "github.com/WINZED31/Baladeya/internal/service/complaint"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("wilaya", func(fl validator.FieldLevel) bool {
			return i18n.WilayaKnown(fl.Field().String())
		})
	}
}

type Handler struct {
	authService *auth.Service
	complaints  *complaintsvc.Service
	analyzer    analysis.Analyzer
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

func NewHandler(authService *auth.Service, complaints *complaintsvc.Service, analyzer analysis.Analyzer, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{
		authService: authService,
		complaints:  complaints,
		analyzer:    analyzer,
		metrics:     m,
		logger:      logger,
	}
}

func (h *Handler) countRender(page string) {
	if h.metrics != nil {
		h.metrics.PageRenders.WithLabelValues(page).Inc()
	}
}

type homePage struct {
	view.BasePage
	Description string
	Dashboard   *complaint.Dashboard
	Recent      []view.ComplaintCard
	ShowSignup  bool
}

// Home renders the dashboard for authenticated users and the login/signup
// entry for everyone else.
func (h *Handler) Home(c *gin.Context) {
	lang := middleware.CurrentLang(c)
	u, signedIn := middleware.CurrentUser(c)
	admin := middleware.IsAdmin(c)

	page := homePage{
		BasePage: view.NewBasePage(
			i18n.T("نظام إدارة الشكاوى الحكومية", "Système de gestion des réclamations", "Government Complaints Management System"),
			lang, u, admin,
		),
		Description: i18n.T(
			"مرحبًا بكم في نظام إدارة الشكاوى الحكومية. يتيح هذا النظام للمواطنين تقديم شكاواهم المتعلقة بالخدمات البلدية ومتابعة حالتها.",
			"Bienvenue dans le système de gestion des réclamations. Les citoyens peuvent déposer des réclamations sur les services municipaux et suivre leur traitement.",
			"Welcome to the Government Complaints Management System. Citizens can submit complaints about municipal services and track their status.",
		).Resolve(lang),
		ShowSignup: c.Query("signup") == "1",
	}
	page.Notice = view.NoticeText(c.Query("notice"), lang)

	if !signedIn {
		h.countRender("home_anonymous")
		c.HTML(http.StatusOK, "home.tmpl", page)
		return
	}

	h.authService.UpdateUserActivity(c.Request.Context(), u.ID)

	dashboard, err := h.complaints.Dashboard(c.Request.Context(), u.ID)
	if err != nil {
		h.logger.Error("failed to build dashboard", zap.Int64("user_id", u.ID), zap.Error(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	page.Dashboard = dashboard
	page.Recent = view.NewComplaintCards(dashboard.Recent, lang)

	h.countRender("home")
	c.HTML(http.StatusOK, "home.tmpl", page)
}

type selectOption struct {
	Value string
	Label string
}

type complaintFormPage struct {
	view.BasePage
	Wilayas    []string
	Categories []selectOption
	Priorities []selectOption
	Form       complaint.CreateRequest
}

func categoryOptions(lang i18n.Lang) []selectOption {
	options := make([]selectOption, 0, len(complaint.Categories))
	for _, category := range complaint.Categories {
		options = append(options, selectOption{Value: string(category), Label: category.Label().Resolve(lang)})
	}
	return options
}

func priorityOptions(lang i18n.Lang) []selectOption {
	options := make([]selectOption, 0, len(complaint.Priorities))
	for _, priority := range complaint.Priorities {
		options = append(options, selectOption{Value: string(priority), Label: priority.Label().Resolve(lang)})
	}
	return options
}

func (h *Handler) complaintFormPage(c *gin.Context, form complaint.CreateRequest) complaintFormPage {
	lang := middleware.CurrentLang(c)
	u, _ := middleware.CurrentUser(c)
	return complaintFormPage{
		BasePage:   view.NewBasePage(i18n.T("تقديم شكوى جديدة", "Nouvelle réclamation", "Submit New Complaint"), lang, u, middleware.IsAdmin(c)),
		Wilayas:    i18n.Wilayas,
		Categories: categoryOptions(lang),
		Priorities: priorityOptions(lang),
		Form:       form,
	}
}

// ComplaintForm renders the new-complaint page.
func (h *Handler) ComplaintForm(c *gin.Context) {
	h.countRender("complaint_form")
	c.HTML(http.StatusOK, "complaint_form.tmpl", h.complaintFormPage(c, complaint.CreateRequest{}))
}

// SubmitComplaint files the complaint and redirects to its detail page.
func (h *Handler) SubmitComplaint(c *gin.Context) {
	lang := middleware.CurrentLang(c)
	u, _ := middleware.CurrentUser(c)

	var req complaint.CreateRequest
	if err := c.ShouldBind(&req); err != nil {
		page := h.complaintFormPage(c, req)
		page.ErrorMessage = i18n.T("يرجى إدخال جميع المعلومات المطلوبة", "Veuillez renseigner tous les champs requis", "Please enter all required information").Resolve(lang)
		c.HTML(http.StatusBadRequest, "complaint_form.tmpl", page)
		return
	}

	// Suggest a priority when the citizen left the select empty.
	if req.Priority == "" && h.analyzer != nil {
		if suggestion, err := h.analyzer.Analyze(c.Request.Context(), req.Description); err == nil {
			req.Priority = string(suggestion.Priority)
		}
	}

	created, err := h.complaints.Create(c.Request.Context(), u.ID, &req)
	if err != nil {
		page := h.complaintFormPage(c, req)
		page.ErrorMessage = i18n.T("تعذر تقديم الشكوى. يرجى التحقق من الحقول.", "Impossible de déposer la réclamation. Vérifiez les champs.", "Could not submit the complaint. Check the fields.").Resolve(lang)
		c.HTML(http.StatusBadRequest, "complaint_form.tmpl", page)
		return
	}

	c.Redirect(http.StatusSeeOther, "/complaints/"+strconv.FormatInt(created.ID, 10)+"?notice=complaint_ok")
}

type trackerPage struct {
	view.BasePage
	Cards    []view.ComplaintCard
	Selected *complaintDetail
}

type complaintDetail struct {
	view.ComplaintCard
	Description string
	Wilaya      string
	Updated     string
}

// Tracker lists the user's complaints, newest first.
func (h *Handler) Tracker(c *gin.Context) {
	lang := middleware.CurrentLang(c)
	u, _ := middleware.CurrentUser(c)

	complaints, err := h.complaints.List(c.Request.Context(), u.ID)
	if err != nil {
		h.logger.Error("failed to list complaints", zap.Int64("user_id", u.ID), zap.Error(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	page := trackerPage{
		BasePage: view.NewBasePage(i18n.T("متابعة الشكاوى", "Suivi des réclamations", "Track Complaints"), lang, u, middleware.IsAdmin(c)),
		Cards:    view.NewComplaintCards(complaints, lang),
	}
	page.Notice = view.NoticeText(c.Query("notice"), lang)

	h.countRender("complaints_tracker")
	c.HTML(http.StatusOK, "tracker.tmpl", page)
}

// ComplaintDetails renders one complaint with its full description.
func (h *Handler) ComplaintDetails(c *gin.Context) {
	lang := middleware.CurrentLang(c)
	u, _ := middleware.CurrentUser(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/complaints")
		return
	}

	found, err := h.complaints.Get(c.Request.Context(), id, u.ID, middleware.IsAdmin(c))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/complaints")
		return
	}

	description := found.Description
	if lang == i18n.Arabic {
		description = i18n.ShapeArabic(description)
	}

	page := trackerPage{
		BasePage: view.NewBasePage(i18n.T("تفاصيل الشكوى", "Détails de la réclamation", "Complaint Details"), lang, u, middleware.IsAdmin(c)),
		Selected: &complaintDetail{
			ComplaintCard: view.NewComplaintCard(*found, lang),
			Description:   description,
			Wilaya:        found.Wilaya,
			Updated:       view.FormatDateTime(found.UpdatedAt),
		},
	}
	page.Notice = view.NoticeText(c.Query("notice"), lang)

	h.countRender("complaint_details")
	c.HTML(http.StatusOK, "tracker.tmpl", page)
}

type profilePage struct {
	view.BasePage
	Joined     string
	LastActive string
}

// Profile renders the account page.
func (h *Handler) Profile(c *gin.Context) {
	lang := middleware.CurrentLang(c)
	u, _ := middleware.CurrentUser(c)

	page := profilePage{
		BasePage:   view.NewBasePage(i18n.T("الملف الشخصي", "Profil", "Profile"), lang, u, middleware.IsAdmin(c)),
		Joined:     view.FormatDateTime(u.CreatedAt),
		LastActive: view.FormatDateTime(u.LastActiveAt),
	}
	h.countRender("profile")
	c.HTML(http.StatusOK, "profile.tmpl", page)
}

type faqPage struct {
	view.BasePage
	Entries []faqEntry
}

type faqEntry struct {
	Question string
	Answer   string
}

// FAQ renders the static help page.
func (h *Handler) FAQ(c *gin.Context) {
	lang := middleware.CurrentLang(c)
	u, _ := middleware.CurrentUser(c)

	entries := []faqEntry{
		{
			Question: i18n.T("كيف أقدم شكوى؟", "Comment déposer une réclamation ?", "How do I submit a complaint?").Resolve(lang),
			Answer:   i18n.T("أنشئ حسابًا ثم استخدم زر تقديم شكوى جديدة.", "Créez un compte puis utilisez le bouton Nouvelle réclamation.", "Create an account, then use the Submit New Complaint button.").Resolve(lang),
		},
		{
			Question: i18n.T("كيف أتابع حالة شكواي؟", "Comment suivre ma réclamation ?", "How do I track my complaint?").Resolve(lang),
			Answer:   i18n.T("تظهر كل شكاواك مع حالتها في صفحة متابعة الشكاوى.", "Toutes vos réclamations et leur statut figurent dans la page de suivi.", "All your complaints and their statuses appear on the tracking page.").Resolve(lang),
		},
		{
			Question: i18n.T("ما معنى رقم التتبع؟", "À quoi sert le numéro de suivi ?", "What is the tracking number for?").Resolve(lang),
			Answer:   i18n.T("رقم مرجعي فريد لكل شكوى يمكنك ذكره عند التواصل مع البلدية.", "Une référence unique à mentionner lors de tout échange avec la commune.", "A unique reference to quote in any exchange with the municipality.").Resolve(lang),
		},
	}

	page := faqPage{
		BasePage: view.NewBasePage(i18n.T("الأسئلة الشائعة", "FAQ", "FAQ"), lang, u, middleware.IsAdmin(c)),
		Entries:  entries,
	}
	h.countRender("faq")
	c.HTML(http.StatusOK, "faq.tmpl", page)
}

type adminPage struct {
	view.BasePage
	Cards    []view.ComplaintCard
	Statuses []selectOption
}

// Admin renders the triage dashboard with every complaint.
func (h *Handler) Admin(c *gin.Context) {
	lang := middleware.CurrentLang(c)
	u, _ := middleware.CurrentUser(c)

	complaints, err := h.complaints.ListAll(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list all complaints", zap.Error(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	statuses := make([]selectOption, 0, len(complaint.Statuses))
	for _, status := range complaint.Statuses {
		statuses = append(statuses, selectOption{Value: string(status), Label: status.Label().Resolve(lang)})
	}

	page := adminPage{
		BasePage: view.NewBasePage(i18n.T("لوحة الإدارة", "Tableau d'administration", "Admin Dashboard"), lang, u, true),
		Cards:    view.NewComplaintCards(complaints, lang),
		Statuses: statuses,
	}
	page.Notice = view.NoticeText(c.Query("notice"), lang)

	h.countRender("admin")
	c.HTML(http.StatusOK, "admin.tmpl", page)
}

// UpdateStatus moves a complaint to the posted status.
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	status := complaint.Status(c.PostForm("status"))
	if err := h.complaints.SetStatus(c.Request.Context(), id, status); err != nil {
		if xerrors.Is(err, xerrors.ErrInvalidInput) || xerrors.Is(err, xerrors.ErrNotFound) {
			c.Redirect(http.StatusSeeOther, "/admin")
			return
		}
		h.logger.Error("failed to update status", zap.Int64("complaint_id", id), zap.Error(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin?notice=status_ok")
}

type analyticsPage struct {
	view.BasePage
	Total    int
	ByStatus []analyticsRow
	ByCat    []analyticsRow
}

type analyticsRow struct {
	Label string
	Count int
}

// Analytics renders corpus-wide statistics.
func (h *Handler) Analytics(c *gin.Context) {
	lang := middleware.CurrentLang(c)
	u, _ := middleware.CurrentUser(c)

	stats, err := h.complaints.Analytics(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to compute analytics", zap.Error(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	page := analyticsPage{
		BasePage: view.NewBasePage(i18n.T("التحليلات والإحصائيات", "Analyses et statistiques", "Analytics & Statistics"), lang, u, true),
		Total:    stats.Total,
	}
	for _, status := range complaint.Statuses {
		page.ByStatus = append(page.ByStatus, analyticsRow{
			Label: status.Label().Resolve(lang),
			Count: stats.ByStatus[status],
		})
	}
	for _, category := range complaint.Categories {
		if n := stats.ByCategory[category]; n > 0 {
			page.ByCat = append(page.ByCat, analyticsRow{
				Label: category.Label().Resolve(lang),
				Count: n,
			})
		}
	}

	h.countRender("analytics")
	c.HTML(http.StatusOK, "analytics.tmpl", page)
}

// AnalyticsData serves the same aggregates as JSON for dashboards.
func (h *Handler) AnalyticsData(c *gin.Context) {
	stats, err := h.complaints.Analytics(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to compute analytics", err)
		return
	}
	response.Success(c, http.StatusOK, "analytics", stats)
}
