package auth

import (
	"net/http"
	"time"

	"github.com/WINZED31/Baladeya/internal/domain/user"
	"github.com/WINZED31/Baladeya/internal/handlers/view"
	"github.com/WINZED31/Baladeya/internal/metrics"
	"github.com/WINZED31/Baladeya/internal/middleware"
	xerrors "github.com/WINZED31/Baladeya/internal/pkg/errors"
	"github.com/WINZED31/Baladeya/internal/pkg/i18n"
	authsvc "github.com/WINZED31/Baladeya/internal/service/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc        *authsvc.Service
	cookieName string
	langCookie string
	sessionTTL time.Duration
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

func NewHandler(svc *authsvc.Service, cookieName, langCookie string, sessionTTL time.Duration, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{
		svc:        svc,
		cookieName: cookieName,
		langCookie: langCookie,
		sessionTTL: sessionTTL,
		metrics:    m,
		logger:     logger,
	}
}

type loginPage struct {
	view.BasePage
	ShowSignup bool
	Username   string
	Signup     user.SignupRequest
}

func (h *Handler) loginPage(c *gin.Context, showSignup bool) loginPage {
	lang := middleware.CurrentLang(c)
	title := i18n.T("تسجيل الدخول", "Connexion", "Sign In")
	if showSignup {
		title = i18n.T("إنشاء حساب", "Créer un compte", "Create Account")
	}
	page := loginPage{
		BasePage:   view.NewBasePage(title, lang, nil, false),
		ShowSignup: showSignup,
	}
	page.Notice = view.NoticeText(c.Query("notice"), lang)
	return page
}

// LoginPage renders the sign-in form, or the signup form with ?signup=1.
// Already-authenticated visitors are sent home.
func (h *Handler) LoginPage(c *gin.Context) {
	if _, signedIn := middleware.CurrentUser(c); signedIn {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.HTML(http.StatusOK, "login.tmpl", h.loginPage(c, c.Query("signup") == "1"))
}

func (h *Handler) countLogin(status string) {
	if h.metrics != nil {
		h.metrics.LoginAttempts.WithLabelValues(status).Inc()
	}
}

// Login authenticates the posted credentials and starts a session.
func (h *Handler) Login(c *gin.Context) {
	lang := middleware.CurrentLang(c)

	var req user.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.countLogin("invalid")
		page := h.loginPage(c, false)
		page.ErrorMessage = i18n.T("يرجى إدخال اسم المستخدم وكلمة المرور", "Veuillez saisir le nom d'utilisateur et le mot de passe", "Please enter a username and password").Resolve(lang)
		c.HTML(http.StatusBadRequest, "login.tmpl", page)
		return
	}

	_, token, err := h.svc.Login(c.Request.Context(), req.Username, req.Password, c.ClientIP())
	if err != nil {
		page := h.loginPage(c, false)
		page.Username = req.Username
		switch {
		case xerrors.Is(err, xerrors.ErrRateLimited):
			h.countLogin("rate_limited")
			page.ErrorMessage = i18n.T("محاولات كثيرة جدًا. يرجى المحاولة لاحقًا.", "Trop de tentatives. Réessayez plus tard.", "Too many attempts. Try again later.").Resolve(lang)
			c.HTML(http.StatusTooManyRequests, "login.tmpl", page)
		case xerrors.Is(err, xerrors.ErrBadCredentials):
			h.countLogin("failure")
			page.ErrorMessage = i18n.T("اسم المستخدم أو كلمة المرور غير صحيحة", "Nom d'utilisateur ou mot de passe incorrect", "Incorrect username or password").Resolve(lang)
			c.HTML(http.StatusUnauthorized, "login.tmpl", page)
		default:
			h.countLogin("error")
			h.logger.Error("login failed", zap.String("username", req.Username), zap.Error(err))
			page.ErrorMessage = i18n.T("حدث خطأ غير متوقع. يرجى المحاولة مرة أخرى.", "Une erreur inattendue s'est produite. Réessayez.", "An unexpected error occurred. Please try again.").Resolve(lang)
			c.HTML(http.StatusInternalServerError, "login.tmpl", page)
		}
		return
	}

	h.countLogin("success")
	c.SetCookie(h.cookieName, token, int(h.sessionTTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/?notice=login_ok")
}

// Signup creates an account and sends the citizen to the sign-in form.
func (h *Handler) Signup(c *gin.Context) {
	lang := middleware.CurrentLang(c)

	var req user.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		page := h.loginPage(c, true)
		page.Signup = req
		page.ErrorMessage = i18n.T("يرجى إدخال جميع المعلومات المطلوبة", "Veuillez renseigner tous les champs requis", "Please enter all required information").Resolve(lang)
		c.HTML(http.StatusBadRequest, "login.tmpl", page)
		return
	}

	if _, err := h.svc.Signup(c.Request.Context(), &req); err != nil {
		page := h.loginPage(c, true)
		page.Signup = req
		switch {
		case xerrors.Is(err, xerrors.ErrInvalidEmail):
			page.ErrorMessage = i18n.T("البريد الإلكتروني غير صالح", "Adresse e-mail invalide", "Invalid email address").Resolve(lang)
		case xerrors.Is(err, xerrors.ErrInvalidPhone):
			page.ErrorMessage = i18n.T("رقم الهاتف غير صالح", "Numéro de téléphone invalide", "Invalid phone number").Resolve(lang)
		case xerrors.Is(err, xerrors.ErrDuplicateEntry):
			page.ErrorMessage = i18n.T("اسم المستخدم أو البريد الإلكتروني مستخدم بالفعل", "Nom d'utilisateur ou e-mail déjà utilisé", "Username or email already in use").Resolve(lang)
		case xerrors.Is(err, xerrors.ErrInvalidInput):
			page.ErrorMessage = i18n.T("يرجى إدخال جميع المعلومات المطلوبة", "Veuillez renseigner tous les champs requis", "Please enter all required information").Resolve(lang)
		default:
			h.logger.Error("signup failed", zap.String("username", req.Username), zap.Error(err))
			page.ErrorMessage = i18n.T("حدث خطأ غير متوقع. يرجى المحاولة مرة أخرى.", "Une erreur inattendue s'est produite. Réessayez.", "An unexpected error occurred. Please try again.").Resolve(lang)
			c.HTML(http.StatusInternalServerError, "login.tmpl", page)
			return
		}
		c.HTML(http.StatusBadRequest, "login.tmpl", page)
		return
	}

	c.Redirect(http.StatusSeeOther, "/login?notice=signup_ok")
}

// Logout ends the session. The cookie is purged even when the store call
// cannot find the session.
func (h *Handler) Logout(c *gin.Context) {
	if token, ok := middleware.SessionToken(c); ok {
		h.svc.Logout(c.Request.Context(), token)
	}
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}

// Language switches the interface language and returns to the referring page.
func (h *Handler) Language(c *gin.Context) {
	lang := i18n.Parse(c.PostForm("lang"))
	c.SetCookie(h.langCookie, string(lang), int((365 * 24 * time.Hour).Seconds()), "/", "", false, false)

	target := c.Request.Referer()
	if target == "" {
		target = "/"
	}
	c.Redirect(http.StatusSeeOther, target)
}
