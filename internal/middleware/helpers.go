package middleware

import (
	"github.com/WINZED31/Baladeya/internal/domain/user"
	"github.com/WINZED31/Baladeya/internal/pkg/i18n"

	"github.com/gin-gonic/gin"
)

const ctxKeyLang = "lang"

// CurrentUser gets the authenticated user from context, if any.
func CurrentUser(c *gin.Context) (*user.User, bool) {
	v, exists := c.Get(ctxKeyUser)
	if !exists {
		return nil, false
	}
	u, ok := v.(*user.User)
	return u, ok
}

// SessionToken gets the validated session token from context, if any.
func SessionToken(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxKeyToken)
	if !exists {
		return "", false
	}
	token, ok := v.(string)
	return token, ok
}

// IsAdmin reports the admin flag computed for this request.
func IsAdmin(c *gin.Context) bool {
	v, exists := c.Get(ctxKeyIsAdmin)
	if !exists {
		return false
	}
	admin, ok := v.(bool)
	return ok && admin
}

// CurrentLang gets the request language set by the Language middleware.
func CurrentLang(c *gin.Context) i18n.Lang {
	v, exists := c.Get(ctxKeyLang)
	if !exists {
		return i18n.Default
	}
	lang, ok := v.(i18n.Lang)
	if !ok {
		return i18n.Default
	}
	return lang
}

// Language resolves the interface language from the lang cookie.
func Language(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		code, _ := c.Cookie(cookieName)
		c.Set(ctxKeyLang, i18n.Parse(code))
		c.Next()
	}
}
