package http

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	themeUC "github.com/gobindapaudel/portfolio/internal/application/usecase/theme"
	"github.com/gobindapaudel/portfolio/internal/domain/theme"
	"github.com/gobindapaudel/portfolio/pkg/logger"
)

const (
	GinContextKeyTheme = "theme"

	HeaderPrefersColorScheme = "Sec-CH-Prefers-Color-Scheme"

	themeCookieMaxAge = 365 * 24 * 60 * 60
)

// cookieStorage persists the theme preference in a cookie. Values written
// during the request are visible to later reads of the same request.
type cookieStorage struct {
	c       *gin.Context
	written map[string]string
}

func newCookieStorage(c *gin.Context) *cookieStorage {
	return &cookieStorage{c: c, written: map[string]string{}}
}

func (s *cookieStorage) Get(key string) (string, bool, error) {
	if v, ok := s.written[key]; ok {
		return v, true, nil
	}
	v, err := s.c.Cookie(key)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

func (s *cookieStorage) Set(key, value string) error {
	s.written[key] = value
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, value, themeCookieMaxAge, "/", "", s.c.Request.TLS != nil, false)
	return nil
}

// clientHintScheme reads the OS colour scheme from the request's client hint.
// A request cannot change mid-flight, so there is nothing to subscribe to.
type clientHintScheme struct {
	prefersDark bool
}

func newClientHintScheme(r *http.Request) clientHintScheme {
	v := strings.Trim(strings.TrimSpace(r.Header.Get(HeaderPrefersColorScheme)), `"`)
	return clientHintScheme{prefersDark: strings.EqualFold(v, "dark")}
}

func (s clientHintScheme) PrefersDark() bool { return s.prefersDark }

func (clientHintScheme) Subscribe(func(bool)) func() { return func() {} }

// ThemeMiddleware mounts a theme controller for the request and asks the
// browser to send its colour scheme hint on subsequent requests.
func ThemeMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Accept-CH", HeaderPrefersColorScheme)
		h.Set("Critical-CH", HeaderPrefersColorScheme)
		h.Add("Vary", HeaderPrefersColorScheme)

		ctrl := themeUC.NewController(newCookieStorage(c), newClientHintScheme(c.Request), nil, log)
		ctrl.Mount()
		defer ctrl.Close()

		c.Set(GinContextKeyTheme, ctrl)
		c.Next()
	}
}

func themeControllerFromContext(c *gin.Context) (*themeUC.Controller, bool) {
	v, ok := c.Get(GinContextKeyTheme)
	if !ok {
		return nil, false
	}
	ctrl, ok := v.(*themeUC.Controller)
	return ctrl, ok
}

// themeSnapshot is unmounted (and therefore light) when no controller ran.
func themeSnapshot(c *gin.Context) theme.Snapshot {
	if ctrl, ok := themeControllerFromContext(c); ok {
		return ctrl.State().Snapshot()
	}
	return theme.NewState().Snapshot()
}

type ThemeHandler struct {
	logger logger.Logger
}

func NewThemeHandler(log logger.Logger) *ThemeHandler {
	return &ThemeHandler{logger: log}
}

// Toggle advances the preference and sends the visitor back where they came from.
func (h *ThemeHandler) Toggle(c *gin.Context) {
	ctrl, ok := themeControllerFromContext(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	ctrl.Advance()
	c.Redirect(http.StatusSeeOther, sameSiteReferer(c.Request))
}

func (h *ThemeHandler) ToggleAPI(c *gin.Context) {
	if ctrl, ok := themeControllerFromContext(c); ok {
		ctrl.Advance()
	}
	c.JSON(http.StatusOK, ToThemeDTO(themeSnapshot(c)))
}

func (h *ThemeHandler) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, ToThemeDTO(themeSnapshot(c)))
}

// sameSiteReferer returns the Referer's path when it points at this host,
// otherwise "/".
func sameSiteReferer(r *http.Request) string {
	ref := r.Referer()
	if ref == "" {
		return "/"
	}
	u, err := url.Parse(ref)
	if err != nil || u.Host != r.Host {
		return "/"
	}
	target := u.EscapedPath()
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return "/"
	}
	if u.RawQuery != "" {
		target += "?" + u.RawQuery
	}
	if u.Fragment != "" {
		target += "#" + u.EscapedFragment()
	}
	return target
}
