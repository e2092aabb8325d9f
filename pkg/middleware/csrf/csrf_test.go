package csrf

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, cfg Config, req *http.Request) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := Middleware(cfg)(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)
	return rec, err
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	return he.Code
}

func TestMiddleware_SafeMethodIssuesToken(t *testing.T) {
	t.Parallel()
	rec, err := serve(t, Config{}, httptest.NewRequest(http.MethodGet, "http://example.com/", nil))
	require.NoError(t, err)

	token := rec.Header().Get("X-CSRF-Token")
	assert.NotEmpty(t, token)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "XSRF-TOKEN", cookies[0].Name)
	assert.Equal(t, token, cookies[0].Value)
}

func TestMiddleware_UnsafeMethod(t *testing.T) {
	t.Parallel()
	cfg := Config{EnforceSameOrigin: true}

	newReq := func(header string, origin string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "http://example.com/api", nil)
		req.AddCookie(&http.Cookie{Name: "XSRF-TOKEN", Value: "tok"})
		if origin != "" {
			req.Header.Set("Origin", origin)
		}
		if header != "" {
			req.Header.Set("X-CSRF-Token", header)
		}
		return req
	}

	_, err := serve(t, cfg, newReq("tok", "http://example.com"))
	assert.NoError(t, err)

	_, err = serve(t, cfg, newReq("", "http://example.com"))
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))

	_, err = serve(t, cfg, newReq("other", "http://example.com"))
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))

	_, err = serve(t, cfg, newReq("tok", "http://evil.test"))
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))

	_, err = serve(t, cfg, newReq("tok", ""))
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))
}

func TestCookieSessionOnly(t *testing.T) {
	t.Parallel()
	cfg := Config{Skipper: CookieSessionOnly("accessToken")}

	bearer := httptest.NewRequest(http.MethodPost, "http://example.com/api", nil)
	bearer.Header.Set(echo.HeaderAuthorization, "Bearer abc")
	bearer.AddCookie(&http.Cookie{Name: "accessToken", Value: "x"})
	_, err := serve(t, cfg, bearer)
	assert.NoError(t, err)

	anonymous := httptest.NewRequest(http.MethodPost, "http://example.com/api", nil)
	_, err = serve(t, cfg, anonymous)
	assert.NoError(t, err)

	cookie := httptest.NewRequest(http.MethodPost, "http://example.com/api", nil)
	cookie.AddCookie(&http.Cookie{Name: "accessToken", Value: "x"})
	_, err = serve(t, cfg, cookie)
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))
}
