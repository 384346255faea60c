package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/eei/returns-calculator/internal/calculation"
	"github.com/eei/returns-calculator/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.DefaultServerConfig()
	cfg.RateLimit.Requests = 0
	s := NewServer(cfg, calculation.NewEngine(), nil)
	t.Cleanup(s.Close)
	return s
}

func postForm(t *testing.T, h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func franchiseForm() url.Values {
	return url.Values{
		"vehicleCost": {"1000000"},
		"loanRate":    {"10"},
		"topupRate":   {"5"},
		"taxRate":     {"2"},
		"salvageRate": {"20"},
		"years":       {"5"},
	}
}

func investorForm() url.Values {
	return url.Values{
		"invPrincipal": {"100000"},
		"invHighRate":  {"18"},
		"invSafeRate":  {"6"},
		"invYears":     {"3"},
	}
}

func TestPages_Get(t *testing.T) {
	h := newTestServer(t).Handler()
	cases := map[string]string{
		"/":          "/franchise",
		"/franchise": `id="franchiseForm"`,
		"/investors": `id="investorForm"`,
	}
	for path, want := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), want, path)
	}
}

func TestIndex_UnknownPath(t *testing.T) {
	w := httptest.NewRecorder()
	newTestServer(t).Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFranchisePage_Post(t *testing.T) {
	w := postForm(t, newTestServer(t).Handler(), "/franchise", franchiseForm())
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<h3>Illustrative Results</h3>")
	assert.Contains(t, body, "<strong>₹8,25,000</strong>")
	assert.Contains(t, body, "<strong>-₹1,75,000</strong>")
	assert.Contains(t, body, "<strong>-17.5%</strong>")
	assert.Contains(t, body, `value="1000000"`)
}

func TestInvestorPage_Post(t *testing.T) {
	w := postForm(t, newTestServer(t).Handler(), "/investors", investorForm())
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Illustrative Outcome After 3 Years")
	assert.Contains(t, body, "<strong>₹1,64,303</strong>")
	assert.Contains(t, body, "<strong>₹1,19,102</strong>")
}

func TestPage_InvalidInputShowsMessage(t *testing.T) {
	form := franchiseForm()
	form.Set("years", "0")
	w := postForm(t, newTestServer(t).Handler(), "/franchise", form)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), calculation.MsgInvalidFranchise)
	assert.NotContains(t, w.Body.String(), "<h3>")
}

func TestPage_WrongFormIsNoOp(t *testing.T) {
	w := postForm(t, newTestServer(t).Handler(), "/franchise", investorForm())
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "<h3>")
	assert.NotContains(t, w.Body.String(), "Please enter")
}

func TestPage_MethodNotAllowed(t *testing.T) {
	w := httptest.NewRecorder()
	newTestServer(t).Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/investors", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestFragment_Statuses(t *testing.T) {
	h := newTestServer(t).Handler()

	w := postForm(t, h, "/api/investors", investorForm())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "<h3>"))
	assert.NotContains(t, w.Body.String(), "<html")

	bad := investorForm()
	bad.Set("invPrincipal", "abc")
	w = postForm(t, h, "/api/investors", bad)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), calculation.MsgInvalidInvestor)

	w = postForm(t, h, "/api/investors", franchiseForm())
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/franchise", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestFragment_JSON(t *testing.T) {
	w := postForm(t, newTestServer(t).Handler(), "/api/franchise?format=json", franchiseForm())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var decoded struct {
		Heading string `json:"heading"`
		Lines   []struct {
			Key     string `json:"key"`
			Value   string `json:"value"`
			Display string `json:"display"`
			Detail  bool   `json:"detail"`
		} `json:"lines"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	assert.Equal(t, "Illustrative Results", decoded.Heading)
	require.Len(t, decoded.Lines, 9)
	assert.Equal(t, "₹6,25,000", decoded.Lines[0].Display)
	assert.Equal(t, "-3.8% p.a.", decoded.Lines[5].Display)

	interest := decoded.Lines[6]
	assert.Equal(t, "annual_interest", interest.Key)
	assert.Equal(t, "100000", interest.Value)
	assert.True(t, interest.Detail)
}

func TestFragment_ExtremeExponentIsRejected(t *testing.T) {
	h := newTestServer(t).Handler()
	for _, cost := range []string{"1e-5000", "1e-6000000", "-0"} {
		form := franchiseForm()
		form.Set("vehicleCost", cost)

		done := make(chan *httptest.ResponseRecorder, 1)
		go func() { done <- postForm(t, h, "/api/franchise", form) }()
		select {
		case w := <-done:
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code, cost)
			assert.Contains(t, w.Body.String(), calculation.MsgInvalidFranchise, cost)
		case <-time.After(5 * time.Second):
			t.Fatalf("vehicleCost=%s did not complete", cost)
		}
	}
}

func TestFragment_OverlongTermIsOutOfRange(t *testing.T) {
	form := investorForm()
	form.Set("invYears", "99999999999999999999")
	w := postForm(t, newTestServer(t).Handler(), "/api/investors", form)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), calculation.MsgOutOfRange)
}

func TestNewServer_AppliesDisclaimers(t *testing.T) {
	cfg := config.DefaultServerConfig()
	cfg.RateLimit.Requests = 0
	cfg.Disclaimers.Investor = "Capital at risk."
	s := NewServer(cfg, calculation.NewEngine(), nil)
	defer s.Close()
	h := s.Handler()

	w := postForm(t, h, "/investors", investorForm())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<small>Capital at risk.</small>")

	w = postForm(t, h, "/franchise", franchiseForm())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "simplified illustration")
}

func TestFragment_UnknownFormat(t *testing.T) {
	w := postForm(t, newTestServer(t).Handler(), "/api/franchise?format=pdf", franchiseForm())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFragment_Idempotent(t *testing.T) {
	h := newTestServer(t).Handler()
	a := postForm(t, h, "/api/franchise", franchiseForm()).Body.String()
	b := postForm(t, h, "/api/franchise", franchiseForm()).Body.String()
	assert.Equal(t, a, b)
}

func TestRateLimit(t *testing.T) {
	cfg := config.DefaultServerConfig()
	cfg.RateLimit.Requests = 2
	cfg.RateLimit.Window = time.Hour
	s := NewServer(cfg, nil, nil)
	defer s.Close()
	h := s.Handler()

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, postForm(t, h, "/api/investors", investorForm()).Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, postForm(t, h, "/api/investors", investorForm()).Code)
}

func TestRun_StopsOnCancel(t *testing.T) {
	cfg := config.DefaultServerConfig()
	cfg.Addr = "127.0.0.1:0"
	s := NewServer(cfg, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
