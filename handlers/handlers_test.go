package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvl-uiux/portfolio/config"
	"github.com/dvl-uiux/portfolio/contact"
	"github.com/dvl-uiux/portfolio/content"
	"github.com/dvl-uiux/portfolio/db"
	"github.com/dvl-uiux/portfolio/images"
	"github.com/dvl-uiux/portfolio/page"
)

type harness struct {
	app   *fiber.App
	pages *page.Store
}

func newHarness(t *testing.T, sender contact.Sender) *harness {
	t.Helper()
	return newHarnessWithTTL(t, sender, time.Hour)
}

func newHarnessWithTTL(t *testing.T, sender contact.Sender, ttl time.Duration) *harness {
	t.Helper()
	doc, err := content.Default()
	require.NoError(t, err)

	pages, err := page.NewStore(ttl)
	require.NoError(t, err)
	t.Cleanup(pages.Close)

	renderer, err := images.NewRenderer(t.TempDir())
	require.NoError(t, err)

	app := fiber.New(AppConfig(config.ServerConfig{}))
	New(pages, content.NewSource(doc), sender, renderer, time.Second).Routes(app, nil)
	return &harness{app: app, pages: pages}
}

func okSender() contact.Sender {
	return contact.SenderFunc(func(ctx context.Context, msg contact.Message) error { return nil })
}

var pageIDPattern = regexp.MustCompile(`data-page-id="([^"]+)"`)

// mount loads the page and returns its id.
func (h *harness) mount(t *testing.T) string {
	t.Helper()
	resp, err := h.app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	m := pageIDPattern.FindStringSubmatch(string(body))
	require.Len(t, m, 2, "page id in body")
	return m[1]
}

func (h *harness) session(t *testing.T, id string) *page.Session {
	t.Helper()
	s, ok := h.pages.Get(id)
	require.True(t, ok)
	return s
}

func (h *harness) postForm(t *testing.T, id, path string, form url.Values) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if id != "" {
		req.Header.Set(HeaderPageID, id)
	}
	return h.do(t, req)
}

func (h *harness) postJSON(t *testing.T, id, path string, v any) (*http.Response, string) {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(string(b)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderPageID, id)
	return h.do(t, req)
}

func (h *harness) do(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := h.app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestHome(t *testing.T) {
	h := newHarness(t, okSender())
	resp, body := h.do(t, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Kelvin Adegbemisola Sanni")
	assert.Contains(t, body, `id="projects-grid"`)
	assert.Contains(t, body, `id="contact-form"`)
	assert.Contains(t, body, "Send Message")
}

func TestHome_EachLoadIsANewPage(t *testing.T) {
	h := newHarness(t, okSender())
	assert.NotEqual(t, h.mount(t), h.mount(t))
}

func TestPageEvents_RequireMountedPage(t *testing.T) {
	h := newHarness(t, okSender())

	resp, body := h.postForm(t, "", "/nav/menu", nil)
	assert.Equal(t, http.StatusGone, resp.StatusCode)
	assert.Contains(t, body, "expired")

	resp, _ = h.postForm(t, "no-such-page", "/nav/menu", nil)
	assert.Equal(t, http.StatusGone, resp.StatusCode)
}

func TestUnmount(t *testing.T) {
	h := newHarness(t, okSender())
	id := h.mount(t)
	s := h.session(t, id)

	resp, _ := h.postForm(t, "", "/page/unmount", url.Values{"id": {id}})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.True(t, s.Form.Closed())

	resp, _ = h.postForm(t, id, "/nav/menu", nil)
	assert.Equal(t, http.StatusGone, resp.StatusCode)
}

func boxes(ids ...string) []map[string]any {
	out := make([]map[string]any, len(ids))
	for i, id := range ids {
		out[i] = map[string]any{"id": id, "top": float64(i * 110), "height": 100.0}
	}
	return out
}

func TestDrag_DropInsideCommits(t *testing.T) {
	h := newHarness(t, okSender())
	id := h.mount(t)

	resp, _ := h.postJSON(t, id, "/projects/drag/start", map[string]any{"id": "3", "boxes": boxes("1", "2", "3")})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := h.postJSON(t, id, "/projects/drag/move", map[string]any{"deltaY": -240})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var preview orderResponse
	require.NoError(t, json.Unmarshal([]byte(body), &preview))
	assert.Equal(t, []string{"3", "1", "2"}, preview.IDs)

	resp, body = h.postForm(t, id, "/projects/drag/release", url.Values{"inZone": {"true"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `id="projects-grid"`)
	assert.Less(t, strings.Index(body, `data-id="3"`), strings.Index(body, `data-id="1"`))
	assert.Equal(t, []string{"3", "1", "2"}, h.session(t, id).Projects.IDs())
}

func TestDrag_DropOutsideSnapsBack(t *testing.T) {
	h := newHarness(t, okSender())
	id := h.mount(t)

	h.postJSON(t, id, "/projects/drag/start", map[string]any{"id": "3", "boxes": boxes("1", "2", "3")})
	h.postJSON(t, id, "/projects/drag/move", map[string]any{"deltaY": -240})
	resp, _ := h.postForm(t, id, "/projects/drag/release", url.Values{"inZone": {"false"}})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"1", "2", "3"}, h.session(t, id).Projects.IDs())
}

func TestDrag_ReleaseCarriesFinalOffset(t *testing.T) {
	h := newHarness(t, okSender())
	id := h.mount(t)

	h.postJSON(t, id, "/projects/drag/start", map[string]any{"id": "3", "boxes": boxes("1", "2", "3")})
	h.postJSON(t, id, "/projects/drag/move", map[string]any{"deltaY": -20})

	// The last move never arrived; the release says where the pointer ended.
	resp, _ := h.postForm(t, id, "/projects/drag/release", url.Values{"inZone": {"true"}, "deltaY": {"-240"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"3", "1", "2"}, h.session(t, id).Projects.IDs())
	assert.Nil(t, h.session(t, id).Projects.Active())
}

func TestDrag_ReleaseRejectsBadOffset(t *testing.T) {
	h := newHarness(t, okSender())
	id := h.mount(t)

	h.postJSON(t, id, "/projects/drag/start", map[string]any{"id": "3", "boxes": boxes("1", "2", "3")})
	resp, _ := h.postForm(t, id, "/projects/drag/release", url.Values{"inZone": {"true"}, "deltaY": {"up"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, []string{"1", "2", "3"}, h.session(t, id).Projects.IDs())
}

func TestDrag_UnknownProject(t *testing.T) {
	h := newHarness(t, okSender())
	id := h.mount(t)

	resp, _ := h.postJSON(t, id, "/projects/drag/start", map[string]any{"id": "99"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = h.postJSON(t, id, "/projects/drag/move", map[string]any{"deltaY": 10})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestDrag_PagesAreIndependent(t *testing.T) {
	h := newHarness(t, okSender())
	a, b := h.mount(t), h.mount(t)

	h.postForm(t, a, "/projects/order", url.Values{"ids": {"2,1,3"}})

	assert.Equal(t, []string{"2", "1", "3"}, h.session(t, a).Projects.IDs())
	assert.Equal(t, []string{"1", "2", "3"}, h.session(t, b).Projects.IDs())
}

func TestProjectOrder(t *testing.T) {
	tests := []struct {
		name     string
		ids      string
		expected []string
	}{
		{"permutation", "3,2,1", []string{"3", "2", "1"}},
		{"missing id", "3,2", []string{"1", "2", "3"}},
		{"unknown id", "1,2,4", []string{"1", "2", "3"}},
		{"duplicate id", "1,1,2", []string{"1", "2", "3"}},
		{"empty", "", []string{"1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, okSender())
			id := h.mount(t)
			resp, body := h.postForm(t, id, "/projects/order", url.Values{"ids": {tt.ids}})
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Contains(t, body, `id="projects-grid"`)
			assert.Equal(t, tt.expected, h.session(t, id).Projects.IDs())
		})
	}
}

func TestProjectImage(t *testing.T) {
	h := newHarness(t, okSender())

	resp, body := h.do(t, httptest.NewRequest(http.MethodGet, "/projects/1/image", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/webp", resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, body)

	resp, _ = h.do(t, httptest.NewRequest(http.MethodGet, "/projects/99/image", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSectionVisible(t *testing.T) {
	h := newHarness(t, okSender())
	id := h.mount(t)

	resp, _ := h.postForm(t, id, "/sections/about/visible", url.Values{"ratio": {"0"}})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.False(t, h.session(t, id).Sections.Visible(content.SectionAbout))

	resp, body := h.postForm(t, id, "/sections/about/visible", url.Values{"ratio": {"0.2"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var reveal revealResponse
	require.NoError(t, json.Unmarshal([]byte(body), &reveal))
	assert.True(t, reveal.Visible)
	assert.Contains(t, reveal.Class, "translate-y-0")

	// Once revealed a section stays revealed.
	resp, _ = h.postForm(t, id, "/sections/about/visible", url.Values{"ratio": {"0"}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = h.postForm(t, id, "/sections/footer/visible", url.Values{"ratio": {"1"}})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = h.postForm(t, id, "/sections/about/visible", url.Values{"ratio": {"lots"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestContact_FieldAndSubmitSuccess(t *testing.T) {
	var sent []contact.Message
	h := newHarness(t, contact.SenderFunc(func(ctx context.Context, msg contact.Message) error {
		sent = append(sent, msg)
		return nil
	}))
	id := h.mount(t)

	resp, _ := h.postForm(t, id, "/contact/field", url.Values{"field": {"name"}, "name": {"Ada"}})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "Ada", h.session(t, id).Form.State().Name)

	resp, body := h.postForm(t, id, "/contact/submit", url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"message": {"Hello"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, contact.SuccessMessage)
	assert.NotContains(t, body, "ada@example.com")

	require.Len(t, sent, 1)
	assert.Equal(t, contact.Message{Name: "Ada", Email: "ada@example.com", Message: "Hello"}, sent[0])
	st := h.session(t, id).Form.State()
	assert.Equal(t, contact.StatusSucceeded, st.Status)
	assert.Empty(t, st.Name)
}

func TestContact_SubmitFailureKeepsFields(t *testing.T) {
	h := newHarness(t, contact.SenderFunc(func(ctx context.Context, msg contact.Message) error {
		return errors.New("smtp down")
	}))
	id := h.mount(t)

	resp, body := h.postForm(t, id, "/contact/submit", url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"message": {"Hello"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, contact.FailureMessage)
	assert.Contains(t, body, `value="ada@example.com"`)
	assert.Equal(t, contact.StatusFailed, h.session(t, id).Form.State().Status)
}

func TestContact_SecondSubmitWhileSending(t *testing.T) {
	release := make(chan struct{})
	calls := 0
	h := newHarness(t, contact.SenderFunc(func(ctx context.Context, msg contact.Message) error {
		calls++
		<-release
		return nil
	}))
	id := h.mount(t)
	s := h.session(t, id)

	done := make(chan error, 1)
	go func() { done <- s.Form.Submit(context.Background()) }()
	require.Eventually(t, func() bool {
		return s.Form.State().Status == contact.StatusSending
	}, time.Second, 5*time.Millisecond)

	resp, body := h.postForm(t, id, "/contact/submit", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Sending...")
	assert.Contains(t, body, "disabled")

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, calls)
}

func TestContact_UnknownField(t *testing.T) {
	h := newHarness(t, okSender())
	id := h.mount(t)
	resp, _ := h.postForm(t, id, "/contact/field", url.Values{"field": {"phone"}, "value": {"555"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestNavScroll(t *testing.T) {
	h := newHarness(t, okSender())
	id := h.mount(t)
	s := h.session(t, id)

	h.postForm(t, id, "/nav/menu", nil)
	require.True(t, s.Nav.MenuOpen())

	// An unknown section changes nothing, not even the menu.
	resp, _ := h.postForm(t, id, "/nav/scroll/blog", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.True(t, s.Nav.MenuOpen())

	resp, body := h.postForm(t, id, "/nav/scroll/about", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `id="nav"`)
	assert.False(t, s.Nav.MenuOpen())

	var trigger map[string]map[string]string
	require.NoError(t, json.Unmarshal([]byte(resp.Header.Get("HX-Trigger")), &trigger))
	assert.Equal(t, "#about", trigger[ScrollEvent]["anchor"])
	assert.Equal(t, "smooth", trigger[ScrollEvent]["behavior"])
}

func TestNavMenu(t *testing.T) {
	h := newHarness(t, okSender())
	id := h.mount(t)

	_, body := h.postForm(t, id, "/nav/menu", nil)
	assert.Contains(t, body, `id="mobile-menu"`)

	_, body = h.postForm(t, id, "/nav/menu", nil)
	assert.NotContains(t, body, `id="mobile-menu"`)
}

func TestNavScrolled(t *testing.T) {
	h := newHarness(t, okSender())
	id := h.mount(t)

	tests := []struct {
		y      string
		status int
	}{
		{"10", http.StatusNoContent},
		{"50", http.StatusNoContent},
		{"51", http.StatusOK},
		{"400", http.StatusNoContent},
		{"0", http.StatusOK},
	}
	for _, tt := range tests {
		resp, _ := h.postForm(t, id, "/nav/scrolled", url.Values{"y": {tt.y}})
		assert.Equal(t, tt.status, resp.StatusCode, "y=%s", tt.y)
	}

	resp, _ := h.postForm(t, id, "/nav/scrolled", url.Values{"y": {"down"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	h := newHarness(t, okSender())
	resp, body := h.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var health map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &health))
	assert.Equal(t, "ok", health["status"])
	assert.Equal(t, "disabled", health["database"])
}

func TestMetrics(t *testing.T) {
	h := newHarness(t, okSender())
	h.mount(t)

	resp, body := h.do(t, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "portfolio_page_sessions_total")
}

func TestContact_RejectedSubmitKeepsSendingFields(t *testing.T) {
	release := make(chan struct{})
	h := newHarness(t, contact.SenderFunc(func(ctx context.Context, msg contact.Message) error {
		<-release
		return errors.New("smtp down")
	}))
	id := h.mount(t)
	s := h.session(t, id)

	done := make(chan error, 1)
	go func() {
		done <- s.Form.Submit(context.Background(),
			contact.Edit{Field: contact.FieldName, Value: "Ada"},
			contact.Edit{Field: contact.FieldEmail, Value: "ada@example.com"},
			contact.Edit{Field: contact.FieldMessage, Value: "Hello"},
		)
	}()
	require.Eventually(t, func() bool {
		return s.Form.State().Status == contact.StatusSending
	}, time.Second, 5*time.Millisecond)

	resp, _ := h.postForm(t, id, "/contact/submit", url.Values{"name": {"Mallory"}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	close(release)
	require.NoError(t, <-done)

	st := s.Form.State()
	assert.Equal(t, contact.StatusFailed, st.Status)
	assert.Equal(t, "Ada", st.Name)
}

func TestState_SurvivesLaterRequests(t *testing.T) {
	h := newHarness(t, okSender())
	id := h.mount(t)
	s := h.session(t, id)

	h.postForm(t, id, "/contact/field", url.Values{"field": {"name"}, "name": {"Alice"}})
	h.postForm(t, id, "/projects/order", url.Values{"ids": {"3,1,2"}})
	h.postForm(t, id, "/sections/about/visible", url.Values{"ratio": {"0.5"}})

	// Unrelated requests with differently sized bodies and paths.
	h.postForm(t, id, "/contact/field", url.Values{"field": {"email"}, "email": {"ZZZZZ"}})
	h.postForm(t, id, "/nav/scrolled", url.Values{"y": {"77777"}})
	h.postForm(t, id, "/sections/hero1/visible", url.Values{"ratio": {"1"}})
	h.postForm(t, id, "/nav/scroll/xxxxx", nil)
	h.postJSON(t, id, "/projects/drag/move", map[string]any{"deltaY": 123456789})

	st := s.Form.State()
	assert.Equal(t, "Alice", st.Name)
	assert.Equal(t, "ZZZZZ", st.Email)

	assert.Equal(t, []string{"3", "1", "2"}, s.Projects.IDs())
	titles := make([]string, 0, 3)
	for _, r := range s.Projects.Records() {
		titles = append(titles, r.Title)
	}
	doc, err := content.Default()
	require.NoError(t, err)
	assert.Equal(t, []string{doc.Projects[2].Title, doc.Projects[0].Title, doc.Projects[1].Title}, titles)

	assert.True(t, s.Sections.Visible(content.SectionAbout))
	flags := s.Sections.Snapshot()
	assert.Len(t, flags, len(content.Sections))
	for _, section := range content.Sections {
		assert.Contains(t, flags, section)
	}

	// The page renders from the stored state.
	_, body := h.postForm(t, id, "/projects/drag/release", nil)
	assert.Less(t, strings.Index(body, `data-id="3"`), strings.Index(body, `data-id="1"`))
}

func TestPageEvents_KeepPageAlive(t *testing.T) {
	h := newHarnessWithTTL(t, okSender(), 300*time.Millisecond)
	id := h.mount(t)
	for i := 0; i < 4; i++ {
		time.Sleep(150 * time.Millisecond)
		resp, _ := h.postForm(t, id, "/nav/menu", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, "request %d", i)
	}
}

func TestHealth_CountsInbox(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	db.SetForTesting(mockDB)
	t.Cleanup(func() { db.SetForTesting(nil) })

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	h := newHarness(t, okSender())
	resp, body := h.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var health map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &health))
	assert.Equal(t, "up", health["database"])
	assert.Equal(t, float64(4), health["messages"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
