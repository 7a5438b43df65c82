package gallery

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/vangoui/internal/config"
	"github.com/vango-dev/vangoui/internal/stories"
)

const testCatalog = `version: 1
stories:
  - id: quick-toast
    title: Quick toast
    kind: toast
    args:
      message: Gone soon
      delay: 50ms
  - id: dots
    title: Dots
    kind: carousel
    args:
      count: 3
      dots: true
`

func newTestServer(t *testing.T, c *stories.Catalog, mutate ...func(*config.Config)) (*Server, *httptest.Server) {
	t.Helper()
	cfg := config.New()
	for _, m := range mutate {
		m(cfg)
	}
	if c == nil {
		c = stories.Default()
	}
	srv, err := New(cfg, c,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithRegistry(prometheus.NewRegistry()),
		WithRequestLog(io.Discard),
	)
	require.NoError(t, err)
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return srv, ts
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestIndex(t *testing.T) {
	_, ts := newTestServer(t, nil)

	code, body := get(t, ts.URL+"/")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "<title>VangoUI</title>")
	assert.Contains(t, body, `href="/stories/toast-success"`)
	assert.Contains(t, body, `href="/stories/carousel-basic"`)
	assert.NotContains(t, body, ClientScript)
}

func TestStoryPage(t *testing.T) {
	_, ts := newTestServer(t, nil)

	code, body := get(t, ts.URL+"/stories/carousel-basic")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "Slide 1 of 5")
	assert.Contains(t, body, `data-live="/live/carousel-basic"`)
	assert.Contains(t, body, "new WebSocket")

	code, body = get(t, ts.URL+"/stories/carousel-basic/fragment")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, strings.HasPrefix(body, `<div class="story p-6"`), body)

	code, _ = get(t, ts.URL+"/stories/nope")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestStoryCacheAndMetrics(t *testing.T) {
	_, ts := newTestServer(t, nil)

	get(t, ts.URL+"/stories/badge-neutral")
	get(t, ts.URL+"/stories/badge-neutral")

	code, body := get(t, ts.URL+"/metrics")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `vangoui_render_cache_total{result="hit"} 1`)
	assert.Contains(t, body, `vangoui_render_cache_total{result="miss"} 1`)
	assert.Contains(t, body, `vangoui_http_requests_total{code="200",method="GET",route="/stories/{id}"} 2`)
}

func TestCacheDisabled(t *testing.T) {
	srv, ts := newTestServer(t, nil, func(c *config.Config) { c.Gallery.CacheSize = 0 })
	assert.Nil(t, srv.cache)

	code, body := get(t, ts.URL+"/stories/badge-neutral")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "Draft")
}

func TestMetricsDisabled(t *testing.T) {
	_, ts := newTestServer(t, nil, func(c *config.Config) { c.Gallery.Metrics = false })
	code, _ := get(t, ts.URL+"/metrics")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestTracingPassesThrough(t *testing.T) {
	_, ts := newTestServer(t, nil, func(c *config.Config) { c.Gallery.Tracing = true })
	code, body := get(t, ts.URL+"/stories/badge-success")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "Active")
}

func TestHealthz(t *testing.T) {
	_, ts := newTestServer(t, nil)

	code, body := get(t, ts.URL+"/healthz")
	require.Equal(t, http.StatusOK, code)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, "ok", got["status"])
	assert.EqualValues(t, len(stories.Default().List()), got["stories"])
}

func TestCheckOrigin(t *testing.T) {
	srv, _ := newTestServer(t, nil, func(c *config.Config) {
		c.Gallery.AllowedOrigins = []string{"https://docs.example.com"}
	})

	tests := []struct {
		origin string
		host   string
		want   bool
	}{
		{"", "localhost:6006", true},
		{"http://localhost:6006", "localhost:6006", true},
		{"https://docs.example.com", "localhost:6006", true},
		{"https://evil.example.com", "localhost:6006", false},
		{"::bad", "localhost:6006", false},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/live/x", nil)
		r.Host = tt.host
		if tt.origin != "" {
			r.Header.Set("Origin", tt.origin)
		}
		assert.Equal(t, tt.want, srv.checkOrigin(r), tt.origin)
	}
}

type liveClient struct {
	t    *testing.T
	conn *websocket.Conn
}

func dial(t *testing.T, ts *httptest.Server, id string) *liveClient {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/live/" + id
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	resp.Body.Close()
	t.Cleanup(func() { conn.Close() })
	return &liveClient{t: t, conn: conn}
}

func (c *liveClient) read() Frame {
	c.t.Helper()
	c.conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var f Frame
	require.NoError(c.t, c.conn.ReadJSON(&f))
	return f
}

func (c *liveClient) send(f EventFrame) {
	c.t.Helper()
	require.NoError(c.t, c.conn.WriteJSON(f))
}

func hidFor(t *testing.T, html, label string) string {
	t.Helper()
	re := regexp.MustCompile(`aria-label="` + regexp.QuoteMeta(label) + `"[^>]*data-hid="(h\d+)"`)
	m := re.FindStringSubmatch(html)
	require.NotNil(t, m, "no element labelled %q", label)
	return m[1]
}

func TestLiveCarousel(t *testing.T) {
	c, err := stories.Parse([]byte(testCatalog), "test.yaml")
	require.NoError(t, err)
	_, ts := newTestServer(t, c)

	client := dial(t, ts, "dots")
	first := client.read()
	require.Equal(t, FrameHTML, first.Type)
	assert.Contains(t, first.HTML, "Slide 1 of 3")

	client.send(EventFrame{HID: hidFor(t, first.HTML, "Go to slide 3"), Event: "click"})
	next := client.read()
	assert.Equal(t, FrameHTML, next.Type)
	assert.Contains(t, next.HTML, "Slide 3 of 3")

	client.send(EventFrame{HID: hidFor(t, next.HTML, "Carousel"), Event: "keydown", Key: "ArrowLeft"})
	assert.Contains(t, client.read().HTML, "Slide 2 of 3")

	// Modified keys are ignored but still answered with a frame.
	client.send(EventFrame{HID: hidFor(t, next.HTML, "Carousel"), Event: "keydown", Key: "ArrowLeft", Ctrl: true})
	assert.Contains(t, client.read().HTML, "Slide 2 of 3")
}

func TestLiveToastClosesOnTimer(t *testing.T) {
	c, err := stories.Parse([]byte(testCatalog), "test.yaml")
	require.NoError(t, err)
	_, ts := newTestServer(t, c)

	client := dial(t, ts, "quick-toast")
	assert.Contains(t, client.read().HTML, "Gone soon")

	f := client.read()
	assert.Equal(t, FrameHTML, f.Type)
	assert.NotContains(t, f.HTML, "Gone soon")
}

func TestLiveErrors(t *testing.T) {
	_, ts := newTestServer(t, nil)
	client := dial(t, ts, "button-default")
	client.read()

	require.NoError(t, client.conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	f := client.read()
	assert.Equal(t, FrameError, f.Type)
	assert.Contains(t, f.Error, "E122")

	client.send(EventFrame{HID: "h999", Event: "click"})
	f = client.read()
	assert.Equal(t, FrameError, f.Type)
	assert.Contains(t, f.Error, "E123")
}

func TestLiveUnknownStory(t *testing.T) {
	_, ts := newTestServer(t, nil)
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/live/nope"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLiveDisconnectTearsDown(t *testing.T) {
	srv, ts := newTestServer(t, nil)

	client := dial(t, ts, "carousel-autoplay")
	client.read()
	require.Eventually(t, func() bool { return srv.LiveSessions() == 1 }, 2*time.Second, 10*time.Millisecond)

	client.conn.Close()
	require.Eventually(t, func() bool { return srv.LiveSessions() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestWritePages(t *testing.T) {
	c := stories.Default()
	story, err := c.Get("toast-warning")
	require.NoError(t, err)

	fragment, err := RenderFragment(story, false)
	require.NoError(t, err)
	assert.Contains(t, fragment, "Your session expires in two minutes.")

	var buf bytes.Buffer
	require.NoError(t, WriteStory(&buf, story, fragment, StaticPages("Docs", false)))
	assert.Contains(t, buf.String(), `href="index.html"`)
	assert.NotContains(t, buf.String(), "data-live")

	buf.Reset()
	require.NoError(t, WriteIndex(&buf, c, StaticPages("Docs", false)))
	assert.Contains(t, buf.String(), `href="toast-warning.html"`)
}
