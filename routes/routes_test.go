package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-wavecleanup/analysis"
	"go-wavecleanup/db"
	"go-wavecleanup/eventbus"
	"go-wavecleanup/geocode"
	"go-wavecleanup/mission"
	"go-wavecleanup/mockdata"
	"go-wavecleanup/types"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

type fixedGeocoder types.Coordinates

func (g fixedGeocoder) Geocode(context.Context, string) (types.Coordinates, error) {
	return types.Coordinates(g), nil
}

type testServer struct {
	router *gin.Engine
	store  *db.MemoryStore
	events *eventbus.Recorder
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := db.NewMemoryStore()
	events := &eventbus.Recorder{}
	analyzer := analysis.NewMockAnalyzer(0)
	analyzer.Pick = func(int) int { return 3 } // Metal Cans

	r, err := SetupRouter(Deps{
		Store:    store,
		Mission:  mission.NewService(store, events, zap.NewNop()),
		Analyzer: analyzer,
		Locator:  geocode.NewLocator(fixedGeocoder{Lng: 5.37, Lat: 43.30}, mockdata.Hotspots(), nil),
		Now:      func() time.Time { return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	return &testServer{router: r, store: store, events: events}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func formRequest(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func uploadRequest(t *testing.T, path, filename string, data []byte, location string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if data != nil {
		part, err := mw.CreateFormFile("image", filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	if location != "" {
		require.NoError(t, mw.WriteField("location", location))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestPagesRender(t *testing.T) {
	s := newTestServer(t)

	cases := map[string]string{
		"/":          "Harnessing AI, Drones",
		"/dashboard": "Ocean Waste Detection Dashboard",
		"/workflow":  "How It Works",
		"/upload":    "Upload Ocean Images",
		"/partner":   "Partner Organizations",
		"/about":     "Meet Our Team",
		"/contact":   "Send Message",
	}
	for path, want := range cases {
		t.Run(path, func(t *testing.T) {
			w := s.do(httptest.NewRequest(http.MethodGet, path, nil))
			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), want)
			assert.Contains(t, w.Body.String(), `href="`+path+`" class="active"`)
		})
	}
}

func TestHomeHotspotPanel(t *testing.T) {
	s := newTestServer(t)

	w := s.do(httptest.NewRequest(http.MethodGet, "/?hotspot=1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `role="dialog"`)
	assert.Contains(t, w.Body.String(), "Great Pacific Garbage Patch")
	assert.Contains(t, w.Body.String(), "HIGH RISK")

	w = s.do(httptest.NewRequest(http.MethodGet, "/?hotspot=nope", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `role="dialog"`)
}

func TestJoinForm(t *testing.T) {
	s := newTestServer(t)

	w := s.do(formRequest("/join", url.Values{"name": {"Ada"}, "email": {""}, "message": {"hi"}}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please fill in all fields")
	assert.Contains(t, w.Body.String(), `value="Ada"`)

	w = s.do(formRequest("/join", url.Values{"name": {"Ada"}, "email": {"ada@example.org"}, "message": {"hi"}, "from": {"/workflow"}}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Thank you for joining our mission!")
	assert.Contains(t, w.Body.String(), "How It Works")

	n, _ := s.store.CountUsers(context.Background())
	assert.Equal(t, 1, n)
	assert.Len(t, s.events.Events(), 1)
}

func TestContactAndPartnerForms(t *testing.T) {
	s := newTestServer(t)

	w := s.do(formRequest("/contact", url.Values{"name": {"Ada"}, "email": {"a@b.c"}, "message": {"hello"}, "type": {"media-inquiry"}}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Message Sent!")
	assert.Len(t, s.store.ContactMessages(), 1)

	w = s.do(formRequest("/partner", url.Values{"organization": {"Reef Watch"}, "email": {"a@b.c"}}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please complete your application")

	w = s.do(formRequest("/partner", url.Values{"organization": {"Reef Watch"}, "email": {"a@b.c"}, "description": {"reef monitoring"}, "type": {"NGO"}}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, s.store.PartnerApplications(), 1)
}

func TestCreateUser(t *testing.T) {
	s := newTestServer(t)

	for _, body := range []string{
		`{"name":"Ada","email":"a@b.c"}`,
		`{"name":"Ada","email":"a@b.c","message":"   "}`,
		`not json`,
	} {
		w := s.do(jsonRequest(http.MethodPost, "/api/users", body))
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}

	w := s.do(jsonRequest(http.MethodPost, "/api/users", `{"name":"Ada","email":"a@b.c","message":"count me in"}`))
	require.Equal(t, http.StatusCreated, w.Code)
	var user types.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.NotEmpty(t, user.ID)

	w = s.do(httptest.NewRequest(http.MethodGet, "/api/users/"+user.ID, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	w = s.do(httptest.NewRequest(http.MethodGet, "/api/users/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContactAndApplicationAPI(t *testing.T) {
	s := newTestServer(t)

	w := s.do(jsonRequest(http.MethodPost, "/api/contact", `{"name":"Ada","email":"a@b.c","message":"hi","type":"spam"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(jsonRequest(http.MethodPost, "/api/contact", `{"name":"Ada","email":"a@b.c","message":"hi","type":"other"}`))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = s.do(jsonRequest(http.MethodPost, "/api/partners/applications", `{"organization":"Reef Watch","email":"a@b.c","description":"d"}`))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAnalyzeAPI(t *testing.T) {
	s := newTestServer(t)

	w := s.do(uploadRequest(t, "/api/analyze", "beach.png", pngHeader, "Marseille"))
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Result types.AnalysisResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Metal Cans", resp.Result.WasteType)
	require.NotNil(t, resp.Result.NearestHotspot)
	assert.Equal(t, "Mediterranean Sea", resp.Result.NearestHotspot.Name)

	w = s.do(uploadRequest(t, "/api/analyze", "notes.txt", []byte("just some text"), ""))
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid file type")

	big := make([]byte, analysis.MaxUploadBytes+1)
	copy(big, pngHeader)
	w = s.do(uploadRequest(t, "/api/analyze", "huge.png", big, ""))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "File too large")

	w = s.do(uploadRequest(t, "/api/analyze", "", nil, "Oslo"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadPage(t *testing.T) {
	s := newTestServer(t)

	w := s.do(uploadRequest(t, "/upload", "beach.png", pngHeader, ""))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Analysis Complete!")
	assert.Contains(t, body, "Metal Cans")
	assert.Contains(t, body, "94%")
	assert.Contains(t, body, "data:image/png;base64,")

	w = s.do(uploadRequest(t, "/upload", "notes.txt", []byte("just some text"), ""))
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	assert.NotContains(t, w.Body.String(), "data:")
}

func TestReadEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := s.do(httptest.NewRequest(http.MethodGet, "/api/hotspots", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var hs []types.Hotspot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hs))
	assert.Len(t, hs, 5)

	assert.Equal(t, http.StatusOK, s.do(httptest.NewRequest(http.MethodGet, "/api/hotspots/5", nil)).Code)
	assert.Equal(t, http.StatusNotFound, s.do(httptest.NewRequest(http.MethodGet, "/api/hotspots/9", nil)).Code)
	assert.Equal(t, http.StatusOK, s.do(httptest.NewRequest(http.MethodGet, "/api/waste-locations", nil)).Code)
	assert.Equal(t, http.StatusOK, s.do(httptest.NewRequest(http.MethodGet, "/healthz", nil)).Code)
	assert.Equal(t, http.StatusNotFound, s.do(httptest.NewRequest(http.MethodGet, "/api/digests/latest", nil)).Code)

	w = s.do(httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"signups":0`)
}

func TestStaticAssets(t *testing.T) {
	s := newTestServer(t)
	w := s.do(httptest.NewRequest(http.MethodGet, "/static/app.js", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "SCROLL_THRESHOLD = 20")
}
