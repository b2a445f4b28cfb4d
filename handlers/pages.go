package handlers

import (
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-wavecleanup/analysis"
	"go-wavecleanup/forms"
	"go-wavecleanup/geocode"
	"go-wavecleanup/hotspots"
	"go-wavecleanup/mission"
	"go-wavecleanup/mockdata"
	"go-wavecleanup/navigation"
	"go-wavecleanup/types"
)

// page builds the data every template shares: title, menu and footer year.
func page(path, title string, data gin.H) gin.H {
	h := gin.H{
		"Title": title,
		"Path":  path,
		"Nav":   navigation.Items(path),
		"Year":  time.Now().Year(),
	}
	for k, v := range data {
		h[k] = v
	}
	return h
}

// Home renders the landing page. ?hotspot=<id> opens that hotspot's panel.
func Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.tmpl", homeData(c, nil))
}

func homeData(c *gin.Context, extra gin.H) gin.H {
	m := hotspots.NewMap(mockdata.Hotspots())
	if id := c.Query("hotspot"); id != "" {
		// Unknown ids leave the panel closed.
		_ = m.Select(id)
	}
	data := gin.H{
		"HeroStats": mockdata.HeroStats(),
		"Markers":   m.Markers(),
		"Panel":     m.Panel(),
		"Join":      types.SignupRequest{},
	}
	for k, v := range extra {
		data[k] = v
	}
	return page("/", "Wave Cleanup", data)
}

func workflowData(extra gin.H) gin.H {
	data := gin.H{
		"Steps": mockdata.WorkflowSteps(),
		"Join":  types.SignupRequest{},
	}
	for k, v := range extra {
		data[k] = v
	}
	return page("/workflow", "How It Works", data)
}

// Join handles the server-rendered mission form on the home and workflow pages.
func Join(c *gin.Context, svc *mission.Service, logger *zap.Logger) {
	f := forms.New(svc.SignupSubmitter(), forms.MissionMessages, forms.MissionResetDelay)
	defer f.Close()
	f.Set(types.SignupRequest{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Message: c.PostForm("message"),
	})

	notice, err := f.Submit(c.Request.Context())
	status := formStatus(err)
	if err != nil {
		logger.Info("mission sign-up not accepted", zap.Error(err))
	}
	extra := gin.H{
		"Notice":    notice,
		"Join":      f.Fields(),
		"Submitted": f.Submitted(),
	}

	if c.PostForm("from") == "/workflow" {
		c.HTML(status, "workflow.tmpl", workflowData(extra))
		return
	}
	c.HTML(status, "home.tmpl", homeData(c, extra))
}

func Workflow(c *gin.Context) {
	c.HTML(http.StatusOK, "workflow.tmpl", workflowData(nil))
}

type wasteMarker struct {
	types.WasteLocation
	LeftPercent float64
	TopPercent  float64
}

func Dashboard(c *gin.Context, now time.Time) {
	snapshot := mockdata.Dashboard(now)

	markers := make([]wasteMarker, 0, len(snapshot.WasteLocations))
	for _, w := range snapshot.WasteLocations {
		left, top := hotspots.Project(types.Coordinates{Lng: w.Lng, Lat: w.Lat})
		markers = append(markers, wasteMarker{WasteLocation: w, LeftPercent: left, TopPercent: top})
	}

	maxMonthly, maxRegion := 0, 0
	for _, m := range snapshot.MonthlyDetections {
		maxMonthly = max(maxMonthly, m.Detections)
	}
	for _, r := range snapshot.Regions {
		maxRegion = max(maxRegion, r.Waste)
	}

	c.HTML(http.StatusOK, "dashboard.tmpl", page("/dashboard", "Dashboard", gin.H{
		"Dashboard":    snapshot,
		"WasteMarkers": markers,
		"MaxMonthly":   maxMonthly,
		"MaxRegion":    maxRegion,
	}))
}

func Upload(c *gin.Context) {
	c.HTML(http.StatusOK, "upload.tmpl", page("/upload", "Upload", nil))
}

// UploadAnalyze runs the analysis for the upload page and renders the result.
func UploadAnalyze(c *gin.Context, analyzer analysis.Analyzer, locator *geocode.Locator, logger *zap.Logger) {
	location := strings.TrimSpace(c.PostForm("location"))
	file, err := readUpload(c)
	if err != nil {
		renderUploadError(c, logger, err, location)
		return
	}

	session, result, err := runAnalysis(c.Request.Context(), analyzer, locator, file, location)
	if err != nil {
		data := gin.H{"Location": location}
		if f, ok := session.File(); ok {
			data["File"] = f
			data["Preview"] = previewURL(session)
		}
		data["Notice"] = analysis.RejectionNotice(err)
		c.HTML(analysisStatus(err), "upload.tmpl", page("/upload", "Upload", data))
		return
	}

	f, _ := session.File()
	c.HTML(http.StatusOK, "upload.tmpl", page("/upload", "Upload", gin.H{
		"File":     f,
		"Preview":  previewURL(session),
		"Result":   result,
		"Location": location,
		"Notice":   analysis.CompletionNotice(result),
	}))
}

// previewURL marks the data URL safe for an img src. The media type was sniffed
// from the content and validated as an image.
func previewURL(s *analysis.Session) template.URL {
	return template.URL(s.PreviewURL())
}

func renderUploadError(c *gin.Context, logger *zap.Logger, err error, location string) {
	notice := analysis.RejectionNotice(err)
	if errors.Is(err, errNoImage) {
		notice = forms.Notice{Title: "No image selected", Description: "Please choose an image to analyze.", Variant: forms.VariantDestructive}
	}
	status := analysisStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error("upload analysis failed", zap.Error(err))
	}
	c.HTML(status, "upload.tmpl", page("/upload", "Upload", gin.H{"Notice": notice, "Location": location}))
}

func partnerData(extra gin.H) gin.H {
	data := gin.H{
		"Partners":     mockdata.Partners(),
		"Benefits":     mockdata.PartnershipBenefits(),
		"PartnerTypes": types.PartnerTypes,
		"Application":  types.PartnerApplication{},
	}
	for k, v := range extra {
		data[k] = v
	}
	return page("/partner", "Partners", data)
}

func Partner(c *gin.Context) {
	c.HTML(http.StatusOK, "partner.tmpl", partnerData(nil))
}

func PartnerApply(c *gin.Context, svc *mission.Service, logger *zap.Logger) {
	var a types.PartnerApplication
	if err := c.ShouldBind(&a); err != nil {
		c.HTML(http.StatusBadRequest, "partner.tmpl", partnerData(gin.H{"Notice": forms.PartnerMessages.Validation}))
		return
	}

	f := forms.New(svc.ApplicationSubmitter(), forms.PartnerMessages, forms.MissionResetDelay)
	defer f.Close()
	f.Set(a)
	notice, err := f.Submit(c.Request.Context())
	status := formStatus(err)
	if err != nil {
		logger.Info("partner application not accepted", zap.Error(err))
	}
	c.HTML(status, "partner.tmpl", partnerData(gin.H{
		"Notice":      notice,
		"Application": f.Fields(),
		"Submitted":   f.Submitted(),
	}))
}

func About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.tmpl", page("/about", "About", gin.H{
		"Team":  mockdata.Team(),
		"Stats": mockdata.ImpactStats(),
	}))
}

func contactData(extra gin.H) gin.H {
	data := gin.H{
		"Channels":         mockdata.ContactChannels(),
		"PartnershipTypes": mockdata.PartnershipTypes(),
		"InquiryTypes":     types.InquiryTypes,
		"Contact":          types.ContactMessage{},
	}
	for k, v := range extra {
		data[k] = v
	}
	return page("/contact", "Contact", data)
}

func Contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.tmpl", contactData(nil))
}

// ContactSubmit runs the contact form through submitter.
func ContactSubmit(c *gin.Context, submitter forms.Submitter[types.ContactMessage], logger *zap.Logger) {
	var m types.ContactMessage
	if err := c.ShouldBind(&m); err != nil {
		c.HTML(http.StatusBadRequest, "contact.tmpl", contactData(gin.H{"Notice": forms.ContactMessages.Validation}))
		return
	}

	f := forms.New(submitter, forms.ContactMessages, forms.MissionResetDelay)
	defer f.Close()
	f.Set(m)
	notice, err := f.Submit(c.Request.Context())
	status := formStatus(err)
	if err != nil {
		logger.Info("contact message not accepted", zap.Error(err))
	}
	c.HTML(status, "contact.tmpl", contactData(gin.H{
		"Notice":    notice,
		"Contact":   f.Fields(),
		"Submitted": f.Submitted(),
	}))
}

func formStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, forms.ErrMissingFields),
		errors.Is(err, mission.ErrUnknownInquiryType),
		errors.Is(err, mission.ErrUnknownPartnerType):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}
