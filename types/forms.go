package types

import (
	"strings"
	"time"
)

// SignupRequest is the body of POST /api/users.
type SignupRequest struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Email   string `json:"email" form:"email" binding:"required"`
	Message string `json:"message" form:"message" binding:"required"`
}

// User is a stored mission sign-up.
type User struct {
	ID        string    `json:"id" firestore:"-"`
	Name      string    `json:"name" firestore:"name"`
	Email     string    `json:"email" firestore:"email"`
	Message   string    `json:"message" firestore:"message"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

type InquiryType string

const (
	InquiryNGOPartnership          InquiryType = "ngo-partnership"
	InquiryGovernmentCollaboration InquiryType = "government-collaboration"
	InquiryResearchPartnership     InquiryType = "research-partnership"
	InquiryMedia                   InquiryType = "media-inquiry"
	InquiryGeneralSupport          InquiryType = "general-support"
	InquiryOther                   InquiryType = "other"
)

var InquiryTypes = []InquiryType{
	InquiryNGOPartnership,
	InquiryGovernmentCollaboration,
	InquiryResearchPartnership,
	InquiryMedia,
	InquiryGeneralSupport,
	InquiryOther,
}

func (t InquiryType) Valid() bool {
	for _, known := range InquiryTypes {
		if t == known {
			return true
		}
	}
	return false
}

func (t InquiryType) Label() string {
	switch t {
	case InquiryNGOPartnership:
		return "NGO Partnership"
	case InquiryGovernmentCollaboration:
		return "Government Collaboration"
	case InquiryResearchPartnership:
		return "Research Partnership"
	case InquiryMedia:
		return "Media Inquiry"
	case InquiryGeneralSupport:
		return "General Support"
	case InquiryOther:
		return "Other"
	default:
		return string(t)
	}
}

type ContactMessage struct {
	ID           string      `json:"id,omitempty" firestore:"-"`
	Name         string      `json:"name" form:"name" firestore:"name"`
	Email        string      `json:"email" form:"email" firestore:"email"`
	Organization string      `json:"organization" form:"organization" firestore:"organization,omitempty"`
	Type         InquiryType `json:"type" form:"type" firestore:"type,omitempty"`
	Message      string      `json:"message" form:"message" firestore:"message"`
	CreatedAt    time.Time   `json:"createdAt,omitempty" firestore:"createdAt"`
}

var PartnerTypes = []string{"NGO", "Government Agency", "Research Institution", "Private Foundation"}

type PartnerApplication struct {
	ID           string    `json:"id,omitempty" firestore:"-"`
	Organization string    `json:"organization" form:"organization" firestore:"organization"`
	Type         string    `json:"type" form:"type" firestore:"type"`
	Email        string    `json:"email" form:"email" firestore:"email"`
	Phone        string    `json:"phone" form:"phone" firestore:"phone,omitempty"`
	FocusAreas   string    `json:"focusAreas" form:"focusAreas" firestore:"focusAreas,omitempty"`
	Description  string    `json:"description" form:"description" firestore:"description"`
	Goals        string    `json:"goals" form:"goals" firestore:"goals,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty" firestore:"createdAt"`
}

// Digest summarizes the sign-ups received during one digest window.
type Digest struct {
	ID          string    `json:"id" firestore:"-"`
	WindowStart time.Time `json:"windowStart" firestore:"windowStart"`
	WindowEnd   time.Time `json:"windowEnd" firestore:"windowEnd"`
	SignupCount int       `json:"signupCount" firestore:"signupCount"`
	Summary     string    `json:"summary,omitempty" firestore:"summary,omitempty"`
}

// Missing reports the required fields that are blank.
func (r SignupRequest) Missing() []string {
	return blank(map[string]string{"name": r.Name, "email": r.Email, "message": r.Message}, "name", "email", "message")
}

func (m ContactMessage) Missing() []string {
	return blank(map[string]string{"name": m.Name, "email": m.Email, "message": m.Message}, "name", "email", "message")
}

func (a PartnerApplication) Missing() []string {
	return blank(map[string]string{"organization": a.Organization, "email": a.Email, "description": a.Description}, "organization", "email", "description")
}

func blank(values map[string]string, order ...string) []string {
	var missing []string
	for _, name := range order {
		if strings.TrimSpace(values[name]) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
