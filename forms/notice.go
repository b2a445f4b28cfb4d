package forms

import "time"

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notice is a transient message shown to the user after an action.
type Notice struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant"`
}

func (n Notice) Destructive() bool {
	return n.Variant == VariantDestructive
}

type Messages struct {
	Validation Notice
	Success    Notice
	Failure    Notice
}

// MissionResetDelay is how long the mission form shows its thank-you state.
const MissionResetDelay = 3 * time.Second

var MissionMessages = Messages{
	Validation: Notice{
		Title:       "Please fill in all fields",
		Description: "All fields are required to join our mission.",
		Variant:     VariantDestructive,
	},
	Success: Notice{
		Title:       "Thank you for joining our mission!",
		Description: "We'll get back to you soon with more information.",
		Variant:     VariantDefault,
	},
	Failure: Notice{
		Title:       "Something went wrong",
		Description: "Unable to submit your details. Please try again.",
		Variant:     VariantDestructive,
	},
}

var ContactMessages = Messages{
	Validation: Notice{
		Title:       "Please fill in all required fields",
		Description: "Name, email and message are required.",
		Variant:     VariantDestructive,
	},
	Success: Notice{
		Title:       "Message Sent!",
		Description: "Thank you for reaching out. We'll get back to you within 24 hours.",
		Variant:     VariantDefault,
	},
	Failure: Notice{
		Title:       "Message not sent",
		Description: "We couldn't deliver your message. Please try again.",
		Variant:     VariantDestructive,
	},
}

var PartnerMessages = Messages{
	Validation: Notice{
		Title:       "Please complete your application",
		Description: "Organization name, email and description are required.",
		Variant:     VariantDestructive,
	},
	Success: Notice{
		Title:       "Application received",
		Description: "Our partnerships team will review your application and reach out.",
		Variant:     VariantDefault,
	},
	Failure: Notice{
		Title:       "Application not submitted",
		Description: "Unable to submit your application. Please try again.",
		Variant:     VariantDestructive,
	},
}
