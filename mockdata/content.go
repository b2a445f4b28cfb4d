package mockdata

import "go-wavecleanup/types"

var partners = []types.Partner{
	{Name: "Ocean Conservancy", Type: "NGO", Logo: "🌊", Description: "Leading marine conservation organization working to protect ocean ecosystems globally.", Projects: 12, Areas: []string{"Pacific", "Atlantic"}},
	{Name: "UN Environment", Type: "Government", Logo: "🌍", Description: "United Nations program coordinating international environmental protection efforts.", Projects: 8, Areas: []string{"Global"}},
	{Name: "Greenpeace", Type: "NGO", Logo: "🐋", Description: "Environmental activism organization focused on marine protection and waste reduction.", Projects: 15, Areas: []string{"Arctic", "Pacific"}},
	{Name: "Marine Protection Agency", Type: "Government", Logo: "🏛️", Description: "Federal agency responsible for marine ecosystem protection and restoration.", Projects: 6, Areas: []string{"Coastal US"}},
	{Name: "WWF Ocean Program", Type: "NGO", Logo: "🐼", Description: "World Wildlife Fund initiative for ocean conservation and sustainable fishing.", Projects: 9, Areas: []string{"Indian Ocean"}},
	{Name: "EU Marine Strategy", Type: "Government", Logo: "🇪🇺", Description: "European Union framework for marine environmental protection.", Projects: 11, Areas: []string{"Mediterranean", "North Sea"}},
}

var partnershipBenefits = []types.Feature{
	{Icon: "globe", Title: "Real-time Data Access", Description: "Get instant access to waste detection data in your areas of operation."},
	{Icon: "users", Title: "Coordinated Response", Description: "Coordinate cleanup efforts with other organizations for maximum impact."},
	{Icon: "heart", Title: "Priority Alerts", Description: "Receive priority notifications for critical waste concentrations."},
	{Icon: "check", Title: "Impact Tracking", Description: "Monitor and measure the environmental impact of your cleanup initiatives."},
}

var team = []types.TeamMember{
	{Name: "Dr. Marina Chen", Role: "CEO & Marine Biologist", Image: "👩‍🔬", Bio: "15+ years in marine conservation and AI research."},
	{Name: "Alex Rodriguez", Role: "CTO & AI Engineer", Image: "👨‍💻", Bio: "Former SpaceX engineer specializing in satellite technology."},
	{Name: "Sarah Kim", Role: "Head of Partnerships", Image: "👩‍💼", Bio: "Expert in NGO collaboration and environmental policy."},
	{Name: "Dr. James Wilson", Role: "Lead Data Scientist", Image: "👨‍🔬", Bio: "PhD in Computer Vision with focus on environmental applications."},
}

var impactStats = []types.Stat{
	{Value: "2.5M", Label: "km² Ocean Monitored", Icon: "🌊"},
	{Value: "847K", Label: "Waste Objects Detected", Icon: "🔍"},
	{Value: "156", Label: "Cleanup Missions Coordinated", Icon: "🚛"},
	{Value: "23", Label: "Partner Organizations", Icon: "🤝"},
}

var workflowSteps = []types.WorkflowStep{
	{Icon: "globe", Title: "Data Acquisition", Description: "Images and videos from satellites, drones, and user contributions are collected."},
	{Icon: "upload", Title: "Data Ingestion", Description: "Collected visual data is securely uploaded to our platform for processing."},
	{Icon: "brain", Title: "AI Processing & ML Model", Description: "Our machine learning models analyze images and videos to detect and classify ocean waste."},
	{Icon: "chart", Title: "Real-time Dashboard & Hotspots", Description: "Processed data updates our dashboard, highlighting real-time waste hotspots and insights."},
	{Icon: "users", Title: "Partner Alerts & Coordination", Description: "NGOs and government partners receive immediate alerts with precise waste location data."},
	{Icon: "truck", Title: "Coordinated Cleanup Missions", Description: "Partners launch targeted cleanup operations based on AI-prioritized recommendations."},
}

var contactChannels = []types.Feature{
	{Icon: "mail", Title: "Email Us", Content: "hello@wavecleanup.org", Description: "Get in touch for general inquiries"},
	{Icon: "phone", Title: "Call Us", Content: "+1 (555) 123-4567", Description: "Monday to Friday, 9 AM - 6 PM PST"},
	{Icon: "pin", Title: "Visit Us", Content: "1234 Ocean Drive, San Francisco, CA 94102", Description: "Our headquarters by the bay"},
}

var partnershipTypes = []types.Feature{
	{Icon: "users", Title: "NGO Partnership", Description: "Collaborate with us to coordinate cleanup efforts and receive real-time waste detection data."},
	{Icon: "building", Title: "Government Collaboration", Description: "Partner with government agencies for large-scale ocean monitoring and policy development."},
	{Icon: "message", Title: "Research Partnership", Description: "Academic institutions and researchers interested in marine conservation technology."},
}

var heroStats = []types.Stat{
	{Value: "2.5M km²", Label: "Ocean Areas Monitored", Icon: "🌊"},
	{Value: "847K", Label: "Waste Objects Detected", Icon: "🔍"},
	{Value: "156", Label: "Cleanup Missions", Icon: "🚛"},
}

var analysisCandidates = []types.AnalysisResult{
	{WasteType: "Plastic Bottles", Confidence: 0.92, Severity: types.High},
	{WasteType: "Food Containers", Confidence: 0.87, Severity: types.Medium},
	{WasteType: "Glass Bottles", Confidence: 0.76, Severity: types.Low},
	{WasteType: "Metal Cans", Confidence: 0.94, Severity: types.High},
	{WasteType: "Fishing Nets", Confidence: 0.89, Severity: types.High},
}

func Partners() []types.Partner {
	out := make([]types.Partner, len(partners))
	for i, p := range partners {
		p.Areas = append([]string(nil), p.Areas...)
		out[i] = p
	}
	return out
}

func PartnershipBenefits() []types.Feature {
	return append([]types.Feature(nil), partnershipBenefits...)
}
func Team() []types.TeamMember            { return append([]types.TeamMember(nil), team...) }
func ImpactStats() []types.Stat           { return append([]types.Stat(nil), impactStats...) }
func HeroStats() []types.Stat             { return append([]types.Stat(nil), heroStats...) }
func WorkflowSteps() []types.WorkflowStep { return append([]types.WorkflowStep(nil), workflowSteps...) }
func ContactChannels() []types.Feature    { return append([]types.Feature(nil), contactChannels...) }
func PartnershipTypes() []types.Feature   { return append([]types.Feature(nil), partnershipTypes...) }

// AnalysisCandidates is the fixed set the mock analyzer draws from.
func AnalysisCandidates() []types.AnalysisResult {
	return append([]types.AnalysisResult(nil), analysisCandidates...)
}
