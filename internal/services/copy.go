package services

import (
	"strings"

	"adlaunch/internal/models"
)

// ResolvedCopy is the effective ad copy for one creative after applying
// the custom-copy override and the tracking template.
type ResolvedCopy struct {
	PrimaryText string
	Headline    string
	Description string
	LinkURL     string
	CTA         string
}

// ResolveCopy picks between the creative's own copy and the global copy.
// A custom creative with an empty link falls back to the destination
// URL; the tracking template is appended to whichever link wins.
func ResolveCopy(creative models.CreativeDraft, global models.GlobalCopy, websiteURL, trackingTemplate string) ResolvedCopy {
	if creative.UseCustomCopy {
		link := creative.LinkURL
		if link == "" {
			link = websiteURL
		}
		return ResolvedCopy{
			PrimaryText: creative.PrimaryText,
			Headline:    creative.Headline,
			Description: creative.Description,
			LinkURL:     AppendTracking(link, trackingTemplate),
			CTA:         creative.CTA,
		}
	}
	return ResolvedCopy{
		PrimaryText: global.PrimaryText,
		Headline:    global.Headline,
		Description: global.Description,
		LinkURL:     AppendTracking(websiteURL, trackingTemplate),
		CTA:         global.CTA,
	}
}

// AppendTracking appends a query-string template to a URL, using "?" or
// "&" depending on whether the URL already carries a query. The
// template is appended verbatim; a blank template leaves the URL
// untouched.
func AppendTracking(baseURL, template string) string {
	if baseURL == "" {
		return ""
	}
	template = strings.TrimSpace(template)
	if template == "" {
		return baseURL
	}
	separator := "?"
	if strings.Contains(baseURL, "?") {
		separator = "&"
	}
	return baseURL + separator + template
}
