package services

import "adlaunch/internal/models"

// The five creative_features_spec keys the Graph API accepts. Every
// compiled spec carries all of them.
var enhancementAPIKeys = []string{
	"standard_enhancements_catalog",
	"ig_video_native_subtitle",
	"product_metadata_automation",
	"profile_card",
	"text_overlay_translation",
}

// enhancementToggles lists, per creative type and in declared order, the
// user-facing toggles the settings page exposes.
var enhancementToggles = map[string][]string{
	"image": {
		"advantage_plus_creative",
		"relevant_comments",
		"visual_touchups",
		"text_improvements",
		"add_overlays",
		"brightness_contrast",
		"music_overlay",
		"image_animation",
		"generate_backgrounds",
		"expand_image",
		"enhance_cta",
		"translate_text",
		"adapt_to_placement",
		"add_catalog_items",
	},
	"video": {
		"advantage_plus_creative",
		"relevant_comments",
		"visual_touchups",
		"text_improvements",
		"enhance_cta",
		"translate_text",
		"dynamic_media",
		"add_catalog_items",
		"add_site_links",
	},
	"carousel": {
		"advantage_plus_creative",
		"relevant_comments",
		"visual_touchups",
		"text_improvements",
		"profile_end_card",
		"dynamic_description",
		"enhance_cta",
		"translate_text",
		"dynamic_media",
		"add_catalog_items",
		"add_site_links",
	},
}

// enhancementAPIMap is the fixed many-to-one mapping from toggle key to
// creative_features_spec key.
var enhancementAPIMap = map[string]string{
	"advantage_plus_creative": "standard_enhancements_catalog",
	"relevant_comments":       "standard_enhancements_catalog",
	"visual_touchups":         "standard_enhancements_catalog",
	"text_improvements":       "standard_enhancements_catalog",
	"add_overlays":            "standard_enhancements_catalog",
	"brightness_contrast":     "standard_enhancements_catalog",
	"music_overlay":           "standard_enhancements_catalog",
	"image_animation":         "standard_enhancements_catalog",
	"generate_backgrounds":    "standard_enhancements_catalog",
	"expand_image":            "standard_enhancements_catalog",
	"enhance_cta":             "standard_enhancements_catalog",
	"adapt_to_placement":      "standard_enhancements_catalog",
	"dynamic_media":           "standard_enhancements_catalog",
	"add_site_links":          "standard_enhancements_catalog",
	"translate_text":          "text_overlay_translation",
	"add_catalog_items":       "product_metadata_automation",
	"dynamic_description":     "product_metadata_automation",
	"profile_end_card":        "profile_card",
}

// CompileEnhancementSpec resolves the toggle matrix for one creative
// type into the fixed five-key spec. A capability is OPT_IN when any
// toggle mapped to it is enabled; unknown creative types fall back to
// the image toggle set.
func CompileEnhancementSpec(matrix models.EnhancementMatrix, creativeType string) models.EnhancementSpec {
	toggles, ok := enhancementToggles[creativeType]
	if !ok {
		toggles = enhancementToggles["image"]
	}

	var settings map[string]bool
	if matrix != nil {
		settings = matrix[creativeType]
	}

	states := make(map[string]models.EnrollStatus, len(enhancementAPIKeys))
	for _, toggle := range toggles {
		apiKey, mapped := enhancementAPIMap[toggle]
		if !mapped {
			continue
		}
		if settings[toggle] {
			states[apiKey] = models.OptIn
		} else if _, seen := states[apiKey]; !seen {
			states[apiKey] = models.OptOut
		}
	}

	spec := models.EnhancementSpec{CreativeFeaturesSpec: make(map[string]models.FeatureEnrollment, len(enhancementAPIKeys))}
	for _, key := range enhancementAPIKeys {
		status, ok := states[key]
		if !ok {
			status = models.OptOut
		}
		spec.CreativeFeaturesSpec[key] = models.FeatureEnrollment{EnrollStatus: status}
	}
	return spec
}
