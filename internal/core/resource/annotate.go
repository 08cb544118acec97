package resource

import (
	"net/url"
	"strings"

	"github.com/txsn/navigator/internal/core/county"
	"github.com/txsn/navigator/internal/platform/constants"
	"github.com/txsn/navigator/internal/platform/i18n"
)

// Annotated is a [Match] decorated with everything the client needs to
// render it: a localized rank label, a dialable phone link, the expanded
// website URL, and the ZIP gating state for locators.
type Annotated struct {
	*Match

	RankLabel string `json:"rank_label"`

	// DialURL is a tel: link, absent when the phone number is missing or
	// malformed.
	DialURL *string `json:"dial_url,omitempty"`

	// Website is the expanded website template (or the plain URL).
	Website *string `json:"website,omitempty"`

	// ActionEnabled is false when the website link must render disabled and
	// non-navigable (a locator that requires a ZIP the caller hasn't given).
	ActionEnabled bool `json:"action_enabled"`

	// ZipHint carries the localized "enter your ZIP" instruction whenever
	// ActionEnabled is false.
	ZipHint *string `json:"zip_hint,omitempty"`
}

// Annotate applies the three presentation transforms to one match.
func Annotate(m *Match, lang i18n.Lang, loc county.Location) *Annotated {
	annotated := &Annotated{
		Match:         m,
		RankLabel:     RankLabel(m, lang),
		Website:       BuildWebsiteURL(m, loc),
		ActionEnabled: true,
	}

	if m.Phone != nil {
		if dialable, ok := NormalizePhone(*m.Phone); ok {
			tel := "tel:" + dialable
			annotated.DialURL = &tel
		}
	}

	if m.RequiresZip && strings.TrimSpace(loc.Zip) == "" {
		annotated.ActionEnabled = false
		hint := i18n.T(lang, i18n.KeyHintNeedsZip)
		annotated.ZipHint = &hint
	}

	return annotated
}

// RankLabel returns the localized proximity label for a match. Locators are
// labelled as such regardless of their rank.
func RankLabel(m *Match, lang i18n.Lang) string {
	if m.IsLocator {
		return i18n.T(lang, i18n.KeyRankLocalFinder)
	}

	switch {
	case m.MatchRank >= constants.RankCounty:
		return i18n.T(lang, i18n.KeyRankCounty)
	case m.MatchRank == constants.RankRegion:
		return i18n.T(lang, i18n.KeyRankRegion)
	default:
		return i18n.T(lang, i18n.KeyRankStatewide)
	}
}

// NormalizePhone converts a free-form phone string into a dialable number.
//
// All characters except digits and a single leading '+' are stripped. Fewer
// than 3 digits is treated as not dialable. Numbers without an explicit
// country code are assumed North American and prefixed with +1.
func NormalizePhone(phone string) (string, bool) {
	trimmed := strings.TrimSpace(phone)

	var b strings.Builder
	for i, r := range trimmed {
		if r == '+' && i == 0 {
			b.WriteRune(r)
			continue
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	digits := strings.TrimPrefix(cleaned, "+")
	if len(digits) < 3 {
		return "", false
	}

	if !strings.HasPrefix(cleaned, "+") {
		cleaned = "+1" + cleaned
	}

	return cleaned, true
}

// BuildWebsiteURL expands the website template with the URL-encoded location
// context, or falls back to the plain website URL (which may be absent).
func BuildWebsiteURL(m *Match, loc county.Location) *string {
	template := ""
	if m.WebsiteTemplate != nil {
		template = strings.TrimSpace(*m.WebsiteTemplate)
	}

	if template == "" {
		return m.WebsiteURL
	}

	expanded := strings.NewReplacer(
		"{county}", url.PathEscape(loc.County),
		"{region}", url.PathEscape(loc.Region),
		"{zip}", url.PathEscape(loc.Zip),
	).Replace(template)

	return &expanded
}
