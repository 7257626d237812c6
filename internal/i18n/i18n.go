// Package i18n resolves UI string keys to localized text. Missing keys fall
// back through a fixed chain (requested locale, then Bulgarian, then English)
// and finally to the raw key itself, so a missing translation is visible in
// tests instead of silently breaking rendering.
package i18n

import (
	"fmt"
	"time"

	"cybershield-academy/internal/domain"
)

// Resolve returns the localized string for key, walking the fallback chain.
func Resolve(key string, loc domain.Locale) string {
	if table, ok := translations[loc]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := translations[domain.LocaleBG][key]; ok {
		return s
	}
	if s, ok := translations[domain.LocaleEN][key]; ok {
		return s
	}
	return key
}

// ModuleLabel returns the short localized label for a learning module.
func ModuleLabel(moduleID string, loc domain.Locale) string {
	return Resolve("module."+moduleID, loc)
}

var bgMonths = [...]string{
	"януари", "февруари", "март", "април", "май", "юни",
	"юли", "август", "септември", "октомври", "ноември", "декември",
}

// FormatIssueDate renders a certificate issue date in the locale's long form,
// e.g. "2 септември 2026 г." or "September 2, 2026".
func FormatIssueDate(t time.Time, loc domain.Locale) string {
	if loc == domain.LocaleEN {
		return t.Format("January 2, 2006")
	}
	return fmt.Sprintf("%d %s %d г.", t.Day(), bgMonths[t.Month()-1], t.Year())
}
