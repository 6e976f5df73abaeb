package summarizer

import "github.com/ideamans/go-l10n"

// Formatter renders a playback Summary as a report.
type Formatter interface {
	Format(summary *Summary) string
}

// FormatFunc adapts a plain function to Formatter.
type FormatFunc func(summary *Summary) string

func (f FormatFunc) Format(summary *Summary) string {
	return f(summary)
}

// status describes how playback ended, in the current language.
// An interruption wins over an error recorded by the same run.
func status(p PlaybackInfo) string {
	switch {
	case p.Interrupted:
		return l10n.T("Interrupted")
	case p.Error != "":
		return l10n.F("Failed: %s", p.Error)
	default:
		return l10n.T("Completed")
	}
}
