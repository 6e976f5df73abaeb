package summarizer

import (
	"fmt"
	"strings"

	"github.com/ideamans/go-l10n"
)

// MarkdownFormatter renders a Summary as a Markdown report.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format implements the Formatter interface.
func (f *MarkdownFormatter) Format(s *Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", l10n.T("Playback Summary"))
	fmt.Fprintf(&b, "%s: %s\n", l10n.T("Generated"), s.GeneratedAt.Format("2006-01-02 15:04:05"))
	if s.RunID != "" {
		fmt.Fprintf(&b, "%s: %s\n", l10n.T("Run ID"), s.RunID)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", l10n.T("Result"))
	b.WriteString(table(
		[2]string{l10n.T("Frames"), fmt.Sprint(s.Playback.Frames)},
		[2]string{l10n.T("Events"), fmt.Sprint(s.Playback.Events)},
		[2]string{l10n.T("Snapshots"), fmt.Sprint(s.Playback.Snapshots)},
		[2]string{l10n.T("Status"), status(s.Playback)},
	))

	if len(s.Streams) > 0 {
		fmt.Fprintf(&b, "\n## %s\n\n", l10n.T("Streams"))
		fmt.Fprintf(&b, "| # | %s | %s | %s |\n", l10n.T("Path"), l10n.T("Size"), l10n.T("Frames"))
		b.WriteString("|---|---|---|---|\n")
		for i, st := range s.Streams {
			fmt.Fprintf(&b, "| %d | %s | %dx%d | %d |\n", i+1, st.Path, st.Width, st.Height, st.Frames)
		}
	}

	r := s.Render
	fmt.Fprintf(&b, "\n## %s\n\n", l10n.T("Renderer"))
	rows := [][2]string{
		{l10n.T("Phase"), r.Phase},
		{l10n.T("Surface"), fmt.Sprintf("%dx%d", r.SurfaceWidth, r.SurfaceHeight)},
		{l10n.T("Frames drawn"), fmt.Sprint(r.FramesDrawn)},
		{l10n.T("Draw failures"), fmt.Sprint(r.DrawFailures)},
		{l10n.T("Surface resizes"), fmt.Sprint(r.Resizes)},
		{l10n.T("Render targets"), fmt.Sprint(r.TargetsCreated)},
		{l10n.T("Resolution changes"), fmt.Sprint(r.FormatChanges)},
	}
	if r.LastError != "" {
		rows = append(rows, [2]string{l10n.T("Last error"), r.LastError})
	}
	b.WriteString(table(rows...))

	st := s.Settings
	fmt.Fprintf(&b, "\n## %s\n\n", l10n.T("Settings"))
	snapshots := l10n.T("disabled")
	if st.SnapshotEvery > 0 {
		snapshots = l10n.F("every %d frames", st.SnapshotEvery)
	}
	b.WriteString(table(
		[2]string{l10n.T("Container"), fmt.Sprintf("%dx%d", st.ContainerWidth, st.ContainerHeight)},
		[2]string{l10n.T("Tolerance"), fmt.Sprintf("%d px", st.Tolerance)},
		[2]string{l10n.T("Scaler"), st.Scaler},
		[2]string{l10n.T("Background"), st.Background},
		[2]string{l10n.T("Snapshots"), snapshots},
	))

	return b.String()
}

func table(rows ...[2]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", l10n.T("Item"), l10n.T("Value"))
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | %s |\n", r[0], r[1])
	}
	return b.String()
}

// Ensure MarkdownFormatter implements Formatter
var _ Formatter = (*MarkdownFormatter)(nil)
