package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"officer-mobility/internal/mobility"
)

// Render writes a plain-text fleet mobility report.
func Render(w io.Writer, title string, r *mobility.FleetReport) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", title, strings.Repeat("=", len([]rune(title))))
	fmt.Fprintf(&b, "Officers scanned:    %d\n", r.Officers)
	fmt.Fprintf(&b, "Officers processed:  %d\n", r.Processed)
	fmt.Fprintf(&b, "Distance policy:     %s\n\n", r.Policy)

	s := r.Summary
	fmt.Fprintf(&b, "Total transfers:     %d\n", s.TotalTransfers)
	switch {
	case s.IsEmpty():
		b.WriteString("No transfers recorded.\n")
	case !s.HasDistance():
		fmt.Fprintf(&b, "No transfer has a resolved distance (%d unresolved).\n", s.TotalTransfers)
	default:
		fmt.Fprintf(&b, "With distance:       %d\n", s.ResolvedTransfers)
		fmt.Fprintf(&b, "Total distance:      %.1f km\n", s.TotalDistanceKm)
		fmt.Fprintf(&b, "Average distance:    %.1f km\n", s.AverageDistanceKm)
		fmt.Fprintf(&b, "Longest transfer:    %s (%.1f km)\n", s.LongestDescription, *s.Longest.DistanceKm)
	}

	if !s.IsEmpty() {
		b.WriteString("\nBy distance bucket:\n")
		for _, bucket := range mobility.Buckets {
			fmt.Fprintf(&b, "  %-12s %d\n", bucket, s.Buckets[bucket])
		}
	}

	if r.Partial {
		skipped := append([]mobility.Skipped(nil), r.Skipped...)
		sort.SliceStable(skipped, func(i, j int) bool { return skipped[i].OfficerID < skipped[j].OfficerID })
		fmt.Fprintf(&b, "\nSkipped officers (%d), figures above are partial:\n", len(skipped))
		for _, sk := range skipped {
			fmt.Fprintf(&b, "  %s  %s\n", sk.OfficerID, sk.Reason)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
