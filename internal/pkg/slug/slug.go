package slug

import "strings"

const segmentMaxLen = 12

// Segment normalizes an event name into a project-code segment:
// lowercase, keep only alphanumerics, truncate to 12 runes, uppercase.
// Names that normalize to nothing map to "NA" so the code layout stays
// stable for unnamed levels of the event hierarchy.
func Segment(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	s := sb.String()
	if s == "" {
		return "NA"
	}
	if len(s) > segmentMaxLen {
		s = s[:segmentMaxLen]
	}
	return strings.ToUpper(s)
}

// Prefix joins the three hierarchy segments into the shared code prefix.
func Prefix(mainName, subName, competitionName string) string {
	return Segment(mainName) + "_" + Segment(subName) + "_" + Segment(competitionName)
}
