package deck

import "strings"

// AccentSegment is a run of text with an accent flag. Concatenating segment
// texts in order reconstructs the source string with consumed markers removed.
type AccentSegment struct {
	Text   string
	Accent bool
}

// SegmentAccents splits text on *accent* markers.
//
// A pair of asterisks delimits an accented span, an unmatched trailing
// asterisk is kept as plain text. Adjacent markers produce an empty accented
// segment - this is intentional, the consumer decides whether an empty run is
// worth emitting.
//
//	SegmentAccents("Hello *world* today") ->
//	    [{"Hello ", false}, {"world", true}, {" today", false}]
func SegmentAccents(text string) []AccentSegment {
	if !strings.Contains(text, "*") {
		return []AccentSegment{{Text: text}}
	}

	var segments []AccentSegment
	rest := text
	for {
		open := strings.IndexByte(rest, '*')
		if open < 0 {
			break
		}
		close := strings.IndexByte(rest[open+1:], '*')
		if close < 0 {
			break
		}
		if open > 0 {
			segments = append(segments, AccentSegment{Text: rest[:open]})
		}
		segments = append(segments, AccentSegment{Text: rest[open+1 : open+1+close], Accent: true})
		rest = rest[open+close+2:]
	}
	if len(rest) > 0 {
		segments = append(segments, AccentSegment{Text: rest})
	}
	if len(segments) == 0 {
		return []AccentSegment{{Text: text}}
	}
	return segments
}

// HasAccent reports whether any segment is accented.
func HasAccent(segments []AccentSegment) bool {
	for _, s := range segments {
		if s.Accent {
			return true
		}
	}
	return false
}
