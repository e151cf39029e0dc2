// Package address splits Terraform resource addresses into segments and
// joins segments back into addresses.
//
// A resource address is a dot/bracket-delimited path, like
// "module.vpc.aws_subnet.private[0]". Terraform pairs each label with the
// name that follows it, so the segments of that address are "module.vpc",
// "aws_subnet.private" and "[0]" rather than its four dot-separated words.
package address

import (
	"regexp"
	"strings"
)

// A segment is either a name pair or an instance key:
//
//   - a name segment starts with a letter, digit or underscore, may contain
//     dashes, and carries at most one interior dot ("aws_subnet.private");
//   - a bracket segment runs from "[" to the next "]", verbatim ("[0]",
//     `["key"]`).
var segmentPattern = regexp.MustCompile(`[0-9A-Za-z_][0-9A-Za-z_-]*(?:\.[0-9A-Za-z_-]+)?|\[[^\]]*\]`)

// Split breaks a resource address into its segments. It never fails:
// characters that do not start a segment, like the separator dots between
// segments, are skipped. Malformed input yields whatever segments could be
// recognized, possibly none.
func Split(addr string) []string {
	return segmentPattern.FindAllString(addr, -1)
}

// Join concatenates segments into an address. Segments are separated by a
// dot, except that no separator precedes a bracket segment:
// Join("aws_subnet.private", "[0]") is "aws_subnet.private[0]".
func Join(segments ...string) string {
	var b strings.Builder

	for i, s := range segments {
		if i > 0 && !strings.HasPrefix(s, "[") {
			b.WriteByte('.')
		}
		b.WriteString(s)
	}

	return b.String()
}
