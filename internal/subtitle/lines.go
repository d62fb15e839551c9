package subtitle

import "strings"

// SplitLines splits text on \r\n, \r and \n. A terminator at the very end
// does not produce an extra empty line, and empty text yields no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// JoinLines joins lines with \n and no trailing newline.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
