package graphics

import "strings"

// WrapText breaks text into lines no wider than maxWidth according to
// measure. Words wider than maxWidth get a line of their own. Existing
// newlines are kept as paragraph breaks.
func WrapText(text string, maxWidth float32, measure func(string) float32) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if measure(candidate) > maxWidth {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}
