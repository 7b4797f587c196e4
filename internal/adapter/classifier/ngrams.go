package classifier

import "strings"

// extractNgrams returns every character n-gram of the lowercased text for
// each length in [min, max], in document order.
func extractNgrams(text string, min, max int) []string {
	runes := []rune(strings.ToLower(text))

	var grams []string
	for n := min; n <= max; n++ {
		for i := 0; i+n <= len(runes); i++ {
			grams = append(grams, string(runes[i:i+n]))
		}
	}
	return grams
}
