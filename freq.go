package wordplay

// CharFreq counts how often each rune occurs in s. Runes that do not occur
// have no entry, so the counts always sum to the rune length of s.
func CharFreq(s string) map[rune]int {
	freq := make(map[rune]int)
	for _, r := range s {
		freq[r]++
	}
	return freq
}
