package basics

// Substr reports whether target occurs in s, comparing rune by rune.
// The empty target is a substring of every string.
func Substr(s, target string) bool {
	hay, needle := []rune(s), []rune(target)
	if len(needle) == 0 {
		return true
	}

	var j int
	for i := 0; i+len(needle) <= len(hay); i++ {
		for j = 0; j < len(needle) && hay[i+j] == needle[j]; j++ {
		}
		if j == len(needle) {
			return true
		}
	}

	return false
}

// LongestSequence returns the first longest run of equal consecutive runes
// in s. ok is false only for the empty string.
//
//	"ababbba" -> "bbb"
//	"aaabbb"  -> "aaa"
//	"xyz"     -> "x"
func LongestSequence(s string) (run string, ok bool) {
	rs := []rune(s)
	if len(rs) == 0 {
		return "", false
	}

	bestStart, bestLen := 0, 1
	curStart := 0
	for i := 1; i <= len(rs); i++ {
		if i < len(rs) && rs[i] == rs[curStart] {
			continue
		}
		// run [curStart, i) just closed; strictly longer keeps the first winner
		if i-curStart > bestLen {
			bestStart, bestLen = curStart, i-curStart
		}
		curStart = i
	}

	return string(rs[bestStart : bestStart+bestLen]), true
}
