package wordplay

import "strings"

// inflection is one entry of an ordered rule list: the first rule whose
// match reports true produces the result.
type inflection struct {
	match func(word string) bool
	apply func(word string) string
}

func endsWith(suffixes ...string) func(string) bool {
	return func(word string) bool {
		for _, s := range suffixes {
			if strings.HasSuffix(word, s) {
				return true
			}
		}
		return false
	}
}

func always(string) bool { return true }

func appendSuffix(suffix string) func(string) string {
	return func(word string) string {
		return word + suffix
	}
}

func replaceSuffix(n int, suffix string) func(string) string {
	return func(word string) string {
		return word[:len(word)-n] + suffix
	}
}

var thirdPersonRules = []inflection{
	{match: endsWith("y"), apply: replaceSuffix(1, "ies")},
	{match: endsWith("o", "ch", "s", "sh", "x", "z"), apply: appendSuffix("es")},
	{match: always, apply: appendSuffix("s")},
}

var participleRules = []inflection{
	{match: endsWith("ie"), apply: replaceSuffix(2, "ying")},
	{match: endsWith("e"), apply: replaceSuffix(1, "ing")},
	{match: isCVC, apply: doubleFinal},
	{match: always, apply: appendSuffix("ing")},
}

// isCVC reports whether word is exactly three runes long and follows a
// consonant-vowel-consonant pattern. Anything that is not a vowel counts as
// a consonant.
func isCVC(word string) bool {
	r := []rune(word)
	if len(r) != 3 {
		return false
	}
	return !IsVowel(r[0]) && IsVowel(r[1]) && !IsVowel(r[2])
}

func doubleFinal(word string) string {
	r := []rune(word)
	return word + string(r[len(r)-1]) + "ing"
}

func inflect(rules []inflection, word string) string {
	for _, rule := range rules {
		if rule.match(word) {
			return rule.apply(word)
		}
	}
	return word
}

// ThirdPersonSingular returns the third person singular present form of
// verb: "try" becomes "tries", "brush" becomes "brushes" and "run" becomes
// "runs".
func ThirdPersonSingular(verb string) string {
	return inflect(thirdPersonRules, verb)
}

// PresentParticiple returns the "-ing" form of verb.
//
//	lie  -> lying
//	move -> moving
//	hug  -> hugging  (three letter consonant-vowel-consonant doubles)
//	walk -> walking
func PresentParticiple(verb string) string {
	return inflect(participleRules, verb)
}
