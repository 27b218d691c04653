package tokens

import "strings"

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// Syllables estimates the syllables of a single cleaned word by counting
// groups of consecutive vowels (a, e, i, o, u, y). A trailing silent "e"
// is dropped for words longer than two bytes unless the word ends in "le".
// Every non-empty word has at least one syllable; the empty word has none.
func Syllables(word string) int {
	if word == "" {
		return 0
	}

	count := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	if len(word) > 2 && strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 0 {
		count--
	}
	if count == 0 {
		count = 1
	}
	return count
}

// CountSyllables sums Syllables over every cleaned word of text. Words that
// clean to the empty string are skipped.
func CountSyllables(text string) int {
	total := 0
	for _, w := range CleanWords(text) {
		total += Syllables(w)
	}
	return total
}
