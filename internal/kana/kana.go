// Package kana converts katakana readings into the alternative spellings a
// user may type when searching: hiragana and a pragmatic romaji subset.
package kana

import (
	"strings"
)

const (
	katakanaFirst = 'ァ'
	katakanaLast  = 'ヶ'

	// kataHiraOffset is the distance between a katakana and its hiragana.
	kataHiraOffset = 0x60

	longVowelMark = 'ー'
	smallTsu      = 'ッ'
)

const vowels = "aeiou"

// ToHiragana shifts every katakana in U+30A1..U+30F6 to its hiragana
// counterpart. Other characters are kept as-is.
func ToHiragana(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= katakanaFirst && r <= katakanaLast {
			return r - kataHiraOffset
		}
		return r
	}, s)
}

// ToRomaji romanizes katakana left to right. Characters without a mapping
// are dropped from the output.
func ToRomaji(s string) string {
	if s == "" {
		return ""
	}

	rs := []rune(s)
	var out []string

	for i := 0; i < len(rs); {
		switch rs[i] {
		case longVowelMark:
			// Stretch the trailing vowel of the previous chunk
			if n := len(out); n > 0 {
				if v := trailingVowel(out[n-1]); v != 0 {
					out[n-1] += string(v)
				}
			}
			i++
			continue

		case smallTsu:
			// Geminate: emit the consonant that opens the next syllable
			if i+1 < len(rs) {
				next := ""
				if i+2 < len(rs) {
					next = digraphRomaji[string(rs[i+1:i+3])]
				}
				if next == "" {
					next = baseRomaji[rs[i+1]]
				}
				if next != "" && !strings.ContainsRune(vowels, rune(next[0])) {
					out = append(out, next[:1])
				}
			}
			i++
			continue
		}

		if i+1 < len(rs) && smallKana[rs[i+1]] {
			if rom, ok := digraphRomaji[string(rs[i:i+2])]; ok {
				out = append(out, rom)
				i += 2
				continue
			}
		}

		if rom := baseRomaji[rs[i]]; rom != "" {
			out = append(out, rom)
		}
		i++
	}

	return strings.Join(out, "")
}

// trailingVowel returns the vowel chunk ends with, or 0.
func trailingVowel(chunk string) rune {
	for _, v := range vowels {
		if strings.HasSuffix(chunk, string(v)) {
			return v
		}
	}
	return 0
}

// SearchTokens builds the space separated search blob for a candidate:
// katakana, hiragana, romaji, label and id, in that order, without repeats.
func SearchTokens(label, katakana, id string) string {
	var tokens []string
	seen := make(map[string]struct{})
	add := func(tok string) {
		if tok == "" {
			return
		}
		if _, ok := seen[tok]; ok {
			return
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}

	if katakana != "" {
		add(katakana)
		add(ToHiragana(katakana))
		add(ToRomaji(katakana))
	}
	add(label)
	add(id)

	return strings.Join(tokens, " ")
}
