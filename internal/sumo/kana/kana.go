// Package kana romanizes the hiragana reading of a shikona.
package kana

import (
	"strings"
	"unicode"
)

var monographs = map[rune]string{
	'あ': "a", 'い': "i", 'う': "u", 'え': "e", 'お': "o",
	'か': "ka", 'き': "ki", 'く': "ku", 'け': "ke", 'こ': "ko",
	'さ': "sa", 'し': "shi", 'す': "su", 'せ': "se", 'そ': "so",
	'た': "ta", 'ち': "chi", 'つ': "tsu", 'て': "te", 'と': "to",
	'な': "na", 'に': "ni", 'ぬ': "nu", 'ね': "ne", 'の': "no",
	'は': "ha", 'ひ': "hi", 'ふ': "fu", 'へ': "he", 'ほ': "ho",
	'ま': "ma", 'み': "mi", 'む': "mu", 'め': "me", 'も': "mo",
	'や': "ya", 'ゆ': "yu", 'よ': "yo",
	'ら': "ra", 'り': "ri", 'る': "ru", 'れ': "re", 'ろ': "ro",
	'わ': "wa", 'ゐ': "i", 'ゑ': "e", 'を': "o",
	'が': "ga", 'ぎ': "gi", 'ぐ': "gu", 'げ': "ge", 'ご': "go",
	'ざ': "za", 'じ': "ji", 'ず': "zu", 'ぜ': "ze", 'ぞ': "zo",
	'だ': "da", 'ぢ': "ji", 'づ': "zu", 'で': "de", 'ど': "do",
	'ば': "ba", 'び': "bi", 'ぶ': "bu", 'べ': "be", 'ぼ': "bo",
	'ぱ': "pa", 'ぴ': "pi", 'ぷ': "pu", 'ぺ': "pe", 'ぽ': "po",
	'ぁ': "a", 'ぃ': "i", 'ぅ': "u", 'ぇ': "e", 'ぉ': "o",
	'ゔ': "vu",
}

// small ゃゅょ combine with the preceding kana
var digraphs = map[string]string{
	"きゃ": "kya", "きゅ": "kyu", "きょ": "kyo",
	"しゃ": "sha", "しゅ": "shu", "しょ": "sho",
	"ちゃ": "cha", "ちゅ": "chu", "ちょ": "cho",
	"にゃ": "nya", "にゅ": "nyu", "にょ": "nyo",
	"ひゃ": "hya", "ひゅ": "hyu", "ひょ": "hyo",
	"みゃ": "mya", "みゅ": "myu", "みょ": "myo",
	"りゃ": "rya", "りゅ": "ryu", "りょ": "ryo",
	"ぎゃ": "gya", "ぎゅ": "gyu", "ぎょ": "gyo",
	"じゃ": "ja", "じゅ": "ju", "じょ": "jo",
	"びゃ": "bya", "びゅ": "byu", "びょ": "byo",
	"ぴゃ": "pya", "ぴゅ": "pyu", "ぴょ": "pyo",
}

// shikona are written without long vowels: ほうしょうりゅう is Hoshoryu
var longVowels = strings.NewReplacer(
	"ou", "o",
	"oo", "o",
	"uu", "u",
)

// toHiragana maps katakana onto hiragana, leaving everything else alone.
func toHiragana(text string) []rune {
	runes := []rune(text)
	for i, r := range runes {
		if r >= 'ァ' && r <= 'ヶ' {
			runes[i] = r - 0x60
		}
	}
	return runes
}

// ToRomaji converts a hiragana (or katakana) reading to lower case Hepburn romaji in
// the style used for ring names. Characters that are not kana are dropped.
func ToRomaji(reading string) string {
	runes := toHiragana(strings.TrimSpace(reading))

	var out strings.Builder
	geminate := false
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		var syllable string
		if i+1 < len(runes) {
			if s, ok := digraphs[string(runes[i:i+2])]; ok {
				syllable = s
				i++
			}
		}
		if syllable == "" {
			switch r {
			case 'っ':
				geminate = true
				continue
			case 'ん':
				syllable = "n"
			case 'ー':
				continue
			default:
				s, ok := monographs[r]
				if !ok {
					continue
				}
				syllable = s
			}
		}

		if geminate {
			geminate = false
			if strings.HasPrefix(syllable, "ch") {
				out.WriteByte('t')
			} else if syllable[0] != 'n' && !isVowel(syllable[0]) {
				out.WriteByte(syllable[0])
			}
		}
		out.WriteString(syllable)
	}

	return longVowels.Replace(out.String())
}

func isVowel(b byte) bool {
	return strings.IndexByte("aeiou", b) >= 0
}

// EnglishName capitalizes a romanized name: hoshoryu becomes Hoshoryu.
func EnglishName(romaji string) string {
	runes := []rune(strings.TrimSpace(romaji))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
