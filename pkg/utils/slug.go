package utils

import (
	"regexp"
	"strings"
)

var nonAlnumRegexp = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateCodeFromName создает артикул (SKU) из названия.
// "Kombi Filtresi 3/4\"" -> "KOMBI_FILTRESI_3_4"
func GenerateCodeFromName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))

	replacements := map[rune]string{
		'ç': "c", 'ğ': "g", 'ı': "i", 'i': "i", 'ö': "o", 'ş': "s", 'ü': "u",
		'â': "a", 'î': "i", 'û': "u",
	}

	var sb strings.Builder
	for _, r := range s {
		if repl, ok := replacements[r]; ok {
			sb.WriteString(repl)
		} else {
			sb.WriteRune(r)
		}
	}

	res := nonAlnumRegexp.ReplaceAllString(sb.String(), "_")
	res = strings.Trim(res, "_")
	return strings.ToUpper(res)
}
