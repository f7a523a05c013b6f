package slug

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Make приводит строку к виду "reunion-de-30-minutes": без диакритики, в нижнем регистре,
// латиница и цифры, разделенные одиночным дефисом
func Make(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, s)
	if err != nil {
		plain = s
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(plain) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}

	return strings.TrimRight(b.String(), "-")
}

// Unique подбирает свободный slug: base, base-1, base-2, ...
// taken сообщает, занят ли кандидат
func Unique(base string, taken func(candidate string) (bool, error)) (string, error) {
	candidate := base
	for i := 1; ; i++ {
		exists, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(i)
	}
}
