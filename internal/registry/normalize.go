package registry

import "strings"

// rolePrefixes are the honorific and role tokens stripped from the front of
// an extracted name. A single leading prefix is removed; stripping is not
// recursive.
var rolePrefixes = []string{"cto", "cfo", "cio", "vp", "director", "head", "chief", "mr", "mrs", "dr", "ms"}

// Normalize turns an extracted name into its display form: lower-case and
// trim, strip one leading role prefix if present, then title-case. Pure and
// total; unmatched input comes back title-cased unchanged.
func Normalize(rawName string) string {
	name := strings.ToLower(strings.TrimSpace(rawName))

	for _, prefix := range rolePrefixes {
		if rest, ok := strings.CutPrefix(name, prefix+" "); ok {
			name = rest
			break
		}
	}

	return titleCase(name)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
