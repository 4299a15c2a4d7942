package dfa

// Symbol is a single input token. Symbols are opaque scalars matched by
// exact equality; the engine never inspects their contents, so a symbol
// may be a character, a word, or any other atomic label.
type Symbol string

// Symbols splits s into one-character symbols. It is a convenience for
// machines whose alphabet is made of single characters, which covers the
// common textbook cases (binary strings, token classes).
func Symbols(s string) []Symbol {
	out := make([]Symbol, 0, len(s))
	for _, r := range s {
		out = append(out, Symbol(string(r)))
	}
	return out
}
