package token

// keywords maps each reserved word to its Spanish rendering. It is filled
// once at package init and only read afterwards.
//
// No rendering is itself a reserved word, so translating an already
// translated text changes nothing.
var keywords = map[string]string{
	// Type names
	"int":      "entero",
	"char":     "caracter",
	"float":    "flotante",
	"double":   "doble",
	"void":     "vacio",
	"long":     "largo",
	"short":    "corto",
	"unsigned": "sin_signo",
	"signed":   "con_signo",

	// Control flow
	"if":       "si",
	"else":     "sino",
	"for":      "para",
	"while":    "mientras",
	"do":       "hacer",
	"switch":   "segun",
	"case":     "caso",
	"default":  "por_defecto",
	"break":    "romper",
	"continue": "continuar",
	"return":   "retornar",
	"goto":     "ir_a",

	// Declarations
	"struct":   "estructura",
	"union":    "union_de",
	"enum":     "enumeracion",
	"typedef":  "definir_tipo",
	"const":    "constante",
	"static":   "estatico",
	"extern":   "externo",
	"auto":     "automatico",
	"register": "registro",
	"volatile": "volatil",
	"sizeof":   "tamano_de",

	// Preprocessor
	"include": "incluir",
}

// Translate returns the rendering of a reserved word.
func Translate(word string) (string, bool) {
	tr, ok := keywords[word]
	return tr, ok
}

// IsKeyword reports whether word is a reserved word that is not a type name.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok && !typeNames[word]
}

// Keywords returns every reserved word, type names included.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for kw := range keywords {
		out = append(out, kw)
	}
	return out
}
