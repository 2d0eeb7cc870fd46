package document

// BinaryParser extracts plain text from one binary document format.
type BinaryParser interface {
	// Parse returns the extracted text. Failure is recoverable: the
	// caller degrades to an empty-text ParsedFile with a notice.
	Parse(data []byte) (string, error)
}

// BinaryParserFunc adapts a function to the BinaryParser interface.
type BinaryParserFunc func(data []byte) (string, error)

func (f BinaryParserFunc) Parse(data []byte) (string, error) { return f(data) }

// Registry maps binary format extensions to optional parsers. It is
// resolved once at startup; a missing entry means the capability is
// absent and the extractor reports that instead of failing.
type Registry map[string]BinaryParser

// DefaultRegistry returns the parsers this build ships with.
func DefaultRegistry() Registry {
	return Registry{
		"pdf":  BinaryParserFunc(parsePDF),
		"docx": BinaryParserFunc(parseDocx),
		"xlsx": BinaryParserFunc(parseXlsx),
	}
}

// Has reports whether a parser is registered for the extension.
func (r Registry) Has(ext string) bool {
	if r == nil {
		return false
	}
	_, ok := r[ext]
	return ok
}
