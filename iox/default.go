package iox

// Read calls Default().Read.
func Read(target any) ([]byte, error) { return Default().Read(target) }

// ReadText calls Default().ReadText.
func ReadText(target any) (string, error) { return Default().ReadText(target) }

// ReadLines calls Default().ReadLines.
func ReadLines(target any) ([]string, error) { return Default().ReadLines(target) }

// Write calls Default().Write.
func Write(target, value any, opts ...Option) (int, error) {
	return Default().Write(target, value, opts...)
}

// Append calls Default().Append.
func Append(target, value any, opts ...Option) (int, error) {
	return Default().Append(target, value, opts...)
}

// WriteLines calls Default().WriteLines.
func WriteLines(target, lines any, opts ...Option) error {
	return Default().WriteLines(target, lines, opts...)
}

// AppendLines calls Default().AppendLines.
func AppendLines(target, lines any, opts ...Option) error {
	return Default().AppendLines(target, lines, opts...)
}

// Sum64 calls Default().Sum64.
func Sum64(target any) (uint64, error) { return Default().Sum64(target) }
