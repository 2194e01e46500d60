package includefolder

import "bytes"

// Kind identifies which variant of FileContent a value carries.
type Kind int

const (
	// KindText marks content that decoded as valid UTF-8.
	KindText Kind = iota
	// KindBlob marks raw bytes that are not valid UTF-8.
	KindBlob
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBlob:
		return "blob"
	default:
		return "unknown"
	}
}

// FileContent is the classified payload of an embedded file.
// It is implemented by exactly two types: Text and Blob.
type FileContent interface {
	// Kind reports the variant.
	Kind() Kind

	// Bytes returns the raw content. Callers must not modify the result.
	Bytes() []byte

	// Len returns the content length in bytes.
	Len() int

	fileContent()
}

// Data converts a generated Text or Blob field into FileContent.
// Generated Files methods apply it uniformly at every nesting depth.
type Data interface {
	ToFileContent() FileContent
}

// Text is file content that is valid UTF-8. Generated structs use it as the
// field type for text files, so fields compare directly against string literals.
type Text string

// Kind implements FileContent.
func (t Text) Kind() Kind { return KindText }

// Bytes implements FileContent.
func (t Text) Bytes() []byte { return []byte(t) }

// Len implements FileContent.
func (t Text) Len() int { return len(t) }

// ToFileContent implements Data.
func (t Text) ToFileContent() FileContent { return t }

func (Text) fileContent() {}

// Blob is file content that is not valid UTF-8, kept byte for byte.
type Blob []byte

// Kind implements FileContent.
func (b Blob) Kind() Kind { return KindBlob }

// Bytes implements FileContent.
func (b Blob) Bytes() []byte { return b }

// Len implements FileContent.
func (b Blob) Len() int { return len(b) }

// ToFileContent implements Data.
func (b Blob) ToFileContent() FileContent { return b }

func (Blob) fileContent() {}

// Equal reports whether a and b have the same kind and identical bytes.
// Two nil values are equal.
func Equal(a, b FileContent) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Kind() == b.Kind() && bytes.Equal(a.Bytes(), b.Bytes())
}

var (
	_ FileContent = Text("")
	_ FileContent = Blob(nil)
	_ Data        = Text("")
	_ Data        = Blob(nil)
)
