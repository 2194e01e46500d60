package includefolder

// PathSeparator joins the field names of a File path.
const PathSeparator = "."

// File is one embedded file reachable from a Directory.
type File struct {
	// Path is the dot-joined chain of field names leading from the directory
	// to the file, e.g. "nested.folders.test.txt".
	Path string

	// Data is the file content.
	Data FileContent
}

// Directory is implemented by every generated struct.
type Directory interface {
	// Files returns one File per embedded file below the receiver, ordered
	// lexicographically by Path. Navigating Path as field accesses on the
	// receiver yields content equal to Data.
	Files() []File
}

// Lookup returns the content stored under path in files.
func Lookup(files []File, path string) (FileContent, bool) {
	for _, f := range files {
		if f.Path == path {
			return f.Data, true
		}
	}
	return nil, false
}
