package driving

import "context"

// InboxService imports report files dropped into a watched directory.
type InboxService interface {
	// Run imports the files already present, then every new file until
	// ctx is cancelled. Each outcome is delivered to onImport.
	Run(ctx context.Context, onImport func(ImportEvent)) error
}

// ImportEvent describes the outcome of importing one inbox file.
type ImportEvent struct {
	// Path is the file location.
	Path string

	// Result is set when the file was saved.
	Result *SaveResult

	// Warnings are the parser warnings of the saved extraction.
	Warnings []string

	// Err is set when the file could not be imported.
	Err error
}
