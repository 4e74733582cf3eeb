package convert

import "fmt"

// DecodeError reports that an input file could not be read or its bytes
// do not parse as a supported image. Fatal to the single conversion it
// occurs in; recovered per file in batch mode.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports that encoding the raster or writing the output
// failed. Same recovery scope as DecodeError.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// DirectoryError reports a batch-level directory failure: the input
// directory cannot be listed or the output directory cannot be created.
// Always fatal to the whole batch.
type DirectoryError struct {
	Path string
	Err  error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("directory %s: %v", e.Path, e.Err)
}

func (e *DirectoryError) Unwrap() error { return e.Err }
