package sink

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
)

type SimpleSink struct {
	w        io.Writer
	location string
}

// NewSimpleSink writes to location when it is set, creating parent
// directories as needed, and to w otherwise.
func NewSimpleSink(w io.Writer, location string) Sink {

	return &SimpleSink{
		w:        w,
		location: location,
	}
}

func (s *SimpleSink) Store(payload interface{}) error {
	if s.location == "" {
		return json.NewEncoder(s.w).Encode(payload)
	}

	err := os.MkdirAll(filepath.Dir(s.location), os.ModePerm)
	if err != nil {
		if os.IsExist(err) {
			err = nil // ignore
		} else {
			return err
		}
	}

	f, err := os.Create(s.location)
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(payload)
}
