package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"showroom-audit/core/item"
	"showroom-audit/core/storage"

	"github.com/minio/minio-go/v7"
)

// Sink names
const (
	SinkFile   = "file"
	SinkObject = "object"
)

// Sink is a destination for rendered reports. The handle returned by Open
// must be closed; Close reports whether the report was stored.
type Sink interface {
	Name() string
	Open(ctx context.Context, filename string) (io.WriteCloser, Location, error)
}

// Location describes where a report was stored.
type Location string

// FileSink writes reports into a local directory.
type FileSink struct {
	Dir string
}

// Name returns the sink name.
func (s *FileSink) Name() string {
	return SinkFile
}

// Open creates filename inside the sink directory.
func (s *FileSink) Open(ctx context.Context, filename string) (io.WriteCloser, Location, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, "", fmt.Errorf("failed to create export dir: %w", err)
	}
	path := filepath.Join(s.Dir, filepath.Base(filename))
	f, err := os.Create(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create export file: %w", err)
	}
	return f, Location(path), nil
}

// ObjectSink uploads reports to the object storage bucket.
type ObjectSink struct {
	Client storage.Client
	Bucket string
	Prefix string
}

// Name returns the sink name.
func (s *ObjectSink) Name() string {
	return SinkObject
}

// Open starts a streaming upload. Bytes written to the handle are piped to
// PutObject; Close waits for the upload to complete.
func (s *ObjectSink) Open(ctx context.Context, filename string) (io.WriteCloser, Location, error) {
	objectName := s.Prefix + filepath.Base(filename)
	pr, pw := io.Pipe()
	done := make(chan error, 1)

	go func() {
		_, err := s.Client.PutObject(ctx, s.Bucket, objectName, pr, -1, minio.PutObjectOptions{
			ContentType: "text/csv",
		})
		// Unblock the writer if the upload gave up early.
		pr.CloseWithError(err)
		done <- err
	}()

	return &upload{pw: pw, done: done}, Location(s.Bucket + "/" + objectName), nil
}

type upload struct {
	pw   *io.PipeWriter
	done chan error
	err  error
	shut bool
}

func (u *upload) Write(p []byte) (int, error) {
	n, err := u.pw.Write(p)
	if err != nil {
		// The upload ended early; report its error instead of the pipe's.
		if cerr := u.Close(); cerr != nil {
			return n, cerr
		}
	}
	return n, err
}

func (u *upload) Close() error {
	if u.shut {
		return u.err
	}
	u.shut = true
	_ = u.pw.Close()
	if err := <-u.done; err != nil {
		u.err = fmt.Errorf("failed to upload report: %w", err)
	}
	return u.err
}

// Receipt describes a stored export.
type Receipt struct {
	Filename string   `json:"filename"`
	Sink     string   `json:"sink"`
	Location Location `json:"location"`
	Count    int      `json:"count"`
}

// Export renders records and stores them through sink. The sink handle is
// closed on every path. Zero records yield ErrEmptyExportSet and the sink is
// never opened.
func Export(ctx context.Context, sink Sink, records []item.Record, filename string) (*Receipt, error) {
	data, err := Render(records)
	if err != nil {
		return nil, err
	}
	return store(ctx, sink, data, filename, len(records))
}

func store(ctx context.Context, sink Sink, data []byte, filename string, count int) (receipt *Receipt, err error) {
	w, loc, err := sink.Open(ctx, filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			receipt, err = nil, cerr
		}
	}()

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}
	return &Receipt{Filename: filepath.Base(filename), Sink: sink.Name(), Location: loc, Count: count}, nil
}
