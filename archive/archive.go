// Package archive は、レポートとエクスポートJSONを保存先へ書き出します。
package archive

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sink はファイルの保存先です。
type Sink interface {
	// Put は name でファイルを保存し、保存場所を返します。
	Put(ctx context.Context, name, contentType string, body []byte) (string, error)
}

// File は保存するファイルです。
type File struct {
	Name        string
	ContentType string
	Body        []byte
}

// WriteAll は files を順に保存し、保存場所を返します。
func WriteAll(ctx context.Context, sink Sink, files ...File) ([]string, error) {
	locations := make([]string, 0, len(files))
	for _, f := range files {
		loc, err := sink.Put(ctx, f.Name, f.ContentType, f.Body)
		if err != nil {
			return locations, fmt.Errorf("failed to archive %s: %w", f.Name, err)
		}
		locations = append(locations, loc)
	}
	return locations, nil
}

// DirSink はローカルディレクトリに保存します。
type DirSink struct {
	dir string
}

// NewDirSink は dir を作成して DirSink を返します。
func NewDirSink(dir string) (*DirSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}
	return &DirSink{dir: dir}, nil
}

// Put はファイルを書き込みます。同名のファイルは上書きします。
func (s *DirSink) Put(_ context.Context, name, _ string, body []byte) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, body, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

func validateName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return errors.New("invalid archive file name: " + name)
	}
	return nil
}
