package state

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/stsysd/tabimap/model"
)

// FileStore はデータディレクトリ内のJSONファイルに状態を保存します。
type FileStore struct {
	path string
}

// NewFileStore は <dataDir>/<key>.json に保存する FileStore を作成します。
func NewFileStore(dataDir, key string) (*FileStore, error) {
	if key == "" {
		return nil, errors.New("state key is required")
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{path: filepath.Join(dataDir, key+".json")}, nil
}

// Path は保存先ファイルのパスを返します。
func (s *FileStore) Path() string {
	return s.path
}

// Load は保存済みのコレクションを読み込みます。
func (s *FileStore) Load(_ context.Context) (model.Collection, bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read state file: %w", err)
	}

	c, err := decode(data)
	if err != nil {
		return nil, false, err
	}
	return c, true, nil
}

// Save は一時ファイルに書き出してからリネームで置き換えます。
func (s *FileStore) Save(_ context.Context, c model.Collection) error {
	data, err := encode(c)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // リネーム成功後は存在しないので無視される

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close state file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}

// Close は何もしません。
func (s *FileStore) Close() error {
	return nil
}
