package kv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/spf13/afero"
)

// FileRepository stores each record as its own file under root:
// <namespace>/<name>.json, or <namespace>.json when the name is empty.
type FileRepository struct {
	fs   afero.Fs
	root string
}

func NewFileRepository(fsys afero.Fs, root string) *FileRepository {
	return &FileRepository{fs: fsys, root: root}
}

func (r *FileRepository) path(key Key) string {
	if key.Name == "" {
		return path.Join(r.root, key.Namespace+".json")
	}
	return path.Join(r.root, key.Namespace, key.Name+".json")
}

func (r *FileRepository) Get(ctx context.Context, key Key) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := afero.ReadFile(r.fs, r.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read record[%s]: %w", key, err)
	}
	return b, nil
}

func (r *FileRepository) Set(ctx context.Context, key Key, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p := r.path(key)
	if err := r.fs.MkdirAll(path.Dir(p), 0o700); err != nil {
		return fmt.Errorf("failed to create dir for record[%s]: %w", key, err)
	}

	// write to a temp file, then rename over the record
	tmp := p + ".tmp"
	if err := afero.WriteFile(r.fs, tmp, value, 0o600); err != nil {
		return fmt.Errorf("failed to write record[%s]: %w", key, err)
	}
	if err := r.fs.Rename(tmp, p); err != nil {
		return fmt.Errorf("failed to write record[%s]: %w", key, err)
	}
	return nil
}

func (r *FileRepository) Delete(ctx context.Context, key Key) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := r.fs.Remove(r.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete record[%s]: %w", key, err)
	}
	return nil
}
