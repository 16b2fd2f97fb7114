package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/dmitrijs2005/gophdiary/internal/client/repositories/kv"
	"github.com/spf13/afero"
)

var roster = []models.Identity{
	{Username: "Jonas", Password: "1111"},
	{Username: "umymasyed", Password: "2244"},
	{Username: "Sarah", Password: "3322"},
}

func newRecords(t *testing.T) kv.Repository {
	t.Helper()
	return kv.NewFileRepository(afero.NewMemMapFs(), "/diary")
}

// failingRepo wraps a Repository and fails selected operations.
type failingRepo struct {
	kv.Repository
	getErr error
	setErr error
	delErr error
	sets   int
}

func (f *failingRepo) Get(ctx context.Context, key kv.Key) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.Repository.Get(ctx, key)
}

func (f *failingRepo) Set(ctx context.Context, key kv.Key, value []byte) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	return f.Repository.Set(ctx, key, value)
}

func (f *failingRepo) Delete(ctx context.Context, key kv.Key) error {
	if f.delErr != nil {
		return f.delErr
	}
	return f.Repository.Delete(ctx, key)
}

var errDisk = errors.New("disk full")
