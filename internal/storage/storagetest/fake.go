// Package storagetest provides an in-memory Storage fake for tests.
package storagetest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/devfolio/service/internal/storage"
)

// PutCall records one Put invocation.
type PutCall struct {
	Key         string
	ContentType string
	PublicRead  bool
	Size        int64
}

// FakeStore is an in-memory storage.Storage. PutErrs are consumed one per
// Put call; a nil entry means that call succeeds.
type FakeStore struct {
	PutCalls     []PutCall
	PutErrs      []error
	PresignCalls int
	PresignErr   error
	Objects      map[string][]byte
}

// NewFakeStore returns an empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{Objects: map[string][]byte{}}
}

func (f *FakeStore) Put(_ context.Context, key string, reader io.Reader, size int64, opts storage.PutOptions) error {
	f.PutCalls = append(f.PutCalls, PutCall{
		Key:         key,
		ContentType: opts.ContentType,
		PublicRead:  opts.PublicRead,
		Size:        size,
	})

	if len(f.PutErrs) > 0 {
		err := f.PutErrs[0]
		f.PutErrs = f.PutErrs[1:]
		if err != nil {
			return err
		}
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.Objects[key] = data
	return nil
}

func (f *FakeStore) Get(_ context.Context, key string) (io.ReadCloser, error) {
	data, ok := f.Objects[key]
	if !ok {
		return nil, errors.New("NoSuchKey: the specified key does not exist")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *FakeStore) PresignGet(_ context.Context, key string, expiry time.Duration) (string, error) {
	f.PresignCalls++
	if f.PresignErr != nil {
		return "", f.PresignErr
	}
	return fmt.Sprintf("https://store.example/bucket/%s?X-Amz-Expires=%d&X-Amz-Signature=deadbeef", key, int(expiry.Seconds())), nil
}

func (f *FakeStore) PublicURL(key string) string {
	return "https://store.example/bucket/" + key
}
