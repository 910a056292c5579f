package media

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/devfolio/service/internal/storage/storagetest"
)

func newTestService(store *storagetest.FakeStore) *Service {
	return NewService(store, zap.NewNop().Sugar())
}

func TestUploadRejectsDisallowedTypeBeforeStoreCall(t *testing.T) {
	store := storagetest.NewFakeStore()
	svc := newTestService(store)

	_, err := svc.Upload(context.Background(), EntityPost, "malware.exe", "application/octet-stream", []byte("x"))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, store.PutCalls, "store must not be touched for invalid files")
}

func TestUploadRejectsOversizedImageBeforeStoreCall(t *testing.T) {
	store := storagetest.NewFakeStore()
	svc := newTestService(store)

	_, err := svc.Upload(context.Background(), EntityPost, "big.png", "image/png", make([]byte, 10<<20+1))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "File too large. Maximum size is 10MB.", verr.Error())
	assert.Empty(t, store.PutCalls)
}

func TestUploadBuildsKeyAndType(t *testing.T) {
	store := storagetest.NewFakeStore()
	svc := newTestService(store)

	result, err := svc.Upload(context.Background(), EntityPost, "photo.jpg", "image/jpeg", make([]byte, 2_000_000))
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^uploads/posts/images/\d+-[a-z0-9]+\.jpg$`), result.Key)
	assert.Equal(t, TypeImage, result.Type)
	assert.Equal(t, "https://store.example/bucket/"+result.Key, result.URL)

	videoResult, err := svc.Upload(context.Background(), EntityProject, "demo.mov", "video/quicktime", []byte("mov"))
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^uploads/projects/videos/\d+-[a-z0-9]+\.mov$`), videoResult.Key)
	assert.Equal(t, TypeVideo, videoResult.Type)
}

func TestUploadYieldsDistinctKeys(t *testing.T) {
	store := storagetest.NewFakeStore()
	svc := newTestService(store)

	first, err := svc.Upload(context.Background(), EntityPost, "same.jpg", "image/jpeg", []byte("same content"))
	require.NoError(t, err)
	second, err := svc.Upload(context.Background(), EntityPost, "same.jpg", "image/jpeg", []byte("same content"))
	require.NoError(t, err)

	assert.NotEqual(t, first.Key, second.Key)
}

func TestUploadRetriesWithoutACLOnAccessError(t *testing.T) {
	store := storagetest.NewFakeStore()
	store.PutErrs = []error{errors.New("AccessControlListNotSupported: the bucket does not allow ACLs")}
	svc := newTestService(store)

	result, err := svc.Upload(context.Background(), EntityPost, "photo.jpg", "image/jpeg", []byte("data"))
	require.NoError(t, err)
	require.NotNil(t, result)

	require.Len(t, store.PutCalls, 2)
	assert.True(t, store.PutCalls[0].PublicRead, "first attempt carries the public-read ACL")
	assert.False(t, store.PutCalls[1].PublicRead, "retry drops the ACL")
	assert.Equal(t, store.PutCalls[0].Key, store.PutCalls[1].Key, "retry writes the identical key")
}

func TestUploadDoesNotRetryOtherErrors(t *testing.T) {
	store := storagetest.NewFakeStore()
	store.PutErrs = []error{errors.New("connection reset by peer")}
	svc := newTestService(store)

	_, err := svc.Upload(context.Background(), EntityPost, "photo.jpg", "image/jpeg", []byte("data"))
	require.Error(t, err)
	assert.Len(t, store.PutCalls, 1, "non-access failures get no retry")
}

func TestUploadFailedRetrySurfacesStoreError(t *testing.T) {
	store := storagetest.NewFakeStore()
	store.PutErrs = []error{
		errors.New("AccessDenied: ACL operations are not supported"),
		errors.New("AccessDenied: write forbidden"),
	}
	svc := newTestService(store)

	_, err := svc.Upload(context.Background(), EntityPost, "photo.jpg", "image/jpeg", []byte("data"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upload file to store")
	assert.Len(t, store.PutCalls, 2)
}

func TestSignedURLRequiresKey(t *testing.T) {
	store := storagetest.NewFakeStore()
	svc := newTestService(store)

	_, err := svc.SignedURL(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingKey)
	assert.Zero(t, store.PresignCalls)
}

func TestSignedURLRejectsKeysOutsideUploads(t *testing.T) {
	store := storagetest.NewFakeStore()
	svc := newTestService(store)

	_, err := svc.SignedURL(context.Background(), "etc/passwd")
	assert.ErrorIs(t, err, ErrInvalidKey)
	assert.Zero(t, store.PresignCalls, "signing API must not be called for rejected keys")
}

func TestSignedURLUsesOneHourExpiry(t *testing.T) {
	store := storagetest.NewFakeStore()
	svc := newTestService(store)

	url, err := svc.SignedURL(context.Background(), "uploads/posts/images/123-abc.jpg")
	require.NoError(t, err)
	assert.Contains(t, url, "uploads/posts/images/123-abc.jpg")
	assert.Contains(t, url, "X-Amz-Expires=3600")
	assert.Equal(t, 1, store.PresignCalls)
}

func TestSignedURLWrapsStoreError(t *testing.T) {
	store := storagetest.NewFakeStore()
	store.PresignErr = errors.New("endpoint unreachable")
	svc := newTestService(store)

	_, err := svc.SignedURL(context.Background(), "uploads/posts/images/123-abc.jpg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sign media url")
}
