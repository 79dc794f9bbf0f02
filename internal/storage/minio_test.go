package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient implements objectClient in memory.
type fakeClient struct {
	objects map[string][]byte
	types   map[string]string

	putErr    error
	removeErr error
	presigned int // mints counted so we can see fresh signing
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		objects: make(map[string][]byte),
		types:   make(map[string]string),
	}
}

func (f *fakeClient) PutObject(_ context.Context, _, key string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.putErr != nil {
		return minio.UploadInfo{}, f.putErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	f.objects[key] = data
	f.types[key] = opts.ContentType
	return minio.UploadInfo{Key: key, Size: size}, nil
}

func (f *fakeClient) PresignedGetObject(_ context.Context, bucket, key string, expires time.Duration, _ url.Values) (*url.URL, error) {
	f.presigned++
	return url.Parse("https://store.test/" + bucket + "/" + url.PathEscape(key) + "?X-Amz-Expires=" + expires.String())
}

func (f *fakeClient) StatObject(_ context.Context, _, key string, _ minio.StatObjectOptions) (minio.ObjectInfo, error) {
	if _, ok := f.objects[key]; !ok {
		return minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."}
	}
	return minio.ObjectInfo{Key: key}, nil
}

func (f *fakeClient) RemoveObject(_ context.Context, _, key string, _ minio.RemoveObjectOptions) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	delete(f.objects, key)
	return nil
}

func newTestStorage() (*MinioStorage, *fakeClient) {
	client := newFakeClient()
	return &MinioStorage{client: client, bucket: "private-media"}, client
}

func TestStoreGeneratesOpaqueKey(t *testing.T) {
	s, client := newTestStorage()
	ctx := context.Background()

	data := []byte("fake png bytes")
	key, err := s.Store(ctx, bytes.NewReader(data), int64(len(data)), "image/png", "holiday.png")
	require.NoError(t, err)

	require.True(t, strings.HasSuffix(key, "-holiday.png"), "key %q should end with the original name", key)
	prefix := strings.TrimSuffix(key, "-holiday.png")
	_, err = uuid.Parse(prefix)
	assert.NoError(t, err, "key prefix %q should be a random UUID", prefix)

	assert.Equal(t, data, client.objects[key])
	assert.Equal(t, "image/png", client.types[key])
}

func TestStoreKeysNeverCollide(t *testing.T) {
	s, _ := newTestStorage()
	ctx := context.Background()

	k1, err := s.Store(ctx, strings.NewReader("a"), 1, "text/plain", "same.txt")
	require.NoError(t, err)
	k2, err := s.Store(ctx, strings.NewReader("b"), 1, "text/plain", "same.txt")
	require.NoError(t, err)

	assert.NotEqual(t, k1, k2)
}

func TestStoreStripsPathComponents(t *testing.T) {
	s, _ := newTestStorage()
	ctx := context.Background()

	key, err := s.Store(ctx, strings.NewReader("x"), 1, "text/plain", "../../etc/passwd")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, "-passwd"), "got %q", key)

	key, err = s.Store(ctx, strings.NewReader("x"), 1, "text/plain", `C:\Users\me\cat.jpg`)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, "-cat.jpg"), "got %q", key)

	key, err = s.Store(ctx, strings.NewReader("x"), 1, "text/plain", "")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, "-file"), "got %q", key)
}

func TestStorePropagatesWriteFailure(t *testing.T) {
	s, client := newTestStorage()
	client.putErr = errors.New("connection reset")

	_, err := s.Store(context.Background(), strings.NewReader("x"), 1, "text/plain", "a.txt")
	assert.Error(t, err)
}

func TestPresignedURL(t *testing.T) {
	s, _ := newTestStorage()
	ctx := context.Background()

	t.Run("empty key yields empty URL", func(t *testing.T) {
		u, err := s.PresignedURL(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, u)
	})

	t.Run("mints a fresh URL per call", func(t *testing.T) {
		_, client := newTestStorage()
		s := &MinioStorage{client: client, bucket: "private-media"}

		u, err := s.PresignedURL(ctx, "abc-file.png")
		require.NoError(t, err)
		assert.Contains(t, u, "X-Amz-Expires")

		_, err = s.PresignedURL(ctx, "abc-file.png")
		require.NoError(t, err)
		assert.Equal(t, 2, client.presigned)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("empty key is already absent", func(t *testing.T) {
		s, _ := newTestStorage()
		res, err := s.Delete(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, AlreadyAbsent, res)
	})

	t.Run("existing object is deleted", func(t *testing.T) {
		s, client := newTestStorage()
		client.objects["k"] = []byte("x")

		res, err := s.Delete(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, Deleted, res)
		assert.NotContains(t, client.objects, "k")
	})

	t.Run("missing object reports already absent", func(t *testing.T) {
		s, _ := newTestStorage()
		res, err := s.Delete(ctx, "gone")
		require.NoError(t, err)
		assert.Equal(t, AlreadyAbsent, res)
	})

	t.Run("remove failure surfaces instead of being swallowed", func(t *testing.T) {
		s, client := newTestStorage()
		client.objects["k"] = []byte("x")
		client.removeErr = errors.New("503 slow down")

		res, err := s.Delete(ctx, "k")
		assert.Error(t, err)
		assert.Equal(t, DeleteFailed, res)
	})
}
