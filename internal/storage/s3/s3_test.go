package s3

import (
	"context"
	"errors"
	"strings"
	"testing"

	aws_s3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	PutObjectFunc func(ctx context.Context, input *aws_s3.PutObjectInput, optFns ...func(*aws_s3.Options)) (*aws_s3.PutObjectOutput, error)
	calls         []*aws_s3.PutObjectInput
}

func (f *fakeUploader) PutObject(ctx context.Context, input *aws_s3.PutObjectInput, optFns ...func(*aws_s3.Options)) (*aws_s3.PutObjectOutput, error) {
	f.calls = append(f.calls, input)
	if f.PutObjectFunc != nil {
		return f.PutObjectFunc(ctx, input, optFns...)
	}
	return &aws_s3.PutObjectOutput{}, nil
}

func TestStoreReturnsBucketURL(t *testing.T) {
	uploader := &fakeUploader{}
	g := NewWithUploader(uploader, "photos-bucket", "")

	url, err := g.Store(context.Background(), strings.NewReader("data"), 4, "image/jpeg")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "https://photos-bucket.s3.amazonaws.com/"), url)
	require.Len(t, uploader.calls, 1)
	assert.Equal(t, types.ObjectCannedACLPublicRead, uploader.calls[0].ACL)
	assert.Equal(t, "image/jpeg", *uploader.calls[0].ContentType)
}

func TestStoreEndpointURL(t *testing.T) {
	g := NewWithUploader(&fakeUploader{}, "photos", "http://localhost:9000")

	url, err := g.Store(context.Background(), strings.NewReader("data"), 4, "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:9000/photos/"), url)
}

func TestStoreKeysAreUnique(t *testing.T) {
	uploader := &fakeUploader{}
	g := NewWithUploader(uploader, "photos", "")

	_, err := g.Store(context.Background(), strings.NewReader("a"), 1, "image/jpeg")
	require.NoError(t, err)
	_, err = g.Store(context.Background(), strings.NewReader("b"), 1, "image/jpeg")
	require.NoError(t, err)

	require.Len(t, uploader.calls, 2)
	assert.NotEqual(t, *uploader.calls[0].Key, *uploader.calls[1].Key)
}

func TestStoreUploadError(t *testing.T) {
	uploader := &fakeUploader{
		PutObjectFunc: func(ctx context.Context, input *aws_s3.PutObjectInput, optFns ...func(*aws_s3.Options)) (*aws_s3.PutObjectOutput, error) {
			return nil, errors.New("network down")
		},
	}
	g := NewWithUploader(uploader, "photos", "")

	_, err := g.Store(context.Background(), strings.NewReader("data"), 4, "image/jpeg")
	assert.Error(t, err)
}
