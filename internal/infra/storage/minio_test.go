package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileURL(t *testing.T) {
	s, err := NewMinioStorage(Options{
		Endpoint:  "minio.local:9000",
		AccessKey: "test",
		SecretKey: "test",
		Bucket:    "resumes",
		Secure:    false,
	})
	require.NoError(t, err)

	assert.Equal(t, "http://minio.local:9000/resumes/abc.pdf", s.FileURL("abc.pdf"))
}

func TestFileURLSecure(t *testing.T) {
	s, err := NewMinioStorage(Options{
		Endpoint:  "minio.local:9000",
		AccessKey: "test",
		SecretKey: "test",
		Bucket:    "resumes",
		Secure:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, "https://minio.local:9000/resumes/abc.pdf", s.FileURL("abc.pdf"))
}
