package s3_test

import (
	"context"
	"lodging/config"
	otelMocks "lodging/infras/otel/mocks"
	"lodging/infras/s3"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "receipts/2026/receipt_1.pdf", s3.ObjectKey("receipts/2026", "receipt_1.pdf"))
	assert.Equal(t, "receipts/receipt_1.pdf", s3.ObjectKey("/receipts/", "receipt_1.pdf"))
	assert.Equal(t, "receipt_1.pdf", s3.ObjectKey("", "receipt_1.pdf"))
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/receipts/receipt_1.pdf",
		s3.PublicURL("https://cdn.example.com", "receipts/receipt_1.pdf"))
	assert.Equal(t, "https://cdn.example.com/lodging/receipts/receipt_1.pdf",
		s3.PublicURL("https://cdn.example.com/lodging/", "receipts/receipt_1.pdf"))
}

func TestNew_Disabled(t *testing.T) {
	storage := s3.New(&config.Config{}, otelMocks.NewOtel())

	assert.False(t, storage.Enabled())

	link, err := storage.UploadFileBytes(context.Background(), "", "receipts", "receipt_1.pdf", "application/pdf", []byte("x"))
	require.NoError(t, err)
	assert.Empty(t, link)

	assert.NoError(t, storage.DeleteFile(context.Background(), "", "receipts", "receipt_1.pdf"))
}
