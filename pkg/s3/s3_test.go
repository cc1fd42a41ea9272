package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectURL(t *testing.T) {
	tests := []struct {
		name   string
		client *Client
		want   string
	}{
		{
			name:   "aws default region",
			client: &Client{bucket: "images"},
			want:   "https://images.s3.us-east-1.amazonaws.com/postApp/a.png",
		},
		{
			name:   "aws region",
			client: &Client{bucket: "images", region: "eu-west-1"},
			want:   "https://images.s3.eu-west-1.amazonaws.com/postApp/a.png",
		},
		{
			name:   "minio without ssl",
			client: &Client{bucket: "images", endpoint: "http://localhost:9000"},
			want:   "http://localhost:9000/images/postApp/a.png",
		},
		{
			name:   "minio with ssl",
			client: &Client{bucket: "images", endpoint: "minio.local:9000", useSSL: true},
			want:   "https://minio.local:9000/images/postApp/a.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.client.ObjectURL("postApp/a.png"))
		})
	}
}
