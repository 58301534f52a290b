package supabaseclient

import (
	"bytes"
	"context"
	"net/http"
	"strconv"

	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
)

func (c *SupabaseClient) Upload(ctx context.Context, token string, bucket string, key string, file domain.ImageFile, upsert bool) error {
	return c.do(ctx, request{
		method:      http.MethodPost,
		path:        []string{"storage", "v1", "object", bucket, key},
		token:       token,
		body:        bytes.NewReader(file.Content),
		contentType: file.ContentType,
		headers:     map[string]string{"x-upsert": strconv.FormatBool(upsert)},
	}, nil)
}

func (c *SupabaseClient) PublicURL(bucket string, key string) string {
	return c.baseURL + "/storage/v1/object/public/" + bucket + "/" + key
}
