package directusclient

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/pkg/errors"

	directusdomain "github.com/emanuelkel/dash-delivery-wiz/infrastructure/integrator/directus/domain"
	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
)

// UploadFile envia a imagem para /files. O título vai antes do arquivo,
// como o Directus exige em formulários multipart.
func (c *DirectusClient) UploadFile(ctx context.Context, token string, title string, file domain.ImageFile) (*directusdomain.File, error) {
	payload := &bytes.Buffer{}
	writer := multipart.NewWriter(payload)

	if title != "" {
		if err := writer.WriteField("title", title); err != nil {
			return nil, errors.Wrap(err, "erro ao montar o formulário")
		}
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, file.Filename))
	header.Set("Content-Type", file.ContentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar o formulário")
	}
	if _, err := part.Write(file.Content); err != nil {
		return nil, errors.Wrap(err, "erro ao copiar o arquivo")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "erro ao finalizar o formulário")
	}

	var response directusdomain.Envelope[directusdomain.File]
	err = c.do(ctx, request{
		method:      http.MethodPost,
		path:        []string{"files"},
		token:       token,
		body:        payload,
		contentType: writer.FormDataContentType(),
	}, &response)
	if err != nil {
		return nil, err
	}

	return &response.Data, nil
}

func (c *DirectusClient) AssetURL(id string) string {
	return c.baseURL + "/assets/" + id
}
