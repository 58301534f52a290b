package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
)

// multipartOverhead é a folga para os demais campos do formulário além da imagem
const multipartOverhead = 1 << 20

// parseMultipart limita o corpo antes de ler o formulário
func parseMultipart(w http.ResponseWriter, r *http.Request, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)
	if err := r.ParseMultipartForm(maxBytes + multipartOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: limite de %d bytes", domain.ErrImageTooLarge, maxBytes)
		}
		return err
	}
	return nil
}

// readImage devolve nil quando o campo não foi enviado
func readImage(r *http.Request, field string) (*domain.ImageFile, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &domain.ImageFile{
		Filename:    header.Filename,
		ContentType: contentType(header, content),
		Size:        header.Size,
		Content:     content,
	}, nil
}

// contentType usa o tipo declarado pelo cliente e, na falta dele, detecta pelo conteúdo
func contentType(header *multipart.FileHeader, content []byte) string {
	declared := strings.TrimSpace(header.Header.Get("Content-Type"))
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	return http.DetectContentType(content)
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}
