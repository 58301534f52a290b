package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyImage       = errors.New("nenhuma imagem enviada")
	ErrInvalidImageType = errors.New("o arquivo enviado não é uma imagem")
	ErrImageTooLarge    = errors.New("a imagem excede o tamanho máximo permitido")
)

type ImageFile struct {
	Title       string
	Filename    string
	ContentType string
	Size        int64
	Content     []byte
}

func (f ImageFile) IsImage() bool {
	return strings.HasPrefix(strings.ToLower(f.ContentType), "image/")
}

// Validate confere tipo e tamanho antes de qualquer envio ao backend
func (f ImageFile) Validate(maxBytes int64) error {
	size := f.Size
	if int64(len(f.Content)) > size {
		size = int64(len(f.Content))
	}

	if size == 0 {
		return ErrEmptyImage
	}
	if !f.IsImage() {
		return fmt.Errorf("%w: %s", ErrInvalidImageType, f.ContentType)
	}
	if maxBytes > 0 && size > maxBytes {
		return fmt.Errorf("%w: %d bytes (máximo %d)", ErrImageTooLarge, size, maxBytes)
	}

	return nil
}

type StoredObject struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
