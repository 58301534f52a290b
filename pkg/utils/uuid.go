package utils

import (
	"path/filepath"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateObjectKey gera uma chave única para um arquivo, preservando a extensão original
func GenerateObjectKey(filename string) (string, error) {
	id, err := gonanoid.Generate(characters, 21)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	return id + ext, nil
}
