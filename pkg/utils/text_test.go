package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldText(t *testing.T) {
	assert.Equal(t, "concluido", FoldText("Concluído"))
	assert.Equal(t, "concluido", FoldText("  CONCLUIDO "))
	assert.Equal(t, "nao informado", FoldText("Não informado"))
	assert.Equal(t, "", FoldText(""))
}

func TestGenerateObjectKey(t *testing.T) {
	key, err := GenerateObjectKey("Logo.PNG")
	assert.NoError(t, err)
	assert.Len(t, key, 25)
	assert.Equal(t, ".png", key[len(key)-4:])

	other, err := GenerateObjectKey("logo.png")
	assert.NoError(t, err)
	assert.NotEqual(t, key, other)
}
