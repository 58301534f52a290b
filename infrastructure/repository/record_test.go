package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emanuelkel/dash-delivery-wiz/infrastructure/integrator"
	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
)

func TestBuildListQuery(t *testing.T) {
	tests := []struct {
		name         string
		collection   string
		query        domain.RecordQuery
		expectedSQL  string
		expectedArgs []any
		expectedErr  error
	}{
		{
			name:        "Todas as colunas sem filtro",
			collection:  "pedidos",
			expectedSQL: `SELECT * FROM "pedidos"`,
		},
		{
			name:       "Colunas, filtros, ordenação e limite",
			collection: "pedidos",
			query: domain.RecordQuery{
				Fields: []string{"id", "valor_do_produto"},
				Filter: map[string]string{"status": "enviado", "entregador": "Carlos"},
				Sort:   []string{"-data_pedido"},
				Limit:  10,
			},
			expectedSQL:  `SELECT "id", "valor_do_produto" FROM "pedidos" WHERE "entregador" = $1 AND "status" = $2 ORDER BY "data_pedido" DESC LIMIT 10`,
			expectedArgs: []any{"Carlos", "enviado"},
		},
		{
			name:        "Tabela inválida",
			collection:  "pedidos; drop table x",
			expectedErr: integrator.ErrInvalidCollection,
		},
		{
			name:        "Coluna de ordenação inválida",
			collection:  "pedidos",
			query:       domain.RecordQuery{Sort: []string{"-data_pedido desc"}},
			expectedErr: integrator.ErrInvalidCollection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := buildListQuery(tt.collection, tt.query)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedSQL, sql)
			if tt.expectedArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.expectedArgs, args)
			}
		})
	}
}
