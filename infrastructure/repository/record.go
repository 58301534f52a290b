package repository

import (
	"context"
	"database/sql"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/emanuelkel/dash-delivery-wiz/infrastructure/database/postgres"
	"github.com/emanuelkel/dash-delivery-wiz/infrastructure/integrator"
	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
)

// RecordRepository lê coleções direto do Postgres do Supabase,
// no lugar da API REST. Tabelas e colunas são dinâmicas, então as linhas viram mapas.
type RecordRepository struct {
	conn postgres.Queryer
}

func NewRecordRepository(conn postgres.Queryer) *RecordRepository {
	return &RecordRepository{
		conn: conn,
	}
}

// ListRecords ignora o token: o acesso é controlado pela credencial da conexão
func (r *RecordRepository) ListRecords(ctx context.Context, _ string, collection string, query domain.RecordQuery) ([]domain.Record, error) {
	recordsSQL, args, err := buildListQuery(collection, query)
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, recordsSQL, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao consultar a tabela %s", collection)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func buildListQuery(collection string, query domain.RecordQuery) (string, []any, error) {
	if err := integrator.ValidateCollection(collection); err != nil {
		return "", nil, err
	}

	columns := []string{"*"}
	if len(query.Fields) > 0 && !(len(query.Fields) == 1 && query.Fields[0] == "*") {
		columns = make([]string, 0, len(query.Fields))
		for _, field := range query.Fields {
			if err := integrator.ValidateCollection(field); err != nil {
				return "", nil, err
			}
			columns = append(columns, pq.QuoteIdentifier(field))
		}
	}

	builder := squirrel.
		Select(columns...).
		From(pq.QuoteIdentifier(collection)).
		PlaceholderFormat(squirrel.Dollar)

	filterFields := make([]string, 0, len(query.Filter))
	for field := range query.Filter {
		filterFields = append(filterFields, field)
	}
	sort.Strings(filterFields)

	for _, field := range filterFields {
		if err := integrator.ValidateCollection(field); err != nil {
			return "", nil, err
		}
		builder = builder.Where(squirrel.Eq{pq.QuoteIdentifier(field): query.Filter[field]})
	}

	for _, field := range query.Sort {
		direction := "ASC"
		if strings.HasPrefix(field, "-") {
			direction = "DESC"
			field = strings.TrimPrefix(field, "-")
		}
		if err := integrator.ValidateCollection(field); err != nil {
			return "", nil, err
		}
		builder = builder.OrderBy(pq.QuoteIdentifier(field) + " " + direction)
	}

	if query.Limit > 0 {
		builder = builder.Limit(uint64(query.Limit))
	}

	return builder.ToSql()
}

func scanRecords(rows *sql.Rows) ([]domain.Record, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		record := make(domain.Record, len(columns))
		for i, column := range columns {
			// lib/pq devolve numeric e text como []byte
			if raw, ok := values[i].([]byte); ok {
				record[column] = string(raw)
				continue
			}
			record[column] = values[i]
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
