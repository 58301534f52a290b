package log

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields logrus.Fields

// Logger é o subconjunto de logrus usado pela aplicação
type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
	Fatal(args ...any)
	Fatalf(format string, args ...any)
}

type contextKey string

const CorrelationIDKey contextKey = "correlation_id"

const correlationIDField = "correlation_id"

// campos mantidos nos logs de desenvolvimento, além dos prefixados com user_
var devFields = map[string]struct{}{
	correlationIDField: {},
	"method":           {},
	"path":             {},
	"status_code":      {},
	"duration_ms":      {},
	"error":            {},
	"backend":          {},
	"collection":       {},
}

// logger herda os métodos de nível do *logrus.Entry e só reimplementa os With*
type logger struct {
	*logrus.Entry
}

var L Logger = newLogger()

var appEnv = os.Getenv("APP_ENV")

func newLogger() *logger {
	return &logger{Entry: logrus.NewEntry(logrus.StandardLogger())}
}

func IsDevelopment() bool {
	switch appEnv {
	case "", "development", "dev":
		return true
	}
	return false
}

// Setup configura o logger global a partir de APP_ENV e LOG_LEVEL.
// Fora de desenvolvimento a saída é JSON para o coletor de logs do Render.
func Setup(env string, level string) {
	appEnv = strings.ToLower(strings.TrimSpace(env))

	if IsDevelopment() {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
		logrus.Warnf("Nível de log %q inválido, usando info", level)
	}
	logrus.SetLevel(parsed)

	L = newLogger()
}

func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{PadLevelText: true})
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetReportCaller(false)

	L = newLogger()
}

func isRelevantField(key string) bool {
	if _, ok := devFields[key]; ok {
		return true
	}
	return strings.HasPrefix(key, "user_")
}

// filterFields descarta em desenvolvimento os campos que só poluem o terminal
func filterFields(fields Fields) logrus.Fields {
	if !IsDevelopment() {
		return logrus.Fields(fields)
	}
	kept := logrus.Fields{}
	for k, v := range fields {
		if isRelevantField(k) {
			kept[k] = v
		}
	}
	return kept
}

func (l *logger) WithField(key string, value any) Logger {
	return l.WithFields(Fields{key: value})
}

func (l *logger) WithFields(fields Fields) Logger {
	kept := filterFields(fields)
	if len(kept) == 0 {
		return l
	}
	return &logger{Entry: l.Entry.WithFields(kept)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{Entry: l.Entry.WithError(err)}
}

// WithContext anexa o correlation_id quando presente no contexto
func (l *logger) WithContext(ctx context.Context) Logger {
	if id := GetCorrelationID(ctx); id != "" {
		return &logger{Entry: l.Entry.WithField(correlationIDField, id)}
	}
	return l
}

// WithCorrelationIDValue reaproveita o ID recebido se for um UUID válido e gera um novo caso contrário
func WithCorrelationIDValue(ctx context.Context, correlationID string) (context.Context, string) {
	if _, err := uuid.Parse(correlationID); err != nil {
		correlationID = uuid.NewString()
	}
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(CorrelationIDKey).(string)
	return id
}

func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
