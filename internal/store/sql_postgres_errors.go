package store

import (
	"github.com/jackc/pgerrcode"
)

// ErrorClassification tells the caller whether a failed statement may
// succeed when attempted again.
type ErrorClassification int

const (
	// NonRetryable is the default for constraint violations, bad data and
	// anything unrecognised.
	NonRetryable ErrorClassification = iota

	// Retryable covers transient failures such as a dropped connection or a
	// deadlock rollback.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL by
// error class, see https://www.postgresql.org/docs/current/errcodes-appendix.html.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that do not come from the
// postgres driver are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	return classifyPgCode(postgresError(err))
}

// classifyPgCode retries connection exceptions (class 08), transaction
// rollbacks including serialization failures and deadlocks (class 40), and
// the server refusing connections while starting or overloaded.
func classifyPgCode(code string) ErrorClassification {
	switch {
	case code == "":
		return NonRetryable
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code):
		return Retryable
	case code == pgerrcode.CannotConnectNow,
		code == pgerrcode.TooManyConnections:
		return Retryable
	default:
		return NonRetryable
	}
}
