package sqlc

import "time"

// Bounds every analytics call made after a match ends
const QuerierCtxTimeout = time.Second * 10

type DbManager struct {
	Queries   Querier
	Analytics *AnalyticsManager
}

// NewDbManager builds the generated queries on top of db, which can be
// a *sql.DB or a *sql.Tx.
func NewDbManager(db DBTX) DbManager {
	queries := New(db)
	return DbManager{
		Queries:   queries,
		Analytics: NewAnalyticsManager(queries),
	}
}
