package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// replica routes a statement to a read replica when replicas are registered.
// Inside a transaction the resolver keeps the transaction's connection.
func replica(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).Clauses(dbresolver.Read)
}

// primary pins a statement to the primary, for reads that must observe the caller's own writes.
func primary(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).Clauses(dbresolver.Write)
}
