// Command gen writes typed gorm/gen query helpers for the washapp tables.
//
//	go run ./cmd/gen
package main

import (
	"washapp/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface | gen.WithoutContext,
		FieldNullable: true,
	})

	g.ApplyBasic(model.Tables()...)

	g.Execute()
}
