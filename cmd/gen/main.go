// Command gen regenerates the typed gorm/gen query layer for the marketplace models.
//
//	go run ./cmd/gen -out ./internal/infra/persistence/postgres/query
package main

import (
	"flag"

	"zembil/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	out := flag.String("out", "./internal/infra/persistence/postgres/query", "output directory")
	flag.Parse()

	g := gen.NewGenerator(gen.Config{
		OutPath:           *out,
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface | gen.WithoutContext,
		FieldNullable:     true,
		FieldWithIndexTag: true,
	})

	g.ApplyBasic(model.All()...)
	g.Execute()
}
