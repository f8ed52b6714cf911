package datarefs

//go:generate go run ../datarefgen_standalone.go --schema schema.yaml --out .

import (
	_ "embed"
	"sort"
	"sync"

	"github.com/samber/lo"
	"github.com/xairline/xa-datarefs/models"
	"github.com/xairline/xa-datarefs/utils/codegen"
)

//go:embed schema.yaml
var schemaYAML []byte

var (
	schemaOnce sync.Once
	schema     []models.Dataref
	byKey      map[string]models.Dataref
)

func loadSchema() {
	var err error
	schema, err = codegen.ParseSchema(schemaYAML)
	if err != nil {
		// the file is embedded and covered by tests
		panic(err)
	}
	byKey = lo.KeyBy(schema, func(d models.Dataref) string { return d.DatarefStr })
}

// Schema returns every descriptor in schema order. The slice must not be modified.
func Schema() []models.Dataref {
	schemaOnce.Do(loadSchema)
	return schema
}

// Lookup finds the descriptor for a key. Keys are case-sensitive.
func Lookup(key string) (models.Dataref, bool) {
	schemaOnce.Do(loadSchema)
	d, ok := byKey[key]
	return d, ok
}

func Namespaces() []string {
	res := lo.Uniq(lo.Map(Schema(), func(d models.Dataref, _ int) string { return d.Namespace() }))
	sort.Strings(res)
	return res
}
