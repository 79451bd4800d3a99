package catalog

import _ "embed"

//go:embed default_catalog.yaml
var defaultCatalog []byte

// Default returns the built-in taxonomy, used when no catalog file is
// configured. The built-in catalog always parses; a failure here is a
// build defect, so it panics instead of returning an error.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic("catalog: built-in catalog invalid: " + err.Error())
	}
	return c
}
