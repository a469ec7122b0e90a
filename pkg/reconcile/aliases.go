package reconcile

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/podiumlabs/podium/internal/embedded"
	"github.com/podiumlabs/podium/pkg/errors"
	"github.com/podiumlabs/podium/pkg/normalize"
)

// Aliases maps alternate country-name spellings onto the name stored in the
// base dataset, keyed in matching form. An incoming "Great Britain" resolves
// to a stored "United Kingdom" when the pair is registered here.
type Aliases map[string]string

// aliasFile is the on-disk shape of an alias table.
type aliasFile struct {
	Countries map[string]string `yaml:"countries"`
}

// DefaultAliases returns the built-in alias table compiled into the binary,
// covering the alternate spellings observed across editions of the source
// datasets.
func DefaultAliases() Aliases {
	var file aliasFile
	// The embedded table is fixed at build time; a parse failure here is a
	// build defect, not a runtime condition.
	if err := yaml.Unmarshal(embedded.AliasesYAML, &file); err != nil {
		panic(err)
	}
	return NewAliases(file.Countries)
}

// NewAliases builds an alias table from alias -> canonical name pairs.
func NewAliases(pairs map[string]string) Aliases {
	a := make(Aliases, len(pairs))
	for alias, canonical := range pairs {
		a.Add(alias, canonical)
	}
	return a
}

// LoadAliases reads an alias table from a YAML file and merges it over the
// built-in defaults, so a deployment can register dataset-specific spellings.
func LoadAliases(path string) (Aliases, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var file aliasFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	a := DefaultAliases()
	for alias, canonical := range file.Countries {
		a.Add(alias, canonical)
	}
	return a, nil
}

// Add registers one alias pair.
func (a Aliases) Add(alias, canonical string) {
	a[normalize.Key(alias)] = canonical
}

// Resolve looks up the canonical name for an alias.
func (a Aliases) Resolve(name string) (string, bool) {
	canonical, ok := a[normalize.Key(name)]
	return canonical, ok
}
