package vista

import (
	"github.com/pkg/errors"

	nt "vista/entity"
	"vista/filter"
	"vista/selection"
	"vista/sorted"
	"vista/util"
)

// Config is the yaml layout of a view.
type Config struct {
	PageSize  int               `yaml:"page_size"`
	Labels    map[string]string `yaml:"labels,omitempty"`
	Columns   []nt.Column       `yaml:"columns,omitempty"`
	Filter    filter.Config     `yaml:"filter,omitempty"`
	Sort      sorted.Config     `yaml:"sort,omitempty"`
	Selection selection.Config  `yaml:"selection,omitempty"`
}

// LoadConfig reads a layout from path.
func LoadConfig(path string) (cfg *Config, err error) {

	cfg = &Config{}
	err = util.LoadConfig(cfg, path)
	if err != nil {
		err = errors.Wrapf(err, "failed to load layout")
		return
	}

	if cfg.PageSize < 1 {
		cfg.PageSize = DefaultPageSize
	}
	return
}

// DefaultPageSize is used when a layout has none.
const DefaultPageSize = 20

// Sample is a sample layout for the fixture in testdata.
var Sample = []byte(`page_size: 4
labels:
  price.amount: Price
  price.currency: Currency
columns:
  - field: id
    width: 8
  - field: name
    width: 10
  - field: count
    width: 6
  - field: price.amount
    width: 10
  - field: price.currency
    width: 8
  - field: createdAt
    width: 24
    hidden: true
filter:
  filters:
    - name: Price
      type: withinRange
      keys: [price.amount]
      value: [100, 200000]
sort:
  key: name
  direction: asc
  types:
    name: alphanumeric
    price.amount: numeric
    createdAt: datetime
selection:
  mode: byId
  id_path: id
`)
