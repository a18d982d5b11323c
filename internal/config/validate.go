package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed config.schema.json
var schemaSource string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("config.schema.json", schemaSource)
	})
	return schema, schemaErr
}

// Validate checks field ranges against the embedded JSON schema and then the
// rules that span several fields.
func (c Config) Validate() error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}

	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return err
	}

	var errs []error
	t := c.Terrain
	if t.MinHeight > t.MaxHeight {
		errs = append(errs, fmt.Errorf("terrain.min_height (%d) must not exceed terrain.max_height (%d)", t.MinHeight, t.MaxHeight))
	}
	if t.SeaLevel > t.MaxHeight {
		errs = append(errs, fmt.Errorf("terrain.sea_level (%d) must not exceed terrain.max_height (%d)", t.SeaLevel, t.MaxHeight))
	}
	if t.Low.Weight+t.High.Weight <= 0 {
		errs = append(errs, errors.New("terrain octave weights must sum to a positive value"))
	}
	v := c.Vegetation
	if v.Spacing > v.Cell {
		errs = append(errs, fmt.Errorf("vegetation.spacing (%d) must not exceed vegetation.cell (%d)", v.Spacing, v.Cell))
	}
	return errors.Join(errs...)
}
