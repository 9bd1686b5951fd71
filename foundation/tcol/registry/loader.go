// File: loader.go
// Title: Procedure Definition Files
// Description: Reads procedure definitions from YAML or TOML. Custom
//              converters are referenced by name and resolved against a
//              host supplied Converters map.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-15
// Modified: 2025-10-15

package registry

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/procline/foundation/core/error"
)

// Format of a definition file
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", mdwerror.Newf("unsupported definition file: %s", filepath.Base(path)).
			WithCode(mdwerror.CodeInvalidDefinition)
	}
}

// definitionFile is the on-disk layout. YAML:
//
//	procedures:
//	  - name: draw
//	    params:
//	      - {name: x, kind: integer}
//	      - {name: color, kind: enum, values: [red, green], optional: true}
//
// TOML:
//
//	[[procedure]]
//	name = "draw"
//	[[procedure.param]]
//	name = "x"
//	kind = "integer"
type definitionFile struct {
	Procedures []fileProcedure `yaml:"procedures" toml:"procedure"`
}

type fileProcedure struct {
	Name        string      `yaml:"name" toml:"name"`
	Description string      `yaml:"description" toml:"description"`
	Handle      string      `yaml:"handle" toml:"handle"`
	Params      []fileParam `yaml:"params" toml:"param"`
}

type fileParam struct {
	Name      string   `yaml:"name" toml:"name"`
	Kind      string   `yaml:"kind" toml:"kind"`
	Optional  bool     `yaml:"optional" toml:"optional"`
	Values    []string `yaml:"values" toml:"values"`
	Converter string   `yaml:"converter" toml:"converter"`
}

// LoadDefinitions reads a definition file, choosing the format by extension
func LoadDefinitions(path string, converters Converters) ([]Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, mdwerror.Wrapf(err, "failed to read %s", path).WithCode(mdwerror.CodeInvalidDefinition)
	}
	return DecodeDefinitions(data, format, converters)
}

// DecodeDefinitions parses definition data. Unknown keys are rejected.
// The handle of each procedure is its "handle" key, or its name.
func DecodeDefinitions(data []byte, format Format, converters Converters) ([]Definition, error) {
	var file definitionFile

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return nil, mdwerror.Wrap(err, "invalid YAML definitions").WithCode(mdwerror.CodeInvalidDefinition)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &file)
		if err != nil {
			return nil, mdwerror.Wrap(err, "invalid TOML definitions").WithCode(mdwerror.CodeInvalidDefinition)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, mdwerror.Newf("unknown key in TOML definitions: %s", undecoded[0]).
				WithCode(mdwerror.CodeInvalidDefinition)
		}
	default:
		return nil, mdwerror.Newf("unsupported definition format: %s", format).
			WithCode(mdwerror.CodeInvalidDefinition)
	}

	defs := make([]Definition, 0, len(file.Procedures))
	for _, fp := range file.Procedures {
		def, err := fp.definition(converters)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// FileSource is a Source reading a definition file on every call
func FileSource(path string, converters Converters) Source {
	return SourceFunc(func() ([]Definition, error) {
		return LoadDefinitions(path, converters)
	})
}

// DataSource is a Source decoding in-memory definition data
func DataSource(data []byte, format Format, converters Converters) Source {
	return SourceFunc(func() ([]Definition, error) {
		return DecodeDefinitions(data, format, converters)
	})
}

func (fp fileProcedure) definition(converters Converters) (Definition, error) {
	def := Definition{
		Name:        fp.Name,
		Description: fp.Description,
		Handle:      fp.Handle,
		Params:      make([]ParamDefinition, 0, len(fp.Params)),
	}
	if fp.Handle == "" {
		def.Handle = fp.Name
	}

	for _, fparam := range fp.Params {
		pd, err := fparam.definition(converters)
		if err != nil {
			return Definition{}, mdwerror.Wrapf(err, "procedure `%s`", fp.Name)
		}
		def.Params = append(def.Params, pd)
	}
	return def, nil
}

func (fp fileParam) definition(converters Converters) (ParamDefinition, error) {
	kindName := fp.Kind
	if kindName == "" && fp.Converter != "" {
		kindName = KindCustom.String()
	}
	kind, err := ParseKind(kindName)
	if err != nil {
		return ParamDefinition{}, mdwerror.Wrapf(err, "parameter `%s`", fp.Name)
	}

	pd := ParamDefinition{Name: fp.Name, Kind: kind, Required: true}

	switch kind {
	case KindEnum:
		if fp.Converter != "" {
			return ParamDefinition{}, mdwerror.Newf("parameter `%s`: converter does not apply to enum kind", fp.Name).
				WithCode(mdwerror.CodeInvalidDefinition)
		}
		pd = EnumStrings(fp.Name, fp.Values...)
	case KindCustom:
		if len(fp.Values) > 0 {
			return ParamDefinition{}, mdwerror.Newf("parameter `%s`: values do not apply to custom kind", fp.Name).
				WithCode(mdwerror.CodeInvalidDefinition)
		}
		convert, ok := converters[fp.Converter]
		if !ok {
			return ParamDefinition{}, mdwerror.New(fmt.Sprintf("parameter `%s`: unknown converter `%s`", fp.Name, fp.Converter)).
				WithCode(mdwerror.CodeInvalidDefinition)
		}
		pd.Converter = convert
		pd.TypeName = fp.Converter
	default:
		if len(fp.Values) > 0 || fp.Converter != "" {
			return ParamDefinition{}, mdwerror.Newf("parameter `%s`: values and converter only apply to enum and custom kinds", fp.Name).
				WithCode(mdwerror.CodeInvalidDefinition)
		}
	}

	if fp.Optional {
		pd = pd.AsOptional()
	}
	return pd, nil
}
