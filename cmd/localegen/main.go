package main

import (
	"errors"
	"flag"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	json "github.com/goccy/go-json"
	"github.com/hashicorp/go-multierror"
)

// DefaultFactoryImport is the factory package generated code registers into.
const DefaultFactoryImport = "github.com/sghaida/solid/creational/factory"

// Spec is the input schema consumed by the generator.
type Spec struct {
	Package  string `json:"package"`
	TypeName string `json:"typeName"`
	Language string `json:"language"`

	// Register adds an init() that registers Language in factory.Default.
	Register bool `json:"register"`

	Translations map[string]string `json:"translations"`

	// FactoryImport overrides DefaultFactoryImport.
	FactoryImport string `json:"factoryImport"`
}

// entry is one translation in deterministic order.
type entry struct {
	Word        string
	Translation string
}

// templateData is the input passed to the Go template.
type templateData struct {
	Spec          Spec
	FactoryImport string
	Entries       []entry
}

// run executes the generator and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("localegen", flag.ContinueOnError)
	flags.SetOutput(stderr)

	specPath := flags.String("spec", "", "path to language.locale.json")
	outPath := flags.String("out", "", "output .gen.go file path")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if strings.TrimSpace(*specPath) == "" || strings.TrimSpace(*outPath) == "" {
		_, _ = fmt.Fprintln(stderr, "usage: localegen -spec <file.locale.json> -out <file.gen.go>")
		return 2
	}

	spec, err := readSpec(*specPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "localegen:", err)
		return 1
	}

	src, err := generate(spec)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "localegen:", err)
		return 1
	}

	if err := writeFileAtomic(filepath.Clean(*outPath), src, 0o644); err != nil {
		_, _ = fmt.Fprintln(stderr, "localegen:", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// readSpec decodes and validates the spec at path.
func readSpec(path string) (Spec, error) {
	specBytes, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, err
	}

	var spec Spec
	if err := json.Unmarshal(specBytes, &spec); err != nil {
		return Spec{}, err
	}
	if err := validateSpec(spec); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

// validateSpec reports every problem with spec at once.
func validateSpec(spec Spec) error {
	var result *multierror.Error

	if !token.IsIdentifier(spec.Package) {
		result = multierror.Append(result, fmt.Errorf("package %q is not a valid identifier", spec.Package))
	}
	if !token.IsIdentifier(spec.TypeName) || !token.IsExported(spec.TypeName) {
		result = multierror.Append(result, fmt.Errorf("typeName %q must be an exported identifier", spec.TypeName))
	}
	if strings.TrimSpace(spec.Language) == "" {
		result = multierror.Append(result, errors.New("language must not be empty"))
	}
	if len(spec.Translations) == 0 {
		result = multierror.Append(result, errors.New("translations must have at least 1 entry"))
	}
	for word := range spec.Translations {
		if word == "" {
			result = multierror.Append(result, errors.New("translations contain an empty word"))
		}
	}

	return result.ErrorOrNil()
}

// generate renders and formats the Go source for spec.
func generate(spec Spec) ([]byte, error) {
	data := templateData{
		Spec:          spec,
		FactoryImport: spec.FactoryImport,
		Entries:       make([]entry, 0, len(spec.Translations)),
	}
	if data.FactoryImport == "" {
		data.FactoryImport = DefaultFactoryImport
	}
	for w, t := range spec.Translations {
		data.Entries = append(data.Entries, entry{Word: w, Translation: t})
	}
	sort.Slice(data.Entries, func(i, j int) bool { return data.Entries[i].Word < data.Entries[j].Word })

	var out strings.Builder
	if err := genTemplate.Execute(&out, data); err != nil {
		return nil, err
	}
	return format.Source([]byte(out.String()))
}

// genTemplate is the Go source template for a generated localizer.
var genTemplate = template.Must(
	template.New("localegen").Parse(`// Code generated by localegen; DO NOT EDIT.

package {{.Spec.Package}}

import factory "{{.FactoryImport}}"

// {{.Spec.TypeName}} localizes the {{.Spec.Language}} vocabulary.
type {{.Spec.TypeName}} struct{ *factory.TableLocalizer }

// New{{.Spec.TypeName}} builds the localizer.
func New{{.Spec.TypeName}}() *{{.Spec.TypeName}} {
	return &{{.Spec.TypeName}}{factory.NewTableLocalizer(map[string]string{
	{{- range .Entries}}
		{{printf "%q" .Word}}: {{printf "%q" .Translation}},
	{{- end}}
	})}
}
{{- if .Spec.Register}}

func init() {
	factory.Default.MustRegister({{printf "%q" .Spec.Language}}, func() factory.Localizer { return New{{.Spec.TypeName}}() })
}
{{- end}}
`),
)

// tempFile abstracts an os.File for testability.
type tempFile interface {
	Name() string
	Write([]byte) (int, error)
	Close() error
}

// File operation hooks, overridden in tests.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	chmodFile      = os.Chmod
	renameFile     = os.Rename
	removeFile     = os.Remove
)

// writeFileAtomic writes to a temporary file in the target directory and renames
// it over targetPath, so readers never observe partial writes.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) (err error) {
	tmpFile, err := createTempFile(filepath.Dir(targetPath), filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = removeFile(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = chmodFile(tmpPath, perm); err != nil {
		return err
	}
	return renameFile(tmpPath, targetPath)
}
