// Released under an MIT license. See LICENSE.

// Package lang provides speak's keyword, builtin, and message tables.
//
// A language is selected by name when an engine is created. Nothing in
// this package is global: every table and printer belongs to its T.
package lang

import (
	_ "embed" // Blank import required by embed.
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"

	"github.com/michaelmacinnis/speak/internal/common/errs"
)

// Default is the name of the language used when none is specified.
const Default = "english"

//go:embed languages.yaml
var languages []byte //nolint:gochecknoglobals

// Canonical keyword names.
var keywords = []string{"if", "is", "else", "true", "false"} //nolint:gochecknoglobals

// Canonical builtin names.
var builtins = []string{ //nolint:gochecknoglobals
	"print", "println", "sprint", "len", "mod",
	"string", "number", "bool", "keys",
}

type conf struct {
	Tag      string            `yaml:"tag"`
	Keywords map[string]string `yaml:"keywords"`
	Builtins map[string]string `yaml:"builtins"`
	Messages map[string]string `yaml:"messages"`
}

// T (lang) maps canonical names to their spelling in one language.
type T struct {
	builtins map[string]string
	keywords map[string]string
	name     string
	printer  *message.Printer
	tag      language.Tag
}

// English returns the default language. It never fails.
func English() *T {
	l, err := Load(Default)
	if err != nil {
		panic(err.Error())
	}

	return l
}

// Load returns the embedded language called name.
func Load(name string) (*T, error) {
	return decode(languages, name)
}

// Parse reads a language table in the same format as the embedded one.
func Parse(r io.Reader, name string) (*T, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errs.Wrap(err)
	}

	return decode(b, name)
}

// Builtin returns the spelling of the canonical builtin name.
func (l *T) Builtin(name string) string {
	if s, ok := l.builtins[name]; ok {
		return s
	}

	return name
}

// Keyword returns the spelling of the canonical keyword.
func (l *T) Keyword(name string) string {
	if s, ok := l.keywords[name]; ok {
		return s
	}

	return name
}

// Keywords returns a mapping from each keyword's spelling to its canonical name.
func (l *T) Keywords() map[string]string {
	m := make(map[string]string, len(l.keywords))
	for k, v := range l.keywords {
		m[v] = k
	}

	return m
}

// Name returns the language's name.
func (l *T) Name() string {
	return l.name
}

// Tag returns the language's BCP 47 tag.
func (l *T) Tag() language.Tag {
	return l.tag
}

// Errorf returns an error with the reason r and the translated message.
func (l *T) Errorf(r errs.Reason, key string, args ...interface{}) *errs.T {
	return &errs.T{Reason: r, Message: l.Sprintf(key, args...)}
}

// Sprintf formats the message identified by key in this language.
func (l *T) Sprintf(key string, args ...interface{}) string {
	if l == nil || l.printer == nil {
		return fmt.Sprintf(key, args...)
	}

	// Only the format is translated. Arguments are rendered as fmt would,
	// without locale specific number grouping.
	vs := make([]interface{}, len(args))
	for i, a := range args {
		vs[i] = verbatim{a}
	}

	return l.printer.Sprintf(key, vs...)
}

type verbatim struct {
	v interface{}
}

func (a verbatim) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), a.v)
}

func decode(b []byte, name string) (*T, error) {
	all := map[string]conf{}

	err := yaml.Unmarshal(b, &all)
	if err != nil {
		return nil, errs.Systemf("unable to parse language tables: %v", err)
	}

	c, ok := all[name]
	if !ok {
		return nil, errs.Systemf("language %s could not be found, expected one of: %s",
			name, strings.Join(names(all), ", "))
	}

	tag, err := language.Parse(c.Tag)
	if err != nil {
		return nil, errs.Systemf("language %s has an invalid tag %q: %v", name, c.Tag, err)
	}

	l := &T{
		builtins: map[string]string{},
		keywords: map[string]string{},
		name:     name,
		tag:      tag,
	}

	for _, k := range keywords {
		l.keywords[k] = k
		if s := c.Keywords[k]; s != "" {
			l.keywords[k] = s
		}
	}

	for _, k := range builtins {
		l.builtins[k] = k
		if s := c.Builtins[k]; s != "" {
			l.builtins[k] = s
		}
	}

	b2 := catalog.NewBuilder(catalog.Fallback(language.English))
	for k, v := range c.Messages {
		err = b2.SetString(tag, k, v)
		if err != nil {
			return nil, errs.Systemf("language %s has an invalid message %q: %v", name, k, err)
		}
	}

	l.printer = message.NewPrinter(tag, message.Catalog(b2))

	return l, nil
}

func names(all map[string]conf) []string {
	ns := make([]string, 0, len(all))
	for k := range all {
		ns = append(ns, k)
	}

	sort.Strings(ns)

	return ns
}
