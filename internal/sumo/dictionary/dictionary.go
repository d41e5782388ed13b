// Package dictionary holds the static English <-> Japanese tables for divisions, ranks,
// sides and kimarite. Each table is written once, English to Japanese, in source.yaml
// and inverted at startup.
package dictionary

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed source.yaml
var embeddedSource []byte

// Source is the English -> Japanese source of every table.
type Source struct {
	Divisions map[string]string `yaml:"divisions"`
	Ranks     map[string]string `yaml:"ranks"`
	Sides     map[string]string `yaml:"sides"`
	Kimarite  map[string]string `yaml:"kimarite"`
}

// ParseSource decodes a yaml source document.
func ParseSource(data []byte) (Source, error) {
	var src Source
	if err := yaml.Unmarshal(data, &src); err != nil {
		return Source{}, fmt.Errorf("parse dictionary source: %w", err)
	}
	return src, nil
}

// Dictionary is an immutable bidirectional table.
type Dictionary struct {
	name       string
	toJapanese map[string]string
	toEnglish  map[string]string
	// japanese values, longest first
	prefixes []string
}

// Build inverts an English -> Japanese table, failing if two English keys share a
// Japanese value or if any side of an entry is empty.
func Build(name string, source map[string]string) (Dictionary, error) {
	d := Dictionary{
		name:       name,
		toJapanese: make(map[string]string, len(source)),
		toEnglish:  make(map[string]string, len(source)),
	}

	for en, ja := range source {
		en = strings.TrimSpace(en)
		ja = strings.TrimSpace(ja)
		if en == "" || ja == "" {
			return Dictionary{}, fmt.Errorf("dictionary %s: empty entry %q -> %q", name, en, ja)
		}
		if existing, ok := d.toEnglish[ja]; ok {
			return Dictionary{}, fmt.Errorf(
				"dictionary %s: %q and %q both map to %q",
				name, existing, en, ja,
			)
		}
		d.toJapanese[en] = ja
		d.toEnglish[ja] = en
		d.prefixes = append(d.prefixes, ja)
	}

	slices.SortFunc(d.prefixes, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return strings.Compare(a, b)
	})

	return d, nil
}

func (d Dictionary) Name() string {
	return d.name
}

func (d Dictionary) Len() int {
	return len(d.toJapanese)
}

// Japanese looks up the Japanese form of an English key.
func (d Dictionary) Japanese(en string) (string, bool) {
	ja, ok := d.toJapanese[en]
	return ja, ok
}

// English looks up the English key of a Japanese value.
func (d Dictionary) English(ja string) (string, bool) {
	en, ok := d.toEnglish[ja]
	return en, ok
}

// Prefixes returns the Japanese values ordered longest first, so that the first
// prefix a string starts with is also the longest one.
func (d Dictionary) Prefixes() []string {
	return slices.Clone(d.prefixes)
}

// MatchPrefix returns the English key and Japanese value of the longest entry that
// `text` starts with.
func (d Dictionary) MatchPrefix(text string) (en string, ja string, ok bool) {
	for _, prefix := range d.prefixes {
		if strings.HasPrefix(text, prefix) {
			return d.toEnglish[prefix], prefix, true
		}
	}
	return "", "", false
}

var (
	Divisions Dictionary
	Ranks     Dictionary
	Sides     Dictionary
	Kimarite  Dictionary
)

func mustBuild(name string, source map[string]string) Dictionary {
	d, err := Build(name, source)
	if err != nil {
		panic(err)
	}
	return d
}

func init() {
	src, err := ParseSource(embeddedSource)
	if err != nil {
		panic(err)
	}
	Divisions = mustBuild("divisions", src.Divisions)
	Ranks = mustBuild("ranks", src.Ranks)
	Sides = mustBuild("sides", src.Sides)
	Kimarite = mustBuild("kimarite", src.Kimarite)
}
