// Package i18n renders user-facing message strings by key.
//
// Messages live in an embedded TOML catalog and may contain :name
// placeholders substituted from a parameter map:
//
//	tr.Trans("validate.auto_detected", map[string]string{
//		"key":   "baseBranch",
//		"value": "develop",
//	})
//
// An unknown key renders as the key itself, so a missing catalog entry
// degrades to something greppable instead of an error.
package i18n

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
)

//go:embed catalog.toml
var catalogTOML []byte

// Translator looks up message strings by dotted key.
type Translator struct {
	messages map[string]string
}

// New parses the embedded catalog into a Translator.
func New() (*Translator, error) {
	var raw map[string]any
	if err := toml.Unmarshal(catalogTOML, &raw); err != nil {
		return nil, errors.Wrap(err, "parsing message catalog")
	}

	messages := make(map[string]string)
	flatten("", raw, messages)
	return &Translator{messages: messages}, nil
}

// MustNew is New for package-level wiring; the embedded catalog is part of
// the binary, so a parse failure is a build defect.
func MustNew() *Translator {
	t, err := New()
	if err != nil {
		panic(err)
	}
	return t
}

// Trans renders the message stored under key, substituting :name
// placeholders from params. An unknown key returns the key itself.
func (t *Translator) Trans(key string, params map[string]string) string {
	msg, ok := t.messages[key]
	if !ok {
		return key
	}
	if len(params) == 0 {
		return msg
	}

	// Longer names first so :keyName is not clobbered by :key
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })

	pairs := make([]string, 0, len(params)*2)
	for _, name := range names {
		pairs = append(pairs, ":"+name, params[name])
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

// Has reports whether the catalog contains key.
func (t *Translator) Has(key string) bool {
	_, ok := t.messages[key]
	return ok
}

func flatten(prefix string, raw map[string]any, out map[string]string) {
	for key, value := range raw {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			flatten(full, v, out)
		case string:
			out[full] = v
		default:
			out[full] = fmt.Sprint(v)
		}
	}
}
