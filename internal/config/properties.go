package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/magiconair/properties"
	"github.com/spf13/viper"
)

const keyDelimiter = "."

// propertiesCodec decodes Java-style properties files into viper's nested
// settings map. Keys are split on "." so "log.level" lands under "log".
type propertiesCodec struct{}

func (propertiesCodec) Encode(v map[string]any) ([]byte, error) {
	flat := make(map[string]string)
	flatten("", v, flat)
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	p := properties.NewProperties()
	for _, k := range keys {
		if _, _, err := p.Set(k, flat[k]); err != nil {
			return nil, err
		}
	}
	var b strings.Builder
	if _, err := p.Write(&b, properties.UTF8); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

func (propertiesCodec) Decode(b []byte, v map[string]any) error {
	p, err := properties.Load(b, properties.UTF8)
	if err != nil {
		return err
	}
	for _, key := range p.Keys() {
		value, _ := p.Get(key)
		path := strings.Split(key, keyDelimiter)
		leaf := nested(v, path[:len(path)-1])
		leaf[strings.ToLower(path[len(path)-1])] = value
	}
	return nil
}

// nested walks m along path, creating maps as needed, and returns the
// innermost one. A scalar in the way is replaced by a map.
func nested(m map[string]any, path []string) map[string]any {
	for _, k := range path {
		k = strings.ToLower(k)
		next, ok := m[k].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[k] = next
		}
		m = next
	}
	return m
}

func flatten(prefix string, m map[string]any, out map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + keyDelimiter + k
		}
		if sub, ok := v.(map[string]any); ok {
			flatten(key, sub, out)
			continue
		}
		out[key] = fmt.Sprint(v)
	}
}

// newViper returns a Viper that can read properties files.
func newViper() (*viper.Viper, error) {
	codecs := viper.NewCodecRegistry()
	for _, ext := range []string{"properties", "props", "prop"} {
		if err := codecs.RegisterCodec(ext, propertiesCodec{}); err != nil {
			return nil, err
		}
	}
	return viper.NewWithOptions(viper.WithCodecRegistry(codecs)), nil
}
