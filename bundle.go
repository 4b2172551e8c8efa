package tizen

import (
	"encoding/json"
	"errors"

	"github.com/bradenaw/juniper/xslices"
	"gitlab.com/c0b/go-ordered-json"
)

var ErrBadBundle = errors.New("bad bundle")

// Bundle is an ordered set of string or string-list values.
// Bundles attached to an EventArgs are shared with every reader of it.
type Bundle struct {
	values map[string]bundleValue
	order  []string
}

type bundleValue struct {
	items []string
	list  bool
}

func NewBundle() *Bundle {
	return &Bundle{
		values: make(map[string]bundleValue),
	}
}

// Add stores a single string under key.
func (b *Bundle) Add(key, value string) error {
	return b.add(key, bundleValue{items: []string{value}})
}

// AddStrings stores a string list under key.
func (b *Bundle) AddStrings(key string, values []string) error {
	return b.add(key, bundleValue{items: append([]string{}, values...), list: true})
}

func (b *Bundle) add(key string, val bundleValue) error {
	if key == "" {
		return invalidParameter()
	}

	if b.values == nil {
		b.values = make(map[string]bundleValue)
	}

	if _, ok := b.values[key]; ok {
		return invalidParameterKey(key)
	}

	b.values[key] = val
	b.order = append(b.order, key)

	return nil
}

func (b *Bundle) GetString(key string) (string, bool) {
	val, ok := b.values[key]
	if !ok || val.list {
		return "", false
	}

	return val.items[0], true
}

func (b *Bundle) GetStrings(key string) ([]string, bool) {
	val, ok := b.values[key]
	if !ok || !val.list {
		return nil, false
	}

	return xslices.Clone(val.items), true
}

func (b *Bundle) Contains(key string) bool {
	_, ok := b.values[key]
	return ok
}

// Keys returns the keys in insertion order.
func (b *Bundle) Keys() []string {
	return xslices.Clone(b.order)
}

func (b *Bundle) Count() int {
	return len(b.order)
}

func (b *Bundle) UnmarshalJSON(data []byte) error {
	// encoding/json does not keep object key order, see https://github.com/golang/go/issues/27179.
	orderedMap := ordered.NewOrderedMap()
	if err := orderedMap.UnmarshalJSON(data); err != nil {
		return err
	}

	bundle := NewBundle()

	iter := orderedMap.EntriesIter()

	for {
		entry, ok := iter()
		if !ok {
			break
		}

		switch val := entry.Value.(type) {
		case string:
			if err := bundle.Add(entry.Key, val); err != nil {
				return err
			}

		case []any:
			items := make([]string, 0, len(val))

			for _, val := range val {
				str, ok := val.(string)
				if !ok {
					return ErrBadBundle
				}

				items = append(items, str)
			}

			if err := bundle.AddStrings(entry.Key, items); err != nil {
				return err
			}

		default:
			return ErrBadBundle
		}
	}

	*b = *bundle

	return nil
}

func (b Bundle) MarshalJSON() ([]byte, error) {
	if len(b.order) == 0 {
		return []byte{'{', '}'}, nil
	}

	out := make([]byte, 0, 64)

	out = append(out, '{')

	for _, k := range b.order {
		v := b.values[k]

		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}

		var val []byte
		if v.list {
			val, err = json.Marshal(v.items)
		} else {
			val, err = json.Marshal(v.items[0])
		}
		if err != nil {
			return nil, err
		}

		out = append(out, key...)
		out = append(out, ':')
		out = append(out, val...)
		out = append(out, ',')
	}

	out[len(out)-1] = '}'

	return out, nil
}
