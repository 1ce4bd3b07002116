package postgraph

import (
	"errors"
	"fmt"
	"html/template"
)

// FuncMap returns the template functions for embedding the calendar in a page.
// defaults plays the role of the site-wide configuration; each postGraph call
// merges its own options over a copy of it.
func FuncMap(defaults Options) template.FuncMap {
	return template.FuncMap{
		"postGraph": func(posts []Post, overrides ...Options) (template.HTML, error) {
			override := Options{}
			for _, o := range overrides {
				override = override.Merge(o)
			}
			html, err := PostGraph(posts, defaults, override)
			if err != nil {
				return "", err
			}
			return template.HTML(html), nil //nolint:gosec // markup is generated, not user input
		},
		"graphOptions": OptionsFromPairs,
	}
}

// OptionsFromPairs builds Options from alternating key/value arguments, e.g.
// ("sort", "desc", "limit", 2). Keys use the option names of the config file.
func OptionsFromPairs(pairs ...any) (Options, error) {
	if len(pairs)%2 != 0 {
		return Options{}, fmt.Errorf("graphOptions: odd number of arguments (%d)", len(pairs))
	}

	opts := Options{}
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return Options{}, fmt.Errorf("graphOptions: key %v is not a string", pairs[i])
		}
		if err := opts.set(key, pairs[i+1]); err != nil {
			return Options{}, fmt.Errorf("graphOptions: %s: %w", key, err)
		}
	}
	return opts, nil
}

// set assigns one option by name.
func (o *Options) set(key string, value any) error {
	if target := o.stringField(key); target != nil {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		*target = s
		return nil
	}

	switch key {
	case "hyperlinks", "noStyles", "noLabels":
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		switch key {
		case "hyperlinks":
			o.Hyperlinks = Bool(b)
		case "noStyles":
			o.NoStyles = Bool(b)
		default:
			o.NoLabels = Bool(b)
		}
	case "limit":
		n, ok := value.(int)
		if !ok {
			return fmt.Errorf("expected int, got %T", value)
		}
		o.Limit = Int(n)
	case "only":
		switch v := value.(type) {
		case int:
			o.Only = []int{v}
		case []int:
			o.Only = v
		default:
			return fmt.Errorf("expected int or []int, got %T", value)
		}
	case "data":
		d, ok := value.(*Data)
		if !ok {
			return fmt.Errorf("expected *Data, got %T", value)
		}
		o.Data = d
	default:
		return errors.New("unknown option")
	}
	return nil
}

func (o *Options) stringField(key string) *string {
	switch key {
	case "sort":
		return &o.Sort
	case "prefix":
		return &o.Prefix
	case "selectorLight":
		return &o.SelectorLight
	case "selectorDark":
		return &o.SelectorDark
	case "boxColor":
		return &o.BoxColor
	case "highlightColor":
		return &o.HighlightColor
	case "textColor":
		return &o.TextColor
	case "boxColorLight":
		return &o.BoxColorLight
	case "highlightColorLight":
		return &o.HighlightColorLight
	case "textColorLight":
		return &o.TextColorLight
	case "boxColorDark":
		return &o.BoxColorDark
	case "highlightColorDark":
		return &o.HighlightColorDark
	case "textColorDark":
		return &o.TextColorDark
	default:
		return nil
	}
}
