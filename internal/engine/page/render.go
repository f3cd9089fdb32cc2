package page

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"
)

const (
	// LocaleDirsPlaceholder is replaced by the locale directory map literal.
	LocaleDirsPlaceholder = "{{localeDirs}}"
	// StylesPlaceholder is replaced by the rendered stylesheet links.
	StylesPlaceholder = "{{styles}}"
	// ScriptsPlaceholder is replaced by the rendered scripts.
	ScriptsPlaceholder = "{{scripts}}"

	// CurrentLocaleVar is the template variable the entry file branches on.
	CurrentLocaleVar = "currentLocale"
)

// LocaleBlock is the extracted markup of one index file.
// Locale and Dir are empty for an unlocalized index.
type LocaleBlock struct {
	Locale string
	Dir    string
	Tags   Tags
}

// Fragments are the substitutions applied to an entry template.
type Fragments struct {
	LocaleDirs string
	Styles     string
	Scripts    string
}

// Render builds the template fragments for the given blocks, in order.
// A single block is emitted as is; several blocks are wrapped in one
// conditional chain keyed on the current locale.
func Render(blocks []LocaleBlock) (Fragments, error) {
	dirs, err := localeDirs(blocks)
	if err != nil {
		return Fragments{}, err
	}

	return Fragments{
		LocaleDirs: dirs,
		Styles:     renderCategory(blocks, func(t Tags) []string { return t.Styles }),
		Scripts:    renderCategory(blocks, func(t Tags) []string { return t.Scripts }),
	}, nil
}

func renderCategory(blocks []LocaleBlock, pick func(Tags) []string) string {
	if len(blocks) == 1 {
		return strings.Join(pick(blocks[0].Tags), "\n")
	}

	var sb strings.Builder
	for i, b := range blocks {
		if i == 0 {
			sb.WriteString("{{#if ")
		} else {
			sb.WriteString("{{else if ")
		}
		sb.WriteString("(eq " + CurrentLocaleVar + " " + strconv.Quote(b.Locale) + ")}}\n")
		if tags := pick(b.Tags); len(tags) > 0 {
			sb.WriteString(strings.Join(tags, "\n"))
			sb.WriteByte('\n')
		}
	}
	if len(blocks) > 0 {
		sb.WriteString("{{/if}}")
	}
	return sb.String()
}

// localeDirs serializes the locale to directory map as a JSON object,
// keeping declaration order.
func localeDirs(blocks []LocaleBlock) (string, error) {
	var sb strings.Builder
	sb.WriteByte('{')
	n := 0
	for _, b := range blocks {
		if b.Locale == "" {
			continue
		}
		k, err := json.Marshal(b.Locale)
		if err != nil {
			return "", err
		}
		v, err := json.Marshal(b.Dir)
		if err != nil {
			return "", err
		}
		if n > 0 {
			sb.WriteByte(',')
		}
		sb.Write(k)
		sb.WriteByte(':')
		sb.Write(v)
		n++
	}
	sb.WriteByte('}')
	return sb.String(), nil
}

type substitution struct {
	at          int
	placeholder string
	value       string
}

// Apply substitutes the first occurrence of each placeholder in template.
// Placeholders are located in template itself, never in inserted fragments.
func (f Fragments) Apply(template string) string {
	var subs []substitution
	for _, s := range []substitution{
		{placeholder: LocaleDirsPlaceholder, value: f.LocaleDirs},
		{placeholder: StylesPlaceholder, value: f.Styles},
		{placeholder: ScriptsPlaceholder, value: f.Scripts},
	} {
		if s.at = strings.Index(template, s.placeholder); s.at >= 0 {
			subs = append(subs, s)
		}
	}
	slices.SortFunc(subs, func(a, b substitution) int { return a.at - b.at })

	var out strings.Builder
	last := 0
	for _, s := range subs {
		out.WriteString(template[last:s.at])
		out.WriteString(s.value)
		last = s.at + len(s.placeholder)
	}
	out.WriteString(template[last:])
	return out.String()
}
