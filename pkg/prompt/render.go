package prompt

import (
	"fmt"
	"regexp"
	"strings"
)

var placeholderRe = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_]+)\s*\}\}`)

// Render substitutes {{variable}} placeholders in the template content.
// Every variable the template declares must be provided; extra variables are
// ignored.
func Render(t *Template, vars map[string]string) (string, error) {
	var missing []string
	for _, name := range t.Variables {
		if _, ok := vars[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("missing variables for template %q: %s",
			t.Name, strings.Join(missing, ", "))
	}

	out := placeholderRe.ReplaceAllStringFunc(t.Content, func(m string) string {
		name := placeholderRe.FindStringSubmatch(m)[1]
		if v, ok := vars[name]; ok {
			return v
		}
		// Undeclared placeholder with no value provided stays as-is.
		return m
	})

	return out, nil
}

// ExtractVariables returns the distinct placeholder names in template text,
// in order of first appearance.
func ExtractVariables(content string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, m := range placeholderRe.FindAllStringSubmatch(content, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			out = append(out, m[1])
		}
	}
	return out
}
