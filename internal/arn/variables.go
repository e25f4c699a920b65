package arn

import "regexp"

// Matches ${name} placeholders; the name may not contain '$', '{' or '}'.
// The pattern never changes at runtime, so one package-level compile serves
// every substitution.
var variablePattern = regexp.MustCompile(`\$\{[^${}]+\}`)

// HasVariables reports whether the resource contains ${name} placeholders.
func (r ResourceIdentifier) HasVariables() bool {
	return variablePattern.MatchString(string(r))
}

// Variables returns the placeholder names present in the resource, in
// order of first appearance.
func (r ResourceIdentifier) Variables() []string {
	matches := variablePattern.FindAllString(string(r), -1)
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m[2 : len(m)-1]
	}
	return names
}

// ReplaceVariables substitutes every ${name} placeholder whose name is a
// key in context. Placeholders with no matching key stay in place so a
// later pass can resolve them; that is not an error. The substituted string
// is re-validated, so a replacement value cannot smuggle in characters the
// resource charset forbids.
func (r ResourceIdentifier) ReplaceVariables(context map[string]string) (ResourceIdentifier, error) {
	replaced := variablePattern.ReplaceAllStringFunc(string(r), func(m string) string {
		if v, ok := context[m[2:len(m)-1]]; ok {
			return v
		}
		return m
	})
	return ParseResourceIdentifier(replaced)
}
