// Command schema-check verifies the consistency of the built-in BioPAX
// class registry: parent links, hierarchy roots, enum references and
// derived attribute shapes.
package main

import (
	"fmt"
	"os"

	"biopaxcore/pkg/biopax/schema"
)

var exitFunc = os.Exit

func main() {
	exitFunc(run(os.Stdout, os.Stderr))
}

func run(stdout, stderr interface{ Write([]byte) (int, error) }) int {
	problems := checkRegistry()
	if len(problems) > 0 {
		for _, p := range problems {
			_, _ = fmt.Fprintln(stderr, p)
		}
		_, _ = fmt.Fprintf(stderr, "schema registry has %d problems\n", len(problems))
		return 1
	}
	_, _ = fmt.Fprintf(stdout, "schema registry ok: %d classes\n", len(schema.Classes()))
	return 0
}

func checkRegistry() []string {
	var problems []string
	report := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}
	for _, name := range schema.Classes() {
		cls, ok := schema.Lookup(name)
		if !ok {
			report("class %s listed but not resolvable", name)
			continue
		}
		if cls.Parent != "" {
			if _, ok := schema.Lookup(cls.Parent); !ok {
				report("class %s has unknown parent %s", name, cls.Parent)
			}
		}
		chain := schema.Ancestors(name)
		if len(chain) == 0 {
			report("class %s has an empty ancestor chain", name)
			continue
		}
		root := chain[len(chain)-1]
		if root != "Entity" && root != "UtilityClass" {
			report("class %s is rooted at %s instead of Entity or UtilityClass", name, root)
		}
		for _, attr := range schema.Attributes(name) {
			if attr.Enum != "" {
				if attr.Kind != schema.KindEnum {
					report("%s.%s names enum %s but is not enum-kinded", name, attr.Name, attr.Enum)
				}
				if len(schema.EnumValues(attr.Enum)) == 0 {
					report("%s.%s references unknown enum %s", name, attr.Name, attr.Enum)
				}
			} else if attr.Kind == schema.KindEnum {
				report("%s.%s is enum-kinded without an enum name", name, attr.Name)
			}
			if attr.Derived && attr.Kind != schema.KindReference {
				report("%s.%s is derived but not a reference", name, attr.Name)
			}
			if attr.Ordered && !attr.Multi {
				report("%s.%s is ordered but single-valued", name, attr.Name)
			}
		}
	}
	return problems
}
