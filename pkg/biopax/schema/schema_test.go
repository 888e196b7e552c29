package schema

import "testing"

func TestAncestorChains(t *testing.T) {
	cases := []struct {
		class string
		chain []string
	}{
		{"Protein", []string{"Protein", "SimplePhysicalEntity", "PhysicalEntity", "Entity"}},
		{"Complex", []string{"Complex", "PhysicalEntity", "Entity"}},
		{"Catalysis", []string{"Catalysis", "Control", "Interaction", "Entity"}},
		{"TransportWithBiochemicalReaction", []string{"TransportWithBiochemicalReaction", "BiochemicalReaction", "Conversion", "Interaction", "Entity"}},
		{"UnificationXref", []string{"UnificationXref", "Xref", "UtilityClass"}},
		{"CovalentBindingFeature", []string{"CovalentBindingFeature", "BindingFeature", "EntityFeature", "UtilityClass"}},
	}
	for _, tc := range cases {
		got := Ancestors(tc.class)
		if len(got) != len(tc.chain) {
			t.Fatalf("%s: chain %v, want %v", tc.class, got, tc.chain)
		}
		for i := range got {
			if got[i] != tc.chain[i] {
				t.Fatalf("%s: chain %v, want %v", tc.class, got, tc.chain)
			}
		}
	}
}

func TestIsAssignable(t *testing.T) {
	cases := []struct {
		class, ancestor string
		want            bool
	}{
		{"Protein", "PhysicalEntity", true},
		{"Protein", "Protein", true},
		{"Protein", "Complex", false},
		{"SmallMolecule", "SimplePhysicalEntity", true},
		{"Complex", "SimplePhysicalEntity", false},
		{"Catalysis", "Control", true},
		{"Pathway", "UtilityClass", false},
		{"ProteinReference", "EntityReference", true},
	}
	for _, tc := range cases {
		if got := IsAssignable(tc.class, tc.ancestor); got != tc.want {
			t.Fatalf("IsAssignable(%s, %s) = %v, want %v", tc.class, tc.ancestor, got, tc.want)
		}
	}
}

func TestFlattenedAttributesInherit(t *testing.T) {
	byName := make(map[string]Attribute)
	for _, a := range Attributes("Protein") {
		byName[a.Name] = a
	}
	er, ok := byName["entityReference"]
	if !ok {
		t.Fatalf("Protein missing entityReference")
	}
	if er.Multi || er.Kind != KindReference {
		t.Fatalf("entityReference schema wrong: %+v", er)
	}
	xref, ok := byName["xref"]
	if !ok {
		t.Fatalf("Protein missing inherited xref")
	}
	if !xref.Multi || xref.Kind != KindReference {
		t.Fatalf("xref schema wrong: %+v", xref)
	}
	if _, ok := byName["component"]; ok {
		t.Fatalf("Protein must not inherit Complex.component")
	}
}

func TestComplexHasNoEntityReference(t *testing.T) {
	if _, ok := AttributeOf("Complex", "entityReference"); ok {
		t.Fatalf("Complex must not declare entityReference")
	}
	comp, ok := AttributeOf("Complex", "component")
	if !ok {
		t.Fatalf("Complex missing component")
	}
	if !comp.Multi || !comp.Ordered {
		t.Fatalf("component must be an ordered sequence: %+v", comp)
	}
}

func TestDerivedBackReferences(t *testing.T) {
	for _, name := range []string{"controllerOf", "componentOf", "memberPhysicalEntityOf"} {
		a, ok := AttributeOf("Protein", name)
		if !ok {
			t.Fatalf("Protein missing derived attribute %s", name)
		}
		if !a.Derived || !a.Multi {
			t.Fatalf("%s must be derived multi: %+v", name, a)
		}
	}
}

func TestEnumValues(t *testing.T) {
	if !IsEnumValue("ControlType", "ACTIVATION") {
		t.Fatalf("ACTIVATION missing from ControlType")
	}
	if IsEnumValue("ControlType", "SIDEWAYS") {
		t.Fatalf("unexpected ControlType literal accepted")
	}
	a, ok := AttributeOf("Catalysis", "controlType")
	if !ok || a.Kind != KindEnum || a.Enum != "ControlType" {
		t.Fatalf("Catalysis.controlType schema wrong: %+v ok=%v", a, ok)
	}
}

func TestRegistryCoversLevel3Profile(t *testing.T) {
	if n := len(Classes()); n < 60 {
		t.Fatalf("registry too small: %d classes", n)
	}
	for _, name := range []string{"Pathway", "BiochemicalReaction", "Stoichiometry", "PublicationXref", "TissueVocabulary"} {
		if _, ok := Lookup(name); !ok {
			t.Fatalf("missing class %s", name)
		}
	}
	if c, _ := Lookup("Entity"); !c.Abstract {
		t.Fatalf("Entity must be abstract")
	}
}
