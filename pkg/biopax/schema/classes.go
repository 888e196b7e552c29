package schema

// Attribute constructors keep the class table compact. Names follow the
// BioPAX Level-3 OWL property names exactly; the reader and writer use them
// verbatim as XML element names.

func prim(name string) Attribute  { return Attribute{Name: name, Kind: KindPrimitive} }
func prims(name string) Attribute { return Attribute{Name: name, Kind: KindPrimitive, Multi: true} }
func ref(name string) Attribute   { return Attribute{Name: name, Kind: KindReference} }
func refs(name string) Attribute  { return Attribute{Name: name, Kind: KindReference, Multi: true} }
func seq(name string) Attribute {
	return Attribute{Name: name, Kind: KindReference, Multi: true, Ordered: true}
}
func enum(name, set string) Attribute { return Attribute{Name: name, Kind: KindEnum, Enum: set} }
func back(name string) Attribute {
	return Attribute{Name: name, Kind: KindReference, Multi: true, Derived: true}
}

// named is the attribute block shared by every class carrying human-readable
// names (Entity, EntityReference, Provenance, BioSource).
func named() []Attribute {
	return []Attribute{prims("name"), prim("displayName"), prim("standardName")}
}

func attrs(groups ...[]Attribute) []Attribute {
	var out []Attribute
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func list(a ...Attribute) []Attribute { return a }

// enumTable holds the enumerated literal sets referenced from the class table.
var enumTable = map[string][]string{
	"ControlType": {
		"ACTIVATION", "ACTIVATION-ALLOSTERIC", "ACTIVATION-NONALLOSTERIC",
		"INHIBITION", "INHIBITION-ALLOSTERIC", "INHIBITION-COMPETITIVE",
		"INHIBITION-IRREVERSIBLE", "INHIBITION-NONCOMPETITIVE",
		"INHIBITION-OTHER", "INHIBITION-UNCOMPETITIVE",
	},
	"CatalysisDirection":     {"LEFT-TO-RIGHT", "RIGHT-TO-LEFT"},
	"ConversionDirection":    {"LEFT-TO-RIGHT", "RIGHT-TO-LEFT", "REVERSIBLE"},
	"TemplateDirection":      {"FORWARD", "REVERSE"},
	"StepDirection":          {"LEFT-TO-RIGHT", "RIGHT-TO-LEFT"},
	"SequencePositionStatus": {"EQUAL", "GREATER-THAN", "LESS-THAN"},
	"StructureFormat":        {"CML", "SMILES", "InChI"},
}

// classTable is the declarative description of the BioPAX Level-3 hierarchy.
// Two roots: Entity (things that happen or take part) and UtilityClass
// (supporting metadata). Each entry lists only its own declared attributes;
// inheritance is resolved by the registry.
var classTable = []Class{
	// ----- Entity branch -----
	{Name: "Entity", Abstract: true, Attributes: attrs(named(), list(
		prims("comment"), prims("availability"),
		refs("dataSource"), refs("evidence"), refs("xref"),
	))},
	{Name: "PhysicalEntity", Parent: "Entity", Attributes: list(
		ref("cellularLocation"),
		refs("feature"), refs("notFeature"), refs("memberPhysicalEntity"),
		back("memberPhysicalEntityOf"), back("componentOf"), back("controllerOf"),
	)},
	{Name: "SimplePhysicalEntity", Parent: "PhysicalEntity", Abstract: true, Attributes: list(
		ref("entityReference"),
	)},
	{Name: "Protein", Parent: "SimplePhysicalEntity"},
	{Name: "SmallMolecule", Parent: "SimplePhysicalEntity"},
	{Name: "Rna", Parent: "SimplePhysicalEntity"},
	{Name: "Dna", Parent: "SimplePhysicalEntity"},
	{Name: "RnaRegion", Parent: "SimplePhysicalEntity"},
	{Name: "DnaRegion", Parent: "SimplePhysicalEntity"},
	{Name: "Complex", Parent: "PhysicalEntity", Attributes: list(
		seq("component"), seq("componentStoichiometry"),
	)},
	{Name: "Gene", Parent: "Entity", Attributes: list(ref("organism"))},
	{Name: "Interaction", Parent: "Entity", Attributes: list(
		refs("interactionType"), refs("participant"),
	)},
	{Name: "GeneticInteraction", Parent: "Interaction", Attributes: list(
		refs("interactionScore"), ref("phenotype"),
	)},
	{Name: "MolecularInteraction", Parent: "Interaction"},
	{Name: "TemplateReaction", Parent: "Interaction", Attributes: list(
		refs("product"), ref("template"), enum("templateDirection", "TemplateDirection"),
	)},
	{Name: "Control", Parent: "Interaction", Attributes: list(
		enum("controlType", "ControlType"), refs("controller"), ref("controlled"),
	)},
	{Name: "Catalysis", Parent: "Control", Attributes: list(
		enum("catalysisDirection", "CatalysisDirection"), refs("cofactor"),
	)},
	{Name: "Modulation", Parent: "Control"},
	{Name: "TemplateReactionRegulation", Parent: "Control"},
	{Name: "Conversion", Parent: "Interaction", Attributes: list(
		enum("conversionDirection", "ConversionDirection"),
		refs("left"), refs("right"), refs("participantStoichiometry"),
		prim("spontaneous"),
	)},
	{Name: "BiochemicalReaction", Parent: "Conversion", Attributes: list(
		refs("deltaG"), prims("deltaH"), prims("deltaS"),
		prims("eCNumber"), refs("kEQ"),
	)},
	{Name: "TransportWithBiochemicalReaction", Parent: "BiochemicalReaction"},
	{Name: "ComplexAssembly", Parent: "Conversion"},
	{Name: "Degradation", Parent: "Conversion"},
	{Name: "Transport", Parent: "Conversion"},
	{Name: "Pathway", Parent: "Entity", Attributes: list(
		ref("organism"), refs("pathwayComponent"), refs("pathwayOrder"),
	)},

	// ----- Utility branch -----
	{Name: "UtilityClass", Abstract: true, Attributes: list(prims("comment"))},
	{Name: "ChemicalStructure", Parent: "UtilityClass", Attributes: list(
		prim("structureData"), enum("structureFormat", "StructureFormat"),
	)},
	{Name: "BioSource", Parent: "UtilityClass", Attributes: attrs(named(), list(
		ref("cellType"), ref("tissue"), refs("xref"),
	))},
	{Name: "Provenance", Parent: "UtilityClass", Attributes: attrs(named(), list(
		refs("xref"),
	))},
	{Name: "Evidence", Parent: "UtilityClass", Attributes: list(
		refs("confidence"), refs("evidenceCode"), refs("experimentalForm"), refs("xref"),
	)},
	{Name: "ExperimentalForm", Parent: "UtilityClass", Attributes: list(
		refs("experimentalFormDescription"), ref("experimentalFormEntity"),
		refs("experimentalFeature"),
	)},
	{Name: "Score", Parent: "UtilityClass", Attributes: list(
		prim("value"), ref("scoreSource"), refs("xref"),
	)},
	{Name: "Xref", Parent: "UtilityClass", Abstract: true, Attributes: list(
		prim("db"), prim("dbVersion"), prim("id"), prim("idVersion"),
	)},
	{Name: "UnificationXref", Parent: "Xref"},
	{Name: "RelationshipXref", Parent: "Xref", Attributes: list(
		refs("relationshipType"),
	)},
	{Name: "PublicationXref", Parent: "Xref", Attributes: list(
		prims("author"), prims("source"), prim("title"), prims("url"), prim("year"),
	)},
	{Name: "ControlledVocabulary", Parent: "UtilityClass", Attributes: list(
		prims("term"), refs("xref"),
	)},
	{Name: "CellVocabulary", Parent: "ControlledVocabulary"},
	{Name: "CellularLocationVocabulary", Parent: "ControlledVocabulary"},
	{Name: "EntityReferenceTypeVocabulary", Parent: "ControlledVocabulary"},
	{Name: "EvidenceCodeVocabulary", Parent: "ControlledVocabulary"},
	{Name: "ExperimentalFormVocabulary", Parent: "ControlledVocabulary"},
	{Name: "InteractionVocabulary", Parent: "ControlledVocabulary"},
	{Name: "PhenotypeVocabulary", Parent: "ControlledVocabulary"},
	{Name: "RelationshipTypeVocabulary", Parent: "ControlledVocabulary"},
	{Name: "SequenceModificationVocabulary", Parent: "ControlledVocabulary"},
	{Name: "SequenceRegionVocabulary", Parent: "ControlledVocabulary"},
	{Name: "TissueVocabulary", Parent: "ControlledVocabulary"},
	{Name: "EntityReference", Parent: "UtilityClass", Abstract: true, Attributes: attrs(named(), list(
		refs("entityFeature"), refs("entityReferenceType"), refs("evidence"),
		refs("memberEntityReference"), refs("xref"),
	))},
	{Name: "ProteinReference", Parent: "EntityReference", Attributes: list(
		ref("organism"), prim("sequence"),
	)},
	{Name: "SmallMoleculeReference", Parent: "EntityReference", Attributes: list(
		prim("chemicalFormula"), prim("molecularWeight"), ref("structure"),
	)},
	{Name: "RnaReference", Parent: "EntityReference", Attributes: list(
		ref("organism"), prim("sequence"), refs("subRegion"),
	)},
	{Name: "DnaReference", Parent: "EntityReference", Attributes: list(
		ref("organism"), prim("sequence"), refs("subRegion"),
	)},
	{Name: "RnaRegionReference", Parent: "EntityReference", Attributes: list(
		ref("absoluteRegion"), ref("organism"), refs("regionType"),
		prim("sequence"), refs("subRegion"),
	)},
	{Name: "DnaRegionReference", Parent: "EntityReference", Attributes: list(
		ref("absoluteRegion"), ref("organism"), refs("regionType"),
		prim("sequence"), refs("subRegion"),
	)},
	{Name: "EntityFeature", Parent: "UtilityClass", Attributes: list(
		refs("evidence"), ref("featureLocation"), ref("featureLocationType"),
		refs("memberFeature"),
	)},
	{Name: "ModificationFeature", Parent: "EntityFeature", Attributes: list(
		ref("modificationType"),
	)},
	{Name: "FragmentFeature", Parent: "EntityFeature"},
	{Name: "BindingFeature", Parent: "EntityFeature", Attributes: list(
		ref("bindsTo"), prim("intraMolecular"),
	)},
	{Name: "CovalentBindingFeature", Parent: "BindingFeature", Attributes: list(
		ref("modificationType"),
	)},
	{Name: "PathwayStep", Parent: "UtilityClass", Attributes: list(
		refs("evidence"), refs("nextStep"), refs("stepProcess"),
	)},
	{Name: "BiochemicalPathwayStep", Parent: "PathwayStep", Attributes: list(
		ref("stepConversion"), enum("stepDirection", "StepDirection"),
	)},
	{Name: "SequenceLocation", Parent: "UtilityClass", Abstract: true},
	{Name: "SequenceSite", Parent: "SequenceLocation", Attributes: list(
		enum("positionStatus", "SequencePositionStatus"), prim("sequencePosition"),
	)},
	{Name: "SequenceInterval", Parent: "SequenceLocation", Attributes: list(
		ref("sequenceIntervalBegin"), ref("sequenceIntervalEnd"),
	)},
	{Name: "Stoichiometry", Parent: "UtilityClass", Attributes: list(
		ref("physicalEntity"), prim("stoichiometricCoefficient"),
	)},
	{Name: "DeltaG", Parent: "UtilityClass", Attributes: list(
		prim("deltaGPrime0"), prim("ionicStrength"), prim("ph"), prim("pMg"),
		prim("temperature"),
	)},
	{Name: "KPrime", Parent: "UtilityClass", Attributes: list(
		prim("kPrime"), prim("ionicStrength"), prim("ph"), prim("pMg"),
		prim("temperature"),
	)},
}
