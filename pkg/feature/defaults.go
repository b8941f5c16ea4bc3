package feature

import "sync"

// Default returns the built-in CHTL catalog. It is built once per process.
var Default = sync.OnceValue(func() *Catalog {
	c, err := NewCatalog(defaultRules()...)
	if err != nil {
		panic(err)
	}
	return c
})

func defaultRules() []FeatureRule {
	var rules []FeatureRule
	for _, group := range [][]FeatureRule{
		commentRules(),
		markupRules(),
		templateRules(),
		customRules(),
		originRules(),
		importRules(),
		namespaceRules(),
		configurationRules(),
		constraintRules(),
		stylingRules(),
		scriptingRules(),
	} {
		rules = append(rules, group...)
	}
	return rules
}

func commentRules() []FeatureRule {
	return []FeatureRule{
		rule("CM01", CategoryComments, "Single-line comment", `//.*`),
		rule("CM02", CategoryComments, "Multi-line comment", `(?s)/\*.*?\*/`),
		rule("CM03", CategoryComments, "Generator comment", `--.*`),
	}
}

func markupRules() []FeatureRule {
	return []FeatureRule{
		rule("MK01", CategoryMarkup, "Text node", `text\s*\{`),
		rule("MK02", CategoryMarkup, "Colon attribute", `\w+\s*:\s*[^;]+;`),
		rule("MK03", CategoryMarkup, "Equals attribute", `\w+\s*=\s*[^;]+;`),
		rule("MK04", CategoryMarkup, "HTML element",
			`(html|head|body|div|span|p|a|img|button|input|form|table|ul|ol|li|h[1-6]|section|article|nav|header|footer|main|aside)\s*\{`),
	}
}

func templateRules() []FeatureRule {
	return []FeatureRule{
		rule("TP01", CategoryTemplates, "Style group template", `\[Template\]\s*@Style\s+\w+`),
		rule("TP02", CategoryTemplates, "Element template", `\[Template\]\s*@Element\s+\w+`),
		rule("TP03", CategoryTemplates, "Variable group template", `\[Template\]\s*@Var\s+\w+`),
		rule("TP04", CategoryTemplates, "Composed inheritance", `@Style\s+\w+;`),
		rule("TP05", CategoryTemplates, "Explicit inheritance", `inherit\s+@Style\s+\w+;`),
	}
}

func customRules() []FeatureRule {
	return []FeatureRule{
		rule("CU01", CategoryCustom, "Custom style group", `\[Custom\]\s*@Style\s+\w+`),
		rule("CU02", CategoryCustom, "Custom element", `\[Custom\]\s*@Element\s+\w+`),
		rule("CU03", CategoryCustom, "Custom variable group", `\[Custom\]\s*@Var\s+\w+`),
		rule("CU04", CategoryCustom, "Property deletion", `delete\s+[\w\s,\-]+;`),
		rule("CU05", CategoryCustom, "Inheritance deletion", `delete\s+@Style\s+\w+;`),
		rule("CU06", CategoryCustom, "Index access", `\w+\[\d+\]`),
		rule("CU07", CategoryCustom, "Insert operation", `insert\s+(after|before|replace)\s+\w+\[\d+\]\s*\{`),
	}
}

func originRules() []FeatureRule {
	return []FeatureRule{
		rule("OR01", CategoryOrigin, "HTML embedding", `\[Origin\]\s*@Html(\s+\w+)?`),
		rule("OR02", CategoryOrigin, "Style embedding", `\[Origin\]\s*@Style(\s+\w+)?`),
		rule("OR03", CategoryOrigin, "JavaScript embedding", `\[Origin\]\s*@JavaScript(\s+\w+)?`),
		rule("OR04", CategoryOrigin, "Custom type embedding", `\[Origin\]\s*@\w+\s+\w+`),
	}
}

func importRules() []FeatureRule {
	return []FeatureRule{
		rule("IM01", CategoryImport, "HTML import", `\[Import\]\s*@Html\s+from\s+[\w./]+(\s+as\s+\w+)?`),
		rule("IM02", CategoryImport, "Style import", `\[Import\]\s*@Style\s+from\s+[\w./]+(\s+as\s+\w+)?`),
		rule("IM03", CategoryImport, "JavaScript import", `\[Import\]\s*@JavaScript\s+from\s+[\w./]+(\s+as\s+\w+)?`),
		rule("IM04", CategoryImport, "CHTL module import", `\[Import\]\s*@Chtl\s+from\s+[\w./]+`),
		rule("IM05", CategoryImport, "CJMOD extension import", `\[Import\]\s*@CJmod\s+from\s+[\w./]+`),
		rule("IM06", CategoryImport, "Specific type import", `\[Import\]\s*\[(Custom|Template)\]\s*@\w+`),
	}
}

func namespaceRules() []FeatureRule {
	return []FeatureRule{
		rule("NS01", CategoryNamespace, "Namespace definition", `\[Namespace\]\s+\w+`),
		rule("NS02", CategoryNamespace, "Namespace usage", `from\s+\w+(\.\w+)*`),
	}
}

func configurationRules() []FeatureRule {
	return []FeatureRule{
		rule("CF01", CategoryConfiguration, "Configuration block", `\[Configuration\]`),
		rule("CF02", CategoryConfiguration, "Info block", `\[Info\]`),
		rule("CF03", CategoryConfiguration, "Export block", `\[Export\]`),
		rule("CF04", CategoryConfiguration, "Name configuration", `\[Name\]`),
		rule("CF05", CategoryConfiguration, "OriginType configuration", `\[OriginType\]`),
	}
}

func constraintRules() []FeatureRule {
	return []FeatureRule{
		rule("CN01", CategoryConstraint, "Except constraint", `except\s+[@\[\]\w\s,]+;`),
	}
}

func stylingRules() []FeatureRule {
	return []FeatureRule{
		rule("ST01", CategoryStyling, "Style block", `style\s*\{`),
		rule("ST02", CategoryStyling, "Class selector", `\.[a-zA-Z][\w\-]*`),
		rule("ST03", CategoryStyling, "ID selector", `#[a-zA-Z][\w\-]*`),
		rule("ST04", CategoryStyling, "Pseudo-class selector", `&:[a-zA-Z\-]+`),
		rule("ST05", CategoryStyling, "Pseudo-element selector", `&::[a-zA-Z\-]+`),
		rule("ST06", CategoryStyling, "Variable usage", `\w+\([^)]+\)`),
		rule("ST07", CategoryStyling, "Variable specialization", `\w+\([^=]+=\s*[^)]+\)`),
	}
}

func scriptingRules() []FeatureRule {
	return []FeatureRule{
		rule("JS01", CategoryScripting, "Script block", `script\s*\{`),
		rule("JS02", CategoryScripting, "Enhanced selector", `\{\{[^}]+\}\}`),
		rule("JS03", CategoryScripting, "Arrow operator", `->`),
		rule("JS04", CategoryScripting, "listen function", `->listen\s*\(`),
		rule("JS05", CategoryScripting, "delegate function", `->delegate\s*\(`),
		rule("JS06", CategoryScripting, "animate function", `animate\s*\(`),
		rule("JS07", CategoryScripting, "Virtual object", `vir\s+\w+\s*=`),
		rule("JS08", CategoryScripting, "iNeverAway function", `iNeverAway\s*\(`),
		rule("JS09", CategoryScripting, "State overload", `"[^"]+<[^>]+>"`),
	}
}
