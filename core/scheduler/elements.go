package scheduler

// RequiredElements lists the seven elements every work package must declare
// before execution per the work-package procedure.
var RequiredElements = []string{
	"WORK_PERMIT",
	"WORK_ORDER",
	"RISK_ASSESSMENT",
	"ISOLATION_PLAN",
	"MATERIALS_LIST",
	"TOOLS_LIST",
	"QUALITY_PLAN",
}

// Element is one declared work-package element.
type Element struct {
	Type    string `json:"type"`
	Present bool   `json:"present"`
}

// ComplianceResult reports the missing elements for one package.
type ComplianceResult struct {
	PackageID string   `json:"package_id"`
	Missing   []string `json:"missing"`
	Compliant bool     `json:"compliant"`
}

// ValidateElements computes the missing subset of the required element set.
// The package is compliant iff nothing is missing.
func ValidateElements(packageID string, elements []Element) ComplianceResult {
	present := map[string]bool{}
	for _, el := range elements {
		if el.Present {
			present[el.Type] = true
		}
	}
	res := ComplianceResult{PackageID: packageID}
	for _, req := range RequiredElements {
		if !present[req] {
			res.Missing = append(res.Missing, req)
		}
	}
	res.Compliant = len(res.Missing) == 0
	return res
}
