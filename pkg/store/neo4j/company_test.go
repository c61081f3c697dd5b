package neo4j

import (
	"strings"
	"testing"
)

func TestCompanyDetailsQueryReturnsSingleRow(t *testing.T) {
	t.Parallel()

	if !strings.Contains(companyDetailsQuery, "LIMIT 1") {
		t.Errorf("expected the details query to bound its result to one row:\n%s", companyDetailsQuery)
	}
}

func TestCompanyEgoQueryFallsBackToElementIds(t *testing.T) {
	t.Parallel()

	for _, fallback := range []string{
		"coalesce(p.ftm_id, elementId(p))",
		"coalesce(c2.ftm_id, elementId(c2))",
	} {
		if !strings.Contains(companyEgoQuery, fallback) {
			t.Errorf("expected the ego query to tolerate id-less nodes via %q:\n%s", fallback, companyEgoQuery)
		}
	}
}
