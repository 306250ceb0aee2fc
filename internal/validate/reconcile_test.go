package validate

import "testing"

func TestReconcile_ClassifiesEachSide(t *testing.T) {
	left := NewKeySet("countries", "AE", "GB", "SM")
	right := NewKeySet("airport references", "AE", "GB", "ZY")

	findings := Reconcile(left, right, SeverityInfo, SeverityError)

	if len(findings) != 2 {
		t.Fatalf("Expected 2 findings, got %d: %v", len(findings), findings)
	}
	if findings[0].Key != "SM" || findings[0].Severity != SeverityInfo {
		t.Errorf("Unexpected left-only finding: %+v", findings[0])
	}
	if findings[1].Key != "ZY" || findings[1].Severity != SeverityError {
		t.Errorf("Unexpected right-only finding: %+v", findings[1])
	}
	if !HasErrors(findings) {
		t.Error("Expected HasErrors to be true")
	}
}

func TestReconcile_EqualSetsProduceNoFindings(t *testing.T) {
	left := NewKeySet("a", "AE", "GB")
	right := NewKeySet("b", "GB", "AE")

	findings := Reconcile(left, right, SeverityError, SeverityError)
	if len(findings) != 0 {
		t.Fatalf("Expected no findings, got %v", findings)
	}
	if HasErrors(findings) {
		t.Error("Expected HasErrors to be false")
	}
}

func TestReconcile_SortsFindingsByKey(t *testing.T) {
	left := NewKeySet("a", "ZZ", "AA", "MM")
	right := NewKeySet("b")

	findings := Reconcile(left, right, SeverityInfo, SeverityInfo)
	keys := []string{}
	for _, f := range findings {
		keys = append(keys, f.Key)
	}
	want := []string{"AA", "MM", "ZZ"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Expected sorted keys %v, got %v", want, keys)
		}
	}
}

func TestNewKeySet_IgnoresEmptyKeys(t *testing.T) {
	set := NewKeySet("a", "AE", "", "GB")
	if len(set.Keys) != 2 {
		t.Fatalf("Expected 2 keys, got %d", len(set.Keys))
	}
	if set.Contains("") {
		t.Error("Empty key must not be a member")
	}
}
