package catalog_test

import (
	"testing"

	"github.com/firasghr/browserprint/catalog"
)

func TestWarmup_AllProfilesAssembleCleanly(t *testing.T) {
	report := catalog.Warmup(4)
	if report.Checked != len(catalog.All()) {
		t.Errorf("Checked = %d, want %d", report.Checked, len(catalog.All()))
	}
	for _, f := range report.Failures {
		t.Errorf("profile %q failed warmup: %v", f.Profile, f.Err)
	}
}
