package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldVersion, oldCommit, oldDate })

	Version, Commit, Date = "v1.2.3", "abc123", "2026-01-02T03:04:05Z"

	want := "version: v1.2.3\ncommit: abc123\nbuilt: 2026-01-02T03:04:05Z"
	if got := String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version v1.2.3") {
		t.Errorf("Template() = %q, want cobra name placeholder and version", tmpl)
	}
}
