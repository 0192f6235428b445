package main

import "testing"

func TestUnusedExportsCmd_FlagsExist(t *testing.T) {
	cmd := unusedExportsCmd()
	if cmd.Flags().Lookup("format") == nil {
		t.Error("missing expected flag: --format")
	}
}

func TestUnusedExportsCmd_NoPathsError(t *testing.T) {
	cmd := unusedExportsCmd()
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error when no paths specified")
	}
}

func TestFilesWithReexportsCmd_FlagsExist(t *testing.T) {
	cmd := filesWithReexportsCmd()
	if cmd.Flags().Lookup("format") == nil {
		t.Error("missing expected flag: --format")
	}
}

func TestDepgraphCmd_NoPathsError(t *testing.T) {
	cmd := depgraphCmd()
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error when no paths specified")
	}
}

func TestCyclesCmd_FlagsExist(t *testing.T) {
	cmd := cyclesCmd()
	if cmd.Flags().Lookup("format") == nil {
		t.Error("missing expected flag: --format")
	}
}

func TestAffectedCmd_RequiresEntriesAndChanged(t *testing.T) {
	cmd := affectedCmd()
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error when --entries/--changed are missing")
	}
}

func TestAffectedCmd_FlagsExist(t *testing.T) {
	cmd := affectedCmd()
	for _, name := range []string{"entries", "changed", "entries-only", "format"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("missing expected flag: --%s", name)
		}
	}
}

func TestInitCmd_FlagsExist(t *testing.T) {
	cmd := initCmd()
	for _, name := range []string{"config", "force", "minimal", "interactive"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("missing expected flag: --%s", name)
		}
	}
}

func TestVersionCmd_Runs(t *testing.T) {
	cmd := versionCmd()
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Errorf("version command should not error: %v", err)
	}
}
