package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func runCmd(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if stdin != "" {
		cmd.SetIn(strings.NewReader(stdin))
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func mustRun(t *testing.T, dir string, args ...string) map[string]any {
	t.Helper()
	full := append([]string{"--dir", dir}, args...)
	stdout, stderr, err := runCmd(t, "", full...)
	if err != nil {
		t.Fatalf("command failed: brewstock %v\nerr: %v\nstderr:\n%s\nstdout:\n%s", args, err, stderr, stdout)
	}
	var env map[string]any
	if err := json.Unmarshal([]byte(stdout), &env); err != nil {
		t.Fatalf("unmarshal stdout as json envelope: %v\nstdout:\n%s\nargs: %v", err, stdout, args)
	}
	if _, ok := env["data"]; !ok {
		t.Fatalf("expected JSON envelope to contain data key; got: %v", env)
	}
	return env
}

func itemData(t *testing.T, env map[string]any) map[string]any {
	t.Helper()
	data, ok := env["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected item object in data; got: %#v", env["data"])
	}
	return data
}

func TestItemsAddListUseRm(t *testing.T) {
	dir := t.TempDir()

	added := itemData(t, mustRun(t, dir, "items", "add",
		"--name", "Hops", "--category", "hops", "--stock", "5", "--unit", "kg", "--low-alert", "2"))
	id, ok := added["id"].(float64)
	if !ok || id <= 0 {
		t.Fatalf("expected assigned id; got: %#v", added)
	}
	if added["name"] != "Hops" || added["stock"].(float64) != 5.0 {
		t.Fatalf("unexpected added item: %#v", added)
	}

	mustRun(t, dir, "items", "add", "--name", "apples", "--stock", "10", "--unit", "pc")

	// List is sorted case-insensitively by name.
	listed := mustRun(t, dir, "items", "list")
	xs, ok := listed["data"].([]any)
	if !ok || len(xs) != 2 {
		t.Fatalf("expected 2 items; got: %#v", listed["data"])
	}
	first := xs[0].(map[string]any)
	if first["name"] != "apples" {
		t.Fatalf("expected apples first in sorted list; got: %#v", xs)
	}

	// Quick use decrements, clamped at zero.
	used := itemData(t, mustRun(t, dir, "items", "use", "1", "0.5"))
	if used["stock"].(float64) != 4.5 {
		t.Fatalf("expected stock 4.5 after use; got: %#v", used)
	}
	used = itemData(t, mustRun(t, dir, "items", "use", "1", "100"))
	if used["stock"].(float64) != 0 {
		t.Fatalf("expected stock clamped to 0; got: %#v", used)
	}

	// Delete with --yes, then show must fail.
	rm := mustRun(t, dir, "items", "rm", "1", "--yes")
	if d := rm["data"].(map[string]any); d["deleted"] != true {
		t.Fatalf("expected deleted=true; got: %#v", rm)
	}
	_, stderr, err := runCmd(t, "", "--dir", dir, "items", "show", "1")
	if err == nil {
		t.Fatalf("expected error showing deleted item")
	}
	if !strings.Contains(stderr, "not found") {
		t.Fatalf("expected not-found on stderr; got: %q", stderr)
	}
}

func TestItemsSet_MergesUnsetFlags(t *testing.T) {
	dir := t.TempDir()

	mustRun(t, dir, "items", "add", "--name", "Yeast", "--category", "yeast", "--stock", "3", "--unit", "pkg", "--low-alert", "1")

	set := itemData(t, mustRun(t, dir, "items", "set", "1", "--stock", "9"))
	if set["stock"].(float64) != 9 {
		t.Fatalf("expected stock updated; got: %#v", set)
	}
	if set["name"] != "Yeast" || set["category"] != "yeast" || set["unit"] != "pkg" || set["lowAlert"].(float64) != 1 {
		t.Fatalf("expected other fields preserved; got: %#v", set)
	}
}

func TestItemsAdd_RejectsBadStock(t *testing.T) {
	dir := t.TempDir()

	_, stderr, err := runCmd(t, "", "--dir", dir, "items", "add", "--name", "Hops", "--stock", "plenty")
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(stderr, "stock") {
		t.Fatalf("expected stock validation message; got: %q", stderr)
	}

	// Nothing was stored.
	listed := mustRun(t, dir, "items", "list")
	if xs := listed["data"].([]any); len(xs) != 0 {
		t.Fatalf("expected empty store after rejected add; got: %#v", xs)
	}
}

func TestItemsRm_PromptDeclineKeeps(t *testing.T) {
	dir := t.TempDir()

	mustRun(t, dir, "items", "add", "--name", "Hops", "--stock", "5")

	stdout, stderr, err := runCmd(t, "n\n", "--dir", dir, "items", "rm", "1")
	if err != nil {
		t.Fatalf("rm declined should not error: %v", err)
	}
	if !strings.Contains(stderr, "permanently?") {
		t.Fatalf("expected confirmation prompt on stderr; got: %q", stderr)
	}
	// stdout stays a clean JSON envelope even with the prompt active.
	var env map[string]any
	if err := json.Unmarshal([]byte(stdout), &env); err != nil {
		t.Fatalf("rm stdout must be pure JSON: %v\nstdout: %q", err, stdout)
	}
	if d := env["data"].(map[string]any); d["deleted"] != false {
		t.Fatalf("expected deleted=false; got: %#v", env)
	}

	listed := mustRun(t, dir, "items", "list")
	if xs := listed["data"].([]any); len(xs) != 1 {
		t.Fatalf("expected item kept after declined delete; got: %#v", xs)
	}
}

func TestItemsList_TextFormat(t *testing.T) {
	dir := t.TempDir()

	mustRun(t, dir, "items", "add", "--name", "Hops", "--stock", "1.5", "--unit", "kg", "--low-alert", "2")

	stdout, _, err := runCmd(t, "", "--dir", dir, "--format", "text", "items", "list")
	if err != nil {
		t.Fatalf("list text: %v", err)
	}
	if !strings.Contains(stdout, "1.50") || !strings.Contains(stdout, "LOW") {
		t.Fatalf("expected two-decimal stock and LOW marker; got:\n%s", stdout)
	}
}

func TestDoctorReportsCounts(t *testing.T) {
	dir := t.TempDir()

	mustRun(t, dir, "items", "add", "--name", "Hops", "--stock", "1", "--low-alert", "2")
	mustRun(t, dir, "items", "add", "--name", "Malt", "--stock", "9")

	doc := mustRun(t, dir, "doctor")
	data := doc["data"].(map[string]any)
	if data["items"].(float64) != 2 || data["lowStock"].(float64) != 1 {
		t.Fatalf("unexpected doctor report: %#v", data)
	}
}

func TestDocsTopics(t *testing.T) {
	env := mustRun(t, t.TempDir(), "docs")
	data := env["data"].(map[string]any)
	topics, ok := data["topics"].([]any)
	if !ok || len(topics) == 0 {
		t.Fatalf("expected docs topics; got: %#v", data)
	}
}
