package detekt

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type fakeEntrypoints struct {
	runArgs    []string
	exportArgs []string
	runs       int
	exports    int
	err        error
}

func (f *fakeEntrypoints) Run(_ context.Context, args []string) error {
	f.runs++
	f.runArgs = args
	return f.err
}

func (f *fakeEntrypoints) ExportConfig(_ context.Context, args []string) error {
	f.exports++
	f.exportArgs = args
	return f.err
}

func TestExecute_Run(t *testing.T) {
	ep := &fakeEntrypoints{}
	inv := Invocation{Debug: true, Input: "src"}

	if err := Execute(context.Background(), inv, ep); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ep.runs != 1 || ep.exports != 0 {
		t.Errorf("runs = %d, exports = %d, want 1 and 0", ep.runs, ep.exports)
	}
	if !reflect.DeepEqual(ep.runArgs, []string{FlagDebug, FlagInput, "src"}) {
		t.Errorf("run args = %v", ep.runArgs)
	}
}

func TestExecute_GenerateConfig(t *testing.T) {
	ep := &fakeEntrypoints{}
	inv := Invocation{GenerateConfig: true, Config: "detekt.yml", Input: "src"}

	if err := Execute(context.Background(), inv, ep); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ep.exports != 1 {
		t.Errorf("exports = %d, want 1", ep.exports)
	}
	if ep.runs != 0 {
		t.Errorf("analysis must not run in generate-config mode, runs = %d", ep.runs)
	}
	if !reflect.DeepEqual(ep.exportArgs, []string{FlagGenerateConfig, FlagConfig, "detekt.yml"}) {
		t.Errorf("export args = %v", ep.exportArgs)
	}
}

func TestExecute_PropagatesOutcome(t *testing.T) {
	findings := errors.New("issues found")
	ep := &fakeEntrypoints{err: findings}

	if err := Execute(context.Background(), Invocation{}, ep); err != findings {
		t.Errorf("error = %v, want the analyzer's own error", err)
	}
}

func TestExecute_Skip(t *testing.T) {
	ep := &fakeEntrypoints{err: errors.New("must not be called")}

	if err := Execute(context.Background(), Invocation{Skip: true, GenerateConfig: true}, ep); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ep.runs+ep.exports != 0 {
		t.Errorf("skip must not invoke the analyzer")
	}
}

func TestExportArgs(t *testing.T) {
	if got := ExportArgs(Invocation{}); !reflect.DeepEqual(got, []string{FlagGenerateConfig}) {
		t.Errorf("ExportArgs = %v", got)
	}
}
