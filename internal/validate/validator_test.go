package validate

import (
	"reflect"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/trkcli/trk/internal/config"
	"github.com/trkcli/trk/internal/git"
	"github.com/trkcli/trk/internal/i18n"
	"github.com/trkcli/trk/internal/logging"
)

// fakeLister returns canned branches or an error.
type fakeLister struct {
	branches []string
	err      error
}

func (f *fakeLister) AllRemoteBranches(string) ([]string, error) {
	return f.branches, f.err
}

// fakeAsker returns scripted answers in order.
type fakeAsker struct {
	answers []string
	err     error
	prompts []string
}

func (f *fakeAsker) Ask(promptText string) (string, error) {
	f.prompts = append(f.prompts, promptText)
	if f.err != nil {
		return "", f.err
	}
	if len(f.answers) == 0 {
		return "", nil
	}
	answer := f.answers[0]
	f.answers = f.answers[1:]
	return answer, nil
}

func newTestValidator(t *testing.T, lister *fakeLister, asker *fakeAsker) *Validator {
	t.Helper()
	var bl git.BranchLister
	if lister != nil {
		bl = lister
	}
	if asker == nil {
		asker = &fakeAsker{}
	}
	return New(logging.ForTest(t), i18n.MustNew(), bl, asker)
}

func docWith(pairs map[string]any) *config.Document {
	doc := config.NewDocument()
	for k, v := range pairs {
		doc.Set(k, v)
	}
	return doc
}

func TestValidateCommandRequirements_UnknownCommand(t *testing.T) {
	v := newTestValidator(t, nil, nil)

	res := v.ValidateCommandRequirements("frobnicate", config.NewDocument(), config.NewDocument())

	if !res.CanProceed {
		t.Error("unknown command must be vacuously satisfiable")
	}
	if len(res.MissingGlobalKeys) != 0 || len(res.MissingProjectKeys) != 0 {
		t.Errorf("expected no missing keys, got %v / %v", res.MissingGlobalKeys, res.MissingProjectKeys)
	}
}

func TestValidateCommandRequirements_MissingKeys(t *testing.T) {
	v := newTestValidator(t, nil, nil)

	global := docWith(map[string]any{
		config.KeyTrackerURL: "https://tracker.example.com",
		// trackerToken absent
	})
	project := docWith(map[string]any{
		config.KeyProjectKey: "   ", // blank
	})

	res := v.ValidateCommandRequirements("open", global, project)

	if res.CanProceed {
		t.Error("CanProceed must be false with missing keys")
	}
	if want := []string{config.KeyTrackerToken}; !reflect.DeepEqual(res.MissingGlobalKeys, want) {
		t.Errorf("MissingGlobalKeys = %v, want %v", res.MissingGlobalKeys, want)
	}
	if want := []string{config.KeyProjectKey}; !reflect.DeepEqual(res.MissingProjectKeys, want) {
		t.Errorf("MissingProjectKeys = %v, want %v", res.MissingProjectKeys, want)
	}
}

func TestValidateCommandRequirements_AllPresent(t *testing.T) {
	v := newTestValidator(t, nil, nil)

	global := docWith(map[string]any{
		config.KeyTrackerURL:   "https://tracker.example.com",
		config.KeyTrackerToken: "tok",
	})
	project := docWith(map[string]any{
		config.KeyProjectKey: "TRK",
	})

	if res := v.ValidateCommandRequirements("open", global, project); !res.CanProceed {
		t.Errorf("expected CanProceed, missing %v / %v", res.MissingGlobalKeys, res.MissingProjectKeys)
	}
}

func TestFindMissingKeys_BlankClassification(t *testing.T) {
	doc := docWith(map[string]any{
		"empty":  "",
		"spaces": "   ",
		"null":   nil,
		"filled": "x",
		"zero":   0,
		"falsy":  false,
	})

	required := []string{"empty", "spaces", "null", "filled", "zero", "falsy", "absent"}
	got := findMissingKeys(required, doc)

	want := []string{"empty", "spaces", "null", "absent"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("findMissingKeys() = %v, want %v", got, want)
	}
}

func TestAutoDetectKey_BaseBranch(t *testing.T) {
	tests := []struct {
		name   string
		lister *fakeLister
		want   string
	}{
		{"master only", &fakeLister{branches: []string{"master", "feature/test"}}, "master"},
		{"develop beats main", &fakeLister{branches: []string{"main", "develop"}}, "develop"},
		{"main beats master", &fakeLister{branches: []string{"master", "main"}}, "main"},
		{"no known branch", &fakeLister{branches: []string{"feature/test"}}, ""},
		{"lister error", &fakeLister{err: errors.New("not a repo")}, ""},
		{"no lister", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestValidator(t, tt.lister, nil)
			if got := v.AutoDetectKey(config.KeyBaseBranch); got != tt.want {
				t.Errorf("AutoDetectKey(baseBranch) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAutoDetectKey_UnknownKey(t *testing.T) {
	v := newTestValidator(t, &fakeLister{branches: []string{"develop"}}, nil)
	if got := v.AutoDetectKey("trackerToken"); got != "" {
		t.Errorf("unknown keys must never auto-detect, got %q", got)
	}
}

func TestPromptForMissingKeys_BlankAnswersOmitted(t *testing.T) {
	tests := []struct {
		name   string
		answer []string
		want   map[string]string
	}{
		{"empty answer", []string{""}, map[string]string{}},
		{"whitespace answer", []string{"   "}, map[string]string{}},
		{"usable answer", []string{"v"}, map[string]string{"k": "v"}},
		{"answer is trimmed", []string{"  v  "}, map[string]string{"k": "v"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestValidator(t, nil, &fakeAsker{answers: tt.answer})
			got := v.PromptForMissingKeys([]string{"k"}, "project")
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PromptForMissingKeys() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPromptForMissingKeys_AskerErrorOmitsKey(t *testing.T) {
	v := newTestValidator(t, nil, &fakeAsker{err: errors.New("stdin closed")})

	got := v.PromptForMissingKeys([]string{"k"}, "global")
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestPromptForMissingKeys_AutoDetectedSkipsPrompt(t *testing.T) {
	asker := &fakeAsker{answers: []string{"should-not-be-used"}}
	lister := &fakeLister{branches: []string{"develop", "main"}}
	v := newTestValidator(t, lister, asker)

	got := v.PromptForMissingKeys([]string{config.KeyBaseBranch}, "project")

	if got[config.KeyBaseBranch] != "develop" {
		t.Errorf("baseBranch = %q, want develop", got[config.KeyBaseBranch])
	}
	if len(asker.prompts) != 0 {
		t.Errorf("asker should not be consulted for auto-detected keys, prompts: %v", asker.prompts)
	}
}

func TestPromptForMissingKeys_MixedKeys(t *testing.T) {
	asker := &fakeAsker{answers: []string{"TRK"}}
	lister := &fakeLister{branches: []string{"main"}}
	v := newTestValidator(t, lister, asker)

	got := v.PromptForMissingKeys([]string{config.KeyProjectKey, config.KeyBaseBranch}, "project")

	want := map[string]string{
		config.KeyProjectKey: "TRK",
		config.KeyBaseBranch: "main",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PromptForMissingKeys() = %v, want %v", got, want)
	}
	if len(asker.prompts) != 1 {
		t.Errorf("expected exactly one prompt, got %v", asker.prompts)
	}
}

func TestPromptText_UsesScopedCatalogEntry(t *testing.T) {
	asker := &fakeAsker{answers: []string{"develop"}}
	v := newTestValidator(t, nil, asker)

	v.PromptForMissingKeys([]string{config.KeyBaseBranch}, "project")

	if len(asker.prompts) != 1 {
		t.Fatalf("expected one prompt, got %d", len(asker.prompts))
	}
	if asker.prompts[0] == "prompt.project.baseBranch" {
		t.Error("prompt text should come from the catalog, not echo the key")
	}
}
