package rules

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"arnctl/internal/arn"
)

func TestDefault(t *testing.T) {
	set := Default()
	if len(set.Rules) == 0 {
		t.Fatal("Default() returned no rules")
	}

	// The built-in rules must accept what the helper constructors build.
	engine := NewEngine(set)
	for _, s := range []string{
		"arn:aws:iam::123456789012:user/Development/Bob",
		"arn:aws:lambda:us-east-2:123456789012:function:my-function",
		"arn:aws:lambda:us-east-2:123456789012:layer:my-layer:3",
		"arn:aws:s3:us-east-1:123456789012:job/23476",
		"arn:aws:sqs:us-east-2:123456789012:my-queue",
	} {
		a, err := arn.Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if err := engine.Validate(a); err != nil {
			t.Errorf("Validate(%q): %v", s, err)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yml")
	content := `rules:
  - service: kinesis
    resource_type: stream
    partition_required: true
    region_required: true
    account_required: true
    resource_format: path
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	set, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(set.Rules) != 1 || set.Rules[0].Key() != "kinesis-stream" {
		t.Errorf("unexpected rule set: %+v", set.Rules)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yml"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("LoadFile() error = %v, want not-found", err)
	}
}

func TestLoadFileInvalid(t *testing.T) {
	cases := map[string]string{
		"MissingService": `rules:
  - resource_format: id
`,
		"UnknownFormat": `rules:
  - service: sqs
    resource_format: tuple
`,
		"DuplicateKey": `rules:
  - service: sqs
    resource_format: id
  - service: sqs
    resource_format: path
`,
		"BadYAML": "rules: [",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "rules.yml")
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFile(path); err == nil {
				t.Error("LoadFile() succeeded, want error")
			}
		})
	}
}
