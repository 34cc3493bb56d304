package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/gofhir/converter/pkg/logger"
)

const patientJSON = `{
	"resourceType": "Patient",
	"id": "example",
	"active": true,
	"gender": "female",
	"birthDate": "1974-12-25"
}`

const conceptMapJSON = `{
	"resourceType": "ConceptMap",
	"id": "cm",
	"status": "draft",
	"sourceUri": "http://example.org/vs/a",
	"group": [{
		"source": "http://example.org/cs/a",
		"element": [{"code": "a", "target": [{"code": "b", "equivalence": "equivalent"}]}]
	}]
}`

// run executes the root command with args and returns what it wrote.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	prev := logger.Default()
	t.Cleanup(func() { logger.SetDefault(prev) })

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersionCmd(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fhirconv v"+version)
	assert.Contains(t, out, "R4 (4.0.1) -> R5 (5.0.0)")
}

func TestConvertCmd_Text(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "patient.json", patientJSON)

	out, _, err := run(t, "convert", path)
	require.NoError(t, err)
	assert.Contains(t, out, "== "+path+" ==")
	assert.Contains(t, out, "Status: CONVERTED (Patient")

	out, _, err = run(t, "convert", "-q", path)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestConvertCmd_JSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", patientJSON)
	writeFile(t, dir, "b.json", conceptMapJSON)

	out, _, err := run(t, "convert", "-o", "json", filepath.Join(dir, "*.json"))
	require.NoError(t, err)

	var outputs []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &outputs))
	require.Len(t, outputs, 2)
	assert.Equal(t, "Patient", outputs[0]["resourceType"])
	assert.Equal(t, "ConceptMap", outputs[1]["resourceType"])
	assert.Equal(t, true, outputs[1]["converted"])

	resource, ok := outputs[1]["resource"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"value": "http://example.org/vs/a"}, resource["sourceScopeUri"])
	assert.NotContains(t, resource, "sourceScope")
	assert.NotContains(t, resource, "sourceUri")
}

func TestConvertCmd_Failure(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", patientJSON)
	bad := writeFile(t, dir, "bad.json", `{"resourceType": "Observation"}`)

	out, _, err := run(t, "convert", "-o", "yaml", good, bad)
	assert.EqualError(t, err, "1 of 2 resources failed to convert")

	var outputs []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &outputs))
	require.Len(t, outputs, 2)
	assert.Equal(t, false, outputs[1]["converted"])
}

func TestConvertCmd_Where(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "patient.json", patientJSON)

	out, _, err := run(t, "convert", "--where", "gender = 'male'", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Status: SKIPPED")
}

func TestConvertCmd_WhereWithXML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "patient.xml",
		`<Patient xmlns="http://hl7.org/fhir"><gender value="female"/></Patient>`)

	out, _, err := run(t, "convert", "--xml", "--where", "gender = 'male'", path)
	assert.EqualError(t, err, "--where cannot be used with --xml")
	assert.Empty(t, out)

	out, _, err = run(t, "convert", "--xml", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Status: CONVERTED (Patient")
}

func TestConvertCmd_BadFlags(t *testing.T) {
	_, _, err := run(t, "convert", "--to", "R6", "x.json")
	assert.Error(t, err)

	_, _, err = run(t, "convert", "-o", "xml", "x.json")
	assert.Error(t, err)
}

func TestBatchCmd(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "1.json", patientJSON),
		writeFile(t, dir, "2.json", conceptMapJSON),
		writeFile(t, dir, "3.json", `{"resourceType": "Observation"}`),
	}

	out, errOut, err := run(t, append([]string{"batch", "--workers", "2", "--stats"}, paths...)...)
	assert.EqualError(t, err, "1 of 3 resources failed to convert")
	assert.Contains(t, errOut, "3 resources in")
	assert.Contains(t, errOut, "2 converted, 0 skipped, 1 failed")
	assert.Contains(t, errOut, "resourceType: ConceptMap")

	// results follow the input order
	first := bytes.Index([]byte(out), []byte(paths[0]))
	last := bytes.Index([]byte(out), []byte(paths[2]))
	assert.True(t, first >= 0 && last > first, out)
}

func TestBundleCmd(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bundle.json", `{
		"resourceType": "Bundle",
		"type": "collection",
		"entry": [
			{"fullUrl": "urn:uuid:1", "resource": `+patientJSON+`},
			{"request": {"method": "DELETE", "url": "Patient/2"}}
		]
	}`)

	out, errOut, err := run(t, "bundle", path)
	require.NoError(t, err)
	assert.Contains(t, out, "== urn:uuid:1 ==")
	assert.Contains(t, out, "Status: SKIPPED")
	assert.Contains(t, errOut, "2 entries, 1 converted, 1 skipped, 0 failed")

	notBundle := writeFile(t, dir, "patient.json", patientJSON)
	_, _, err = run(t, "bundle", notBundle)
	assert.Error(t, err)
}

func TestAuditCmd(t *testing.T) {
	out, _, err := run(t, "audit")
	require.NoError(t, err)
	assert.Contains(t, out, "Patient: no definition")

	dir := t.TempDir()
	path := writeFile(t, dir, "basic.json", `{
		"resourceType": "StructureDefinition",
		"url": "http://hl7.org/fhir/StructureDefinition/Basic",
		"type": "Basic",
		"kind": "resource",
		"snapshot": {"element": [{"path": "Basic"}, {"path": "Basic.id"}, {"path": "Basic.bogus"}]}
	}`)

	out, _, err = run(t, "audit", path)
	assert.EqualError(t, err, "conversion tables are incomplete")
	assert.Contains(t, out, "Basic: 1 missing")
	assert.Contains(t, out, "  missing: bogus")

	out, _, err = run(t, "audit", "-o", "yaml", "--definitions", path)
	assert.Error(t, err)
	var report struct {
		Tables []struct {
			Type    string   `yaml:"type"`
			Missing []string `yaml:"missing"`
		} `yaml:"tables"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.NotEmpty(t, report.Tables)
}
