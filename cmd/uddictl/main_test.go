package main

import (
	"bytes"
	"errors"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uddiwire/uddi/internal/fakeregistry"
	"github.com/uddiwire/uddi/pkg/constants"
	"github.com/uddiwire/uddi/pkg/models"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := rootCmd()
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestFmt_tModel(t *testing.T) {
	path := writeFile(t, "tmodel.xml", `<tModel xmlns="urn:uddi-org:api_v2" tModelKey="uuid:X" operator="" authorizedName="">
  <categoryBag><keyedReference tModelKey="uuid:C" keyValue="1"/></categoryBag>
  <name xml:lang="en">Test</name>
  <bogus>ignored</bogus>
</tModel>`)

	out, err := execute(t, "fmt", path)
	require.NoError(t, err)
	assert.Contains(t, out, `<u:tModel xmlns:u="urn:uddi-org:api_v2" tModelKey="uuid:X">`)
	assert.Contains(t, out, `<u:name>Test</u:name>`)
	assert.NotContains(t, out, "bogus")
	assert.NotContains(t, out, "xml:lang")
	assert.Less(t, strings.Index(out, "<u:name>"), strings.Index(out, "<u:categoryBag>"))
}

func TestFmt_envelope_fault(t *testing.T) {
	path := writeFile(t, "fault.xml", `<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/"><s:Body>
<s:Fault><faultcode>s:Client</faultcode><faultstring>Client Error</faultstring></s:Fault>
</s:Body></s:Envelope>`)

	_, err := execute(t, "fmt", path)
	assert.True(t, errors.Is(err, constants.ErrFault), "got %v", err)
}

func TestFmt_unknown_element(t *testing.T) {
	path := writeFile(t, "other.xml", `<businessEntity xmlns="urn:uddi-org:api_v2"/>`)

	_, err := execute(t, "fmt", path)
	assert.True(t, errors.Is(err, constants.ErrUnexpectedResponse))
}

func TestGetAndFind(t *testing.T) {
	registry := fakeregistry.NewServer("cli-operator")
	registry.Seed(*models.NewTModel("uuid:A", "Widget"))
	registry.Seed(*models.NewTModel("uuid:B", "Gadget"))
	ts := httptest.NewServer(registry)
	defer ts.Close()

	cfg := writeFile(t, "uddi.yaml", fmt.Sprintf("inquiry_url: %s\nlog:\n  level: warn\n", ts.URL))

	out, err := execute(t, "--config", cfg, "get", "uuid:A")
	require.NoError(t, err)
	assert.Contains(t, out, `operator="cli-operator"`)
	assert.Contains(t, out, `<u:name>Widget</u:name>`)

	out, err = execute(t, "--config", cfg, "find", "gad")
	require.NoError(t, err)
	assert.Equal(t, "uuid:B\tGadget\n", out)

	_, err = execute(t, "--config", cfg, "get", "uuid:missing")
	assert.True(t, errors.Is(err, constants.ErrFault))
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "uddictl version 0.1.0\n", out)
}
