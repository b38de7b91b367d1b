package integrationtests

import (
	"testing"

	"github.com/specialistvlad/umlgridgo/internal/app"
	"github.com/specialistvlad/umlgridgo/internal/catalog"
	"github.com/specialistvlad/umlgridgo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const danglingCatalog = `
class "Dog" {
  inherits = "Animal"
  related  = ["Owner", "Vet"]
}

class "Owner" {}
`

func TestValidation_DanglingReferencesPassThroughByDefault(t *testing.T) {
	t.Parallel()

	result := testutil.RunIntegrationTest(t, map[string]string{"pets.hcl": danglingCatalog}, func(cfg *app.Config) {
		cfg.OutputPath = app.StdoutPath
	})

	require.NoError(t, result.Err, "logs:\n%s", result.LogOutput)
	assert.Contains(t, result.Output, "Animal -> Dog [arrowhead=onormal")
	assert.Contains(t, result.Output, "Dog -> Vet [arrowhead=none")
	assert.NotContains(t, result.Output, "  Animal [")
	assert.Contains(t, result.LogOutput, "Reference to a class missing from the catalog.")
	assert.Contains(t, result.LogOutput, "target=Animal")
	assert.Contains(t, result.LogOutput, "target=Vet")
}

func TestValidation_StrictModeFails(t *testing.T) {
	t.Parallel()

	result := testutil.RunIntegrationTest(t, map[string]string{"pets.hcl": danglingCatalog}, func(cfg *app.Config) {
		cfg.Strict = true
	})

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "catalog has 2 dangling reference(s)")
	assert.Contains(t, result.Err.Error(), `class "Dog": inherits references unknown class "Animal"`)
	assert.Contains(t, result.Err.Error(), `class "Dog": related references unknown class "Vet"`)
	assert.NoFileExists(t, result.Config.OutputPath)

	var ref catalog.DanglingReference
	assert.ErrorAs(t, result.Err, &ref)
}

func TestValidation_StrictModePassesCleanCatalog(t *testing.T) {
	t.Parallel()

	files := map[string]string{"pets.hcl": danglingCatalog + "\nclass \"Animal\" {}\nclass \"Vet\" {}\n"}
	result := testutil.RunIntegrationTest(t, files, func(cfg *app.Config) {
		cfg.Strict = true
	})

	require.NoError(t, result.Err, "logs:\n%s", result.LogOutput)
	assert.NotContains(t, result.LogOutput, "missing from the catalog")
}

func TestValidation_DuplicateClassAcrossFilesFails(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"a.hcl": `class "User" {}`,
		"b.hcl": `class "User" {}`,
	}
	result := testutil.RunIntegrationTest(t, files, nil)

	require.ErrorIs(t, result.Err, catalog.ErrDuplicateClass)
	assert.Contains(t, result.Err.Error(), "failed to load catalog")
}
