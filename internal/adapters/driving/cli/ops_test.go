package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/discreta/internal/core/domain"
)

func TestOpsCmd_ListsCatalogue(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "ops")

	require.NoError(t, err)
	for _, op := range domain.Operations() {
		info := op.Info()
		assert.Contains(t, out, info.Title)
		assert.Contains(t, out, "("+op.String()+")")
		assert.Contains(t, out, "Formula: "+info.Formula.Plain)
	}
}

func TestOpsCmd_LaTeX(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "operations", "--latex")

	require.NoError(t, err)
	assert.Contains(t, out, "Formula: "+domain.OpBinomial.Info().Formula.LaTeX)
}

func TestOpsCmd_JSON(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "ops", "--json")

	require.NoError(t, err)
	var infos []domain.OperationInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	assert.Len(t, infos, len(domain.Operations()))
}

func TestOpsCmd_RejectsArgs(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "ops", "extra")

	require.Error(t, err)
}

func TestOperationNames(t *testing.T) {
	names := operationNames()

	assert.Len(t, names, 9)
	assert.Equal(t, "combination", names[0])
}
