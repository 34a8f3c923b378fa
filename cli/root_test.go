package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CACHE_BACKEND", "memory")
	t.Setenv("TABLE_VIEWER", "")

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestPaymentCmd(t *testing.T) {
	out, err := execute(t, "", "payment", "--principal", "10000", "--rate", "6", "--months", "36")
	require.NoError(t, err)
	assert.Contains(t, out, "Payment: $304.22 per month")
	assert.Contains(t, out, "Total paid: $10951.90 (interest $951.90)")
}

func TestPrincipalCmd(t *testing.T) {
	out, err := execute(t, "", "principal", "-m", "100", "-r", "0", "-n", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "Loan Amount: $1200.00")
}

func TestMonthsCmd(t *testing.T) {
	out, err := execute(t, "", "months", "-p", "1000", "-m", "1000", "-r", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Number of months to pay the loan: 1")

	_, err = execute(t, "", "months", "-p", "10000", "-m", "50", "-r", "6")
	assert.Error(t, err)
}

func TestRateCmdWritesTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "AmTable.txt")

	out, err := execute(t, "", "rate", "-p", "10000", "-m", "304.22", "-n", "36", "--table", "--table-file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Annual Percentage Rate: 6.000%")
	assert.Contains(t, out, "Amortization table written to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data),
		"Amortization Table for $10000.00 Loan at 6.000% interest for 36 months"))
}

func TestSolveCmd_RequiresFlags(t *testing.T) {
	_, err := execute(t, "", "payment", "--principal", "10000")
	assert.Error(t, err)
}

func TestRootCmd_RunsMenu(t *testing.T) {
	out, err := execute(t, "p\n0\n1200\n12\nn\nq\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Payment: $100.00 per month")
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "amortizer v"+Version)
}
