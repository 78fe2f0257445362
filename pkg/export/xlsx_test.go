package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSX(t *testing.T) {
	data, err := XLSX(Table{
		Sheet:   "Users",
		Headers: []string{"NAME", "EMAIL"},
		Rows: [][]any{
			{"Ann", "ann@example.com"},
			{"Bob", "bob@example.com"},
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Users")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"NAME", "EMAIL"}, rows[0])
	assert.Equal(t, []string{"Bob", "bob@example.com"}, rows[2])
}

func TestXLSXEmptyTable(t *testing.T) {
	data, err := XLSX(Table{})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
