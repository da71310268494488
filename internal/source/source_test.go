package source_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/recfmt"
	"github.com/bjaus/recfmt/internal/source"
)

func TestReadPositional(t *testing.T) {
	t.Parallel()
	in := "Erik,4033321374,123 Gelmer St\nAnna,5551234,\"9 Oak Rd, Apt 2\"\n"
	records, err := source.Read(strings.NewReader(in), source.Options{})
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{"name", "phone", "address"}, records[0].Names())
	assert.Equal(t, []string{"Erik", "4033321374", "123 Gelmer St"}, records[0].Values())
	addr, ok := records[1].Get("address")
	assert.True(t, ok)
	assert.Equal(t, "9 Oak Rd, Apt 2", addr)
}

func TestReadHeader(t *testing.T) {
	t.Parallel()
	in := "city,zip\nCalgary,T2P\nBern,3000\n"
	records, err := source.Read(strings.NewReader(in), source.Options{Mode: source.Header})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, recfmt.Zip([]string{"city", "zip"}, []string{"Bern", "3000"}), records[1])
}

func TestReadCustomColumnsAndDelimiter(t *testing.T) {
	t.Parallel()
	records, err := source.Read(strings.NewReader("a;b\n"), source.Options{
		Columns:   []string{"x", "y"},
		Delimiter: ';',
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"x", "y"}, records[0].Names())
	assert.Equal(t, []string{"a", "b"}, records[0].Values())
}

func TestReadEmpty(t *testing.T) {
	t.Parallel()
	records, err := source.Read(strings.NewReader(""), source.Options{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadMalformed(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		opts  source.Options
		want  source.MalformedRecordError
	}{
		"too few": {
			input: "Erik,4033321374,123 Gelmer St\nAnna,555\n",
			want:  source.MalformedRecordError{Line: 2, Want: 3, Got: 2},
		},
		"too many": {
			input: "a,b,c,d\n",
			want:  source.MalformedRecordError{Line: 1, Want: 3, Got: 4},
		},
		"header mode": {
			input: "k,v\n1,2\n3\n",
			opts:  source.Options{Mode: source.Header},
			want:  source.MalformedRecordError{Line: 3, Want: 2, Got: 1},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := source.Read(strings.NewReader(tt.input), tt.opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, source.ErrMalformedRecord)

			var mre *source.MalformedRecordError
			require.ErrorAs(t, err, &mre)
			assert.Equal(t, tt.want, *mre)
		})
	}
}

func TestMalformedRecordErrorMessage(t *testing.T) {
	t.Parallel()
	err := &source.MalformedRecordError{Line: 4, Want: 3, Got: 1}
	assert.Equal(t, "malformed record: line 4: want 3 columns, got 1", err.Error())
	assert.False(t, errors.Is(err, os.ErrNotExist))
}

func TestReadEmptyHeader(t *testing.T) {
	t.Parallel()
	_, err := source.Read(strings.NewReader("\"\"\n1\n"), source.Options{Mode: source.Header})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty header row")
}

func TestReadParseError(t *testing.T) {
	t.Parallel()
	_, err := source.Read(strings.NewReader("a,\"b\n"), source.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse row")
}

func TestReadFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "people.csv")
	require.NoError(t, os.WriteFile(path, []byte("Erik,4033321374,123 Gelmer St\n"), 0o600))

	records, err := source.ReadFile(path, source.Options{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	name, _ := records[0].Get("name")
	assert.Equal(t, "Erik", name)
}

func TestReadFileMissing(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "missing.csv")
	_, err := source.ReadFile(path, source.Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), path)
}

func TestReadFileMalformedKeepsCause(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("only-one\n"), 0o600))

	_, err := source.ReadFile(path, source.Options{})
	assert.ErrorIs(t, err, source.ErrMalformedRecord)
	assert.Contains(t, err.Error(), "read "+path)
}
