package toml

import (
	"testing"

	"github.com/0xalexb/hjarta-config/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = `
name = "test-app"

[api]
host = "localhost"
port = 8080

[database.connection]
host = "db.example.com"
port = 5432
hosts = ["a", "b"]
`

type endpoint struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

func TestParser_Parse_RootPath(t *testing.T) {
	t.Parallel()

	var result struct {
		Name string   `toml:"name"`
		API  endpoint `toml:"api"`
	}

	err := NewParser().Parse([]byte(document), &result, config.Root())

	require.NoError(t, err)
	assert.Equal(t, "test-app", result.Name)
	assert.Equal(t, 8080, result.API.Port)
}

func TestParser_Parse_NestedTables(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	testCases := []struct {
		name string
		path config.Path
		want endpoint
	}{
		{
			name: "single level",
			path: config.MustPath("api"),
			want: endpoint{Host: "localhost", Port: 8080},
		},
		{
			name: "dotted table",
			path: config.MustPath("database", "connection"),
			want: endpoint{Host: "db.example.com", Port: 5432},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var result endpoint

			err := parser.Parse([]byte(document), &result, testCase.path)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, result)
		})
	}
}

func TestParser_Parse_ScalarLeaf(t *testing.T) {
	t.Parallel()

	var hosts []string

	err := NewParser().Parse([]byte(document), &hosts, config.MustPath("database", "connection", "hosts"))

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, hosts)
}

func TestParser_Parse_NotFound(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	for _, path := range []config.Path{
		config.MustPath("missing"),
		config.MustPath("database", "replica"),
		config.MustPath("api", "timeout"),
	} {
		var result endpoint

		err := parser.Parse([]byte(document), &result, path)
		require.ErrorIs(t, err, config.ErrPathNotFound, path.String())
	}
}

func TestParser_Parse_NonTableIntermediate(t *testing.T) {
	t.Parallel()

	var result endpoint

	for _, path := range []config.Path{
		config.MustPath("name", "nested"),
		config.MustPath("api", "port", "value"),
		config.MustPath("database", "connection", "hosts", "first"),
	} {
		err := NewParser().Parse([]byte(document), &result, path)

		require.ErrorIs(t, err, ErrNotTable, path.String())
		assert.NotErrorIs(t, err, config.ErrPathNotFound, path.String())
	}
}

func TestParser_Parse_EmptyData(t *testing.T) {
	t.Parallel()

	var result endpoint

	err := NewParser().Parse(nil, &result, config.MustPath("api"))

	require.ErrorIs(t, err, config.ErrEmptyData)
}

func TestParser_Parse_InvalidTOML(t *testing.T) {
	t.Parallel()

	var result endpoint

	err := NewParser().Parse([]byte("[api\nhost = "), &result, config.MustPath("api"))

	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrPathNotFound)
}
