package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// points below 5 are labelled 1, interleaved so the last fifth holds
// a point of each label
const separableSet = `r,l
1,1
6,0
2,1
7,0
3,1
8,0
4,1
9,0
0,1
10,0
`

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestResolveSource(t *testing.T) {
	for input, expected := range map[string]source{
		"points.csv":                     csvSource,
		"":                               csvSource,
		"points.db":                      sqlite3Source,
		"postgresql://localhost/cart":    postgreSQLSource,
		"postgres://user@localhost/cart": postgreSQLSource,
		"mongodb://localhost/cart":       mongoDBSource,
		"features.npy":                   npySource,
		"/data/points.db.csv":            csvSource,
	} {
		assert.Equal(t, expected, resolveSource(input), input)
	}
}

func TestImpurities(t *testing.T) {
	rcc := &rootCmdConfig{table: defaultTable}
	rows, err := rcc.impurities([]string{writeFile(t, "set.csv", separableSet)})
	require.NoError(t, err)
	assert.Equal(t, [][]interface{}{{0.5}}, rows)

	_, err = rcc.impurities([]string{filepath.Join(t.TempDir(), "missing.csv")})
	assert.Error(t, err)
}

func TestGains(t *testing.T) {
	gcc := &gainCmdConfig{rootCmdConfig: &rootCmdConfig{}, minPoints: 1, threshold: true}
	rows, err := gcc.gains([]string{
		writeFile(t, "set.csv", separableSet),
		writeFile(t, "pure.csv", "r,l\n1,1\n2,1\n"),
	})
	require.NoError(t, err)
	assert.Equal(t, [][]interface{}{{0, 0.5, 5.0}, {nil, 0.0, nil}}, rows)

	gcc.minPoints = 0
	assert.Error(t, gcc.Validate())
}

func TestGrow(t *testing.T) {
	gcc := &growCmdConfig{rootCmdConfig: &rootCmdConfig{}, maxHeight: 1, minPoints: 1, trainingProportion: 0.8}
	input := writeFile(t, "set.csv", separableSet)
	require.NoError(t, gcc.Validate([]string{input}))

	rows, err := gcc.grow([]string{input})
	require.NoError(t, err)
	assert.Equal(t, [][]interface{}{{1.0}}, rows)

	gcc.graphOutput = filepath.Join(t.TempDir(), "tree.dot")
	rows, err = gcc.grow([]string{input})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	graph, err := os.ReadFile(gcc.graphOutput)
	require.NoError(t, err)
	assert.Contains(t, string(graph), "f0 < 5")
}

func TestGrowValidate(t *testing.T) {
	gcc := &growCmdConfig{rootCmdConfig: &rootCmdConfig{}, maxHeight: -1, minPoints: 1, trainingProportion: 0.8}
	assert.Error(t, gcc.Validate([]string{"a.csv"}))

	gcc.maxHeight = 2
	gcc.trainingProportion = 0
	assert.Error(t, gcc.Validate([]string{"a.csv"}))

	gcc.trainingProportion = 0.8
	gcc.graphOutput = "tree.png"
	assert.NoError(t, gcc.Validate([]string{"a.csv"}))
	assert.Error(t, gcc.Validate([]string{"a.csv", "b.csv"}))

	gcc.graphOutput = "tree.pdf"
	assert.Error(t, gcc.Validate([]string{"a.csv"}))
}

func TestScores(t *testing.T) {
	rows, err := scores([]string{
		writeFile(t, "predictions.csv", "1,1\n1,0\n0,1\n0,0\n"),
		writeFile(t, "negatives.csv", "1,0\n0,0\n"),
	})
	require.NoError(t, err)
	assert.Equal(t, [][]interface{}{{0.5, 0.5, 0.5}, {nil, nil, nil}}, rows)
}

func TestWriteResults(t *testing.T) {
	rcc := &rootCmdConfig{output: filepath.Join(t.TempDir(), "results.csv")}
	require.NoError(t, rcc.writeResults([][]interface{}{{0.5}, {1, 0.25}}))
	content, err := os.ReadFile(rcc.output)
	require.NoError(t, err)
	assert.Equal(t, "0.500000\r\n1,0.250000\r\n", string(content))
}

func TestImportAndReadSQLite3(t *testing.T) {
	rcc := &rootCmdConfig{table: defaultTable}
	s, err := rcc.readSet(writeFile(t, "set.csv", separableSet))
	require.NoError(t, err)

	db := filepath.Join(t.TempDir(), "points.db")
	count, err := rcc.importSet(s, nil, db)
	require.NoError(t, err)
	assert.Equal(t, 10, count)

	_, err = rcc.readSet(db)
	assert.Error(t, err, "database inputs require metadata")

	rcc.metadataInput = writeFile(t, "metadata.yml", "label: label\nfeatures:\n  f0: continuous\n")
	read, err := rcc.readSet(db)
	require.NoError(t, err)
	assert.Equal(t, s.Features, read.Features)
	assert.Equal(t, s.Labels, read.Labels)

	_, err = rcc.importSet(s, nil, "points.csv")
	assert.Error(t, err)
}

func TestDecide(t *testing.T) {
	dcc := &decideCmdConfig{rootCmdConfig: &rootCmdConfig{}, maxHeight: 1, minPoints: 1}
	require.NoError(t, dcc.Validate())

	var prompts, out bytes.Buffer
	err := dcc.decide(writeFile(t, "set.csv", separableSet), strings.NewReader("2\nten\n10\n4.5\n"), &prompts, &out)
	require.NoError(t, err)
	assert.Equal(t, "1\n0\n1\n", out.String())
	assert.Contains(t, prompts.String(), `invalid value "ten" for f0`)

	dcc.minPoints = 0
	assert.Error(t, dcc.Validate())
}
