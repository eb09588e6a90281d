package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/f3rmion/elgamal-bn/vectors"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.Execute()
	return out.String(), err
}

func TestVectorsAndVerify(t *testing.T) {
	dir := t.TempDir()

	for _, enc := range []string{"json", "cbor"} {
		t.Run(enc, func(t *testing.T) {
			path := filepath.Join(dir, "bundle."+enc)
			_, err := run(t, "vectors", "--count", "3", "--encoding", enc, "--hash", "sha512", "--out", path)
			require.NoError(t, err)

			out, err := run(t, "verify", path)
			require.NoError(t, err)
			require.Equal(t, 3, strings.Count(out, ": ok"))
		})
	}
}

func TestVectorsSeeded(t *testing.T) {
	a, err := run(t, "vectors", "--count", "2", "--seed", "abc", "--format", "decimal")
	require.NoError(t, err)
	b, err := run(t, "vectors", "--count", "2", "--seed", "abc", "--format", "decimal")
	require.NoError(t, err)
	require.Equal(t, a, b)

	var bundle vectors.Bundle
	require.NoError(t, json.Unmarshal([]byte(a), &bundle))
	require.Equal(t, "decimal", bundle.Format)
	require.Len(t, bundle.Vectors, 2)
}

func TestVerifyReportsFailure(t *testing.T) {
	out, err := run(t, "vectors", "--count", "2")
	require.NoError(t, err)

	var bundle vectors.Bundle
	require.NoError(t, json.Unmarshal([]byte(out), &bundle))
	bundle.Vectors[1].Value++

	data, err := bundle.Marshal(vectors.JSON)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	out, err = run(t, "verify", path)
	require.Error(t, err)
	require.Contains(t, out, "vector 0: ok")
	require.Contains(t, out, "vector 1: FAIL")
}

func TestEncrypt(t *testing.T) {
	out, err := run(t, "encrypt",
		"--pk-x", "0x030644e72e131a029b85045b68181585d97816a916871ca8d3c208c16d87cfd3",
		"--pk-y", "0x15ed738c0e0a7c92e7845f96b2ae9c0a68a6a449e3538fc7ff3ebf7a5a18a2c4",
		"--value", "7",
	)
	require.NoError(t, err)
	require.Contains(t, out, "ephemeral.x 0x")
	require.Contains(t, out, "binary      0x")
	require.Contains(t, out, "compressed  0x")

	_, err = run(t, "encrypt", "--pk-x", "1234", "--pk-y", "0x00")
	require.Error(t, err)
}

func TestInvalidConfig(t *testing.T) {
	_, err := run(t, "vectors", "--hash", "md5")
	require.Error(t, err)

	_, err = run(t, "vectors", "--count", "0")
	require.Error(t, err)

	t.Setenv("ELGAMALBN_GROUP", "p256")
	_, err = run(t, "version")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	require.NotEmpty(t, strings.TrimSpace(out))
}
